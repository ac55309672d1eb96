package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"clubhouse/infras/otel"
	"clubhouse/infras/postgres"
	"clubhouse/internal/domains/booking/model"
	"clubhouse/shared/constant"
	"clubhouse/shared/failure"
	"clubhouse/shared/timezone"

	"github.com/jmoiron/sqlx"
)

// Booking is the transactional store access of the booking core. Mutating
// calls run inside a transaction owned by the caller; the repository never
// commits or rolls back, so a multi-step command stays atomic end to end.
type Booking interface {
	Fetch(ctx context.Context, id int64, reqTime time.Time) (model.Snapshot, error)
	GetForUpdate(ctx context.Context, tx *sqlx.Tx, id int64, etag string, reqTime time.Time) (model.Snapshot, error)
	ComputeNew(ctx context.Context, tx *sqlx.Tx, candidate model.NewBooking, reqTime time.Time) (model.Snapshot, error)
	Overlapping(ctx context.Context, tx *sqlx.Tx, courtID int64, date, start, end string) ([]model.Booking, error)
	Insert(ctx context.Context, tx *sqlx.Tx, candidate model.NewBooking) (int64, error)
	Deactivate(ctx context.Context, tx *sqlx.Tx, id int64) error
	SetEnd(ctx context.Context, tx *sqlx.Tx, id int64, localClock string) error
	FetchByDate(ctx context.Context, date string) ([]model.Booking, error)
	OverlappingRead(ctx context.Context, courtID int64, date, start, end string) ([]model.Overlap, error)
}

type repositoryImpl struct {
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Booking {
	return &repositoryImpl{
		db:   db,
		otel: otel,
	}
}

type snapshotRow struct {
	model.Booking

	CourtState int    `db:"court_state"`
	CourtOpen  int    `db:"court_open"`
	CourtClose int    `db:"court_close"`
	CourtName  string `db:"court_name"`
	ClubID     int64  `db:"club_id"`
	TimeZone   string `db:"time_zone"`
}

const getForUpdateQuery = `
SELECT a.id, a.court, a.date::text AS date, a.start::text AS start, a."end"::text AS "end",
	EXTRACT(EPOCH FROM a.start)::int / 60 AS start_min,
	EXTRACT(EPOCH FROM a."end")::int / 60 AS end_min,
	a.type, at.lbl AS booking_type_desc, a.bumpable, a.active, COALESCE(a.notes, '') AS notes,
	a.created, a.updated, md5(a.updated::text) AS etag,
	c.state AS court_state, c.openmin AS court_open, c.closemin AS court_close, c.name AS court_name,
	cl.id AS club_id, cl.time_zone
FROM activity a
JOIN court c ON c.id = a.court
JOIN club cl ON cl.id = c.club
JOIN activity_type at ON at.id = a.type
WHERE a.id = $1 AND md5(a.updated::text) = $2
FOR UPDATE OF a, c`

const playersByActivityQuery = `
SELECT pl.activity, pl.person AS person_id, pl.type AS player_type_id, pl.status,
	p.firstname, p.lastname,
	COALESCE(pt.lbl, '') AS player_type_lbl, COALESCE(pt."desc", '') AS player_type_desc,
	m.role AS person_role_id
FROM player pl
JOIN person p ON p.id = pl.person
LEFT JOIN player_type pt ON pt.id = pl.type
LEFT JOIN membership m ON m.person_id = p.id
	AND m.valid_from <= now()::date AND m.valid_until >= now()::date
WHERE pl.activity IN (?)
ORDER BY pl.activity, pl.id`

// GetForUpdate is the optimistic-concurrency gate. The id and etag are matched
// in one predicate, so a missing row and a concurrently modified row are the
// same outcome on purpose. The booking and court rows stay locked until the
// caller's transaction ends.
func (r *repositoryImpl) GetForUpdate(ctx context.Context, tx *sqlx.Tx, id int64, etag string, reqTime time.Time) (res model.Snapshot, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".GetForUpdate")
	defer scope.End()
	defer scope.TraceIfError(err)

	var row snapshotRow

	if err = tx.GetContext(ctx, &row, getForUpdateQuery, id, etag); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return res, failure.NotFoundOrStale(model.EntityName) //nolint:wrapcheck
		}

		return res, failure.FromPostgres("get booking for update", err) //nolint:wrapcheck
	}

	players, err := r.playersFor(ctx, tx, []int64{row.ID})
	if err != nil {
		return res, err
	}

	row.Players = players

	return buildSnapshot(row, reqTime)
}

const fetchQuery = `
SELECT a.id, a.court, a.date::text AS date, a.start::text AS start, a."end"::text AS "end",
	EXTRACT(EPOCH FROM a.start)::int / 60 AS start_min,
	EXTRACT(EPOCH FROM a."end")::int / 60 AS end_min,
	a.type, at.lbl AS booking_type_desc, a.bumpable, a.active, COALESCE(a.notes, '') AS notes,
	a.created, a.updated, md5(a.updated::text) AS etag,
	c.state AS court_state, c.openmin AS court_open, c.closemin AS court_close, c.name AS court_name,
	cl.id AS club_id, cl.time_zone
FROM activity a
JOIN court c ON c.id = a.court
JOIN club cl ON cl.id = c.club
JOIN activity_type at ON at.id = a.type
WHERE a.id = $1`

// Fetch loads one booking with its players under a read-only transaction, no
// etag gate and no lock. The snapshot it returns is what the permission flags
// on the read path are derived from.
func (r *repositoryImpl) Fetch(ctx context.Context, id int64, reqTime time.Time) (res model.Snapshot, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".Fetch")
	defer scope.End()
	defer scope.TraceIfError(err)

	err = r.db.WithinReadTx(ctx, func(tx *sqlx.Tx) error {
		var row snapshotRow

		if err := tx.GetContext(ctx, &row, fetchQuery, id); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return failure.NotFound(model.EntityName + " not found") //nolint:wrapcheck
			}

			return failure.FromPostgres("get booking", err) //nolint:wrapcheck
		}

		players, err := r.playersFor(ctx, tx, []int64{row.ID})
		if err != nil {
			return err
		}

		row.Players = players

		res, err = buildSnapshot(row, reqTime)

		return err
	})
	if err != nil {
		return model.Snapshot{}, err
	}

	return res, nil
}

const computeNewQuery = `
SELECT c.id AS court_id, c.state AS court_state, c.openmin AS court_open, c.closemin AS court_close,
	c.name AS court_name, cl.id AS club_id, cl.time_zone,
	EXISTS (
		SELECT 1
		FROM club_schedule cs
		JOIN court_schedule_item csi ON csi.schedule = cs.id
		WHERE cs.club = cl.id
			AND cs."from" <= $2::date AND cs."to" >= $2::date
			AND csi.court = c.id
			AND csi.dayofweek = $3
			AND csi."open" <= $4::time
			AND csi."close" >= $5::time
	) AS in_schedule
FROM court c
JOIN club cl ON cl.id = c.club
WHERE c.id = $1
FOR UPDATE OF c`

type computeNewRow struct {
	CourtID    int64  `db:"court_id"`
	CourtState int    `db:"court_state"`
	CourtOpen  int    `db:"court_open"`
	CourtClose int    `db:"court_close"`
	CourtName  string `db:"court_name"`
	ClubID     int64  `db:"club_id"`
	TimeZone   string `db:"time_zone"`
	InSchedule bool   `db:"in_schedule"`
}

// ComputeNew resolves the server-authoritative evaluated record for a
// candidate. The court row is locked so its state cannot flip between rule
// evaluation and the insert, and the schedule-membership flag is resolved by
// the store rather than trusted from the client.
func (r *repositoryImpl) ComputeNew(ctx context.Context, tx *sqlx.Tx, candidate model.NewBooking, reqTime time.Time) (res model.Snapshot, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".ComputeNew")
	defer scope.End()
	defer scope.TraceIfError(err)

	weekday, err := timezone.Weekday(candidate.Date)
	if err != nil {
		return res, failure.BadRequest(err) //nolint:wrapcheck
	}

	start := timezone.NormalizeClock(candidate.Start)
	end := timezone.NormalizeClock(candidate.End)

	var row computeNewRow

	err = tx.GetContext(ctx, &row, computeNewQuery, candidate.CourtID, candidate.Date, weekday, start, end)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return res, failure.Integrity(fmt.Sprintf("court %d does not exist", candidate.CourtID)) //nolint:wrapcheck
		}

		return res, failure.FromPostgres("compute new booking", err) //nolint:wrapcheck
	}

	startMin, err := timezone.MinuteOfDay(start)
	if err != nil {
		return res, failure.BadRequest(err) //nolint:wrapcheck
	}

	endMin, err := timezone.MinuteOfDay(end)
	if err != nil {
		return res, failure.BadRequest(err) //nolint:wrapcheck
	}

	snap := snapshotRow{
		Booking: model.Booking{
			CourtID:  candidate.CourtID,
			Date:     candidate.Date,
			Start:    start,
			End:      end,
			StartMin: startMin,
			EndMin:   endMin,
			TypeID:   candidate.TypeID,
			Bumpable: candidate.Bumpable,
			Active:   constant.BookingActive,
			Notes:    candidate.Notes,
			Created:  reqTime,
			Updated:  reqTime,
		},
		CourtState: row.CourtState,
		CourtOpen:  row.CourtOpen,
		CourtClose: row.CourtClose,
		CourtName:  row.CourtName,
		ClubID:     row.ClubID,
		TimeZone:   row.TimeZone,
	}

	res, err = buildSnapshot(snap, reqTime)
	if err != nil {
		return res, err
	}

	res.InSchedule = row.InSchedule

	return res, nil
}

const overlappingQuery = `
SELECT a.id, a.court, a.date::text AS date, a.start::text AS start, a."end"::text AS "end",
	a.type, a.bumpable, a.active, COALESCE(a.notes, '') AS notes,
	a.created, a.updated, md5(a.updated::text) AS etag
FROM activity a
WHERE a.court = $1 AND a.date = $2::date AND a.active = 1
	AND $4::time > a.start AND $3::time < a."end"
FOR UPDATE`

// Overlapping finds active bookings intersecting the candidate interval using
// open-interval semantics. It must run inside the same write transaction as
// the subsequent insert: the row locks it takes make check-then-insert atomic
// against concurrent callers.
func (r *repositoryImpl) Overlapping(ctx context.Context, tx *sqlx.Tx, courtID int64, date, start, end string) (res []model.Booking, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".Overlapping")
	defer scope.End()
	defer scope.TraceIfError(err)

	res = []model.Booking{}

	err = tx.SelectContext(ctx, &res, overlappingQuery,
		courtID, date, timezone.NormalizeClock(start), timezone.NormalizeClock(end))
	if err != nil {
		return nil, failure.FromPostgres("find overlapping bookings", err) //nolint:wrapcheck
	}

	return res, nil
}

const overlappingReadQuery = `
SELECT a.id, a.court AS court_id, c.name AS court_name,
	a.date::text AS date, a.start::text AS start, a."end"::text AS "end"
FROM activity a
JOIN court c ON c.id = a.court
WHERE a.court = $1 AND a.date = $2::date AND a.active = 1
	AND $4::time > a.start AND $3::time < a."end"
ORDER BY a.start`

// OverlappingRead is the lock-free probe for callers previewing a slot. It
// proves nothing about the eventual insert; only Overlapping inside the write
// transaction does.
func (r *repositoryImpl) OverlappingRead(ctx context.Context, courtID int64, date, start, end string) (res []model.Overlap, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".OverlappingRead")
	defer scope.End()
	defer scope.TraceIfError(err)

	res = []model.Overlap{}

	err = r.db.Read.SelectContext(ctx, &res, overlappingReadQuery,
		courtID, date, timezone.NormalizeClock(start), timezone.NormalizeClock(end))
	if err != nil {
		return nil, failure.FromPostgres("find overlapping bookings", err) //nolint:wrapcheck
	}

	return res, nil
}

const insertQuery = `
INSERT INTO activity (created, updated, type, court, date, start, "end", bumpable, active, notes)
VALUES (now(), now(), $1, $2, $3::date, $4::time, $5::time, $6, 1, $7)
RETURNING id`

// Insert writes the activity row and its players in one go. Foreign-key
// violations (unknown court, type, or person) surface as integrity failures.
func (r *repositoryImpl) Insert(ctx context.Context, tx *sqlx.Tx, candidate model.NewBooking) (id int64, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".Insert")
	defer scope.End()
	defer scope.TraceIfError(err)

	err = tx.GetContext(ctx, &id, insertQuery,
		candidate.TypeID,
		candidate.CourtID,
		candidate.Date,
		timezone.NormalizeClock(candidate.Start),
		timezone.NormalizeClock(candidate.End),
		candidate.Bumpable,
		candidate.Notes,
	)
	if err != nil {
		return 0, failure.FromPostgres("insert booking", err) //nolint:wrapcheck
	}

	if len(candidate.Players) == 0 {
		return id, nil
	}

	values := make([]string, 0, len(candidate.Players))
	args := make([]any, 0, len(candidate.Players)*4)

	for i, player := range candidate.Players {
		base := i * 4
		values = append(values, fmt.Sprintf("($%d, $%d, $%d, $%d)", base+1, base+2, base+3, base+4))
		args = append(args, id, player.PersonID, constant.PlayerStatusConfirmed, player.PlayerTypeID)
	}

	playerInsert := "INSERT INTO player (activity, person, status, type) VALUES " + strings.Join(values, ", ")

	if _, err = tx.ExecContext(ctx, playerInsert, args...); err != nil {
		return 0, failure.FromPostgres("insert players", err) //nolint:wrapcheck
	}

	return id, nil
}

const deactivateQuery = `
UPDATE activity SET active = 0, updated = now() WHERE id = $1`

// Deactivate is the terminal transition. The touch of updated invalidates
// every outstanding etag for the row.
func (r *repositoryImpl) Deactivate(ctx context.Context, tx *sqlx.Tx, id int64) (err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".Deactivate")
	defer scope.End()
	defer scope.TraceIfError(err)

	return r.execOne(ctx, tx, "deactivate booking", deactivateQuery, id)
}

const setEndQuery = `
UPDATE activity SET "end" = $2::time, updated = now() WHERE id = $1`

// SetEnd truncates the booking to the given local wall-clock time.
func (r *repositoryImpl) SetEnd(ctx context.Context, tx *sqlx.Tx, id int64, localClock string) (err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".SetEnd")
	defer scope.End()
	defer scope.TraceIfError(err)

	return r.execOne(ctx, tx, "set booking end", setEndQuery, id, timezone.NormalizeClock(localClock))
}

func (r *repositoryImpl) execOne(ctx context.Context, tx *sqlx.Tx, op, query string, args ...any) error {
	result, err := tx.ExecContext(ctx, query, args...)
	if err != nil {
		return failure.FromPostgres(op, err) //nolint:wrapcheck
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return failure.FromPostgres(op, err) //nolint:wrapcheck
	}

	if affected != 1 {
		return failure.InternalError(fmt.Errorf("%s: expected 1 row, got %d", op, affected)) //nolint:wrapcheck
	}

	return nil
}

const fetchByDateQuery = `
SELECT a.id, a.court, a.date::text AS date, a.start::text AS start, a."end"::text AS "end",
	EXTRACT(EPOCH FROM a.start)::int / 60 AS start_min,
	EXTRACT(EPOCH FROM a."end")::int / 60 AS end_min,
	a.type, at.lbl AS booking_type_desc, a.bumpable, a.active, COALESCE(a.notes, '') AS notes,
	a.created, a.updated, md5(a.updated::text) AS etag
FROM activity a
JOIN activity_type at ON at.id = a.type
WHERE a.date = $1::date AND a.active = 1
ORDER BY a.court, a.start`

// FetchByDate reads the day's active bookings and their players in two
// queries merged in memory, under one read-only transaction so the two result
// sets are consistent with each other.
func (r *repositoryImpl) FetchByDate(ctx context.Context, date string) (res []model.Booking, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".FetchByDate")
	defer scope.End()
	defer scope.TraceIfError(err)

	res = []model.Booking{}

	err = r.db.WithinReadTx(ctx, func(tx *sqlx.Tx) error {
		if err := tx.SelectContext(ctx, &res, fetchByDateQuery, date); err != nil {
			return failure.FromPostgres("get bookings for date", err) //nolint:wrapcheck
		}

		if len(res) == 0 {
			return nil
		}

		ids := make([]int64, len(res))
		for i, booking := range res {
			ids[i] = booking.ID
		}

		players, err := r.playersFor(ctx, tx, ids)
		if err != nil {
			return err
		}

		byActivity := make(map[int64][]model.Player, len(res))
		for _, player := range players {
			byActivity[player.ActivityID] = append(byActivity[player.ActivityID], player)
		}

		for i := range res {
			res[i].Players = byActivity[res[i].ID]
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return res, nil
}

func (r *repositoryImpl) playersFor(ctx context.Context, tx *sqlx.Tx, activityIDs []int64) ([]model.Player, error) {
	query, args, err := sqlx.In(playersByActivityQuery, activityIDs)
	if err != nil {
		return nil, failure.InternalError(err) //nolint:wrapcheck
	}

	players := []model.Player{}

	if err = tx.SelectContext(ctx, &players, tx.Rebind(query), args...); err != nil {
		return nil, failure.FromPostgres("get players", err) //nolint:wrapcheck
	}

	return players, nil
}

// buildSnapshot derives the epoch fields the rule lists compare. All timezone
// math happens here in Go against the club location, never in SQL.
func buildSnapshot(row snapshotRow, reqTime time.Time) (model.Snapshot, error) {
	var res model.Snapshot

	utcStart, err := timezone.UnixAt(row.Date, row.Start)
	if err != nil {
		return res, failure.InternalError(err) //nolint:wrapcheck
	}

	utcEnd, err := timezone.UnixAt(row.Date, row.End)
	if err != nil {
		return res, failure.InternalError(err) //nolint:wrapcheck
	}

	dayStart, err := timezone.DayStartUnix(row.Date)
	if err != nil {
		return res, failure.InternalError(err) //nolint:wrapcheck
	}

	numericDate, err := timezone.NumericDateOf(row.Date)
	if err != nil {
		return res, failure.InternalError(err) //nolint:wrapcheck
	}

	res = model.Snapshot{
		Booking: row.Booking,

		UTCStart:    utcStart,
		UTCEnd:      utcEnd,
		UTCDayStart: dayStart,
		UTCCreated:  row.Created.Unix(),
		UTCUpdated:  row.Updated.Unix(),
		UTCReqTime:  reqTime.Unix(),
		LocReqDate:  timezone.NumericDate(reqTime),
		LocReqTime:  timezone.Clock(reqTime),
		NumericDate: numericDate,

		CourtOpen:  row.CourtOpen,
		CourtClose: row.CourtClose,
		CourtState: row.CourtState,
		CourtName:  row.CourtName,
		TimeZone:   row.TimeZone,
		ClubID:     row.ClubID,
	}

	return res, nil
}
