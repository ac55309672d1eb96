package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"clubhouse/infras/otel"
	"clubhouse/infras/postgres"
	"clubhouse/internal/domains/schedule/model"
	"clubhouse/shared/constant"
	"clubhouse/shared/failure"

	"github.com/jmoiron/sqlx"
)

type Schedule interface {
	OpenWindows(ctx context.Context, clubID int64, date string, weekday int) ([]model.OpenWindow, error)
	GetAll(ctx context.Context, clubID int64) ([]model.Schedule, error)
}

type repositoryImpl struct {
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Schedule {
	return &repositoryImpl{
		db:   db,
		otel: otel,
	}
}

const openWindowsQuery = `
SELECT csi.court,
	EXTRACT(EPOCH FROM csi."open")::int / 60 AS open_min,
	EXTRACT(EPOCH FROM csi."close")::int / 60 AS close_min
FROM club_schedule cs
JOIN court_schedule_item csi ON csi.schedule = cs.id
WHERE cs.club = $1
	AND cs."from" <= $2::date
	AND cs."to" >= $2::date
	AND csi.dayofweek = $3
ORDER BY csi.court, open_min`

// OpenWindows returns the open intervals of every schedule valid on the date,
// for the date's weekday, in the sort order the sweep requires.
func (r *repositoryImpl) OpenWindows(ctx context.Context, clubID int64, date string, weekday int) (res []model.OpenWindow, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".OpenWindows")
	defer scope.End()
	defer scope.TraceIfError(err)

	res = []model.OpenWindow{}

	if err = r.db.Read.SelectContext(ctx, &res, openWindowsQuery, clubID, date, weekday); err != nil {
		return nil, failure.FromPostgres("get open windows", err) //nolint:wrapcheck
	}

	return res, nil
}

const getAllQuery = `
SELECT id, club, name, "from"::text AS "from", "to"::text AS "to"
FROM club_schedule
WHERE club = $1
ORDER BY "from", id`

const getItemsQuery = `
SELECT id, schedule, court, dayofweek,
	EXTRACT(EPOCH FROM "open")::int / 60 AS open_min,
	EXTRACT(EPOCH FROM "close")::int / 60 AS close_min,
	COALESCE(message, '') AS message
FROM court_schedule_item
WHERE schedule IN (?)
ORDER BY schedule, court, dayofweek, open_min`

// GetAll lists the club's schedules with their items nested.
func (r *repositoryImpl) GetAll(ctx context.Context, clubID int64) (res []model.Schedule, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	res = []model.Schedule{}

	if err = r.db.Read.SelectContext(ctx, &res, getAllQuery, clubID); err != nil {
		return nil, failure.FromPostgres("get schedules", err) //nolint:wrapcheck
	}

	if len(res) == 0 {
		return res, nil
	}

	ids := make([]int64, len(res))
	for i, schedule := range res {
		ids[i] = schedule.ID
	}

	query, args, err := sqlx.In(getItemsQuery, ids)
	if err != nil {
		return nil, failure.InternalError(err) //nolint:wrapcheck
	}

	items := []model.ScheduleItem{}
	if err = r.db.Read.SelectContext(ctx, &items, r.db.Read.Rebind(query), args...); err != nil {
		return nil, failure.FromPostgres("get schedule items", err) //nolint:wrapcheck
	}

	byID := make(map[int64]int, len(res))
	for i, schedule := range res {
		byID[schedule.ID] = i
	}

	for _, item := range items {
		i := byID[item.ScheduleID]
		res[i].Items = append(res[i].Items, item)
	}

	return res, nil
}
