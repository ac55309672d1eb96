package service

import (
	"context"
	"fmt"

	"clubhouse/config"
	"clubhouse/infras/kafka"
	"clubhouse/infras/otel"
	"clubhouse/infras/postgres"
	"clubhouse/internal/domains/booking/command"
	"clubhouse/internal/domains/booking/model"
	"clubhouse/internal/domains/booking/model/dto"
	"clubhouse/internal/domains/booking/repository"
	"clubhouse/internal/domains/booking/rules"
	personRepo "clubhouse/internal/domains/person/repository"
	"clubhouse/shared/constant"
	"clubhouse/shared/failure"
	"clubhouse/shared/timezone"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

const commandCreate = "CREATE"

type Booking interface {
	Create(ctx context.Context, req dto.CreateBookingRequest) (int64, error)
	GetForDate(ctx context.Context, date string) (dto.GetBookingsResponse, error)
	Get(ctx context.Context, id int64) (dto.BookingResponse, error)
	Patch(ctx context.Context, id int64, cmd dto.PatchCommand) (dto.PatchBookingResponse, error)
	Overlapping(ctx context.Context, courtID int64, date, start, end string) ([]dto.OverlapResponse, error)
}

type serviceImpl struct {
	repo       repository.Booking
	personRepo personRepo.Person
	txRunner   postgres.TxRunner
	processor  command.Processor
	checker    rules.Checker
	events     kafka.Client
	cfg        *config.Config
	otel       otel.Otel
}

func New(
	repo repository.Booking,
	personRepo personRepo.Person,
	txRunner postgres.TxRunner,
	processor command.Processor,
	events kafka.Client,
	cfg *config.Config,
	otel otel.Otel,
) Booking {
	return &serviceImpl{
		repo:       repo,
		personRepo: personRepo,
		txRunner:   txRunner,
		processor:  processor,
		checker:    rules.NewChecker(cfg),
		events:     events,
		cfg:        cfg,
		otel:       otel,
	}
}

// bookingChangeEvent tells subscribers which calendar date to refresh.
type bookingChangeEvent struct {
	BookingID int64  `json:"booking_id"`
	Date      string `json:"date"`
	Command   string `json:"command"`
}

// Create runs the whole admission gauntlet in one transaction: resolve the
// players under a share lock, compute the server-side snapshot with the court
// row locked, run the create rules, check overlap under row locks, insert.
func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBookingRequest) (id int64, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	personIDs := make([]int64, len(req.Players))
	unique := make(map[int64]bool, len(req.Players))

	for i, player := range req.Players {
		if unique[player.PersonID] {
			return 0, failure.BadRequestFromString(fmt.Sprintf("duplicate player person id %d", player.PersonID)) //nolint:wrapcheck
		}

		unique[player.PersonID] = true
		personIDs[i] = player.PersonID
	}

	reqTime := timezone.Now()

	err = s.txRunner.WithinTx(ctx, func(tx *sqlx.Tx) error {
		candidates, err := s.personRepo.FindCandidates(ctx, tx, s.cfg.Club.ID, personIDs, req.Date)
		if err != nil {
			return err
		}

		if len(candidates) != len(personIDs) {
			return failure.Integrity("one or more players are not members of this club") //nolint:wrapcheck
		}

		roles := make(map[int64]model.NewPlayer, len(candidates))
		for _, candidate := range candidates {
			roles[candidate.PersonID] = model.NewPlayer{
				PersonID:     candidate.PersonID,
				MemberRoleID: candidate.RoleID,
			}
		}

		players := make([]model.NewPlayer, len(req.Players))
		for i, player := range req.Players {
			resolved := roles[player.PersonID]
			resolved.PlayerTypeID = player.PlayerTypeID
			players[i] = resolved
		}

		candidate := model.NewBooking{
			CourtID:  req.CourtID,
			Date:     req.Date,
			Start:    req.Start,
			End:      req.End,
			TypeID:   req.BookingTypeID,
			Bumpable: req.Bumpable,
			Notes:    req.Notes,
			Players:  players,
		}

		snapshot, err := s.repo.ComputeNew(ctx, tx, candidate, reqTime)
		if err != nil {
			return err
		}

		if reasons := s.checker.CheckCreate(rules.CreateView(snapshot)); len(reasons) > 0 {
			return failure.PermissionDenied(rules.ActionCreate.String(), reasons[0]) //nolint:wrapcheck
		}

		overlaps, err := s.repo.Overlapping(ctx, tx, req.CourtID, req.Date, req.Start, req.End)
		if err != nil {
			return err
		}

		if len(overlaps) > 0 {
			return failure.Conflict(fmt.Sprintf("booking overlaps %d existing booking(s)", len(overlaps))) //nolint:wrapcheck
		}

		id, err = s.repo.Insert(ctx, tx, candidate)

		return err
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to create booking")

		return 0, err
	}

	s.publishChange(ctx, id, req.Date, commandCreate)

	return id, nil
}

func (s *serviceImpl) GetForDate(ctx context.Context, date string) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetForDate")
	defer scope.End()
	defer scope.TraceIfError(err)

	bookings, err := s.repo.FetchByDate(ctx, date)
	if err != nil {
		log.Error().Err(err).Str("date", date).Msg("failed to get bookings for date")

		return res, fmt.Errorf("failed to get bookings for date: %w", err)
	}

	res.FromModels(bookings)

	return res, nil
}

// Get returns the booking with the lifecycle actions the current moment
// permits, so clients can enable or disable controls without re-deriving the
// rules.
func (s *serviceImpl) Get(ctx context.Context, id int64) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	snapshot, err := s.repo.Fetch(ctx, id, timezone.Now())
	if err != nil {
		log.Error().Err(err).Int64("booking", id).Msg("failed to get booking")

		return res, fmt.Errorf("failed to get booking: %w", err)
	}

	snapshot.Permissions = []string{}

	for _, action := range rules.MutationActions {
		if reasons := s.checker.Check(action, snapshot); len(reasons) == 0 {
			snapshot.Permissions = append(snapshot.Permissions, action.String())
		}
	}

	res.FromSnapshot(snapshot)

	return res, nil
}

func (s *serviceImpl) Patch(ctx context.Context, id int64, cmd dto.PatchCommand) (res dto.PatchBookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Patch")
	defer scope.End()
	defer scope.TraceIfError(err)

	res, err = s.processor.Execute(ctx, id, cmd)
	if err != nil {
		return res, fmt.Errorf("failed to patch booking: %w", err)
	}

	s.publishChange(ctx, id, res.Date, cmd.Name)

	return res, nil
}

func (s *serviceImpl) Overlapping(ctx context.Context, courtID int64, date, start, end string) (res []dto.OverlapResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Overlapping")
	defer scope.End()
	defer scope.TraceIfError(err)

	overlaps, err := s.repo.OverlappingRead(ctx, courtID, date, start, end)
	if err != nil {
		log.Error().Err(err).Msg("failed to find overlapping bookings")

		return nil, fmt.Errorf("failed to find overlapping bookings: %w", err)
	}

	res = make([]dto.OverlapResponse, len(overlaps))
	for i, overlap := range overlaps {
		res[i] = dto.OverlapResponse{
			ID:        overlap.ID,
			Date:      overlap.Date,
			Start:     overlap.Start,
			End:       overlap.End,
			CourtID:   overlap.CourtID,
			CourtName: overlap.CourtName,
		}
	}

	return res, nil
}

// publishChange emits the booking_change event after commit. Delivery is best
// effort (the writer itself is async); the store already holds the truth.
func (s *serviceImpl) publishChange(ctx context.Context, id int64, date, cmd string) {
	event := kafka.Message{
		Key: date,
		Value: bookingChangeEvent{
			BookingID: id,
			Date:      date,
			Command:   cmd,
		},
	}

	if err := s.events.SendMessages(context.WithoutCancel(ctx), s.cfg.Kafka.Topic, event); err != nil {
		log.Error().Err(err).Int64("booking", id).Str("command", cmd).Msg("failed to publish booking change")
	}
}
