package service

import (
	"context"
	"fmt"

	"clubhouse/config"
	"clubhouse/infras/otel"
	courtRepo "clubhouse/internal/domains/court/repository"
	"clubhouse/internal/domains/schedule"
	"clubhouse/internal/domains/schedule/model/dto"
	"clubhouse/internal/domains/schedule/repository"
	"clubhouse/shared/constant"
	"clubhouse/shared/failure"
	"clubhouse/shared/timezone"

	"github.com/rs/zerolog/log"
)

type Schedule interface {
	ClosedFramesForDate(ctx context.Context, date string) (dto.ClosedFramesResponse, error)
	GetAll(ctx context.Context) (dto.GetSchedulesResponse, error)
}

type serviceImpl struct {
	repo      repository.Schedule
	courtRepo courtRepo.Court
	cfg       *config.Config
	otel      otel.Otel
}

func New(repo repository.Schedule, courtRepo courtRepo.Court, cfg *config.Config, otel otel.Otel) Schedule {
	return &serviceImpl{
		repo:      repo,
		courtRepo: courtRepo,
		cfg:       cfg,
		otel:      otel,
	}
}

// ClosedFramesForDate merges every schedule valid on the date into the closed
// intervals the calendar blocks out, one sweep across all courts.
func (s *serviceImpl) ClosedFramesForDate(ctx context.Context, date string) (res dto.ClosedFramesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ClosedFramesForDate")
	defer scope.End()
	defer scope.TraceIfError(err)

	weekday, err := timezone.Weekday(date)
	if err != nil {
		return res, failure.BadRequestFromString(fmt.Sprintf("invalid date: %v", err)) //nolint:wrapcheck
	}

	courts, err := s.courtRepo.GetAll(ctx, s.cfg.Club.ID)
	if err != nil {
		log.Error().Err(err).Msg("failed to get courts")

		return res, fmt.Errorf("failed to get courts: %w", err)
	}

	courtIDs := make([]int64, len(courts))
	for i, court := range courts {
		courtIDs[i] = court.ID
	}

	windows, err := s.repo.OpenWindows(ctx, s.cfg.Club.ID, date, weekday)
	if err != nil {
		log.Error().Err(err).Msg("failed to get open windows")

		return res, fmt.Errorf("failed to get open windows: %w", err)
	}

	calStart, calEnd := schedule.CalendarWindow(windows, s.cfg.Schedule.DefaultStartMin, s.cfg.Schedule.DefaultEndMin)
	frames := schedule.ClosedFrames(courtIDs, windows, calStart, calEnd)

	res.FromModels(date, frames)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context) (res dto.GetSchedulesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	schedules, err := s.repo.GetAll(ctx, s.cfg.Club.ID)
	if err != nil {
		log.Error().Err(err).Msg("failed to get schedules")

		return res, fmt.Errorf("failed to get schedules: %w", err)
	}

	res.FromModels(schedules)

	return res, nil
}
