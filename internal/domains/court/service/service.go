package service

import (
	"context"
	"fmt"

	"clubhouse/config"
	"clubhouse/infras/otel"
	"clubhouse/internal/domains/court/model/dto"
	"clubhouse/internal/domains/court/repository"
	"clubhouse/shared/constant"

	"github.com/rs/zerolog/log"
)

type Court interface {
	GetAll(ctx context.Context) (dto.GetCourtsResponse, error)
}

type serviceImpl struct {
	repo repository.Court
	cfg  *config.Config
	otel otel.Otel
}

func New(repo repository.Court, cfg *config.Config, otel otel.Otel) Court {
	return &serviceImpl{
		repo: repo,
		cfg:  cfg,
		otel: otel,
	}
}

func (s *serviceImpl) GetAll(ctx context.Context) (res dto.GetCourtsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	courts, err := s.repo.GetAll(ctx, s.cfg.Club.ID)
	if err != nil {
		log.Error().Err(err).Msg("failed to get courts")

		return res, fmt.Errorf("failed to get courts: %w", err)
	}

	res.FromModels(courts)

	return res, nil
}
