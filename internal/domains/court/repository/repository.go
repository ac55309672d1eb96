package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"clubhouse/infras/otel"
	"clubhouse/infras/postgres"
	"clubhouse/internal/domains/court/model"
	"clubhouse/shared/constant"
	"clubhouse/shared/failure"
)

type Court interface {
	GetAll(ctx context.Context, clubID int64) ([]model.Court, error)
}

type repositoryImpl struct {
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Court {
	return &repositoryImpl{
		db:   db,
		otel: otel,
	}
}

const getAllQuery = `
SELECT id, club, name, state, openmin, closemin
FROM court
WHERE club = $1
ORDER BY id`

// GetAll returns every court of the club, open or closed. The calendar draws
// closed courts as fully blocked so they must not be filtered out here.
func (r *repositoryImpl) GetAll(ctx context.Context, clubID int64) (res []model.Court, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	res = []model.Court{}

	if err = r.db.Read.SelectContext(ctx, &res, getAllQuery, clubID); err != nil {
		return nil, failure.FromPostgres("get courts", err) //nolint:wrapcheck
	}

	return res, nil
}
