package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"clubhouse/infras/otel"
	"clubhouse/infras/postgres"
	"clubhouse/internal/domains/person/model"
	"clubhouse/shared/constant"
	"clubhouse/shared/failure"

	"github.com/jmoiron/sqlx"
)

type Person interface {
	FindCandidates(ctx context.Context, tx *sqlx.Tx, clubID int64, personIDs []int64, date string) ([]model.Candidate, error)
}

type repositoryImpl struct {
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Person {
	return &repositoryImpl{
		db:   db,
		otel: otel,
	}
}

const findCandidatesQuery = `
SELECT p.id, p.firstname, p.lastname, m.role
FROM person p
LEFT JOIN membership m
	ON m.person_id = p.id
	AND m.valid_from <= ?::date
	AND m.valid_until >= ?::date
WHERE p.club = ? AND p.id IN (?)
FOR SHARE OF p`

// FindCandidates resolves the requested players against the club roster inside
// the caller's transaction. The share lock keeps the roster rows stable until
// the booking insert commits. Persons without a current membership come back
// with a null role; persons outside the club simply do not come back, which is
// how the caller detects them.
func (r *repositoryImpl) FindCandidates(ctx context.Context, tx *sqlx.Tx, clubID int64, personIDs []int64, date string) (res []model.Candidate, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".FindCandidates")
	defer scope.End()
	defer scope.TraceIfError(err)

	query, args, err := sqlx.In(findCandidatesQuery, date, date, clubID, personIDs)
	if err != nil {
		return nil, failure.InternalError(err) //nolint:wrapcheck
	}

	res = []model.Candidate{}

	if err = tx.SelectContext(ctx, &res, tx.Rebind(query), args...); err != nil {
		return nil, failure.FromPostgres("find player candidates", err) //nolint:wrapcheck
	}

	return res, nil
}
