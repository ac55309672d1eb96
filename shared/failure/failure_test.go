package failure_test

import (
	"errors"
	"net/http"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"

	"clubhouse/shared/failure"
)

func TestFromPostgres(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantKind failure.Kind
		wantCode int
	}{
		{
			name:     "serialization failure is transient",
			err:      &pq.Error{Code: "40001"},
			wantKind: failure.KindTransientStore,
			wantCode: http.StatusServiceUnavailable,
		},
		{
			name:     "deadlock is transient",
			err:      &pq.Error{Code: "40P01"},
			wantKind: failure.KindTransientStore,
			wantCode: http.StatusServiceUnavailable,
		},
		{
			name:     "lock not available is transient",
			err:      &pq.Error{Code: "55P03"},
			wantKind: failure.KindTransientStore,
			wantCode: http.StatusServiceUnavailable,
		},
		{
			name:     "connection class is transient",
			err:      &pq.Error{Code: "08006"},
			wantKind: failure.KindTransientStore,
			wantCode: http.StatusServiceUnavailable,
		},
		{
			name:     "foreign key violation is an integrity failure",
			err:      &pq.Error{Code: "23503", Message: "fk violated"},
			wantKind: failure.KindIntegrity,
			wantCode: http.StatusUnprocessableEntity,
		},
		{
			name:     "unique violation is an integrity failure",
			err:      &pq.Error{Code: "23505"},
			wantKind: failure.KindIntegrity,
			wantCode: http.StatusUnprocessableEntity,
		},
		{
			name:     "check violation is an integrity failure",
			err:      &pq.Error{Code: "23514"},
			wantKind: failure.KindIntegrity,
			wantCode: http.StatusUnprocessableEntity,
		},
		{
			name:     "unclassified pq code is internal",
			err:      &pq.Error{Code: "42601"},
			wantKind: failure.KindInternal,
			wantCode: http.StatusInternalServerError,
		},
		{
			name:     "plain error is internal",
			err:      errors.New("boom"),
			wantKind: failure.KindInternal,
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := failure.FromPostgres("insert booking", tt.err)

			assert.Equal(t, tt.wantKind, failure.GetKind(err))
			assert.Equal(t, tt.wantCode, failure.GetCode(err))
		})
	}
}

func TestFromPostgres_Nil(t *testing.T) {
	assert.NoError(t, failure.FromPostgres("fetch booking", nil))
}

// An already-classified failure keeps its classification through the mapper.
func TestFromPostgres_Passthrough(t *testing.T) {
	original := failure.NotFoundOrStale("booking")

	err := failure.FromPostgres("lock booking", original)

	assert.Equal(t, original, err)
	assert.Equal(t, failure.KindNotFoundOrStale, failure.GetKind(err))
}

func TestPermissionDenied(t *testing.T) {
	err := failure.PermissionDenied("CANCEL", "Booking must be active")

	assert.Equal(t, failure.KindPermissionDenied, failure.GetKind(err))
	assert.Equal(t, http.StatusUnprocessableEntity, failure.GetCode(err))
	assert.EqualError(t, err, "CANCEL permission denied: Booking must be active")
}

func TestNotFoundOrStale(t *testing.T) {
	err := failure.NotFoundOrStale("booking")

	assert.Equal(t, failure.KindNotFoundOrStale, failure.GetKind(err))
	assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	assert.EqualError(t, err, "booking not found or modified concurrently")
}

func TestIsTransient(t *testing.T) {
	assert.True(t, failure.IsTransient(failure.Transient("retry me")))
	assert.False(t, failure.IsTransient(failure.Conflict("overlap")))
	assert.False(t, failure.IsTransient(errors.New("boom")))
}

func TestGetKind_UnclassifiedError(t *testing.T) {
	assert.Equal(t, failure.KindInternal, failure.GetKind(errors.New("boom")))
	assert.Equal(t, http.StatusInternalServerError, failure.GetCode(errors.New("boom")))
}
