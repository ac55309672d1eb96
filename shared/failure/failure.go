package failure

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/lib/pq"
)

// Kind classifies a failure for callers that need to decide between
// rejecting, retrying, and reporting.
type Kind string

const (
	KindValidation       Kind = "validation"
	KindNotFoundOrStale  Kind = "not_found_or_stale"
	KindPermissionDenied Kind = "permission_denied"
	KindConflict         Kind = "conflict"
	KindTransientStore   Kind = "transient_store"
	KindIntegrity        Kind = "integrity"
	KindInternal         Kind = "internal"
)

// Failure is a wrapper for error messages and codes using standard HTTP response codes.
type Failure struct {
	Kind    Kind   `json:"kind"`
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (e *Failure) Error() string {
	return e.Message
}

// BadRequest returns a new Failure with code for bad requests.
func BadRequest(err error) error {
	if err != nil {
		return &Failure{
			Kind:    KindValidation,
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		}
	}

	return nil
}

// BadRequestFromString returns a new Failure with code for bad requests with message set from string.
func BadRequestFromString(msg string) error {
	return &Failure{
		Kind:    KindValidation,
		Code:    http.StatusBadRequest,
		Message: msg,
	}
}

// NotFoundOrStale marks a row that is either missing or was changed under the
// caller's feet (etag mismatch). The two cases are indistinguishable on
// purpose: the locking fetch matches id and etag in one predicate.
func NotFoundOrStale(entityName string) error {
	return &Failure{
		Kind:    KindNotFoundOrStale,
		Code:    http.StatusNotFound,
		Message: entityName + " not found or modified concurrently",
	}
}

// PermissionDenied carries the first failing rule reason.
func PermissionDenied(action, reason string) error {
	return &Failure{
		Kind:    KindPermissionDenied,
		Code:    http.StatusUnprocessableEntity,
		Message: fmt.Sprintf("%s permission denied: %s", action, reason),
	}
}

// Conflict returns a new Failure with code for conflict situations.
func Conflict(message string) error {
	return &Failure{
		Kind:    KindConflict,
		Code:    http.StatusConflict,
		Message: message,
	}
}

// Transient marks store errors that are safe for the caller to retry.
func Transient(msg string) error {
	return &Failure{
		Kind:    KindTransientStore,
		Code:    http.StatusServiceUnavailable,
		Message: msg,
	}
}

// Integrity marks storage invariant violations that retrying will not fix.
func Integrity(msg string) error {
	return &Failure{
		Kind:    KindIntegrity,
		Code:    http.StatusUnprocessableEntity,
		Message: msg,
	}
}

// InternalError returns a new Failure with code for internal error and message derived from an error interface.
func InternalError(err error) error {
	if err != nil {
		return &Failure{
			Kind:    KindInternal,
			Code:    http.StatusInternalServerError,
			Message: err.Error(),
		}
	}

	return nil
}

// NotFound returns a new Failure with code for entity not found.
func NotFound(entityName string) error {
	return &Failure{
		Kind:    KindNotFoundOrStale,
		Code:    http.StatusNotFound,
		Message: entityName,
	}
}

const (
	pqSerializationFailure = "40001"
	pqDeadlockDetected     = "40P01"
	pqLockNotAvailable     = "55P03"
	pqConnectionClass      = "08"
	pqForeignKeyViolation  = "23503"
	pqUniqueViolation      = "23505"
	pqNotNullViolation     = "23502"
	pqCheckViolation       = "23514"
)

// FromPostgres wraps a raw storage error into the taxonomy, tagged with the
// failing operation. Raw driver errors never leave the repository layer.
func FromPostgres(op string, err error) error {
	if err == nil {
		return nil
	}

	var fail *Failure
	if errors.As(err, &fail) {
		return err
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		code := string(pqErr.Code)

		switch {
		case code == pqSerializationFailure, code == pqDeadlockDetected, code == pqLockNotAvailable:
			return Transient(fmt.Sprintf("%s: transient store error, retry later", op))
		case strings.HasPrefix(code, pqConnectionClass):
			return Transient(fmt.Sprintf("%s: store connection error, retry later", op))
		case code == pqForeignKeyViolation, code == pqUniqueViolation, code == pqNotNullViolation, code == pqCheckViolation:
			return Integrity(fmt.Sprintf("%s: %s", op, pqErr.Message))
		}
	}

	return InternalError(fmt.Errorf("%s: %w", op, err))
}

// GetCode returns the error code of an error interface.
func GetCode(err error) int {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Code
	}

	return http.StatusInternalServerError
}

// GetKind returns the failure kind of an error interface.
func GetKind(err error) Kind {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Kind
	}

	return KindInternal
}

// IsTransient reports whether the caller may safely retry the operation.
func IsTransient(err error) bool {
	return GetKind(err) == KindTransientStore
}
