// file: internals/helpers/errs/errs_test.go
package errs

import (
	"errors"
	"fmt"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

func TestTaxonomyCodesAndStatuses(t *testing.T) {
	tests := []struct {
		err    *Error
		code   string
		status int
	}{
		{ErrMissingTenant, "MISSING_TENANT", fiber.StatusBadRequest},
		{ErrUnknownTenant, "UNKNOWN_TENANT", fiber.StatusNotFound},
		{ErrTenantSuspended, "TENANT_SUSPENDED", fiber.StatusForbidden},
		{ErrCrossTenantAccess, "CROSS_TENANT_ACCESS", fiber.StatusForbidden},
		{ErrInsufficientPermission, "INSUFFICIENT_PERMISSION", fiber.StatusForbidden},
		{ErrInactiveUser, "INACTIVE_USER", fiber.StatusForbidden},
		{ErrTenantBindingFailed, "TENANT_BINDING_FAILED", fiber.StatusInternalServerError},
		{ErrNoCurrentAcademicYear, "NO_CURRENT_ACADEMIC_YEAR", fiber.StatusUnprocessableEntity},
		{ErrDuplicateEnrollment, "DUPLICATE_ENROLLMENT", fiber.StatusConflict},
		{ErrConcurrentInvariantConflict, "CONCURRENT_INVARIANT_CONFLICT", fiber.StatusConflict},
		{ErrTermLocked, "TERM_LOCKED", fiber.StatusLocked},
		{ErrNotFound, "NOT_FOUND", fiber.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			assert.Equal(t, tt.code, tt.err.Code)
			assert.Equal(t, tt.status, tt.err.Status)
			assert.NotEmpty(t, tt.err.Message)
		})
	}
}

func TestOnlyConcurrentConflictIsRetryable(t *testing.T) {
	assert.True(t, Retryable(ErrConcurrentInvariantConflict))

	for _, err := range []*Error{
		ErrMissingTenant, ErrUnknownTenant, ErrTenantSuspended,
		ErrCrossTenantAccess, ErrInsufficientPermission, ErrInactiveUser,
		ErrTenantBindingFailed, ErrNoCurrentAcademicYear,
		ErrDuplicateEnrollment, ErrTermLocked, ErrNotFound,
	} {
		assert.False(t, Retryable(err), err.Code)
	}
	assert.False(t, Retryable(errors.New("plain")))
	assert.False(t, Retryable(nil))
}

func TestAsUnwrapsWrappedErrors(t *testing.T) {
	wrapped := fmt.Errorf("enroll: %w", ErrDuplicateEnrollment)

	e, ok := As(wrapped)
	assert.True(t, ok)
	assert.Same(t, ErrDuplicateEnrollment, e)

	_, ok = As(errors.New("plain"))
	assert.False(t, ok)
}

func TestRetryableSurvivesWrapping(t *testing.T) {
	wrapped := fmt.Errorf("tx: %w", ErrConcurrentInvariantConflict)
	assert.True(t, Retryable(wrapped))
}
