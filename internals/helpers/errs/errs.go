// file: internals/helpers/errs/errs.go
package errs

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

// Error is a typed, caller-recoverable failure. Code is the stable outward
// identifier; Status is the HTTP status it maps to. Internal detail (SQL,
// foreign tenant ids) never goes into Message.
type Error struct {
	Code    string
	Status  int
	Message string
}

func (e *Error) Error() string { return e.Message }

/* ===============================
   Taxonomy
=================================*/

var (
	ErrMissingTenant = &Error{
		Code: "MISSING_TENANT", Status: fiber.StatusBadRequest,
		Message: "School context not found. Provide a token claim, X-School-ID header, or subdomain.",
	}
	ErrUnknownTenant = &Error{
		Code: "UNKNOWN_TENANT", Status: fiber.StatusNotFound,
		Message: "School not found or not active.",
	}
	ErrTenantSuspended = &Error{
		Code: "TENANT_SUSPENDED", Status: fiber.StatusForbidden,
		Message: "This school is suspended.",
	}
	ErrCrossTenantAccess = &Error{
		Code: "CROSS_TENANT_ACCESS", Status: fiber.StatusForbidden,
		Message: "You do not have access to this school.",
	}
	ErrInsufficientPermission = &Error{
		Code: "INSUFFICIENT_PERMISSION", Status: fiber.StatusForbidden,
		Message: "Your role does not grant this permission.",
	}
	ErrInactiveUser = &Error{
		Code: "INACTIVE_USER", Status: fiber.StatusForbidden,
		Message: "Your account is inactive or suspended.",
	}
	ErrTenantBindingFailed = &Error{
		Code: "TENANT_BINDING_FAILED", Status: fiber.StatusInternalServerError,
		Message: "Could not bind the request to a school. The operation was not executed.",
	}
	ErrNoCurrentAcademicYear = &Error{
		Code: "NO_CURRENT_ACADEMIC_YEAR", Status: fiber.StatusUnprocessableEntity,
		Message: "No current academic year is set for this school.",
	}
	ErrDuplicateEnrollment = &Error{
		Code: "DUPLICATE_ENROLLMENT", Status: fiber.StatusConflict,
		Message: "The student already has an active enrollment for this class and year.",
	}
	// Raised when the storage layer detects a race (unique-constraint hit).
	// The only member of the taxonomy that is safe to retry.
	ErrConcurrentInvariantConflict = &Error{
		Code: "CONCURRENT_INVARIANT_CONFLICT", Status: fiber.StatusConflict,
		Message: "A concurrent request modified the same data. Retry the operation.",
	}
	ErrTermLocked = &Error{
		Code: "TERM_LOCKED", Status: fiber.StatusLocked,
		Message: "This term is locked; no further writes are permitted.",
	}
	ErrNotFound = &Error{
		Code: "NOT_FOUND", Status: fiber.StatusNotFound,
		Message: "Data not found.",
	}
)

// New builds a one-off typed error outside the fixed taxonomy.
func New(code string, status int, message string) *Error {
	return &Error{Code: code, Status: status, Message: message}
}

// As unwraps err into a taxonomy *Error, if it is one.
func As(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}

// Retryable reports whether the caller may safely retry the failed operation.
func Retryable(err error) bool {
	e, ok := As(err)
	return ok && e == ErrConcurrentInvariantConflict
}
