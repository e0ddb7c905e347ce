// file: internals/features/users/rbac/guard.go
package rbac

import (
	"strings"

	"github.com/google/uuid"

	"schoolku_backend/internals/helpers/errs"
	"schoolku_backend/internals/observability"
)

// Target is the tenant side of an authorization decision: which school the
// operation runs against, that school's lifecycle status, and whether the
// operation writes.
type Target struct {
	SchoolID     uuid.UUID
	SchoolStatus string // pending | active | suspended | inactive
	Write        bool
}

// Guard is the pure authorization decision function. No side effects beyond
// the denial counter; callers log denials themselves.
type Guard struct {
	registry *Registry
}

func NewGuard(registry *Registry) *Guard {
	return &Guard{registry: registry}
}

// Authorize decides allow (nil) or deny (typed error) for principal p
// requesting perm against target t.
//
// Order matters and is deliberate:
//  0. a deactivated user is denied before any role evaluation;
//  1. a suspended school refuses everything except read-only system ops;
//  2. a system-scoped role allows unconditionally;
//  3. tenant mismatch denies before any permission check; isolation always
//     wins over capability;
//  4. the union of the principal's tenant-role permission sets decides.
func (g *Guard) Authorize(p Principal, perm Permission, t Target) error {
	if !p.Active() {
		return g.deny(errs.ErrInactiveUser)
	}

	system := p.HasSystemRole()

	if strings.EqualFold(t.SchoolStatus, "suspended") && (t.Write || !system) {
		return g.deny(errs.ErrTenantSuspended)
	}

	if system {
		return nil
	}

	if p.SchoolID == uuid.Nil || p.SchoolID != t.SchoolID {
		return g.deny(errs.ErrCrossTenantAccess)
	}

	for _, role := range p.RolesIn(t.SchoolID) {
		if g.registry.Grants(strings.ToLower(strings.TrimSpace(role)), perm) {
			return nil
		}
	}
	return g.deny(errs.ErrInsufficientPermission)
}

func (g *Guard) deny(err *errs.Error) error {
	observability.AuthzDenials.WithLabelValues(err.Code).Inc()
	return err
}
