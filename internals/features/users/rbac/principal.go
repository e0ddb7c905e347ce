// file: internals/features/users/rbac/principal.go
package rbac

import (
	"strings"

	"github.com/google/uuid"

	"schoolku_backend/internals/constants"
)

// SchoolRolesEntry is one tenant's worth of roles held by a user, as carried
// in the token's school_roles claim.
type SchoolRolesEntry struct {
	SchoolID uuid.UUID `json:"school_id"`
	Roles    []string  `json:"roles"`
}

// Principal is the resolved caller identity for one request: who they are,
// which school they belong to, and every role they hold. SchoolID is Nil
// only for system-scoped principals.
type Principal struct {
	UserID      uuid.UUID
	SchoolID    uuid.UUID
	Status      string // active | inactive | suspended
	RolesGlobal []string
	SchoolRoles []SchoolRolesEntry
}

// Active reports whether the user account may act at all.
func (p Principal) Active() bool {
	return strings.EqualFold(p.Status, "active")
}

// HasSystemRole reports whether any global role is system-scoped.
func (p Principal) HasSystemRole() bool {
	for _, r := range p.RolesGlobal {
		if constants.IsSystemRole(strings.ToLower(strings.TrimSpace(r))) {
			return true
		}
	}
	return false
}

// RolesIn returns the roles the principal holds within schoolID. Duplicate
// claim entries for the same school are merged.
func (p Principal) RolesIn(schoolID uuid.UUID) []string {
	var out []string
	for _, e := range p.SchoolRoles {
		if e.SchoolID == schoolID {
			out = append(out, e.Roles...)
		}
	}
	return out
}
