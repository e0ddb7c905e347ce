// file: internals/features/users/rbac/registry.go
package rbac

import (
	"schoolku_backend/internals/constants"
)

// Registry maps role names to fixed permission sets. It is built once at
// process start and never mutated afterwards, so concurrent reads need no
// locking.
type Registry struct {
	perms map[string]map[Permission]struct{}
}

// NewRegistry builds the immutable role→permission mapping.
// system_admin carries no explicit set: it bypasses permission checks in the
// guard instead.
func NewRegistry() *Registry {
	build := func(ps ...Permission) map[Permission]struct{} {
		m := make(map[Permission]struct{}, len(ps))
		for _, p := range ps {
			m[p] = struct{}{}
		}
		return m
	}

	return &Registry{perms: map[string]map[Permission]struct{}{
		constants.RoleSchoolAdmin: build(
			PermViewSchools,
			PermManageUsers, PermViewUsers,
			PermManageStaff, PermViewStaff,
			PermManageStudents, PermViewStudents,
			PermManageCalendar, PermViewCalendar,
			PermManageClasses, PermViewClasses,
			PermManageEnrollments, PermViewEnrollments,
			PermManageFees, PermViewFees,
		),
		constants.RoleAccountant: build(
			PermViewStudents,
			PermViewCalendar, PermViewClasses,
			PermViewEnrollments,
			PermManageFees, PermViewFees,
		),
		constants.RoleTeacher: build(
			PermViewStaff, PermViewStudents,
			PermViewCalendar, PermViewClasses,
			PermViewEnrollments,
			PermViewFees,
		),
		constants.RoleParent: build(
			PermViewCalendar, PermViewClasses,
		),
		constants.RoleStudent: build(
			PermViewCalendar, PermViewClasses,
		),
	}}
}

// Grants reports whether role carries perm.
func (r *Registry) Grants(role string, perm Permission) bool {
	set, ok := r.perms[role]
	if !ok {
		return false
	}
	_, ok = set[perm]
	return ok
}

// PermissionsOf returns the permission set of role (nil for unknown roles).
// The returned slice is a copy.
func (r *Registry) PermissionsOf(role string) []Permission {
	set, ok := r.perms[role]
	if !ok {
		return nil
	}
	out := make([]Permission, 0, len(set))
	for p := range set {
		out = append(out, p)
	}
	return out
}

// Roles returns every tenant-scoped role name known to the registry.
func (r *Registry) Roles() []string {
	out := make([]string, 0, len(r.perms))
	for name := range r.perms {
		out = append(out, name)
	}
	return out
}
