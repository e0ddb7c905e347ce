// file: internals/features/users/rbac/permission.go
package rbac

// Permission is a (resource, action) capability tag. The catalog is fixed at
// compile time; rows in the permissions table mirror it for reporting only.
type Permission string

const (
	// School management (system scope)
	PermManageSchools Permission = "school:manage"
	PermViewSchools   Permission = "school:view"

	// User management
	PermManageUsers Permission = "user:manage"
	PermViewUsers   Permission = "user:view"

	// People
	PermManageStaff    Permission = "staff:manage"
	PermViewStaff      Permission = "staff:view"
	PermManageStudents Permission = "student:manage"
	PermViewStudents   Permission = "student:view"

	// Academic
	PermManageCalendar Permission = "calendar:manage"
	PermViewCalendar   Permission = "calendar:view"
	PermManageClasses  Permission = "class:manage"
	PermViewClasses    Permission = "class:view"

	// Enrollment
	PermManageEnrollments Permission = "enrollment:manage"
	PermViewEnrollments   Permission = "enrollment:view"

	// Finance
	PermManageFees Permission = "fee:manage"
	PermViewFees   Permission = "fee:view"
)

// Catalog returns every permission tag, in a stable order.
func Catalog() []Permission {
	return []Permission{
		PermManageSchools, PermViewSchools,
		PermManageUsers, PermViewUsers,
		PermManageStaff, PermViewStaff,
		PermManageStudents, PermViewStudents,
		PermManageCalendar, PermViewCalendar,
		PermManageClasses, PermViewClasses,
		PermManageEnrollments, PermViewEnrollments,
		PermManageFees, PermViewFees,
	}
}

// Resource returns the resource half of the tag.
func (p Permission) Resource() string {
	for i := 0; i < len(p); i++ {
		if p[i] == ':' {
			return string(p[:i])
		}
	}
	return string(p)
}

// Action returns the action half of the tag.
func (p Permission) Action() string {
	for i := 0; i < len(p); i++ {
		if p[i] == ':' {
			return string(p[i+1:])
		}
	}
	return ""
}
