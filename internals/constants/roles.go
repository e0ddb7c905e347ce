// file: internals/constants/roles.go
package constants

// Role names. system_admin is system-scoped; everything else is scoped to a
// single school via user_role_assignments.
const (
	RoleSystemAdmin = "system_admin"
	RoleSchoolAdmin = "school_admin"
	RoleAccountant  = "accountant"
	RoleTeacher     = "teacher"
	RoleParent      = "parent"
	RoleStudent     = "student"
)

// ==========================
// Grouped Role Slices
// ==========================
var (
	AllRoles = []string{
		RoleSystemAdmin,
		RoleSchoolAdmin,
		RoleAccountant,
		RoleTeacher,
		RoleParent,
		RoleStudent,
	}

	SystemRoles = []string{
		RoleSystemAdmin,
	}

	TenantRoles = []string{
		RoleSchoolAdmin,
		RoleAccountant,
		RoleTeacher,
		RoleParent,
		RoleStudent,
	}

	StaffRoles = []string{
		RoleSchoolAdmin,
		RoleAccountant,
		RoleTeacher,
	}

	AdminAndAbove = []string{
		RoleSchoolAdmin,
		RoleSystemAdmin,
	}
)

// IsSystemRole reports whether name is a system-scoped role.
func IsSystemRole(name string) bool {
	for _, r := range SystemRoles {
		if r == name {
			return true
		}
	}
	return false
}
