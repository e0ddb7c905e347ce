// file: internals/features/users/rbac/model/rbac_models.go
package model

import (
	"time"

	"github.com/google/uuid"
)

/* ============================================
   Roles & permissions (static catalog mirror)
============================================ */

type RoleModel struct {
	RoleID    uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:role_id" json:"role_id"`
	RoleName  string    `gorm:"type:varchar(50);not null;unique;column:role_name" json:"role_name"`
	RoleScope string    `gorm:"type:varchar(10);not null;column:role_scope" json:"role_scope"` // system | tenant
}

func (RoleModel) TableName() string { return "roles" }

type PermissionModel struct {
	PermissionID       uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:permission_id" json:"permission_id"`
	PermissionResource string    `gorm:"type:varchar(50);not null;column:permission_resource" json:"permission_resource"`
	PermissionAction   string    `gorm:"type:varchar(50);not null;column:permission_action" json:"permission_action"`
}

func (PermissionModel) TableName() string { return "permissions" }

type RolePermissionModel struct {
	RolePermissionRoleID       uuid.UUID `gorm:"type:uuid;primaryKey;column:role_permission_role_id" json:"role_permission_role_id"`
	RolePermissionPermissionID uuid.UUID `gorm:"type:uuid;primaryKey;column:role_permission_permission_id" json:"role_permission_permission_id"`
}

func (RolePermissionModel) TableName() string { return "role_permissions" }

/* ============================================
   User-role assignment (per tenant)
============================================ */

// UserRoleAssignmentModel ties (user, role, school). SchoolID is nil only
// for system-scoped role assignments; for tenant roles it must equal the
// user's own school, which the assignment service enforces.
type UserRoleAssignmentModel struct {
	UserRoleAssignmentID        uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:user_role_assignment_id" json:"user_role_assignment_id"`
	UserRoleAssignmentUserID    uuid.UUID  `gorm:"type:uuid;not null;column:user_role_assignment_user_id" json:"user_role_assignment_user_id"`
	UserRoleAssignmentRoleID    uuid.UUID  `gorm:"type:uuid;not null;column:user_role_assignment_role_id" json:"user_role_assignment_role_id"`
	UserRoleAssignmentSchoolID  *uuid.UUID `gorm:"type:uuid;column:user_role_assignment_school_id" json:"user_role_assignment_school_id,omitempty"`
	UserRoleAssignmentCreatedAt time.Time  `gorm:"type:timestamptz;not null;autoCreateTime;column:user_role_assignment_created_at" json:"user_role_assignment_created_at"`
}

func (UserRoleAssignmentModel) TableName() string { return "user_role_assignments" }
