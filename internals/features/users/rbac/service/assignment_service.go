// file: internals/features/users/rbac/service/assignment_service.go
package service

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"schoolku_backend/internals/databases/tenantdb"
	model "schoolku_backend/internals/features/users/rbac/model"
	userModel "schoolku_backend/internals/features/users/user/model"
	"schoolku_backend/internals/helpers/errs"
)

// AssignmentService grants roles to users. Roles and assignments are global
// tables keyed by school id columns, so this service holds the raw handle
// and does its own tenant checks.
type AssignmentService struct {
	DB *gorm.DB
}

func NewAssignmentService(db *gorm.DB) *AssignmentService {
	return &AssignmentService{DB: db}
}

// AssignRole grants roleName to userID within schoolID.
// Invariants enforced here:
//   - a tenant-scoped role assignment's school must equal the user's own
//     school; a school admin can never grant roles into another tenant;
//   - system-scoped roles are never assignable through the tenant path.
func (s *AssignmentService) AssignRole(ctx context.Context, schoolID, userID uuid.UUID, roleName string) (*model.UserRoleAssignmentModel, error) {
	if schoolID == uuid.Nil {
		return nil, errs.ErrTenantBindingFailed
	}

	var role model.RoleModel
	if err := s.DB.WithContext(ctx).
		Where("role_name = ?", strings.ToLower(strings.TrimSpace(roleName))).
		First(&role).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.ErrNotFound
		}
		return nil, err
	}
	if role.RoleScope == "system" {
		return nil, errs.ErrInsufficientPermission
	}

	var user userModel.UserModel
	if err := s.DB.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.ErrNotFound
		}
		return nil, err
	}
	// the user must actually belong to the tenant the assignment is made under
	if user.UserSchoolID == nil || *user.UserSchoolID != schoolID {
		return nil, errs.ErrCrossTenantAccess
	}

	asg := model.UserRoleAssignmentModel{
		UserRoleAssignmentUserID:   user.UserID,
		UserRoleAssignmentRoleID:   role.RoleID,
		UserRoleAssignmentSchoolID: &schoolID,
	}
	if err := s.DB.WithContext(ctx).Create(&asg).Error; err != nil {
		if tenantdb.IsUniqueViolation(err) {
			// already assigned; treat as idempotent
			if err2 := s.DB.WithContext(ctx).
				Where("user_role_assignment_user_id = ? AND user_role_assignment_role_id = ? AND user_role_assignment_school_id = ?",
					user.UserID, role.RoleID, schoolID).
				First(&asg).Error; err2 == nil {
				return &asg, nil
			}
			return nil, errs.ErrConcurrentInvariantConflict
		}
		return nil, err
	}
	return &asg, nil
}

// RolesOf returns the role names userID holds within schoolID.
func (s *AssignmentService) RolesOf(ctx context.Context, schoolID, userID uuid.UUID) ([]string, error) {
	var names []string
	err := s.DB.WithContext(ctx).
		Model(&model.UserRoleAssignmentModel{}).
		Select("roles.role_name").
		Joins("JOIN roles ON roles.role_id = user_role_assignments.user_role_assignment_role_id").
		Where("user_role_assignment_user_id = ? AND user_role_assignment_school_id = ?", userID, schoolID).
		Scan(&names).Error
	return names, err
}
