// file: internals/features/users/rbac/service/seed.go
package service

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"schoolku_backend/internals/constants"
	rbac "schoolku_backend/internals/features/users/rbac"
	model "schoolku_backend/internals/features/users/rbac/model"
)

// SeedCatalog mirrors the static role/permission catalog into the database.
// Idempotent; runs once at startup. The in-memory registry stays the
// authority for authorization decisions; these rows exist for reporting and
// for user_role_assignments foreign keys.
func SeedCatalog(db *gorm.DB, registry *rbac.Registry) error {
	roles := make([]model.RoleModel, 0, len(constants.AllRoles))
	for _, name := range constants.AllRoles {
		scope := "tenant"
		if constants.IsSystemRole(name) {
			scope = "system"
		}
		roles = append(roles, model.RoleModel{RoleName: name, RoleScope: scope})
	}
	if err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "role_name"}},
		DoNothing: true,
	}).Create(&roles).Error; err != nil {
		return err
	}

	perms := make([]model.PermissionModel, 0, len(rbac.Catalog()))
	for _, p := range rbac.Catalog() {
		perms = append(perms, model.PermissionModel{
			PermissionResource: p.Resource(),
			PermissionAction:   p.Action(),
		})
	}
	if err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "permission_resource"}, {Name: "permission_action"}},
		DoNothing: true,
	}).Create(&perms).Error; err != nil {
		return err
	}

	// role_permissions mirrors the registry's sets
	var links []model.RolePermissionModel
	for _, roleName := range registry.Roles() {
		var role model.RoleModel
		if err := db.Where("role_name = ?", roleName).First(&role).Error; err != nil {
			return err
		}
		for _, p := range registry.PermissionsOf(roleName) {
			var perm model.PermissionModel
			if err := db.Where("permission_resource = ? AND permission_action = ?",
				p.Resource(), p.Action()).First(&perm).Error; err != nil {
				return err
			}
			links = append(links, model.RolePermissionModel{
				RolePermissionRoleID:       role.RoleID,
				RolePermissionPermissionID: perm.PermissionID,
			})
		}
	}
	if len(links) == 0 {
		return nil
	}
	return db.Clauses(clause.OnConflict{DoNothing: true}).Create(&links).Error
}
