// file: internals/helpers/auth/locals.go
package helper

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	rbac "schoolku_backend/internals/features/users/rbac"
	"schoolku_backend/internals/helpers/errs"
)

// Locals keys hydrated by the auth middleware from verified JWT claims.
// Everything downstream reads through the getters below, never the raw keys.
const (
	LocUserID       = "user_id"
	LocUserStatus   = "user_status"
	LocRolesGlobal  = "roles_global"
	LocSchoolRoles  = "school_roles"
	LocSchoolID     = "school_id"      // the user's own school (token claim)
	LocActiveSchool = "active_school"  // resolved tenant for this request
	LocSchoolStatus = "school_status"  // lifecycle status of the resolved tenant
)

/* ============================
   Getters
============================ */

func GetUserID(c *fiber.Ctx) (uuid.UUID, error) {
	if s, ok := c.Locals(LocUserID).(string); ok {
		if id, err := uuid.Parse(strings.TrimSpace(s)); err == nil {
			return id, nil
		}
	}
	return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "user_id not found in token")
}

func GetUserStatus(c *fiber.Ctx) string {
	if s, ok := c.Locals(LocUserStatus).(string); ok {
		return s
	}
	return ""
}

func GetRolesGlobal(c *fiber.Ctx) []string {
	if v, ok := c.Locals(LocRolesGlobal).([]string); ok {
		return v
	}
	return nil
}

func GetSchoolRoles(c *fiber.Ctx) []rbac.SchoolRolesEntry {
	if v, ok := c.Locals(LocSchoolRoles).([]rbac.SchoolRolesEntry); ok {
		return v
	}
	return nil
}

// GetTokenSchoolID returns the school the token itself belongs to, if any.
func GetTokenSchoolID(c *fiber.Ctx) uuid.UUID {
	if s, ok := c.Locals(LocSchoolID).(string); ok {
		if id, err := uuid.Parse(strings.TrimSpace(s)); err == nil {
			return id
		}
	}
	return uuid.Nil
}

// GetActiveSchoolID returns the tenant the request was resolved to.
func GetActiveSchoolID(c *fiber.Ctx) (uuid.UUID, error) {
	if id, ok := c.Locals(LocActiveSchool).(uuid.UUID); ok && id != uuid.Nil {
		return id, nil
	}
	return uuid.Nil, errs.ErrMissingTenant
}

// GetActiveSchoolStatus returns the lifecycle status of the resolved tenant.
func GetActiveSchoolStatus(c *fiber.Ctx) string {
	if s, ok := c.Locals(LocSchoolStatus).(string); ok {
		return s
	}
	return ""
}

// BuildPrincipal assembles the caller identity for one request from the
// locals the auth middleware hydrated.
func BuildPrincipal(c *fiber.Ctx) (rbac.Principal, error) {
	userID, err := GetUserID(c)
	if err != nil {
		return rbac.Principal{}, err
	}
	return rbac.Principal{
		UserID:      userID,
		SchoolID:    GetTokenSchoolID(c),
		Status:      GetUserStatus(c),
		RolesGlobal: GetRolesGlobal(c),
		SchoolRoles: GetSchoolRoles(c),
	}, nil
}

// Target builds the guard target for the resolved tenant of this request.
func Target(c *fiber.Ctx, write bool) (rbac.Target, error) {
	schoolID, err := GetActiveSchoolID(c)
	if err != nil {
		return rbac.Target{}, err
	}
	return rbac.Target{
		SchoolID:     schoolID,
		SchoolStatus: GetActiveSchoolStatus(c),
		Write:        write,
	}, nil
}
