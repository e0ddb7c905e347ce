// file: internals/middlewares/authz/authz.go
package authz

import (
	"github.com/gofiber/fiber/v2"

	"schoolku_backend/internals/features/users/rbac"
	helper "schoolku_backend/internals/helpers"
	helperAuth "schoolku_backend/internals/helpers/auth"
	"schoolku_backend/internals/helpers/errs"
)

// Require builds the principal and target from locals and asks the guard for
// a decision before the handler runs. write marks mutating routes so
// suspended schools reject them.
func Require(g *rbac.Guard, perm rbac.Permission, write bool) fiber.Handler {
	return func(c *fiber.Ctx) error {
		principal, err := helperAuth.BuildPrincipal(c)
		if err != nil {
			return helper.JsonFromError(c, err)
		}
		target, err := helperAuth.Target(c, write)
		if err != nil {
			return helper.JsonFromError(c, err)
		}
		if err := g.Authorize(principal, perm, target); err != nil {
			return helper.JsonFromError(c, err)
		}
		return c.Next()
	}
}

// RequireSystem admits only platform accounts; no tenant is involved.
func RequireSystem() fiber.Handler {
	return func(c *fiber.Ctx) error {
		principal, err := helperAuth.BuildPrincipal(c)
		if err != nil {
			return helper.JsonFromError(c, err)
		}
		if !principal.Active() {
			return helper.JsonFromError(c, errs.ErrInactiveUser)
		}
		if !principal.HasSystemRole() {
			return helper.JsonFromError(c, errs.ErrInsufficientPermission)
		}
		return c.Next()
	}
}
