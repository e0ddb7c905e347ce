// file: internals/middlewares/tenant/school_context.go
package tenant

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"schoolku_backend/internals/constants"
	schoolModel "schoolku_backend/internals/features/tenancy/school/model"
	schoolSvc "schoolku_backend/internals/features/tenancy/school/service"
	helper "schoolku_backend/internals/helpers"
	helperAuth "schoolku_backend/internals/helpers/auth"
	"schoolku_backend/internals/helpers/errs"
	"schoolku_backend/internals/helpers/logger"
)

// Paths that never require a tenant (health, metrics, platform auth,
// system-admin school lifecycle).
var exemptPrefixes = []string{
	"/healthz",
	"/metrics",
	"/api/auth/login",
	"/api/auth/register",
	"/api/auth/logout",
	"/api/s/",
}

func isExempt(path string) bool {
	for _, p := range exemptPrefixes {
		if path == strings.TrimSuffix(p, "/") || strings.HasPrefix(path, p) {
			return true
		}
	}
	return false
}

type SchoolContextOpts struct {
	Schools *schoolSvc.SchoolService
}

// SchoolContext resolves the tenant for the request (token claim, header,
// then subdomain), loads the school row, applies lifecycle checks and stores
// the resolved id + status in locals. Runs after AuthJWT so token claims win.
func SchoolContext(o SchoolContextOpts) fiber.Handler {
	if o.Schools == nil {
		panic("SchoolContext: Schools service is required")
	}

	return func(c *fiber.Ctx) error {
		if isExempt(c.Path()) {
			return c.Next()
		}

		sc, err := helperAuth.ResolveSchoolContext(c)
		if err != nil {
			return helper.JsonFromError(c, err)
		}

		var school *schoolModel.SchoolModel
		if sc.ID != uuid.Nil {
			school, err = o.Schools.ByID(c.UserContext(), sc.ID)
		} else {
			school, err = o.Schools.BySlug(c.UserContext(), sc.Slug)
		}
		if err != nil {
			return helper.JsonFromError(c, err)
		}

		// Lifecycle gates. Pending and inactive tenants stay invisible.
		switch school.SchoolStatus {
		case schoolModel.SchoolStatusActive:
			// ok
		case schoolModel.SchoolStatusSuspended:
			if !readOnlyBySystemAdmin(c) {
				logger.L().Info("request rejected for suspended school",
					zap.String("school_id", school.SchoolID.String()),
					zap.String("path", c.Path()))
				return helper.JsonFromError(c, errs.ErrTenantSuspended)
			}
		default:
			return helper.JsonFromError(c, errs.ErrUnknownTenant)
		}

		c.Locals(helperAuth.LocActiveSchool, school.SchoolID)
		c.Locals(helperAuth.LocSchoolStatus, school.SchoolStatus)
		return c.Next()
	}
}

// Suspended schools accept read-only traffic from system roles only.
func readOnlyBySystemAdmin(c *fiber.Ctx) bool {
	if c.Method() != fiber.MethodGet && c.Method() != fiber.MethodHead {
		return false
	}
	for _, r := range helperAuth.GetRolesGlobal(c) {
		if constants.IsSystemRole(r) {
			return true
		}
	}
	return false
}
