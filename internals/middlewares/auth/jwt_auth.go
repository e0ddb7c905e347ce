// file: internals/middlewares/auth/jwt_auth.go
package auth

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"

	rbac "schoolku_backend/internals/features/users/rbac"
	helperAuth "schoolku_backend/internals/helpers/auth"
)

type AuthJWTOpts struct {
	Secret              string
	BlacklistChecker    func(rawToken string) (bool, error) // returns true if revoked
	AllowCookieFallback bool                                // accept the access_token cookie when no Bearer header
}

// AuthJWT verifies the bearer token and hydrates the locals the rest of the
// stack reads through helpers/auth.
func AuthJWT(o AuthJWTOpts) fiber.Handler {
	secret := strings.TrimSpace(o.Secret)
	if secret == "" {
		panic("AuthJWT: Secret is required")
	}

	return func(c *fiber.Ctx) error {
		// 1) Bearer header (or cookie, when allowed)
		raw := ""
		if authz := strings.TrimSpace(c.Get(fiber.HeaderAuthorization)); strings.HasPrefix(strings.ToLower(authz), "bearer ") {
			raw = strings.TrimSpace(authz[7:])
		} else if o.AllowCookieFallback {
			raw = strings.TrimSpace(c.Cookies("access_token"))
		}
		if raw == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized")
		}

		// 2) revocation check
		if o.BlacklistChecker != nil {
			if revoked, err := o.BlacklistChecker(raw); err == nil && revoked {
				return fiber.NewError(fiber.StatusUnauthorized, "Token revoked")
			}
		}

		// 3) parse + verify algorithm
		tok, err := jwt.Parse(raw, func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid signing method")
			}
			return []byte(secret), nil
		})
		if err != nil || !tok.Valid {
			return fiber.NewError(fiber.StatusUnauthorized, "Invalid token")
		}

		claims, ok := tok.Claims.(jwt.MapClaims)
		if !ok {
			return fiber.NewError(fiber.StatusUnauthorized, "Invalid token claims")
		}

		// 4) exp with small clock skew
		if err := validateExpiry(claims, 30*time.Second); err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "Token expired")
		}

		c.Locals("jwt_claims", claims)

		// === hydrate locals the helpers expect ===

		switch {
		case strClaim(claims, "id") != "":
			c.Locals(helperAuth.LocUserID, strClaim(claims, "id"))
		case strClaim(claims, "sub") != "":
			c.Locals(helperAuth.LocUserID, strClaim(claims, "sub"))
		case strClaim(claims, "user_id") != "":
			c.Locals(helperAuth.LocUserID, strClaim(claims, "user_id"))
		}

		if s := strClaim(claims, "user_status"); s != "" {
			c.Locals(helperAuth.LocUserStatus, s)
		} else {
			c.Locals(helperAuth.LocUserStatus, "active")
		}

		if v, ok := claims["roles_global"]; ok {
			c.Locals(helperAuth.LocRolesGlobal, readStringSlice(v))
		}

		if v, ok := claims["school_roles"]; ok {
			c.Locals(helperAuth.LocSchoolRoles, readSchoolRoles(v))
		}

		if sid := strClaim(claims, "school_id"); sid != "" {
			c.Locals(helperAuth.LocSchoolID, sid)
		}

		return c.Next()
	}
}

/* ============================
   claim readers
============================ */

func strClaim(m jwt.MapClaims, key string) string {
	if v, ok := m[key]; ok {
		if s, ok := v.(string); ok {
			return strings.TrimSpace(s)
		}
	}
	return ""
}

func validateExpiry(claims jwt.MapClaims, skew time.Duration) error {
	expVal, ok := claims["exp"]
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "token has no exp")
	}
	var expUnix int64
	switch t := expVal.(type) {
	case float64:
		expUnix = int64(t)
	case int64:
		expUnix = t
	default:
		return fiber.NewError(fiber.StatusUnauthorized, "invalid exp type")
	}
	if time.Now().UTC().After(time.Unix(expUnix, 0).UTC().Add(skew)) {
		return fiber.NewError(fiber.StatusUnauthorized, "token expired")
	}
	return nil
}

func readStringSlice(v any) []string {
	out := make([]string, 0)
	switch arr := v.(type) {
	case []string:
		for _, s := range arr {
			if s = strings.TrimSpace(s); s != "" {
				out = append(out, strings.ToLower(s))
			}
		}
	case []any:
		for _, it := range arr {
			if s, ok := it.(string); ok {
				if s = strings.TrimSpace(s); s != "" {
					out = append(out, strings.ToLower(s))
				}
			}
		}
	}
	return out
}

func readSchoolRoles(v any) []rbac.SchoolRolesEntry {
	out := make([]rbac.SchoolRolesEntry, 0)
	arr, ok := v.([]any)
	if !ok {
		return out
	}
	for _, it := range arr {
		m, ok := it.(map[string]any)
		if !ok {
			continue
		}
		var e rbac.SchoolRolesEntry
		if s, ok := m["school_id"].(string); ok {
			if id, err := uuid.Parse(strings.TrimSpace(s)); err == nil {
				e.SchoolID = id
			}
		}
		e.Roles = readStringSlice(m["roles"])
		if e.SchoolID != uuid.Nil && len(e.Roles) > 0 {
			out = append(out, e)
		}
	}
	return out
}
