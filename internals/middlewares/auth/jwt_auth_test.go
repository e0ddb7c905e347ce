// file: internals/middlewares/auth/jwt_auth_test.go
package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	rbac "schoolku_backend/internals/features/users/rbac"
	helperAuth "schoolku_backend/internals/helpers/auth"
)

const testSecret = "test-secret"

func mintToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	if _, ok := claims["exp"]; !ok {
		claims["exp"] = time.Now().Add(time.Hour).Unix()
	}
	raw, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)
	return raw
}

func newAuthApp(opts AuthJWTOpts, inspect func(c *fiber.Ctx) error) *fiber.App {
	app := fiber.New()
	app.Get("/x", AuthJWT(opts), func(c *fiber.Ctx) error {
		if inspect != nil {
			if err := inspect(c); err != nil {
				return err
			}
		}
		return c.SendStatus(fiber.StatusOK)
	})
	return app
}

func TestAuthJWTHydratesLocals(t *testing.T) {
	userID := uuid.New()
	schoolID := uuid.New()
	raw := mintToken(t, jwt.MapClaims{
		"id":          userID.String(),
		"user_status": "active",
		"school_id":   schoolID.String(),
		"school_roles": []map[string]any{
			{"school_id": schoolID.String(), "roles": []string{"Teacher", " school_admin "}},
		},
	})

	app := newAuthApp(AuthJWTOpts{Secret: testSecret}, func(c *fiber.Ctx) error {
		gotUser, err := helperAuth.GetUserID(c)
		require.NoError(t, err)
		assert.Equal(t, userID, gotUser)
		assert.Equal(t, "active", helperAuth.GetUserStatus(c))
		assert.Equal(t, schoolID, helperAuth.GetTokenSchoolID(c))

		roles := helperAuth.GetSchoolRoles(c)
		require.Len(t, roles, 1)
		assert.Equal(t, rbac.SchoolRolesEntry{
			SchoolID: schoolID,
			Roles:    []string{"teacher", "school_admin"},
		}, roles[0])
		return nil
	})

	req := httptest.NewRequest("GET", "/x", nil)
	req.Header.Set(fiber.HeaderAuthorization, "Bearer "+raw)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestAuthJWTRejectsMissingToken(t *testing.T) {
	app := newAuthApp(AuthJWTOpts{Secret: testSecret}, nil)

	resp, err := app.Test(httptest.NewRequest("GET", "/x", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestAuthJWTRejectsExpiredToken(t *testing.T) {
	raw := mintToken(t, jwt.MapClaims{
		"id":  uuid.New().String(),
		"exp": time.Now().Add(-time.Hour).Unix(),
	})
	app := newAuthApp(AuthJWTOpts{Secret: testSecret}, nil)

	req := httptest.NewRequest("GET", "/x", nil)
	req.Header.Set(fiber.HeaderAuthorization, "Bearer "+raw)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestAuthJWTRejectsWrongSecret(t *testing.T) {
	raw, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"id":  uuid.New().String(),
		"exp": time.Now().Add(time.Hour).Unix(),
	}).SignedString([]byte("other-secret"))
	require.NoError(t, err)

	app := newAuthApp(AuthJWTOpts{Secret: testSecret}, nil)

	req := httptest.NewRequest("GET", "/x", nil)
	req.Header.Set(fiber.HeaderAuthorization, "Bearer "+raw)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestAuthJWTRejectsRevokedToken(t *testing.T) {
	raw := mintToken(t, jwt.MapClaims{"id": uuid.New().String()})

	app := newAuthApp(AuthJWTOpts{
		Secret:           testSecret,
		BlacklistChecker: func(string) (bool, error) { return true, nil },
	}, nil)

	req := httptest.NewRequest("GET", "/x", nil)
	req.Header.Set(fiber.HeaderAuthorization, "Bearer "+raw)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestAuthJWTCookieFallback(t *testing.T) {
	raw := mintToken(t, jwt.MapClaims{"id": uuid.New().String()})

	app := newAuthApp(AuthJWTOpts{Secret: testSecret, AllowCookieFallback: true}, nil)

	req := httptest.NewRequest("GET", "/x", nil)
	req.AddCookie(&http.Cookie{Name: "access_token", Value: raw})
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}
