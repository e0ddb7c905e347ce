// file: internals/helpers/auth/school_context_resolver_test.go
package helper

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"schoolku_backend/internals/helpers/errs"
)

// resolveVia runs ResolveSchoolContext inside a real fiber handler so header
// and host parsing behave exactly like production.
func resolveVia(t *testing.T, mutate func(c *fiber.Ctx), host string, headers map[string]string) (SchoolContext, error) {
	t.Helper()
	app := fiber.New()

	var got SchoolContext
	var gotErr error
	app.Get("/x", func(c *fiber.Ctx) error {
		if mutate != nil {
			mutate(c)
		}
		got, gotErr = ResolveSchoolContext(c)
		return c.SendStatus(fiber.StatusOK)
	})

	req := httptest.NewRequest("GET", "http://"+host+"/x", nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	_, err := app.Test(req)
	require.NoError(t, err)
	return got, gotErr
}

func TestResolveFromTokenClaimWinsOverHeader(t *testing.T) {
	tokenSchool := uuid.New()
	headerSchool := uuid.New()

	sc, err := resolveVia(t, func(c *fiber.Ctx) {
		c.Locals(LocSchoolID, tokenSchool.String())
	}, "api.schoolku.id", map[string]string{
		"X-School-ID": headerSchool.String(),
	})
	require.NoError(t, err)
	assert.Equal(t, tokenSchool, sc.ID)
}

func TestResolveFromHeaderID(t *testing.T) {
	id := uuid.New()
	sc, err := resolveVia(t, nil, "api.schoolku.id", map[string]string{
		"X-School-ID": id.String(),
	})
	require.NoError(t, err)
	assert.Equal(t, id, sc.ID)
	assert.Empty(t, sc.Slug)
}

func TestResolveFromHeaderSlug(t *testing.T) {
	sc, err := resolveVia(t, nil, "api.schoolku.id", map[string]string{
		"X-School-Slug": "sdn-merdeka",
	})
	require.NoError(t, err)
	assert.Equal(t, "sdn-merdeka", sc.Slug)
	assert.Equal(t, uuid.Nil, sc.ID)
}

func TestResolveMalformedHeaderIDFallsThrough(t *testing.T) {
	// an unparseable id header is ignored, not treated as a tenant
	sc, err := resolveVia(t, nil, "sdn-merdeka.schoolku.id", map[string]string{
		"X-School-ID": "not-a-uuid",
	})
	require.NoError(t, err)
	assert.Equal(t, "sdn-merdeka", sc.Slug)
}

func TestResolveFromSubdomain(t *testing.T) {
	sc, err := resolveVia(t, nil, "sdn-merdeka.schoolku.id", nil)
	require.NoError(t, err)
	assert.Equal(t, "sdn-merdeka", sc.Slug)
}

func TestResolveSubdomainWithPort(t *testing.T) {
	sc, err := resolveVia(t, nil, "sdn-merdeka.schoolku.id:8080", nil)
	require.NoError(t, err)
	assert.Equal(t, "sdn-merdeka", sc.Slug)
}

func TestResolveReservedSubdomainIsNotATenant(t *testing.T) {
	for _, host := range []string{"www.schoolku.id", "app.schoolku.id", "api.schoolku.id", "admin.schoolku.id"} {
		_, err := resolveVia(t, nil, host, nil)
		assert.ErrorIs(t, err, errs.ErrMissingTenant, host)
	}
}

func TestResolveNoTenantAnywhere(t *testing.T) {
	for _, host := range []string{"schoolku.id", "localhost", "localhost:3000", "127.0.0.1:8080"} {
		_, err := resolveVia(t, nil, host, nil)
		assert.ErrorIs(t, err, errs.ErrMissingTenant, host)
	}
}
