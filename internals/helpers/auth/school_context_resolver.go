// file: internals/helpers/auth/school_context_resolver.go
package helper

import (
	"net"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"schoolku_backend/internals/helpers/errs"
)

// SchoolContext is the raw outcome of tenant extraction: either an explicit
// id or a slug still to be resolved against the schools table.
type SchoolContext struct {
	ID   uuid.UUID
	Slug string
}

// Subdomains that never identify a tenant.
var reservedSubdomains = map[string]struct{}{
	"www": {}, "app": {}, "api": {}, "admin": {},
}

/* ==========================================
   Resolve context: token claim → header → subdomain
========================================== */

// ResolveSchoolContext extracts the tenant identity from the request.
// First match wins: (1) the school_id claim of the verified token,
// (2) the X-School-ID / X-School-Slug headers, (3) the subdomain.
// Pure extraction; the middleware owns DB lookup and status checks.
func ResolveSchoolContext(c *fiber.Ctx) (SchoolContext, error) {
	// 1) verified token claim
	if id := GetTokenSchoolID(c); id != uuid.Nil {
		return SchoolContext{ID: id}, nil
	}

	// 2) explicit headers
	if h := strings.TrimSpace(c.Get("X-School-ID")); h != "" {
		if id, err := uuid.Parse(h); err == nil {
			return SchoolContext{ID: id}, nil
		}
	}
	if h := strings.TrimSpace(c.Get("X-School-Slug")); h != "" {
		return SchoolContext{Slug: h}, nil
	}

	// 3) subdomain, e.g. {slug}.schoolku.id
	if sub := subdomainOf(c.Hostname()); sub != "" {
		return SchoolContext{Slug: sub}, nil
	}

	return SchoolContext{}, errs.ErrMissingTenant
}

func subdomainOf(host string) string {
	host = strings.ToLower(strings.TrimSpace(host))
	if h, _, err := net.SplitHostPort(host); err == nil {
		host = h
	}
	if host == "" || host == "localhost" || net.ParseIP(host) != nil {
		return ""
	}
	parts := strings.Split(host, ".")
	if len(parts) < 3 {
		return ""
	}
	sub := parts[0]
	if _, reserved := reservedSubdomains[sub]; reserved || sub == "" {
		return ""
	}
	return sub
}
