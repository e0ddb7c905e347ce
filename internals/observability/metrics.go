// file: internals/observability/metrics.go
package observability

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// AuthzDenials counts Authorization Guard denials by stable reason code.
	AuthzDenials = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "schoolku_authz_denials_total",
			Help: "Total authorization denials by reason code",
		},
		[]string{"reason"},
	)

	// TenantBindingFailures counts operations refused because no tenant could
	// be bound. Any non-zero value deserves a look: it signals a potential
	// isolation defect, not ordinary user error.
	TenantBindingFailures = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "schoolku_tenant_binding_failures_total",
			Help: "Total data operations refused for lack of a bound tenant",
		},
	)

	// EnrollmentConflicts counts unique-constraint hits on enrollment inserts.
	EnrollmentConflicts = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "schoolku_enrollment_conflicts_total",
			Help: "Total enrollment inserts rejected by the uniqueness constraint",
		},
	)
)

// MetricsHandler exposes the default registry for scraping.
func MetricsHandler() fiber.Handler {
	return adaptor.HTTPHandler(promhttp.Handler())
}
