package middleware

import (
	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RedisErrors counts Redis errors by command name.
	RedisErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "thinksync_redis_errors_total",
		Help: "Total number of Redis errors by command",
	}, []string{"command"})

	// LoginAttempts counts login attempts grouped by outcome.
	LoginAttempts = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "thinksync_login_attempts_total",
		Help: "Number of login attempts grouped by outcome",
	}, []string{"outcome"})

	// RegistrationAttempts counts registrations grouped by outcome.
	RegistrationAttempts = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "thinksync_registration_attempts_total",
		Help: "Number of registration attempts grouped by outcome",
	}, []string{"outcome"})

	// ModerationDecisions counts admin moderation decisions by outcome.
	ModerationDecisions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "thinksync_moderation_decisions_total",
		Help: "Number of moderation decisions grouped by outcome",
	}, []string{"outcome"})

	// RateLimitHits counts rate limiter activations by limiter name.
	RateLimitHits = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "thinksync_rate_limit_hits_total",
		Help: "Rate limiter activations grouped by limiter name",
	}, []string{"limiter"})
)

// InitMetrics creates the Prometheus HTTP middleware for the given service name.
func InitMetrics(serviceName string) *fiberprometheus.FiberPrometheus {
	return fiberprometheus.New(serviceName)
}

// MetricsMiddleware wraps the fiberprometheus middleware as a Fiber handler.
func MetricsMiddleware(prom *fiberprometheus.FiberPrometheus) fiber.Handler {
	return prom.Middleware
}
