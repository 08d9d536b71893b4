package handler

import (
	"payment-settlement/internal/adapter/http/middleware"
	redisStore "payment-settlement/internal/adapter/storage/redis"
	"payment-settlement/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
)

// LedgerRouterDeps holds all dependencies needed to set up the ledger routes.
type LedgerRouterDeps struct {
	LedgerSvc      ports.LedgerService
	RateLimitStore *redisStore.RateLimitStore // nil = rate limiting disabled
	HealthCheckers []ports.HealthChecker
	Registry       *prometheus.Registry // nil = metrics endpoint disabled
	Logger         zerolog.Logger
}

// SetupLedgerRouter initialises the Gin engine with the wallet ledger's
// routes and middleware.
func SetupLedgerRouter(deps LedgerRouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.MaxBodySize(1 << 16)) // the protocol's payloads are tiny

	r.GET("/health", HealthCheck(deps.HealthCheckers...))

	if deps.Registry != nil {
		r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(deps.Registry, promhttp.HandlerOpts{})))
	}

	rules := middleware.DefaultRateLimitRules()

	// Helper: return rate limiter middleware if store is available, else noop.
	rl := func(group string) gin.HandlerFunc {
		if deps.RateLimitStore == nil {
			return func(c *gin.Context) { c.Next() }
		}
		rule, ok := rules[group]
		if !ok {
			return func(c *gin.Context) { c.Next() }
		}
		return middleware.RateLimiter(deps.RateLimitStore, group, rule, deps.Logger)
	}

	h := NewLedgerHandler(deps.LedgerSvc)

	v1 := r.Group("/api/v1")
	{
		v1.GET("/wallets/:id/balance", rl("balance"), h.GetBalance)
		v1.POST("/orders", rl("orders"), h.CreateOrder)
		v1.POST("/transfers", rl("transfers"), h.Transfer)
		v1.POST("/shutdown", h.Shutdown)
	}

	return r
}
