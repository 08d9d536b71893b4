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

// StorefrontRouterDeps holds all dependencies needed to set up the
// storefront routes.
type StorefrontRouterDeps struct {
	StorefrontSvc  ports.StorefrontService
	RateLimitStore *redisStore.RateLimitStore // nil = rate limiting disabled
	HealthCheckers []ports.HealthChecker
	Registry       *prometheus.Registry // nil = metrics endpoint disabled
	Logger         zerolog.Logger
}

// SetupStorefrontRouter initialises the Gin engine with the storefront's
// routes and middleware.
func SetupStorefrontRouter(deps StorefrontRouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.MaxBodySize(1 << 16))

	r.GET("/health", HealthCheck(deps.HealthCheckers...))

	if deps.Registry != nil {
		r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(deps.Registry, promhttp.HandlerOpts{})))
	}

	rules := middleware.DefaultRateLimitRules()

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

	h := NewStorefrontHandler(deps.StorefrontSvc)

	v1 := r.Group("/api/v1")
	{
		v1.GET("/price", h.GetPrice)
		v1.POST("/sales", rl("sales"), h.Sell)
		v1.POST("/shutdown", h.Shutdown)
	}

	return r
}
