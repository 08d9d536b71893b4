package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"payment-settlement/config"
	httpHandler "payment-settlement/internal/adapter/http/handler"
	"payment-settlement/internal/adapter/ledgerclient"
	redisStorage "payment-settlement/internal/adapter/storage/redis"
	"payment-settlement/internal/core/ports"
	"payment-settlement/internal/metrics"
	"payment-settlement/internal/service"
	"payment-settlement/pkg/logger"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

func main() {
	// Load configuration
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}
	if err := cfg.ValidateStorefront(); err != nil {
		fmt.Fprintf(os.Stderr, "invalid config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.New("storefront", cfg.Log.Level, cfg.Log.Pretty)

	log.Info().
		Int("port", cfg.Storefront.Port).
		Str("ledger_url", cfg.Storefront.LedgerURL).
		Int64("price", cfg.Storefront.Price).
		Msg("Starting storefront")

	ctx := context.Background()

	// One long-lived connection to the wallet ledger for the whole run.
	client := ledgerclient.New(cfg.Storefront.LedgerURL, cfg.Storefront.RequestTimeout)

	// Prometheus registry
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector())
	registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	met := metrics.NewStorefrontMetrics(registry)

	svc, err := service.NewStorefrontService(ctx, client, cfg.Storefront.Price, cfg.Storefront.SellerWallet, log, met)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize storefront (is the wallet ledger up?)")
	}

	// Optional Redis-backed rate limiting
	var rateLimitStore *redisStorage.RateLimitStore
	checkers := []ports.HealthChecker{client}
	if cfg.Redis.Enabled {
		rdb, err := redisStorage.NewClient(ctx, cfg.Redis, log)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to connect to Redis")
		}
		defer rdb.Close()
		log.Info().Msg("Redis connected")

		rateLimitStore = redisStorage.NewRateLimitStore(rdb)
		checkers = append(checkers, redisStorage.NewHealthCheck(rdb))
	}

	router := httpHandler.SetupStorefrontRouter(httpHandler.StorefrontRouterDeps{
		StorefrontSvc:  svc,
		RateLimitStore: rateLimitStore,
		HealthCheckers: checkers,
		Registry:       registry,
		Logger:         log,
	})

	addr := cfg.Storefront.Addr()
	srv := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("addr", addr).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	// Run until a protocol shutdown lands or the process is signalled.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case <-svc.Done():
		log.Info().Msg("Shutdown requested over the protocol")
	case sig := <-quit:
		log.Info().Str("signal", sig.String()).Msg("Shutting down server...")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}
