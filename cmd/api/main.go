package main

import (
	"context"
	"crypto/tls"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	"github.com/novikdental/compare-platform/internal/api/router"
	"github.com/novikdental/compare-platform/internal/catalog"
	"github.com/novikdental/compare-platform/internal/compare"
	appconfig "github.com/novikdental/compare-platform/internal/config"
	"github.com/novikdental/compare-platform/internal/engine"
	"github.com/novikdental/compare-platform/internal/handoff"
	"github.com/novikdental/compare-platform/internal/http/middleware"
	"github.com/novikdental/compare-platform/internal/observability/metrics"
	"github.com/novikdental/compare-platform/pkg/logging"
)

func main() {
	// Load .env in development; a missing file is fine.
	_ = godotenv.Load()

	cfg := appconfig.Load()

	logger := logging.New(cfg.LogLevel)
	logger.Info("starting compare-platform API server",
		"env", cfg.Env,
		"port", cfg.Port,
	)

	// Build the catalog once; it is read-only for the process lifetime.
	// Validation problems are a startup warning, never a request error.
	cat := catalog.Default()
	if err := cat.Validate(); err != nil {
		logger.Warn("catalog validation reported problems", "error", err)
	}
	logger.Info("catalog loaded", "version", cat.Version())

	eng := engine.New(cat)

	metricsHandler, compareMetrics := setupMetrics()

	ranker := setupRanker(context.Background(), cfg, eng, logger)

	// Lead storage: Postgres when configured, in-memory otherwise.
	var handoffRepo handoff.Repository = handoff.NewInMemoryRepository()
	if cfg.DatabaseURL != "" {
		pool, err := pgxpool.New(context.Background(), cfg.DatabaseURL)
		if err != nil {
			logger.Error("failed to create pgx pool", "error", err)
			os.Exit(1)
		}
		defer pool.Close()
		handoffRepo = handoff.NewPostgresRepository(pool)
		logger.Info("handoff leads stored in postgres")
	} else {
		logger.Warn("DATABASE_URL not set, handoff leads stored in memory")
	}

	routerCfg := &router.Config{
		Logger:             logger,
		CompareHandler:     compare.NewHandler(eng, ranker, compareMetrics, logger),
		HandoffHandler:     handoff.NewHandler(handoffRepo, compareMetrics, logger),
		MetricsHandler:     metricsHandler,
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
		CatalogVersion:     cat.Version(),
		HandoffRate:        middleware.DefaultLeadRate,
		HandoffBurst:       middleware.DefaultLeadBurst,
	}
	r := router.New(routerCfg)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	logger.Info("server stopped")
	fmt.Println("Server exited gracefully")
}

// setupMetrics builds the process-local Prometheus registry and the
// application metric set exported on /metrics.
func setupMetrics() (http.Handler, *metrics.CompareMetrics) {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	compareMetrics := metrics.NewCompareMetrics(registry)
	return promhttp.HandlerFor(registry, promhttp.HandlerOpts{}), compareMetrics
}

// setupRanker returns the Redis-memoized ranker when caching is enabled and
// Redis answers a ping, nil otherwise. A nil ranker makes the handlers
// compute rankings directly.
func setupRanker(ctx context.Context, cfg *appconfig.Config, eng *engine.Engine, logger *logging.Logger) compare.Ranker {
	if !cfg.RankCacheEnabled || cfg.RedisAddr == "" {
		return nil
	}
	opts := &redis.Options{Addr: cfg.RedisAddr, Password: cfg.RedisPassword}
	if cfg.RedisTLS {
		opts.TLSConfig = &tls.Config{MinVersion: tls.VersionTLS12}
	}
	rdb := redis.NewClient(opts)
	if err := rdb.Ping(ctx).Err(); err != nil {
		logger.Warn("redis unreachable, ranking cache disabled", "error", err)
		return nil
	}
	logger.Info("ranking cache enabled", "addr", cfg.RedisAddr)
	return engine.NewCachedRanker(eng, rdb, logger)
}
