package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/rickstaa/ai-compute-visualizer/internal/api"
	"github.com/rickstaa/ai-compute-visualizer/internal/config"
	"github.com/rickstaa/ai-compute-visualizer/internal/fetcher"
	"github.com/rickstaa/ai-compute-visualizer/internal/service"
	"github.com/rickstaa/ai-compute-visualizer/internal/store"

	_ "github.com/rickstaa/ai-compute-visualizer/docs/swagger" // Import generated swagger docs
)

// @title AI Compute Visualizer API
// @version 1.0
// @description REST API serving GPU and AI-capability inventory across network orchestrators, flattened and aggregated from a gateway capabilities snapshot

// @contact.name API Support

// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080
// @BasePath /

// @schemes http https
func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	slog.Info("Starting dashboard service",
		slog.String("service", "dashboard"),
		slog.String("version", "1.0.0"),
	)

	// Load configuration from environment
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Configuration error", "error", err)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		slog.Error("Invalid configuration", "error", err)
		os.Exit(1)
	}

	// Snapshot cache backend
	var cache store.SnapshotStore
	switch cfg.Cache.Type {
	case config.CacheTypeRedis:
		slog.Info("Using Redis snapshot cache", "ttl", cfg.Cache.SnapshotTTL)
		redisStore, err := store.NewRedisStore(cfg.Cache.RedisURL, cfg.Cache.SnapshotTTL, logger)
		if err != nil {
			slog.Error("Failed to connect to Redis", "error", err)
			os.Exit(1)
		}
		defer redisStore.Close()
		cache = redisStore
	default:
		slog.Info("Using in-memory snapshot cache", "ttl", cfg.Cache.SnapshotTTL)
		cache = store.NewInMemoryStore(cfg.Cache.SnapshotTTL)
	}

	// Optional ENS name resolution
	var resolver *fetcher.ENSResolver
	if cfg.Fetch.ENSURL != "" {
		resolver = fetcher.NewENSResolver(cfg.Fetch.ENSURL, cfg.Fetch.Timeout, logger)
	} else {
		slog.Info("ENS name resolution disabled")
	}

	snapshotFetcher := fetcher.NewFetcher(cfg.Fetch.CapabilitiesURL, cfg.Fetch.Timeout, resolver, logger)
	dashboard := service.NewService(snapshotFetcher, cache, logger)

	// Create API router with handlers wired to the dashboard service
	router := api.NewRouter(dashboard)

	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      router.Engine(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	slog.Info("Dashboard service initialized",
		slog.String("address", srv.Addr),
		slog.String("source_url", cfg.Fetch.CapabilitiesURL),
		slog.String("endpoints", "/api/v1/report, /api/v1/rows, /api/v1/filters, /api/v1/snapshot, /api/v1/refresh, /api/v1/stats"),
	)

	// Start server in a goroutine
	go func() {
		slog.Info("Starting HTTP server", slog.String("address", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("Failed to start HTTP server", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("Shutting down dashboard service...")

	// Give outstanding requests time to complete
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("Server forced to shutdown", slog.String("error", err.Error()))
		os.Exit(1)
	}

	slog.Info("Dashboard service stopped gracefully")
}
