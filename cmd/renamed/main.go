package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/rs/zerolog"
	"google.golang.org/grpc/health/grpc_health_v1"

	"github.com/renamebot/renamed/internal/cache"
	"github.com/renamebot/renamed/internal/config"
	grpcserver "github.com/renamebot/renamed/internal/grpc"
	"github.com/renamebot/renamed/internal/httpapi"
	"github.com/renamebot/renamed/internal/metrics"
	"github.com/renamebot/renamed/internal/services"
	"github.com/renamebot/renamed/internal/settings"
)

// cacheLogger adapts zerolog to the cache error reporting interface.
type cacheLogger struct {
	logger zerolog.Logger
}

func (l cacheLogger) Error(msg string, err error) {
	l.logger.Error().Err(err).Msg(msg)
}

func main() {
	cfg := config.GetConfig()
	logger := config.GetLogger()

	logger.Info().
		Str("store_provider", cfg.Store.Provider).
		Str("server_address", cfg.Server.Address).
		Int("server_port", cfg.Server.Port).
		Bool("probe_enabled", cfg.Probe.Enabled).
		Bool("metrics_enabled", cfg.Metrics.Enabled).
		Msg("Application started with configuration")

	if cfg.SentryDSN != "" {
		if err := sentry.Init(sentry.ClientOptions{Dsn: cfg.SentryDSN}); err != nil {
			logger.Error().Err(err).Msg("Failed to initialize Sentry")
		} else {
			defer sentry.Flush(2 * time.Second)
		}
	}

	// Build the settings store on the configured cache backend.
	ttl, err := time.ParseDuration(cfg.Store.TTL)
	if err != nil {
		logger.Fatal().Err(err).Str("ttl", cfg.Store.TTL).Msg("Invalid store TTL")
	}
	backend, err := cache.New(cfg.Store.Provider, cache.ProviderConfig{
		Size:          cfg.Store.MaxEntries,
		TTL:           ttl,
		Group:         "settings",
		Logger:        cacheLogger{logger: logger},
		RedisAddress:  cfg.Store.Redis.Address,
		RedisPassword: cfg.Store.Redis.Password,
		RedisDB:       cfg.Store.Redis.DB,
	})
	if err != nil {
		logger.Fatal().Err(err).Str("provider", cfg.Store.Provider).Msg("Failed to create settings backend")
	}
	defer func() {
		if err := backend.Close(); err != nil {
			logger.Error().Err(err).Msg("Failed to close settings backend")
		}
	}()

	store := settings.NewStore(backend, settings.Limits{
		MaxTemplateLength: cfg.Engine.MaxTemplateLength,
		MaxRules:          cfg.Engine.MaxRules,
	})
	svc := services.NewRenameService(store)

	// Start Prometheus metrics HTTP server
	if cfg.Metrics.Enabled {
		metricsServer := metrics.NewHTTPServer(cfg.Server.Address, cfg.Metrics.Port)
		go func() {
			logger.Info().Str("address", metricsServer.Addr).Msg("Starting Prometheus metrics HTTP server")
			if err := metricsServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				logger.Fatal().Err(err).Msg("Failed to serve metrics")
			}
		}()
		defer func() {
			if err := metricsServer.Shutdown(context.Background()); err != nil {
				logger.Error().Err(err).Msg("Failed to shutdown metrics server")
			}
		}()
	}

	// Start the gRPC health probe and mark the store serving once it is wired.
	if cfg.Probe.Enabled {
		probeServer, healthServer := grpcserver.NewProbeServer()
		probeAddress := fmt.Sprintf("%s:%d", cfg.Server.Address, cfg.Probe.Port)
		probeListener, err := net.Listen("tcp", probeAddress)
		if err != nil {
			logger.Fatal().Err(err).Str("address", probeAddress).Msg("Failed to create probe listener")
		}
		go func() {
			logger.Info().Str("address", probeAddress).Msg("Starting gRPC health probe")
			if err := probeServer.Serve(probeListener); err != nil {
				logger.Error().Err(err).Msg("Probe server stopped")
			}
		}()
		defer probeServer.GracefulStop()
		healthServer.SetServingStatus(grpcserver.ServiceStore, grpc_health_v1.HealthCheckResponse_SERVING)
	}

	httpServer := httpapi.NewServer(cfg, svc)

	// Handle graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		sig := <-sigChan
		logger.Info().Str("signal", sig.String()).Msg("Received shutdown signal")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			logger.Error().Err(err).Msg("Failed to shutdown HTTP server")
		}
	}()

	logger.Info().Str("address", httpServer.Addr).Msg("Starting HTTP API server")
	if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Fatal().Err(err).Msg("Failed to serve HTTP API")
	}

	logger.Info().Msg("Server stopped gracefully")
}
