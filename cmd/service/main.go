// Package main is the entry point for the favqs-quotes service.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/jsamuelsen/favqs-quotes/internal/adapters/clients"
	"github.com/jsamuelsen/favqs-quotes/internal/adapters/clients/acl"
	"github.com/jsamuelsen/favqs-quotes/internal/adapters/http"
	"github.com/jsamuelsen/favqs-quotes/internal/adapters/http/handlers"
	"github.com/jsamuelsen/favqs-quotes/internal/adapters/http/proxy"
	"github.com/jsamuelsen/favqs-quotes/internal/app"
	"github.com/jsamuelsen/favqs-quotes/internal/platform/config"
	"github.com/jsamuelsen/favqs-quotes/internal/platform/logging"
	"github.com/jsamuelsen/favqs-quotes/internal/platform/telemetry"
	"github.com/jsamuelsen/favqs-quotes/internal/ports"
)

// Build-time variables, injected via ldflags.
// Example: go build -ldflags "-X main.Version=1.0.0 -X main.Commit=$(git rev-parse HEAD) -X main.BuildTime=$(date -u +%Y-%m-%dT%H:%M:%SZ)"
var (
	// Version is the semantic version of the service.
	Version = "dev"

	// Commit is the git commit SHA.
	Commit = "unknown"

	// BuildTime is the timestamp when the binary was built.
	BuildTime = "unknown"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx := context.Background()

	// 1. Determine profile from environment
	profile := os.Getenv("APP_ENVIRONMENT")
	if profile == "" {
		profile = "local"
	}

	// 2. Load and validate configuration (fail fast)
	cfg, err := config.Load(profile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	// 3. Initialize logging
	logger := logging.New(&logging.Config{
		Level:   cfg.Log.Level,
		Format:  cfg.Log.Format,
		Service: cfg.App.Name,
		Version: cfg.App.Version,
		File: logging.FileConfig{
			Enabled:    cfg.Log.File.Enabled,
			Path:       cfg.Log.File.Path,
			MaxSizeMB:  cfg.Log.File.MaxSizeMB,
			MaxBackups: cfg.Log.File.MaxBackups,
			MaxAgeDays: cfg.Log.File.MaxAgeDays,
			Compress:   cfg.Log.File.Compress,
		},
	})
	logging.SetDefault(logger)

	logger.Info("starting service",
		slog.String("version", Version),
		slog.String("commit", Commit),
		slog.String("environment", cfg.App.Environment),
	)

	favqs := cfg.Services.FavQs
	if strings.TrimSpace(favqs.Token) == "" {
		logger.Warn("quotes API token is not set, quote requests will fail until it is",
			slog.String("setting", favqs.TokenName),
		)
	}

	// 4. Initialize telemetry (noop if disabled)
	telProvider, err := telemetry.New(ctx, telemetry.FromConfig(&cfg.App, &cfg.Telemetry))
	if err != nil {
		return fmt.Errorf("initializing telemetry: %w", err)
	}

	defer func() {
		if shutdownErr := telProvider.Shutdown(ctx); shutdownErr != nil {
			logger.Error("telemetry shutdown error", slog.Any("error", shutdownErr))
		}
	}()

	// 5. Create health registry
	healthRegistry := ports.NewHealthRegistry()

	// 6. Create the transport client for the quotes API
	httpClient, err := clients.New(&clients.Config{
		BaseURL:     favqs.BaseURL,
		ServiceName: favqs.Name,
		Timeout:     cfg.Client.Timeout,
		Transport:   cfg.Client.Transport,
		Logger:      logger,
	})
	if err != nil {
		return fmt.Errorf("creating HTTP client: %w", err)
	}

	// 7. Create the authorized request client and the quote query adapter (ACL pattern)
	requestClient := acl.NewRequestClient(acl.RequestClientConfig{
		Client:    httpClient,
		Token:     favqs.Token,
		TokenName: favqs.TokenName,
		Logger:    logger,
	})

	quoteClient := acl.NewQuoteClient(acl.QuoteClientConfig{
		Requests: requestClient,
		Logger:   logger,
	})

	// Register quote client as a health checker
	if err := healthRegistry.Register(quoteClient); err != nil {
		return fmt.Errorf("registering quote client health check: %w", err)
	}

	// 8. Create quote service (application layer) with its own metrics registry
	metricsRegistry := prometheus.NewRegistry()
	metricsRegistry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	quoteService := app.NewQuoteService(app.QuoteServiceConfig{
		Source:  quoteClient,
		Logger:  logger,
		Metrics: app.NewTrackerMetrics(metricsRegistry),
	})

	// 9. Create handlers
	buildInfo := handlers.NewBuildInfo(Version, Commit, BuildTime)
	healthHandler := handlers.NewHealthHandler(healthRegistry, buildInfo,
		handlers.WithGatherer(metricsRegistry),
		handlers.WithReadinessTimeout(cfg.Client.Timeout),
	)
	quoteHandler := handlers.NewQuoteHandler(quoteService)

	// 10. Create the development proxy when enabled
	var devProxy *proxy.Proxy

	if cfg.Proxy.Enabled {
		devProxy, err = proxy.New(proxy.Config{
			Prefix: cfg.Proxy.Prefix,
			Target: cfg.Proxy.Target,
			Logger: logger,
		})
		if err != nil {
			return fmt.Errorf("creating dev proxy: %w", err)
		}

		logger.Info("dev proxy enabled",
			slog.String("prefix", devProxy.Prefix()),
			slog.String("target", cfg.Proxy.Target),
		)
	}

	// 11. Create HTTP server and setup router with all middleware and routes
	server := http.New(&cfg.Server, logger)

	routerCfg := http.NewDefaultRouterConfig(logger, &cfg.App, healthHandler, quoteHandler)
	routerCfg.Proxy = devProxy
	http.SetupRouter(server.Engine(), routerCfg)

	// 12. Start server (non-blocking)
	serverErr, err := server.Start()
	if err != nil {
		return err
	}

	if devProxy != nil {
		logger.Info("route the quotes client through the dev proxy by setting services.favqs.base_url",
			slog.String("base_url", server.URL()+devProxy.Prefix()),
		)
	}

	// 13. Wait for shutdown signal
	return waitForShutdown(ctx, logger, server, serverErr, cfg.Server.ShutdownTimeout)
}

// waitForShutdown blocks until a shutdown signal is received or server error occurs.
// It then performs graceful shutdown of the HTTP server.
func waitForShutdown(
	ctx context.Context,
	logger *slog.Logger,
	server *http.Server,
	serverErr <-chan error,
	shutdownTimeout time.Duration,
) error {
	// Listen for OS signals
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		// Server error during startup or runtime
		return fmt.Errorf("server error: %w", err)

	case sig := <-quit:
		logger.Info("received shutdown signal", slog.String("signal", sig.String()))
	}

	// Create shutdown context with timeout
	shutdownCtx, cancel := context.WithTimeout(ctx, shutdownTimeout)
	defer cancel()

	// Graceful shutdown sequence
	logger.Info("initiating graceful shutdown",
		slog.Duration("timeout", shutdownTimeout),
	)

	// Stop accepting new requests, drain in-flight
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}

	logger.Info("shutdown complete")

	return nil
}
