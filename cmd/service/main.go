// Package main is the entry point for the quote API service.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jsamuelsen/quote-api/internal/adapters/http"
	"github.com/jsamuelsen/quote-api/internal/adapters/http/handlers"
	"github.com/jsamuelsen/quote-api/internal/adapters/quotestore"
	"github.com/jsamuelsen/quote-api/internal/app"
	"github.com/jsamuelsen/quote-api/internal/platform/config"
	"github.com/jsamuelsen/quote-api/internal/platform/logging"
	"github.com/jsamuelsen/quote-api/internal/platform/telemetry"
	"github.com/jsamuelsen/quote-api/internal/ports"
)

// Build-time variables, injected via ldflags.
// Example: go build -ldflags "-X main.Version=1.0.0 -X main.Commit=$(git rev-parse HEAD)"
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

	profile := os.Getenv("APP_ENVIRONMENT")
	if profile == "" {
		profile = "local"
	}

	cfg, err := config.Load(profile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

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

	telProvider, err := telemetry.New(ctx, &telemetry.Config{
		Enabled:      cfg.Telemetry.Enabled,
		Endpoint:     cfg.Telemetry.Endpoint,
		ServiceName:  cfg.Telemetry.ServiceName,
		Version:      cfg.App.Version,
		Environment:  cfg.App.Environment,
		SamplingRate: cfg.Telemetry.SamplingRate,
	})
	if err != nil {
		return fmt.Errorf("initializing telemetry: %w", err)
	}

	defer func() {
		if shutdownErr := telProvider.Shutdown(ctx); shutdownErr != nil {
			logger.Error("telemetry shutdown error", slog.Any("error", shutdownErr))
		}
	}()

	store, err := quotestore.New()
	if err != nil {
		return fmt.Errorf("loading quote catalog: %w", err)
	}

	logger.Info("quote catalog loaded", slog.Int("quotes", store.Len()))

	healthRegistry := ports.NewHealthRegistry()
	if err := healthRegistry.Register(store); err != nil {
		return fmt.Errorf("registering quote store health check: %w", err)
	}

	quoteService := app.NewQuoteService(app.QuoteServiceConfig{
		Repository: store,
		Logger:     logger,
	})

	buildInfo := handlers.NewBuildInfo(Version, Commit, BuildTime)
	healthHandler := handlers.NewHealthHandler(healthRegistry, buildInfo)
	quoteHandler := handlers.NewQuoteHandler(quoteService)

	server := http.New(&cfg.Server, logger)

	http.SetupRouter(server.Engine(), http.RouterConfig{
		Logger:        logger,
		ServiceName:   cfg.App.Name,
		HealthHandler: healthHandler,
		QuoteHandler:  quoteHandler,
	})

	serverErr := server.Start()

	baseURL := fmt.Sprintf("http://localhost:%d", cfg.Server.Port)
	logger.Info("quote API ready",
		slog.String("addr", server.Addr()),
		slog.String("random_quote", baseURL+"/api/quote"),
		slog.String("quote_by_id", baseURL+"/api/quote?id=1"),
		slog.String("quotes_by_category", baseURL+"/api/quote?category=life"),
		slog.String("all_quotes", baseURL+"/api/quotes"),
	)

	return waitForShutdown(ctx, logger, server, serverErr, cfg.Server.ShutdownTimeout)
}

// waitForShutdown blocks until a shutdown signal is received or a server
// error occurs, then drains in-flight requests.
func waitForShutdown(
	ctx context.Context,
	logger *slog.Logger,
	server *http.Server,
	serverErr <-chan error,
	shutdownTimeout time.Duration,
) error {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		return fmt.Errorf("server error: %w", err)

	case sig := <-quit:
		logger.Info("received shutdown signal", slog.String("signal", sig.String()))
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, shutdownTimeout)
	defer cancel()

	logger.Info("initiating graceful shutdown", slog.Duration("timeout", shutdownTimeout))

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}

	logger.Info("shutdown complete")

	return nil
}
