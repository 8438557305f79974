// Package main is the entry point for the dossier service. It wires all
// dependencies using samber/do v2, starts the HTTP server and the session
// sweeper, and handles graceful shutdown on SIGINT/SIGTERM.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	nethttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/samber/do/v2"

	"github.com/jsamuelsen11/go-dossier-service/internal/adapters/assets"
	adapthttp "github.com/jsamuelsen11/go-dossier-service/internal/adapters/http"
	"github.com/jsamuelsen11/go-dossier-service/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/go-dossier-service/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/go-dossier-service/internal/adapters/pdf"
	"github.com/jsamuelsen11/go-dossier-service/internal/adapters/storage/memory"
	"github.com/jsamuelsen11/go-dossier-service/internal/adapters/storage/sqlite"

	"github.com/jsamuelsen11/go-dossier-service/internal/app"
	"github.com/jsamuelsen11/go-dossier-service/internal/catalog"
	"github.com/jsamuelsen11/go-dossier-service/internal/domain/validate"
	"github.com/jsamuelsen11/go-dossier-service/internal/platform/config"
	"github.com/jsamuelsen11/go-dossier-service/internal/platform/health"
	"github.com/jsamuelsen11/go-dossier-service/internal/platform/httpclient"
	"github.com/jsamuelsen11/go-dossier-service/internal/platform/logging"
	"github.com/jsamuelsen11/go-dossier-service/internal/platform/telemetry"
	"github.com/jsamuelsen11/go-dossier-service/internal/ports"

	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

const (
	serverShutdownTimeout = 15 * time.Second
	otelShutdownTimeout   = 5 * time.Second
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	profile := os.Getenv("APP_PROFILE")
	if profile == "" {
		return errors.New("APP_PROFILE environment variable is required (e.g. local, prod)")
	}

	// Bootstrap: config, logger, telemetry.
	cfg, err := config.Load(profile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger := logging.New(cfg.Log.Level, cfg.Log.Format, os.Stderr,
		slog.String("service", cfg.Telemetry.ServiceName),
		slog.String("profile", profile),
	)

	ctx := context.Background()
	otel, err := initTelemetry(ctx, cfg)
	if err != nil {
		return fmt.Errorf("initializing telemetry: %w", err)
	}

	// DI container.
	injector := do.New()

	do.ProvideValue(injector, cfg)
	do.ProvideValue(injector, logger)
	do.ProvideValue(injector, otel.metrics)

	registerDependencies(injector, cfg, logger)

	// Resolve the server (eagerly wires the full graph).
	server, err := do.Invoke[*adapthttp.Server](injector)
	if err != nil {
		return fmt.Errorf("resolving server: %w", err)
	}

	// Register health checkers after the graph is wired.
	registry := do.MustInvoke[ports.HealthRegistry](injector)
	sessions := do.MustInvoke[ports.SessionRepository](injector)
	for _, dep := range []any{sessions, do.MustInvoke[ports.AssetSource](injector)} {
		if checker, ok := dep.(ports.HealthChecker); ok {
			registry.Register(checker)
		}
	}
	if closer, ok := sessions.(interface{ Close() error }); ok {
		defer func() {
			if err := closer.Close(); err != nil {
				logger.Error("session store close error", slog.Any("error", err))
			}
		}()
	}

	// Expired sessions are swept in the background until shutdown.
	sweepCtx, stopSweep := context.WithCancel(ctx)
	defer stopSweep()
	wizard := do.MustInvoke[*app.WizardService](injector)
	sweepDone := make(chan struct{})
	go func() {
		defer close(sweepDone)
		runSweeper(sweepCtx, wizard, cfg.Session.TTL, cfg.Session.SweepInterval, logger)
	}()

	// Start server in background.
	serverErr := make(chan error, 1)
	go func() {
		serverErr <- server.Start()
	}()

	// Wait for shutdown signal or server error.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		logger.Info("received shutdown signal", slog.String("signal", sig.String()))
	case err := <-serverErr:
		return fmt.Errorf("server failed: %w", err)
	}

	// Graceful shutdown: drain HTTP requests.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), serverShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
	}

	// Wait for Start() goroutine to return.
	<-serverErr

	stopSweep()
	<-sweepDone

	// Flush telemetry.
	otelCtx, otelCancel := context.WithTimeout(context.Background(), otelShutdownTimeout)
	defer otelCancel()

	if err := otel.Shutdown(otelCtx); err != nil {
		logger.Error("telemetry shutdown error", slog.Any("error", err))
	}

	logger.Info("shutdown complete")
	return nil
}

// otelProviders bundles OpenTelemetry provider lifecycle. All fields are nil
// when telemetry is disabled.
type otelProviders struct {
	tracer  *sdktrace.TracerProvider
	meter   *sdkmetric.MeterProvider
	metrics *telemetry.Metrics
}

// Shutdown flushes both providers. Nil-safe.
func (o *otelProviders) Shutdown(ctx context.Context) error {
	var errs []error
	if o.tracer != nil {
		if err := o.tracer.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("tracer shutdown: %w", err))
		}
	}
	if o.meter != nil {
		if err := o.meter.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("meter shutdown: %w", err))
		}
	}
	return errors.Join(errs...)
}

func initTelemetry(ctx context.Context, cfg *config.Config) (*otelProviders, error) {
	if !cfg.Telemetry.Enabled {
		return &otelProviders{}, nil
	}

	tp, err := telemetry.InitTracer(ctx,
		cfg.Telemetry.ServiceName,
		cfg.Telemetry.Exporter,
		cfg.Telemetry.Endpoint,
	)
	if err != nil {
		return nil, fmt.Errorf("init tracer: %w", err)
	}

	mp, err := telemetry.InitMeter(ctx,
		cfg.Telemetry.ServiceName,
		cfg.Telemetry.Exporter,
		cfg.Telemetry.Endpoint,
	)
	if err != nil {
		_ = tp.Shutdown(ctx)
		return nil, fmt.Errorf("init meter: %w", err)
	}

	metrics, err := telemetry.NewMetrics(mp, cfg.Telemetry.ServiceName)
	if err != nil {
		_ = tp.Shutdown(ctx)
		_ = mp.Shutdown(ctx)
		return nil, fmt.Errorf("creating metrics: %w", err)
	}

	return &otelProviders{
		tracer:  tp,
		meter:   mp,
		metrics: metrics,
	}, nil
}

func registerDependencies(injector *do.RootScope, cfg *config.Config, logger *slog.Logger) {
	do.Provide(injector, func(_ do.Injector) (*catalog.Catalog, error) {
		reg := validate.NewRegistry()
		if cfg.Catalog.Dir != "" {
			return catalog.LoadFS(os.DirFS(cfg.Catalog.Dir), reg)
		}
		return catalog.Default(reg)
	})

	do.Provide(injector, func(_ do.Injector) (ports.SessionRepository, error) {
		if cfg.Storage.Driver == config.StorageSQLite {
			store, err := sqlite.Open(cfg.Storage.Path, cfg.Storage.BusyTimeout)
			if err != nil {
				return nil, fmt.Errorf("opening session store: %w", err)
			}
			return store, nil
		}
		return memory.New(), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.AssetSource, error) {
		if cfg.Assets.Source == config.AssetSourceHTTP {
			metrics := do.MustInvoke[*telemetry.Metrics](i)
			client := httpclient.New(&cfg.Assets.HTTP, "asset-server", metrics, logger)
			return assets.NewHTTP(client, logger), nil
		}
		return assets.NewDir(cfg.Assets.Dir), nil
	})

	do.Provide(injector, func(_ do.Injector) (ports.DocumentRenderer, error) {
		return pdf.New(logger), nil
	})

	do.Provide(injector, func(i do.Injector) (*app.DocumentService, error) {
		cat := do.MustInvoke[*catalog.Catalog](i)
		source := do.MustInvoke[ports.AssetSource](i)
		renderer := do.MustInvoke[ports.DocumentRenderer](i)
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		limits := app.ComposeLimits{
			Timeout:  cfg.Compose.Timeout,
			Workers:  cfg.Compose.Workers,
			MaxBatch: cfg.Compose.MaxBatch,
		}
		return app.NewDocumentService(cat, source, renderer, limits, metrics, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (*app.WizardService, error) {
		cat := do.MustInvoke[*catalog.Catalog](i)
		sessions := do.MustInvoke[ports.SessionRepository](i)
		docs := do.MustInvoke[*app.DocumentService](i)
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		return app.NewWizardService(cat, sessions, docs, metrics, logger), nil
	})

	do.Provide(injector, func(_ do.Injector) (ports.HealthRegistry, error) {
		return health.New(), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.SessionHandler, error) {
		svc := do.MustInvoke[*app.WizardService](i)
		return handlers.NewSessionHandler(svc, cfg.Server.MaxBodyBytes), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.DocumentHandler, error) {
		svc := do.MustInvoke[*app.DocumentService](i)
		return handlers.NewDocumentHandler(svc, cfg.Server.MaxBodyBytes), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.HealthHandler, error) {
		registry := do.MustInvoke[ports.HealthRegistry](i)
		return handlers.NewHealthHandler(registry), nil
	})

	do.Provide(injector, func(i do.Injector) (nethttp.Handler, error) {
		sessionH := do.MustInvoke[*handlers.SessionHandler](i)
		documentH := do.MustInvoke[*handlers.DocumentHandler](i)
		healthH := do.MustInvoke[*handlers.HealthHandler](i)
		metrics := do.MustInvoke[*telemetry.Metrics](i)

		return adapthttp.NewRouter(sessionH, documentH, healthH,
			middleware.Recovery(logger),
			middleware.RequestID(),
			middleware.CorrelationID(),
			middleware.OpenTelemetry(metrics),
			middleware.Logging(logger),
			middleware.Timeout(cfg.Server.RequestTimeout),
		), nil
	})

	do.Provide(injector, func(i do.Injector) (*adapthttp.Server, error) {
		handler := do.MustInvoke[nethttp.Handler](i)
		return adapthttp.NewServer(cfg.Server, handler, logger), nil
	})
}
