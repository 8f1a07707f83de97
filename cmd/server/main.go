// Package main is the entry point for the service. It wires all dependencies
// using samber/do v2, starts the HTTP server, and handles graceful shutdown
// on SIGINT/SIGTERM.
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

	adapthttp "github.com/jsamuelsen11/site-content-service/internal/adapters/http"
	"github.com/jsamuelsen11/site-content-service/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/site-content-service/internal/adapters/http/middleware"

	"github.com/jsamuelsen11/site-content-service/internal/app"
	"github.com/jsamuelsen11/site-content-service/internal/app/mutation"
	"github.com/jsamuelsen11/site-content-service/internal/app/revalidate"
	"github.com/jsamuelsen11/site-content-service/internal/fallback"
	"github.com/jsamuelsen11/site-content-service/internal/platform/config"
	"github.com/jsamuelsen11/site-content-service/internal/platform/health"
	"github.com/jsamuelsen11/site-content-service/internal/platform/logging"
	"github.com/jsamuelsen11/site-content-service/internal/platform/telemetry"
	"github.com/jsamuelsen11/site-content-service/internal/ports"
	"github.com/jsamuelsen11/site-content-service/internal/repository"

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
		return errors.New("APP_PROFILE environment variable is required (e.g. local, dev, qa, prod)")
	}

	// Bootstrap: config, logger, telemetry.
	cfg, err := config.Load(profile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger := logging.New(cfg.Log.Level, cfg.Log.Format, os.Stderr,
		slog.String("service", cfg.Telemetry.ServiceName),
		slog.String("store", cfg.Store.Driver),
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

	registerDependencies(ctx, injector, cfg, logger)

	// Resolve the server (eagerly wires the full graph).
	server, err := do.Invoke[*adapthttp.Server](injector)
	if err != nil {
		return fmt.Errorf("resolving server: %w", err)
	}

	// Register health checkers after the graph is wired.
	registry := do.MustInvoke[ports.HealthRegistry](injector)
	backend := do.MustInvoke[*storeBackend](injector)
	sinks := do.MustInvoke[*sinkSet](injector)
	registry.Register(backend.health)
	for _, hc := range sinks.health {
		registry.Register(hc)
	}
	defer closeAll(logger, append(sinks.closers, backend.closers...))

	logger.Info("content service wired",
		slog.String("store_checker", backend.health.Name()),
		slog.Int("sinks", len(sinks.sinks)),
	)

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

func registerDependencies(ctx context.Context, injector *do.RootScope, cfg *config.Config, logger *slog.Logger) {
	do.Provide(injector, func(i do.Injector) (*storeBackend, error) {
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		return newStoreBackend(ctx, cfg, metrics, logger)
	})

	do.Provide(injector, func(i do.Injector) (*sinkSet, error) {
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		return newSinkSet(cfg, metrics, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (*repository.Set, error) {
		backend := do.MustInvoke[*storeBackend](i)
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		return repository.NewSet(backend.store, fallback.Default(),
			repository.WithLogger(logger),
			repository.WithMetrics(metrics),
		), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.Revalidator, error) {
		sinks := do.MustInvoke[*sinkSet](i)
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		return revalidate.New(sinks.sinks,
			revalidate.WithLogger(logger),
			revalidate.WithMetrics(metrics),
			revalidate.WithTimeout(cfg.Revalidation.Timeout),
		), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.ContentService, error) {
		repos := do.MustInvoke[*repository.Set](i)
		return app.NewContentService(repos, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.MutationService, error) {
		repos := do.MustInvoke[*repository.Set](i)
		revalidator := do.MustInvoke[ports.Revalidator](i)
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		return mutation.New(repos, revalidator, metrics, logger), nil
	})

	do.Provide(injector, func(_ do.Injector) (ports.HealthRegistry, error) {
		return health.New(), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.ContentHandler, error) {
		svc := do.MustInvoke[ports.ContentService](i)
		return handlers.NewContentHandler(svc), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.AdminHandler, error) {
		mutations := do.MustInvoke[ports.MutationService](i)
		svc := do.MustInvoke[ports.ContentService](i)
		return handlers.NewAdminHandler(mutations, svc), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.RevalidateHandler, error) {
		revalidator := do.MustInvoke[ports.Revalidator](i)
		return handlers.NewRevalidateHandler(revalidator, cfg.Revalidation.Secret), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.HealthHandler, error) {
		registry := do.MustInvoke[ports.HealthRegistry](i)
		sinks := do.MustInvoke[*sinkSet](i)
		optional := make([]string, 0, len(sinks.health))
		for _, hc := range sinks.health {
			optional = append(optional, hc.Name())
		}
		return handlers.NewHealthHandler(registry, optional...), nil
	})

	do.Provide(injector, func(i do.Injector) (nethttp.Handler, error) {
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		h := adapthttp.Handlers{
			Content:    do.MustInvoke[*handlers.ContentHandler](i),
			Admin:      do.MustInvoke[*handlers.AdminHandler](i),
			Revalidate: do.MustInvoke[*handlers.RevalidateHandler](i),
			Health:     do.MustInvoke[*handlers.HealthHandler](i),
		}

		return adapthttp.NewRouter(h, middleware.AdminToken(cfg.Admin.Token),
			middleware.Pipeline(middleware.PipelineConfig{
				Logger:  logger,
				Metrics: metrics,
				Timeout: cfg.Server.WriteTimeout,
			}),
		), nil
	})

	do.Provide(injector, func(i do.Injector) (*adapthttp.Server, error) {
		handler := do.MustInvoke[nethttp.Handler](i)
		return adapthttp.NewServer(cfg.Server, handler, logger), nil
	})
}
