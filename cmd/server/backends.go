package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"github.com/jsamuelsen11/site-content-service/internal/adapters/clients/postgrest"
	"github.com/jsamuelsen11/site-content-service/internal/adapters/memstore"
	"github.com/jsamuelsen11/site-content-service/internal/adapters/postgres"
	"github.com/jsamuelsen11/site-content-service/internal/adapters/revalidation"
	"github.com/jsamuelsen11/site-content-service/internal/platform/config"
	"github.com/jsamuelsen11/site-content-service/internal/platform/httpclient"
	"github.com/jsamuelsen11/site-content-service/internal/platform/telemetry"
	"github.com/jsamuelsen11/site-content-service/internal/ports"
)

// storeBackend is the content store selected by store.driver.
type storeBackend struct {
	store   ports.Store
	health  ports.HealthChecker
	closers []io.Closer
}

func newStoreBackend(ctx context.Context, cfg *config.Config, metrics *telemetry.Metrics, logger *slog.Logger) (*storeBackend, error) {
	switch cfg.Store.Driver {
	case config.DriverPostgREST:
		client := httpclient.New(&cfg.Client, "postgrest", metrics, logger)
		s := postgrest.NewStore(client, cfg.Client.APIKey, cfg.Client.BearerToken, logger)
		return &storeBackend{store: s, health: s}, nil
	case config.DriverPostgres:
		db, err := postgres.Open(ctx, cfg.Postgres)
		if err != nil {
			return nil, err
		}
		s := postgres.NewStore(db, logger)
		return &storeBackend{store: s, health: s, closers: []io.Closer{db}}, nil
	case config.DriverMemory:
		s := memstore.New()
		return &storeBackend{store: s, health: s}, nil
	default:
		return nil, fmt.Errorf("unknown store driver %q", cfg.Store.Driver)
	}
}

// sinkSet is the configured invalidation sinks. The log sink is always
// present so every revalidation leaves a trace.
type sinkSet struct {
	sinks   []ports.InvalidationSink
	health  []ports.HealthChecker
	closers []io.Closer
}

func newSinkSet(cfg *config.Config, metrics *telemetry.Metrics, logger *slog.Logger) *sinkSet {
	set := &sinkSet{sinks: []ports.InvalidationSink{revalidation.NewLog(logger)}}

	rc := cfg.Revalidation
	if rc.WebhookURL != "" {
		wc := cfg.WebhookClient()
		client := httpclient.New(&wc, revalidation.WebhookName, metrics, logger)
		wh := revalidation.NewWebhook(client, rc.Secret, logger)
		set.sinks = append(set.sinks, wh)
		set.health = append(set.health, wh)
	}
	if rc.Redis.Addr != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     rc.Redis.Addr,
			Password: rc.Redis.Password,
			DB:       rc.Redis.DB,
		})
		st := revalidation.NewStream(rdb, rc.Redis.Stream, rc.Redis.MaxLen, logger)
		set.sinks = append(set.sinks, st)
		set.health = append(set.health, st)
		set.closers = append(set.closers, rdb)
	}
	return set
}

func closeAll(logger *slog.Logger, closers []io.Closer) {
	for _, c := range closers {
		if err := c.Close(); err != nil {
			logger.Error("closing resource", slog.Any("error", err))
		}
	}
}
