package ports

import (
	"context"
	"time"
)

// Revalidator marks rendered pages and cache tags stale after a mutation.
// Implemented by the revalidation dispatcher. Failures are logged, never
// returned, so a completed write is never reported as failed.
type Revalidator interface {
	Revalidate(ctx context.Context, paths, tags []string)
}

// Invalidation is one revalidation request delivered to a sink.
type Invalidation struct {
	Paths []string
	Tags  []string
	At    time.Time
}

// InvalidationSink delivers invalidations to one downstream cache
// (the rendering framework webhook, a redis stream, a log).
type InvalidationSink interface {
	// Name identifies the sink in logs and metrics.
	Name() string

	// Invalidate delivers inv. Implementations should respect context
	// cancellation and deadlines.
	Invalidate(ctx context.Context, inv Invalidation) error
}
