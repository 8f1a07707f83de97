// Package revalidate delivers cache invalidations to every configured sink
// after a successful content mutation.
package revalidate

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/jsamuelsen11/site-content-service/internal/app/fanout"
	"github.com/jsamuelsen11/site-content-service/internal/platform/telemetry"
	"github.com/jsamuelsen11/site-content-service/internal/ports"
)

const (
	defaultTimeout = 5 * time.Second
	maxSinkWorkers = 4

	resultSuccess = "success"
	resultError   = "error"
)

// Compile-time interface check.
var _ ports.Revalidator = (*Dispatcher)(nil)

// Option configures a Dispatcher.
type Option func(*Dispatcher)

// WithLogger sets the logger. A nil logger is ignored.
func WithLogger(logger *slog.Logger) Option {
	return func(d *Dispatcher) {
		if logger != nil {
			d.logger = logger
		}
	}
}

// WithMetrics enables the revalidation counter.
func WithMetrics(m *telemetry.Metrics) Option {
	return func(d *Dispatcher) { d.metrics = m }
}

// WithTimeout bounds a single delivery across all sinks.
func WithTimeout(timeout time.Duration) Option {
	return func(d *Dispatcher) {
		if timeout > 0 {
			d.timeout = timeout
		}
	}
}

// WithClock overrides the timestamp source stamped on each invalidation.
func WithClock(now func() time.Time) Option {
	return func(d *Dispatcher) {
		if now != nil {
			d.now = now
		}
	}
}

// Dispatcher implements [ports.Revalidator] by fanning an invalidation out to
// a fixed set of sinks. Delivery failures are logged and counted, never
// returned.
type Dispatcher struct {
	sinks   []ports.InvalidationSink
	logger  *slog.Logger
	metrics *telemetry.Metrics
	timeout time.Duration
	now     func() time.Time
}

// New creates a Dispatcher over sinks.
func New(sinks []ports.InvalidationSink, opts ...Option) *Dispatcher {
	d := &Dispatcher{
		sinks:   append([]ports.InvalidationSink(nil), sinks...),
		logger:  slog.New(slog.DiscardHandler),
		timeout: defaultTimeout,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Revalidate delivers the deduplicated paths and tags to every sink and
// waits for all deliveries or the dispatcher timeout. Cancellation of ctx
// does not abort delivery, so a write that has already been persisted still
// invalidates caches when the caller goes away.
func (d *Dispatcher) Revalidate(ctx context.Context, paths, tags []string) {
	inv := ports.Invalidation{
		Paths: dedupe(paths),
		Tags:  dedupe(tags),
		At:    d.now().UTC(),
	}
	if len(inv.Paths) == 0 && len(inv.Tags) == 0 {
		return
	}

	if len(d.sinks) == 0 {
		d.logger.DebugContext(ctx, "no invalidation sinks configured",
			slog.String("operation", "revalidate.Revalidate"),
			slog.Any("paths", inv.Paths),
			slog.Any("tags", inv.Tags),
		)
		return
	}

	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), d.timeout)
	defer cancel()

	results := fanout.Run(ctx, maxSinkWorkers, d.sinks,
		func(ctx context.Context, sink ports.InvalidationSink) (struct{}, error) {
			return struct{}{}, sink.Invalidate(ctx, inv)
		})

	for i, res := range results {
		sink := d.sinks[i].Name()
		if res.Err != nil {
			d.logger.ErrorContext(ctx, "revalidation delivery failed",
				slog.String("operation", "revalidate.Revalidate"),
				slog.String("sink", sink),
				slog.Any("paths", inv.Paths),
				slog.Any("tags", inv.Tags),
				slog.Any("error", res.Err),
			)
			d.metrics.RecordRevalidation(ctx, sink, resultError)
			continue
		}
		d.metrics.RecordRevalidation(ctx, sink, resultSuccess)
	}

	d.logger.InfoContext(ctx, "revalidation dispatched",
		slog.String("operation", "revalidate.Revalidate"),
		slog.Any("paths", inv.Paths),
		slog.Any("tags", inv.Tags),
		slog.Int("sinks", len(d.sinks)),
	)
}

// dedupe trims values, drops blanks and repeats, and keeps first-seen order.
func dedupe(values []string) []string {
	if len(values) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
