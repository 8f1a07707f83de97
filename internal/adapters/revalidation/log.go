package revalidation

import (
	"context"
	"log/slog"

	"github.com/jsamuelsen11/site-content-service/internal/ports"
)

// LogName identifies the log-only sink.
const LogName = "revalidation-log"

// Compile-time interface check.
var _ ports.InvalidationSink = (*Log)(nil)

// Log records invalidations without delivering them anywhere. It is wired
// when no other sink is configured.
type Log struct {
	logger *slog.Logger
}

// NewLog creates a log-only sink.
func NewLog(logger *slog.Logger) *Log {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Log{logger: logger}
}

// Name implements [ports.InvalidationSink].
func (l *Log) Name() string {
	return LogName
}

// Invalidate logs inv at INFO and never fails.
func (l *Log) Invalidate(ctx context.Context, inv ports.Invalidation) error {
	l.logger.InfoContext(ctx, "cache invalidation",
		slog.Any("paths", inv.Paths),
		slog.Any("tags", inv.Tags),
		slog.Time("at", inv.At),
	)
	return nil
}
