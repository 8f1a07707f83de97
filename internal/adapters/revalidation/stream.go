package revalidation

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/jsamuelsen11/site-content-service/internal/ports"
)

// StreamName identifies the redis sink in logs, metrics, and health.
const StreamName = "revalidation-redis"

// Stream field names carried by every invalidation event.
const (
	FieldEventID = "event_id"
	FieldPaths   = "paths"
	FieldTags    = "tags"
	FieldAt      = "at"
)

// Compile-time interface checks.
var (
	_ ports.InvalidationSink = (*Stream)(nil)
	_ ports.HealthChecker    = (*Stream)(nil)
)

// Stream appends one event per invalidation to a redis stream so other cache
// tiers can consume them with XREAD or a consumer group.
type Stream struct {
	client *redis.Client
	stream string
	maxLen int64
	logger *slog.Logger
}

// NewStream creates a redis stream sink. A positive maxLen caps the stream
// length approximately (MAXLEN ~).
func NewStream(client *redis.Client, stream string, maxLen int64, logger *slog.Logger) *Stream {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Stream{client: client, stream: stream, maxLen: maxLen, logger: logger}
}

// Name implements [ports.InvalidationSink] and [ports.HealthChecker].
func (s *Stream) Name() string {
	return StreamName
}

// HealthCheck pings the redis server.
func (s *Stream) HealthCheck(ctx context.Context) error {
	if err := s.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("%s: %w", StreamName, err)
	}
	return nil
}

// Invalidate appends inv to the stream.
func (s *Stream) Invalidate(ctx context.Context, inv ports.Invalidation) error {
	paths, err := json.Marshal(nonNil(inv.Paths))
	if err != nil {
		return fmt.Errorf("marshal paths: %w", err)
	}
	tags, err := json.Marshal(nonNil(inv.Tags))
	if err != nil {
		return fmt.Errorf("marshal tags: %w", err)
	}

	at := inv.At
	if at.IsZero() {
		at = time.Now().UTC()
	}
	eventID := uuid.NewString()

	args := &redis.XAddArgs{
		Stream: s.stream,
		Values: map[string]any{
			FieldEventID: eventID,
			FieldPaths:   string(paths),
			FieldTags:    string(tags),
			FieldAt:      at.Format(time.RFC3339Nano),
		},
	}
	if s.maxLen > 0 {
		args.MaxLen = s.maxLen
		args.Approx = true
	}

	streamID, err := s.client.XAdd(ctx, args).Result()
	if err != nil {
		return fmt.Errorf("xadd %s: %w", s.stream, err)
	}

	s.logger.DebugContext(ctx, "published invalidation event",
		slog.String("event_id", eventID),
		slog.String("stream", s.stream),
		slog.String("stream_id", streamID),
	)
	return nil
}

func nonNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
