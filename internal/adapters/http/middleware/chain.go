package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/jsamuelsen11/site-content-service/internal/platform/telemetry"
)

// Middleware wraps an http.Handler.
type Middleware = func(http.Handler) http.Handler

// Chain composes middleware so that the first argument runs outermost:
// Chain(Recovery, RequestID)(h) is Recovery(RequestID(h)). Nil entries are
// skipped, which lets callers leave optional stages unset.
func Chain(stages ...Middleware) Middleware {
	return func(handler http.Handler) http.Handler {
		for i := len(stages) - 1; i >= 0; i-- {
			if stages[i] != nil {
				handler = stages[i](handler)
			}
		}
		return handler
	}
}

// PipelineConfig configures the standard inbound stack.
type PipelineConfig struct {
	Logger  *slog.Logger
	Metrics *telemetry.Metrics
	// Timeout bounds every request. Zero disables it.
	Timeout time.Duration
}

// Pipeline returns the standard inbound stack in package order.
func Pipeline(cfg PipelineConfig) Middleware {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return Chain(
		Recovery(logger),
		RequestID(),
		OpenTelemetry(cfg.Metrics),
		Logging(logger),
		Timeout(cfg.Timeout),
	)
}
