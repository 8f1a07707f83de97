package revalidation

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/jsamuelsen11/site-content-service/internal/platform/httpclient"
	"github.com/jsamuelsen11/site-content-service/internal/ports"
)

// WebhookName identifies the webhook sink in logs, metrics, and health.
const WebhookName = "revalidation-webhook"

// Compile-time interface checks.
var (
	_ ports.InvalidationSink = (*Webhook)(nil)
	_ ports.HealthChecker    = (*Webhook)(nil)
)

// webhookBody is the payload understood by the site's revalidate endpoint.
// Exactly one of Path and Tag is set per request.
type webhookBody struct {
	Secret string `json:"secret"`
	Path   string `json:"path,omitempty"`
	Tag    string `json:"tag,omitempty"`
}

// Webhook posts one request per path and per tag to the site's revalidate
// endpoint. Requests go through the breaker-protected client with a single
// attempt each.
type Webhook struct {
	client *httpclient.Client
	secret string
	logger *slog.Logger
}

// NewWebhook creates a webhook sink. The client's BaseURL is the full
// endpoint URL.
func NewWebhook(client *httpclient.Client, secret string, logger *slog.Logger) *Webhook {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Webhook{client: client, secret: secret, logger: logger}
}

// Name implements [ports.InvalidationSink] and [ports.HealthChecker].
func (w *Webhook) Name() string {
	return WebhookName
}

// HealthCheck reports the breaker state of the webhook client.
func (w *Webhook) HealthCheck(ctx context.Context) error {
	return w.client.HealthCheck(ctx)
}

// Invalidate delivers every path and tag. A failed request does not stop
// the remaining ones; all failures are joined into the returned error.
func (w *Webhook) Invalidate(ctx context.Context, inv ports.Invalidation) error {
	var errs []error
	for _, p := range inv.Paths {
		if err := w.post(ctx, webhookBody{Secret: w.secret, Path: p}); err != nil {
			errs = append(errs, fmt.Errorf("path %s: %w", p, err))
		}
	}
	for _, t := range inv.Tags {
		if err := w.post(ctx, webhookBody{Secret: w.secret, Tag: t}); err != nil {
			errs = append(errs, fmt.Errorf("tag %s: %w", t, err))
		}
	}
	return errors.Join(errs...)
}

func (w *Webhook) post(ctx context.Context, body webhookBody) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("marshaling webhook body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, w.client.BaseURL(), bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("creating webhook request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := w.client.Do(ctx, req)
	if resp != nil {
		defer w.closeBody(ctx, resp)
	}
	if err != nil {
		return err
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("webhook returned HTTP %d", resp.StatusCode)
	}
	return nil
}

func (w *Webhook) closeBody(ctx context.Context, resp *http.Response) {
	_, _ = io.Copy(io.Discard, resp.Body)
	if err := resp.Body.Close(); err != nil {
		w.logger.WarnContext(ctx, "failed to close response body",
			slog.String("error", err.Error()),
		)
	}
}
