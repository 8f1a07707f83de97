package revalidation_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/site-content-service/internal/adapters/revalidation"
	"github.com/jsamuelsen11/site-content-service/internal/platform/config"
	"github.com/jsamuelsen11/site-content-service/internal/platform/httpclient"
	"github.com/jsamuelsen11/site-content-service/internal/ports"
)

func newWebhookClient(t *testing.T, url string) *httpclient.Client {
	t.Helper()

	cfg := &config.ClientConfig{
		BaseURL: url,
		Timeout: 2 * time.Second,
		Retry: config.RetryConfig{
			MaxAttempts:     3,
			InitialInterval: 10 * time.Millisecond,
			MaxInterval:     10 * time.Millisecond,
			Multiplier:      1,
		},
		CircuitBreaker: config.CircuitBreakerConfig{
			MaxFailures:   5,
			Timeout:       30 * time.Second,
			HalfOpenLimit: 1,
		},
	}
	return httpclient.New(cfg, revalidation.WebhookName, nil, discardLogger())
}

type webhookCall struct {
	Secret string `json:"secret"`
	Path   string `json:"path"`
	Tag    string `json:"tag"`
}

func TestWebhook_PostsEachPathAndTag(t *testing.T) {
	t.Parallel()

	var (
		mu    sync.Mutex
		calls []webhookCall
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var c webhookCall
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&c))
		mu.Lock()
		calls = append(calls, c)
		mu.Unlock()

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"revalidated":true}`))
	}))
	t.Cleanup(srv.Close)

	sink := revalidation.NewWebhook(newWebhookClient(t, srv.URL), "s3cret", nil)

	err := sink.Invalidate(context.Background(), ports.Invalidation{
		Paths: []string{"/", "/projects"},
		Tags:  []string{"projects"},
	})
	require.NoError(t, err)

	assert.Equal(t, []webhookCall{
		{Secret: "s3cret", Path: "/"},
		{Secret: "s3cret", Path: "/projects"},
		{Secret: "s3cret", Tag: "projects"},
	}, calls)
}

func TestWebhook_FailureIsNotRetriedAndOthersStillSent(t *testing.T) {
	t.Parallel()

	var count atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		count.Add(1)
		var c webhookCall
		_ = json.NewDecoder(r.Body).Decode(&c)
		if c.Path == "/" {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	t.Cleanup(srv.Close)

	sink := revalidation.NewWebhook(newWebhookClient(t, srv.URL), "s3cret", nil)

	err := sink.Invalidate(context.Background(), ports.Invalidation{
		Paths: []string{"/", "/faq"},
		Tags:  []string{"faqs"},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "path /")
	assert.Equal(t, int32(3), count.Load(), "each request is sent exactly once")
}

func TestWebhook_RejectedSecret(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	t.Cleanup(srv.Close)

	sink := revalidation.NewWebhook(newWebhookClient(t, srv.URL), "wrong", nil)

	err := sink.Invalidate(context.Background(), ports.Invalidation{Tags: []string{"services"}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "HTTP 401")
}

func TestWebhook_Health(t *testing.T) {
	t.Parallel()

	sink := revalidation.NewWebhook(newWebhookClient(t, "http://localhost"), "s3cret", nil)

	assert.Equal(t, revalidation.WebhookName, sink.Name())
	assert.NoError(t, sink.HealthCheck(context.Background()))
}
