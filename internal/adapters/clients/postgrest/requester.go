package postgrest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"slices"
	"strings"

	"github.com/jsamuelsen11/site-content-service/internal/platform/httpclient"
)

// restPrefix is where PostgREST is mounted under the configured base URL.
const restPrefix = "/rest/v1/"

// Prefer header values.
const (
	preferRepresentation = "return=representation"
	preferMinimal        = "return=minimal"
	preferCountExact     = "count=exact"
)

// Request describes one PostgREST call against a table.
type Request struct {
	Method string
	Table  string
	Query  url.Values
	// Prefer values are joined into a single Prefer header.
	Prefer []string
	// Body is marshaled to JSON when non-nil.
	Body any
	// Want lists the accepted status codes.
	Want []int
}

// Requester centralizes the HTTP request lifecycle for the PostgREST store:
// request creation, credential headers, JSON marshaling, execution via
// httpclient.Client, response body cleanup, status code validation, error
// translation, and JSON decoding.
type Requester struct {
	client *httpclient.Client
	apiKey string
	bearer string
	logger *slog.Logger
}

// NewRequester creates a Requester backed by the given HTTP client. apiKey is
// sent as the apikey header; bearer, or apiKey when bearer is empty, is sent
// as the Authorization bearer token.
func NewRequester(client *httpclient.Client, apiKey, bearer string, logger *slog.Logger) *Requester {
	if bearer == "" {
		bearer = apiKey
	}
	return &Requester{client: client, apiKey: apiKey, bearer: bearer, logger: logger}
}

// Do executes r and decodes the response body into out (if non-nil). The
// response headers are returned so callers can read Content-Range.
//
// On non-matching status codes, the response is passed to TranslateHTTPError.
func (r *Requester) Do(ctx context.Context, req Request, out any) (http.Header, error) {
	httpReq, err := r.build(ctx, req)
	if err != nil {
		return nil, err
	}
	return r.execute(httpReq, req.Want, out)
}

func (r *Requester) build(ctx context.Context, req Request) (*http.Request, error) {
	target := strings.TrimRight(r.client.BaseURL(), "/") + restPrefix + url.PathEscape(req.Table)
	if len(req.Query) > 0 {
		target += "?" + req.Query.Encode()
	}

	var body io.Reader = http.NoBody
	if req.Body != nil {
		raw, err := json.Marshal(req.Body)
		if err != nil {
			return nil, fmt.Errorf("marshaling %s body for %s: %w", req.Method, req.Table, err)
		}
		body = bytes.NewReader(raw)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, target, body)
	if err != nil {
		return nil, fmt.Errorf("creating %s request for %s: %w", req.Method, req.Table, err)
	}

	httpReq.Header.Set("Accept", "application/json")
	if req.Body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}
	if r.apiKey != "" {
		httpReq.Header.Set("apikey", r.apiKey)
	}
	if r.bearer != "" {
		httpReq.Header.Set("Authorization", "Bearer "+r.bearer)
	}
	if len(req.Prefer) > 0 {
		httpReq.Header.Set("Prefer", strings.Join(req.Prefer, ", "))
	}
	return httpReq, nil
}

// closeBody is a helper that closes an HTTP response body and logs on failure.
func (r *Requester) closeBody(ctx context.Context, resp *http.Response) {
	if err := resp.Body.Close(); err != nil {
		r.logger.WarnContext(ctx, "failed to close response body",
			slog.String("error", err.Error()),
		)
	}
}

// execute sends the request, checks the status code, and optionally decodes
// the response body. It ensures resp.Body is always closed.
func (r *Requester) execute(req *http.Request, want []int, out any) (http.Header, error) {
	resp, err := r.client.Do(req.Context(), req)
	if err != nil {
		// httpclient.Do returns both resp and err when retries are exhausted
		// on a retryable status (e.g. 5xx). Translate the response rather
		// than returning the raw retry error.
		if resp != nil {
			defer r.closeBody(req.Context(), resp)
			if !slices.Contains(want, resp.StatusCode) {
				return nil, TranslateHTTPError(resp)
			}
		}
		r.logger.ErrorContext(req.Context(), "request failed",
			slog.String("method", req.Method),
			slog.String("url", req.URL.Redacted()),
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("%s %s: %w", req.Method, req.URL.Path, err)
	}
	defer r.closeBody(req.Context(), resp)

	if !slices.Contains(want, resp.StatusCode) {
		translateErr := TranslateHTTPError(resp)
		r.logger.ErrorContext(req.Context(), "unexpected status",
			slog.String("method", req.Method),
			slog.String("url", req.URL.Redacted()),
			slog.Int("status", resp.StatusCode),
			slog.Any("want_status", want),
			slog.Any("error", translateErr),
		)
		return nil, translateErr
	}

	if out != nil && req.Method != http.MethodHead {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return nil, fmt.Errorf("decoding response from %s %s: %w", req.Method, req.URL.Path, err)
		}
	}

	return resp.Header, nil
}
