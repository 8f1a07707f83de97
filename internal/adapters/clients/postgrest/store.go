package postgrest

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/jsamuelsen11/site-content-service/internal/domain"
	"github.com/jsamuelsen11/site-content-service/internal/platform/httpclient"
	"github.com/jsamuelsen11/site-content-service/internal/ports"
)

// Compile-time interface checks.
var (
	_ ports.Store         = (*Store)(nil)
	_ ports.HealthChecker = (*Store)(nil)
)

// Store is the outbound adapter for a PostgREST endpoint. It implements
// [ports.Store] over the tables exposed under /rest/v1.
//
// The underlying [httpclient.Client] provides circuit breaking, read
// retries with exponential backoff, OpenTelemetry tracing, and health
// checking for every call. Writes are sent once.
type Store struct {
	req    *Requester
	client *httpclient.Client
	logger *slog.Logger
}

// NewStore creates a Store that sends requests through client. The client's
// BaseURL is the project root (e.g. "https://abc.supabase.co").
func NewStore(client *httpclient.Client, apiKey, bearer string, logger *slog.Logger) *Store {
	return &Store{
		req:    NewRequester(client, apiKey, bearer, logger),
		client: client,
		logger: logger,
	}
}

// Select fetches GET /rest/v1/{table} with q encoded as filters, order and
// limit.
func (s *Store) Select(ctx context.Context, table string, q ports.Query) ([]ports.Record, error) {
	query, err := encodeQuery(q)
	if err != nil {
		return nil, err
	}

	var rows []ports.Record
	if _, err := s.req.Do(ctx, Request{
		Method: http.MethodGet,
		Table:  table,
		Query:  query,
		Want:   []int{http.StatusOK},
	}, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

// Count issues HEAD /rest/v1/{table} with Prefer: count=exact and reads the
// total from Content-Range. Order and limit are ignored.
func (s *Store) Count(ctx context.Context, table string, q ports.Query) (int, error) {
	query, err := encodeQuery(ports.Query{Filters: q.Filters})
	if err != nil {
		return 0, err
	}

	header, err := s.req.Do(ctx, Request{
		Method: http.MethodHead,
		Table:  table,
		Query:  query,
		Prefer: []string{preferCountExact},
		Want:   []int{http.StatusOK, http.StatusPartialContent},
	}, nil)
	if err != nil {
		return 0, err
	}
	return parseContentRange(header.Get("Content-Range"))
}

// Insert posts rec and returns the stored row.
func (s *Store) Insert(ctx context.Context, table string, rec ports.Record) (ports.Record, error) {
	var rows []ports.Record
	if _, err := s.req.Do(ctx, Request{
		Method: http.MethodPost,
		Table:  table,
		Prefer: []string{preferRepresentation},
		Body:   rec,
		Want:   []int{http.StatusCreated},
	}, &rows); err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("postgrest: insert into %s returned no rows", table)
	}
	return rows[0], nil
}

// Update patches the row with the given id. An empty representation means
// no row matched.
func (s *Store) Update(ctx context.Context, table, id string, rec ports.Record) (ports.Record, error) {
	var rows []ports.Record
	if _, err := s.req.Do(ctx, Request{
		Method: http.MethodPatch,
		Table:  table,
		Query:  idQuery(id),
		Prefer: []string{preferRepresentation},
		Body:   rec,
		Want:   []int{http.StatusOK},
	}, &rows); err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%s %q: %w", table, id, domain.ErrNotFound)
	}
	return rows[0], nil
}

// Delete removes the row with the given id. PostgREST answers 204 whether or
// not a row matched.
func (s *Store) Delete(ctx context.Context, table, id string) error {
	_, err := s.req.Do(ctx, Request{
		Method: http.MethodDelete,
		Table:  table,
		Query:  idQuery(id),
		Prefer: []string{preferMinimal},
		Want:   []int{http.StatusNoContent, http.StatusOK},
	}, nil)
	return err
}

// Name returns the identifier used when this component is registered with a
// [ports.HealthRegistry]. It matches the service name of the underlying
// [httpclient.Client].
func (s *Store) Name() string {
	return s.client.Name()
}

// HealthCheck reports the endpoint's availability from the circuit breaker
// state. No network call is made.
func (s *Store) HealthCheck(ctx context.Context) error {
	return s.client.HealthCheck(ctx)
}
