// Package memstore implements ports.Store in process memory. It backs the
// local profile and tests. Row ids are random UUIDs and a unique constraint
// is enforced on the slug column.
package memstore

import (
	"cmp"
	"context"
	"fmt"
	"maps"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jsamuelsen11/site-content-service/internal/domain"
	"github.com/jsamuelsen11/site-content-service/internal/ports"
)

// Compile-time check that Store implements ports.Store.
var _ ports.Store = (*Store)(nil)

const (
	colID        = "id"
	colSlug      = "slug"
	colCreatedAt = "created_at"
	colUpdatedAt = "updated_at"
)

// Store is a mutex-protected map of tables to rows in insertion order.
type Store struct {
	mu     sync.Mutex
	tables map[string][]ports.Record
	now    func() time.Time
}

// New returns an empty store.
func New() *Store {
	return &Store{
		tables: make(map[string][]ports.Record),
		now:    func() time.Time { return time.Now().UTC() },
	}
}

// Seed appends rows to table as given, without assigning ids or timestamps.
func (s *Store) Seed(table string, rows ...ports.Record) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, row := range rows {
		s.tables[table] = append(s.tables[table], maps.Clone(row))
	}
}

// Name implements ports.HealthChecker.
func (s *Store) Name() string {
	return "memstore"
}

// HealthCheck implements ports.HealthChecker. The store is always healthy.
func (s *Store) HealthCheck(context.Context) error {
	return nil
}

// Select implements ports.Store.
func (s *Store) Select(ctx context.Context, table string, q ports.Query) ([]ports.Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	rows := s.match(table, q.Filters)
	if len(q.Order) > 0 {
		slices.SortStableFunc(rows, func(a, b ports.Record) int {
			for _, o := range q.Order {
				c := compareValues(a[o.Column], b[o.Column])
				if o.Desc {
					c = -c
				}
				if c != 0 {
					return c
				}
			}
			return 0
		})
	}
	if q.Limit > 0 && len(rows) > q.Limit {
		rows = rows[:q.Limit]
	}

	out := make([]ports.Record, len(rows))
	for i, row := range rows {
		out[i] = maps.Clone(row)
	}
	return out, nil
}

// Count implements ports.Store.
func (s *Store) Count(ctx context.Context, table string, q ports.Query) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.match(table, q.Filters)), nil
}

// Insert implements ports.Store.
func (s *Store) Insert(ctx context.Context, table string, rec ports.Record) (ports.Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	row := maps.Clone(rec)
	if row == nil {
		row = ports.Record{}
	}
	if id, _ := row[colID].(string); id == "" {
		row[colID] = uuid.NewString()
	}
	if err := s.checkUnique(table, "", row); err != nil {
		return nil, err
	}
	now := s.now()
	row[colCreatedAt] = now
	row[colUpdatedAt] = now

	s.tables[table] = append(s.tables[table], row)
	return maps.Clone(row), nil
}

// Update implements ports.Store.
func (s *Store) Update(ctx context.Context, table, id string, rec ports.Record) (ports.Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(table, id)
	if i < 0 {
		return nil, fmt.Errorf("%s %q: %w", table, id, domain.ErrNotFound)
	}

	row := maps.Clone(s.tables[table][i])
	for k, v := range rec {
		if k == colID || k == colCreatedAt {
			continue
		}
		row[k] = v
	}
	if err := s.checkUnique(table, id, row); err != nil {
		return nil, err
	}
	row[colUpdatedAt] = s.now()

	s.tables[table][i] = row
	return maps.Clone(row), nil
}

// Delete implements ports.Store. Deleting a missing id is not an error.
func (s *Store) Delete(ctx context.Context, table, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if i := s.indexOf(table, id); i >= 0 {
		s.tables[table] = slices.Delete(s.tables[table], i, i+1)
	}
	return nil
}

func (s *Store) match(table string, filters []ports.Filter) []ports.Record {
	var out []ports.Record
	for _, row := range s.tables[table] {
		if matches(row, filters) {
			out = append(out, row)
		}
	}
	return out
}

func (s *Store) indexOf(table, id string) int {
	return slices.IndexFunc(s.tables[table], func(row ports.Record) bool {
		return fmt.Sprint(row[colID]) == id
	})
}

func (s *Store) checkUnique(table, selfID string, row ports.Record) error {
	slug, _ := row[colSlug].(string)
	if slug == "" {
		return nil
	}
	for _, other := range s.tables[table] {
		if fmt.Sprint(other[colID]) == selfID {
			continue
		}
		if other[colSlug] == slug {
			return fmt.Errorf("duplicate slug %q: %w", slug, domain.ErrConflict)
		}
	}
	return nil
}

func matches(row ports.Record, filters []ports.Filter) bool {
	for _, f := range filters {
		v, ok := row[f.Column]
		isNull := !ok || v == nil
		switch f.Op {
		case ports.OpNotNull:
			if isNull {
				return false
			}
		case ports.OpEq:
			if isNull || fmt.Sprint(v) != fmt.Sprint(f.Value) {
				return false
			}
		case ports.OpNeq:
			if !isNull && fmt.Sprint(v) == fmt.Sprint(f.Value) {
				return false
			}
		}
	}
	return true
}

// compareValues orders nulls after every value, matching Postgres defaults
// (NULLS LAST ascending, NULLS FIRST descending).
func compareValues(a, b any) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return 1
	case b == nil:
		return -1
	}

	if fa, ok := toFloat(a); ok {
		if fb, ok := toFloat(b); ok {
			return cmp.Compare(fa, fb)
		}
	}
	if ta, ok := a.(time.Time); ok {
		if tb, ok := b.(time.Time); ok {
			return ta.Compare(tb)
		}
	}
	return cmp.Compare(fmt.Sprint(a), fmt.Sprint(b))
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case float64:
		return n, true
	default:
		return 0, false
	}
}
