// Package repository provides the per-kind entity repository: live reads
// normalized and ordered for display with a static fallback, and writes
// surfaced to the caller.
package repository

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jsamuelsen11/site-content-service/internal/domain"
	"github.com/jsamuelsen11/site-content-service/internal/domain/content"
	"github.com/jsamuelsen11/site-content-service/internal/fallback"
	"github.com/jsamuelsen11/site-content-service/internal/normalize"
	"github.com/jsamuelsen11/site-content-service/internal/ordering"
	"github.com/jsamuelsen11/site-content-service/internal/platform/telemetry"
	"github.com/jsamuelsen11/site-content-service/internal/ports"
)

type options struct {
	logger       *slog.Logger
	metrics      *telemetry.Metrics
	autoSequence bool
}

// Option configures a Repository.
type Option func(*options)

// WithLogger sets the logger. Defaults to slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithMetrics sets the metrics used to count fallback reads.
func WithMetrics(m *telemetry.Metrics) Option {
	return func(o *options) { o.metrics = m }
}

// WithAutoSequence makes Create assign max(displayOrder)+1 when the entity
// has no display order.
func WithAutoSequence(enabled bool) Option {
	return func(o *options) { o.autoSequence = enabled }
}

// Repository reads and writes one entity kind through a Store.
//
// List reads never fail: when the store errors or returns zero rows, the
// kind's fallback dataset is returned in registry order. Single-entity reads
// and writes surface their errors.
type Repository[T content.Entity] struct {
	store    ports.Store
	schema   normalize.Schema
	fallback *fallback.Registry
	opts     options
}

// New creates a repository for the kind described by schema.
func New[T content.Entity](store ports.Store, schema normalize.Schema, fb *fallback.Registry, opts ...Option) *Repository[T] {
	o := options{logger: slog.Default()}
	for _, opt := range opts {
		opt(&o)
	}
	return &Repository[T]{
		store:    store,
		schema:   schema,
		fallback: fb,
		opts:     o,
	}
}

// Kind returns the entity kind served by this repository.
func (r *Repository[T]) Kind() content.Kind {
	return r.schema.Kind
}

// Schema returns the alias table used to read and write the kind.
func (r *Repository[T]) Schema() normalize.Schema {
	return r.schema
}

func (r *Repository[T]) column(field string) string {
	return r.schema.Column(field)
}

func (r *Repository[T]) newestFirst() []ports.OrderBy {
	return []ports.OrderBy{{Column: r.column(normalize.FieldCreatedAt), Desc: true}}
}

// All returns every entity in display order.
func (r *Repository[T]) All(ctx context.Context) []T {
	items, err := r.selectAll(ctx, ports.Query{Order: r.newestFirst()})
	if err != nil || len(items) == 0 {
		return r.fallbackFor(ctx, "All", err, nil)
	}
	return ordering.Order(items)
}

// Featured returns up to limit featured entities in display order. The
// ordering is applied to all featured rows before truncating. A limit of
// zero or less means no limit.
func (r *Repository[T]) Featured(ctx context.Context, limit int) []T {
	return r.featured(ctx, "Featured", limit, ports.Eq(r.column(normalize.FieldFeatured), true))
}

// FeaturedWithImage is Featured restricted to entities that have an image.
func (r *Repository[T]) FeaturedWithImage(ctx context.Context, limit int) []T {
	return r.featured(ctx, "FeaturedWithImage", limit,
		ports.Eq(r.column(normalize.FieldFeatured), true),
		ports.NotNull(r.column(normalize.FieldImage)),
	)
}

func (r *Repository[T]) featured(ctx context.Context, op string, limit int, filters ...ports.Filter) []T {
	items, err := r.selectAll(ctx, ports.Query{Filters: filters, Order: r.newestFirst()})
	if err != nil || len(items) == 0 {
		fb := r.fallbackFor(ctx, op, err, func(item T) bool {
			if !item.Metadata().Featured {
				return false
			}
			if op == "FeaturedWithImage" {
				return r.hasValue(item, normalize.FieldImage)
			}
			return true
		})
		return truncate(fb, limit)
	}
	return truncate(ordering.Order(items), limit)
}

// ListBy returns the entities whose canonical field equals value, in display
// order. The fallback dataset is filtered the same way.
func (r *Repository[T]) ListBy(ctx context.Context, field, value string) []T {
	q := ports.Query{
		Filters: []ports.Filter{ports.Eq(r.column(field), value)},
		Order:   r.newestFirst(),
	}
	items, err := r.selectAll(ctx, q)
	if err != nil || len(items) == 0 {
		return r.fallbackFor(ctx, "ListBy", err, func(item T) bool {
			return r.fieldEquals(item, field, value)
		})
	}
	return ordering.Order(items)
}

// Related returns up to limit entities other than excludeID, newest first.
func (r *Repository[T]) Related(ctx context.Context, excludeID string, limit int) []T {
	q := ports.Query{
		Filters: []ports.Filter{ports.Neq(r.column(normalize.FieldID), excludeID)},
		Order:   r.newestFirst(),
		Limit:   max(limit, 0),
	}
	items, err := r.selectAll(ctx, q)
	if err != nil || len(items) == 0 {
		fb := r.fallbackFor(ctx, "Related", err, func(item T) bool {
			return item.Metadata().ID != excludeID
		})
		return truncate(fb, limit)
	}
	return truncate(items, limit)
}

// Count returns the number of stored entities. Store errors surface.
func (r *Repository[T]) Count(ctx context.Context) (int, error) {
	n, err := r.store.Count(ctx, r.schema.Table, ports.Query{})
	if err != nil {
		return 0, &domain.StoreError{Op: "count", Kind: r.schema.Kind.String(), Err: err}
	}
	return n, nil
}

// ByID returns the entity with the given id. Any store failure is reported
// as domain.ErrNotFound; there is no fallback for single-entity reads.
func (r *Repository[T]) ByID(ctx context.Context, id string) (T, error) {
	return r.one(ctx, "ByID", normalize.FieldID, id)
}

// BySlug returns the entity with the given slug.
func (r *Repository[T]) BySlug(ctx context.Context, slug string) (T, error) {
	return r.one(ctx, "BySlug", normalize.FieldSlug, slug)
}

func (r *Repository[T]) one(ctx context.Context, op, field, value string) (T, error) {
	var zero T
	if value == "" {
		return zero, domain.NotFound(r.schema.Kind.String(), value, nil)
	}

	q := ports.Query{Filters: []ports.Filter{ports.Eq(r.column(field), value)}, Limit: 1}
	rows, err := r.store.Select(ctx, r.schema.Table, q)
	if err != nil {
		r.opts.logger.WarnContext(ctx, "store read failed",
			slog.String("operation", op),
			slog.String("kind", r.schema.Kind.String()),
			slog.String(field, value),
			slog.Any("error", err),
		)
		return zero, domain.NotFound(r.schema.Kind.String(), value, err)
	}
	if len(rows) == 0 {
		return zero, domain.NotFound(r.schema.Kind.String(), value, nil)
	}

	item, err := normalize.Read[T](r.schema, rows[0])
	if err != nil {
		return zero, domain.NotFound(r.schema.Kind.String(), value, err)
	}
	return item, nil
}

// errNoReadableRows reports a read where the store returned rows but none
// of them could be decoded.
var errNoReadableRows = errors.New("no stored row could be decoded")

// selectAll runs q and decodes every row. Rows that fail to decode are
// skipped and logged. When rows came back but none decoded, the result is
// errNoReadableRows so callers fall back with that cause.
func (r *Repository[T]) selectAll(ctx context.Context, q ports.Query) ([]T, error) {
	rows, err := r.store.Select(ctx, r.schema.Table, q)
	if err != nil {
		return nil, err
	}

	items := make([]T, 0, len(rows))
	for _, row := range rows {
		item, err := normalize.Read[T](r.schema, row)
		if err != nil {
			r.opts.logger.WarnContext(ctx, "skipping undecodable row",
				slog.String("kind", r.schema.Kind.String()),
				slog.Any("id", row[r.column(normalize.FieldID)]),
				slog.Any("error", err),
			)
			continue
		}
		items = append(items, item)
	}
	if len(rows) > 0 && len(items) == 0 {
		return nil, fmt.Errorf("%s: %w (%d rows)", r.schema.Kind, errNoReadableRows, len(rows))
	}
	return items, nil
}

// fallbackFor returns the (optionally filtered) fallback dataset and records
// the degradation. Fallback data is returned as registered, without reordering.
func (r *Repository[T]) fallbackFor(ctx context.Context, op string, cause error, keep func(T) bool) []T {
	items := fallback.For[T](r.fallback, r.schema.Kind)
	if keep != nil {
		filtered := items[:0]
		for _, item := range items {
			if keep(item) {
				filtered = append(filtered, item)
			}
		}
		items = filtered
	}

	attrs := []any{
		slog.String("operation", op),
		slog.String("kind", r.schema.Kind.String()),
		slog.Bool("fallback_applied", true),
		slog.Int("count", len(items)),
	}
	if cause != nil {
		attrs = append(attrs, slog.Any("error", cause))
	} else {
		attrs = append(attrs, slog.String("reason", "no rows"))
	}
	r.opts.logger.WarnContext(ctx, "serving fallback content", attrs...)
	r.opts.metrics.RecordFallback(ctx, r.schema.Kind.String(), op)

	return items
}

func (r *Repository[T]) hasValue(item T, field string) bool {
	rec, err := r.schema.Outbound(item)
	if err != nil {
		return false
	}
	v, ok := rec[r.column(field)]
	return ok && v != nil && v != ""
}

func (r *Repository[T]) fieldEquals(item T, field, value string) bool {
	if field == normalize.FieldID {
		return item.Metadata().ID == value
	}
	rec, err := r.schema.Outbound(item)
	if err != nil {
		return false
	}
	v, ok := rec[r.column(field)]
	return ok && fmt.Sprint(v) == value
}

func truncate[T any](items []T, limit int) []T {
	if limit > 0 && len(items) > limit {
		return items[:limit]
	}
	return items
}
