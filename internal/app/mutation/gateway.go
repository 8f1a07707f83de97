// Package mutation implements the admin write path: validate a submitted
// form, persist it, invalidate the affected pages, and report where the admin
// UI should navigate next.
//
// Every mutation moves through
//
//	received -> validated -> persisted -> revalidated -> completed
//
// and exits early as rejected (validation) or failed (store). Only completed
// mutations revalidate, exactly once.
package mutation

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jsamuelsen11/site-content-service/internal/domain"
	"github.com/jsamuelsen11/site-content-service/internal/domain/content"
	"github.com/jsamuelsen11/site-content-service/internal/normalize"
	"github.com/jsamuelsen11/site-content-service/internal/platform/telemetry"
	"github.com/jsamuelsen11/site-content-service/internal/ports"
	"github.com/jsamuelsen11/site-content-service/internal/repository"
)

// Compile-time interface check.
var _ ports.MutationService = (*Gateway)(nil)

const (
	opCreate = "Create"
	opUpdate = "Update"
	opDelete = "Delete"
)

// Gateway implements [ports.MutationService] over a repository set.
type Gateway struct {
	writers     map[content.Kind]writer
	revalidator ports.Revalidator
	metrics     *telemetry.Metrics
	logger      *slog.Logger
}

// New creates a Gateway. A nil logger discards output; nil metrics disable
// the mutation counter.
func New(repos *repository.Set, revalidator ports.Revalidator, metrics *telemetry.Metrics, logger *slog.Logger) *Gateway {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Gateway{
		writers:     writersFor(repos),
		revalidator: revalidator,
		metrics:     metrics,
		logger:      logger,
	}
}

// Create validates form and persists a new entity of kind.
func (g *Gateway) Create(ctx context.Context, kind content.Kind, form ports.Record) (*ports.MutationResult, error) {
	m := g.begin(ctx, opCreate, kind, "")

	w, desc, err := g.lookup(kind)
	if err != nil {
		return m.reject(ctx, err)
	}

	entity, err := w.prepare(form)
	if err != nil {
		return m.reject(ctx, err)
	}
	m.advance(ctx, ports.StateValidated)

	stored, err := w.create(ctx, entity)
	var rb *domain.ReadBackError
	if errors.As(err, &rb) {
		m.id = rb.ID
		return m.unreadable(ctx, desc, rb, "created", slugOf(entity))
	}
	if err != nil {
		return m.fail(ctx, err)
	}
	m.id = stored.Metadata().ID
	m.result.Entity = stored
	m.advance(ctx, ports.StatePersisted)

	paths := append(desc.ListPaths(), desc.DetailPath(m.id, slugOf(stored)))
	return m.complete(ctx, desc, paths, fmt.Sprintf("%s created", kind))
}

// Update validates form and replaces the writable fields of entity id.
func (g *Gateway) Update(ctx context.Context, kind content.Kind, id string, form ports.Record) (*ports.MutationResult, error) {
	m := g.begin(ctx, opUpdate, kind, id)

	w, desc, err := g.lookup(kind)
	if err != nil {
		return m.reject(ctx, err)
	}
	if err := normalize.RequireID(id); err != nil {
		return m.reject(ctx, err)
	}

	entity, err := w.prepare(form)
	if err != nil {
		return m.reject(ctx, err)
	}
	m.advance(ctx, ports.StateValidated)

	var previousSlug string
	if desc.DetailBySlug != "" {
		if prev := w.find(ctx, id); prev != nil {
			previousSlug = slugOf(prev)
		}
	}

	stored, err := w.update(ctx, id, entity)
	var rb *domain.ReadBackError
	if errors.As(err, &rb) {
		return m.unreadable(ctx, desc, rb, "updated", slugOf(entity), previousSlug)
	}
	if err != nil {
		return m.fail(ctx, err)
	}
	m.result.Entity = stored
	m.advance(ctx, ports.StatePersisted)

	paths := append(desc.ListPaths(), desc.DetailPath(id, slugOf(stored)))
	if previousSlug != "" && previousSlug != slugOf(stored) {
		paths = append(paths, desc.DetailPath(id, previousSlug))
	}
	return m.complete(ctx, desc, paths, fmt.Sprintf("%s updated", kind))
}

// Delete removes entity id. Deleting an id that does not exist completes
// normally.
func (g *Gateway) Delete(ctx context.Context, kind content.Kind, id string) (*ports.MutationResult, error) {
	m := g.begin(ctx, opDelete, kind, id)

	w, desc, err := g.lookup(kind)
	if err != nil {
		return m.reject(ctx, err)
	}
	if err := normalize.RequireID(id); err != nil {
		return m.reject(ctx, err)
	}
	m.advance(ctx, ports.StateValidated)

	var slug string
	if desc.DetailBySlug != "" {
		if prev := w.find(ctx, id); prev != nil {
			slug = slugOf(prev)
		}
	}

	if err := w.remove(ctx, id); err != nil {
		return m.fail(ctx, err)
	}
	m.advance(ctx, ports.StatePersisted)

	paths := append(desc.ListPaths(), desc.DetailPath(id, slug))
	return m.complete(ctx, desc, paths, fmt.Sprintf("%s deleted", kind))
}

func (g *Gateway) lookup(kind content.Kind) (writer, content.Descriptor, error) {
	w, ok := g.writers[kind]
	desc, known := content.DescriptorFor(kind)
	if !ok || !known {
		return nil, content.Descriptor{}, domain.NewValidationError("kind", fmt.Sprintf("unsupported kind %q", kind))
	}
	return w, desc, nil
}

// mutation tracks one request through the state machine.
type mutation struct {
	g      *Gateway
	op     string
	id     string
	result *ports.MutationResult
}

func (g *Gateway) begin(ctx context.Context, op string, kind content.Kind, id string) *mutation {
	m := &mutation{
		g:      g,
		op:     op,
		id:     id,
		result: &ports.MutationResult{Kind: kind},
	}
	m.advance(ctx, ports.StateReceived)
	return m
}

func (m *mutation) attrs(extra ...any) []any {
	return append([]any{
		slog.String("operation", "mutation."+m.op),
		slog.String("kind", m.result.Kind.String()),
		slog.String("id", m.id),
		slog.String("state", string(m.result.State)),
	}, extra...)
}

func (m *mutation) advance(ctx context.Context, state ports.MutationState) {
	m.result.State = state
	m.g.logger.DebugContext(ctx, "mutation state changed", m.attrs()...)
}

func (m *mutation) reject(ctx context.Context, err error) (*ports.MutationResult, error) {
	m.result.State = ports.StateRejected
	m.result.Message = err.Error()
	m.g.logger.WarnContext(ctx, "mutation rejected", m.attrs(slog.Any("error", err))...)
	m.record(ctx)
	return m.result, err
}

func (m *mutation) fail(ctx context.Context, err error) (*ports.MutationResult, error) {
	if errors.Is(err, domain.ErrValidation) {
		return m.reject(ctx, err)
	}
	m.result.State = ports.StateFailed
	m.result.Message = err.Error()
	m.g.logger.ErrorContext(ctx, "mutation failed", m.attrs(slog.Any("error", err))...)
	m.record(ctx)
	return m.result, err
}

// unreadable finishes a mutation whose write committed but whose stored row
// could not be decoded. The affected pages are still revalidated; the result
// carries no entity.
func (m *mutation) unreadable(ctx context.Context, desc content.Descriptor, rb *domain.ReadBackError, verb string, slugs ...string) (*ports.MutationResult, error) {
	m.advance(ctx, ports.StatePersisted)
	m.g.logger.WarnContext(ctx, "stored row unreadable after write", m.attrs(slog.Any("error", rb.Err))...)

	paths := append(desc.ListPaths(), desc.DetailPath(m.id, ""))
	for _, slug := range slugs {
		if slug != "" {
			paths = append(paths, desc.DetailPath(m.id, slug))
		}
	}
	return m.complete(ctx, desc, paths, fmt.Sprintf("%s %s; stored row could not be read back", m.result.Kind, verb))
}

func (m *mutation) complete(ctx context.Context, desc content.Descriptor, paths []string, msg string) (*ports.MutationResult, error) {
	m.g.revalidator.Revalidate(ctx, paths, desc.Tags())
	m.advance(ctx, ports.StateRevalidated)

	m.result.State = ports.StateCompleted
	m.result.Redirect = desc.AdminPath
	m.result.Message = msg
	m.g.logger.InfoContext(ctx, "mutation completed", m.attrs()...)
	m.record(ctx)
	return m.result, nil
}

func (m *mutation) record(ctx context.Context) {
	m.g.metrics.RecordMutation(ctx, m.result.Kind.String(), m.op, string(m.result.State))
}
