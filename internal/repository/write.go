package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jsamuelsen11/site-content-service/internal/domain"
	"github.com/jsamuelsen11/site-content-service/internal/normalize"
	"github.com/jsamuelsen11/site-content-service/internal/ports"
)

// Create validates and inserts entity, returning it as stored.
// Returns *domain.ValidationError before touching the store, or
// *domain.StoreError when the write fails.
func (r *Repository[T]) Create(ctx context.Context, entity T) (T, error) {
	var zero T
	if err := entity.Validate(); err != nil {
		return zero, err
	}

	rec, err := r.schema.Outbound(entity)
	if err != nil {
		return zero, err
	}

	orderCol := r.column(normalize.FieldDisplayOrder)
	if _, set := rec[orderCol]; !set && r.opts.autoSequence {
		next, err := r.nextDisplayOrder(ctx)
		if err != nil {
			return zero, &domain.StoreError{Op: "create", Kind: r.schema.Kind.String(), Err: err}
		}
		rec[orderCol] = next
	}

	stored, err := r.store.Insert(ctx, r.schema.Table, rec)
	if err != nil {
		return zero, &domain.StoreError{Op: "create", Kind: r.schema.Kind.String(), Err: err}
	}
	return r.readBack("create", stored)
}

// Update replaces the writable fields of the entity with the given id.
// Fields left empty are cleared. Returns domain.ErrNotFound when no row
// matches.
func (r *Repository[T]) Update(ctx context.Context, id string, entity T) (T, error) {
	var zero T
	if err := normalize.RequireID(id); err != nil {
		return zero, err
	}
	if err := entity.Validate(); err != nil {
		return zero, err
	}

	rec, err := r.schema.Replace(entity)
	if err != nil {
		return zero, err
	}

	stored, err := r.store.Update(ctx, r.schema.Table, id, rec)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return zero, domain.NotFound(r.schema.Kind.String(), id, nil)
		}
		return zero, &domain.StoreError{Op: "update", Kind: r.schema.Kind.String(), Err: err}
	}
	return r.readBack("update", stored)
}

// Delete removes the entity with the given id. Deleting an id that does not
// exist succeeds.
func (r *Repository[T]) Delete(ctx context.Context, id string) error {
	if err := normalize.RequireID(id); err != nil {
		return err
	}
	if err := r.store.Delete(ctx, r.schema.Table, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil
		}
		return &domain.StoreError{Op: "delete", Kind: r.schema.Kind.String(), Err: err}
	}
	return nil
}

// readBack decodes the row a write returned. The write has already
// committed, so a decode failure is a *domain.ReadBackError.
func (r *Repository[T]) readBack(op string, stored ports.Record) (T, error) {
	item, err := normalize.Read[T](r.schema, stored)
	if err != nil {
		var id string
		if v, ok := stored[r.column(normalize.FieldID)]; ok && v != nil {
			id = fmt.Sprint(v)
		}
		return item, &domain.ReadBackError{Op: op, Kind: r.schema.Kind.String(), ID: id, Err: err}
	}
	return item, nil
}

// nextDisplayOrder returns one more than the highest stored display order,
// or 0 when no entity has one.
func (r *Repository[T]) nextDisplayOrder(ctx context.Context) (int, error) {
	col := r.column(normalize.FieldDisplayOrder)
	rows, err := r.store.Select(ctx, r.schema.Table, ports.Query{
		Filters: []ports.Filter{ports.NotNull(col)},
		Order:   []ports.OrderBy{{Column: col, Desc: true}},
		Limit:   1,
	})
	if err != nil {
		return 0, err
	}
	if len(rows) == 0 {
		return 0, nil
	}

	item, err := normalize.Read[T](r.schema, rows[0])
	if err != nil {
		return 0, err
	}
	if order := item.Metadata().DisplayOrder; order != nil {
		return *order + 1, nil
	}
	return 0, nil
}
