package mutation

import (
	"context"
	"fmt"

	"github.com/jsamuelsen11/site-content-service/internal/domain/content"
	"github.com/jsamuelsen11/site-content-service/internal/normalize"
	"github.com/jsamuelsen11/site-content-service/internal/ports"
	"github.com/jsamuelsen11/site-content-service/internal/repository"
)

// writer is the kind-independent view of a typed repository.
type writer interface {
	// prepare resolves and decodes a form, then validates the entity.
	prepare(form ports.Record) (content.Entity, error)
	create(ctx context.Context, e content.Entity) (content.Entity, error)
	update(ctx context.Context, id string, e content.Entity) (content.Entity, error)
	remove(ctx context.Context, id string) error
	// find returns the stored entity, or nil when it cannot be read.
	find(ctx context.Context, id string) content.Entity
}

type repoWriter[T content.Entity] struct {
	repo *repository.Repository[T]
}

func (w repoWriter[T]) prepare(form ports.Record) (content.Entity, error) {
	entity, err := normalize.Form[T](w.repo.Schema(), form)
	if err != nil {
		return nil, err
	}
	if err := entity.Validate(); err != nil {
		return nil, err
	}
	return entity, nil
}

func (w repoWriter[T]) create(ctx context.Context, e content.Entity) (content.Entity, error) {
	entity, err := w.typed(e)
	if err != nil {
		return nil, err
	}
	stored, err := w.repo.Create(ctx, entity)
	if err != nil {
		return nil, err
	}
	return stored, nil
}

func (w repoWriter[T]) update(ctx context.Context, id string, e content.Entity) (content.Entity, error) {
	entity, err := w.typed(e)
	if err != nil {
		return nil, err
	}
	stored, err := w.repo.Update(ctx, id, entity)
	if err != nil {
		return nil, err
	}
	return stored, nil
}

func (w repoWriter[T]) remove(ctx context.Context, id string) error {
	return w.repo.Delete(ctx, id)
}

func (w repoWriter[T]) find(ctx context.Context, id string) content.Entity {
	entity, err := w.repo.ByID(ctx, id)
	if err != nil {
		return nil
	}
	return entity
}

func (w repoWriter[T]) typed(e content.Entity) (T, error) {
	entity, ok := e.(T)
	if !ok {
		var zero T
		return zero, fmt.Errorf("mutation: %T is not a %s entity", e, w.repo.Kind())
	}
	return entity, nil
}

// writersFor binds every kind in set to its writer.
func writersFor(set *repository.Set) map[content.Kind]writer {
	return map[content.Kind]writer{
		content.KindTestimonial: repoWriter[content.Testimonial]{repo: set.Testimonials},
		content.KindProject:     repoWriter[content.Project]{repo: set.Projects},
		content.KindService:     repoWriter[content.Service]{repo: set.Services},
		content.KindProcessStep: repoWriter[content.ProcessStep]{repo: set.ProcessSteps},
		content.KindFAQ:         repoWriter[content.FAQ]{repo: set.FAQs},
	}
}

// slugOf returns the public slug of entities that have one.
func slugOf(e content.Entity) string {
	if p, ok := e.(content.Project); ok {
		return p.Slug
	}
	return ""
}
