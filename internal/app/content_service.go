// Package app provides application services that orchestrate use cases by
// coordinating between domain logic and infrastructure through port interfaces.
package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jsamuelsen11/site-content-service/internal/app/fanout"
	"github.com/jsamuelsen11/site-content-service/internal/domain"
	"github.com/jsamuelsen11/site-content-service/internal/domain/content"
	"github.com/jsamuelsen11/site-content-service/internal/normalize"
	"github.com/jsamuelsen11/site-content-service/internal/ports"
	"github.com/jsamuelsen11/site-content-service/internal/repository"
)

// Compile-time check that ContentService implements ports.ContentService.
var _ ports.ContentService = (*ContentService)(nil)

// maxStatsWorkers bounds the concurrent count queries issued by Stats.
const maxStatsWorkers = 5

// ContentService implements ports.ContentService over a repository set. List
// reads are served by the repositories, which fall back to the embedded
// dataset on their own; this layer only picks the query for the request.
type ContentService struct {
	repos   *repository.Set
	readers map[content.Kind]reader
	logger  *slog.Logger
}

// NewContentService creates a ContentService. A nil logger discards output.
func NewContentService(repos *repository.Set, logger *slog.Logger) *ContentService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &ContentService{
		repos:   repos,
		readers: readersFor(repos),
		logger:  logger,
	}
}

// List returns the ordered entities of kind. Category applies to FAQs only.
func (s *ContentService) List(ctx context.Context, kind content.Kind, opts ports.ListOptions) ([]content.Entity, error) {
	r, err := s.reader(kind)
	if err != nil {
		return nil, err
	}

	s.logger.DebugContext(ctx, "listing content",
		slog.String("kind", kind.String()),
		slog.Bool("featured", opts.FeaturedOnly),
		slog.Int("limit", opts.Limit),
		slog.String("category", opts.Category),
		slog.Bool("with_image", opts.WithImage),
	)

	if kind == content.KindFAQ && opts.Category != "" {
		items := s.repos.FAQs.ListBy(ctx, normalize.FieldCategory, opts.Category)
		if opts.FeaturedOnly {
			items = featuredOnly(items)
		}
		return entities(truncate(items, opts.Limit)), nil
	}
	if kind == content.KindTestimonial && opts.FeaturedOnly && opts.WithImage {
		return entities(s.repos.Testimonials.FeaturedWithImage(ctx, opts.Limit)), nil
	}
	if opts.FeaturedOnly {
		return r.featured(ctx, opts.Limit), nil
	}
	return r.all(ctx, opts.Limit), nil
}

// Get returns a single entity by id.
func (s *ContentService) Get(ctx context.Context, kind content.Kind, id string) (content.Entity, error) {
	r, err := s.reader(kind)
	if err != nil {
		return nil, err
	}

	entity, err := r.byID(ctx, id)
	if err != nil {
		s.logger.InfoContext(ctx, "content not found",
			slog.String("operation", "Get"),
			slog.String("kind", kind.String()),
			slog.String("id", id),
			slog.Any("error", err),
		)
		return nil, err
	}
	return entity, nil
}

// ProjectBySlug returns the project with the given slug.
func (s *ContentService) ProjectBySlug(ctx context.Context, slug string) (*content.Project, error) {
	p, err := s.repos.Projects.BySlug(ctx, slug)
	if err != nil {
		s.logger.InfoContext(ctx, "project not found",
			slog.String("operation", "ProjectBySlug"),
			slog.String("slug", slug),
			slog.Any("error", err),
		)
		return nil, err
	}
	return &p, nil
}

// RelatedProjects returns up to limit projects other than excludeID.
func (s *ContentService) RelatedProjects(ctx context.Context, excludeID string, limit int) ([]content.Project, error) {
	return s.repos.Projects.Related(ctx, excludeID, limit), nil
}

// Stats counts every kind concurrently. A failed count is reported in
// Stats.Errors and leaves the other counts intact. The returned error is only
// set when ctx ends before the counts complete.
func (s *ContentService) Stats(ctx context.Context) (*ports.Stats, error) {
	kinds := content.Kinds()
	results := fanout.Run(ctx, maxStatsWorkers, kinds, func(ctx context.Context, k content.Kind) (int, error) {
		return s.readers[k].count(ctx)
	})

	stats := &ports.Stats{
		Counts: make(map[content.Kind]int, len(kinds)),
		Errors: make(map[content.Kind]error),
	}
	for i, res := range results {
		if res.Err != nil {
			stats.Errors[kinds[i]] = res.Err
			s.logger.WarnContext(ctx, "count failed",
				slog.String("operation", "Stats"),
				slog.String("kind", kinds[i].String()),
				slog.Any("error", res.Err),
			)
			continue
		}
		stats.Counts[kinds[i]] = res.Value
	}

	if err := ctx.Err(); err != nil {
		return stats, err
	}
	return stats, nil
}

func (s *ContentService) reader(kind content.Kind) (reader, error) {
	r, ok := s.readers[kind]
	if !ok {
		return nil, domain.NewValidationError("kind", fmt.Sprintf("unsupported kind %q", kind))
	}
	return r, nil
}

// reader is the kind-independent view of a typed repository's reads.
type reader interface {
	all(ctx context.Context, limit int) []content.Entity
	featured(ctx context.Context, limit int) []content.Entity
	byID(ctx context.Context, id string) (content.Entity, error)
	count(ctx context.Context) (int, error)
}

type repoReader[T content.Entity] struct {
	repo *repository.Repository[T]
}

func (r repoReader[T]) all(ctx context.Context, limit int) []content.Entity {
	return entities(truncate(r.repo.All(ctx), limit))
}

func (r repoReader[T]) featured(ctx context.Context, limit int) []content.Entity {
	return entities(r.repo.Featured(ctx, limit))
}

func (r repoReader[T]) byID(ctx context.Context, id string) (content.Entity, error) {
	e, err := r.repo.ByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return e, nil
}

func (r repoReader[T]) count(ctx context.Context) (int, error) {
	return r.repo.Count(ctx)
}

func readersFor(set *repository.Set) map[content.Kind]reader {
	return map[content.Kind]reader{
		content.KindTestimonial: repoReader[content.Testimonial]{repo: set.Testimonials},
		content.KindProject:     repoReader[content.Project]{repo: set.Projects},
		content.KindService:     repoReader[content.Service]{repo: set.Services},
		content.KindProcessStep: repoReader[content.ProcessStep]{repo: set.ProcessSteps},
		content.KindFAQ:         repoReader[content.FAQ]{repo: set.FAQs},
	}
}

func entities[T content.Entity](items []T) []content.Entity {
	out := make([]content.Entity, len(items))
	for i, item := range items {
		out[i] = item
	}
	return out
}

func featuredOnly[T content.Entity](items []T) []T {
	out := make([]T, 0, len(items))
	for _, item := range items {
		if item.Metadata().Featured {
			out = append(out, item)
		}
	}
	return out
}

func truncate[T any](items []T, limit int) []T {
	if limit > 0 && len(items) > limit {
		return items[:limit]
	}
	return items
}
