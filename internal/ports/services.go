package ports

import (
	"context"

	"github.com/jsamuelsen11/site-content-service/internal/domain/content"
)

// ListOptions narrows a public content listing.
type ListOptions struct {
	// FeaturedOnly restricts the list to featured entities.
	FeaturedOnly bool
	// Limit caps the result. Zero or negative means no limit.
	Limit int
	// Category filters FAQs by category. Ignored for other kinds.
	Category string
	// WithImage restricts featured testimonials to those with an image.
	// Ignored for other kinds and for non-featured listings.
	WithImage bool
}

// ContentService defines the service port for public content reads.
// Implemented by the application layer; called by inbound adapters (handlers).
// List operations never fail because of the store: when it errors or returns
// nothing, the embedded fallback dataset is served instead.
type ContentService interface {
	// List returns the ordered entities of a kind.
	List(ctx context.Context, kind content.Kind, opts ListOptions) ([]content.Entity, error)

	// Get returns a single entity by ID.
	// Returns domain.ErrNotFound if it does not exist or cannot be fetched.
	Get(ctx context.Context, kind content.Kind, id string) (content.Entity, error)

	// ProjectBySlug returns the project with the given slug.
	// Returns domain.ErrNotFound if it does not exist or cannot be fetched.
	ProjectBySlug(ctx context.Context, slug string) (*content.Project, error)

	// RelatedProjects returns up to limit other projects, newest first.
	RelatedProjects(ctx context.Context, excludeID string, limit int) ([]content.Project, error)

	// Stats counts the rows of every kind concurrently for the admin
	// dashboard. Per-kind failures are collected in Stats.Errors.
	Stats(ctx context.Context) (*Stats, error)
}

// Stats holds the dashboard counts.
type Stats struct {
	Counts map[content.Kind]int
	Errors map[content.Kind]error
}

// MutationState is a stage of the admin mutation lifecycle.
type MutationState string

const (
	StateReceived    MutationState = "received"
	StateValidated   MutationState = "validated"
	StatePersisted   MutationState = "persisted"
	StateRevalidated MutationState = "revalidated"
	StateCompleted   MutationState = "completed"
	StateRejected    MutationState = "rejected"
	StateFailed      MutationState = "failed"
)

// MutationResult reports the outcome of an admin mutation.
type MutationResult struct {
	State  MutationState
	Kind   content.Kind
	Entity content.Entity
	// Redirect is the admin list view to navigate to after success.
	Redirect string
	Message  string
}

// MutationService defines the service port for admin create, update and
// delete. Implemented by the mutation gateway; called by admin handlers.
// Payloads are flat records with persisted or canonical field names.
type MutationService interface {
	// Create validates and persists a new entity.
	// Returns domain.ErrValidation (Rejected) or domain.ErrStore (Failed).
	Create(ctx context.Context, kind content.Kind, form Record) (*MutationResult, error)

	// Update replaces the writable fields of an existing entity.
	// Returns domain.ErrValidation, domain.ErrNotFound, or domain.ErrStore.
	Update(ctx context.Context, kind content.Kind, id string, form Record) (*MutationResult, error)

	// Delete removes an entity. Deleting a missing id succeeds.
	Delete(ctx context.Context, kind content.Kind, id string) (*MutationResult, error)
}
