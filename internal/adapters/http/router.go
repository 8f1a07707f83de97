// Package http provides the inbound HTTP adapter including routing and server lifecycle.
package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/site-content-service/internal/adapters/http/handlers"
)

// Handlers groups the handlers mounted by NewRouter.
type Handlers struct {
	Content    *handlers.ContentHandler
	Admin      *handlers.AdminHandler
	Revalidate *handlers.RevalidateHandler
	Health     *handlers.HealthHandler
}

// NewRouter creates an HTTP handler with all application routes registered.
// Middleware is applied globally in the order given. The admin middleware
// (token check, timeout) wraps only the /api/v1/admin routes; nil means none.
func NewRouter(
	h Handlers,
	admin func(http.Handler) http.Handler,
	middlewares ...func(http.Handler) http.Handler,
) http.Handler {
	r := chi.NewRouter()

	for _, mw := range middlewares {
		r.Use(mw)
	}

	// Health endpoints (outside /api/v1 prefix).
	r.Get("/health/live", h.Health.Liveness)
	r.Get("/health/ready", h.Health.Readiness)

	// On-demand revalidation, guarded by its own shared secret.
	r.Post("/api/revalidate", h.Revalidate.Revalidate)

	// API v1 routes.
	r.Route("/api/v1", func(r chi.Router) {
		// Public reads.
		r.Get("/content/projects/slug/{slug}", h.Content.ProjectBySlug)
		r.Get("/content/projects/{id}/related", h.Content.RelatedProjects)
		r.Get("/content/{kind}", h.Content.List)
		r.Get("/content/{kind}/{id}", h.Content.Get)

		// Admin mutations and dashboard.
		r.Route("/admin", func(r chi.Router) {
			if admin != nil {
				r.Use(admin)
			}
			r.Get("/stats", h.Admin.Stats)
			r.Post("/{kind}", h.Admin.Create)
			r.Put("/{kind}/{id}", h.Admin.Update)
			r.Delete("/{kind}/{id}", h.Admin.Delete)
		})
	})

	return r
}
