// Package handlers provides HTTP request handlers for the service's API endpoints.
package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/site-content-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/site-content-service/internal/ports"
)

// defaultRelatedLimit is the number of related projects shown under a
// project detail page.
const defaultRelatedLimit = 3

// ContentHandler serves the public, read-only content API.
type ContentHandler struct {
	svc ports.ContentService
}

// NewContentHandler creates a new ContentHandler with the given service port.
func NewContentHandler(svc ports.ContentService) *ContentHandler {
	return &ContentHandler{svc: svc}
}

// List handles GET /api/v1/content/{kind}.
func (h *ContentHandler) List(w http.ResponseWriter, r *http.Request) {
	kind, err := parseKind(r)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	featured, err := parseBool(r, "featured")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	withImage, err := parseBool(r, "withImage")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	limit, err := parseLimit(r, 0)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	items, err := h.svc.List(r.Context(), kind, ports.ListOptions{
		FeaturedOnly: featured,
		Limit:        limit,
		Category:     r.URL.Query().Get("category"),
		WithImage:    withImage,
	})
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToContentListResponse(kind, items))
}

// Get handles GET /api/v1/content/{kind}/{id}.
func (h *ContentHandler) Get(w http.ResponseWriter, r *http.Request) {
	kind, err := parseKind(r)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	id, err := pathParam(r, paramID)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	entity, err := h.svc.Get(r.Context(), kind, id)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, entity)
}

// ProjectBySlug handles GET /api/v1/content/projects/slug/{slug}.
func (h *ContentHandler) ProjectBySlug(w http.ResponseWriter, r *http.Request) {
	slug, err := pathParam(r, paramSlug)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	p, err := h.svc.ProjectBySlug(r.Context(), slug)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, p)
}

// RelatedProjects handles GET /api/v1/content/projects/{id}/related.
func (h *ContentHandler) RelatedProjects(w http.ResponseWriter, r *http.Request) {
	id, err := pathParam(r, paramID)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	limit, err := parseLimit(r, defaultRelatedLimit)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	projects, err := h.svc.RelatedProjects(r.Context(), id, limit)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToProjectListResponse(projects))
}
