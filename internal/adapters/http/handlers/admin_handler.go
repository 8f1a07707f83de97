package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/site-content-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/site-content-service/internal/ports"
)

// AdminHandler handles the token-guarded admin mutation and dashboard API.
type AdminHandler struct {
	mutations ports.MutationService
	content   ports.ContentService
}

// NewAdminHandler creates a new AdminHandler with the given service ports.
func NewAdminHandler(mutations ports.MutationService, content ports.ContentService) *AdminHandler {
	return &AdminHandler{mutations: mutations, content: content}
}

// Create handles POST /api/v1/admin/{kind}.
func (h *AdminHandler) Create(w http.ResponseWriter, r *http.Request) {
	kind, err := parseKind(r)
	if err != nil {
		dto.WriteMutationError(w, r, string(ports.StateRejected), err)
		return
	}
	form, ok := decodeForm(w, r)
	if !ok {
		return
	}

	res, err := h.mutations.Create(r.Context(), kind, form)
	if err != nil {
		writeMutationError(w, r, res, err)
		return
	}

	writeJSON(w, http.StatusCreated, dto.ToMutationResponse(res))
}

// Update handles PUT /api/v1/admin/{kind}/{id}.
func (h *AdminHandler) Update(w http.ResponseWriter, r *http.Request) {
	kind, err := parseKind(r)
	if err != nil {
		dto.WriteMutationError(w, r, string(ports.StateRejected), err)
		return
	}
	id, err := pathParam(r, paramID)
	if err != nil {
		dto.WriteMutationError(w, r, string(ports.StateRejected), err)
		return
	}
	form, ok := decodeForm(w, r)
	if !ok {
		return
	}

	res, err := h.mutations.Update(r.Context(), kind, id, form)
	if err != nil {
		writeMutationError(w, r, res, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToMutationResponse(res))
}

// Delete handles DELETE /api/v1/admin/{kind}/{id}.
func (h *AdminHandler) Delete(w http.ResponseWriter, r *http.Request) {
	kind, err := parseKind(r)
	if err != nil {
		dto.WriteMutationError(w, r, string(ports.StateRejected), err)
		return
	}
	id, err := pathParam(r, paramID)
	if err != nil {
		dto.WriteMutationError(w, r, string(ports.StateRejected), err)
		return
	}

	res, err := h.mutations.Delete(r.Context(), kind, id)
	if err != nil {
		writeMutationError(w, r, res, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToMutationResponse(res))
}

// Stats handles GET /api/v1/admin/stats.
func (h *AdminHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.content.Stats(r.Context())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToStatsResponse(stats))
}

func writeMutationError(w http.ResponseWriter, r *http.Request, res *ports.MutationResult, err error) {
	state := ports.StateFailed
	if res != nil {
		state = res.State
	}
	dto.WriteMutationError(w, r, string(state), err)
}
