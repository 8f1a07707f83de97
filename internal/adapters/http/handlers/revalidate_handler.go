package handlers

import (
	"crypto/subtle"
	"errors"
	"net/http"
	"time"

	"github.com/jsamuelsen11/site-content-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/site-content-service/internal/domain"
	"github.com/jsamuelsen11/site-content-service/internal/ports"
)

var errInvalidSecret = errors.New("invalid revalidation secret")

// RevalidateHandler handles on-demand revalidation requests from trusted
// callers such as the CMS or a deploy hook.
type RevalidateHandler struct {
	revalidator ports.Revalidator
	secret      []byte
	now         func() time.Time
}

// NewRevalidateHandler creates a new RevalidateHandler. An empty secret
// rejects every request.
func NewRevalidateHandler(revalidator ports.Revalidator, secret string) *RevalidateHandler {
	return &RevalidateHandler{
		revalidator: revalidator,
		secret:      []byte(secret),
		now:         time.Now,
	}
}

// Revalidate handles POST /api/revalidate. Targets are read from the query
// string and, when present, a JSON body; body fields override the query.
func (h *RevalidateHandler) Revalidate(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	req := dto.RevalidateRequest{
		Secret: q.Get("secret"),
		Path:   q.Get("path"),
		Tag:    q.Get("tag"),
	}
	if r.Body != nil && r.Body != http.NoBody && r.ContentLength != 0 {
		if !decodeJSONBody(w, r, &req) {
			return
		}
	}

	if !h.authorized(req.Secret) {
		dto.WriteErrorResponse(w, r, errors.Join(domain.ErrForbidden, errInvalidSecret))
		return
	}
	if err := req.Validate(); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	paths, tags := req.Targets()
	h.revalidator.Revalidate(r.Context(), paths, tags)

	writeJSON(w, http.StatusOK, dto.NewRevalidateResponse(h.now()))
}

func (h *RevalidateHandler) authorized(secret string) bool {
	if len(h.secret) == 0 {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(secret), h.secret) == 1
}
