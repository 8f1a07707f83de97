package handlers

import (
	"encoding/json"
	"log/slog"
	"mime"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/site-content-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/site-content-service/internal/domain"
	"github.com/jsamuelsen11/site-content-service/internal/domain/content"
	"github.com/jsamuelsen11/site-content-service/internal/ports"
)

const (
	paramKind = "kind"
	paramID   = "id"
	paramSlug = "slug"

	contentTypeForm      = "application/x-www-form-urlencoded"
	contentTypeMultipart = "multipart/form-data"

	maxLimit = 100
)

// parseKind resolves the {kind} path parameter.
func parseKind(r *http.Request) (content.Kind, error) {
	return content.ParseKind(chi.URLParam(r, paramKind))
}

// pathParam returns a trimmed, non-empty path parameter.
func pathParam(r *http.Request, name string) (string, error) {
	v := strings.TrimSpace(chi.URLParam(r, name))
	if v == "" {
		return "", domain.NewValidationError(name, domain.MsgRequired)
	}
	return v, nil
}

// parseLimit reads the limit query parameter. Missing means def; values
// above maxLimit are clamped.
func parseLimit(r *http.Request, def int) (int, error) {
	raw := r.URL.Query().Get("limit")
	if raw == "" {
		return def, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0, domain.NewValidationError("limit", "must be a non-negative integer")
	}
	return min(n, maxLimit), nil
}

// parseBool reads a boolean query parameter. Missing means false.
func parseBool(r *http.Request, name string) (bool, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return false, nil
	}
	b, err := strconv.ParseBool(raw)
	if err != nil {
		return false, domain.NewValidationError(name, "must be a boolean")
	}
	return b, nil
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", slog.Any("error", err))
	}
}

// maxJSONBodyBytes is the maximum allowed size for a JSON request body (1 MB).
const maxJSONBodyBytes = 1 << 20

// decodeJSONBody decodes the request body as JSON into dst. The body is
// limited to maxJSONBodyBytes to prevent resource exhaustion. On failure,
// it writes a 400 error response and returns false.
func decodeJSONBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxJSONBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		dto.WriteErrorResponse(w, r, &domain.ValidationError{
			Fields: map[string]string{"body": "invalid JSON"},
		})
		return false
	}
	return true
}

// decodeForm reads an admin payload as a flat record. Form-encoded bodies
// map single values to strings and repeated keys to string slices; anything
// else is decoded as a JSON object. On failure it writes a 400 error
// response and returns false.
func decodeForm(w http.ResponseWriter, r *http.Request) (ports.Record, bool) {
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))

	switch mediaType {
	case contentTypeForm, contentTypeMultipart:
		r.Body = http.MaxBytesReader(w, r.Body, maxJSONBodyBytes)
		var err error
		if mediaType == contentTypeMultipart {
			err = r.ParseMultipartForm(maxJSONBodyBytes)
		} else {
			err = r.ParseForm()
		}
		if err != nil {
			dto.WriteErrorResponse(w, r, domain.NewValidationError("body", "invalid form"))
			return nil, false
		}
		return formRecord(r), true
	default:
		var rec ports.Record
		if !decodeJSONBody(w, r, &rec) {
			return nil, false
		}
		if rec == nil {
			rec = ports.Record{}
		}
		return rec, true
	}
}

func formRecord(r *http.Request) ports.Record {
	rec := make(ports.Record, len(r.PostForm))
	for key, values := range r.PostForm {
		switch len(values) {
		case 0:
		case 1:
			rec[key] = values[0]
		default:
			rec[key] = values
		}
	}
	return rec
}
