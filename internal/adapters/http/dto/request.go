package dto

import (
	"strings"

	"github.com/jsamuelsen11/site-content-service/internal/domain"
)

// RevalidateRequest is the body (or query string) of the on-demand
// revalidation endpoint. Path and Tag are single targets; Paths and Tags
// allow batching several at once.
type RevalidateRequest struct {
	Secret string   `json:"secret"`
	Path   string   `json:"path,omitempty"`
	Tag    string   `json:"tag,omitempty"`
	Paths  []string `json:"paths,omitempty"`
	Tags   []string `json:"tags,omitempty"`
}

// Validate checks that at least one path or tag is present.
// Returns a *domain.ValidationError if any checks fail.
func (r *RevalidateRequest) Validate() error {
	paths, tags := r.Targets()
	if len(paths) == 0 && len(tags) == 0 {
		return domain.NewValidationError("path", "path or tag is required")
	}
	for _, p := range paths {
		if !strings.HasPrefix(p, "/") {
			return domain.NewValidationError("path", "must start with /")
		}
	}
	return nil
}

// Targets returns the trimmed, non-blank paths and tags of the request.
func (r *RevalidateRequest) Targets() (paths, tags []string) {
	return collect(r.Path, r.Paths), collect(r.Tag, r.Tags)
}

func collect(single string, many []string) []string {
	out := make([]string, 0, len(many)+1)
	for _, s := range append([]string{single}, many...) {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
