package content

import (
	"strings"

	"github.com/jsamuelsen11/site-content-service/internal/domain"
)

// Testimonial is a client quote shown on the home page and testimonial list.
type Testimonial struct {
	Meta
	Quote    string `json:"quote"`
	Author   string `json:"author"`
	Title    string `json:"title"`
	Image    string `json:"image,omitempty"`
	Project  string `json:"project,omitempty"`
	PhaseTag string `json:"phaseTag,omitempty"`
}

// Validate checks business rules for the Testimonial entity.
// Returns a *domain.ValidationError with per-field details, or nil.
func (t Testimonial) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(t.Author) == "" {
		fields["author"] = domain.MsgRequired
	}
	if strings.TrimSpace(t.Title) == "" {
		fields["title"] = domain.MsgRequired
	}
	if strings.TrimSpace(t.Quote) == "" {
		fields["quote"] = domain.MsgRequired
	}
	t.validateMeta(fields)

	return validationResult(fields)
}
