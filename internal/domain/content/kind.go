// Package content defines the marketing-site entity kinds (testimonials,
// projects, services, process steps, FAQs), their canonical shape, and the
// per-kind validation and revalidation metadata.
package content

import (
	"fmt"
	"strings"

	"github.com/jsamuelsen11/site-content-service/internal/domain"
)

// Kind identifies an entity kind. The value doubles as the URL segment and
// the cache tag used for revalidation.
type Kind string

const (
	KindTestimonial Kind = "testimonials"
	KindProject     Kind = "projects"
	KindService     Kind = "services"
	KindProcessStep Kind = "process_steps"
	KindFAQ         Kind = "faqs"
)

// Kinds returns every entity kind in a stable order.
func Kinds() []Kind {
	return []Kind{KindTestimonial, KindProject, KindService, KindProcessStep, KindFAQ}
}

// IsValid returns true if the kind is one of the defined constants.
func (k Kind) IsValid() bool {
	switch k {
	case KindTestimonial, KindProject, KindService, KindProcessStep, KindFAQ:
		return true
	default:
		return false
	}
}

// String implements fmt.Stringer.
func (k Kind) String() string {
	return string(k)
}

// ParseKind resolves a kind from a URL segment. Hyphenated forms such as
// "process-steps" are accepted.
func ParseKind(s string) (Kind, error) {
	k := Kind(strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "-", "_"))
	if !k.IsValid() {
		return "", domain.NewValidationError("kind", fmt.Sprintf("unknown kind %q", s))
	}
	return k, nil
}
