package content

import (
	"fmt"
	"time"

	"github.com/jsamuelsen11/site-content-service/internal/domain"
)

// Meta holds the fields shared by every entity kind. It is embedded in each
// entity type; its JSON names are the canonical application-facing names.
type Meta struct {
	ID           string    `json:"id"`
	DisplayOrder *int      `json:"displayOrder,omitempty"`
	Featured     bool      `json:"featured"`
	CreatedAt    time.Time `json:"createdAt,omitzero"`
	UpdatedAt    time.Time `json:"updatedAt,omitzero"`
}

// Metadata returns the shared fields. Promoted to every entity that embeds Meta.
func (m Meta) Metadata() Meta {
	return m
}

// validateMeta adds shared-field failures to fields.
func (m Meta) validateMeta(fields map[string]string) {
	if m.DisplayOrder != nil && *m.DisplayOrder < 0 {
		fields["displayOrder"] = fmt.Sprintf("must be >= 0, got %d", *m.DisplayOrder)
	}
}

// Entity is implemented by every canonical entity type.
type Entity interface {
	Metadata() Meta
	Validate() error
}

// Defaulter is implemented by entities that derive missing fields from
// others when built from admin input (a project slug from its title, a
// service icon from its title and description).
type Defaulter interface {
	ApplyDefaults()
}

// Deriver is implemented by entities with display values computed from
// stored fields when those are absent. Derive never changes a stored value.
type Deriver interface {
	Derive()
}

// IntPtr returns a pointer to v.
func IntPtr(v int) *int {
	return &v
}

func validationResult(fields map[string]string) error {
	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}
