// Package normalize maps between persisted records, whose column names have
// drifted over time, and the canonical entity shape used everywhere else.
//
// Each kind has a Schema: an ordered alias list per canonical field for
// reading, and a single column per field for writing. Adding a new alias is an
// edit to the tables in schemas.go.
package normalize

import (
	"slices"
	"strings"

	"github.com/jsamuelsen11/site-content-service/internal/domain"
	"github.com/jsamuelsen11/site-content-service/internal/domain/content"
	"github.com/jsamuelsen11/site-content-service/internal/ports"
)

// Field maps one canonical field to its persisted names.
type Field struct {
	// Name is the canonical (JSON) name.
	Name string
	// Column is the single persisted name written on outbound.
	Column string
	// Aliases are the persisted names accepted on inbound, highest priority
	// first. Empty means Column only.
	Aliases []string
	// ReadOnly fields are store-assigned and never written.
	ReadOnly bool
}

func (f Field) aliases() []string {
	if len(f.Aliases) == 0 {
		return []string{f.Column}
	}
	return f.Aliases
}

// Schema is the alias table for one entity kind.
type Schema struct {
	Kind  content.Kind
	Table string
	// Fields lists every canonical field in declaration order.
	Fields []Field
}

// Column returns the persisted column for a canonical field name, or name
// itself when the field is unknown.
func (s Schema) Column(name string) string {
	for _, f := range s.Fields {
		if f.Name == name {
			return f.Column
		}
	}
	return name
}

// Inbound resolves a persisted record into a canonical map. For each field
// the first alias with a non-null value wins; blank strings count as null.
// Fields with no value are omitted and unknown keys are dropped.
func (s Schema) Inbound(rec ports.Record) map[string]any {
	out := make(map[string]any, len(s.Fields))
	for _, f := range s.Fields {
		for _, alias := range f.aliases() {
			v, ok := rec[alias]
			if !ok || isNull(v) {
				continue
			}
			out[f.Name] = v
			break
		}
	}
	return out
}

// FromForm resolves flat admin input into a canonical map. It behaves like
// Inbound but also accepts each field's canonical name, tried after the
// persisted aliases.
func (s Schema) FromForm(form ports.Record) map[string]any {
	out := make(map[string]any, len(s.Fields))
	for _, f := range s.Fields {
		names := f.aliases()
		if !slices.Contains(names, f.Name) {
			names = append(slices.Clone(names), f.Name)
		}
		for _, name := range names {
			v, ok := form[name]
			if !ok || isNull(v) {
				continue
			}
			out[f.Name] = v
			break
		}
	}
	return out
}

// RequireID returns a validation error when id is blank. Update and delete
// call it before touching the store.
func RequireID(id string) error {
	if strings.TrimSpace(id) == "" {
		return domain.NewValidationError("id", domain.MsgRequired)
	}
	return nil
}

func isNull(v any) bool {
	switch t := v.(type) {
	case nil:
		return true
	case string:
		return strings.TrimSpace(t) == ""
	case []byte:
		return len(t) == 0
	default:
		return false
	}
}
