package normalize

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/jsamuelsen11/site-content-service/internal/ports"
)

// Outbound converts a canonical entity into a persisted record for an
// insert. Every writable field maps to exactly one column; read-only fields
// and fields without a value are omitted so store defaults apply.
func (s Schema) Outbound(entity any) (ports.Record, error) {
	return s.outbound(entity, false)
}

// Replace is Outbound for a full update: every writable column is present,
// and fields without a value are written as nil so a blank input clears
// the stored value.
func (s Schema) Replace(entity any) (ports.Record, error) {
	return s.outbound(entity, true)
}

func (s Schema) outbound(entity any, full bool) (ports.Record, error) {
	canonical, err := toMap(entity)
	if err != nil {
		return nil, fmt.Errorf("encoding %s: %w", s.Kind, err)
	}

	rec := make(ports.Record, len(s.Fields))
	for _, f := range s.Fields {
		if f.ReadOnly {
			continue
		}
		v, ok := canonical[f.Name]
		if !ok || v == nil {
			if full {
				rec[f.Column] = nil
			}
			continue
		}
		rec[f.Column] = v
	}
	return rec, nil
}

// toMap flattens entity through its JSON tags. Integral numbers come back as
// int64 so they compare equal to what the stores hand out.
func toMap(entity any) (map[string]any, error) {
	raw, err := json.Marshal(entity)
	if err != nil {
		return nil, err
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var m map[string]any
	if err := dec.Decode(&m); err != nil {
		return nil, err
	}
	for k, v := range m {
		m[k] = fromNumbers(v)
	}
	return m, nil
}

func fromNumbers(v any) any {
	switch t := v.(type) {
	case json.Number:
		if i, err := t.Int64(); err == nil {
			return i
		}
		f, _ := t.Float64()
		return f
	case []any:
		for i := range t {
			t[i] = fromNumbers(t[i])
		}
		return t
	case map[string]any:
		for k := range t {
			t[k] = fromNumbers(t[k])
		}
		return t
	default:
		return v
	}
}
