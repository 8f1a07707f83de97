package postgres

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/lib/pq"
)

// Store-assigned columns.
const (
	colID        = "id"
	colCreatedAt = "created_at"
	colUpdatedAt = "updated_at"
)

// toArg converts an outbound value into a driver argument. Lists of strings
// are bound as text[]; any other list or object is bound as JSON.
func toArg(v any) (any, error) {
	switch t := v.(type) {
	case []string:
		return pq.StringArray(t), nil
	case []any:
		if ss, ok := allStrings(t); ok {
			return pq.StringArray(ss), nil
		}
		return marshalJSON(t)
	case map[string]any:
		return marshalJSON(t)
	default:
		return v, nil
	}
}

func allStrings(items []any) ([]string, bool) {
	out := make([]string, len(items))
	for i, item := range items {
		s, ok := item.(string)
		if !ok {
			return nil, false
		}
		out[i] = s
	}
	return out, true
}

func marshalJSON(v any) ([]byte, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encoding json: %w", err)
	}
	return raw, nil
}

// fromColumn converts a scanned value using the column's database type.
// Arrays come back as []string, JSON columns as decoded values, and any
// other byte payload as a string.
func fromColumn(dbType string, v any) any {
	raw, ok := v.([]byte)
	if !ok {
		return v
	}

	switch {
	case strings.HasPrefix(dbType, "_"):
		var arr pq.StringArray
		if err := arr.Scan(raw); err == nil {
			return []string(arr)
		}
	case dbType == "JSON" || dbType == "JSONB":
		var decoded any
		if err := json.Unmarshal(raw, &decoded); err == nil {
			return decoded
		}
	}
	return string(raw)
}
