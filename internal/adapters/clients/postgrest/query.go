package postgrest

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/jsamuelsen11/site-content-service/internal/ports"
)

// encodeQuery renders q as PostgREST query parameters:
//
//	select=*&featured=eq.true&image=not.is.null&order=created_at.desc&limit=3
//
// Filters on the same column are all kept.
func encodeQuery(q ports.Query) (url.Values, error) {
	v := url.Values{}
	v.Set("select", "*")

	for _, f := range q.Filters {
		expr, err := filterExpr(f)
		if err != nil {
			return nil, err
		}
		v.Add(f.Column, expr)
	}

	if len(q.Order) > 0 {
		parts := make([]string, len(q.Order))
		for i, o := range q.Order {
			dir := "asc"
			if o.Desc {
				dir = "desc"
			}
			parts[i] = o.Column + "." + dir + ".nullslast"
		}
		v.Set("order", strings.Join(parts, ","))
	}

	if q.Limit > 0 {
		v.Set("limit", strconv.Itoa(q.Limit))
	}
	return v, nil
}

func filterExpr(f ports.Filter) (string, error) {
	switch f.Op {
	case ports.OpEq:
		return "eq." + literal(f.Value), nil
	case ports.OpNeq:
		return "neq." + literal(f.Value), nil
	case ports.OpNotNull:
		return "not.is.null", nil
	default:
		return "", fmt.Errorf("postgrest: unsupported filter operator %q on %s", f.Op, f.Column)
	}
}

// literal formats a filter value the way PostgREST parses it.
func literal(v any) string {
	switch t := v.(type) {
	case nil:
		return "null"
	case string:
		return t
	case bool:
		return strconv.FormatBool(t)
	default:
		return fmt.Sprint(t)
	}
}

// idQuery selects the single row with the given id.
func idQuery(id string) url.Values {
	return url.Values{"id": {"eq." + id}}
}

// parseContentRange extracts the total from a Content-Range header such as
// "0-24/318" or "*/0".
func parseContentRange(h string) (int, error) {
	i := strings.LastIndexByte(h, '/')
	if i < 0 || i == len(h)-1 {
		return 0, fmt.Errorf("postgrest: malformed Content-Range %q", h)
	}
	total := h[i+1:]
	if total == "*" {
		return 0, fmt.Errorf("postgrest: Content-Range %q has no exact count", h)
	}
	n, err := strconv.Atoi(total)
	if err != nil {
		return 0, fmt.Errorf("postgrest: malformed Content-Range %q: %w", h, err)
	}
	return n, nil
}
