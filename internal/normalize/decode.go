package normalize

import (
	"encoding/json"
	"reflect"
	"regexp"
	"strings"
	"time"

	"github.com/go-viper/mapstructure/v2"

	"github.com/jsamuelsen11/site-content-service/internal/domain"
	"github.com/jsamuelsen11/site-content-service/internal/domain/content"
	"github.com/jsamuelsen11/site-content-service/internal/ports"
)

// timeLayouts are tried in order. Postgres text timestamps omit the "T".
var timeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02 15:04:05.999999999-07:00",
	"2006-01-02 15:04:05.999999999-07",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

var (
	timeType    = reflect.TypeFor[time.Time]()
	substepType = reflect.TypeFor[content.Substep]()
)

// Decode converts a canonical map into the typed entity T. Weak typing is
// enabled so form values ("3", "on") decode into ints and bools. Values are
// taken as given; no field is derived or rewritten. Type mismatches are
// returned as a *domain.ValidationError keyed by canonical field.
func Decode[T any](canonical map[string]any) (T, error) {
	var out T
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			lenientTimeHook,
			checkboxHook,
			stringSliceHook,
			substepHook,
		),
		WeaklyTypedInput: true,
		Squash:           true,
		TagName:          "json",
		Result:           &out,
	})
	if err != nil {
		return out, err
	}
	if err := dec.Decode(canonical); err != nil {
		return out, decodeError(err)
	}
	return out, nil
}

// Read resolves a persisted record through the schema and decodes it.
// Entities implementing content.Deriver get their display-only values
// filled in; stored fields are never rewritten.
func Read[T any](s Schema, rec ports.Record) (T, error) {
	out, err := Decode[T](s.Inbound(rec))
	if err != nil {
		return out, err
	}
	if d, ok := any(&out).(content.Deriver); ok {
		d.Derive()
	}
	return out, nil
}

// Form resolves admin input through the schema and decodes it. Entities
// implementing content.Defaulter have their missing fields derived, so a
// project without a slug gets one from its title.
func Form[T any](s Schema, form ports.Record) (T, error) {
	out, err := Decode[T](s.FromForm(form))
	if err != nil {
		return out, err
	}
	if d, ok := any(&out).(content.Defaulter); ok {
		d.ApplyDefaults()
	}
	return out, nil
}

// lenientTimeHook parses timestamp strings in any known layout. Unparseable
// values decode to the zero time rather than failing the whole record.
func lenientTimeHook(from, to reflect.Type, data any) (any, error) {
	if to != timeType || from.Kind() != reflect.String {
		return data, nil
	}
	s := strings.TrimSpace(data.(string))
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, nil
}

// checkboxHook accepts HTML checkbox values for booleans.
func checkboxHook(from, to reflect.Type, data any) (any, error) {
	if to.Kind() != reflect.Bool || from.Kind() != reflect.String {
		return data, nil
	}
	switch strings.ToLower(strings.TrimSpace(data.(string))) {
	case "on", "true", "1", "yes":
		return true, nil
	case "", "off", "false", "0", "no":
		return false, nil
	default:
		return data, nil
	}
}

// stringSliceHook expands a string into a slice: JSON array text is parsed,
// and for []string targets a comma-separated list is split.
func stringSliceHook(from, to reflect.Type, data any) (any, error) {
	if to.Kind() != reflect.Slice || from.Kind() != reflect.String {
		return data, nil
	}
	s := strings.TrimSpace(data.(string))
	if strings.HasPrefix(s, "[") {
		var arr []any
		if err := json.Unmarshal([]byte(s), &arr); err == nil {
			return arr, nil
		}
	}
	if to.Elem().Kind() != reflect.String {
		return data, nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out, nil
}

// substepHook wraps a bare string step into a Substep title.
func substepHook(from, to reflect.Type, data any) (any, error) {
	if to != substepType || from.Kind() != reflect.String {
		return data, nil
	}
	return content.Substep{Title: data.(string)}, nil
}

var fieldNamePattern = regexp.MustCompile(`'([^']+)'`)

// decodeError converts mapstructure failures into a ValidationError. Each
// error line names the offending field in quotes.
func decodeError(err error) error {
	fields := make(map[string]string)
	for _, line := range strings.Split(err.Error(), "\n") {
		line = strings.TrimLeft(strings.TrimSpace(line), "* ")
		m := fieldNamePattern.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		name := m[1]
		if i := strings.LastIndex(name, "."); i >= 0 {
			name = name[i+1:]
		}
		if i := strings.Index(name, "["); i >= 0 {
			name = name[:i]
		}
		fields[name] = "has an invalid value"
	}
	if len(fields) == 0 {
		fields["payload"] = err.Error()
	}
	return &domain.ValidationError{Fields: fields}
}
