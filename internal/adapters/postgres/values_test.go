package postgres

import (
	"reflect"
	"testing"

	"github.com/lib/pq"
)

func TestToArg(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   any
		want any
	}{
		{name: "scalar unchanged", in: int64(3), want: int64(3)},
		{name: "string list as text array", in: []any{"a", "b"}, want: pq.StringArray{"a", "b"}},
		{name: "typed string slice", in: []string{"x"}, want: pq.StringArray{"x"}},
		{name: "mixed list as json", in: []any{"a", int64(1)}, want: []byte(`["a",1]`)},
		{name: "object as json", in: map[string]any{"k": "v"}, want: []byte(`{"k":"v"}`)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := toArg(tt.in)
			if err != nil {
				t.Fatalf("toArg() error = %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("toArg() = %#v, want %#v", got, tt.want)
			}
		})
	}
}

func TestFromColumn(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		dbType string
		in     any
		want   any
	}{
		{name: "text bytes", dbType: "TEXT", in: []byte("hi"), want: "hi"},
		{name: "text array", dbType: "_TEXT", in: []byte(`{a,b}`), want: []string{"a", "b"}},
		{name: "varchar array", dbType: "_VARCHAR", in: []byte(`{}`), want: []string{}},
		{name: "jsonb object", dbType: "JSONB", in: []byte(`{"a":1}`), want: map[string]any{"a": float64(1)}},
		{name: "invalid json kept as string", dbType: "JSON", in: []byte(`{oops`), want: "{oops"},
		{name: "non bytes unchanged", dbType: "INT8", in: int64(4), want: int64(4)},
		{name: "nil unchanged", dbType: "TEXT", in: nil, want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := fromColumn(tt.dbType, tt.in); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("fromColumn(%q) = %#v, want %#v", tt.dbType, got, tt.want)
			}
		})
	}
}
