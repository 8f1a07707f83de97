// Package fallback holds the static datasets served when the store errors or
// returns no rows. Datasets are embedded YAML in canonical field names and
// are never blended with live results.
package fallback

import (
	"embed"
	"fmt"
	"io/fs"
	"slices"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/jsamuelsen11/site-content-service/internal/domain/content"
	"github.com/jsamuelsen11/site-content-service/internal/normalize"
)

//go:embed data/*.yaml
var embedded embed.FS

// Registry maps each kind to its fallback dataset.
type Registry struct {
	mu   sync.RWMutex
	sets map[content.Kind]any
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{sets: make(map[content.Kind]any)}
}

// Register stores items as the dataset for kind, replacing any previous one.
func Register[T content.Entity](r *Registry, kind content.Kind, items []T) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sets[kind] = slices.Clone(items)
}

// For returns a copy of the dataset for kind in registry order.
// Returns nil when nothing of type T is registered for kind.
func For[T content.Entity](r *Registry, kind content.Kind) []T {
	r.mu.RLock()
	defer r.mu.RUnlock()
	items, _ := r.sets[kind].([]T)
	return slices.Clone(items)
}

// FeaturedFor returns the featured subset of the dataset for kind.
func FeaturedFor[T content.Entity](r *Registry, kind content.Kind) []T {
	all := For[T](r, kind)
	return slices.DeleteFunc(all, func(item T) bool {
		return !item.Metadata().Featured
	})
}

// Load decodes every dataset from fsys. Files are named after their kind
// under data/.
func Load(fsys fs.FS) (*Registry, error) {
	r := NewRegistry()
	loaders := []func(*Registry, fs.FS) error{
		loadKind[content.Testimonial](content.KindTestimonial),
		loadKind[content.Project](content.KindProject),
		loadKind[content.Service](content.KindService),
		loadKind[content.ProcessStep](content.KindProcessStep),
		loadKind[content.FAQ](content.KindFAQ),
	}
	for _, load := range loaders {
		if err := load(r, fsys); err != nil {
			return nil, err
		}
	}
	return r, nil
}

var defaultRegistry = sync.OnceValues(func() (*Registry, error) {
	return Load(embedded)
})

// Default returns the registry built from the embedded datasets. It panics
// if they fail to decode, which the package tests rule out.
func Default() *Registry {
	r, err := defaultRegistry()
	if err != nil {
		panic(fmt.Sprintf("fallback: embedded datasets: %v", err))
	}
	return r
}

func loadKind[T content.Entity](kind content.Kind) func(*Registry, fs.FS) error {
	return func(r *Registry, fsys fs.FS) error {
		path := "data/" + kind.String() + ".yaml"
		raw, err := fs.ReadFile(fsys, path)
		if err != nil {
			return fmt.Errorf("reading %s: %w", path, err)
		}

		var rows []map[string]any
		if err := yaml.Unmarshal(raw, &rows); err != nil {
			return fmt.Errorf("parsing %s: %w", path, err)
		}

		items := make([]T, 0, len(rows))
		for i, row := range rows {
			item, err := normalize.Decode[T](row)
			if err != nil {
				return fmt.Errorf("decoding %s entry %d: %w", path, i, err)
			}
			if err := item.Validate(); err != nil {
				return fmt.Errorf("validating %s entry %d: %w", path, i, err)
			}
			items = append(items, item)
		}

		Register(r, kind, items)
		return nil
	}
}
