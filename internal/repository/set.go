package repository

import (
	"github.com/jsamuelsen11/site-content-service/internal/domain/content"
	"github.com/jsamuelsen11/site-content-service/internal/fallback"
	"github.com/jsamuelsen11/site-content-service/internal/normalize"
	"github.com/jsamuelsen11/site-content-service/internal/ports"
)

// Set holds one repository per entity kind over a shared store.
type Set struct {
	Testimonials *Repository[content.Testimonial]
	Projects     *Repository[content.Project]
	Services     *Repository[content.Service]
	ProcessSteps *Repository[content.ProcessStep]
	FAQs         *Repository[content.FAQ]
}

// NewSet builds the repositories for every kind. Auto-sequencing follows
// each kind's descriptor; opts apply to all of them.
func NewSet(store ports.Store, fb *fallback.Registry, opts ...Option) *Set {
	return &Set{
		Testimonials: newFor[content.Testimonial](store, fb, normalize.TestimonialSchema, opts),
		Projects:     newFor[content.Project](store, fb, normalize.ProjectSchema, opts),
		Services:     newFor[content.Service](store, fb, normalize.ServiceSchema, opts),
		ProcessSteps: newFor[content.ProcessStep](store, fb, normalize.ProcessStepSchema, opts),
		FAQs:         newFor[content.FAQ](store, fb, normalize.FAQSchema, opts),
	}
}

func newFor[T content.Entity](store ports.Store, fb *fallback.Registry, schema normalize.Schema, opts []Option) *Repository[T] {
	desc, _ := content.DescriptorFor(schema.Kind)
	all := append([]Option{WithAutoSequence(desc.AutoSequence)}, opts...)
	return New[T](store, schema, fb, all...)
}
