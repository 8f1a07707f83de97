package content

import "slices"

// Descriptor carries the per-kind revalidation and navigation metadata used
// by the mutation gateway.
type Descriptor struct {
	Kind Kind
	// PublicPaths are the public pages that render this kind.
	PublicPaths []string
	// AdminPath is the admin list view, also the post-mutation redirect.
	AdminPath string
	// DetailBySlug is set when the public detail page is keyed by slug.
	DetailBySlug string
	// AutoSequence assigns max(displayOrder)+1 on create when none is given.
	AutoSequence bool
}

var descriptors = map[Kind]Descriptor{
	KindTestimonial: {
		Kind:         KindTestimonial,
		PublicPaths:  []string{"/"},
		AdminPath:    "/admin/testimonials",
		AutoSequence: true,
	},
	KindProject: {
		Kind:         KindProject,
		PublicPaths:  []string{"/", "/projects"},
		AdminPath:    "/admin/projects",
		DetailBySlug: "/projects/",
	},
	KindService: {
		Kind:        KindService,
		PublicPaths: []string{"/", "/services"},
		AdminPath:   "/admin/services",
	},
	KindProcessStep: {
		Kind:        KindProcessStep,
		PublicPaths: []string{"/process"},
		AdminPath:   "/admin/process-steps",
	},
	KindFAQ: {
		Kind:        KindFAQ,
		PublicPaths: []string{"/faq"},
		AdminPath:   "/admin/faqs",
	},
}

// DescriptorFor returns the descriptor for kind. ok is false for unknown kinds.
func DescriptorFor(kind Kind) (Descriptor, bool) {
	d, ok := descriptors[kind]
	if !ok {
		return Descriptor{}, false
	}
	d.PublicPaths = slices.Clone(d.PublicPaths)
	return d, true
}

// ListPaths returns the admin list path followed by the public paths.
func (d Descriptor) ListPaths() []string {
	return append([]string{d.AdminPath}, d.PublicPaths...)
}

// DetailPath returns the page showing a single entity: the public slug page
// when the kind has one and slug is known, otherwise the admin edit page.
// Returns "" when neither can be built.
func (d Descriptor) DetailPath(id, slug string) string {
	if d.DetailBySlug != "" && slug != "" {
		return d.DetailBySlug + slug
	}
	if id == "" {
		return ""
	}
	return d.AdminPath + "/" + id + "/edit"
}

// Tags returns the cache tags invalidated for the kind.
func (d Descriptor) Tags() []string {
	return []string{d.Kind.String()}
}
