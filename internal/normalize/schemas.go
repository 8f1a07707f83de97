package normalize

import "github.com/jsamuelsen11/site-content-service/internal/domain/content"

// Shared field names used by repositories for filters and ordering.
const (
	FieldID           = "id"
	FieldDisplayOrder = "displayOrder"
	FieldFeatured     = "featured"
	FieldCreatedAt    = "createdAt"
	FieldSlug         = "slug"
	FieldImage        = "image"
	FieldCategory     = "category"
)

func metaFields() []Field {
	return []Field{
		{Name: FieldID, Column: "id", ReadOnly: true},
		{Name: FieldDisplayOrder, Column: "sort_order", Aliases: []string{"sort_order", "display_order", "displayOrder"}},
		{Name: FieldFeatured, Column: "featured", Aliases: []string{"featured", "is_featured"}},
		{Name: FieldCreatedAt, Column: "created_at", Aliases: []string{"created_at", "createdAt"}, ReadOnly: true},
		{Name: "updatedAt", Column: "updated_at", Aliases: []string{"updated_at", "updatedAt"}, ReadOnly: true},
	}
}

func withMeta(kind content.Kind, table string, fields ...Field) Schema {
	return Schema{Kind: kind, Table: table, Fields: append(metaFields(), fields...)}
}

// TestimonialSchema persists author and title in the legacy name and role
// columns.
var TestimonialSchema = withMeta(content.KindTestimonial, "testimonials",
	Field{Name: "quote", Column: "quote", Aliases: []string{"quote", "content", "text"}},
	Field{Name: "author", Column: "name", Aliases: []string{"name", "author"}},
	Field{Name: "title", Column: "role", Aliases: []string{"role", "title"}},
	Field{Name: FieldImage, Column: "image", Aliases: []string{"image", "image_url", "avatar", "avatar_url"}},
	Field{Name: "project", Column: "project_id", Aliases: []string{"project_id", "project"}},
	Field{Name: "phaseTag", Column: "phase_tag", Aliases: []string{"phase_tag", "phaseTag"}},
)

// ProjectSchema maps portfolio case studies.
var ProjectSchema = withMeta(content.KindProject, "projects",
	Field{Name: "title", Column: "title"},
	Field{Name: FieldSlug, Column: "slug"},
	Field{Name: "description", Column: "description"},
	Field{Name: "tags", Column: "tags"},
	Field{Name: "thumbnailUrl", Column: "thumbnail_url", Aliases: []string{"thumbnail_url", "thumbnailUrl", "og_image_url", "image_url", "image"}},
	Field{Name: "client", Column: "client"},
	Field{Name: "year", Column: "year"},
	Field{Name: "role", Column: "role"},
	Field{Name: "duration", Column: "duration"},
	Field{Name: "challenge", Column: "challenge"},
	Field{Name: "solution", Column: "solution"},
	Field{Name: "outcomes", Column: "outcomes"},
	Field{Name: "images", Column: "images"},
	Field{Name: "tools", Column: "tools"},
	Field{Name: "categories", Column: "categories"},
	Field{Name: "externalUrl", Column: "external_url", Aliases: []string{"external_url", "externalUrl"}},
)

// ServiceSchema maps service offerings.
var ServiceSchema = withMeta(content.KindService, "services",
	Field{Name: "title", Column: "title"},
	Field{Name: "description", Column: "description"},
	Field{Name: "deliverables", Column: "deliverables"},
	Field{Name: "businessOutcomes", Column: "business_outcomes", Aliases: []string{"business_outcomes", "businessOutcomes"}},
	Field{Name: "businessStatValue", Column: "business_stat_value", Aliases: []string{"business_stat_value", "business_stat", "businessStatValue"}},
	Field{Name: "businessStatLabel", Column: "business_stat_label", Aliases: []string{"business_stat_label", "businessStatLabel"}},
	Field{Name: FieldImage, Column: "image_url", Aliases: []string{"image_url", "image"}},
	Field{Name: "iconName", Column: "icon_name", Aliases: []string{"icon_name", "iconName", "icon"}},
)

// ProcessStepSchema maps process phases, stored in the process_phases table.
var ProcessStepSchema = withMeta(content.KindProcessStep, "process_phases",
	Field{Name: "phaseTitle", Column: "phase_title", Aliases: []string{"phase_title", "phaseTitle", "title"}},
	Field{Name: "phaseSubtitle", Column: "phase_subtitle", Aliases: []string{"phase_subtitle", "phaseSubtitle", "subtitle"}},
	Field{Name: "phaseDescription", Column: "description", Aliases: []string{"description", "phase_description", "phaseDescription"}},
	Field{Name: FieldImage, Column: "image_url", Aliases: []string{"image_url", "imageUrl", "image"}},
	Field{Name: "quoteText", Column: "quote_text", Aliases: []string{"quote_text", "quoteText", "quote"}},
	Field{Name: "quoteAuthor", Column: "quote_author", Aliases: []string{"quote_author", "quoteAuthor"}},
	Field{Name: "icon", Column: "icon"},
	Field{Name: "steps", Column: "steps"},
	Field{Name: "outputs", Column: "outputs"},
	Field{Name: "keyResults", Column: "key_results", Aliases: []string{"key_results", "keyResults"}},
	Field{Name: "statValue", Column: "stat_value", Aliases: []string{"stat_value", "statValue"}},
	Field{Name: "statLabel", Column: "stat_label", Aliases: []string{"stat_label", "statLabel"}},
)

// FAQSchema maps question and answer pairs.
var FAQSchema = withMeta(content.KindFAQ, "faqs",
	Field{Name: "question", Column: "question"},
	Field{Name: "answer", Column: "answer"},
	Field{Name: FieldCategory, Column: "category"},
)

// SchemaFor returns the schema for kind.
func SchemaFor(kind content.Kind) (Schema, bool) {
	switch kind {
	case content.KindTestimonial:
		return TestimonialSchema, true
	case content.KindProject:
		return ProjectSchema, true
	case content.KindService:
		return ServiceSchema, true
	case content.KindProcessStep:
		return ProcessStepSchema, true
	case content.KindFAQ:
		return FAQSchema, true
	default:
		return Schema{}, false
	}
}
