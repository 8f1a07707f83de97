package content

import (
	"strings"

	"github.com/jsamuelsen11/site-content-service/internal/domain"
)

// Project is a portfolio case study.
type Project struct {
	Meta
	Title        string   `json:"title"`
	Slug         string   `json:"slug"`
	Description  string   `json:"description,omitempty"`
	Tags         []string `json:"tags,omitempty"`
	ThumbnailURL string   `json:"thumbnailUrl,omitempty"`
	Client       string   `json:"client,omitempty"`
	Year         string   `json:"year,omitempty"`
	Role         string   `json:"role,omitempty"`
	Duration     string   `json:"duration,omitempty"`
	Challenge    string   `json:"challenge,omitempty"`
	Solution     string   `json:"solution,omitempty"`
	Outcomes     []string `json:"outcomes,omitempty"`
	Images       []string `json:"images,omitempty"`
	Tools        []string `json:"tools,omitempty"`
	Categories   []string `json:"categories,omitempty"`
	ExternalURL  string   `json:"externalUrl,omitempty"`
}

// ApplyDefaults derives the slug from the title when none was supplied and
// normalizes a supplied slug.
func (p *Project) ApplyDefaults() {
	if strings.TrimSpace(p.Slug) == "" {
		p.Slug = Slugify(p.Title)
		return
	}
	p.Slug = Slugify(p.Slug)
}

// Validate checks business rules for the Project entity.
func (p Project) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(p.Title) == "" {
		fields["title"] = domain.MsgRequired
	}
	if strings.TrimSpace(p.Slug) == "" {
		if _, ok := fields["title"]; ok {
			fields["slug"] = domain.MsgRequired
		} else {
			fields["slug"] = "title must contain letters or numbers to generate a slug"
		}
	}
	p.validateMeta(fields)

	return validationResult(fields)
}
