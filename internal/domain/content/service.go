package content

import (
	"strings"

	"github.com/jsamuelsen11/site-content-service/internal/domain"
)

// Service is an offering listed on the services page.
type Service struct {
	Meta
	Title             string   `json:"title"`
	Description       string   `json:"description"`
	Deliverables      []string `json:"deliverables,omitempty"`
	BusinessOutcomes  []string `json:"businessOutcomes,omitempty"`
	BusinessStatValue string   `json:"businessStatValue,omitempty"`
	BusinessStatLabel string   `json:"businessStatLabel,omitempty"`
	Image             string   `json:"image,omitempty"`
	IconName          string   `json:"iconName,omitempty"`
}

// ApplyDefaults picks an icon from the title and description when none is set.
func (s *Service) ApplyDefaults() {
	s.Derive()
}

// Derive fills a missing icon from the title and description.
func (s *Service) Derive() {
	if strings.TrimSpace(s.IconName) == "" {
		s.IconName = DeriveIcon(s.Title, s.Description)
	}
}

// Validate checks business rules for the Service entity.
func (s Service) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(s.Title) == "" {
		fields["title"] = domain.MsgRequired
	}
	if strings.TrimSpace(s.Description) == "" {
		fields["description"] = domain.MsgRequired
	}
	s.validateMeta(fields)

	return validationResult(fields)
}
