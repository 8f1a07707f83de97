package content

import (
	"strings"

	"github.com/jsamuelsen11/site-content-service/internal/domain"
)

// ProcessStep is one phase of the design process page.
type ProcessStep struct {
	Meta
	PhaseTitle       string    `json:"phaseTitle"`
	PhaseSubtitle    string    `json:"phaseSubtitle,omitempty"`
	PhaseDescription string    `json:"phaseDescription"`
	Image            string    `json:"image,omitempty"`
	QuoteText        string    `json:"quoteText,omitempty"`
	QuoteAuthor      string    `json:"quoteAuthor,omitempty"`
	Icon             string    `json:"icon,omitempty"`
	Steps            []Substep `json:"steps,omitempty"`
	Outputs          []string  `json:"outputs,omitempty"`
	KeyResults       []string  `json:"keyResults,omitempty"`
	StatValue        string    `json:"statValue,omitempty"`
	StatLabel        string    `json:"statLabel,omitempty"`
}

// Substep is an activity within a process phase. Legacy rows store steps as
// bare strings; those decode into Title only.
type Substep struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
}

// Validate checks business rules for the ProcessStep entity.
func (p ProcessStep) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(p.PhaseTitle) == "" {
		fields["phaseTitle"] = domain.MsgRequired
	}
	if strings.TrimSpace(p.PhaseDescription) == "" {
		fields["phaseDescription"] = domain.MsgRequired
	}
	p.validateMeta(fields)

	return validationResult(fields)
}
