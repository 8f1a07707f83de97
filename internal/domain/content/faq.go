package content

import (
	"strings"

	"github.com/jsamuelsen11/site-content-service/internal/domain"
)

// FAQ is a question and answer pair, optionally grouped by category.
type FAQ struct {
	Meta
	Question string `json:"question"`
	Answer   string `json:"answer"`
	Category string `json:"category,omitempty"`
}

// Validate checks business rules for the FAQ entity.
func (f FAQ) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(f.Question) == "" {
		fields["question"] = domain.MsgRequired
	}
	if strings.TrimSpace(f.Answer) == "" {
		fields["answer"] = domain.MsgRequired
	}
	f.validateMeta(fields)

	return validationResult(fields)
}
