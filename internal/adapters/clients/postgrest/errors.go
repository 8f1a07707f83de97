// Package postgrest implements ports.Store against a PostgREST endpoint
// (the REST surface Supabase exposes under /rest/v1). Query building, the
// request lifecycle and PostgREST error translation live here.
package postgrest

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"regexp"

	"github.com/jsamuelsen11/site-content-service/internal/domain"
)

// maxErrorBodySize limits how much of an error response body we read.
const maxErrorBodySize = 1 << 20 // 1 MB

// PostgreSQL and PostgREST error codes with a domain meaning.
const (
	codeUniqueViolation   = "23505"
	codeNotNullViolation  = "23502"
	codeCheckViolation    = "23514"
	codeInvalidText       = "22P02"
	codeSingularNoRows    = "PGRST116"
	codeInvalidBody       = "PGRST102"
	codeUndefinedColumn   = "42703"
	codeSchemaCacheColumn = "PGRST204"
)

// apiError is the error body PostgREST returns for failed requests.
type apiError struct {
	Code    string  `json:"code"`
	Message string  `json:"message"`
	Details *string `json:"details"`
	Hint    *string `json:"hint"`
}

var columnPattern = regexp.MustCompile(`column "([^"]+)"`)

// TranslateHTTPError maps a PostgREST error response to a domain error.
// The error code in the body takes precedence; the HTTP status decides when
// the body is missing or the code has no domain meaning. Column-level
// constraint failures are returned as a *domain.ValidationError keyed by the
// column named in the message.
func TranslateHTTPError(resp *http.Response) error {
	ae := parseAPIError(resp)

	detail := ae.Message
	if detail == "" {
		detail = http.StatusText(resp.StatusCode)
	}

	switch ae.Code {
	case codeUniqueViolation:
		return fmt.Errorf("%s: %w", detail, domain.ErrConflict)
	case codeSingularNoRows:
		return fmt.Errorf("%s: %w", detail, domain.ErrNotFound)
	case codeNotNullViolation, codeCheckViolation, codeUndefinedColumn, codeSchemaCacheColumn:
		if m := columnPattern.FindStringSubmatch(detail); m != nil {
			return domain.NewValidationError(m[1], detail)
		}
		return fmt.Errorf("%s: %w", detail, domain.ErrValidation)
	case codeInvalidText, codeInvalidBody:
		return fmt.Errorf("%s: %w", detail, domain.ErrValidation)
	}

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return fmt.Errorf("%s: %w", detail, domain.ErrNotFound)

	case resp.StatusCode == http.StatusBadRequest || resp.StatusCode == http.StatusUnprocessableEntity:
		return fmt.Errorf("%s: %w", detail, domain.ErrValidation)

	case resp.StatusCode == http.StatusConflict:
		return fmt.Errorf("%s: %w", detail, domain.ErrConflict)

	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return fmt.Errorf("%s: %w", detail, domain.ErrForbidden)

	case resp.StatusCode >= http.StatusInternalServerError:
		return fmt.Errorf("%s: %w", detail, domain.ErrUnavailable)

	default:
		return fmt.Errorf("unexpected status %d: %s", resp.StatusCode, detail)
	}
}

// parseAPIError reads the PostgREST error body. Returns an empty apiError
// when the body is absent or not JSON.
func parseAPIError(resp *http.Response) apiError {
	if resp.Body == nil {
		return apiError{}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodySize))
	if err != nil || len(body) == 0 {
		return apiError{}
	}

	var ae apiError
	if err := json.Unmarshal(body, &ae); err != nil {
		return apiError{}
	}
	return ae
}
