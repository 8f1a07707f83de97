package postgres

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"github.com/jsamuelsen11/site-content-service/internal/domain"
)

// translateError maps driver errors to domain errors. Errors without a
// domain meaning are returned unchanged.
func translateError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	if errors.Is(err, driver.ErrBadConn) || errors.Is(err, sql.ErrConnDone) {
		return fmt.Errorf("%w: %w", domain.ErrUnavailable, err)
	}

	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return err
	}

	switch pqErr.Code {
	case "23505":
		return fmt.Errorf("%s: %w", pqErr.Message, domain.ErrConflict)
	case "23502", "23514":
		if pqErr.Column != "" {
			return domain.NewValidationError(pqErr.Column, pqErr.Message)
		}
		return fmt.Errorf("%s: %w", pqErr.Message, domain.ErrValidation)
	case "22P02", "42703":
		return fmt.Errorf("%s: %w", pqErr.Message, domain.ErrValidation)
	case "42501":
		return fmt.Errorf("%s: %w", pqErr.Message, domain.ErrForbidden)
	}

	switch pqErr.Code.Class() {
	case "08", "53", "57":
		return fmt.Errorf("%s: %w", pqErr.Message, domain.ErrUnavailable)
	}
	return err
}
