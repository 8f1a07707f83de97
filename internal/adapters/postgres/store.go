package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jmoiron/sqlx"

	"github.com/jsamuelsen11/site-content-service/internal/domain"
	"github.com/jsamuelsen11/site-content-service/internal/ports"
)

// Compile-time interface checks.
var (
	_ ports.Store         = (*Store)(nil)
	_ ports.HealthChecker = (*Store)(nil)
)

// Name is the health check identifier.
const Name = "postgres"

// Store implements [ports.Store] with parameterized SQL. Table and column
// names are quoted identifiers; values are always bound.
type Store struct {
	db     *sqlx.DB
	logger *slog.Logger
}

// NewStore creates a Store over db.
func NewStore(db *sqlx.DB, logger *slog.Logger) *Store {
	return &Store{db: db, logger: logger}
}

// Select implements ports.Store.
func (s *Store) Select(ctx context.Context, table string, q ports.Query) ([]ports.Record, error) {
	stmt, err := selectStmt(table, q)
	if err != nil {
		return nil, err
	}
	return s.query(ctx, "select", stmt)
}

// Count implements ports.Store.
func (s *Store) Count(ctx context.Context, table string, q ports.Query) (int, error) {
	stmt, err := countStmt(table, q)
	if err != nil {
		return 0, err
	}

	var n int
	if err := s.db.GetContext(ctx, &n, s.db.Rebind(stmt.query), stmt.args...); err != nil {
		return 0, s.fail(ctx, "count", table, err)
	}
	return n, nil
}

// Insert implements ports.Store.
func (s *Store) Insert(ctx context.Context, table string, rec ports.Record) (ports.Record, error) {
	stmt, err := insertStmt(table, rec)
	if err != nil {
		return nil, err
	}

	rows, err := s.query(ctx, "insert", stmt)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("postgres: insert into %s returned no rows", table)
	}
	return rows[0], nil
}

// Update implements ports.Store.
func (s *Store) Update(ctx context.Context, table, id string, rec ports.Record) (ports.Record, error) {
	stmt, err := updateStmt(table, id, rec)
	if err != nil {
		return nil, err
	}

	rows, err := s.query(ctx, "update", stmt)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%s %q: %w", table, id, domain.ErrNotFound)
	}
	return rows[0], nil
}

// Delete implements ports.Store. Zero affected rows is success.
func (s *Store) Delete(ctx context.Context, table, id string) error {
	stmt := deleteStmt(table, id)
	if _, err := s.db.ExecContext(ctx, s.db.Rebind(stmt.query), stmt.args...); err != nil {
		return s.fail(ctx, "delete", table, err)
	}
	return nil
}

// Name implements ports.HealthChecker.
func (s *Store) Name() string {
	return Name
}

// HealthCheck pings the database.
func (s *Store) HealthCheck(ctx context.Context) error {
	if err := s.db.PingContext(ctx); err != nil {
		return fmt.Errorf("%s: %w", Name, err)
	}
	return nil
}

// query runs stmt and decodes every row into a Record.
func (s *Store) query(ctx context.Context, op string, stmt statement) ([]ports.Record, error) {
	rows, err := s.db.QueryxContext(ctx, s.db.Rebind(stmt.query), stmt.args...)
	if err != nil {
		return nil, s.fail(ctx, op, stmt.query, err)
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			s.logger.WarnContext(ctx, "failed to close rows", slog.Any("error", cerr))
		}
	}()

	types, err := rows.ColumnTypes()
	if err != nil {
		return nil, s.fail(ctx, op, stmt.query, err)
	}

	var out []ports.Record
	for rows.Next() {
		raw := make(map[string]any, len(types))
		if err := rows.MapScan(raw); err != nil {
			return nil, s.fail(ctx, op, stmt.query, err)
		}
		rec := make(ports.Record, len(raw))
		for _, ct := range types {
			rec[ct.Name()] = fromColumn(ct.DatabaseTypeName(), raw[ct.Name()])
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, s.fail(ctx, op, stmt.query, err)
	}
	return out, nil
}

func (s *Store) fail(ctx context.Context, op, target string, err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return err
	}
	s.logger.ErrorContext(ctx, "query failed",
		slog.String("operation", "postgres."+op),
		slog.String("statement", target),
		slog.Any("error", err),
	)
	return translateError(err)
}
