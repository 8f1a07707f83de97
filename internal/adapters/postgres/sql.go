package postgres

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/lib/pq"

	"github.com/jsamuelsen11/site-content-service/internal/ports"
)

// statement is a query with bindvars in sqlx's "?" form; Store rebinds it for
// the driver before execution.
type statement struct {
	query string
	args  []any
}

func ident(name string) string {
	return pq.QuoteIdentifier(name)
}

// where renders filters as a WHERE clause. Neq uses IS DISTINCT FROM so rows
// with a NULL column still match.
func where(filters []ports.Filter) (string, []any, error) {
	if len(filters) == 0 {
		return "", nil, nil
	}

	conds := make([]string, 0, len(filters))
	args := make([]any, 0, len(filters))
	for _, f := range filters {
		switch f.Op {
		case ports.OpEq:
			conds = append(conds, ident(f.Column)+" = ?")
			args = append(args, f.Value)
		case ports.OpNeq:
			conds = append(conds, ident(f.Column)+" IS DISTINCT FROM ?")
			args = append(args, f.Value)
		case ports.OpNotNull:
			conds = append(conds, ident(f.Column)+" IS NOT NULL")
		default:
			return "", nil, fmt.Errorf("postgres: unsupported filter operator %q on %s", f.Op, f.Column)
		}
	}
	return " WHERE " + strings.Join(conds, " AND "), args, nil
}

func selectStmt(table string, q ports.Query) (statement, error) {
	cond, args, err := where(q.Filters)
	if err != nil {
		return statement{}, err
	}

	var b strings.Builder
	b.WriteString("SELECT * FROM ")
	b.WriteString(ident(table))
	b.WriteString(cond)

	if len(q.Order) > 0 {
		parts := make([]string, len(q.Order))
		for i, o := range q.Order {
			dir := "ASC"
			if o.Desc {
				dir = "DESC"
			}
			parts[i] = ident(o.Column) + " " + dir + " NULLS LAST"
		}
		b.WriteString(" ORDER BY ")
		b.WriteString(strings.Join(parts, ", "))
	}
	if q.Limit > 0 {
		b.WriteString(" LIMIT ")
		b.WriteString(strconv.Itoa(q.Limit))
	}
	return statement{query: b.String(), args: args}, nil
}

func countStmt(table string, q ports.Query) (statement, error) {
	cond, args, err := where(q.Filters)
	if err != nil {
		return statement{}, err
	}
	return statement{query: "SELECT count(*) FROM " + ident(table) + cond, args: args}, nil
}

func insertStmt(table string, rec ports.Record) (statement, error) {
	if len(rec) == 0 {
		return statement{query: "INSERT INTO " + ident(table) + " DEFAULT VALUES RETURNING *"}, nil
	}

	cols := sortedKeys(rec)
	names := make([]string, len(cols))
	marks := make([]string, len(cols))
	args := make([]any, len(cols))
	for i, c := range cols {
		v, err := toArg(rec[c])
		if err != nil {
			return statement{}, fmt.Errorf("column %s: %w", c, err)
		}
		names[i] = ident(c)
		marks[i] = "?"
		args[i] = v
	}

	query := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s) RETURNING *",
		ident(table), strings.Join(names, ", "), strings.Join(marks, ", "))
	return statement{query: query, args: args}, nil
}

// updateStmt sets the columns of rec on the row with id. With nothing to set
// it selects the row instead, so callers still get it back.
func updateStmt(table, id string, rec ports.Record) (statement, error) {
	if len(rec) == 0 {
		return statement{
			query: "SELECT * FROM " + ident(table) + " WHERE " + ident(colID) + " = ?",
			args:  []any{id},
		}, nil
	}

	cols := sortedKeys(rec)
	sets := make([]string, len(cols))
	args := make([]any, 0, len(cols)+1)
	for i, c := range cols {
		v, err := toArg(rec[c])
		if err != nil {
			return statement{}, fmt.Errorf("column %s: %w", c, err)
		}
		sets[i] = ident(c) + " = ?"
		args = append(args, v)
	}
	args = append(args, id)

	query := fmt.Sprintf("UPDATE %s SET %s WHERE %s = ? RETURNING *",
		ident(table), strings.Join(sets, ", "), ident(colID))
	return statement{query: query, args: args}, nil
}

func deleteStmt(table, id string) statement {
	return statement{
		query: "DELETE FROM " + ident(table) + " WHERE " + ident(colID) + " = ?",
		args:  []any{id},
	}
}

func sortedKeys(rec ports.Record) []string {
	keys := make([]string, 0, len(rec))
	for k := range rec {
		if k == colID || k == colCreatedAt || k == colUpdatedAt {
			continue
		}
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
