package ports

import "context"

// Record is a flat row as persisted by a Store, or a flat form payload.
// Keys are column names; values are whatever the backend decoded.
type Record = map[string]any

// Operator is a filter comparison.
type Operator string

const (
	OpEq      Operator = "eq"
	OpNeq     Operator = "neq"
	OpNotNull Operator = "not_null"
)

// Filter restricts a query to rows where Column compares to Value.
// Value is ignored for OpNotNull.
type Filter struct {
	Column string
	Op     Operator
	Value  any
}

// Eq matches rows where column equals value.
func Eq(column string, value any) Filter {
	return Filter{Column: column, Op: OpEq, Value: value}
}

// Neq matches rows where column differs from value.
func Neq(column string, value any) Filter {
	return Filter{Column: column, Op: OpNeq, Value: value}
}

// NotNull matches rows where column is set.
func NotNull(column string) Filter {
	return Filter{Column: column, Op: OpNotNull}
}

// OrderBy sorts results by Column.
type OrderBy struct {
	Column string
	Desc   bool
}

// Query describes a select or count. The zero value selects every row in
// backend order.
type Query struct {
	Filters []Filter
	Order   []OrderBy
	// Limit caps the number of rows. Zero means no limit.
	Limit int
}

// Store defines the client port for the remote relational store.
// Implemented by the PostgREST, Postgres, and in-memory adapters; called by
// the entity repositories. Tables and columns are persisted names.
type Store interface {
	// Select returns rows of table matching q.
	Select(ctx context.Context, table string, q Query) ([]Record, error)

	// Count returns the number of rows of table matching q's filters.
	Count(ctx context.Context, table string, q Query) (int, error)

	// Insert creates a row and returns it as stored, including
	// store-assigned fields (id, timestamps).
	// Returns domain.ErrConflict on unique violations.
	Insert(ctx context.Context, table string, rec Record) (Record, error)

	// Update replaces the given columns of the row with the given id and
	// returns the row as stored.
	// Returns domain.ErrNotFound if no row has that id.
	Update(ctx context.Context, table, id string, rec Record) (Record, error)

	// Delete removes the row with the given id. Deleting a missing row is
	// not an error.
	Delete(ctx context.Context, table, id string) error
}
