// Package storage defines the polymorphic backend capability interface
// behind which the Postgres and embedded SQLite adapters live (spec.md
// §4.4). Nothing above this package ever branches on backend kind: the
// catalog and controller services hold a Backend and nothing else.
package storage

import (
	"context"

	"udm/internal/query"
	"udm/internal/schema"
)

// Row is one selected record, keyed by column name in the order
// schema.Columns(table) declares them.
type Row map[string]any

// Executor is the row-level operation surface shared by Backend and Tx,
// so catalog code can be written once and run either directly against a
// Backend or inside a transaction (spec.md §9 Open Question (a):
// add-recipe's recipe+join-row insert is atomic).
type Executor interface {
	// Insert runs stmt (expected to carry "RETURNING id") and returns the
	// assigned id.
	Insert(ctx context.Context, stmt query.Statement) (int64, error)

	// InsertWithUUID runs a caller-keyed insert (the pump-log) that has no
	// database-assigned id to return.
	InsertWithUUID(ctx context.Context, stmt query.Statement) error

	// Update runs stmt and fails with apperr.InvalidInput if it affected
	// zero rows — updating a row that doesn't exist is a caller error, not
	// a silent no-op.
	Update(ctx context.Context, stmt query.Statement) error

	// Delete runs stmt. Deleting zero rows is not an error: spec.md's
	// delete operations are idempotent by id.
	Delete(ctx context.Context, stmt query.Statement) error

	// Select runs stmt and decodes every row into a Row keyed by table's
	// column names.
	Select(ctx context.Context, table schema.Table, stmt query.Statement) ([]Row, error)
}

// Tx is a Backend-scoped transaction.
type Tx interface {
	Executor
	Commit() error
	Rollback() error
}

// Backend is the capability interface every storage adapter implements.
type Backend interface {
	Executor

	// GenSchemaCatalog creates the five catalog tables if they don't exist.
	GenSchemaCatalog(ctx context.Context) error

	// GenSchemaController creates the pump_log table if it doesn't exist.
	GenSchemaController(ctx context.Context) error

	// TruncateSchema empties every table, used by the catalog's
	// factory-reset RPC.
	TruncateSchema(ctx context.Context) error

	// ListTables reports every table this backend currently has.
	ListTables(ctx context.Context) ([]string, error)

	// BeginTx starts a transaction exposing the same Executor surface.
	BeginTx(ctx context.Context) (Tx, error)

	Close() error
}
