// Package sqlite is the embedded file Backend adapter, for a dispensing
// host running standalone without a networked Postgres instance (spec.md
// §4.4). It uses the pure-Go modernc.org/sqlite driver rather than a cgo
// binding so the daemon cross-compiles onto the controller hardware
// without a C toolchain.
package sqlite

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"udm/internal/apperr"
	"udm/internal/schema"
	"udm/internal/storage"
	"udm/internal/storage/sqlbase"
)

// Backend is a SQLite-backed storage.Backend.
type Backend struct {
	db *sql.DB
	sqlbase.Executor
}

var _ storage.Backend = (*Backend)(nil)

// Open opens (creating if necessary) a SQLite database file at path and
// enables WAL mode and foreign key enforcement.
func Open(ctx context.Context, path string) (*Backend, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, apperr.Wrap(apperr.InvalidConfiguration, "create sqlite data directory", err)
		}
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, apperr.Wrap(apperr.InvalidConfiguration, "open sqlite database", err)
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if _, err := db.ExecContext(ctx, "PRAGMA journal_mode = WAL"); err != nil {
		db.Close()
		return nil, apperr.Wrap(apperr.BackendError, "set journal_mode", err)
	}
	if _, err := db.ExecContext(ctx, "PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, apperr.Wrap(apperr.BackendError, "set foreign_keys", err)
	}

	return &Backend{db: db, Executor: sqlbase.Executor{DB: db, Rewrite: true}}, nil
}

func (b *Backend) Close() error { return b.db.Close() }

func (b *Backend) GenSchemaCatalog(ctx context.Context) error {
	return sqlbase.ExecAll(ctx, b.db, schema.CreateCatalogSchemaDDL(schema.DialectSQLite))
}

func (b *Backend) GenSchemaController(ctx context.Context) error {
	return sqlbase.ExecAll(ctx, b.db, schema.CreateControllerSchemaDDL(schema.DialectSQLite))
}

func (b *Backend) TruncateSchema(ctx context.Context) error {
	return sqlbase.ExecAll(ctx, b.db, schema.TruncateStatements())
}

const listTablesQuery = `SELECT name FROM sqlite_master WHERE type = 'table' AND name NOT LIKE 'sqlite_%'`

func (b *Backend) ListTables(ctx context.Context) ([]string, error) {
	return sqlbase.ListTables(ctx, b.db, listTablesQuery)
}

type tx struct {
	t *sql.Tx
	sqlbase.Executor
}

func (t *tx) Commit() error   { return t.t.Commit() }
func (t *tx) Rollback() error { return t.t.Rollback() }

func (b *Backend) BeginTx(ctx context.Context) (storage.Tx, error) {
	t, err := b.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, apperr.Wrap(apperr.BackendError, "begin sqlite transaction", err)
	}
	return &tx{t: t, Executor: sqlbase.Executor{DB: t, Rewrite: true}}, nil
}

var _ storage.Tx = (*tx)(nil)

// Path returns the backend's on-disk file path, or "" if it cannot be
// read.
func (b *Backend) Path() string {
	var path string
	row := b.db.QueryRow("PRAGMA database_list")
	var seq int
	var name string
	if err := row.Scan(&seq, &name, &path); err != nil {
		return ""
	}
	return path
}
