// Package postgres is the networked Backend adapter, for deployments
// running the catalog/controller against a shared Postgres instance
// (spec.md §4.4).
package postgres

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"

	"udm/internal/apperr"
	"udm/internal/schema"
	"udm/internal/storage"
	"udm/internal/storage/sqlbase"
)

// Backend is a Postgres-backed storage.Backend.
type Backend struct {
	db *sql.DB
	sqlbase.Executor
}

var _ storage.Backend = (*Backend)(nil)

// Config is the subset of connection parameters the catalog/controller
// config surfaces for a Postgres backend (spec.md §6 configuration
// schema).
type Config struct {
	Host            string
	Port            int
	Database        string
	User            string
	Password        string
	SSLMode         string
	ApplicationName string
	Options         string
}

func (c Config) dsn() string {
	sslmode := c.SSLMode
	if sslmode == "" {
		sslmode = "disable"
	}
	dsn := fmt.Sprintf("host=%s port=%d dbname=%s user=%s password=%s sslmode=%s",
		c.Host, c.Port, c.Database, c.User, c.Password, sslmode)
	if c.ApplicationName != "" {
		dsn += fmt.Sprintf(" application_name=%s", c.ApplicationName)
	}
	if c.Options != "" {
		dsn += fmt.Sprintf(" options=%s", c.Options)
	}
	return dsn
}

// Open connects to Postgres and verifies the connection with a ping.
func Open(ctx context.Context, cfg Config) (*Backend, error) {
	db, err := sql.Open("postgres", cfg.dsn())
	if err != nil {
		return nil, apperr.Wrap(apperr.InvalidConfiguration, "open postgres connection", err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, apperr.Wrap(apperr.BackendError, "ping postgres", err)
	}
	return &Backend{db: db, Executor: sqlbase.Executor{DB: db, Rewrite: false}}, nil
}

func (b *Backend) Close() error { return b.db.Close() }

func (b *Backend) GenSchemaCatalog(ctx context.Context) error {
	return sqlbase.ExecAll(ctx, b.db, schema.CreateCatalogSchemaDDL(schema.DialectPostgres))
}

func (b *Backend) GenSchemaController(ctx context.Context) error {
	return sqlbase.ExecAll(ctx, b.db, schema.CreateControllerSchemaDDL(schema.DialectPostgres))
}

func (b *Backend) TruncateSchema(ctx context.Context) error {
	return sqlbase.ExecAll(ctx, b.db, schema.TruncateStatements())
}

const listTablesQuery = `SELECT table_name FROM information_schema.tables WHERE table_schema = 'public'`

func (b *Backend) ListTables(ctx context.Context) ([]string, error) {
	return sqlbase.ListTables(ctx, b.db, listTablesQuery)
}

// tx wraps a *sql.Tx with the shared Executor, implementing storage.Tx.
type tx struct {
	t *sql.Tx
	sqlbase.Executor
}

func (t *tx) Commit() error   { return t.t.Commit() }
func (t *tx) Rollback() error { return t.t.Rollback() }

func (b *Backend) BeginTx(ctx context.Context) (storage.Tx, error) {
	t, err := b.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, apperr.Wrap(apperr.BackendError, "begin postgres transaction", err)
	}
	return &tx{t: t, Executor: sqlbase.Executor{DB: t, Rewrite: false}}, nil
}

var _ storage.Tx = (*tx)(nil)
