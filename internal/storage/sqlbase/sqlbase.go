// Package sqlbase holds the database/sql execution logic shared by the
// postgres and sqlite backend adapters: both wrap a DBTX (a *sql.DB or a
// *sql.Tx with an open transaction) and differ only in placeholder
// syntax, which this package rewrites once the query.Statement has
// already been built (spec.md §4.4: query and filter stay dialect-free).
package sqlbase

import (
	"context"
	"database/sql"
	"regexp"
	"strconv"

	"udm/internal/apperr"
	"udm/internal/query"
	"udm/internal/schema"
	"udm/internal/storage"
)

// DBTX is satisfied by both *sql.DB and *sql.Tx.
type DBTX interface {
	ExecContext(ctx context.Context, q string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, q string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, q string, args ...any) *sql.Row
}

var _ DBTX = (*sql.DB)(nil)
var _ DBTX = (*sql.Tx)(nil)

var dollarPlaceholder = regexp.MustCompile(`\$(\d+)`)

// RewritePlaceholders converts "$1".."$n" positional placeholders to
// SQLite's "?" syntax. Postgres adapters pass statements through
// unchanged; the SQLite adapter calls this on every statement before
// executing it.
func RewritePlaceholders(text string) string {
	return dollarPlaceholder.ReplaceAllString(text, "?")
}

// Executor implements storage.Executor against a DBTX. Both the Backend
// and the Tx returned by BeginTx embed one of these, configured with
// rewrite=true for SQLite and rewrite=false for Postgres.
type Executor struct {
	DB      DBTX
	Rewrite bool
}

func (e Executor) text(stmt query.Statement) string {
	if e.Rewrite {
		return RewritePlaceholders(stmt.Text)
	}
	return stmt.Text
}

func (e Executor) Insert(ctx context.Context, stmt query.Statement) (int64, error) {
	var id int64
	if err := e.DB.QueryRowContext(ctx, e.text(stmt), stmt.Args...).Scan(&id); err != nil {
		return 0, apperr.Wrap(apperr.BackendError, "insert", err)
	}
	return id, nil
}

func (e Executor) InsertWithUUID(ctx context.Context, stmt query.Statement) error {
	if _, err := e.DB.ExecContext(ctx, e.text(stmt), stmt.Args...); err != nil {
		return apperr.Wrap(apperr.BackendError, "insert with uuid", err)
	}
	return nil
}

func (e Executor) Update(ctx context.Context, stmt query.Statement) error {
	res, err := e.DB.ExecContext(ctx, e.text(stmt), stmt.Args...)
	if err != nil {
		return apperr.Wrap(apperr.BackendError, "update", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return apperr.Wrap(apperr.BackendError, "update rows affected", err)
	}
	if n == 0 {
		return apperr.New(apperr.InvalidInput, "update affected no rows; id does not exist")
	}
	return nil
}

func (e Executor) Delete(ctx context.Context, stmt query.Statement) error {
	if _, err := e.DB.ExecContext(ctx, e.text(stmt), stmt.Args...); err != nil {
		return apperr.Wrap(apperr.BackendError, "delete", err)
	}
	return nil
}

func (e Executor) Select(ctx context.Context, table schema.Table, stmt query.Statement) ([]storage.Row, error) {
	rows, err := e.DB.QueryContext(ctx, e.text(stmt), stmt.Args...)
	if err != nil {
		return nil, apperr.Wrap(apperr.BackendError, "select", err)
	}
	defer rows.Close()

	cols := schema.Columns(table)
	var result []storage.Row
	for rows.Next() {
		vals := make([]any, len(cols))
		dest := make([]any, len(cols))
		for i := range vals {
			dest[i] = &vals[i]
		}
		if err := rows.Scan(dest...); err != nil {
			return nil, apperr.Wrap(apperr.BackendError, "scan row", err)
		}
		row := make(storage.Row, len(cols))
		for i, c := range cols {
			row[c.Name] = vals[i]
		}
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, apperr.Wrap(apperr.BackendError, "iterate rows", err)
	}
	return result, nil
}

// ListTables queries the dialect's catalog for user-table names, used by
// both adapters' ListTables implementation.
func ListTables(ctx context.Context, db DBTX, listQuery string) ([]string, error) {
	rows, err := db.QueryContext(ctx, listQuery)
	if err != nil {
		return nil, apperr.Wrap(apperr.BackendError, "list tables", err)
	}
	defer rows.Close()
	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, apperr.Wrap(apperr.BackendError, "scan table name", err)
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

// ExecAll runs each statement in stmts in order, stopping at the first
// error. Used for DDL batches, which carry no args.
func ExecAll(ctx context.Context, db DBTX, stmts []string) error {
	for i, s := range stmts {
		if _, err := db.ExecContext(ctx, s); err != nil {
			return apperr.Wrap(apperr.BackendError, "execute ddl statement "+strconv.Itoa(i), err)
		}
	}
	return nil
}
