package store

import (
	"context"
	"database/sql"
)

// DBTX abstracts the database access layer used by the SQL-backed stores.
// It is implemented by both *sql.DB and *sql.Tx, so a store can be bound
// to a plain connection pool or to a transaction.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	PrepareContext(ctx context.Context, query string) (*sql.Stmt, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}
