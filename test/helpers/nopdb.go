// test/helpers/nopdb.go
package helpers

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

var errNopQuery = errors.New("nop db: queries are not supported")

// NopDB satisfies ports.DBTX for services wired to in-memory repositories.
// Begin hands out a transaction whose Commit and Rollback succeed, so code
// using pgx.BeginFunc runs unchanged.
type NopDB struct{}

// NewNopDB returns a fresh handle
func NewNopDB() *NopDB {
	return &NopDB{}
}

func (d *NopDB) Begin(ctx context.Context) (pgx.Tx, error) {
	return &nopTx{db: d}, nil
}

func (d *NopDB) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, nil
}

func (d *NopDB) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, errNopQuery
}

func (d *NopDB) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	return nopRow{}
}

type nopRow struct{}

func (nopRow) Scan(dest ...any) error {
	return pgx.ErrNoRows
}

// nopTx overrides the methods reached through pgx.BeginFunc and the DBTX
// port. Anything else panics on the nil embedded Tx.
type nopTx struct {
	pgx.Tx
	db *NopDB
}

func (t *nopTx) Begin(ctx context.Context) (pgx.Tx, error) {
	return &nopTx{db: t.db}, nil
}

func (t *nopTx) Commit(ctx context.Context) error   { return nil }
func (t *nopTx) Rollback(ctx context.Context) error { return nil }

func (t *nopTx) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	return t.db.Exec(ctx, sql, args...)
}

func (t *nopTx) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return t.db.Query(ctx, sql, args...)
}

func (t *nopTx) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	return t.db.QueryRow(ctx, sql, args...)
}
