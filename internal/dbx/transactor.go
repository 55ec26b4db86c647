// Package dbx scopes repository calls to database transactions. Repositories
// take a DBTX, services decide the transaction boundaries via a Transactor.
package dbx

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// DBTX is the part of database/sql the repositories use. *sql.DB and
// *sql.Tx both satisfy it.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// Transactor runs fn inside one transaction. readOnly marks transactions
// that never write.
type Transactor interface {
	InTx(ctx context.Context, readOnly bool, fn func(ctx context.Context, tx DBTX) error) error
}

// SQLTransactor opens READ COMMITTED transactions on DB. A positive
// StatementTimeout is applied to every statement of the transaction.
type SQLTransactor struct {
	DB               *sql.DB
	StatementTimeout time.Duration
}

func NewSQLTransactor(db *sql.DB, statementTimeout time.Duration) *SQLTransactor {
	return &SQLTransactor{DB: db, StatementTimeout: statementTimeout}
}

func (t *SQLTransactor) InTx(ctx context.Context, readOnly bool, fn func(ctx context.Context, tx DBTX) error) error {
	opts := &sql.TxOptions{Isolation: sql.LevelReadCommitted, ReadOnly: readOnly}
	return runTx(ctx, t.DB, opts, func(ctx context.Context, tx DBTX) error {
		if ms := t.StatementTimeout.Milliseconds(); ms > 0 {
			if _, err := tx.ExecContext(ctx, fmt.Sprintf("SET LOCAL statement_timeout = %d", ms)); err != nil {
				return fmt.Errorf("set statement timeout: %w", err)
			}
		}
		return fn(ctx, tx)
	})
}

// runTx commits when fn succeeds and rolls back when it fails or panics.
// A panic is re-raised after the rollback.
func runTx(ctx context.Context, db *sql.DB, opts *sql.TxOptions, fn func(ctx context.Context, tx DBTX) error) (err error) {
	tx, err := db.BeginTx(ctx, opts)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}

	committed := false
	defer func() {
		if committed {
			return
		}
		if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) && err != nil {
			err = errors.Join(err, fmt.Errorf("rollback: %w", rbErr))
		}
	}()

	if err := fn(ctx, tx); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	committed = true
	return nil
}

// NopTransactor calls fn directly with a nil handle. It serves repositories
// that ignore the handle, such as in-memory ones.
type NopTransactor struct{}

func (NopTransactor) InTx(ctx context.Context, _ bool, fn func(ctx context.Context, tx DBTX) error) error {
	return fn(ctx, nil)
}
