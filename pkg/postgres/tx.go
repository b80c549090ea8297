package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// WithTx begins a transaction, runs fn with it, and then commits on success
// or rolls back on error or panic. Panics are rethrown after the rollback.
func WithTx(ctx context.Context, db *sqlx.DB, fn func(tx *sqlx.Tx) error) (err error) {
	const op = "postgres.WithTx"

	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%s: failed to begin transaction: %w", op, err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
		if err != nil {
			_ = tx.Rollback()
			return
		}
		if err = tx.Commit(); err != nil {
			err = fmt.Errorf("%s: failed to commit transaction: %w", op, err)
		}
	}()

	return fn(tx)
}
