package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// TxFunc is the function type executed inside a transaction.
type TxFunc func(q Querier) error

// Runner starts transactions for services. The pool-backed implementation is
// the only one used at runtime; tests substitute a fake that invokes the
// function directly.
type Runner interface {
	WithTransaction(ctx context.Context, fn TxFunc) error
}

type pgxRunner struct {
	pool *pgxpool.Pool
}

// NewRunner wraps a pgx pool as a transaction Runner.
func NewRunner(pool *pgxpool.Pool) Runner {
	return &pgxRunner{pool: pool}
}

func (r *pgxRunner) WithTransaction(ctx context.Context, fn TxFunc) error {
	return WithTransaction(ctx, r.pool, func(tx pgx.Tx) error {
		return fn(tx)
	})
}

// WithTransaction wraps a function in a transaction on the given pool.
// Auto rollback on error or panic, auto commit on success.
func WithTransaction(ctx context.Context, pool *pgxpool.Pool, fn func(pgx.Tx) error) error {
	tx, err := pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	// Rollback is a no-op once the transaction has committed.
	defer func() {
		if p := recover(); p != nil {
			tx.Rollback(ctx)
			panic(p)
		} else if err != nil {
			tx.Rollback(ctx)
		}
	}()

	err = fn(tx)
	if err != nil {
		return err
	}

	if err = tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// WithTransactionResult wraps a function with a return value in a transaction.
func WithTransactionResult[T any](ctx context.Context, r Runner, fn func(q Querier) (T, error)) (T, error) {
	var result T
	var fnErr error

	err := r.WithTransaction(ctx, func(q Querier) error {
		result, fnErr = fn(q)
		return fnErr
	})

	if err != nil {
		var zero T
		return zero, err
	}

	return result, nil
}
