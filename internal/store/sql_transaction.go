// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"fmt"
)

type txCtxKey struct{}

func txFromContext(ctx context.Context) (*sql.Tx, bool) {
	tx, ok := ctx.Value(txCtxKey{}).(*sql.Tx)
	return tx, ok
}

// WithinTx implements [Transactor].
func (db *DB) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return db.withinTx(ctx, nil, fn)
}

// WithinReadOnlyTx implements [Transactor] for lookups.
func (db *DB) WithinReadOnlyTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return db.withinTx(ctx, &sql.TxOptions{ReadOnly: true}, fn)
}

func (db *DB) withinTx(ctx context.Context, opts *sql.TxOptions, fn func(ctx context.Context) error) (err error) {
	if _, ok := txFromContext(ctx); ok {
		return fn(ctx)
	}

	tx, err := db.BeginTx(ctx, opts)
	if err != nil {
		db.logger.Err(err).Str("func", "*DB.withinTx").Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}

	committed := false
	defer func() {
		if committed {
			return
		}
		if rbErr := tx.Rollback(); rbErr != nil {
			db.logger.Err(rbErr).Str("func", "*DB.withinTx").Msg("failed to rollback transaction")
		}
	}()

	if err = fn(context.WithValue(ctx, txCtxKey{}, tx)); err != nil {
		return err
	}

	committed = true
	if err = tx.Commit(); err != nil {
		db.logger.Err(err).Str("func", "*DB.withinTx").Msg("failed to commit transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}
	return nil
}
