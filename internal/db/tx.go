// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

type txContextKey struct{}
type lazyTxContextKey struct{}

var txOptions = &sql.TxOptions{Isolation: sql.LevelReadCommitted}

// lazyTx begins its transaction on the first statement, so WithTx blocks
// that only read cached state never touch the pool.
type lazyTx struct {
	db      *sql.DB
	timeout time.Duration

	tx        TxInterface
	committed bool
	cancel    context.CancelFunc
}

func (lt *lazyTx) get() (TxInterface, error) {
	if lt.tx != nil {
		return lt.tx, nil
	}

	// Detached from the request so a client disconnect cannot roll back a
	// half-applied batch; bounded by the transaction timeout instead.
	ctx, cancel := context.WithTimeout(context.Background(), lt.timeout)
	tx, err := lt.db.BeginTx(ctx, txOptions)
	if err != nil {
		cancel()
		return nil, err
	}

	lt.tx = tx
	lt.cancel = cancel
	return tx, nil
}

func (lt *lazyTx) started() bool {
	return lt.tx != nil
}

func (lt *lazyTx) finish(err error) error {
	defer func() {
		if lt.cancel != nil {
			lt.cancel()
		}
	}()

	if !lt.started() {
		return err
	}

	if err != nil {
		if rerr := lt.tx.Rollback(); rerr != nil && !errors.Is(rerr, sql.ErrTxDone) {
			return errors.Join(err, fmt.Errorf("failed to rollback transaction: %w", rerr))
		}
		return err
	}

	if err := lt.tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	lt.committed = true

	return nil
}

func contextWithTx(ctx context.Context, tx TxInterface) context.Context {
	return context.WithValue(ctx, txContextKey{}, tx)
}

func txFromContext(ctx context.Context) TxInterface {
	if tx, ok := ctx.Value(txContextKey{}).(TxInterface); ok {
		return tx
	}
	return nil
}

func contextWithLazyTx(ctx context.Context, lt *lazyTx) context.Context {
	return context.WithValue(ctx, lazyTxContextKey{}, lt)
}

func lazyTxFromContext(ctx context.Context) *lazyTx {
	if lt, ok := ctx.Value(lazyTxContextKey{}).(*lazyTx); ok {
		return lt
	}
	return nil
}

// WithTx runs fn in one transaction: committed when fn returns nil, rolled
// back otherwise. Calls nested in fn join the outer transaction, and a block
// that issues no statement never begins one.
func (d *DBClient) WithTx(ctx context.Context, fn func(context.Context) error) error {
	if lazyTxFromContext(ctx) != nil || txFromContext(ctx) != nil {
		return fn(ctx)
	}

	lt := &lazyTx{db: d.db, timeout: d.txTimeout}

	err := lt.finish(fn(contextWithLazyTx(ctx, lt)))
	if err != nil && lt.started() && !lt.committed {
		d.logger.Debugf("transaction rolled back: %v", err)
	}

	return err
}
