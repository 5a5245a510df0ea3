// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package db

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeTx struct {
	committed  bool
	rolledBack bool
}

func (f *fakeTx) Commit() error   { f.committed = true; return nil }
func (f *fakeTx) Rollback() error { f.rolledBack = true; return nil }
func (f *fakeTx) Exec(string, ...interface{}) (sql.Result, error) {
	return nil, errors.New("not implemented")
}
func (f *fakeTx) Query(string, ...interface{}) (*sql.Rows, error) {
	return nil, errors.New("not implemented")
}
func (f *fakeTx) QueryRow(string, ...interface{}) *sql.Row { return nil }

func TestOffset(t *testing.T) {
	tests := []struct {
		name     string
		page     int64
		pageSize uint64
		expected uint64
	}{
		{name: "first page", page: 1, pageSize: 10, expected: 0},
		{name: "third page", page: 3, pageSize: 25, expected: 50},
		{name: "zero page defaults to first", page: 0, pageSize: 10, expected: 0},
		{name: "negative page defaults to first", page: -4, pageSize: 10, expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Offset(tt.page, tt.pageSize))
		})
	}
}

func TestPageSize(t *testing.T) {
	assert.Equal(t, defaultPageSize, PageSize(0))
	assert.Equal(t, defaultPageSize, PageSize(-1))
	assert.Equal(t, uint64(20), PageSize(20))
}

func TestTxFromContext(t *testing.T) {
	assert.Nil(t, txFromContext(context.Background()))

	tx := &fakeTx{}
	ctx := contextWithTx(context.Background(), tx)
	assert.Same(t, tx, txFromContext(ctx))
}

func TestWithTxJoinsExistingTransaction(t *testing.T) {
	tx := &fakeTx{}
	ctx := contextWithTx(context.Background(), tx)

	client := &DBClient{}

	var seen TxInterface
	err := client.WithTx(ctx, func(txCtx context.Context) error {
		seen = txFromContext(txCtx)
		return nil
	})

	assert.NoError(t, err)
	assert.Same(t, tx, seen)
	assert.False(t, tx.committed, "the outer owner commits, not the nested call")
	assert.False(t, tx.rolledBack)
}

func TestWithTxJoinedCallPropagatesError(t *testing.T) {
	tx := &fakeTx{}
	ctx := contextWithTx(context.Background(), tx)

	client := &DBClient{}
	boom := errors.New("boom")

	err := client.WithTx(ctx, func(context.Context) error { return boom })

	assert.ErrorIs(t, err, boom)
	assert.False(t, tx.rolledBack)
}

func TestWithTxWithoutQueriesSkipsCommit(t *testing.T) {
	client := &DBClient{}

	called := false
	err := client.WithTx(context.Background(), func(txCtx context.Context) error {
		called = true
		assert.NotNil(t, lazytxFromContext(txCtx))
		return nil
	})

	assert.NoError(t, err)
	assert.True(t, called)
}

func TestLazyTxFinish(t *testing.T) {
	boom := errors.New("boom")

	tests := []struct {
		name           string
		started        bool
		err            error
		expectCommit   bool
		expectRollback bool
	}{
		{name: "not started", started: false, err: nil},
		{name: "not started with error", started: false, err: boom},
		{name: "commit", started: true, err: nil, expectCommit: true},
		{name: "rollback", started: true, err: boom, expectRollback: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tx := &fakeTx{}
			cancelled := false

			lt := &lazyTx{cancel: func() { cancelled = true }}
			if tt.started {
				lt.tx = tx
			}

			err := lt.finish(tt.err)

			assert.ErrorIs(t, err, tt.err)
			if tt.err == nil {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.expectCommit, tx.committed)
			assert.Equal(t, tt.expectCommit, lt.committed)
			assert.Equal(t, tt.expectRollback, tx.rolledBack)
			assert.True(t, cancelled)
		})
	}
}
