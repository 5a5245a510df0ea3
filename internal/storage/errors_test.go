// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
)

type fakeResult struct {
	rows int64
	err  error
}

func (r fakeResult) LastInsertId() (int64, error) { return 0, nil }
func (r fakeResult) RowsAffected() (int64, error) { return r.rows, r.err }

func TestWrapWriteError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected error
	}{
		{
			name:     "unique violation",
			err:      &pgconn.PgError{Code: pgErrCodeUniqueViolation},
			expected: ErrDuplicateKey,
		},
		{
			name:     "foreign key violation",
			err:      fmt.Errorf("exec: %w", &pgconn.PgError{Code: pgErrCodeForeignKeyViolation}),
			expected: ErrForeignKeyViolation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := wrapWriteError(tt.err, "insert"); !errors.Is(err, tt.expected) {
				t.Errorf("expected %v, got %v", tt.expected, err)
			}
		})
	}

	plain := errors.New("connection reset")
	if err := wrapWriteError(plain, "insert"); !errors.Is(err, plain) {
		t.Errorf("expected wrapped original error, got %v", err)
	}
}

func TestIsNoRows(t *testing.T) {
	if !isNoRows(fmt.Errorf("scan: %w", sql.ErrNoRows)) {
		t.Error("expected sql.ErrNoRows to be detected")
	}
	if isNoRows(errors.New("boom")) {
		t.Error("unexpected no rows detection")
	}
}

func TestExpectAffected(t *testing.T) {
	if err := expectAffected(fakeResult{rows: 1}, "update"); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if err := expectAffected(fakeResult{rows: 0}, "update"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
	if err := expectAffected(fakeResult{err: errors.New("driver")}, "update"); err == nil || errors.Is(err, ErrNotFound) {
		t.Errorf("expected driver error, got %v", err)
	}
}
