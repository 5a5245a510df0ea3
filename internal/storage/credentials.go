// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/canonical/workspace-service/internal/types"
)

var credentialColumns = []string{"tenant_id", "vendor", "encrypted_config", "is_valid", "last_validated_at", "created_at", "updated_at"}

func scanCredential(r rowScanner) (*types.ProviderCredential, error) {
	var (
		c         types.ProviderCredential
		validated sql.NullTime
	)
	if err := r.Scan(&c.TenantID, &c.Vendor, &c.EncryptedConfig, &c.IsValid, &validated, &c.CreatedAt, &c.UpdatedAt); err != nil {
		return nil, err
	}
	c.LastValidatedAt = nullTime(validated)
	return &c, nil
}

// UpsertCredential stores the credential for (tenant, vendor), replacing any
// previous configuration.
func (s *Storage) UpsertCredential(ctx context.Context, c *types.ProviderCredential) error {
	ctx, span := s.tracer.Start(ctx, "storage.UpsertCredential")
	defer span.End()

	_, err := s.db.Statement(ctx).
		Insert("provider_credentials").
		Columns("tenant_id", "vendor", "encrypted_config", "is_valid", "last_validated_at").
		Values(c.TenantID, c.Vendor, c.EncryptedConfig, c.IsValid, c.LastValidatedAt).
		Suffix(`ON CONFLICT (tenant_id, vendor) DO UPDATE SET
			encrypted_config = EXCLUDED.encrypted_config,
			is_valid = EXCLUDED.is_valid,
			last_validated_at = EXCLUDED.last_validated_at,
			updated_at = NOW()`).
		ExecContext(ctx)
	if err != nil {
		return wrapWriteError(err, "failed to upsert credential")
	}

	return nil
}

func (s *Storage) GetCredential(ctx context.Context, tenantID, vendor string) (*types.ProviderCredential, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetCredential")
	defer span.End()

	row := s.db.Statement(ctx).
		Select(credentialColumns...).
		From("provider_credentials").
		Where(sq.Eq{"tenant_id": tenantID, "vendor": vendor}).
		QueryRowContext(ctx)

	c, err := scanCredential(row)
	if err != nil {
		if isNoRows(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get credential: %w", err)
	}

	return c, nil
}

// LockCredential reads the credential row and locks it until the ambient
// transaction ends: FOR UPDATE when exclusive, FOR SHARE otherwise.
func (s *Storage) LockCredential(ctx context.Context, tenantID, vendor string, exclusive bool) (*types.ProviderCredential, error) {
	ctx, span := s.tracer.Start(ctx, "storage.LockCredential")
	defer span.End()

	lock := "FOR SHARE"
	if exclusive {
		lock = "FOR UPDATE"
	}

	row := s.db.Statement(ctx).
		Select(credentialColumns...).
		From("provider_credentials").
		Where(sq.Eq{"tenant_id": tenantID, "vendor": vendor}).
		Suffix(lock).
		QueryRowContext(ctx)

	c, err := scanCredential(row)
	if err != nil {
		if isNoRows(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to lock credential: %w", err)
	}

	return c, nil
}

func (s *Storage) ListCredentials(ctx context.Context, tenantID string, validOnly bool) ([]*types.ProviderCredential, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListCredentials")
	defer span.End()

	where := sq.Eq{"tenant_id": tenantID}
	if validOnly {
		where["is_valid"] = true
	}

	rows, err := s.db.Statement(ctx).
		Select(credentialColumns...).
		From("provider_credentials").
		Where(where).
		OrderBy("vendor ASC").
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list credentials: %w", err)
	}
	defer rows.Close()

	credentials := make([]*types.ProviderCredential, 0)
	for rows.Next() {
		c, err := scanCredential(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan credential: %w", err)
		}
		credentials = append(credentials, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return credentials, nil
}

func (s *Storage) DeleteCredential(ctx context.Context, tenantID, vendor string) error {
	ctx, span := s.tracer.Start(ctx, "storage.DeleteCredential")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Delete("provider_credentials").
		Where(sq.Eq{"tenant_id": tenantID, "vendor": vendor}).
		ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete credential: %w", err)
	}

	return expectAffected(res, "delete credential")
}
