// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/canonical/workspace-service/internal/types"
)

func scanModelSetting(r rowScanner) (*types.DefaultModelBinding, error) {
	var b types.DefaultModelBinding
	if err := r.Scan(&b.TenantID, &b.Category, &b.Vendor, &b.ModelID, &b.UpdatedAt); err != nil {
		return nil, err
	}
	return &b, nil
}

// UpsertModelSetting binds the category to a model, replacing any previous
// binding for that category.
func (s *Storage) UpsertModelSetting(ctx context.Context, b *types.DefaultModelBinding) (*types.DefaultModelBinding, error) {
	ctx, span := s.tracer.Start(ctx, "storage.UpsertModelSetting")
	defer span.End()

	row := s.db.Statement(ctx).
		Insert("model_settings").
		Columns("tenant_id", "category", "vendor", "model_id").
		Values(b.TenantID, b.Category, b.Vendor, b.ModelID).
		Suffix(`ON CONFLICT (tenant_id, category) DO UPDATE SET
			vendor = EXCLUDED.vendor,
			model_id = EXCLUDED.model_id,
			updated_at = NOW()
			RETURNING tenant_id, category, vendor, model_id, updated_at`).
		QueryRowContext(ctx)

	saved, err := scanModelSetting(row)
	if err != nil {
		return nil, wrapWriteError(err, "failed to upsert model setting")
	}

	return saved, nil
}

func (s *Storage) ListModelSettings(ctx context.Context, tenantID string) ([]*types.DefaultModelBinding, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListModelSettings")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select("tenant_id", "category", "vendor", "model_id", "updated_at").
		From("model_settings").
		Where(sq.Eq{"tenant_id": tenantID}).
		OrderBy("category ASC").
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list model settings: %w", err)
	}
	defer rows.Close()

	settings := make([]*types.DefaultModelBinding, 0)
	for rows.Next() {
		b, err := scanModelSetting(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan model setting: %w", err)
		}
		settings = append(settings, b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return settings, nil
}

func (s *Storage) DeleteModelSetting(ctx context.Context, tenantID string, category types.ModelCategory) error {
	ctx, span := s.tracer.Start(ctx, "storage.DeleteModelSetting")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Delete("model_settings").
		Where(sq.Eq{"tenant_id": tenantID, "category": category}).
		ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete model setting: %w", err)
	}

	return expectAffected(res, "delete model setting")
}

// DeleteModelSettingsForModel drops every binding that points at the model.
func (s *Storage) DeleteModelSettingsForModel(ctx context.Context, tenantID, vendor, modelID string) (int64, error) {
	ctx, span := s.tracer.Start(ctx, "storage.DeleteModelSettingsForModel")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Delete("model_settings").
		Where(sq.Eq{"tenant_id": tenantID, "vendor": vendor, "model_id": modelID}).
		ExecContext(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to delete model settings: %w", err)
	}

	return res.RowsAffected()
}

func (s *Storage) DeleteModelSettingsByVendor(ctx context.Context, tenantID, vendor string) (int64, error) {
	ctx, span := s.tracer.Start(ctx, "storage.DeleteModelSettingsByVendor")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Delete("model_settings").
		Where(sq.Eq{"tenant_id": tenantID, "vendor": vendor}).
		ExecContext(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to delete model settings: %w", err)
	}

	return res.RowsAffected()
}
