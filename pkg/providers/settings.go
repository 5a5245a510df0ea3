// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package providers

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/canonical/workspace-service/internal/storage"
	"github.com/canonical/workspace-service/internal/types"
)

// UpdateModelSetting binds category to a model. The target is not checked
// against the catalog; callers pick it from GetAvailableModels.
func (s *Service) UpdateModelSetting(ctx context.Context, tc *types.TenantContext, b *types.DefaultModelBinding) (*types.DefaultModelBinding, error) {
	ctx, span := s.tracer.Start(ctx, "providers.Service.UpdateModelSetting")
	defer span.End()

	if b == nil || !b.Category.Valid() {
		return nil, ErrInvalidCategory
	}

	if strings.TrimSpace(b.Vendor) == "" || strings.TrimSpace(b.ModelID) == "" {
		return nil, fmt.Errorf("%w: vendor and model are required", ErrInvalidModel)
	}

	saved, err := s.storage.UpsertModelSetting(ctx, &types.DefaultModelBinding{
		TenantID: tc.TenantID,
		Category: b.Category,
		Vendor:   b.Vendor,
		ModelID:  b.ModelID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to save model setting: %w", err)
	}

	return saved, nil
}

func (s *Service) GetModelSettings(ctx context.Context, tc *types.TenantContext) ([]*types.DefaultModelBinding, error) {
	ctx, span := s.tracer.Start(ctx, "providers.Service.GetModelSettings")
	defer span.End()

	settings, err := s.storage.ListModelSettings(ctx, tc.TenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to list model settings: %w", err)
	}

	return settings, nil
}

func (s *Service) DeleteModelSetting(ctx context.Context, tc *types.TenantContext, category types.ModelCategory) error {
	ctx, span := s.tracer.Start(ctx, "providers.Service.DeleteModelSetting")
	defer span.End()

	if !category.Valid() {
		return ErrInvalidCategory
	}

	if err := s.storage.DeleteModelSetting(ctx, tc.TenantID, category); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return ErrSettingNotFound
		}
		return fmt.Errorf("failed to delete model setting: %w", err)
	}

	return nil
}
