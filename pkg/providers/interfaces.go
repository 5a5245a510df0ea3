// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package providers

import (
	"context"
	"net/http"

	"github.com/canonical/workspace-service/internal/storage"
	"github.com/canonical/workspace-service/internal/types"
	"github.com/canonical/workspace-service/pkg/vendors"
)

type ServiceInterface interface {
	ListSupportedVendors(ctx context.Context) []string
	ListCredentialsSummary(ctx context.Context, tc *types.TenantContext) ([]*types.CredentialSummary, error)
	SaveCredential(ctx context.Context, tc *types.TenantContext, vendor string, cfg *vendors.Config) (*types.CredentialSummary, error)
	DeleteCredential(ctx context.Context, tc *types.TenantContext, vendor string) error
	GetDecryptedConfig(ctx context.Context, tenantID, vendor string) (*vendors.Config, error)

	Reconcile(ctx context.Context, tenantID string) (*ReconcileReport, error)
	GetCatalog(ctx context.Context, tc *types.TenantContext, includeDisabled bool) ([]*types.CatalogEntry, error)
	GetAvailableModels(ctx context.Context, tc *types.TenantContext, category types.ModelCategory) ([]*types.CatalogEntry, error)
	CreateCustomModel(ctx context.Context, tc *types.TenantContext, m *CustomModel) (*types.CatalogEntry, error)
	UpdateTenantModel(ctx context.Context, tc *types.TenantContext, id string, patch *ModelPatch) (*types.CatalogEntry, error)
	DeleteTenantModel(ctx context.Context, tc *types.TenantContext, id string) error

	UpdateModelSetting(ctx context.Context, tc *types.TenantContext, b *types.DefaultModelBinding) (*types.DefaultModelBinding, error)
	GetModelSettings(ctx context.Context, tc *types.TenantContext) ([]*types.DefaultModelBinding, error)
	DeleteModelSetting(ctx context.Context, tc *types.TenantContext, category types.ModelCategory) error
}

type StorageInterface interface {
	storage.CredentialStorageInterface
	storage.CatalogStorageInterface
	storage.ModelSettingStorageInterface
}

// TxRunnerInterface runs fn inside one database transaction.
type TxRunnerInterface interface {
	WithTx(ctx context.Context, fn func(context.Context) error) error
}

// GuardInterface produces the role-gating middleware of a route.
type GuardInterface interface {
	RequireRole(min types.Role) func(http.Handler) http.Handler
}
