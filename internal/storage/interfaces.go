// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"

	"github.com/canonical/workspace-service/internal/types"
)

type StorageInterface interface {
	TenantStorageInterface
	MembershipStorageInterface
	CredentialStorageInterface
	CatalogStorageInterface
	ModelSettingStorageInterface
}

type TenantStorageInterface interface {
	CreateTenant(ctx context.Context, t *types.Tenant) (*types.Tenant, error)
	GetTenantByID(ctx context.Context, id string) (*types.Tenant, error)
	ListTenantsByUserID(ctx context.Context, userID string) ([]*types.UserTenant, error)
	UpdateTenant(ctx context.Context, tenant *types.Tenant, paths []string) error
	DeleteTenant(ctx context.Context, id string) error
}

type MembershipStorageInterface interface {
	AddMember(ctx context.Context, m *types.Membership) (*types.Membership, error)
	GetMembership(ctx context.Context, tenantID, userID string) (*types.Membership, error)
	GetCurrentMembership(ctx context.Context, userID string) (*types.Membership, error)
	LockUserMemberships(ctx context.Context, userID string) ([]*types.Membership, error)
	ClearCurrentMemberships(ctx context.Context, userID string) error
	SetCurrentMembership(ctx context.Context, tenantID, userID string) error
	ListMembersByTenantID(ctx context.Context, tenantID string, page, size int64) ([]*types.Membership, error)
	UpdateMemberRole(ctx context.Context, tenantID, userID string, role types.Role) error
	RemoveMember(ctx context.Context, tenantID, userID string) error
	DeleteMembershipsByTenantID(ctx context.Context, tenantID string) error
}

type CredentialStorageInterface interface {
	UpsertCredential(ctx context.Context, c *types.ProviderCredential) error
	GetCredential(ctx context.Context, tenantID, vendor string) (*types.ProviderCredential, error)
	LockCredential(ctx context.Context, tenantID, vendor string, exclusive bool) (*types.ProviderCredential, error)
	ListCredentials(ctx context.Context, tenantID string, validOnly bool) ([]*types.ProviderCredential, error)
	DeleteCredential(ctx context.Context, tenantID, vendor string) error
}

type CatalogStorageInterface interface {
	ListCatalogEntries(ctx context.Context, tenantID string, filter types.CatalogFilter) ([]*types.CatalogEntry, error)
	GetCatalogEntry(ctx context.Context, tenantID, id string) (*types.CatalogEntry, error)
	GetCatalogEntryByModel(ctx context.Context, tenantID, vendor, modelID string) (*types.CatalogEntry, error)
	InsertCatalogEntry(ctx context.Context, e *types.CatalogEntry) (*types.CatalogEntry, error)
	InsertCatalogEntryIfAbsent(ctx context.Context, e *types.CatalogEntry) (bool, error)
	UpdateCatalogEntry(ctx context.Context, e *types.CatalogEntry, paths []string) error
	RefreshAutoCatalogEntry(ctx context.Context, e *types.CatalogEntry, revive bool) error
	RetireAutoCatalogEntry(ctx context.Context, tenantID, vendor, modelID string) (bool, error)
	DeleteCatalogEntry(ctx context.Context, tenantID, id string) error
	DeleteCatalogEntriesByVendor(ctx context.Context, tenantID, vendor string) (int64, error)
}

type ModelSettingStorageInterface interface {
	UpsertModelSetting(ctx context.Context, b *types.DefaultModelBinding) (*types.DefaultModelBinding, error)
	ListModelSettings(ctx context.Context, tenantID string) ([]*types.DefaultModelBinding, error)
	DeleteModelSetting(ctx context.Context, tenantID string, category types.ModelCategory) error
	DeleteModelSettingsForModel(ctx context.Context, tenantID, vendor, modelID string) (int64, error)
	DeleteModelSettingsByVendor(ctx context.Context, tenantID, vendor string) (int64, error)
}
