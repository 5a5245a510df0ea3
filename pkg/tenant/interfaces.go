// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package tenant

import (
	"context"
	"net/http"

	"github.com/canonical/workspace-service/internal/storage"
	"github.com/canonical/workspace-service/internal/types"
)

type ServiceInterface interface {
	CreateTenant(ctx context.Context, userID, name, description string) (*types.Tenant, error)
	SwitchTenant(ctx context.Context, userID, tenantID string) error
	DeleteTenant(ctx context.Context, tenantID, actorID string) error
	GetTenant(ctx context.Context, tenantID string) (*types.Tenant, error)
	UpdateTenant(ctx context.Context, tenantID string, patch *TenantPatch) (*types.Tenant, error)
	ListUserTenants(ctx context.Context, userID string) ([]*types.UserTenant, error)
	GetCurrentTenant(ctx context.Context, userID string) (*types.UserTenant, error)

	InviteMember(ctx context.Context, tenantID, email string, role types.Role, invitedBy string) (*types.Membership, error)
	UpdateMemberRole(ctx context.Context, tenantID, userID string, role types.Role, actorID string) (*types.Membership, error)
	RemoveMember(ctx context.Context, tenantID, userID, actorID string) error
	ListMembers(ctx context.Context, tenantID string, page, size int64) ([]*types.TenantUser, error)
}

type StorageInterface interface {
	storage.TenantStorageInterface
	storage.MembershipStorageInterface
}

// TxRunnerInterface runs fn inside one database transaction.
type TxRunnerInterface interface {
	WithTx(ctx context.Context, fn func(context.Context) error) error
}

type IdentityInterface interface {
	GetIdentityIDByEmail(ctx context.Context, email string) (string, error)
	GetIdentityEmail(ctx context.Context, id string) (string, error)
}

// GuardInterface produces the role-gating middleware of a route.
type GuardInterface interface {
	RequireRole(min types.Role) func(http.Handler) http.Handler
}
