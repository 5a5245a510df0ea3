// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package webhooks

import (
	"context"

	"github.com/ory/hydra/v2/oauth2"

	"github.com/canonical/workspace-service/internal/types"
)

// StorageInterface is the membership read the token hook needs.
type StorageInterface interface {
	ListTenantsByUserID(ctx context.Context, userID string) ([]*types.UserTenant, error)
}

// TenantCreatorInterface provisions a workspace owned by userID.
type TenantCreatorInterface interface {
	CreateTenant(ctx context.Context, userID, name, description string) (*types.Tenant, error)
}

type ServiceInterface interface {
	HandleRegistration(ctx context.Context, identity *RegistrationPayload) (*types.Tenant, error)
	HandleTokenHook(ctx context.Context, req *oauth2.TokenHookRequest) (*TokenHookResponse, error)
}
