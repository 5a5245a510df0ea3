// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authorization

import (
	"context"

	"github.com/canonical/workspace-service/internal/types"
)

type AuthorizerInterface interface {
	// ResolveContext returns the caller's tenant and role. An empty tenantID
	// resolves to the caller's current membership.
	ResolveContext(ctx context.Context, userID, tenantID string) (*types.TenantContext, error)
	CheckMembership(ctx context.Context, tenantID, userID string) (*types.Membership, error)
	Authorize(ctx context.Context, userID, tenantID string, required types.Role) (*types.TenantContext, error)
}

// MembershipReaderInterface is the storage subset the pipeline depends on.
type MembershipReaderInterface interface {
	GetMembership(ctx context.Context, tenantID, userID string) (*types.Membership, error)
	GetCurrentMembership(ctx context.Context, userID string) (*types.Membership, error)
}
