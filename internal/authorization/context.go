// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authorization

import (
	"context"

	"github.com/canonical/workspace-service/internal/types"
)

type tenantContextKey struct{}

// WithTenantContext caches the resolved scope for the rest of the request.
func WithTenantContext(ctx context.Context, tc *types.TenantContext) context.Context {
	return context.WithValue(ctx, tenantContextKey{}, tc)
}

func TenantContextFrom(ctx context.Context) (*types.TenantContext, bool) {
	tc, ok := ctx.Value(tenantContextKey{}).(*types.TenantContext)
	return tc, ok && tc != nil
}
