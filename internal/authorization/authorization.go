// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authorization

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/canonical/workspace-service/internal/logging"
	"github.com/canonical/workspace-service/internal/monitoring"
	"github.com/canonical/workspace-service/internal/storage"
	"github.com/canonical/workspace-service/internal/tracing"
	"github.com/canonical/workspace-service/internal/types"
)

var _ AuthorizerInterface = (*Authorizer)(nil)

// Authorizer resolves the tenant scope of a caller, then checks membership
// and role, in that order.
type Authorizer struct {
	memberships MembershipReaderInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (a *Authorizer) ResolveContext(ctx context.Context, userID, tenantID string) (*types.TenantContext, error) {
	ctx, span := a.tracer.Start(ctx, "authorization.Authorizer.ResolveContext")
	defer span.End()

	if tenantID == "" {
		m, err := a.memberships.GetCurrentMembership(ctx, userID)
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrMissingTenantContext
		}
		if err != nil {
			return nil, fmt.Errorf("failed to resolve current tenant: %w", err)
		}

		return &types.TenantContext{TenantID: m.TenantID, UserID: userID, Role: m.Role}, nil
	}

	m, err := a.CheckMembership(ctx, tenantID, userID)
	if err != nil {
		return nil, err
	}

	return &types.TenantContext{TenantID: m.TenantID, UserID: userID, Role: m.Role}, nil
}

func (a *Authorizer) CheckMembership(ctx context.Context, tenantID, userID string) (*types.Membership, error) {
	ctx, span := a.tracer.Start(ctx, "authorization.Authorizer.CheckMembership")
	defer span.End()

	// tenant ids are uuids, anything else can not have members
	if _, err := uuid.Parse(tenantID); err != nil {
		return nil, ErrNotAMember
	}

	m, err := a.memberships.GetMembership(ctx, tenantID, userID)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, ErrNotAMember
	}
	if err != nil {
		return nil, fmt.Errorf("failed to check membership: %w", err)
	}

	return m, nil
}

// Authorize runs the whole pipeline and returns the resolved scope only when
// the caller's role satisfies required.
func (a *Authorizer) Authorize(ctx context.Context, userID, tenantID string, required types.Role) (*types.TenantContext, error) {
	ctx, span := a.tracer.Start(ctx, "authorization.Authorizer.Authorize")
	defer span.End()

	tc, err := a.ResolveContext(ctx, userID, tenantID)
	if err != nil {
		return nil, err
	}

	if err := CheckRole(tc.Role, required); err != nil {
		return tc, err
	}

	return tc, nil
}

func NewAuthorizer(memberships MembershipReaderInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Authorizer {
	authorizer := new(Authorizer)
	authorizer.memberships = memberships
	authorizer.tracer = tracer
	authorizer.monitor = monitor
	authorizer.logger = logger

	return authorizer
}
