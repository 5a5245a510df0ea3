// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package webhooks

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/ory/hydra/v2/oauth2"

	"github.com/canonical/workspace-service/internal/logging"
	"github.com/canonical/workspace-service/internal/monitoring"
	"github.com/canonical/workspace-service/internal/tracing"
	"github.com/canonical/workspace-service/internal/types"
)

const (
	workspaceSuffix = "'s Workspace"
	maxLabelLength  = 50 - len(workspaceSuffix)
)

var (
	ErrMissingIdentity = errors.New("identity id is empty")
	ErrMissingSubject  = errors.New("token hook session has no subject")
)

var _ ServiceInterface = (*Service)(nil)

type Service struct {
	storage StorageInterface
	tenants TenantCreatorInterface
	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewService(
	storage StorageInterface,
	tenants TenantCreatorInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	return &Service{
		storage: storage,
		tenants: tenants,
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}

// HandleRegistration provisions the default workspace of a new identity.
// Identities that already belong to a tenant are left alone and nil is
// returned.
func (s *Service) HandleRegistration(ctx context.Context, identity *RegistrationPayload) (*types.Tenant, error) {
	ctx, span := s.tracer.Start(ctx, "webhooks.Service.HandleRegistration")
	defer span.End()

	if identity == nil || identity.IdentityID == "" {
		return nil, ErrMissingIdentity
	}

	s.logger.Debugf("handling registration for identity %s", identity.IdentityID)

	existing, err := s.storage.ListTenantsByUserID(ctx, identity.IdentityID)
	if err != nil {
		return nil, fmt.Errorf("failed to list tenants: %w", err)
	}

	if len(existing) > 0 {
		s.logger.Infof("identity %s already belongs to %d tenants, skipping provisioning", identity.IdentityID, len(existing))
		return nil, nil
	}

	t, err := s.tenants.CreateTenant(ctx, identity.IdentityID, defaultWorkspaceName(identity), "")
	if err != nil {
		return nil, fmt.Errorf("failed to provision workspace: %w", err)
	}

	s.logger.Infof("provisioned tenant %s for identity %s", t.ID, identity.IdentityID)

	return t, nil
}

// HandleTokenHook adds the subject's current tenant, its role there and
// every tenant id it belongs to into the access token claims.
func (s *Service) HandleTokenHook(ctx context.Context, req *oauth2.TokenHookRequest) (*TokenHookResponse, error) {
	ctx, span := s.tracer.Start(ctx, "webhooks.Service.HandleTokenHook")
	defer span.End()

	subject := subjectOf(req)
	if subject == "" {
		return nil, ErrMissingSubject
	}

	tenants, err := s.storage.ListTenantsByUserID(ctx, subject)
	if err != nil {
		return nil, fmt.Errorf("failed to list tenants: %w", err)
	}

	ids := make([]string, 0, len(tenants))
	claims := map[string]any{}

	for _, t := range tenants {
		ids = append(ids, t.ID)
		if t.Current {
			claims[ClaimTenantID] = t.ID
			claims[ClaimTenantRole] = string(t.Role)
		}
	}

	claims[ClaimTenants] = ids

	return &TokenHookResponse{Session: TokenHookSession{AccessToken: claims}}, nil
}

func subjectOf(req *oauth2.TokenHookRequest) string {
	if req == nil || req.Session == nil || req.Session.DefaultSession == nil {
		return ""
	}
	return req.Session.DefaultSession.Subject
}

func defaultWorkspaceName(identity *RegistrationPayload) string {
	label := strings.TrimSpace(identity.Name)
	if label == "" {
		label = strings.TrimSpace(identity.Email)
	}
	if label == "" {
		label = "My"
	}

	if r := []rune(label); len(r) > maxLabelLength {
		label = string(r[:maxLabelLength])
	}

	return label + workspaceSuffix
}
