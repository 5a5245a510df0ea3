// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package tenant

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/canonical/workspace-service/internal/events"
	"github.com/canonical/workspace-service/internal/logging"
	"github.com/canonical/workspace-service/internal/monitoring"
	"github.com/canonical/workspace-service/internal/storage"
	"github.com/canonical/workspace-service/internal/tracing"
	"github.com/canonical/workspace-service/internal/types"
)

const (
	maxNameLength        = 50
	maxDescriptionLength = 200
)

// TenantPatch carries the optional fields of a tenant update.
type TenantPatch struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
}

var _ ServiceInterface = (*Service)(nil)

type Service struct {
	storage   StorageInterface
	tx        TxRunnerInterface
	identity  IdentityInterface
	publisher events.PublisherInterface
	tracer    tracing.TracingInterface
	monitor   monitoring.MonitorInterface
	logger    logging.LoggerInterface
}

func NewService(
	storage StorageInterface,
	tx TxRunnerInterface,
	identity IdentityInterface,
	publisher events.PublisherInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	return &Service{
		storage:   storage,
		tx:        tx,
		identity:  identity,
		publisher: publisher,
		tracer:    tracer,
		monitor:   monitor,
		logger:    logger,
	}
}

// CreateTenant creates a workspace owned by userID and makes it the user's
// current one. Every write happens in one transaction.
func (s *Service) CreateTenant(ctx context.Context, userID, name, description string) (*types.Tenant, error) {
	ctx, span := s.tracer.Start(ctx, "tenant.Service.CreateTenant")
	defer span.End()

	name, description = strings.TrimSpace(name), strings.TrimSpace(description)
	if err := validateTenant(name, description); err != nil {
		return nil, err
	}

	var created *types.Tenant

	err := s.tx.WithTx(ctx, func(ctx context.Context) error {
		var err error

		created, err = s.storage.CreateTenant(ctx, &types.Tenant{
			Name:        name,
			Description: description,
			Plan:        types.DefaultPlan,
			Status:      types.DefaultStatus,
			OwnerID:     userID,
		})
		if err != nil {
			return fmt.Errorf("failed to create tenant: %w", err)
		}

		if _, err := s.storage.LockUserMemberships(ctx, userID); err != nil {
			return fmt.Errorf("failed to lock memberships: %w", err)
		}

		if err := s.storage.ClearCurrentMemberships(ctx, userID); err != nil {
			return fmt.Errorf("failed to clear current tenant: %w", err)
		}

		if _, err := s.storage.AddMember(ctx, &types.Membership{
			TenantID: created.ID,
			UserID:   userID,
			Role:     types.RoleOwner,
			Current:  true,
		}); err != nil {
			return fmt.Errorf("failed to add owner: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.publisher.Publish(ctx, events.NewEvent(events.TenantCreated, created.ID, userID, map[string]any{"name": created.Name}))

	return created, nil
}

// SwitchTenant moves the user's current flag to tenantID. The user's rows are
// locked first so concurrent switches serialize.
func (s *Service) SwitchTenant(ctx context.Context, userID, tenantID string) error {
	ctx, span := s.tracer.Start(ctx, "tenant.Service.SwitchTenant")
	defer span.End()

	if _, err := uuid.Parse(tenantID); err != nil {
		return ErrNotAMember
	}

	err := s.tx.WithTx(ctx, func(ctx context.Context) error {
		memberships, err := s.storage.LockUserMemberships(ctx, userID)
		if err != nil {
			return fmt.Errorf("failed to lock memberships: %w", err)
		}

		found := false
		for _, m := range memberships {
			if m.TenantID == tenantID {
				found = true
				break
			}
		}

		if !found {
			return ErrNotAMember
		}

		if err := s.storage.ClearCurrentMemberships(ctx, userID); err != nil {
			return fmt.Errorf("failed to clear current tenant: %w", err)
		}

		if err := s.storage.SetCurrentMembership(ctx, tenantID, userID); err != nil {
			return fmt.Errorf("failed to set current tenant: %w", err)
		}

		return nil
	})
	if err != nil {
		return err
	}

	s.publisher.Publish(ctx, events.NewEvent(events.TenantSwitched, tenantID, userID, nil))

	return nil
}

// DeleteTenant removes the memberships then the tenant; credentials, catalog
// and bindings follow through foreign key cascades. Owner checks happen
// before this is called.
func (s *Service) DeleteTenant(ctx context.Context, tenantID, actorID string) error {
	ctx, span := s.tracer.Start(ctx, "tenant.Service.DeleteTenant")
	defer span.End()

	err := s.tx.WithTx(ctx, func(ctx context.Context) error {
		if err := s.storage.DeleteMembershipsByTenantID(ctx, tenantID); err != nil {
			return fmt.Errorf("failed to delete memberships: %w", err)
		}

		if err := s.storage.DeleteTenant(ctx, tenantID); err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				return ErrTenantNotFound
			}
			return fmt.Errorf("failed to delete tenant: %w", err)
		}

		return nil
	})
	if err != nil {
		return err
	}

	s.logger.Security().AdminAction(actorID, "delete_tenant", tenantID)
	s.publisher.Publish(ctx, events.NewEvent(events.TenantDeleted, tenantID, actorID, nil))

	return nil
}

func (s *Service) GetTenant(ctx context.Context, tenantID string) (*types.Tenant, error) {
	ctx, span := s.tracer.Start(ctx, "tenant.Service.GetTenant")
	defer span.End()

	t, err := s.storage.GetTenantByID(ctx, tenantID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrTenantNotFound
		}
		return nil, fmt.Errorf("failed to get tenant: %w", err)
	}

	return t, nil
}

func (s *Service) UpdateTenant(ctx context.Context, tenantID string, patch *TenantPatch) (*types.Tenant, error) {
	ctx, span := s.tracer.Start(ctx, "tenant.Service.UpdateTenant")
	defer span.End()

	t := &types.Tenant{ID: tenantID}
	paths := make([]string, 0, 2)

	if patch != nil && patch.Name != nil {
		t.Name = strings.TrimSpace(*patch.Name)
		paths = append(paths, "name")
	}

	if patch != nil && patch.Description != nil {
		t.Description = strings.TrimSpace(*patch.Description)
		paths = append(paths, "description")
	}

	if patch != nil && patch.Name != nil {
		if err := validateTenant(t.Name, t.Description); err != nil {
			return nil, err
		}
	} else if err := validateDescription(t.Description); err != nil {
		return nil, err
	}

	if err := s.storage.UpdateTenant(ctx, t, paths); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrTenantNotFound
		}
		return nil, fmt.Errorf("failed to update tenant: %w", err)
	}

	return s.GetTenant(ctx, tenantID)
}

func (s *Service) ListUserTenants(ctx context.Context, userID string) ([]*types.UserTenant, error) {
	ctx, span := s.tracer.Start(ctx, "tenant.Service.ListUserTenants")
	defer span.End()

	tenants, err := s.storage.ListTenantsByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list tenants for user: %w", err)
	}

	return tenants, nil
}

// GetCurrentTenant returns ErrTenantNotFound when the user has no workspace.
func (s *Service) GetCurrentTenant(ctx context.Context, userID string) (*types.UserTenant, error) {
	ctx, span := s.tracer.Start(ctx, "tenant.Service.GetCurrentTenant")
	defer span.End()

	m, err := s.storage.GetCurrentMembership(ctx, userID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrTenantNotFound
		}
		return nil, fmt.Errorf("failed to get current membership: %w", err)
	}

	t, err := s.GetTenant(ctx, m.TenantID)
	if err != nil {
		return nil, err
	}

	return &types.UserTenant{Tenant: *t, Role: m.Role, Current: true}, nil
}

// InviteMember adds an existing account to the tenant as a non-current
// member. Owner cannot be granted by invitation.
func (s *Service) InviteMember(ctx context.Context, tenantID, email string, role types.Role, invitedBy string) (*types.Membership, error) {
	ctx, span := s.tracer.Start(ctx, "tenant.Service.InviteMember")
	defer span.End()

	if role == "" {
		role = types.RoleNormal
	}

	if !role.Valid() || role == types.RoleOwner {
		return nil, fmt.Errorf("%w: %s", ErrInvalidRole, role)
	}

	email = strings.TrimSpace(strings.ToLower(email))

	userID, err := s.identity.GetIdentityIDByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to look up identity: %w", err)
	}

	if userID == "" {
		return nil, ErrUserNotFound
	}

	if _, err := s.storage.GetMembership(ctx, tenantID, userID); err == nil {
		return nil, ErrAlreadyMember
	} else if !errors.Is(err, storage.ErrNotFound) {
		return nil, fmt.Errorf("failed to check membership: %w", err)
	}

	m, err := s.storage.AddMember(ctx, &types.Membership{
		TenantID:  tenantID,
		UserID:    userID,
		Role:      role,
		InvitedBy: invitedBy,
	})
	if err != nil {
		if errors.Is(err, storage.ErrDuplicateKey) {
			return nil, ErrAlreadyMember
		}
		if errors.Is(err, storage.ErrForeignKeyViolation) {
			return nil, ErrTenantNotFound
		}
		return nil, fmt.Errorf("failed to add member: %w", err)
	}

	s.publisher.Publish(ctx, events.NewEvent(events.MemberInvited, tenantID, invitedBy, map[string]any{"userId": userID, "role": role}))

	return m, nil
}

func (s *Service) UpdateMemberRole(ctx context.Context, tenantID, userID string, role types.Role, actorID string) (*types.Membership, error) {
	ctx, span := s.tracer.Start(ctx, "tenant.Service.UpdateMemberRole")
	defer span.End()

	if !role.Valid() || role == types.RoleOwner {
		return nil, fmt.Errorf("%w: %s", ErrInvalidRole, role)
	}

	m, err := s.modifiableMember(ctx, tenantID, userID)
	if err != nil {
		return nil, err
	}

	if m.Role == role {
		return m, nil
	}

	if err := s.storage.UpdateMemberRole(ctx, tenantID, userID, role); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrMemberNotFound
		}
		return nil, fmt.Errorf("failed to update member role: %w", err)
	}

	s.logger.Security().AdminAction(actorID, "update_member_role", tenantID+"/"+userID)
	s.publisher.Publish(ctx, events.NewEvent(events.MemberUpdated, tenantID, actorID, map[string]any{"userId": userID, "role": role}))

	m.Role = role
	return m, nil
}

func (s *Service) RemoveMember(ctx context.Context, tenantID, userID, actorID string) error {
	ctx, span := s.tracer.Start(ctx, "tenant.Service.RemoveMember")
	defer span.End()

	if _, err := s.modifiableMember(ctx, tenantID, userID); err != nil {
		return err
	}

	if err := s.storage.RemoveMember(ctx, tenantID, userID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return ErrMemberNotFound
		}
		return fmt.Errorf("failed to remove member: %w", err)
	}

	s.logger.Security().AdminAction(actorID, "remove_member", tenantID+"/"+userID)
	s.publisher.Publish(ctx, events.NewEvent(events.MemberRemoved, tenantID, actorID, map[string]any{"userId": userID}))

	return nil
}

// ListMembers resolves emails through the identity service; a failed lookup
// leaves the email empty.
func (s *Service) ListMembers(ctx context.Context, tenantID string, page, size int64) ([]*types.TenantUser, error) {
	ctx, span := s.tracer.Start(ctx, "tenant.Service.ListMembers")
	defer span.End()

	members, err := s.storage.ListMembersByTenantID(ctx, tenantID, page, size)
	if err != nil {
		return nil, fmt.Errorf("failed to list members: %w", err)
	}

	users := make([]*types.TenantUser, 0, len(members))
	for _, m := range members {
		email, err := s.identity.GetIdentityEmail(ctx, m.UserID)
		if err != nil {
			s.logger.Warnf("failed to get identity for member %s: %v", m.UserID, err)
		}

		users = append(users, &types.TenantUser{
			UserID:    m.UserID,
			Email:     email,
			Role:      m.Role,
			InvitedBy: m.InvitedBy,
			CreatedAt: m.CreatedAt,
		})
	}

	return users, nil
}

func (s *Service) modifiableMember(ctx context.Context, tenantID, userID string) (*types.Membership, error) {
	m, err := s.storage.GetMembership(ctx, tenantID, userID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrMemberNotFound
		}
		return nil, fmt.Errorf("failed to get member: %w", err)
	}

	if m.Role == types.RoleOwner {
		return nil, ErrCannotModifyOwner
	}

	return m, nil
}

func validateTenant(name, description string) error {
	if n := utf8.RuneCountInString(name); n == 0 || n > maxNameLength {
		return fmt.Errorf("%w: name must be 1 to %d characters", ErrInvalidTenant, maxNameLength)
	}

	return validateDescription(description)
}

func validateDescription(description string) error {
	if utf8.RuneCountInString(description) > maxDescriptionLength {
		return fmt.Errorf("%w: description must be at most %d characters", ErrInvalidTenant, maxDescriptionLength)
	}
	return nil
}
