// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/canonical/workspace-service/internal/db"
	"github.com/canonical/workspace-service/internal/types"
)

var membershipColumns = []string{"id", "tenant_id", "user_id", "role", "current", "invited_by", "created_at"}

func scanMembership(r rowScanner) (*types.Membership, error) {
	var m types.Membership
	if err := r.Scan(&m.ID, &m.TenantID, &m.UserID, &m.Role, &m.Current, &m.InvitedBy, &m.CreatedAt); err != nil {
		return nil, err
	}
	return &m, nil
}

func (s *Storage) AddMember(ctx context.Context, m *types.Membership) (*types.Membership, error) {
	ctx, span := s.tracer.Start(ctx, "storage.AddMember")
	defer span.End()

	id, err := newID()
	if err != nil {
		return nil, fmt.Errorf("failed to generate membership ID: %w", err)
	}

	row := s.db.Statement(ctx).
		Insert("memberships").
		Columns("id", "tenant_id", "user_id", "role", "current", "invited_by").
		Values(id, m.TenantID, m.UserID, m.Role, m.Current, m.InvitedBy).
		Suffix("RETURNING id, tenant_id, user_id, role, current, invited_by, created_at").
		QueryRowContext(ctx)

	created, err := scanMembership(row)
	if err != nil {
		return nil, wrapWriteError(err, "failed to add member")
	}

	return created, nil
}

func (s *Storage) GetMembership(ctx context.Context, tenantID, userID string) (*types.Membership, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetMembership")
	defer span.End()

	row := s.db.Statement(ctx).
		Select(membershipColumns...).
		From("memberships").
		Where(sq.Eq{"tenant_id": tenantID, "user_id": userID}).
		QueryRowContext(ctx)

	m, err := scanMembership(row)
	if err != nil {
		if isNoRows(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get membership: %w", err)
	}

	return m, nil
}

func (s *Storage) GetCurrentMembership(ctx context.Context, userID string) (*types.Membership, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetCurrentMembership")
	defer span.End()

	row := s.db.Statement(ctx).
		Select(membershipColumns...).
		From("memberships").
		Where(sq.Eq{"user_id": userID, "current": true}).
		QueryRowContext(ctx)

	m, err := scanMembership(row)
	if err != nil {
		if isNoRows(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get current membership: %w", err)
	}

	return m, nil
}

// LockUserMemberships takes row locks on all memberships of the user, so
// concurrent switches for the same user serialize. Must run inside WithTx.
func (s *Storage) LockUserMemberships(ctx context.Context, userID string) ([]*types.Membership, error) {
	ctx, span := s.tracer.Start(ctx, "storage.LockUserMemberships")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select(membershipColumns...).
		From("memberships").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("id").
		Suffix("FOR UPDATE").
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to lock memberships: %w", err)
	}
	defer rows.Close()

	memberships := make([]*types.Membership, 0)
	for rows.Next() {
		m, err := scanMembership(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan membership: %w", err)
		}
		memberships = append(memberships, m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return memberships, nil
}

func (s *Storage) ClearCurrentMemberships(ctx context.Context, userID string) error {
	ctx, span := s.tracer.Start(ctx, "storage.ClearCurrentMemberships")
	defer span.End()

	_, err := s.db.Statement(ctx).
		Update("memberships").
		Set("current", false).
		Where(sq.Eq{"user_id": userID, "current": true}).
		ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("failed to clear current membership: %w", err)
	}

	return nil
}

func (s *Storage) SetCurrentMembership(ctx context.Context, tenantID, userID string) error {
	ctx, span := s.tracer.Start(ctx, "storage.SetCurrentMembership")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Update("memberships").
		Set("current", true).
		Where(sq.Eq{"tenant_id": tenantID, "user_id": userID}).
		ExecContext(ctx)
	if err != nil {
		return wrapWriteError(err, "failed to set current membership")
	}

	return expectAffected(res, "set current membership")
}

func (s *Storage) ListMembersByTenantID(ctx context.Context, tenantID string, page, size int64) ([]*types.Membership, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListMembersByTenantID")
	defer span.End()

	pageSize := db.PageSize(size)

	rows, err := s.db.Statement(ctx).
		Select(membershipColumns...).
		From("memberships").
		Where(sq.Eq{"tenant_id": tenantID}).
		OrderBy("created_at ASC", "id ASC").
		Limit(pageSize).
		Offset(db.Offset(page, pageSize)).
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list members: %w", err)
	}
	defer rows.Close()

	members := make([]*types.Membership, 0)
	for rows.Next() {
		m, err := scanMembership(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan member: %w", err)
		}
		members = append(members, m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return members, nil
}

func (s *Storage) UpdateMemberRole(ctx context.Context, tenantID, userID string, role types.Role) error {
	ctx, span := s.tracer.Start(ctx, "storage.UpdateMemberRole")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Update("memberships").
		Set("role", role).
		Where(sq.Eq{"tenant_id": tenantID, "user_id": userID}).
		ExecContext(ctx)
	if err != nil {
		return wrapWriteError(err, "failed to update member")
	}

	return expectAffected(res, "update member")
}

func (s *Storage) RemoveMember(ctx context.Context, tenantID, userID string) error {
	ctx, span := s.tracer.Start(ctx, "storage.RemoveMember")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Delete("memberships").
		Where(sq.Eq{"tenant_id": tenantID, "user_id": userID}).
		ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("failed to remove member: %w", err)
	}

	return expectAffected(res, "remove member")
}

func (s *Storage) DeleteMembershipsByTenantID(ctx context.Context, tenantID string) error {
	ctx, span := s.tracer.Start(ctx, "storage.DeleteMembershipsByTenantID")
	defer span.End()

	_, err := s.db.Statement(ctx).
		Delete("memberships").
		Where(sq.Eq{"tenant_id": tenantID}).
		ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete memberships: %w", err)
	}

	return nil
}
