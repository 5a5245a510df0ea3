// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/canonical/workspace-service/internal/db"
	"github.com/canonical/workspace-service/internal/logging"
	"github.com/canonical/workspace-service/internal/monitoring"
	"github.com/canonical/workspace-service/internal/tracing"
	"github.com/canonical/workspace-service/internal/types"
)

var _ StorageInterface = (*Storage)(nil)

var tenantColumns = []string{"id", "name", "description", "plan", "status", "owner_id", "created_at", "updated_at"}

type Storage struct {
	db db.DBClientInterface

	logger  logging.LoggerInterface
	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
}

func NewStorage(c db.DBClientInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Storage {
	s := new(Storage)

	s.db = c

	s.logger = logger
	s.tracer = tracer
	s.monitor = monitor

	return s
}

func newID() (string, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", err
	}
	return id.String(), nil
}

func nullTime(t sql.NullTime) *time.Time {
	if !t.Valid {
		return nil
	}
	v := t.Time
	return &v
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTenant(r rowScanner, extra ...any) (*types.Tenant, error) {
	var t types.Tenant
	dest := append([]any{&t.ID, &t.Name, &t.Description, &t.Plan, &t.Status, &t.OwnerID, &t.CreatedAt, &t.UpdatedAt}, extra...)
	if err := r.Scan(dest...); err != nil {
		return nil, err
	}
	return &t, nil
}

func (s *Storage) CreateTenant(ctx context.Context, t *types.Tenant) (*types.Tenant, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateTenant")
	defer span.End()

	id, err := newID()
	if err != nil {
		return nil, fmt.Errorf("failed to generate tenant ID: %w", err)
	}

	plan, status := t.Plan, t.Status
	if plan == "" {
		plan = types.DefaultPlan
	}
	if status == "" {
		status = types.DefaultStatus
	}

	row := s.db.Statement(ctx).
		Insert("tenants").
		Columns("id", "name", "description", "plan", "status", "owner_id").
		Values(id, t.Name, t.Description, plan, status, t.OwnerID).
		Suffix("RETURNING id, name, description, plan, status, owner_id, created_at, updated_at").
		QueryRowContext(ctx)

	created, err := scanTenant(row)
	if err != nil {
		return nil, wrapWriteError(err, "failed to insert tenant")
	}

	return created, nil
}

func (s *Storage) GetTenantByID(ctx context.Context, id string) (*types.Tenant, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetTenantByID")
	defer span.End()

	row := s.db.Statement(ctx).
		Select(tenantColumns...).
		From("tenants").
		Where(sq.Eq{"id": id}).
		QueryRowContext(ctx)

	t, err := scanTenant(row)
	if err != nil {
		if isNoRows(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get tenant: %w", err)
	}

	return t, nil
}

// ListTenantsByUserID returns every tenant the user belongs to, with the
// user's role and current flag, oldest membership first.
func (s *Storage) ListTenantsByUserID(ctx context.Context, userID string) ([]*types.UserTenant, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListTenantsByUserID")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select("t.id", "t.name", "t.description", "t.plan", "t.status", "t.owner_id", "t.created_at", "t.updated_at", "m.role", "m.current").
		From("tenants t").
		Join("memberships m ON t.id = m.tenant_id").
		Where(sq.Eq{"m.user_id": userID}).
		OrderBy("m.created_at ASC").
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list tenants: %w", err)
	}
	defer rows.Close()

	tenants := make([]*types.UserTenant, 0)
	for rows.Next() {
		var (
			role    types.Role
			current bool
		)
		t, err := scanTenant(rows, &role, &current)
		if err != nil {
			return nil, fmt.Errorf("failed to scan tenant: %w", err)
		}
		tenants = append(tenants, &types.UserTenant{Tenant: *t, Role: role, Current: current})
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return tenants, nil
}

// UpdateTenant updates the fields named in paths, following PATCH semantics.
func (s *Storage) UpdateTenant(ctx context.Context, tenant *types.Tenant, paths []string) error {
	ctx, span := s.tracer.Start(ctx, "storage.UpdateTenant")
	defer span.End()

	updateMap := make(map[string]interface{})
	for _, p := range paths {
		switch p {
		case "name":
			updateMap["name"] = tenant.Name
		case "description":
			updateMap["description"] = tenant.Description
		case "plan":
			updateMap["plan"] = tenant.Plan
		case "status":
			updateMap["status"] = tenant.Status
		}
	}

	if len(updateMap) == 0 {
		return nil
	}

	updateMap["updated_at"] = sq.Expr("NOW()")

	res, err := s.db.Statement(ctx).
		Update("tenants").
		SetMap(updateMap).
		Where(sq.Eq{"id": tenant.ID}).
		ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("failed to update tenant: %w", err)
	}

	return expectAffected(res, "update tenant")
}

func (s *Storage) DeleteTenant(ctx context.Context, id string) error {
	ctx, span := s.tracer.Start(ctx, "storage.DeleteTenant")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Delete("tenants").
		Where(sq.Eq{"id": id}).
		ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete tenant: %w", err)
	}

	return expectAffected(res, "delete tenant")
}
