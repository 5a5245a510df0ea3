// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/canonical/workspace-service/internal/types"
)

var catalogColumns = []string{"id", "tenant_id", "vendor", "model_id", "display_name", "category", "source", "enabled", "retired_at", "created_at", "updated_at"}

func scanCatalogEntry(r rowScanner) (*types.CatalogEntry, error) {
	var (
		e       types.CatalogEntry
		retired sql.NullTime
	)
	if err := r.Scan(&e.ID, &e.TenantID, &e.Vendor, &e.ModelID, &e.DisplayName, &e.Category, &e.Source, &e.Enabled, &retired, &e.CreatedAt, &e.UpdatedAt); err != nil {
		return nil, err
	}
	e.RetiredAt = nullTime(retired)
	return &e, nil
}

func (s *Storage) ListCatalogEntries(ctx context.Context, tenantID string, filter types.CatalogFilter) ([]*types.CatalogEntry, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListCatalogEntries")
	defer span.End()

	where := sq.Eq{"tenant_id": tenantID}
	if filter.Vendor != "" {
		where["vendor"] = filter.Vendor
	}
	if filter.Category != "" {
		where["category"] = filter.Category
	}
	if filter.Source != "" {
		where["source"] = filter.Source
	}
	if filter.EnabledOnly {
		where["enabled"] = true
	}

	rows, err := s.db.Statement(ctx).
		Select(catalogColumns...).
		From("catalog_entries").
		Where(where).
		OrderBy("vendor ASC", "display_name ASC", "model_id ASC").
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list catalog entries: %w", err)
	}
	defer rows.Close()

	entries := make([]*types.CatalogEntry, 0)
	for rows.Next() {
		e, err := scanCatalogEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan catalog entry: %w", err)
		}
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return entries, nil
}

func (s *Storage) getCatalogEntry(ctx context.Context, where sq.Eq) (*types.CatalogEntry, error) {
	row := s.db.Statement(ctx).
		Select(catalogColumns...).
		From("catalog_entries").
		Where(where).
		QueryRowContext(ctx)

	e, err := scanCatalogEntry(row)
	if err != nil {
		if isNoRows(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get catalog entry: %w", err)
	}

	return e, nil
}

func (s *Storage) GetCatalogEntry(ctx context.Context, tenantID, id string) (*types.CatalogEntry, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetCatalogEntry")
	defer span.End()

	return s.getCatalogEntry(ctx, sq.Eq{"tenant_id": tenantID, "id": id})
}

func (s *Storage) GetCatalogEntryByModel(ctx context.Context, tenantID, vendor, modelID string) (*types.CatalogEntry, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetCatalogEntryByModel")
	defer span.End()

	return s.getCatalogEntry(ctx, sq.Eq{"tenant_id": tenantID, "vendor": vendor, "model_id": modelID})
}

func (s *Storage) InsertCatalogEntry(ctx context.Context, e *types.CatalogEntry) (*types.CatalogEntry, error) {
	ctx, span := s.tracer.Start(ctx, "storage.InsertCatalogEntry")
	defer span.End()

	id, err := newID()
	if err != nil {
		return nil, fmt.Errorf("failed to generate catalog entry ID: %w", err)
	}

	row := s.db.Statement(ctx).
		Insert("catalog_entries").
		Columns("id", "tenant_id", "vendor", "model_id", "display_name", "category", "source", "enabled").
		Values(id, e.TenantID, e.Vendor, e.ModelID, e.DisplayName, e.Category, e.Source, e.Enabled).
		Suffix("RETURNING id, tenant_id, vendor, model_id, display_name, category, source, enabled, retired_at, created_at, updated_at").
		QueryRowContext(ctx)

	created, err := scanCatalogEntry(row)
	if err != nil {
		return nil, wrapWriteError(err, "failed to insert catalog entry")
	}

	return created, nil
}

// InsertCatalogEntryIfAbsent inserts the entry unless (tenant, vendor, model)
// already exists. It reports whether a row was written.
func (s *Storage) InsertCatalogEntryIfAbsent(ctx context.Context, e *types.CatalogEntry) (bool, error) {
	ctx, span := s.tracer.Start(ctx, "storage.InsertCatalogEntryIfAbsent")
	defer span.End()

	id, err := newID()
	if err != nil {
		return false, fmt.Errorf("failed to generate catalog entry ID: %w", err)
	}

	res, err := s.db.Statement(ctx).
		Insert("catalog_entries").
		Columns("id", "tenant_id", "vendor", "model_id", "display_name", "category", "source", "enabled").
		Values(id, e.TenantID, e.Vendor, e.ModelID, e.DisplayName, e.Category, e.Source, e.Enabled).
		Suffix("ON CONFLICT (tenant_id, vendor, model_id) DO NOTHING").
		ExecContext(ctx)
	if err != nil {
		return false, wrapWriteError(err, "failed to insert catalog entry")
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to check rows affected: %w", err)
	}

	return n > 0, nil
}

// UpdateCatalogEntry updates the fields named in paths, following PATCH semantics.
func (s *Storage) UpdateCatalogEntry(ctx context.Context, e *types.CatalogEntry, paths []string) error {
	ctx, span := s.tracer.Start(ctx, "storage.UpdateCatalogEntry")
	defer span.End()

	updateMap := make(map[string]interface{})
	for _, p := range paths {
		switch p {
		case "displayName":
			updateMap["display_name"] = e.DisplayName
		case "category":
			updateMap["category"] = e.Category
		case "enabled":
			updateMap["enabled"] = e.Enabled
			// a user re-enabling an entry takes it out of retirement
			if e.Enabled {
				updateMap["retired_at"] = nil
			}
		}
	}

	if len(updateMap) == 0 {
		return nil
	}

	updateMap["updated_at"] = sq.Expr("NOW()")

	res, err := s.db.Statement(ctx).
		Update("catalog_entries").
		SetMap(updateMap).
		Where(sq.Eq{"tenant_id": e.TenantID, "id": e.ID}).
		ExecContext(ctx)
	if err != nil {
		return wrapWriteError(err, "failed to update catalog entry")
	}

	return expectAffected(res, "update catalog entry")
}

// RefreshAutoCatalogEntry rewrites vendor supplied metadata of an auto entry.
// With revive set, a retired entry is also re-enabled.
func (s *Storage) RefreshAutoCatalogEntry(ctx context.Context, e *types.CatalogEntry, revive bool) error {
	ctx, span := s.tracer.Start(ctx, "storage.RefreshAutoCatalogEntry")
	defer span.End()

	stmt := s.db.Statement(ctx).
		Update("catalog_entries").
		Set("display_name", e.DisplayName).
		Set("category", e.Category).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"tenant_id": e.TenantID, "vendor": e.Vendor, "model_id": e.ModelID, "source": types.SourceAuto})

	if revive {
		stmt = stmt.Set("enabled", true).Set("retired_at", nil)
	}

	res, err := stmt.ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("failed to refresh catalog entry: %w", err)
	}

	return expectAffected(res, "refresh catalog entry")
}

// RetireAutoCatalogEntry disables an enabled auto entry the vendor stopped
// listing. Disabled entries are left untouched; the boolean reports whether
// the row changed.
func (s *Storage) RetireAutoCatalogEntry(ctx context.Context, tenantID, vendor, modelID string) (bool, error) {
	ctx, span := s.tracer.Start(ctx, "storage.RetireAutoCatalogEntry")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Update("catalog_entries").
		Set("enabled", false).
		Set("retired_at", sq.Expr("NOW()")).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{
			"tenant_id": tenantID,
			"vendor":    vendor,
			"model_id":  modelID,
			"source":    types.SourceAuto,
			"enabled":   true,
		}).
		ExecContext(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to retire catalog entry: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to check rows affected: %w", err)
	}

	return n > 0, nil
}

func (s *Storage) DeleteCatalogEntry(ctx context.Context, tenantID, id string) error {
	ctx, span := s.tracer.Start(ctx, "storage.DeleteCatalogEntry")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Delete("catalog_entries").
		Where(sq.Eq{"tenant_id": tenantID, "id": id}).
		ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete catalog entry: %w", err)
	}

	return expectAffected(res, "delete catalog entry")
}

func (s *Storage) DeleteCatalogEntriesByVendor(ctx context.Context, tenantID, vendor string) (int64, error) {
	ctx, span := s.tracer.Start(ctx, "storage.DeleteCatalogEntriesByVendor")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Delete("catalog_entries").
		Where(sq.Eq{"tenant_id": tenantID, "vendor": vendor}).
		ExecContext(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to delete catalog entries: %w", err)
	}

	return res.RowsAffected()
}
