// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package providers

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/canonical/workspace-service/internal/events"
	"github.com/canonical/workspace-service/internal/storage"
	"github.com/canonical/workspace-service/internal/types"
	"github.com/canonical/workspace-service/pkg/vendors"
)

// VendorReport summarises one vendor's share of a reconciliation pass.
type VendorReport struct {
	Vendor   string `json:"vendor"`
	Mode     string `json:"mode,omitempty"`
	Skipped  bool   `json:"skipped"`
	Error    string `json:"error,omitempty"`
	Inserted int    `json:"inserted"`
	Updated  int    `json:"updated"`
	Retired  int    `json:"retired"`
}

type ReconcileReport struct {
	TenantID string          `json:"tenantId"`
	Vendors  []*VendorReport `json:"vendors"`
}

func (r *ReconcileReport) Changed() bool {
	for _, v := range r.Vendors {
		if v.Inserted+v.Updated+v.Retired > 0 {
			return true
		}
	}
	return false
}

type CustomModel struct {
	Vendor      string              `json:"vendor" validate:"required"`
	ModelID     string              `json:"modelId" validate:"required,max=200"`
	DisplayName string              `json:"displayName" validate:"max=200"`
	Category    types.ModelCategory `json:"category" validate:"required"`
}

// ModelPatch carries the optional fields of a catalog update.
type ModelPatch struct {
	Enabled     *bool                `json:"enabled,omitempty"`
	DisplayName *string              `json:"displayName,omitempty"`
	Category    *types.ModelCategory `json:"category,omitempty"`
}

type fetchResult struct {
	vendor    string
	updatedAt time.Time
	models    []types.ModelDescriptor
	mode      DiffMode
	skipped   bool
	err       error
}

// Reconcile syncs the tenant's auto entries with what every valid credential
// currently reports. Vendors are queried in parallel; a vendor that fails
// without a usable listing is skipped and its rows are left untouched. All
// writes of the pass commit together.
func (s *Service) Reconcile(ctx context.Context, tenantID string) (*ReconcileReport, error) {
	ctx, span := s.tracer.Start(ctx, "providers.Service.Reconcile")
	defer span.End()

	creds, err := s.storage.ListCredentials(ctx, tenantID, true)
	if err != nil {
		return nil, fmt.Errorf("failed to list credentials: %w", err)
	}

	results := make([]*fetchResult, len(creds))

	g := new(errgroup.Group)
	g.SetLimit(s.concurrency)

	for i, cred := range creds {
		g.Go(func() error {
			results[i] = s.fetch(ctx, cred)
			return nil
		})
	}

	_ = g.Wait()

	report := &ReconcileReport{TenantID: tenantID, Vendors: make([]*VendorReport, 0, len(results))}

	err = s.tx.WithTx(ctx, func(ctx context.Context) error {
		report.Vendors = report.Vendors[:0]

		for _, res := range results {
			vr := &VendorReport{Vendor: res.vendor, Skipped: res.skipped}
			if res.err != nil {
				vr.Error = res.err.Error()
			}
			report.Vendors = append(report.Vendors, vr)

			if res.skipped {
				continue
			}

			// the credential may have been deleted or replaced while vendors were queried
			cur, err := s.storage.LockCredential(ctx, tenantID, res.vendor, false)
			switch {
			case errors.Is(err, storage.ErrNotFound):
				vr.Skipped, vr.Error = true, ErrCredentialChanged.Error()
				continue
			case err != nil:
				return fmt.Errorf("failed to lock %s credential: %w", res.vendor, err)
			case !cur.IsValid || !cur.UpdatedAt.Equal(res.updatedAt):
				vr.Skipped, vr.Error = true, ErrCredentialChanged.Error()
				continue
			}

			vr.Mode = res.mode.String()

			existing, err := s.storage.ListCatalogEntries(ctx, tenantID, types.CatalogFilter{Vendor: res.vendor})
			if err != nil {
				return fmt.Errorf("failed to load %s catalog: %w", res.vendor, err)
			}

			if err := s.apply(ctx, tenantID, Diff(res.vendor, res.models, existing, res.mode), vr); err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	if report.Changed() {
		s.publisher.Publish(ctx, events.NewEvent(events.CatalogReconciled, tenantID, "", map[string]any{"vendors": report.Vendors}))
	}

	return report, nil
}

func (s *Service) fetch(ctx context.Context, cred *types.ProviderCredential) *fetchResult {
	res := &fetchResult{vendor: cred.Vendor, updatedAt: cred.UpdatedAt}

	adapter, ok := s.vendors.Get(cred.Vendor)
	if !ok {
		s.logger.Warnf("skipping credential for unsupported vendor %s", cred.Vendor)
		res.skipped, res.err = true, ErrVendorNotSupported
		return res
	}

	cfg, err := s.decrypt(cred)
	if err != nil {
		s.logger.Errorf("skipping %s for tenant %s: %v", cred.Vendor, cred.TenantID, err)
		res.skipped, res.err = true, err
		return res
	}

	ctx, cancel := context.WithTimeout(ctx, s.vendorTimeout)
	defer cancel()

	models, err := adapter.GetModels(ctx, cfg)
	switch {
	case err == nil:
		res.models, res.mode = models, DiffLive
	case errors.Is(err, vendors.ErrVendorUnreachable) && len(models) > 0:
		s.logger.Warnf("using curated %s models for tenant %s: %v", cred.Vendor, cred.TenantID, err)
		res.models, res.mode, res.err = models, DiffFallback, err
	default:
		s.logger.Warnf("skipping %s for tenant %s: %v", cred.Vendor, cred.TenantID, err)
		res.skipped, res.err = true, err
	}

	return res
}

func (s *Service) apply(ctx context.Context, tenantID string, plan *Plan, vr *VendorReport) error {
	for _, m := range plan.Insert {
		inserted, err := s.storage.InsertCatalogEntryIfAbsent(ctx, &types.CatalogEntry{
			TenantID:    tenantID,
			Vendor:      plan.Vendor,
			ModelID:     m.ID,
			DisplayName: m.DisplayName,
			Category:    m.Category,
			Source:      types.SourceAuto,
			Enabled:     true,
		})
		if err != nil {
			return fmt.Errorf("failed to insert %s/%s: %w", plan.Vendor, m.ID, err)
		}
		if inserted {
			vr.Inserted++
		}
	}

	for _, r := range plan.Refresh {
		err := s.storage.RefreshAutoCatalogEntry(ctx, &types.CatalogEntry{
			TenantID:    tenantID,
			Vendor:      plan.Vendor,
			ModelID:     r.Model.ID,
			DisplayName: r.Model.DisplayName,
			Category:    r.Model.Category,
		}, r.Revive)

		switch {
		case err == nil:
			vr.Updated++
		case errors.Is(err, storage.ErrNotFound):
			// removed by a concurrent credential deletion
		default:
			return fmt.Errorf("failed to refresh %s/%s: %w", plan.Vendor, r.Model.ID, err)
		}
	}

	for _, modelID := range plan.Retire {
		retired, err := s.storage.RetireAutoCatalogEntry(ctx, tenantID, plan.Vendor, modelID)
		if err != nil {
			return fmt.Errorf("failed to retire %s/%s: %w", plan.Vendor, modelID, err)
		}
		if !retired {
			continue
		}

		vr.Retired++

		if _, err := s.storage.DeleteModelSettingsForModel(ctx, tenantID, plan.Vendor, modelID); err != nil {
			return fmt.Errorf("failed to unbind %s/%s: %w", plan.Vendor, modelID, err)
		}
	}

	return nil
}

// reconcileQuietly runs a pass before a read; the read still succeeds when
// the pass fails.
func (s *Service) reconcileQuietly(ctx context.Context, tenantID string) {
	if _, err := s.Reconcile(ctx, tenantID); err != nil {
		s.logger.Errorf("failed to reconcile catalog for tenant %s: %v", tenantID, err)
	}
}

// GetCatalog reconciles and returns the tenant's entries ordered by vendor
// then display name. Disabled entries are only included on request.
func (s *Service) GetCatalog(ctx context.Context, tc *types.TenantContext, includeDisabled bool) ([]*types.CatalogEntry, error) {
	ctx, span := s.tracer.Start(ctx, "providers.Service.GetCatalog")
	defer span.End()

	s.reconcileQuietly(ctx, tc.TenantID)

	entries, err := s.storage.ListCatalogEntries(ctx, tc.TenantID, types.CatalogFilter{EnabledOnly: !includeDisabled})
	if err != nil {
		return nil, fmt.Errorf("failed to list catalog: %w", err)
	}

	return entries, nil
}

func (s *Service) GetAvailableModels(ctx context.Context, tc *types.TenantContext, category types.ModelCategory) ([]*types.CatalogEntry, error) {
	ctx, span := s.tracer.Start(ctx, "providers.Service.GetAvailableModels")
	defer span.End()

	if category != "" && !category.Valid() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidCategory, category)
	}

	s.reconcileQuietly(ctx, tc.TenantID)

	entries, err := s.storage.ListCatalogEntries(ctx, tc.TenantID, types.CatalogFilter{Category: category, EnabledOnly: true})
	if err != nil {
		return nil, fmt.Errorf("failed to list models: %w", err)
	}

	return entries, nil
}

func (s *Service) CreateCustomModel(ctx context.Context, tc *types.TenantContext, m *CustomModel) (*types.CatalogEntry, error) {
	ctx, span := s.tracer.Start(ctx, "providers.Service.CreateCustomModel")
	defer span.End()

	if _, ok := s.vendors.Get(m.Vendor); !ok {
		return nil, fmt.Errorf("%w: %s", ErrVendorNotSupported, m.Vendor)
	}

	if !m.Category.Valid() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidCategory, m.Category)
	}

	modelID := strings.TrimSpace(m.ModelID)
	if modelID == "" {
		return nil, fmt.Errorf("%w: model id is required", ErrInvalidModel)
	}

	name := strings.TrimSpace(m.DisplayName)
	if name == "" {
		name = modelID
	}

	entry, err := s.storage.InsertCatalogEntry(ctx, &types.CatalogEntry{
		TenantID:    tc.TenantID,
		Vendor:      m.Vendor,
		ModelID:     modelID,
		DisplayName: name,
		Category:    m.Category,
		Source:      types.SourceCustom,
		Enabled:     true,
	})
	if err != nil {
		if errors.Is(err, storage.ErrDuplicateKey) {
			return nil, fmt.Errorf("%w: %s/%s", ErrModelAlreadyExists, m.Vendor, modelID)
		}
		return nil, fmt.Errorf("failed to create model: %w", err)
	}

	return entry, nil
}

// UpdateTenantModel applies patch. Auto entries only accept enabled changes;
// disabling any entry drops the bindings that point at it.
func (s *Service) UpdateTenantModel(ctx context.Context, tc *types.TenantContext, id string, patch *ModelPatch) (*types.CatalogEntry, error) {
	ctx, span := s.tracer.Start(ctx, "providers.Service.UpdateTenantModel")
	defer span.End()

	if patch == nil {
		patch = new(ModelPatch)
	}

	if patch.Category != nil && !patch.Category.Valid() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidCategory, *patch.Category)
	}

	var updated *types.CatalogEntry

	err := s.tx.WithTx(ctx, func(ctx context.Context) error {
		entry, err := s.getEntry(ctx, tc.TenantID, id)
		if err != nil {
			return err
		}

		if entry.Source == types.SourceAuto && (patch.DisplayName != nil || patch.Category != nil) {
			return ErrAutoModelReadOnly
		}

		paths := make([]string, 0, 3)
		if patch.DisplayName != nil {
			name := strings.TrimSpace(*patch.DisplayName)
			if name == "" {
				name = entry.ModelID
			}
			entry.DisplayName = name
			paths = append(paths, "displayName")
		}
		if patch.Category != nil {
			entry.Category = *patch.Category
			paths = append(paths, "category")
		}
		if patch.Enabled != nil {
			entry.Enabled = *patch.Enabled
			paths = append(paths, "enabled")
		}

		if len(paths) > 0 {
			if err := s.storage.UpdateCatalogEntry(ctx, entry, paths); err != nil {
				return fmt.Errorf("failed to update model: %w", err)
			}
		}

		if patch.Enabled != nil && !*patch.Enabled {
			if _, err := s.storage.DeleteModelSettingsForModel(ctx, tc.TenantID, entry.Vendor, entry.ModelID); err != nil {
				return fmt.Errorf("failed to unbind model: %w", err)
			}
		}

		updated, err = s.getEntry(ctx, tc.TenantID, id)
		return err
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

func (s *Service) DeleteTenantModel(ctx context.Context, tc *types.TenantContext, id string) error {
	ctx, span := s.tracer.Start(ctx, "providers.Service.DeleteTenantModel")
	defer span.End()

	return s.tx.WithTx(ctx, func(ctx context.Context) error {
		entry, err := s.getEntry(ctx, tc.TenantID, id)
		if err != nil {
			return err
		}

		if entry.Source != types.SourceCustom {
			return ErrCannotDeleteAutoModel
		}

		if _, err := s.storage.DeleteModelSettingsForModel(ctx, tc.TenantID, entry.Vendor, entry.ModelID); err != nil {
			return fmt.Errorf("failed to unbind model: %w", err)
		}

		if err := s.storage.DeleteCatalogEntry(ctx, tc.TenantID, id); err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				return ErrModelNotFound
			}
			return fmt.Errorf("failed to delete model: %w", err)
		}

		return nil
	})
}

func (s *Service) getEntry(ctx context.Context, tenantID, id string) (*types.CatalogEntry, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, ErrModelNotFound
	}

	entry, err := s.storage.GetCatalogEntry(ctx, tenantID, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrModelNotFound
		}
		return nil, fmt.Errorf("failed to get model: %w", err)
	}

	return entry, nil
}
