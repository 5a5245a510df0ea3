// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package providers

import (
	"context"
	"errors"
	"fmt"

	"github.com/canonical/workspace-service/internal/events"
	"github.com/canonical/workspace-service/internal/storage"
	"github.com/canonical/workspace-service/internal/types"
	"github.com/canonical/workspace-service/pkg/vendors"
)

func (s *Service) ListSupportedVendors(ctx context.Context) []string {
	_, span := s.tracer.Start(ctx, "providers.Service.ListSupportedVendors")
	defer span.End()

	return s.vendors.Names()
}

// ListCredentialsSummary never decrypts anything.
func (s *Service) ListCredentialsSummary(ctx context.Context, tc *types.TenantContext) ([]*types.CredentialSummary, error) {
	ctx, span := s.tracer.Start(ctx, "providers.Service.ListCredentialsSummary")
	defer span.End()

	creds, err := s.storage.ListCredentials(ctx, tc.TenantID, false)
	if err != nil {
		return nil, fmt.Errorf("failed to list credentials: %w", err)
	}

	out := make([]*types.CredentialSummary, 0, len(creds))
	for _, c := range creds {
		out = append(out, &types.CredentialSummary{
			Vendor:          c.Vendor,
			IsValid:         c.IsValid,
			LastValidatedAt: c.LastValidatedAt,
		})
	}

	return out, nil
}

// SaveCredential probes the vendor with cfg and stores it only when the probe
// succeeds. The catalog is reconciled afterwards; a failed pass is logged and
// does not fail the save.
func (s *Service) SaveCredential(ctx context.Context, tc *types.TenantContext, vendor string, cfg *vendors.Config) (*types.CredentialSummary, error) {
	ctx, span := s.tracer.Start(ctx, "providers.Service.SaveCredential")
	defer span.End()

	adapter, ok := s.vendors.Get(vendor)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrVendorNotSupported, vendor)
	}

	if cfg == nil {
		return nil, fmt.Errorf("%w: missing configuration", ErrInvalidCredential)
	}

	if err := s.validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCredential, err)
	}

	probeCtx, cancel := context.WithTimeout(ctx, s.vendorTimeout)
	valid := adapter.Validate(probeCtx, cfg)
	cancel()

	if !valid {
		s.logger.Infof("rejected %s configuration for tenant %s", vendor, tc.TenantID)
		return nil, fmt.Errorf("%w: %s rejected the configuration", ErrInvalidCredential, vendor)
	}

	raw, err := cfg.Marshal()
	if err != nil {
		return nil, fmt.Errorf("failed to encode vendor configuration: %w", err)
	}

	sealed, err := s.encrypter.Encrypt(raw)
	if err != nil {
		return nil, fmt.Errorf("failed to encrypt vendor configuration: %w", err)
	}

	now := s.now().UTC()
	cred := &types.ProviderCredential{
		TenantID:        tc.TenantID,
		Vendor:          vendor,
		EncryptedConfig: sealed,
		IsValid:         true,
		LastValidatedAt: &now,
	}

	if err := s.storage.UpsertCredential(ctx, cred); err != nil {
		return nil, fmt.Errorf("failed to save credential: %w", err)
	}

	s.publisher.Publish(ctx, events.NewEvent(events.CredentialSaved, tc.TenantID, tc.UserID, map[string]any{"vendor": vendor}))

	if _, err := s.Reconcile(ctx, tc.TenantID); err != nil {
		s.logger.Errorf("failed to reconcile catalog after saving %s credential: %v", vendor, err)
	}

	return &types.CredentialSummary{Vendor: vendor, IsValid: true, LastValidatedAt: &now}, nil
}

// DeleteCredential removes the credential together with every catalog entry
// and binding of that vendor.
func (s *Service) DeleteCredential(ctx context.Context, tc *types.TenantContext, vendor string) error {
	ctx, span := s.tracer.Start(ctx, "providers.Service.DeleteCredential")
	defer span.End()

	if _, ok := s.vendors.Get(vendor); !ok {
		return fmt.Errorf("%w: %s", ErrVendorNotSupported, vendor)
	}

	var bindings, entries int64

	err := s.tx.WithTx(ctx, func(ctx context.Context) error {
		if _, err := s.storage.LockCredential(ctx, tc.TenantID, vendor, true); err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				return ErrCredentialNotFound
			}
			return fmt.Errorf("failed to lock credential: %w", err)
		}

		var err error

		if bindings, err = s.storage.DeleteModelSettingsByVendor(ctx, tc.TenantID, vendor); err != nil {
			return fmt.Errorf("failed to delete model settings: %w", err)
		}

		if entries, err = s.storage.DeleteCatalogEntriesByVendor(ctx, tc.TenantID, vendor); err != nil {
			return fmt.Errorf("failed to delete catalog entries: %w", err)
		}

		if err := s.storage.DeleteCredential(ctx, tc.TenantID, vendor); err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				return ErrCredentialNotFound
			}
			return fmt.Errorf("failed to delete credential: %w", err)
		}

		return nil
	})
	if err != nil {
		return err
	}

	s.logger.Infof("deleted %s credential for tenant %s with %d catalog entries and %d bindings", vendor, tc.TenantID, entries, bindings)
	s.publisher.Publish(ctx, events.NewEvent(events.CredentialDeleted, tc.TenantID, tc.UserID, map[string]any{"vendor": vendor}))

	return nil
}

// GetDecryptedConfig is a side-effect free read for features that call the
// vendor themselves.
func (s *Service) GetDecryptedConfig(ctx context.Context, tenantID, vendor string) (*vendors.Config, error) {
	ctx, span := s.tracer.Start(ctx, "providers.Service.GetDecryptedConfig")
	defer span.End()

	cred, err := s.storage.GetCredential(ctx, tenantID, vendor)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrCredentialNotFound
		}
		return nil, fmt.Errorf("failed to get credential: %w", err)
	}

	return s.decrypt(cred)
}

func (s *Service) decrypt(cred *types.ProviderCredential) (*vendors.Config, error) {
	raw, err := s.encrypter.Decrypt(cred.EncryptedConfig)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecryptFailed, err)
	}

	cfg, err := vendors.ParseConfig(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecryptFailed, err)
	}

	return cfg, nil
}
