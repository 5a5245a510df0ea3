// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package vendors

import (
	"context"

	"github.com/canonical/workspace-service/internal/types"
)

// AdapterInterface is the capability every vendor exposes.
type AdapterInterface interface {
	Name() string
	// Validate probes the vendor with cfg and never fails, unreachable or
	// rejected means false.
	Validate(ctx context.Context, cfg *Config) bool
	// GetModels returns the live listing. On failure, or when the listing
	// names no usable model, it returns the curated fallback list together
	// with an error wrapping ErrVendorUnreachable.
	GetModels(ctx context.Context, cfg *Config) ([]types.ModelDescriptor, error)
}

type RegistryInterface interface {
	Get(name string) (AdapterInterface, bool)
	Names() []string
}
