// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package providers

import (
	"errors"

	"github.com/canonical/workspace-service/pkg/vendors"
)

var (
	ErrVendorNotSupported    = errors.New("vendor not supported")
	ErrInvalidCredential     = errors.New("invalid vendor configuration")
	ErrCredentialNotFound    = errors.New("vendor credential not found")
	ErrModelAlreadyExists    = errors.New("model already exists")
	ErrInvalidCategory       = errors.New("invalid model category")
	ErrCannotDeleteAutoModel = errors.New("auto-discovered models cannot be deleted")
	ErrAutoModelReadOnly     = errors.New("auto-discovered models only accept enabled changes")
	ErrModelNotFound         = errors.New("model not found")
	ErrInvalidModel          = errors.New("invalid model")
	ErrDecryptFailed         = errors.New("failed to decrypt vendor configuration")
	ErrSettingNotFound       = errors.New("model setting not found")
	ErrCredentialChanged     = errors.New("credential removed or replaced during reconciliation")

	// ErrVendorUnreachable is re-exported for callers that only import providers.
	ErrVendorUnreachable = vendors.ErrVendorUnreachable
)
