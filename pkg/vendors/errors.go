// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package vendors

import "errors"

var (
	ErrVendorUnreachable = errors.New("vendor unreachable")
	ErrInvalidCredential = errors.New("vendor rejected credential")
)
