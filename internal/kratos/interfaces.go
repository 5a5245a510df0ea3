// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package kratos

import (
	"context"
)

// ClientInterface is the identity lookup used by the tenant directory.
type ClientInterface interface {
	GetIdentityIDByEmail(ctx context.Context, email string) (string, error)
	GetIdentityEmail(ctx context.Context, id string) (string, error)
}
