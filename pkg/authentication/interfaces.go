// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"
)

// TokenVerifierInterface turns a bearer token into the caller's user id.
type TokenVerifierInterface interface {
	VerifyToken(ctx context.Context, rawToken string) (string, error)
}
