// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package tenant

import (
	"errors"

	"github.com/canonical/workspace-service/internal/authorization"
)

var (
	ErrTenantNotFound    = errors.New("tenant not found")
	ErrInvalidTenant     = errors.New("invalid tenant")
	ErrUserNotFound      = errors.New("no account matches this email")
	ErrAlreadyMember     = errors.New("user is already a member")
	ErrMemberNotFound    = errors.New("member not found")
	ErrCannotModifyOwner = errors.New("the owner membership cannot be modified")
	ErrInvalidRole       = errors.New("invalid role")

	// ErrNotAMember is shared with the authorization pipeline so both surface
	// the same way.
	ErrNotAMember = authorization.ErrNotAMember
)
