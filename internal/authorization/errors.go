// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authorization

import (
	"errors"
	"fmt"

	"github.com/canonical/workspace-service/internal/types"
)

var (
	ErrMissingTenantContext = errors.New("no tenant selected")
	ErrNotAMember           = errors.New("not a member of this tenant")
	ErrInsufficientRole     = errors.New("insufficient role")
)

// InsufficientRoleError carries the roles that would have been accepted.
type InsufficientRoleError struct {
	Role       types.Role
	Required   types.Role
	Acceptable []types.Role
}

func (e *InsufficientRoleError) Error() string {
	return fmt.Sprintf("%s: role %q does not satisfy %q", ErrInsufficientRole, e.Role, e.Required)
}

func (e *InsufficientRoleError) Is(target error) bool {
	return target == ErrInsufficientRole
}

// IsAuthorizationError reports whether err is one of the pipeline failures.
func IsAuthorizationError(err error) bool {
	return errors.Is(err, ErrMissingTenantContext) ||
		errors.Is(err, ErrNotAMember) ||
		errors.Is(err, ErrInsufficientRole)
}
