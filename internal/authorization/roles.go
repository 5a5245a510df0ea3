// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authorization

import (
	"github.com/canonical/workspace-service/internal/types"
)

// hierarchy ranks roles, higher satisfies lower.
var hierarchy = []types.Role{
	types.RoleNormal,
	types.RoleEditor,
	types.RoleAdmin,
	types.RoleOwner,
}

func rank(r types.Role) int {
	for i, v := range hierarchy {
		if v == r {
			return i
		}
	}
	return -1
}

// AcceptableRoles lists every role satisfying required, lowest first.
func AcceptableRoles(required types.Role) []types.Role {
	min := rank(required)
	if min < 0 {
		return []types.Role{}
	}

	roles := make([]types.Role, 0, len(hierarchy)-min)
	roles = append(roles, hierarchy[min:]...)

	return roles
}

// Satisfies reports whether role ranks at least as high as required.
func Satisfies(role, required types.Role) bool {
	r := rank(role)
	return r >= 0 && r >= rank(required)
}

// CheckRole fails with *InsufficientRoleError when role is below required.
func CheckRole(role, required types.Role) error {
	if Satisfies(role, required) {
		return nil
	}

	return &InsufficientRoleError{
		Role:       role,
		Required:   required,
		Acceptable: AcceptableRoles(required),
	}
}
