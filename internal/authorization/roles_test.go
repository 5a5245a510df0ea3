// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authorization

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/canonical/workspace-service/internal/types"
)

func TestSatisfies(t *testing.T) {
	roles := []types.Role{types.RoleNormal, types.RoleEditor, types.RoleAdmin, types.RoleOwner}

	for i, role := range roles {
		for j, required := range roles {
			assert.Equal(t, i >= j, Satisfies(role, required), "%s vs %s", role, required)
		}
	}

	assert.False(t, Satisfies("superuser", types.RoleNormal))
}

func TestAcceptableRoles(t *testing.T) {
	assert.Equal(t, []types.Role{types.RoleNormal, types.RoleEditor, types.RoleAdmin, types.RoleOwner}, AcceptableRoles(types.RoleNormal))
	assert.Equal(t, []types.Role{types.RoleAdmin, types.RoleOwner}, AcceptableRoles(types.RoleAdmin))
	assert.Equal(t, []types.Role{types.RoleOwner}, AcceptableRoles(types.RoleOwner))
	assert.Empty(t, AcceptableRoles("unknown"))
}

func TestCheckRole(t *testing.T) {
	assert.NoError(t, CheckRole(types.RoleEditor, types.RoleEditor))

	err := CheckRole(types.RoleNormal, types.RoleAdmin)
	assert.ErrorIs(t, err, ErrInsufficientRole)

	var roleErr *InsufficientRoleError
	assert.True(t, errors.As(err, &roleErr))
	assert.Equal(t, types.RoleNormal, roleErr.Role)
	assert.Equal(t, types.RoleAdmin, roleErr.Required)
	assert.Equal(t, []types.Role{types.RoleAdmin, types.RoleOwner}, roleErr.Acceptable)
}

func TestIsAuthorizationError(t *testing.T) {
	assert.True(t, IsAuthorizationError(ErrMissingTenantContext))
	assert.True(t, IsAuthorizationError(ErrNotAMember))
	assert.True(t, IsAuthorizationError(CheckRole(types.RoleNormal, types.RoleOwner)))
	assert.False(t, IsAuthorizationError(errors.New("db down")))
}
