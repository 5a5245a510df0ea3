// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package webhooks

// RegistrationPayload is the body Kratos posts after a registration.
type RegistrationPayload struct {
	IdentityID string `json:"identity_id"`
	Email      string `json:"email"`
	Name       string `json:"name"`
}

type TokenHookSession struct {
	IDToken     map[string]any `json:"id_token,omitempty"`
	AccessToken map[string]any `json:"access_token,omitempty"`
}

// TokenHookResponse carries the claims Hydra merges into the issued tokens.
type TokenHookResponse struct {
	Session TokenHookSession `json:"session"`
}

const (
	ClaimTenantID   = "tenant_id"
	ClaimTenantRole = "tenant_role"
	ClaimTenants    = "tenants"
)
