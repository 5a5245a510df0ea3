// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/coreos/go-oidc/v3/oidc"

	"github.com/canonical/workspace-service/internal/logging"
	"github.com/canonical/workspace-service/internal/monitoring"
	"github.com/canonical/workspace-service/internal/tracing"
)

var ErrTokenNotAllowed = errors.New("subject not allowed and required scope missing")

type accessClaims struct {
	Subject string   `json:"sub"`
	Scope   string   `json:"scope"`
	Scopes  []string `json:"scp"`
}

func (c *accessClaims) hasScope(scope string) bool {
	return slices.Contains(strings.Fields(c.Scope), scope) || slices.Contains(c.Scopes, scope)
}

// accessPolicy restricts which issuer-signed tokens reach the API. With no
// restriction configured every token is accepted and tenant membership does
// the gating.
type accessPolicy struct {
	allowedSubjects []string
	requiredScope   string
}

func (p accessPolicy) allows(c *accessClaims) bool {
	if len(p.allowedSubjects) == 0 && p.requiredScope == "" {
		return true
	}

	if slices.Contains(p.allowedSubjects, c.Subject) {
		return true
	}

	return p.requiredScope != "" && c.hasScope(p.requiredScope)
}

// OIDCVerifier checks tokens against the issuer's signing keys.
type OIDCVerifier struct {
	verifier *oidc.IDTokenVerifier
	policy   accessPolicy

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (v *OIDCVerifier) VerifyToken(ctx context.Context, rawToken string) (string, error) {
	ctx, span := v.tracer.Start(ctx, "authentication.OIDCVerifier.VerifyToken")
	defer span.End()

	token, err := v.verifier.Verify(ctx, rawToken)
	if err != nil {
		return "", fmt.Errorf("failed to verify token: %w", err)
	}

	claims := new(accessClaims)
	if err := token.Claims(claims); err != nil {
		return "", fmt.Errorf("failed to read token claims: %w", err)
	}

	if claims.Subject == "" {
		return "", ErrMissingSubject
	}

	if !v.policy.allows(claims) {
		v.logger.Security().AuthzFailure(claims.Subject, "api_access")
		return "", ErrTokenNotAllowed
	}

	return claims.Subject, nil
}

func NewOIDCVerifier(
	verifier *oidc.IDTokenVerifier,
	allowedSubjects []string,
	requiredScope string,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *OIDCVerifier {
	v := new(OIDCVerifier)

	v.verifier = verifier
	v.policy = accessPolicy{allowedSubjects: allowedSubjects, requiredScope: requiredScope}

	v.tracer = tracer
	v.monitor = monitor
	v.logger = logger

	return v
}
