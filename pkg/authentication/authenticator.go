// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/coreos/go-oidc/v3/oidc"

	"github.com/canonical/workspace-service/internal/logging"
	"github.com/canonical/workspace-service/internal/monitoring"
	"github.com/canonical/workspace-service/internal/tracing"
)

const (
	ModeOIDC = "oidc"
	ModeHMAC = "hmac"
)

// newIDTokenVerifier uses the JWKS URL when given, otherwise the keys found
// through OIDC discovery on the issuer.
func newIDTokenVerifier(ctx context.Context, issuer, jwksURL string) (*oidc.IDTokenVerifier, error) {
	ctx = oidc.ClientContext(ctx, &http.Client{Transport: tracing.NewTransport(http.DefaultTransport)})

	config := &oidc.Config{SkipClientIDCheck: true}

	if jwksURL != "" {
		return oidc.NewVerifier(issuer, oidc.NewRemoteKeySet(ctx, jwksURL), config), nil
	}

	provider, err := oidc.NewProvider(ctx, issuer)
	if err != nil {
		return nil, fmt.Errorf("failed to discover issuer %s: %w", issuer, err)
	}

	return provider.Verifier(config), nil
}

// NewAuthenticator picks the verifier for the configured mode: "oidc" verifies
// tokens against the issuer keys, "hmac" against a shared secret.
func NewAuthenticator(
	ctx context.Context,
	mode string,
	issuer string,
	jwksURL string,
	secret string,
	allowedSubjects []string,
	requiredScope string,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) (TokenVerifierInterface, error) {
	switch mode {
	case ModeOIDC:
		if issuer == "" {
			return nil, errors.New("issuer is required for OIDC authentication")
		}

		verifier, err := newIDTokenVerifier(ctx, issuer, jwksURL)
		if err != nil {
			return nil, err
		}

		logger.Infof("OIDC authentication is enabled for issuer %s", issuer)
		return NewOIDCVerifier(verifier, allowedSubjects, requiredScope, tracer, monitor, logger), nil
	case ModeHMAC:
		if secret == "" {
			return nil, errors.New("secret is required for HMAC authentication")
		}

		logger.Info("HMAC authentication is enabled")
		return NewHMACVerifier(secret, issuer, tracer, monitor, logger), nil
	default:
		return nil, fmt.Errorf("unsupported authentication mode %q", mode)
	}
}
