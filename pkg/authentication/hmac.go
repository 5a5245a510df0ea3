// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/canonical/workspace-service/internal/logging"
	"github.com/canonical/workspace-service/internal/monitoring"
	"github.com/canonical/workspace-service/internal/tracing"
)

var ErrMissingSubject = errors.New("token has no subject")

// HMACVerifier accepts HS256 tokens signed with a shared secret, as issued by
// the first-party login flow.
type HMACVerifier struct {
	secret []byte
	issuer string

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (v *HMACVerifier) VerifyToken(ctx context.Context, rawToken string) (string, error) {
	_, span := v.tracer.Start(ctx, "authentication.HMACVerifier.VerifyToken")
	defer span.End()

	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	}
	if v.issuer != "" {
		opts = append(opts, jwt.WithIssuer(v.issuer))
	}

	claims := new(jwt.RegisteredClaims)
	token, err := jwt.ParseWithClaims(rawToken, claims, func(*jwt.Token) (interface{}, error) {
		return v.secret, nil
	}, opts...)
	if err != nil {
		return "", fmt.Errorf("failed to parse token: %w", err)
	}

	if !token.Valid {
		return "", fmt.Errorf("invalid token")
	}

	if claims.Subject == "" {
		return "", ErrMissingSubject
	}

	return claims.Subject, nil
}

func NewHMACVerifier(secret, issuer string, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *HMACVerifier {
	v := new(HMACVerifier)

	v.secret = []byte(secret)
	v.issuer = issuer

	v.tracer = tracer
	v.monitor = monitor
	v.logger = logger

	return v
}

// IssueHMACToken signs a short lived HS256 token for subject, accepted by an
// HMACVerifier configured with the same secret and issuer.
func IssueHMACToken(secret, issuer, subject string, ttl time.Duration) (string, error) {
	if secret == "" {
		return "", errors.New("secret is required")
	}
	if subject == "" {
		return "", ErrMissingSubject
	}

	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   subject,
		Issuer:    issuer,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}
