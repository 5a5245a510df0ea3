// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/mock/gomock"
)

func signHS256(t *testing.T, secret string, claims jwt.RegisteredClaims) string {
	t.Helper()

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)

	return token
}

func TestHMACVerifier_VerifyToken(t *testing.T) {
	secret := "shared-secret"
	future := jwt.NewNumericDate(time.Now().Add(time.Hour))
	past := jwt.NewNumericDate(time.Now().Add(-time.Hour))

	tests := []struct {
		name        string
		token       func(t *testing.T) string
		issuer      string
		expectedSub string
		expectedErr bool
	}{
		{
			name: "valid token",
			token: func(t *testing.T) string {
				return signHS256(t, secret, jwt.RegisteredClaims{Subject: "user-1", ExpiresAt: future})
			},
			expectedSub: "user-1",
		},
		{
			name: "valid token with issuer",
			token: func(t *testing.T) string {
				return signHS256(t, secret, jwt.RegisteredClaims{Subject: "user-1", Issuer: "workspace", ExpiresAt: future})
			},
			issuer:      "workspace",
			expectedSub: "user-1",
		},
		{
			name: "wrong issuer",
			token: func(t *testing.T) string {
				return signHS256(t, secret, jwt.RegisteredClaims{Subject: "user-1", Issuer: "elsewhere", ExpiresAt: future})
			},
			issuer:      "workspace",
			expectedErr: true,
		},
		{
			name: "expired token",
			token: func(t *testing.T) string {
				return signHS256(t, secret, jwt.RegisteredClaims{Subject: "user-1", ExpiresAt: past})
			},
			expectedErr: true,
		},
		{
			name: "missing expiry",
			token: func(t *testing.T) string {
				return signHS256(t, secret, jwt.RegisteredClaims{Subject: "user-1"})
			},
			expectedErr: true,
		},
		{
			name: "wrong secret",
			token: func(t *testing.T) string {
				return signHS256(t, "other-secret", jwt.RegisteredClaims{Subject: "user-1", ExpiresAt: future})
			},
			expectedErr: true,
		},
		{
			name: "missing subject",
			token: func(t *testing.T) string {
				return signHS256(t, secret, jwt.RegisteredClaims{ExpiresAt: future})
			},
			expectedErr: true,
		},
		{
			name:        "garbage",
			token:       func(*testing.T) string { return "not-a-jwt" },
			expectedErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockTracer := NewMockTracingInterface(ctrl)
			mockTracer.EXPECT().Start(gomock.Any(), "authentication.HMACVerifier.VerifyToken").Return(context.Background(), trace.SpanFromContext(context.Background()))

			v := NewHMACVerifier(secret, tt.issuer, mockTracer, NewMockMonitorInterface(ctrl), NewMockLoggerInterface(ctrl))

			sub, err := v.VerifyToken(context.Background(), tt.token(t))
			if tt.expectedErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expectedSub, sub)
		})
	}
}

func TestNewAuthenticatorUnsupportedMode(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	_, err := NewAuthenticator(context.Background(), "basic", "", "", "", nil, "", NewMockTracingInterface(ctrl), NewMockMonitorInterface(ctrl), NewMockLoggerInterface(ctrl))
	assert.Error(t, err)
}

func TestNewAuthenticatorHMACRequiresSecret(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	_, err := NewAuthenticator(context.Background(), ModeHMAC, "", "", "", nil, "", NewMockTracingInterface(ctrl), NewMockMonitorInterface(ctrl), NewMockLoggerInterface(ctrl))
	assert.Error(t, err)
}

func TestIssueHMACToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockTracer := NewMockTracingInterface(ctrl)
	mockTracer.EXPECT().Start(gomock.Any(), "authentication.HMACVerifier.VerifyToken").Return(context.Background(), trace.SpanFromContext(context.Background()))

	token, err := IssueHMACToken("shared-secret", "workspace", "user-123", time.Minute)
	require.NoError(t, err)

	v := NewHMACVerifier("shared-secret", "workspace", mockTracer, NewMockMonitorInterface(ctrl), NewMockLoggerInterface(ctrl))
	sub, err := v.VerifyToken(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, "user-123", sub)

	_, err = IssueHMACToken("", "workspace", "user-123", time.Minute)
	assert.Error(t, err)

	_, err = IssueHMACToken("shared-secret", "workspace", "", time.Minute)
	assert.ErrorIs(t, err, ErrMissingSubject)
}
