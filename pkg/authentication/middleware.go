// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"net/http"
	"strings"

	httptypes "github.com/canonical/workspace-service/internal/http/types"
	"github.com/canonical/workspace-service/internal/logging"
	"github.com/canonical/workspace-service/internal/monitoring"
	"github.com/canonical/workspace-service/internal/tracing"
)

type Middleware struct {
	verifier TokenVerifierInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// Authenticate rejects requests without a valid bearer token and stores the
// token subject as the caller's user id.
func (m *Middleware) Authenticate() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, span := m.tracer.Start(r.Context(), "authentication.Middleware.Authenticate")
			defer span.End()

			token, found := m.getBearerToken(r.Header)
			if !found {
				m.unauthorized(w, "missing bearer token")
				return
			}

			userID, err := m.verifier.VerifyToken(ctx, token)
			if err != nil {
				m.logger.Debugf("token verification failed: %v", err)
				m.logger.Security().AuthnFailure("", "invalid bearer token")
				m.unauthorized(w, "invalid token")
				return
			}

			if userID == "" {
				m.logger.Security().AuthnFailure("", "token without subject")
				m.unauthorized(w, "invalid token")
				return
			}

			next.ServeHTTP(w, r.WithContext(WithUserID(ctx, userID)))
		})
	}
}

// getBearerToken accepts only the RFC 6750 "Bearer <token>" form.
func (m *Middleware) getBearerToken(headers http.Header) (string, bool) {
	token, found := strings.CutPrefix(headers.Get("Authorization"), "Bearer ")
	if !found || token == "" {
		return "", false
	}

	return token, true
}

func (m *Middleware) unauthorized(w http.ResponseWriter, message string) {
	w.Header().Set("WWW-Authenticate", `Bearer realm="workspace"`)
	if err := httptypes.WriteError(w, http.StatusUnauthorized, message, nil); err != nil {
		m.logger.Errorf("failed to write unauthorized response: %v", err)
	}
}

func NewMiddleware(verifier TokenVerifierInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Middleware {
	m := new(Middleware)

	m.verifier = verifier

	m.tracer = tracer
	m.monitor = monitor
	m.logger = logger

	return m
}
