// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package identity

import (
	"net/http"

	httptypes "github.com/canonical/workspace-service/internal/http/types"
	"github.com/canonical/workspace-service/internal/logging"
	"github.com/canonical/workspace-service/internal/monitoring"
	"github.com/canonical/workspace-service/internal/tracing"
	"github.com/canonical/workspace-service/pkg/authentication"
)

// HeaderName carries the identity an upstream gateway already authenticated.
const HeaderName = "X-Kratos-Authenticated-Identity-Id"

// Middleware trusts the gateway header instead of verifying a bearer token.
// It is only mounted when token authentication is disabled.
type Middleware struct {
	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewMiddleware(tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Middleware {
	return &Middleware{
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}

func (m *Middleware) HTTPMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, span := m.tracer.Start(r.Context(), "identity.Middleware.HTTPMiddleware")
		defer span.End()

		userID := r.Header.Get(HeaderName)
		if userID == "" {
			m.logger.Security().AuthnFailure("", "missing identity header")
			_ = httptypes.WriteError(w, http.StatusUnauthorized, "missing identity", nil)
			return
		}

		next.ServeHTTP(w, r.WithContext(authentication.WithUserID(ctx, userID)))
	})
}
