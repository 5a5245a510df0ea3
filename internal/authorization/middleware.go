// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authorization

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	httptypes "github.com/canonical/workspace-service/internal/http/types"
	"github.com/canonical/workspace-service/internal/logging"
	"github.com/canonical/workspace-service/internal/monitoring"
	"github.com/canonical/workspace-service/internal/tracing"
	"github.com/canonical/workspace-service/internal/types"
	"github.com/canonical/workspace-service/pkg/authentication"
)

const (
	TenantIDParam  = "tenantID"
	TenantIDHeader = "X-Tenant-ID"
)

type Middleware struct {
	authorizer AuthorizerInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// RequireRole resolves the caller's tenant scope, caches it on the request
// and rejects callers whose role ranks below min.
func (m *Middleware) RequireRole(min types.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, span := m.tracer.Start(r.Context(), "authorization.Middleware.RequireRole")
			defer span.End()

			userID, ok := authentication.GetUserID(ctx)
			if !ok || userID == "" {
				_ = httptypes.WriteError(w, http.StatusUnauthorized, "unauthenticated", nil)
				return
			}

			tenantID := requestedTenant(r)

			if tc, ok := TenantContextFrom(ctx); ok && tc.UserID == userID && (tenantID == "" || tenantID == tc.TenantID) {
				if err := CheckRole(tc.Role, min); err != nil {
					m.deny(w, r, userID, err)
					return
				}
				next.ServeHTTP(w, r.WithContext(ctx))
				return
			}

			tc, err := m.authorizer.Authorize(ctx, userID, tenantID, min)
			if err != nil {
				m.deny(w, r, userID, err)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithTenantContext(ctx, tc)))
		})
	}
}

func requestedTenant(r *http.Request) string {
	if id := chi.URLParam(r, TenantIDParam); id != "" {
		return id
	}
	return r.Header.Get(TenantIDHeader)
}

func (m *Middleware) deny(w http.ResponseWriter, r *http.Request, userID string, err error) {
	if !IsAuthorizationError(err) {
		m.logger.Errorf("failed to authorize request: %v", err)
		_ = httptypes.WriteError(w, http.StatusInternalServerError, "failed to authorize request", nil)
		return
	}

	m.logger.Security().AuthzFailure(userID, r.URL.Path)

	var roleErr *InsufficientRoleError
	if errors.As(err, &roleErr) {
		_ = httptypes.WriteError(w, http.StatusForbidden, ErrInsufficientRole.Error(), map[string]any{
			"role":            roleErr.Role,
			"requiredRole":    roleErr.Required,
			"acceptableRoles": roleErr.Acceptable,
		})
		return
	}

	_ = httptypes.WriteError(w, http.StatusForbidden, err.Error(), nil)
}

func NewMiddleware(authorizer AuthorizerInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Middleware {
	m := new(Middleware)
	m.authorizer = authorizer
	m.tracer = tracer
	m.monitor = monitor
	m.logger = logger

	return m
}
