// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authorization

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/mock/gomock"

	"github.com/canonical/workspace-service/internal/types"
	"github.com/canonical/workspace-service/pkg/authentication"
)

func TestMiddleware_RequireRole(t *testing.T) {
	resolved := &types.TenantContext{TenantID: testTenantID, UserID: testUserID, Role: types.RoleAdmin}

	testCases := []struct {
		name           string
		userID         string
		path           string
		header         string
		min            types.Role
		setupMocks     func(*MockAuthorizerInterface, *MockLoggerInterface, *gomock.Controller)
		expectedStatus int
		expectedRoles  []any
	}{
		{
			name:           "unauthenticated",
			path:           "/tenants/" + testTenantID,
			min:            types.RoleNormal,
			setupMocks:     func(*MockAuthorizerInterface, *MockLoggerInterface, *gomock.Controller) {},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:   "tenant from path",
			userID: testUserID,
			path:   "/tenants/" + testTenantID,
			min:    types.RoleAdmin,
			setupMocks: func(mockAuthz *MockAuthorizerInterface, _ *MockLoggerInterface, _ *gomock.Controller) {
				mockAuthz.EXPECT().Authorize(gomock.Any(), testUserID, testTenantID, types.RoleAdmin).Return(resolved, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:   "tenant from header",
			userID: testUserID,
			path:   "/providers",
			header: testTenantID,
			min:    types.RoleNormal,
			setupMocks: func(mockAuthz *MockAuthorizerInterface, _ *MockLoggerInterface, _ *gomock.Controller) {
				mockAuthz.EXPECT().Authorize(gomock.Any(), testUserID, testTenantID, types.RoleNormal).Return(resolved, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:   "current tenant",
			userID: testUserID,
			path:   "/providers",
			min:    types.RoleNormal,
			setupMocks: func(mockAuthz *MockAuthorizerInterface, _ *MockLoggerInterface, _ *gomock.Controller) {
				mockAuthz.EXPECT().Authorize(gomock.Any(), testUserID, "", types.RoleNormal).Return(resolved, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:   "insufficient role lists acceptable roles",
			userID: testUserID,
			path:   "/providers",
			min:    types.RoleAdmin,
			setupMocks: func(mockAuthz *MockAuthorizerInterface, mockLogger *MockLoggerInterface, ctrl *gomock.Controller) {
				mockAuthz.EXPECT().Authorize(gomock.Any(), testUserID, "", types.RoleAdmin).Return(nil, CheckRole(types.RoleNormal, types.RoleAdmin))
				mockSecurity := NewMockSecurityLoggerInterface(ctrl)
				mockSecurity.EXPECT().AuthzFailure(testUserID, "/providers")
				mockLogger.EXPECT().Security().Return(mockSecurity)
			},
			expectedStatus: http.StatusForbidden,
			expectedRoles:  []any{"admin", "owner"},
		},
		{
			name:   "missing tenant context",
			userID: testUserID,
			path:   "/providers",
			min:    types.RoleNormal,
			setupMocks: func(mockAuthz *MockAuthorizerInterface, mockLogger *MockLoggerInterface, ctrl *gomock.Controller) {
				mockAuthz.EXPECT().Authorize(gomock.Any(), testUserID, "", types.RoleNormal).Return(nil, ErrMissingTenantContext)
				mockSecurity := NewMockSecurityLoggerInterface(ctrl)
				mockSecurity.EXPECT().AuthzFailure(gomock.Any(), gomock.Any())
				mockLogger.EXPECT().Security().Return(mockSecurity)
			},
			expectedStatus: http.StatusForbidden,
		},
		{
			name:   "storage failure",
			userID: testUserID,
			path:   "/providers",
			min:    types.RoleNormal,
			setupMocks: func(mockAuthz *MockAuthorizerInterface, mockLogger *MockLoggerInterface, _ *gomock.Controller) {
				mockAuthz.EXPECT().Authorize(gomock.Any(), testUserID, "", types.RoleNormal).Return(nil, errors.New("db down"))
				mockLogger.EXPECT().Errorf(gomock.Any(), gomock.Any())
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockAuthz := NewMockAuthorizerInterface(ctrl)
			mockTracer := NewMockTracingInterface(ctrl)
			mockLogger := NewMockLoggerInterface(ctrl)

			mockTracer.EXPECT().Start(gomock.Any(), "authorization.Middleware.RequireRole").DoAndReturn(
				func(ctx context.Context, _ string, _ ...trace.SpanStartOption) (context.Context, trace.Span) {
					return ctx, trace.SpanFromContext(ctx)
				})
			tc.setupMocks(mockAuthz, mockLogger, ctrl)

			m := NewMiddleware(mockAuthz, mockTracer, NewMockMonitorInterface(ctrl), mockLogger)

			var seen *types.TenantContext
			r := chi.NewRouter()
			handler := m.RequireRole(tc.min)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				seen, _ = TenantContextFrom(r.Context())
				w.WriteHeader(http.StatusOK)
			}))
			r.Handle("/tenants/{tenantID}", handler)
			r.Handle("/providers", handler)

			req := httptest.NewRequest(http.MethodGet, tc.path, nil)
			if tc.header != "" {
				req.Header.Set(TenantIDHeader, tc.header)
			}
			if tc.userID != "" {
				req = req.WithContext(authentication.WithUserID(req.Context(), tc.userID))
			}
			rr := httptest.NewRecorder()

			r.ServeHTTP(rr, req)

			if rr.Code != tc.expectedStatus {
				t.Fatalf("expected status %d, got %d: %s", tc.expectedStatus, rr.Code, rr.Body.String())
			}

			if tc.expectedStatus == http.StatusOK && (seen == nil || *seen != *resolved) {
				t.Errorf("expected resolved context to be cached, got %+v", seen)
			}

			if tc.expectedRoles != nil {
				var body struct {
					Details map[string]any `json:"details"`
				}
				if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
					t.Fatalf("failed to decode body: %v", err)
				}
				roles, _ := body.Details["acceptableRoles"].([]any)
				if len(roles) != len(tc.expectedRoles) || roles[0] != tc.expectedRoles[0] || roles[1] != tc.expectedRoles[1] {
					t.Errorf("expected acceptable roles %v, got %v", tc.expectedRoles, body.Details["acceptableRoles"])
				}
			}
		})
	}
}

func TestMiddleware_RequireRoleReusesCachedContext(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAuthz := NewMockAuthorizerInterface(ctrl)
	mockTracer := NewMockTracingInterface(ctrl)
	mockLogger := NewMockLoggerInterface(ctrl)

	mockTracer.EXPECT().Start(gomock.Any(), "authorization.Middleware.RequireRole").DoAndReturn(
		func(ctx context.Context, _ string, _ ...trace.SpanStartOption) (context.Context, trace.Span) {
			return ctx, trace.SpanFromContext(ctx)
		}).Times(2)

	mockSecurity := NewMockSecurityLoggerInterface(ctrl)
	mockSecurity.EXPECT().AuthzFailure(testUserID, gomock.Any())
	mockLogger.EXPECT().Security().Return(mockSecurity)

	m := NewMiddleware(mockAuthz, mockTracer, NewMockMonitorInterface(ctrl), mockLogger)

	cached := &types.TenantContext{TenantID: testTenantID, UserID: testUserID, Role: types.RoleEditor}

	allowed := m.RequireRole(types.RoleEditor)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
	denied := m.RequireRole(types.RoleOwner)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	ctx := WithTenantContext(authentication.WithUserID(context.Background(), testUserID), cached)

	rr := httptest.NewRecorder()
	allowed.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/providers", nil).WithContext(ctx))
	if rr.Code != http.StatusNoContent {
		t.Fatalf("expected status %d, got %d", http.StatusNoContent, rr.Code)
	}

	rr = httptest.NewRecorder()
	denied.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/providers", nil).WithContext(ctx))
	if rr.Code != http.StatusForbidden {
		t.Fatalf("expected status %d, got %d", http.StatusForbidden, rr.Code)
	}
}
