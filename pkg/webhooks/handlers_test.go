// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package webhooks

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"go.uber.org/mock/gomock"

	"github.com/canonical/workspace-service/internal/types"
)

func TestAPI(t *testing.T) {
	tests := []struct {
		name           string
		token          string
		authHeader     string
		path           string
		body           string
		setupMocks     func(*MockServiceInterface, *MockLoggerInterface, *MockSecurityLoggerInterface)
		expectedStatus int
		validateResp   func(*testing.T, *http.Response)
	}{
		{
			name:       "registration provisions workspace",
			token:      "secret",
			authHeader: "Bearer secret",
			path:       "/webhooks/registration",
			body:       `{"identity_id":"identity-123","email":"ada@example.com","name":"Ada"}`,
			setupMocks: func(svc *MockServiceInterface, _ *MockLoggerInterface, _ *MockSecurityLoggerInterface) {
				svc.EXPECT().HandleRegistration(gomock.Any(), &RegistrationPayload{IdentityID: identityID, Email: "ada@example.com", Name: "Ada"}).Return(&types.Tenant{ID: tenantID}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:       "wrong webhook token",
			token:      "secret",
			authHeader: "Bearer nope",
			path:       "/webhooks/registration",
			body:       `{"identity_id":"identity-123"}`,
			setupMocks: func(_ *MockServiceInterface, logger *MockLoggerInterface, security *MockSecurityLoggerInterface) {
				logger.EXPECT().Security().Return(security)
				security.EXPECT().AuthnFailure("webhook", gomock.Any())
			},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name: "token check disabled",
			path: "/webhooks/registration",
			body: `{"identity_id":"identity-123"}`,
			setupMocks: func(svc *MockServiceInterface, _ *MockLoggerInterface, _ *MockSecurityLoggerInterface) {
				svc.EXPECT().HandleRegistration(gomock.Any(), gomock.Any()).Return(nil, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "registration without identity",
			path: "/webhooks/registration",
			body: `{"email":"ada@example.com"}`,
			setupMocks: func(svc *MockServiceInterface, _ *MockLoggerInterface, _ *MockSecurityLoggerInterface) {
				svc.EXPECT().HandleRegistration(gomock.Any(), gomock.Any()).Return(nil, ErrMissingIdentity)
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "registration fails",
			path: "/webhooks/registration",
			body: `{"identity_id":"identity-123"}`,
			setupMocks: func(svc *MockServiceInterface, logger *MockLoggerInterface, _ *MockSecurityLoggerInterface) {
				svc.EXPECT().HandleRegistration(gomock.Any(), gomock.Any()).Return(nil, errors.New("db down"))
				logger.EXPECT().Errorf(gomock.Any(), gomock.Any())
			},
			expectedStatus: http.StatusInternalServerError,
		},
		{
			name: "token hook claims",
			path: "/webhooks/token",
			body: `{"session":{"id_token":{"subject":"identity-123"}},"request":{"client_id":"app"}}`,
			setupMocks: func(svc *MockServiceInterface, _ *MockLoggerInterface, _ *MockSecurityLoggerInterface) {
				svc.EXPECT().HandleTokenHook(gomock.Any(), gomock.Any()).Return(&TokenHookResponse{
					Session: TokenHookSession{AccessToken: map[string]any{ClaimTenantID: tenantID, ClaimTenants: []string{tenantID}}},
				}, nil)
			},
			expectedStatus: http.StatusOK,
			validateResp: func(t *testing.T, resp *http.Response) {
				var result TokenHookResponse
				if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
					t.Fatalf("failed to decode response: %v", err)
				}
				if result.Session.AccessToken[ClaimTenantID] != tenantID {
					t.Fatalf("expected tenant_id claim, got %v", result.Session.AccessToken)
				}
			},
		},
		{
			name: "malformed token hook body",
			path: "/webhooks/token",
			body: `not-json`,
			setupMocks: func(_ *MockServiceInterface, logger *MockLoggerInterface, _ *MockSecurityLoggerInterface) {
				logger.EXPECT().Errorf(gomock.Any(), gomock.Any())
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "token hook fails",
			path: "/webhooks/token",
			body: `{"session":{"id_token":{"subject":"identity-123"}}}`,
			setupMocks: func(svc *MockServiceInterface, logger *MockLoggerInterface, _ *MockSecurityLoggerInterface) {
				svc.EXPECT().HandleTokenHook(gomock.Any(), gomock.Any()).Return(nil, errors.New("db down"))
				logger.EXPECT().Errorf(gomock.Any(), gomock.Any())
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockSvc := NewMockServiceInterface(ctrl)
			mockLogger := NewMockLoggerInterface(ctrl)
			mockSecurity := NewMockSecurityLoggerInterface(ctrl)
			tt.setupMocks(mockSvc, mockLogger, mockSecurity)

			mux := chi.NewMux()
			NewAPI(mockSvc, tt.token, mockLogger).RegisterEndpoints(mux)

			req := httptest.NewRequest(http.MethodPost, tt.path, bytes.NewBufferString(tt.body))
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, req)

			resp := w.Result()
			defer resp.Body.Close()

			if resp.StatusCode != tt.expectedStatus {
				t.Fatalf("expected status %d, got %d: %s", tt.expectedStatus, resp.StatusCode, w.Body.String())
			}

			if tt.validateResp != nil {
				tt.validateResp(t, resp)
			}
		})
	}
}
