// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package providers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"go.uber.org/mock/gomock"

	"github.com/canonical/workspace-service/internal/authorization"
	httptypes "github.com/canonical/workspace-service/internal/http/types"
	"github.com/canonical/workspace-service/internal/types"
	"github.com/canonical/workspace-service/pkg/vendors"
)

// roleGuard stands in for the authorization middleware with a fixed caller.
type roleGuard struct {
	role types.Role
}

func (g roleGuard) RequireRole(min types.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if err := authorization.CheckRole(g.role, min); err != nil {
				_ = httptypes.WriteError(w, http.StatusForbidden, err.Error(), nil)
				return
			}
			tc := &types.TenantContext{TenantID: testTenantID, UserID: testUserID, Role: g.role}
			next.ServeHTTP(w, r.WithContext(authorization.WithTenantContext(r.Context(), tc)))
		})
	}
}

func TestAPI(t *testing.T) {
	testCases := []struct {
		name           string
		role           types.Role
		method         string
		path           string
		body           string
		setupMocks     func(*MockServiceInterface, *MockLoggerInterface)
		expectedStatus int
	}{
		{
			name:   "supported vendors",
			role:   types.RoleNormal,
			method: http.MethodGet,
			path:   "/providers/supported",
			setupMocks: func(svc *MockServiceInterface, _ *MockLoggerInterface) {
				svc.EXPECT().ListSupportedVendors(gomock.Any()).Return([]string{vendors.OpenAI})
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:   "save credential as admin",
			role:   types.RoleAdmin,
			method: http.MethodPost,
			path:   "/providers",
			body:   `{"vendor":"openai","config":{"apiKey":"sk"}}`,
			setupMocks: func(svc *MockServiceInterface, _ *MockLoggerInterface) {
				svc.EXPECT().SaveCredential(gomock.Any(), gomock.Any(), vendors.OpenAI, &vendors.Config{APIKey: "sk"}).Return(&types.CredentialSummary{Vendor: vendors.OpenAI, IsValid: true}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "save credential as editor is forbidden",
			role:           types.RoleEditor,
			method:         http.MethodPost,
			path:           "/providers",
			body:           `{"vendor":"openai","config":{"apiKey":"sk"}}`,
			setupMocks:     func(*MockServiceInterface, *MockLoggerInterface) {},
			expectedStatus: http.StatusForbidden,
		},
		{
			name:           "save credential without key",
			role:           types.RoleOwner,
			method:         http.MethodPost,
			path:           "/providers",
			body:           `{"vendor":"openai","config":{}}`,
			setupMocks:     func(*MockServiceInterface, *MockLoggerInterface) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:   "rejected credential",
			role:   types.RoleAdmin,
			method: http.MethodPost,
			path:   "/providers",
			body:   `{"vendor":"openai","config":{"apiKey":"bad"}}`,
			setupMocks: func(svc *MockServiceInterface, _ *MockLoggerInterface) {
				svc.EXPECT().SaveCredential(gomock.Any(), gomock.Any(), vendors.OpenAI, gomock.Any()).Return(nil, ErrInvalidCredential)
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:   "delete missing credential",
			role:   types.RoleAdmin,
			method: http.MethodDelete,
			path:   "/providers/gemini",
			setupMocks: func(svc *MockServiceInterface, _ *MockLoggerInterface) {
				svc.EXPECT().DeleteCredential(gomock.Any(), gomock.Any(), vendors.Gemini).Return(ErrCredentialNotFound)
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:   "available models by category",
			role:   types.RoleNormal,
			method: http.MethodGet,
			path:   "/providers/models?category=embedding",
			setupMocks: func(svc *MockServiceInterface, _ *MockLoggerInterface) {
				svc.EXPECT().GetAvailableModels(gomock.Any(), gomock.Any(), types.CategoryEmbedding).Return([]*types.CatalogEntry{}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:   "full catalog",
			role:   types.RoleNormal,
			method: http.MethodGet,
			path:   "/providers/catalog?all=true",
			setupMocks: func(svc *MockServiceInterface, _ *MockLoggerInterface) {
				svc.EXPECT().GetCatalog(gomock.Any(), gomock.Any(), true).Return(nil, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:   "duplicate custom model",
			role:   types.RoleEditor,
			method: http.MethodPost,
			path:   "/providers/catalog",
			body:   `{"vendor":"openai","modelId":"gpt-4o","category":"llm"}`,
			setupMocks: func(svc *MockServiceInterface, _ *MockLoggerInterface) {
				svc.EXPECT().CreateCustomModel(gomock.Any(), gomock.Any(), &CustomModel{Vendor: vendors.OpenAI, ModelID: "gpt-4o", Category: types.CategoryLLM}).Return(nil, ErrModelAlreadyExists)
			},
			expectedStatus: http.StatusConflict,
		},
		{
			name:           "custom model as normal member is forbidden",
			role:           types.RoleNormal,
			method:         http.MethodPost,
			path:           "/providers/catalog",
			body:           `{"vendor":"openai","modelId":"gpt-4o","category":"llm"}`,
			setupMocks:     func(*MockServiceInterface, *MockLoggerInterface) {},
			expectedStatus: http.StatusForbidden,
		},
		{
			name:   "rename auto model",
			role:   types.RoleEditor,
			method: http.MethodPatch,
			path:   "/providers/catalog/" + testEntryID,
			body:   `{"displayName":"x"}`,
			setupMocks: func(svc *MockServiceInterface, _ *MockLoggerInterface) {
				svc.EXPECT().UpdateTenantModel(gomock.Any(), gomock.Any(), testEntryID, gomock.Any()).Return(nil, ErrAutoModelReadOnly)
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:   "delete auto model",
			role:   types.RoleEditor,
			method: http.MethodDelete,
			path:   "/providers/catalog/" + testEntryID,
			setupMocks: func(svc *MockServiceInterface, _ *MockLoggerInterface) {
				svc.EXPECT().DeleteTenantModel(gomock.Any(), gomock.Any(), testEntryID).Return(ErrCannotDeleteAutoModel)
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:   "update model setting",
			role:   types.RoleEditor,
			method: http.MethodPut,
			path:   "/providers/settings",
			body:   `{"category":"llm","vendor":"openai","modelId":"gpt-4o"}`,
			setupMocks: func(svc *MockServiceInterface, _ *MockLoggerInterface) {
				svc.EXPECT().UpdateModelSetting(gomock.Any(), gomock.Any(), &types.DefaultModelBinding{Category: types.CategoryLLM, Vendor: vendors.OpenAI, ModelID: "gpt-4o"}).Return(&types.DefaultModelBinding{}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:   "list model settings fails",
			role:   types.RoleNormal,
			method: http.MethodGet,
			path:   "/providers/settings",
			setupMocks: func(svc *MockServiceInterface, logger *MockLoggerInterface) {
				svc.EXPECT().GetModelSettings(gomock.Any(), gomock.Any()).Return(nil, errors.New("db down"))
				logger.EXPECT().Errorf(gomock.Any(), gomock.Any())
			},
			expectedStatus: http.StatusInternalServerError,
		},
		{
			name:   "delete model setting",
			role:   types.RoleEditor,
			method: http.MethodDelete,
			path:   "/providers/settings/tts",
			setupMocks: func(svc *MockServiceInterface, _ *MockLoggerInterface) {
				svc.EXPECT().DeleteModelSetting(gomock.Any(), gomock.Any(), types.CategoryTTS).Return(nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:   "malformed body",
			role:   types.RoleEditor,
			method: http.MethodPut,
			path:   "/providers/settings",
			body:   `{`,
			setupMocks: func(_ *MockServiceInterface, logger *MockLoggerInterface) {
				logger.EXPECT().Debugf(gomock.Any(), gomock.Any())
			},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockService := NewMockServiceInterface(ctrl)
			mockLogger := NewMockLoggerInterface(ctrl)
			tc.setupMocks(mockService, mockLogger)

			mux := chi.NewMux()
			NewAPI(mockService, roleGuard{role: tc.role}, mockLogger).RegisterEndpoints(mux)

			req := httptest.NewRequest(tc.method, tc.path, bytes.NewBufferString(tc.body))
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, req)

			res := w.Result()
			defer res.Body.Close()

			if res.StatusCode != tc.expectedStatus {
				t.Fatalf("expected status %d, got %d: %s", tc.expectedStatus, res.StatusCode, w.Body.String())
			}

			if res.StatusCode >= http.StatusBadRequest {
				var body httptypes.ErrorResponse
				if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
					t.Fatalf("failed to decode error body: %v", err)
				}
				if body.Status != tc.expectedStatus || body.Message == "" {
					t.Fatalf("unexpected error body %+v", body)
				}
			}
		})
	}
}
