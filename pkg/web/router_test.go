// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package web

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"

	"github.com/canonical/workspace-service/internal/logging"
	"github.com/canonical/workspace-service/internal/monitoring"
	"github.com/canonical/workspace-service/internal/tracing"
)

type pinger struct{}

func (pinger) Ping(context.Context) error { return nil }

type fakeAPI struct {
	path string
}

func (f fakeAPI) RegisterEndpoints(mux chi.Router) {
	mux.Get(f.path, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})
}

func denyAll(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") == "" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func newTestRouter(rps float64, burst int) http.Handler {
	logger := logging.NewNoopLogger()
	return NewRouter(
		Config{CORSAllowedOrigins: []string{"*"}, RateLimitRPS: rps, RateLimitBurst: burst},
		denyAll,
		fakeAPI{path: "/webhooks/registration"},
		pinger{},
		tracing.NewNoopTracer(),
		monitoring.NewNoopMonitor("test", logger),
		logger,
		fakeAPI{path: "/tenants"},
	)
}

func TestRouter(t *testing.T) {
	tests := []struct {
		name           string
		path           string
		auth           string
		expectedStatus int
	}{
		{name: "status is public", path: "/api/v0/status", expectedStatus: http.StatusOK},
		{name: "webhooks skip bearer auth", path: "/api/v0/webhooks/registration", expectedStatus: http.StatusTeapot},
		{name: "api requires auth", path: "/api/v0/tenants", expectedStatus: http.StatusUnauthorized},
		{name: "authenticated api", path: "/api/v0/tenants", auth: "Bearer x", expectedStatus: http.StatusTeapot},
		{name: "unknown route", path: "/api/v0/nope", auth: "Bearer x", expectedStatus: http.StatusNotFound},
	}

	router := newTestRouter(1000, 1000)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			if tt.auth != "" {
				req.Header.Set("Authorization", tt.auth)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

func TestRouterRateLimitsPerClient(t *testing.T) {
	router := newTestRouter(1, 2)

	statuses := make([]int, 0, 3)
	for range 3 {
		req := httptest.NewRequest(http.MethodGet, "/api/v0/status", nil)
		req.Header.Set("X-Real-IP", "10.0.0.1")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		statuses = append(statuses, w.Code)
	}

	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, statuses)

	req := httptest.NewRequest(http.MethodGet, "/api/v0/status", nil)
	req.Header.Set("X-Real-IP", "10.0.0.2")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRateLimiterDropsIdleClients(t *testing.T) {
	rl := NewRateLimiter(1, 1)
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	rl.now = func() time.Time { return now }

	assert.True(t, rl.Allow("a"))
	assert.False(t, rl.Allow("a"))
	assert.Len(t, rl.visitors, 1)

	now = now.Add(limiterTTL + sweepInterval + time.Second)
	assert.True(t, rl.Allow("b"))
	assert.Len(t, rl.visitors, 1)
	assert.Contains(t, rl.visitors, "b")
}
