// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package status

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"

	"github.com/canonical/workspace-service/internal/logging"
	"github.com/canonical/workspace-service/internal/monitoring"
	"github.com/canonical/workspace-service/internal/tracing"
)

type pinger struct {
	err error
}

func (p pinger) Ping(context.Context) error { return p.err }

func TestStatusEndpoints(t *testing.T) {
	tests := []struct {
		name           string
		path           string
		pingErr        error
		expectedStatus int
	}{
		{name: "alive", path: "/status", expectedStatus: http.StatusOK},
		{name: "version", path: "/version", expectedStatus: http.StatusOK},
		{name: "ready", path: "/ready", expectedStatus: http.StatusOK},
		{name: "database down", path: "/ready", pingErr: errors.New("refused"), expectedStatus: http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger := logging.NewNoopLogger()
			mux := chi.NewMux()
			NewAPI(pinger{err: tt.pingErr}, tracing.NewNoopTracer(), monitoring.NewNoopMonitor("test", logger), logger).RegisterEndpoints(mux)

			w := httptest.NewRecorder()
			mux.ServeHTTP(w, httptest.NewRequest(http.MethodGet, tt.path, nil))

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}
