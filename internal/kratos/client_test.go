// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package kratos

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/canonical/workspace-service/internal/logging"
	"github.com/canonical/workspace-service/internal/monitoring"
	"github.com/canonical/workspace-service/internal/tracing"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return NewClient(srv.URL, srv.Client(), tracing.NewNoopTracer(), monitoring.NewNoopMonitor("kratos-test", logging.NewNoopLogger()), logging.NewNoopLogger())
}

func TestGetIdentityIDByEmail(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/admin/identities", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		if r.URL.Query().Get("credentials_identifier") == "a@x.com" {
			_, _ = w.Write([]byte(`[{"id":"user-1","schema_id":"default","schema_url":"","traits":{"email":"a@x.com"}}]`))
			return
		}
		_, _ = w.Write([]byte(`[]`))
	})

	id, err := c.GetIdentityIDByEmail(context.Background(), "a@x.com")
	require.NoError(t, err)
	assert.Equal(t, "user-1", id)

	id, err = c.GetIdentityIDByEmail(context.Background(), "nobody@x.com")
	require.NoError(t, err)
	assert.Empty(t, id)
}

func TestGetIdentityIDByEmailServerError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	_, err := c.GetIdentityIDByEmail(context.Background(), "a@x.com")
	assert.Error(t, err)
}

func TestGetIdentityEmail(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/admin/identities/user-1", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"user-1","schema_id":"default","schema_url":"","traits":{"email":"a@x.com","name":"A"}}`))
	})

	email, err := c.GetIdentityEmail(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", email)
}
