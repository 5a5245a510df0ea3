// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteError(t *testing.T) {
	rr := httptest.NewRecorder()

	require.NoError(t, WriteError(rr, http.StatusForbidden, "insufficient role", map[string]any{"acceptableRoles": []string{"admin", "owner"}}))

	assert.Equal(t, http.StatusForbidden, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

	var body map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.Equal(t, float64(http.StatusForbidden), body["status"])
	assert.Equal(t, "insufficient role", body["message"])
	assert.Equal(t, []any{"admin", "owner"}, body["details"].(map[string]any)["acceptableRoles"])
}

func TestWriteErrorWithoutDetails(t *testing.T) {
	rr := httptest.NewRecorder()

	require.NoError(t, WriteError(rr, http.StatusNotFound, "not found", nil))

	assert.JSONEq(t, `{"status":404,"message":"not found"}`, rr.Body.String())
}

func TestWritePage(t *testing.T) {
	rr := httptest.NewRecorder()

	require.NoError(t, WritePage(rr, "members", []string{"a"}, 2, 10))

	assert.JSONEq(t, `{"data":["a"],"message":"members","status":200,"_meta":{"page":2,"size":10}}`, rr.Body.String())
}

func TestWriteJSONNoBody(t *testing.T) {
	rr := httptest.NewRecorder()

	require.NoError(t, WriteJSON(rr, http.StatusNoContent, nil))

	assert.Equal(t, http.StatusNoContent, rr.Code)
	assert.Empty(t, rr.Body.String())
}
