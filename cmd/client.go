// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/canonical/workspace-service/internal/authorization"
	httptypes "github.com/canonical/workspace-service/internal/http/types"
	"github.com/canonical/workspace-service/internal/identity"
)

const apiPrefix = "/api/v0"

// apiClient talks to the REST API with either a bearer token or the gateway
// identity header.
type apiClient struct {
	endpoint string
	client   *http.Client
}

func newAPIClient() *apiClient {
	endpoint := httpEndpoint
	if !strings.HasPrefix(endpoint, "http") {
		endpoint = "http://" + endpoint
	}

	return &apiClient{
		endpoint: strings.TrimSuffix(endpoint, "/") + apiPrefix,
		client:   &http.Client{Timeout: 30 * time.Second},
	}
}

// do sends body as JSON and decodes the data field of the reply into out.
func (c *apiClient) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.endpoint+path, reader)
	if err != nil {
		return err
	}

	req.Header.Set("Content-Type", "application/json")
	if accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+accessToken)
	}
	if userID != "" {
		req.Header.Set(identity.HeaderName, userID)
	}
	if tenantHeader != "" {
		req.Header.Set(authorization.TenantIDHeader, tenantHeader)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		var e httptypes.ErrorResponse
		if err := json.NewDecoder(resp.Body).Decode(&e); err != nil || e.Message == "" {
			return fmt.Errorf("request failed with status %d", resp.StatusCode)
		}
		return fmt.Errorf("request failed with status %d: %s", resp.StatusCode, e.Message)
	}

	if out == nil {
		return nil
	}

	envelope := httptypes.Response{Data: out}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}
