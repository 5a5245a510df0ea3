// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package vendors

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/canonical/workspace-service/internal/logging"
	"github.com/canonical/workspace-service/internal/monitoring"
	"github.com/canonical/workspace-service/internal/tracing"
	"github.com/canonical/workspace-service/internal/types"
)

const maxErrorBody = 512

// base carries what every adapter shares: the outbound client, the curated
// list and the observability triple.
type base struct {
	name        string
	client      *http.Client
	recommended []types.ModelDescriptor

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (b *base) Name() string {
	return b.name
}

// fallback returns a copy of the curated list.
func (b *base) fallback() []types.ModelDescriptor {
	out := make([]types.ModelDescriptor, len(b.recommended))
	copy(out, b.recommended)
	return out
}

// emptyListing answers a reply that decoded but named no usable model. The
// curated list stands in, flagged as a fallback like any other failure.
func (b *base) emptyListing() ([]types.ModelDescriptor, error) {
	return b.fallback(), fmt.Errorf("%s: %w: listing has no usable models", b.name, ErrVendorUnreachable)
}

// mergeRecommended appends curated models missing from the live listing.
func (b *base) mergeRecommended(models []types.ModelDescriptor) []types.ModelDescriptor {
	seen := make(map[string]struct{}, len(models))
	for _, m := range models {
		seen[m.ID] = struct{}{}
	}

	for _, r := range b.recommended {
		if _, ok := seen[r.ID]; !ok {
			models = append(models, r)
		}
	}

	return models
}

// getJSON issues a GET and decodes a 2xx body into out. Non 2xx replies map
// to ErrInvalidCredential (401, 403) or ErrVendorUnreachable.
func (b *base) getJSON(ctx context.Context, url string, headers map[string]string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrVendorUnreachable, err)
	}

	req.Header.Set("Accept", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := b.client.Do(req)
	if err != nil {
		b.setAvailability(0)
		return fmt.Errorf("%w: %v", ErrVendorUnreachable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		msg := strings.TrimSpace(string(body))

		switch resp.StatusCode {
		case http.StatusUnauthorized, http.StatusForbidden:
			b.setAvailability(1)
			return fmt.Errorf("%w: %w: status %d", ErrVendorUnreachable, ErrInvalidCredential, resp.StatusCode)
		default:
			b.setAvailability(0)
			return fmt.Errorf("%w: status %d: %s", ErrVendorUnreachable, resp.StatusCode, msg)
		}
	}

	b.setAvailability(1)

	if out == nil {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: failed to decode listing: %v", ErrVendorUnreachable, err)
	}

	return nil
}

func (b *base) setAvailability(v float64) {
	if err := b.monitor.SetDependencyAvailability(map[string]string{"component": b.name}, v); err != nil {
		b.logger.Debugf("failed to record %s availability: %v", b.name, err)
	}
}

// dedupe drops empty and repeated ids, keeping the first occurrence.
func dedupe(models []types.ModelDescriptor) []types.ModelDescriptor {
	seen := make(map[string]struct{}, len(models))
	out := make([]types.ModelDescriptor, 0, len(models))

	for _, m := range models {
		if m.ID == "" {
			continue
		}
		if _, ok := seen[m.ID]; ok {
			continue
		}
		seen[m.ID] = struct{}{}
		out = append(out, m)
	}

	return out
}

func bearer(key string) map[string]string {
	return map[string]string{"Authorization": "Bearer " + key}
}
