// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package prometheus

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/canonical/workspace-service/internal/logging"
)

func TestMonitorDependencyAvailability(t *testing.T) {
	m := NewMonitor("workspace-service-test", logging.NewNoopLogger())

	if err := m.SetDependencyAvailability(map[string]string{"component": "openai"}, 0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if v := testutil.ToFloat64(m.dependencies.WithLabelValues("openai")); v != 0 {
		t.Errorf("expected 0, got %v", v)
	}

	if err := m.SetDependencyAvailability(map[string]string{"component": "openai"}, 1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if v := testutil.ToFloat64(m.dependencies.WithLabelValues("openai")); v != 1 {
		t.Errorf("expected 1, got %v", v)
	}
}

func TestMonitorRejectsUnknownLabels(t *testing.T) {
	m := NewMonitor("workspace-service-test", logging.NewNoopLogger())

	if err := m.SetResponseTimeMetric(map[string]string{"path": "/"}, 0.1); err == nil {
		t.Error("expected error for unknown label set")
	}

	if err := m.SetResponseTimeMetric(map[string]string{"route": "GET/api", "status": "200"}, 0.1); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestNewMonitorTwice(t *testing.T) {
	a := NewMonitor("workspace-service-test", logging.NewNoopLogger())
	b := NewMonitor("workspace-service-test", logging.NewNoopLogger())

	if a.responseTime != b.responseTime {
		t.Error("expected collectors to be shared across monitors")
	}
}
