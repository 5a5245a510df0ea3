// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package logging

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestDebugLogger(t *testing.T) {
	func() {
		_ = recover()
		NewLogger("DEBUG")
	}()
}

func TestInvalidLevel(t *testing.T) {
	func() {
		_ = recover()
		NewLogger("invalid")
	}()
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected zapcore.Level
	}{
		{"debug", zapcore.DebugLevel},
		{"INFO", zapcore.InfoLevel},
		{"warning", zapcore.WarnLevel},
		{"error", zapcore.ErrorLevel},
		{"verbose", zapcore.ErrorLevel},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := parseLevel(tt.input); got != tt.expected {
				t.Errorf("expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestSecurityLoggerAuthzFailure(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	s := newSecurityLogger(zap.New(core))

	s.AuthzFailure("user-1", "tenant:abc")

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}

	fields := entries[0].ContextMap()
	if fields["event"] != "authz_fail:user-1,tenant:abc" {
		t.Errorf("unexpected event field %v", fields["event"])
	}
	if fields["type"] != "security" {
		t.Errorf("unexpected type field %v", fields["type"])
	}
}

func TestNoopLogger(t *testing.T) {
	l := NewNoopLogger()
	l.Infof("ignored %s", "message")
	l.Security().SystemStartup()

	if err := l.Sync(); err != nil {
		t.Errorf("unexpected sync error: %v", err)
	}
}
