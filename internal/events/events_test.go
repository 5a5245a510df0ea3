// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package events

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/mock/gomock"
)

//go:generate mockgen -build_flags=--mod=mod -package events -destination ./mock_events.go -source=./interfaces.go ConnInterface
//go:generate mockgen -build_flags=--mod=mod -package events -destination ./mock_logger.go -source=../logging/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package events -destination ./mock_monitor.go -source=../monitoring/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package events -destination ./mock_tracing.go -source=../tracing/interfaces.go

func TestEventSubject(t *testing.T) {
	e := NewEvent(TenantSwitched, "tenant-1", "user-1", nil)

	if got := e.Subject(); got != "workspace.tenant-1.tenant.switched" {
		t.Fatalf("unexpected subject %q", got)
	}
}

func TestPublisher_Publish(t *testing.T) {
	event := NewEvent(CredentialSaved, "tenant-1", "user-1", map[string]any{"vendor": "openai"})

	testCases := []struct {
		name       string
		event      *Event
		setupMocks func(*MockConnInterface, *MockLoggerInterface)
	}{
		{
			name:  "success",
			event: event,
			setupMocks: func(conn *MockConnInterface, logger *MockLoggerInterface) {
				conn.EXPECT().Publish("workspace.tenant-1.credential.saved", gomock.Any()).DoAndReturn(
					func(_ string, data []byte) error {
						var decoded Event
						if err := json.Unmarshal(data, &decoded); err != nil {
							return err
						}
						if decoded.Type != CredentialSaved || decoded.TenantID != "tenant-1" || decoded.Data["vendor"] != "openai" {
							t.Errorf("unexpected payload %s", string(data))
						}
						return nil
					})
				logger.EXPECT().Debugf(gomock.Any(), gomock.Any())
			},
		},
		{
			name:  "broker failure is logged and swallowed",
			event: event,
			setupMocks: func(conn *MockConnInterface, logger *MockLoggerInterface) {
				conn.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(errors.New("connection closed"))
				logger.EXPECT().Warnf(gomock.Any(), gomock.Any())
			},
		},
		{
			name:       "nil event",
			event:      nil,
			setupMocks: func(*MockConnInterface, *MockLoggerInterface) {},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockConn := NewMockConnInterface(ctrl)
			mockLogger := NewMockLoggerInterface(ctrl)
			mockTracer := NewMockTracingInterface(ctrl)
			mockMonitor := NewMockMonitorInterface(ctrl)

			mockTracer.EXPECT().Start(gomock.Any(), "events.Publisher.Publish").Return(context.Background(), trace.SpanFromContext(context.Background()))
			tc.setupMocks(mockConn, mockLogger)

			p := NewPublisher(mockConn, mockTracer, mockMonitor, mockLogger)
			p.Publish(context.Background(), tc.event)
		})
	}
}

func TestPublisher_Close(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockConn := NewMockConnInterface(ctrl)
	mockConn.EXPECT().Drain().Return(nil)

	p := NewPublisher(mockConn, NewMockTracingInterface(ctrl), NewMockMonitorInterface(ctrl), NewMockLoggerInterface(ctrl))
	if err := p.Close(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestNoopPublisher(t *testing.T) {
	p := NewNoopPublisher()
	p.Publish(context.Background(), NewEvent(TenantCreated, "tenant-1", "user-1", nil))

	if err := p.Close(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
