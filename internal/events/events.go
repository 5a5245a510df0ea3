// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/nats-io/nats.go"

	"github.com/canonical/workspace-service/internal/logging"
	"github.com/canonical/workspace-service/internal/monitoring"
	"github.com/canonical/workspace-service/internal/tracing"
)

type EventType string

const (
	TenantCreated     EventType = "tenant.created"
	TenantDeleted     EventType = "tenant.deleted"
	TenantSwitched    EventType = "tenant.switched"
	MemberInvited     EventType = "membership.invited"
	MemberUpdated     EventType = "membership.updated"
	MemberRemoved     EventType = "membership.removed"
	CredentialSaved   EventType = "credential.saved"
	CredentialDeleted EventType = "credential.deleted"
	CatalogReconciled EventType = "catalog.reconciled"
)

const subjectPrefix = "workspace"

type Event struct {
	Type      EventType      `json:"type"`
	TenantID  string         `json:"tenantId"`
	UserID    string         `json:"userId,omitempty"`
	Data      map[string]any `json:"data,omitempty"`
	Timestamp time.Time      `json:"timestamp"`
}

func NewEvent(t EventType, tenantID, userID string, data map[string]any) *Event {
	return &Event{
		Type:      t,
		TenantID:  tenantID,
		UserID:    userID,
		Data:      data,
		Timestamp: time.Now().UTC(),
	}
}

// Subject returns workspace.<tenantId>.<event>.
func (e *Event) Subject() string {
	return fmt.Sprintf("%s.%s.%s", subjectPrefix, e.TenantID, e.Type)
}

var _ PublisherInterface = (*Publisher)(nil)

// Publisher is best-effort: failures are logged and never surfaced.
type Publisher struct {
	conn ConnInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (p *Publisher) Publish(ctx context.Context, event *Event) {
	_, span := p.tracer.Start(ctx, "events.Publisher.Publish")
	defer span.End()

	if event == nil {
		return
	}

	payload, err := json.Marshal(event)
	if err != nil {
		p.logger.Errorf("failed to marshal event %s: %v", event.Type, err)
		return
	}

	if err := p.conn.Publish(event.Subject(), payload); err != nil {
		p.logger.Warnf("failed to publish event %s for tenant %s: %v", event.Type, event.TenantID, err)
		return
	}

	p.logger.Debugf("published event %s", event.Subject())
}

func (p *Publisher) Close() error {
	return p.conn.Drain()
}

func NewPublisher(conn ConnInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Publisher {
	p := new(Publisher)

	p.conn = conn

	p.tracer = tracer
	p.monitor = monitor
	p.logger = logger

	return p
}

// Connect dials NATS and reports broker availability through the monitor.
func Connect(url string, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) (*nats.Conn, error) {
	setAvailability := func(v float64) {
		if err := monitor.SetDependencyAvailability(map[string]string{"component": "nats"}, v); err != nil {
			logger.Debugf("failed to record nats availability: %v", err)
		}
	}

	nc, err := nats.Connect(url,
		nats.Name("workspace-service"),
		nats.ReconnectWait(2*time.Second),
		nats.MaxReconnects(-1),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			logger.Warnf("nats disconnected: %v", err)
			setAvailability(0)
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			logger.Infof("nats reconnected to %s", nc.ConnectedUrl())
			setAvailability(1)
		}),
	)
	if err != nil {
		setAvailability(0)
		return nil, fmt.Errorf("failed to connect to nats: %w", err)
	}

	setAvailability(1)

	return nc, nil
}
