// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package events

import (
	"context"
)

type PublisherInterface interface {
	Publish(ctx context.Context, event *Event)
	Close() error
}

// ConnInterface is the subset of *nats.Conn the publisher relies on.
type ConnInterface interface {
	Publish(subject string, data []byte) error
	Drain() error
}
