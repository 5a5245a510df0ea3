// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package events

import (
	"context"
)

var _ PublisherInterface = (*NoopPublisher)(nil)

type NoopPublisher struct{}

func (p *NoopPublisher) Publish(context.Context, *Event) {}

func (p *NoopPublisher) Close() error {
	return nil
}

func NewNoopPublisher() *NoopPublisher {
	return new(NoopPublisher)
}
