// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package providers

import (
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/canonical/workspace-service/internal/encryption"
	"github.com/canonical/workspace-service/internal/events"
	"github.com/canonical/workspace-service/internal/logging"
	"github.com/canonical/workspace-service/internal/monitoring"
	"github.com/canonical/workspace-service/internal/tracing"
	"github.com/canonical/workspace-service/pkg/vendors"
)

const (
	DefaultVendorTimeout        = 10 * time.Second
	DefaultReconcileConcurrency = 4
)

var _ ServiceInterface = (*Service)(nil)

// Service owns vendor credentials, the tenant model catalog and the default
// model bindings.
type Service struct {
	storage   StorageInterface
	tx        TxRunnerInterface
	vendors   vendors.RegistryInterface
	encrypter encryption.EncrypterInterface
	publisher events.PublisherInterface
	validate  *validator.Validate

	vendorTimeout time.Duration
	concurrency   int
	now           func() time.Time

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewService(
	storage StorageInterface,
	tx TxRunnerInterface,
	registry vendors.RegistryInterface,
	encrypter encryption.EncrypterInterface,
	publisher events.PublisherInterface,
	vendorTimeout time.Duration,
	concurrency int,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	if vendorTimeout <= 0 {
		vendorTimeout = DefaultVendorTimeout
	}

	if concurrency <= 0 {
		concurrency = DefaultReconcileConcurrency
	}

	return &Service{
		storage:       storage,
		tx:            tx,
		vendors:       registry,
		encrypter:     encrypter,
		publisher:     publisher,
		validate:      validator.New(validator.WithRequiredStructEnabled()),
		vendorTimeout: vendorTimeout,
		concurrency:   concurrency,
		now:           time.Now,
		tracer:        tracer,
		monitor:       monitor,
		logger:        logger,
	}
}
