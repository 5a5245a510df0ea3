// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package prometheus

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/canonical/workspace-service/internal/logging"
	"github.com/canonical/workspace-service/internal/monitoring"
)

var _ monitoring.MonitorInterface = (*Monitor)(nil)

type Monitor struct {
	service string

	responseTime *prometheus.HistogramVec
	dependencies *prometheus.GaugeVec

	logger logging.LoggerInterface
}

func (m *Monitor) GetService() string {
	return m.service
}

func (m *Monitor) SetResponseTimeMetric(tags map[string]string, value float64) error {
	o, err := m.responseTime.GetMetricWith(tags)
	if err != nil {
		return err
	}

	o.Observe(value)

	return nil
}

func (m *Monitor) SetDependencyAvailability(tags map[string]string, value float64) error {
	g, err := m.dependencies.GetMetricWith(tags)
	if err != nil {
		return err
	}

	g.Set(value)

	return nil
}

// register returns the already registered collector when one with the same
// descriptor exists, so multiple monitors can share the default registry.
func register[T prometheus.Collector](c T) T {
	err := prometheus.Register(c)
	if err == nil {
		return c
	}

	var are prometheus.AlreadyRegisteredError
	if errors.As(err, &are) {
		if existing, ok := are.ExistingCollector.(T); ok {
			return existing
		}
	}

	panic(err)
}

func NewMonitor(service string, logger logging.LoggerInterface) *Monitor {
	m := new(Monitor)

	m.service = service
	m.logger = logger

	m.responseTime = register(
		prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:        "http_response_time_seconds",
				Help:        "http response time in seconds",
				ConstLabels: prometheus.Labels{"service": service},
			},
			[]string{"route", "status"},
		),
	)

	m.dependencies = register(
		prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name:        "dependency_available",
				Help:        "availability of an external dependency, 1 when reachable",
				ConstLabels: prometheus.Labels{"service": service},
			},
			[]string{"component"},
		),
	)

	return m
}
