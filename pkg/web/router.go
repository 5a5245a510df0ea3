// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package web

import (
	"net/http"

	chi "github.com/go-chi/chi/v5"
	middleware "github.com/go-chi/chi/v5/middleware"

	"github.com/canonical/workspace-service/internal/logging"
	"github.com/canonical/workspace-service/internal/monitoring"
	"github.com/canonical/workspace-service/internal/tracing"
	"github.com/canonical/workspace-service/pkg/metrics"
	"github.com/canonical/workspace-service/pkg/status"
)

const apiPrefix = "/api/v0"

// EndpointsInterface is implemented by every handler group mounted on the
// router.
type EndpointsInterface interface {
	RegisterEndpoints(mux chi.Router)
}

type Config struct {
	CORSAllowedOrigins []string
	RateLimitRPS       float64
	RateLimitBurst     int
}

// NewRouter mounts the public endpoints (status, metrics, webhooks) and the
// authenticated API behind authn.
func NewRouter(
	cfg Config,
	authn func(http.Handler) http.Handler,
	webhooks EndpointsInterface,
	db status.PingerInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
	apis ...EndpointsInterface,
) http.Handler {
	router := chi.NewMux()

	middlewares := make(chi.Middlewares, 0)
	middlewares = append(
		middlewares,
		middleware.RequestID,
		middleware.RealIP,
		NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst).Middleware,
		middlewareCORS(cfg.CORSAllowedOrigins),
		monitoring.NewMiddleware(monitor, logger).ResponseTime(),
	)

	router.Use(middlewares...)

	router.Route(apiPrefix, func(r chi.Router) {
		metrics.NewAPI(logger).RegisterEndpoints(r)
		status.NewAPI(db, tracer, monitor, logger).RegisterEndpoints(r)

		if webhooks != nil {
			webhooks.RegisterEndpoints(r)
		}

		r.Group(func(r chi.Router) {
			r.Use(authn)
			for _, api := range apis {
				api.RegisterEndpoints(r)
			}
		})
	})

	return tracing.NewMiddleware(monitor, logger).OpenTelemetry(router)
}
