// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package status

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	httptypes "github.com/canonical/workspace-service/internal/http/types"
	"github.com/canonical/workspace-service/internal/logging"
	"github.com/canonical/workspace-service/internal/monitoring"
	"github.com/canonical/workspace-service/internal/tracing"
	"github.com/canonical/workspace-service/internal/version"
)

const pingTimeout = 2 * time.Second

// PingerInterface is satisfied by the database client.
type PingerInterface interface {
	Ping(context.Context) error
}

type Status struct {
	Version string `json:"version"`
	Status  string `json:"status"`
}

type API struct {
	db PingerInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (a *API) RegisterEndpoints(mux chi.Router) {
	mux.Get("/status", a.alive)
	mux.Get("/ready", a.ready)
	mux.Get("/version", a.version)
}

func (a *API) alive(w http.ResponseWriter, r *http.Request) {
	_ = httptypes.WriteJSON(w, http.StatusOK, Status{Version: version.Version, Status: "ok"})
}

func (a *API) ready(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "status.API.ready")
	defer span.End()

	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	if err := a.db.Ping(ctx); err != nil {
		a.logger.Errorf("database is not reachable: %v", err)
		_ = httptypes.WriteJSON(w, http.StatusServiceUnavailable, Status{Version: version.Version, Status: "database unavailable"})
		return
	}

	_ = httptypes.WriteJSON(w, http.StatusOK, Status{Version: version.Version, Status: "ok"})
}

func (a *API) version(w http.ResponseWriter, r *http.Request) {
	_ = httptypes.WriteJSON(w, http.StatusOK, map[string]string{"version": version.Version})
}

func NewAPI(db PingerInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *API {
	a := new(API)
	a.db = db
	a.tracer = tracer
	a.monitor = monitor
	a.logger = logger

	return a
}
