// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package webhooks

import (
	"crypto/subtle"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/ory/hydra/v2/oauth2"

	httptypes "github.com/canonical/workspace-service/internal/http/types"
	"github.com/canonical/workspace-service/internal/logging"
)

type API struct {
	service ServiceInterface
	token   string

	logger logging.LoggerInterface
}

// NewAPI builds the webhook endpoints; an empty token disables the bearer
// check.
func NewAPI(service ServiceInterface, token string, logger logging.LoggerInterface) *API {
	return &API{
		service: service,
		token:   token,
		logger:  logger,
	}
}

func (a *API) RegisterEndpoints(mux chi.Router) {
	mux.Group(func(r chi.Router) {
		r.Use(a.requireToken)
		r.Post("/webhooks/registration", a.registration)
		r.Post("/webhooks/token", a.tokenHook)
	})
}

func (a *API) requireToken(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if a.token == "" {
			next.ServeHTTP(w, r)
			return
		}

		got, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
		if !ok || subtle.ConstantTimeCompare([]byte(got), []byte(a.token)) != 1 {
			a.logger.Security().AuthnFailure("webhook", "invalid webhook token")
			_ = httptypes.WriteError(w, http.StatusUnauthorized, "unauthorized", nil)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (a *API) registration(w http.ResponseWriter, r *http.Request) {
	payload := new(RegistrationPayload)
	if err := json.NewDecoder(r.Body).Decode(payload); err != nil {
		a.logger.Errorf("invalid registration payload: %v", err)
		_ = httptypes.WriteError(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}

	t, err := a.service.HandleRegistration(r.Context(), payload)
	if err != nil {
		if errors.Is(err, ErrMissingIdentity) {
			_ = httptypes.WriteError(w, http.StatusBadRequest, err.Error(), nil)
			return
		}
		a.logger.Errorf("failed to handle registration: %v", err)
		_ = httptypes.WriteError(w, http.StatusInternalServerError, "failed to provision workspace", nil)
		return
	}

	_ = httptypes.WriteData(w, http.StatusOK, "registration handled", t)
}

func (a *API) tokenHook(w http.ResponseWriter, r *http.Request) {
	req := new(oauth2.TokenHookRequest)
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		a.logger.Errorf("invalid token hook payload: %v", err)
		_ = httptypes.WriteError(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}

	resp, err := a.service.HandleTokenHook(r.Context(), req)
	if err != nil {
		if errors.Is(err, ErrMissingSubject) {
			_ = httptypes.WriteError(w, http.StatusBadRequest, err.Error(), nil)
			return
		}
		a.logger.Errorf("failed to handle token hook: %v", err)
		_ = httptypes.WriteError(w, http.StatusInternalServerError, "failed to handle token hook", nil)
		return
	}

	_ = httptypes.WriteJSON(w, http.StatusOK, resp)
}
