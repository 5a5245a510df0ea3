// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package providers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/canonical/workspace-service/internal/authorization"
	httptypes "github.com/canonical/workspace-service/internal/http/types"
	"github.com/canonical/workspace-service/internal/logging"
	"github.com/canonical/workspace-service/internal/types"
	"github.com/canonical/workspace-service/pkg/vendors"
)

type SaveCredentialRequest struct {
	Vendor string          `json:"vendor" validate:"required"`
	Config *vendors.Config `json:"config" validate:"required"`
}

type ModelSettingRequest struct {
	Category types.ModelCategory `json:"category" validate:"required"`
	Vendor   string              `json:"vendor" validate:"required"`
	ModelID  string              `json:"modelId" validate:"required"`
}

type API struct {
	service  ServiceInterface
	guard    GuardInterface
	validate *validator.Validate

	logger logging.LoggerInterface
}

func NewAPI(service ServiceInterface, guard GuardInterface, logger logging.LoggerInterface) *API {
	a := new(API)
	a.service = service
	a.guard = guard
	a.validate = validator.New(validator.WithRequiredStructEnabled())
	a.logger = logger

	return a
}

func (a *API) RegisterEndpoints(mux chi.Router) {
	mux.Get("/providers/supported", a.listSupported)

	mux.Group(func(r chi.Router) {
		r.Use(a.guard.RequireRole(types.RoleNormal))
		r.Get("/providers", a.listCredentials)
		r.Get("/providers/models", a.listAvailableModels)
		r.Get("/providers/catalog", a.listCatalog)
		r.Get("/providers/settings", a.listSettings)
	})

	mux.Group(func(r chi.Router) {
		r.Use(a.guard.RequireRole(types.RoleEditor))
		r.Post("/providers/catalog", a.createModel)
		r.Patch("/providers/catalog/{modelID}", a.updateModel)
		r.Delete("/providers/catalog/{modelID}", a.deleteModel)
		r.Put("/providers/settings", a.updateSetting)
		r.Delete("/providers/settings/{category}", a.deleteSetting)
	})

	mux.Group(func(r chi.Router) {
		r.Use(a.guard.RequireRole(types.RoleAdmin))
		r.Post("/providers", a.saveCredential)
		r.Delete("/providers/{vendor}", a.deleteCredential)
	})
}

func (a *API) listSupported(w http.ResponseWriter, r *http.Request) {
	_ = httptypes.WriteData(w, http.StatusOK, "supported vendors", a.service.ListSupportedVendors(r.Context()))
}

func (a *API) listCredentials(w http.ResponseWriter, r *http.Request) {
	tc, ok := a.scope(w, r)
	if !ok {
		return
	}

	creds, err := a.service.ListCredentialsSummary(r.Context(), tc)
	if err != nil {
		a.fail(w, err)
		return
	}

	_ = httptypes.WriteData(w, http.StatusOK, "vendor credentials", creds)
}

func (a *API) saveCredential(w http.ResponseWriter, r *http.Request) {
	tc, ok := a.scope(w, r)
	if !ok {
		return
	}

	req := new(SaveCredentialRequest)
	if !a.decode(w, r, req) {
		return
	}

	summary, err := a.service.SaveCredential(r.Context(), tc, req.Vendor, req.Config)
	if err != nil {
		a.fail(w, err)
		return
	}

	_ = httptypes.WriteData(w, http.StatusOK, "vendor credential saved", summary)
}

func (a *API) deleteCredential(w http.ResponseWriter, r *http.Request) {
	tc, ok := a.scope(w, r)
	if !ok {
		return
	}

	if err := a.service.DeleteCredential(r.Context(), tc, chi.URLParam(r, "vendor")); err != nil {
		a.fail(w, err)
		return
	}

	_ = httptypes.WriteData(w, http.StatusOK, "vendor credential deleted", nil)
}

func (a *API) listAvailableModels(w http.ResponseWriter, r *http.Request) {
	tc, ok := a.scope(w, r)
	if !ok {
		return
	}

	models, err := a.service.GetAvailableModels(r.Context(), tc, types.ModelCategory(r.URL.Query().Get("category")))
	if err != nil {
		a.fail(w, err)
		return
	}

	_ = httptypes.WriteData(w, http.StatusOK, "available models", models)
}

func (a *API) listCatalog(w http.ResponseWriter, r *http.Request) {
	tc, ok := a.scope(w, r)
	if !ok {
		return
	}

	all, _ := strconv.ParseBool(r.URL.Query().Get("all"))

	entries, err := a.service.GetCatalog(r.Context(), tc, all)
	if err != nil {
		a.fail(w, err)
		return
	}

	_ = httptypes.WriteData(w, http.StatusOK, "model catalog", entries)
}

func (a *API) createModel(w http.ResponseWriter, r *http.Request) {
	tc, ok := a.scope(w, r)
	if !ok {
		return
	}

	req := new(CustomModel)
	if !a.decode(w, r, req) {
		return
	}

	entry, err := a.service.CreateCustomModel(r.Context(), tc, req)
	if err != nil {
		a.fail(w, err)
		return
	}

	_ = httptypes.WriteData(w, http.StatusCreated, "model created", entry)
}

func (a *API) updateModel(w http.ResponseWriter, r *http.Request) {
	tc, ok := a.scope(w, r)
	if !ok {
		return
	}

	patch := new(ModelPatch)
	if !a.decode(w, r, patch) {
		return
	}

	entry, err := a.service.UpdateTenantModel(r.Context(), tc, chi.URLParam(r, "modelID"), patch)
	if err != nil {
		a.fail(w, err)
		return
	}

	_ = httptypes.WriteData(w, http.StatusOK, "model updated", entry)
}

func (a *API) deleteModel(w http.ResponseWriter, r *http.Request) {
	tc, ok := a.scope(w, r)
	if !ok {
		return
	}

	if err := a.service.DeleteTenantModel(r.Context(), tc, chi.URLParam(r, "modelID")); err != nil {
		a.fail(w, err)
		return
	}

	_ = httptypes.WriteData(w, http.StatusOK, "model deleted", nil)
}

func (a *API) listSettings(w http.ResponseWriter, r *http.Request) {
	tc, ok := a.scope(w, r)
	if !ok {
		return
	}

	settings, err := a.service.GetModelSettings(r.Context(), tc)
	if err != nil {
		a.fail(w, err)
		return
	}

	_ = httptypes.WriteData(w, http.StatusOK, "model settings", settings)
}

func (a *API) updateSetting(w http.ResponseWriter, r *http.Request) {
	tc, ok := a.scope(w, r)
	if !ok {
		return
	}

	req := new(ModelSettingRequest)
	if !a.decode(w, r, req) {
		return
	}

	saved, err := a.service.UpdateModelSetting(r.Context(), tc, &types.DefaultModelBinding{
		Category: req.Category,
		Vendor:   req.Vendor,
		ModelID:  req.ModelID,
	})
	if err != nil {
		a.fail(w, err)
		return
	}

	_ = httptypes.WriteData(w, http.StatusOK, "model setting saved", saved)
}

func (a *API) deleteSetting(w http.ResponseWriter, r *http.Request) {
	tc, ok := a.scope(w, r)
	if !ok {
		return
	}

	if err := a.service.DeleteModelSetting(r.Context(), tc, types.ModelCategory(chi.URLParam(r, "category"))); err != nil {
		a.fail(w, err)
		return
	}

	_ = httptypes.WriteData(w, http.StatusOK, "model setting deleted", nil)
}

func (a *API) scope(w http.ResponseWriter, r *http.Request) (*types.TenantContext, bool) {
	tc, ok := authorization.TenantContextFrom(r.Context())
	if !ok {
		_ = httptypes.WriteError(w, http.StatusForbidden, authorization.ErrMissingTenantContext.Error(), nil)
	}
	return tc, ok
}

func (a *API) decode(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		a.logger.Debugf("invalid request body: %v", err)
		_ = httptypes.WriteError(w, http.StatusBadRequest, "invalid request body", nil)
		return false
	}

	if err := a.validate.Struct(v); err != nil {
		_ = httptypes.WriteError(w, http.StatusBadRequest, "invalid request", map[string]any{"reason": err.Error()})
		return false
	}

	return true
}

func (a *API) fail(w http.ResponseWriter, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		a.logger.Errorf("provider request failed: %v", err)
		_ = httptypes.WriteError(w, status, "internal server error", nil)
		return
	}

	_ = httptypes.WriteError(w, status, err.Error(), nil)
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, ErrCredentialNotFound),
		errors.Is(err, ErrModelNotFound),
		errors.Is(err, ErrSettingNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrModelAlreadyExists):
		return http.StatusConflict
	case errors.Is(err, ErrVendorNotSupported),
		errors.Is(err, ErrInvalidCredential),
		errors.Is(err, ErrInvalidCategory),
		errors.Is(err, ErrInvalidModel),
		errors.Is(err, ErrCannotDeleteAutoModel),
		errors.Is(err, ErrAutoModelReadOnly):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
