// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package tenant

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
	"github.com/canonical/workspace-service/pkg/authentication"
)

const (
	defaultPageSize = 50
	maxPageSize     = 200
)

type CreateTenantRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
}

type InviteMemberRequest struct {
	Email string     `json:"email" validate:"required,email"`
	Role  types.Role `json:"role"`
}

type UpdateMemberRequest struct {
	Role types.Role `json:"role" validate:"required"`
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
	mux.Get("/tenants", a.listTenants)
	mux.Post("/tenants", a.createTenant)
	mux.Get("/tenants/current", a.currentTenant)

	mux.Group(func(r chi.Router) {
		r.Use(a.guard.RequireRole(types.RoleNormal))
		r.Post("/tenants/{tenantID}/switch", a.switchTenant)
		r.Get("/tenants/{tenantID}", a.getTenant)
		r.Get("/tenants/{tenantID}/members", a.listMembers)
	})

	mux.Group(func(r chi.Router) {
		r.Use(a.guard.RequireRole(types.RoleAdmin))
		r.Patch("/tenants/{tenantID}", a.updateTenant)
		r.Post("/tenants/{tenantID}/members", a.inviteMember)
		r.Patch("/tenants/{tenantID}/members/{userID}", a.updateMember)
		r.Delete("/tenants/{tenantID}/members/{userID}", a.removeMember)
	})

	mux.Group(func(r chi.Router) {
		r.Use(a.guard.RequireRole(types.RoleOwner))
		r.Delete("/tenants/{tenantID}", a.deleteTenant)
	})
}

func (a *API) listTenants(w http.ResponseWriter, r *http.Request) {
	userID, ok := a.user(w, r)
	if !ok {
		return
	}

	tenants, err := a.service.ListUserTenants(r.Context(), userID)
	if err != nil {
		a.fail(w, err)
		return
	}

	_ = httptypes.WriteData(w, http.StatusOK, "tenants", tenants)
}

func (a *API) createTenant(w http.ResponseWriter, r *http.Request) {
	userID, ok := a.user(w, r)
	if !ok {
		return
	}

	req := new(CreateTenantRequest)
	if !a.decode(w, r, req) {
		return
	}

	t, err := a.service.CreateTenant(r.Context(), userID, req.Name, req.Description)
	if err != nil {
		a.fail(w, err)
		return
	}

	_ = httptypes.WriteData(w, http.StatusCreated, "tenant created", t)
}

func (a *API) currentTenant(w http.ResponseWriter, r *http.Request) {
	userID, ok := a.user(w, r)
	if !ok {
		return
	}

	t, err := a.service.GetCurrentTenant(r.Context(), userID)
	if err != nil {
		a.fail(w, err)
		return
	}

	_ = httptypes.WriteData(w, http.StatusOK, "current tenant", t)
}

func (a *API) switchTenant(w http.ResponseWriter, r *http.Request) {
	tc, ok := a.scope(w, r)
	if !ok {
		return
	}

	if err := a.service.SwitchTenant(r.Context(), tc.UserID, tc.TenantID); err != nil {
		a.fail(w, err)
		return
	}

	_ = httptypes.WriteData(w, http.StatusOK, "tenant switched", map[string]string{"tenantId": tc.TenantID})
}

func (a *API) getTenant(w http.ResponseWriter, r *http.Request) {
	tc, ok := a.scope(w, r)
	if !ok {
		return
	}

	t, err := a.service.GetTenant(r.Context(), tc.TenantID)
	if err != nil {
		a.fail(w, err)
		return
	}

	_ = httptypes.WriteData(w, http.StatusOK, "tenant", t)
}

func (a *API) updateTenant(w http.ResponseWriter, r *http.Request) {
	tc, ok := a.scope(w, r)
	if !ok {
		return
	}

	patch := new(TenantPatch)
	if !a.decode(w, r, patch) {
		return
	}

	t, err := a.service.UpdateTenant(r.Context(), tc.TenantID, patch)
	if err != nil {
		a.fail(w, err)
		return
	}

	_ = httptypes.WriteData(w, http.StatusOK, "tenant updated", t)
}

func (a *API) deleteTenant(w http.ResponseWriter, r *http.Request) {
	tc, ok := a.scope(w, r)
	if !ok {
		return
	}

	if err := a.service.DeleteTenant(r.Context(), tc.TenantID, tc.UserID); err != nil {
		a.fail(w, err)
		return
	}

	_ = httptypes.WriteData(w, http.StatusOK, "tenant deleted", nil)
}

func (a *API) listMembers(w http.ResponseWriter, r *http.Request) {
	tc, ok := a.scope(w, r)
	if !ok {
		return
	}

	page, size := pagination(r)

	users, err := a.service.ListMembers(r.Context(), tc.TenantID, page, size)
	if err != nil {
		a.fail(w, err)
		return
	}

	_ = httptypes.WritePage(w, "tenant members", users, page, size)
}

func (a *API) inviteMember(w http.ResponseWriter, r *http.Request) {
	tc, ok := a.scope(w, r)
	if !ok {
		return
	}

	req := new(InviteMemberRequest)
	if !a.decode(w, r, req) {
		return
	}

	m, err := a.service.InviteMember(r.Context(), tc.TenantID, req.Email, req.Role, tc.UserID)
	if err != nil {
		a.fail(w, err)
		return
	}

	_ = httptypes.WriteData(w, http.StatusCreated, "member invited", m)
}

func (a *API) updateMember(w http.ResponseWriter, r *http.Request) {
	tc, ok := a.scope(w, r)
	if !ok {
		return
	}

	req := new(UpdateMemberRequest)
	if !a.decode(w, r, req) {
		return
	}

	m, err := a.service.UpdateMemberRole(r.Context(), tc.TenantID, chi.URLParam(r, "userID"), req.Role, tc.UserID)
	if err != nil {
		a.fail(w, err)
		return
	}

	_ = httptypes.WriteData(w, http.StatusOK, "member updated", m)
}

func (a *API) removeMember(w http.ResponseWriter, r *http.Request) {
	tc, ok := a.scope(w, r)
	if !ok {
		return
	}

	if err := a.service.RemoveMember(r.Context(), tc.TenantID, chi.URLParam(r, "userID"), tc.UserID); err != nil {
		a.fail(w, err)
		return
	}

	_ = httptypes.WriteData(w, http.StatusOK, "member removed", nil)
}

func (a *API) user(w http.ResponseWriter, r *http.Request) (string, bool) {
	userID, ok := authentication.GetUserID(r.Context())
	if !ok || userID == "" {
		_ = httptypes.WriteError(w, http.StatusUnauthorized, "unauthenticated", nil)
		return "", false
	}
	return userID, true
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
		a.logger.Errorf("tenant request failed: %v", err)
		_ = httptypes.WriteError(w, status, "internal server error", nil)
		return
	}

	_ = httptypes.WriteError(w, status, err.Error(), nil)
}

func pagination(r *http.Request) (int64, int64) {
	page, err := strconv.ParseInt(r.URL.Query().Get("page"), 10, 64)
	if err != nil || page < 1 {
		page = 1
	}

	size, err := strconv.ParseInt(r.URL.Query().Get("size"), 10, 64)
	if err != nil || size < 1 {
		size = defaultPageSize
	}

	return page, min(size, maxPageSize)
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, ErrTenantNotFound),
		errors.Is(err, ErrMemberNotFound),
		errors.Is(err, ErrUserNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrAlreadyMember),
		errors.Is(err, ErrCannotModifyOwner):
		return http.StatusConflict
	case errors.Is(err, ErrInvalidTenant),
		errors.Is(err, ErrInvalidRole):
		return http.StatusBadRequest
	case errors.Is(err, ErrNotAMember):
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}
