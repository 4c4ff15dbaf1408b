// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package user

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	httpTypes "github.com/canonical/tenant-manager/internal/http/types"
	"github.com/canonical/tenant-manager/internal/logging"
	"github.com/canonical/tenant-manager/internal/monitoring"
	"github.com/canonical/tenant-manager/internal/tracing"
)

type API struct {
	service  ServiceInterface
	validate *validator.Validate

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewAPI(
	service ServiceInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *API {
	return &API{
		service:  service,
		validate: validator.New(),
		tracer:   tracer,
		monitor:  monitor,
		logger:   logger,
	}
}

func (a *API) RegisterEndpoints(mux *chi.Mux) {
	mux.Post("/api/v0/users", a.createUser)
	mux.Get("/api/v0/users", a.listUsers)
	mux.Get("/api/v0/users/confirm-primary-email/{token}", a.confirmPrimaryEmail)
	mux.Get("/api/v0/users/{id}", a.getUser)
	mux.Patch("/api/v0/users/{id}", a.updateUser)
	mux.Delete("/api/v0/users/{id}", a.deleteUser)
	mux.Post("/api/v0/users/{id}/send-verification-email", a.sendVerificationEmail)
}

func (a *API) createUser(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(httpTypes.WithBaseURL(r.Context(), r), "user.API.createUser")
	defer span.End()

	var req CreateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpTypes.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := a.validate.Struct(req); err != nil {
		httpTypes.WriteErrorFromErr(w, err)
		return
	}

	user, err := a.service.CreateUser(ctx, &req)
	if err != nil {
		a.logger.Errorf("failed to create user: %v", err)
		httpTypes.WriteErrorFromErr(w, err)
		return
	}

	httpTypes.WriteResponse(w, http.StatusCreated, user, "user created")
}

func (a *API) getUser(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "user.API.getUser")
	defer span.End()

	user, err := a.service.GetUser(ctx, chi.URLParam(r, "id"))
	if err != nil {
		httpTypes.WriteErrorFromErr(w, err)
		return
	}

	httpTypes.WriteResponse(w, http.StatusOK, user, "user found")
}

func (a *API) listUsers(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "user.API.listUsers")
	defer span.End()

	page, size := pagination(r)

	users, err := a.service.ListUsers(ctx, page, size)
	if err != nil {
		a.logger.Errorf("failed to list users: %v", err)
		httpTypes.WriteErrorFromErr(w, err)
		return
	}

	httpTypes.WriteResponse(w, http.StatusOK, users, "users listed")
}

func (a *API) updateUser(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "user.API.updateUser")
	defer span.End()

	var req UpdateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpTypes.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := a.validate.Struct(req); err != nil {
		httpTypes.WriteErrorFromErr(w, err)
		return
	}

	user, err := a.service.UpdateUser(ctx, chi.URLParam(r, "id"), &req)
	if err != nil {
		a.logger.Errorf("failed to update user: %v", err)
		httpTypes.WriteErrorFromErr(w, err)
		return
	}

	httpTypes.WriteResponse(w, http.StatusOK, user, "user updated")
}

func (a *API) deleteUser(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "user.API.deleteUser")
	defer span.End()

	if err := a.service.DeleteUser(ctx, chi.URLParam(r, "id")); err != nil {
		httpTypes.WriteErrorFromErr(w, err)
		return
	}

	httpTypes.WriteResponse(w, http.StatusOK, nil, "user deleted")
}

func (a *API) sendVerificationEmail(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(httpTypes.WithBaseURL(r.Context(), r), "user.API.sendVerificationEmail")
	defer span.End()

	if err := a.service.SendVerificationEmail(ctx, chi.URLParam(r, "id")); err != nil {
		a.logger.Errorf("failed to send verification email: %v", err)
		httpTypes.WriteErrorFromErr(w, err)
		return
	}

	httpTypes.WriteResponse(w, http.StatusOK, nil, "verification email sent")
}

func (a *API) confirmPrimaryEmail(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "user.API.confirmPrimaryEmail")
	defer span.End()

	user, err := a.service.ConfirmPrimaryEmail(ctx, chi.URLParam(r, "token"))
	if err != nil {
		if errors.Is(err, ErrTokenExpired) {
			httpTypes.WriteError(w, http.StatusBadRequest, err.Error())
			return
		}
		httpTypes.WriteErrorFromErr(w, err)
		return
	}

	httpTypes.WriteResponse(w, http.StatusOK, user, "primary email confirmed")
}

// pagination reads ?page and ?size, zero when absent. Storage applies its own
// defaults.
func pagination(r *http.Request) (int64, int64) {
	page, _ := strconv.ParseInt(r.URL.Query().Get("page"), 10, 64)
	size, _ := strconv.ParseInt(r.URL.Query().Get("size"), 10, 64)
	return page, size
}
