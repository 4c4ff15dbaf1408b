// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package connection

import (
	"encoding/json"
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
	mux.Post("/api/v0/connection-resources", a.createResource)
	mux.Get("/api/v0/connection-resources", a.listResources)
	mux.Get("/api/v0/connection-resources/{id}", a.getResource)
	mux.Patch("/api/v0/connection-resources/{id}", a.updateResource)
	mux.Delete("/api/v0/connection-resources/{id}", a.deleteResource)
}

func (a *API) createResource(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "connection.API.createResource")
	defer span.End()

	var req ResourceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpTypes.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := a.validate.Struct(req); err != nil {
		httpTypes.WriteErrorFromErr(w, err)
		return
	}

	resource, err := a.service.CreateResource(ctx, &req)
	if err != nil {
		a.logger.Errorf("failed to create connection resource: %v", err)
		httpTypes.WriteErrorFromErr(w, err)
		return
	}

	httpTypes.WriteResponse(w, http.StatusCreated, resource, "connection resource created")
}

func (a *API) getResource(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "connection.API.getResource")
	defer span.End()

	resource, err := a.service.GetResource(ctx, chi.URLParam(r, "id"))
	if err != nil {
		httpTypes.WriteErrorFromErr(w, err)
		return
	}

	httpTypes.WriteResponse(w, http.StatusOK, resource, "connection resource found")
}

func (a *API) listResources(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "connection.API.listResources")
	defer span.End()

	page, _ := strconv.ParseInt(r.URL.Query().Get("page"), 10, 64)
	size, _ := strconv.ParseInt(r.URL.Query().Get("size"), 10, 64)

	resources, err := a.service.ListResources(ctx, page, size)
	if err != nil {
		a.logger.Errorf("failed to list connection resources: %v", err)
		httpTypes.WriteErrorFromErr(w, err)
		return
	}

	httpTypes.WriteResponse(w, http.StatusOK, resources, "connection resources listed")
}

func (a *API) updateResource(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "connection.API.updateResource")
	defer span.End()

	var req UpdateResourceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpTypes.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	resource, err := a.service.UpdateResource(ctx, chi.URLParam(r, "id"), &req)
	if err != nil {
		a.logger.Errorf("failed to update connection resource: %v", err)
		httpTypes.WriteErrorFromErr(w, err)
		return
	}

	httpTypes.WriteResponse(w, http.StatusOK, resource, "connection resource updated")
}

func (a *API) deleteResource(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "connection.API.deleteResource")
	defer span.End()

	if err := a.service.DeleteResource(ctx, chi.URLParam(r, "id")); err != nil {
		httpTypes.WriteErrorFromErr(w, err)
		return
	}

	httpTypes.WriteResponse(w, http.StatusOK, nil, "connection resource deleted")
}
