// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package tenant

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	httpTypes "github.com/canonical/tenant-manager/internal/http/types"
	"github.com/canonical/tenant-manager/internal/logging"
	"github.com/canonical/tenant-manager/internal/monitoring"
	"github.com/canonical/tenant-manager/internal/tracing"
	"github.com/canonical/tenant-manager/internal/types"
)

type API struct {
	service       ServiceInterface
	validate      *validator.Validate
	logoSizeLimit int64

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewAPI(
	service ServiceInterface,
	logoSizeLimit int64,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *API {
	return &API{
		service:       service,
		validate:      validator.New(),
		logoSizeLimit: logoSizeLimit,
		tracer:        tracer,
		monitor:       monitor,
		logger:        logger,
	}
}

func (a *API) RegisterEndpoints(mux *chi.Mux) {
	mux.Post("/api/v0/tenants", a.createTenant)
	mux.Get("/api/v0/tenants", a.listTenants)
	mux.Get("/api/v0/tenants/unique-name/{uniqueName}", a.getTenantByUniqueName)
	mux.Get("/api/v0/tenants/{id}", a.getTenant)
	mux.Patch("/api/v0/tenants/{id}", a.updateTenant)
	mux.Delete("/api/v0/tenants/{id}", a.deleteTenant)

	mux.Post("/api/v0/tenants/{id}/primary-contact", a.linkUser(types.RelationPrimaryContact))
	mux.Delete("/api/v0/tenants/{id}/primary-contact", a.unlinkPrimaryContact)

	mux.Post("/api/v0/tenants/{id}/team-member", a.linkUser(types.RelationTeamMember))
	mux.Put("/api/v0/tenants/{id}/team-member/{userId}/roles", a.updateRoles(types.RelationTeamMember))
	mux.Delete("/api/v0/tenants/{id}/team-member/{userId}", a.unlinkUser(types.RelationTeamMember))
	mux.Get("/api/v0/tenants/{id}/team-members", a.listTeamMembers)

	mux.Post("/api/v0/tenants/{id}/account-officer", a.linkUser(types.RelationAccountOfficer))
	mux.Put("/api/v0/tenants/{id}/account-officer/{userId}/roles", a.updateRoles(types.RelationAccountOfficer))
	mux.Delete("/api/v0/tenants/{id}/account-officer/{userId}", a.unlinkUser(types.RelationAccountOfficer))
	mux.Get("/api/v0/tenants/{id}/account-officers", a.listAccountOfficers)
	mux.Get("/api/v0/users/{userId}/tenants-by-account-officer", a.listTenantsByAccountOfficer)

	mux.Post("/api/v0/tenants/{id}/custom-theme", a.setCustomTheme)
	mux.Patch("/api/v0/tenants/{id}/custom-theme/{themeId}", a.updateCustomTheme)
	mux.Delete("/api/v0/tenants/{id}/custom-theme", a.unsetCustomTheme)

	mux.Post("/api/v0/tenants/{id}/themes", a.addTheme)
	mux.Get("/api/v0/tenants/{id}/themes", a.listThemes)
	mux.Patch("/api/v0/tenants/{id}/themes/{themeId}", a.linkTheme)
	mux.Delete("/api/v0/tenants/{id}/themes/{themeId}", a.unlinkTheme)

	mux.Post("/api/v0/tenants/{id}/billings", a.addBilling)
	mux.Get("/api/v0/tenants/{id}/billings", a.listBillings)
	mux.Patch("/api/v0/tenants/{id}/billings/{billingId}", a.linkBilling)
	mux.Delete("/api/v0/tenants/{id}/billings/{billingId}", a.removeBilling)

	mux.Patch("/api/v0/tenants/{id}/connection-resource/{resourceId}", a.setConnectionResource)
	mux.Delete("/api/v0/tenants/{id}/connection-resource", a.unsetConnectionResource)

	mux.Post("/api/v0/tenants/{id}/logo", a.uploadLogo)
	mux.Get("/api/v0/tenants/{id}/logo", a.downloadLogo)
}

func (a *API) createTenant(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(httpTypes.WithBaseURL(r.Context(), r), "tenant.API.createTenant")
	defer span.End()

	var req CreateTenantRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpTypes.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := a.validate.Struct(req); err != nil {
		httpTypes.WriteErrorFromErr(w, err)
		return
	}

	tenant, err := a.service.CreateTenant(ctx, &req)
	if err != nil {
		a.writeLinkError(w, err, "failed to create tenant")
		return
	}

	httpTypes.WriteResponse(w, http.StatusCreated, tenant, "tenant created")
}

func (a *API) getTenant(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "tenant.API.getTenant")
	defer span.End()

	tenant, err := a.service.GetTenant(ctx, chi.URLParam(r, "id"))
	if err != nil {
		httpTypes.WriteErrorFromErr(w, err)
		return
	}

	httpTypes.WriteResponse(w, http.StatusOK, tenant, "tenant found")
}

func (a *API) getTenantByUniqueName(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "tenant.API.getTenantByUniqueName")
	defer span.End()

	tenant, err := a.service.GetTenantByUniqueName(ctx, chi.URLParam(r, "uniqueName"))
	if err != nil {
		httpTypes.WriteErrorFromErr(w, err)
		return
	}

	httpTypes.WriteResponse(w, http.StatusOK, tenant, "tenant found")
}

func (a *API) listTenants(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "tenant.API.listTenants")
	defer span.End()

	page, size := pagination(r)

	var active *bool
	if raw := r.URL.Query().Get("active"); raw != "" {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			httpTypes.WriteError(w, http.StatusBadRequest, "invalid active filter")
			return
		}
		active = &parsed
	}

	tenants, err := a.service.ListTenants(ctx, page, size, active)
	if err != nil {
		a.logger.Errorf("failed to list tenants: %v", err)
		httpTypes.WriteErrorFromErr(w, err)
		return
	}

	httpTypes.WriteResponse(w, http.StatusOK, tenants, "tenants listed")
}

func (a *API) updateTenant(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "tenant.API.updateTenant")
	defer span.End()

	var req UpdateTenantRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpTypes.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := a.validate.Struct(req); err != nil {
		httpTypes.WriteErrorFromErr(w, err)
		return
	}

	tenant, err := a.service.UpdateTenant(ctx, chi.URLParam(r, "id"), &req)
	if err != nil {
		a.logger.Errorf("failed to update tenant: %v", err)
		httpTypes.WriteErrorFromErr(w, err)
		return
	}

	httpTypes.WriteResponse(w, http.StatusOK, tenant, "tenant updated")
}

func (a *API) deleteTenant(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "tenant.API.deleteTenant")
	defer span.End()

	if err := a.service.DeleteTenant(ctx, chi.URLParam(r, "id")); err != nil {
		httpTypes.WriteErrorFromErr(w, err)
		return
	}

	httpTypes.WriteResponse(w, http.StatusOK, nil, "tenant deleted")
}

func (a *API) linkUser(kind types.RelationKind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := a.tracer.Start(httpTypes.WithBaseURL(r.Context(), r), fmt.Sprintf("tenant.API.linkUser.%s", kind))
		defer span.End()

		var req LinkUserRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			httpTypes.WriteError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		if req.NewUser != nil {
			if err := a.validate.Struct(req.NewUser); err != nil {
				httpTypes.WriteErrorFromErr(w, err)
				return
			}
		}

		user, err := a.service.LinkUser(ctx, chi.URLParam(r, "id"), kind, &req)
		if err != nil {
			a.writeLinkError(w, err, "failed to link user")
			return
		}

		httpTypes.WriteResponse(w, http.StatusCreated, user, "user linked")
	}
}

func (a *API) unlinkPrimaryContact(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "tenant.API.unlinkPrimaryContact")
	defer span.End()

	if err := a.service.UnlinkUser(ctx, chi.URLParam(r, "id"), types.RelationPrimaryContact, ""); err != nil {
		httpTypes.WriteErrorFromErr(w, err)
		return
	}

	httpTypes.WriteResponse(w, http.StatusOK, nil, "primary contact unlinked")
}

func (a *API) unlinkUser(kind types.RelationKind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := a.tracer.Start(r.Context(), fmt.Sprintf("tenant.API.unlinkUser.%s", kind))
		defer span.End()

		err := a.service.UnlinkUser(ctx, chi.URLParam(r, "id"), kind, chi.URLParam(r, "userId"))
		if err != nil {
			httpTypes.WriteErrorFromErr(w, err)
			return
		}

		httpTypes.WriteResponse(w, http.StatusOK, nil, "user unlinked")
	}
}

func (a *API) updateRoles(kind types.RelationKind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := a.tracer.Start(r.Context(), fmt.Sprintf("tenant.API.updateRoles.%s", kind))
		defer span.End()

		var req UpdateRolesRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			httpTypes.WriteError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		if err := a.validate.Struct(req); err != nil {
			httpTypes.WriteErrorFromErr(w, err)
			return
		}

		err := a.service.UpdateRelationRoles(ctx, chi.URLParam(r, "id"), kind, chi.URLParam(r, "userId"), req.Roles)
		if err != nil {
			a.writeLinkError(w, err, "failed to update roles")
			return
		}

		httpTypes.WriteResponse(w, http.StatusOK, nil, "roles updated")
	}
}

func (a *API) listTeamMembers(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "tenant.API.listTeamMembers")
	defer span.End()

	members, err := a.service.ListTeamMembers(ctx, chi.URLParam(r, "id"))
	if err != nil {
		httpTypes.WriteErrorFromErr(w, err)
		return
	}

	httpTypes.WriteResponse(w, http.StatusOK, members, "team members listed")
}

func (a *API) listAccountOfficers(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "tenant.API.listAccountOfficers")
	defer span.End()

	officers, err := a.service.ListAccountOfficers(ctx, chi.URLParam(r, "id"))
	if err != nil {
		httpTypes.WriteErrorFromErr(w, err)
		return
	}

	httpTypes.WriteResponse(w, http.StatusOK, officers, "account officers listed")
}

func (a *API) listTenantsByAccountOfficer(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "tenant.API.listTenantsByAccountOfficer")
	defer span.End()

	tenants, err := a.service.ListTenantsByAccountOfficer(ctx, chi.URLParam(r, "userId"))
	if err != nil {
		httpTypes.WriteErrorFromErr(w, err)
		return
	}

	httpTypes.WriteResponse(w, http.StatusOK, tenants, "tenants listed")
}

func (a *API) setCustomTheme(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "tenant.API.setCustomTheme")
	defer span.End()

	var req CustomThemeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpTypes.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := a.validate.Struct(req); err != nil {
		httpTypes.WriteErrorFromErr(w, err)
		return
	}

	theme, err := a.service.SetCustomTheme(ctx, chi.URLParam(r, "id"), &req)
	if err != nil {
		httpTypes.WriteErrorFromErr(w, err)
		return
	}

	httpTypes.WriteResponse(w, http.StatusCreated, theme, "custom theme set")
}

func (a *API) updateCustomTheme(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "tenant.API.updateCustomTheme")
	defer span.End()

	var req CustomThemeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpTypes.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := a.validate.Struct(req); err != nil {
		httpTypes.WriteErrorFromErr(w, err)
		return
	}

	theme, err := a.service.UpdateCustomTheme(ctx, chi.URLParam(r, "themeId"), &req)
	if err != nil {
		httpTypes.WriteErrorFromErr(w, err)
		return
	}

	httpTypes.WriteResponse(w, http.StatusOK, theme, "custom theme updated")
}

func (a *API) unsetCustomTheme(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "tenant.API.unsetCustomTheme")
	defer span.End()

	if err := a.service.UnsetCustomTheme(ctx, chi.URLParam(r, "id")); err != nil {
		httpTypes.WriteErrorFromErr(w, err)
		return
	}

	httpTypes.WriteResponse(w, http.StatusOK, nil, "custom theme removed")
}

func (a *API) addTheme(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "tenant.API.addTheme")
	defer span.End()

	var req ThemeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpTypes.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := a.validate.Struct(req); err != nil {
		httpTypes.WriteErrorFromErr(w, err)
		return
	}

	theme, err := a.service.AddTheme(ctx, chi.URLParam(r, "id"), &req)
	if err != nil {
		httpTypes.WriteErrorFromErr(w, err)
		return
	}

	httpTypes.WriteResponse(w, http.StatusCreated, theme, "theme added")
}

func (a *API) linkTheme(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "tenant.API.linkTheme")
	defer span.End()

	err := a.service.LinkTheme(ctx, chi.URLParam(r, "id"), chi.URLParam(r, "themeId"))
	if err != nil {
		httpTypes.WriteErrorFromErr(w, err)
		return
	}

	httpTypes.WriteResponse(w, http.StatusOK, nil, "theme linked")
}

func (a *API) unlinkTheme(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "tenant.API.unlinkTheme")
	defer span.End()

	err := a.service.UnlinkTheme(ctx, chi.URLParam(r, "id"), chi.URLParam(r, "themeId"))
	if err != nil {
		httpTypes.WriteErrorFromErr(w, err)
		return
	}

	httpTypes.WriteResponse(w, http.StatusOK, nil, "theme unlinked")
}

func (a *API) listThemes(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "tenant.API.listThemes")
	defer span.End()

	themes, err := a.service.ListThemes(ctx, chi.URLParam(r, "id"))
	if err != nil {
		httpTypes.WriteErrorFromErr(w, err)
		return
	}

	httpTypes.WriteResponse(w, http.StatusOK, themes, "themes listed")
}

func (a *API) addBilling(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "tenant.API.addBilling")
	defer span.End()

	var req BillingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpTypes.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := a.validate.Struct(req); err != nil {
		httpTypes.WriteErrorFromErr(w, err)
		return
	}

	billing, err := a.service.AddBilling(ctx, chi.URLParam(r, "id"), &req)
	if err != nil {
		httpTypes.WriteErrorFromErr(w, err)
		return
	}

	httpTypes.WriteResponse(w, http.StatusCreated, billing, "billing added")
}

func (a *API) linkBilling(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "tenant.API.linkBilling")
	defer span.End()

	if err := a.service.LinkBilling(ctx, chi.URLParam(r, "id"), chi.URLParam(r, "billingId")); err != nil {
		httpTypes.WriteErrorFromErr(w, err)
		return
	}

	httpTypes.WriteResponse(w, http.StatusOK, nil, "billing linked")
}

func (a *API) removeBilling(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "tenant.API.removeBilling")
	defer span.End()

	if err := a.service.RemoveBilling(ctx, chi.URLParam(r, "billingId")); err != nil {
		httpTypes.WriteErrorFromErr(w, err)
		return
	}

	httpTypes.WriteResponse(w, http.StatusOK, nil, "billing removed")
}

func (a *API) listBillings(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "tenant.API.listBillings")
	defer span.End()

	billings, err := a.service.ListBillings(ctx, chi.URLParam(r, "id"))
	if err != nil {
		httpTypes.WriteErrorFromErr(w, err)
		return
	}

	httpTypes.WriteResponse(w, http.StatusOK, billings, "billings listed")
}

func (a *API) setConnectionResource(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "tenant.API.setConnectionResource")
	defer span.End()

	err := a.service.SetConnectionResource(ctx, chi.URLParam(r, "id"), chi.URLParam(r, "resourceId"))
	if err != nil {
		httpTypes.WriteErrorFromErr(w, err)
		return
	}

	httpTypes.WriteResponse(w, http.StatusOK, nil, "connection resource set")
}

func (a *API) unsetConnectionResource(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "tenant.API.unsetConnectionResource")
	defer span.End()

	if err := a.service.UnsetConnectionResource(ctx, chi.URLParam(r, "id")); err != nil {
		httpTypes.WriteErrorFromErr(w, err)
		return
	}

	httpTypes.WriteResponse(w, http.StatusOK, nil, "connection resource unset")
}

func (a *API) uploadLogo(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "tenant.API.uploadLogo")
	defer span.End()

	// Bound the whole request body, multipart framing included.
	r.Body = http.MaxBytesReader(w, r.Body, a.logoSizeLimit+4096)

	if err := r.ParseMultipartForm(a.logoSizeLimit); err != nil {
		httpTypes.WriteError(w, http.StatusBadRequest, "logo exceeds the size limit or the form is malformed")
		return
	}

	file, header, err := r.FormFile("logo")
	if err != nil {
		httpTypes.WriteError(w, http.StatusBadRequest, "missing logo file field")
		return
	}
	defer file.Close()

	if header.Size > a.logoSizeLimit {
		httpTypes.WriteError(w, http.StatusBadRequest, "logo exceeds the size limit")
		return
	}

	mimeType := header.Header.Get("Content-Type")
	if mimeType == "" {
		mimeType = "application/octet-stream"
	}

	if err := a.service.UploadLogo(ctx, chi.URLParam(r, "id"), file, mimeType); err != nil {
		a.logger.Errorf("failed to upload logo: %v", err)
		httpTypes.WriteErrorFromErr(w, err)
		return
	}

	httpTypes.WriteResponse(w, http.StatusCreated, nil, "logo uploaded")
}

func (a *API) downloadLogo(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "tenant.API.downloadLogo")
	defer span.End()

	logo, mimeType, err := a.service.DownloadLogo(ctx, chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, ErrNoLogo) {
			w.Header().Set("Content-Type", BlankAvatarMimeType)
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte(BlankAvatar))
			return
		}
		httpTypes.WriteErrorFromErr(w, err)
		return
	}
	defer logo.Close()

	w.Header().Set("Content-Type", mimeType)
	w.WriteHeader(http.StatusOK)
	if _, err := io.Copy(w, logo); err != nil {
		a.logger.Errorf("failed to stream logo: %v", err)
	}
}

// writeLinkError surfaces the linking error taxonomy before falling back to
// the generic mapping.
func (a *API) writeLinkError(w http.ResponseWriter, err error, logContext string) {
	switch {
	case errors.Is(err, ErrInvalidRelationKind),
		errors.Is(err, ErrInvalidRole),
		errors.Is(err, ErrInvalidLinkRequest):
		httpTypes.WriteError(w, http.StatusBadRequest, err.Error())
	default:
		a.logger.Errorf("%s: %v", logContext, err)
		httpTypes.WriteErrorFromErr(w, err)
	}
}

// pagination reads ?page and ?size, zero when absent. Storage applies its own
// defaults.
func pagination(r *http.Request) (int64, int64) {
	page, _ := strconv.ParseInt(r.URL.Query().Get("page"), 10, 64)
	size, _ := strconv.ParseInt(r.URL.Query().Get("size"), 10, 64)
	return page, size
}
