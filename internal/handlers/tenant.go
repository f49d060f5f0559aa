package handlers

import (
	"net/http"

	"github.com/agenthub/hub/internal/api/hubapi"
	"github.com/agenthub/hub/internal/api/write"
	"github.com/agenthub/hub/internal/apierrors"
	"github.com/agenthub/hub/internal/model"
)

// ListTenants is the cross-tenant directory view. It reads through the
// admin store, never through the tenant-scoped repository.
func (h *Handler) ListTenants(w http.ResponseWriter, r *http.Request) {
	skip, top := pagination(r)

	tenants, count, err := h.manager.Tenant.ListAll(r.Context(), skip, top)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	write.JSONResponse(r.Context(), w, http.StatusOK, toAPITenantList(tenants, count, skip, top))
}

// CreateTenant provisions a new organization with its own data partition.
func (h *Handler) CreateTenant(w http.ResponseWriter, r *http.Request) {
	var req hubapi.CreateTenantRequest
	if !decodeBody(w, r, &req) {
		return
	}

	tenant, err := h.manager.Tenant.Provision(r.Context(), req.Name, req.Slug, model.Tier(req.Tier))
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	write.JSONResponse(r.Context(), w, http.StatusCreated, toAPITenant(tenant))
}

// PatchTenant applies tier changes and lifecycle events. The slug is
// immutable and absent from the patch surface on purpose.
func (h *Handler) PatchTenant(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	var req hubapi.PatchTenantRequest
	if !decodeBody(w, r, &req) {
		return
	}

	var (
		tenant *model.Tenant
		err    error
	)

	if req.Tier != nil {
		tenant, err = h.manager.Tenant.UpdateTier(r.Context(), id, model.Tier(*req.Tier))
		if err != nil {
			h.respondError(w, r, err)
			return
		}
	}

	if req.StatusEvent != nil {
		tenant, err = h.manager.Tenant.ChangeStatus(r.Context(), id, *req.StatusEvent)
		if err != nil {
			h.respondError(w, r, err)
			return
		}
	}

	if tenant == nil {
		write.ErrorResponse(r.Context(), w, apierrors.ParamsErrorMessage("tier or statusEvent must be provided"))
		return
	}

	write.JSONResponse(r.Context(), w, http.StatusOK, toAPITenant(tenant))
}

// TenantSummary serves the per-organization row of the admin dashboard.
func (h *Handler) TenantSummary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.manager.Tenant.Summary(r.Context(), r.PathValue("id"))
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	write.JSONResponse(r.Context(), w, http.StatusOK, hubapi.TenantSummary{
		Tenant:    toAPITenant(summary.Tenant),
		UserCount: summary.UserCount,
	})
}
