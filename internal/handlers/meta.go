package handlers

import (
	"net/http"

	"github.com/agenthub/hub/internal/api/hubapi"
	"github.com/agenthub/hub/internal/api/write"
	"github.com/agenthub/hub/internal/model"
)

// Healthz reports liveness.
func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	write.JSONResponse(r.Context(), w, http.StatusOK, map[string]string{"status": "ok"})
}

// ListRoles serves the role hierarchy in ascending privilege order. Clients
// drive their visible actions from this list so UI and enforcement share
// one source of truth.
func (h *Handler) ListRoles(w http.ResponseWriter, r *http.Request) {
	roles := model.Roles()
	value := make([]hubapi.RoleInfo, 0, len(roles))

	for _, role := range roles {
		level, err := role.Level()
		if err != nil {
			continue
		}

		value = append(value, hubapi.RoleInfo{Name: string(role), Level: level})
	}

	write.JSONResponse(r.Context(), w, http.StatusOK, value)
}

// GetTenant returns the profile of the tenant the request resolved to.
func (h *Handler) GetTenant(w http.ResponseWriter, r *http.Request) {
	tenant, err := h.manager.Tenant.Get(r.Context())
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	write.JSONResponse(r.Context(), w, http.StatusOK, toAPITenant(tenant))
}
