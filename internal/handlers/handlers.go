package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/agenthub/hub/internal/api/write"
	"github.com/agenthub/hub/internal/apierrors"
	"github.com/agenthub/hub/internal/authz"
	"github.com/agenthub/hub/internal/config"
	"github.com/agenthub/hub/internal/constants"
	"github.com/agenthub/hub/internal/log"
	"github.com/agenthub/hub/internal/manager"
	"github.com/agenthub/hub/internal/middleware"
	"github.com/agenthub/hub/internal/resolver"
)

// Handler carries the domain managers the HTTP surface dispatches into.
type Handler struct {
	manager *manager.Manager
}

func New(mgr *manager.Manager) *Handler {
	return &Handler{manager: mgr}
}

// NewRouter wires every route with its middleware chain. Tenant-scoped
// routes resolve the tenant before authorization; admin routes are
// authorized against the principal's home tenant and read cross-tenant
// data through their own explicitly privileged path.
func NewRouter(
	mgr *manager.Manager,
	gate *authz.Gate,
	res *resolver.Resolver,
	cfg config.Config,
) http.Handler {
	h := New(mgr)
	mux := http.NewServeMux()

	tenantChain := chain(
		middleware.InjectPrincipal(cfg.Auth),
		middleware.InjectMultiTenancy(res, cfg.Resolver.BaseDomain),
		middleware.AuthzMiddleware(gate),
	)
	adminChain := chain(
		middleware.InjectPrincipal(cfg.Auth),
		middleware.AuthzMiddleware(gate),
	)

	base := constants.BasePath

	mux.HandleFunc("GET /healthz", h.Healthz)
	mux.Handle("GET /metrics", promhttp.Handler())
	mux.HandleFunc("GET "+base+"/meta/roles", h.ListRoles)

	mux.Handle("GET "+base+"/t/{tenant}", tenantChain(http.HandlerFunc(h.GetTenant)))
	mux.Handle("GET "+base+"/t/{tenant}/users", tenantChain(http.HandlerFunc(h.ListUsers)))
	mux.Handle("POST "+base+"/t/{tenant}/users", tenantChain(http.HandlerFunc(h.CreateUser)))
	mux.Handle("GET "+base+"/t/{tenant}/users/{id}", tenantChain(http.HandlerFunc(h.GetUser)))
	mux.Handle("PATCH "+base+"/t/{tenant}/users/{id}", tenantChain(http.HandlerFunc(h.PatchUser)))
	mux.Handle("GET "+base+"/t/{tenant}/workshops", tenantChain(http.HandlerFunc(h.ListWorkshops)))
	mux.Handle("POST "+base+"/t/{tenant}/workshops", tenantChain(http.HandlerFunc(h.CreateWorkshop)))
	mux.Handle("GET "+base+"/t/{tenant}/workshops/{id}", tenantChain(http.HandlerFunc(h.GetWorkshop)))
	mux.Handle("PATCH "+base+"/t/{tenant}/workshops/{id}", tenantChain(http.HandlerFunc(h.PatchWorkshop)))
	mux.Handle("GET "+base+"/t/{tenant}/library", tenantChain(http.HandlerFunc(h.ListLibrary)))
	mux.Handle("POST "+base+"/t/{tenant}/library", tenantChain(http.HandlerFunc(h.CreateLibraryResource)))
	mux.Handle("GET "+base+"/t/{tenant}/library/{id}", tenantChain(http.HandlerFunc(h.GetLibraryResource)))

	mux.Handle("GET "+base+"/admin/tenants", adminChain(http.HandlerFunc(h.ListTenants)))
	mux.Handle("POST "+base+"/admin/tenants", adminChain(http.HandlerFunc(h.CreateTenant)))
	mux.Handle("PATCH "+base+"/admin/tenants/{id}", adminChain(http.HandlerFunc(h.PatchTenant)))
	mux.Handle("GET "+base+"/admin/tenants/{id}/summary", adminChain(http.HandlerFunc(h.TenantSummary)))

	return chain(
		middleware.InjectRequestID(),
		middleware.LoggingMiddleware(),
		middleware.MetricsMiddleware(),
		middleware.PanicRecoveryMiddleware(),
	)(mux)
}

func chain(mws ...func(http.Handler) http.Handler) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		for i := len(mws) - 1; i >= 0; i-- {
			next = mws[i](next)
		}

		return next
	}
}

// respondError maps an internal error chain to its wire representation.
func (h *Handler) respondError(w http.ResponseWriter, r *http.Request, err error) {
	ctx := r.Context()

	log.Error(ctx, "request failed", err)
	write.ErrorResponse(ctx, w, apierrors.TransformToAPIError(ctx, err))
}

func decodeBody(w http.ResponseWriter, r *http.Request, target any) bool {
	err := json.NewDecoder(r.Body).Decode(target)
	if err != nil {
		write.ErrorResponse(r.Context(), w, apierrors.JSONDecodeErrorMessage())
		return false
	}

	return true
}

// pagination reads skip/top query parameters, falling back to defaults on
// absent or unparsable values.
func pagination(r *http.Request) (int, int) {
	skip := constants.DefaultSkip
	top := constants.DefaultTop

	if v, err := strconv.Atoi(r.URL.Query().Get("skip")); err == nil && v >= 0 {
		skip = v
	}

	if v, err := strconv.Atoi(r.URL.Query().Get("top")); err == nil && v > 0 {
		top = v
	}

	return skip, top
}

func pathUUID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		write.ErrorResponse(r.Context(), w, apierrors.ParamsErrorMessage("id must be a valid UUID"))
		return uuid.Nil, false
	}

	return id, true
}
