package middleware_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	multitenancy "github.com/bartventer/gorm-multitenancy/v8"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agenthub/hub/internal/api/hubapi"
	"github.com/agenthub/hub/internal/apierrors"
	"github.com/agenthub/hub/internal/authz"
	"github.com/agenthub/hub/internal/middleware"
	"github.com/agenthub/hub/internal/model"
	"github.com/agenthub/hub/internal/repo/mock"
	hubcontext "github.com/agenthub/hub/utils/context"
)

type authzFixture struct {
	repo   *mock.Repo
	gate   *authz.Gate
	tenant model.Tenant
}

func setupAuthz(t *testing.T) *authzFixture {
	t.Helper()

	r := mock.NewRepo()

	tenant := model.Tenant{
		ID:     uuid.NewString(),
		Name:   "Acme",
		Slug:   "acme",
		Status: model.TenantStatusActive,
		Tier:   model.TierFree,
		TenantModel: multitenancy.TenantModel{
			DomainURL:  "acme",
			SchemaName: "t_acme",
		},
	}
	require.NoError(t, r.Create(context.Background(), &tenant))

	return &authzFixture{repo: r, gate: authz.NewGate(r), tenant: tenant}
}

func (f *authzFixture) addUser(t *testing.T, role model.Role, active bool) *model.Principal {
	t.Helper()

	ctx := hubcontext.CreateTenantContext(context.Background(), f.tenant.ID)

	user := model.User{
		ID:       uuid.New(),
		Email:    uuid.NewString() + "@acme.test",
		FullName: "Test User",
		Role:     role,
		Active:   active,
	}
	require.NoError(t, f.repo.Create(ctx, &user))

	return &model.Principal{
		UserID:   user.ID,
		TenantID: f.tenant.ID,
		Role:     role,
		Active:   active,
	}
}

// serveAuthz routes the request through a real mux so r.Pattern is set the
// way the router sets it, with principal and tenant bindings pre-injected.
func (f *authzFixture) serveAuthz(
	t *testing.T,
	method, pattern, target string,
	principal *model.Principal,
	withTenant bool,
) *httptest.ResponseRecorder {
	t.Helper()

	okHandler := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	mux := http.NewServeMux()
	mux.Handle(method+" "+pattern, middleware.AuthzMiddleware(f.gate)(okHandler))

	req := httptest.NewRequest(method, target, nil)

	var opts []hubcontext.Opt
	if principal != nil {
		opts = append(opts, hubcontext.WithPrincipal(principal))
	}

	if withTenant {
		opts = append(opts, hubcontext.WithTenant(f.tenant.ID))
	}

	ctx := hubcontext.New(req.Context(), opts...)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req.WithContext(ctx))

	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) hubapi.ErrorMessage {
	t.Helper()

	var message hubapi.ErrorMessage
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&message))

	return message
}

func TestAuthzAllowListSkipsChecks(t *testing.T) {
	f := setupAuthz(t)

	rec := f.serveAuthz(t, http.MethodGet, "/hub/v1/meta/roles", "/hub/v1/meta/roles", nil, false)

	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestAuthzUnknownRouteIsDenied(t *testing.T) {
	f := setupAuthz(t)
	principal := f.addUser(t, model.RoleSuperAdmin, true)

	rec := f.serveAuthz(t, http.MethodGet, "/hub/v1/surprise", "/hub/v1/surprise", principal, true)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, apierrors.ForbiddenErr, decodeError(t, rec).Error.Code)
}

func TestAuthzMissingPrincipal(t *testing.T) {
	f := setupAuthz(t)

	rec := f.serveAuthz(t, http.MethodGet, "/hub/v1/t/{tenant}/users", "/hub/v1/t/acme/users", nil, true)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthzRoleEnforcement(t *testing.T) {
	f := setupAuthz(t)

	tests := []struct {
		name       string
		role       model.Role
		wantStatus int
		wantCode   string
	}{
		{name: "participant lacks instructor", role: model.RoleParticipant, wantStatus: http.StatusForbidden, wantCode: apierrors.InsufficientRole},
		{name: "instructor allowed", role: model.RoleInstructor, wantStatus: http.StatusNoContent},
		{name: "tenant admin allowed", role: model.RoleTenantAdmin, wantStatus: http.StatusNoContent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			principal := f.addUser(t, tt.role, true)

			rec := f.serveAuthz(t, http.MethodGet, "/hub/v1/t/{tenant}/users", "/hub/v1/t/acme/users", principal, true)

			assert.Equal(t, tt.wantStatus, rec.Code)

			if tt.wantCode != "" {
				assert.Equal(t, tt.wantCode, decodeError(t, rec).Error.Code)
			}
		})
	}
}

func TestAuthzDeactivatedAccount(t *testing.T) {
	f := setupAuthz(t)
	principal := f.addUser(t, model.RoleTenantAdmin, false)

	rec := f.serveAuthz(t, http.MethodGet, "/hub/v1/t/{tenant}/users", "/hub/v1/t/acme/users", principal, true)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, apierrors.AccountInactive, decodeError(t, rec).Error.Code)
}

// Admin routes carry no tenant binding; the middleware falls back to the
// principal's home tenant to load the live user record.
func TestAuthzAdminRoutes(t *testing.T) {
	f := setupAuthz(t)

	admin := f.addUser(t, model.RoleSuperAdmin, true)
	rec := f.serveAuthz(t, http.MethodGet, "/hub/v1/admin/tenants", "/hub/v1/admin/tenants", admin, false)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	tenantAdmin := f.addUser(t, model.RoleTenantAdmin, true)
	rec = f.serveAuthz(t, http.MethodGet, "/hub/v1/admin/tenants", "/hub/v1/admin/tenants", tenantAdmin, false)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, apierrors.TenantScopeViolation, decodeError(t, rec).Error.Code)
}
