package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	multitenancy "github.com/bartventer/gorm-multitenancy/v8"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agenthub/hub/internal/apierrors"
	"github.com/agenthub/hub/internal/middleware"
	"github.com/agenthub/hub/internal/model"
	"github.com/agenthub/hub/internal/repo/mock"
	"github.com/agenthub/hub/internal/resolver"
	hubcontext "github.com/agenthub/hub/utils/context"
)

const testBaseDomain = "agenthub.dev"

func seedTenant(t *testing.T, r *mock.Repo, slug string, status model.TenantStatus) model.Tenant {
	t.Helper()

	tenant := model.Tenant{
		ID:     uuid.NewString(),
		Name:   slug,
		Slug:   slug,
		Status: status,
		Tier:   model.TierFree,
		TenantModel: multitenancy.TenantModel{
			DomainURL:  slug,
			SchemaName: model.SchemaNameForSlug(slug),
		},
	}
	require.NoError(t, r.Create(context.Background(), &tenant))

	return tenant
}

// serveTenant pushes the request through a mux so {tenant} path values are
// populated, and records the tenant ID the handler observes.
func serveTenant(t *testing.T, res *resolver.Resolver, req *http.Request) (*httptest.ResponseRecorder, string) {
	t.Helper()

	var boundTenant string

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tenantID, err := hubcontext.ExtractTenantID(r.Context())
		require.NoError(t, err)

		boundTenant = tenantID

		w.WriteHeader(http.StatusNoContent)
	})

	handler := middleware.InjectMultiTenancy(res, testBaseDomain)(next)

	mux := http.NewServeMux()
	mux.Handle("GET /t/{tenant}/ping", handler)
	mux.Handle("GET /ping", handler)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	return rec, boundTenant
}

func TestInjectMultiTenancyDiscriminators(t *testing.T) {
	r := mock.NewRepo()
	tenant := seedTenant(t, r, "acme", model.TenantStatusActive)
	res := resolver.New(r, 16, time.Minute)

	t.Run("path segment", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/t/acme/ping", nil)

		rec, bound := serveTenant(t, res, req)
		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Equal(t, tenant.ID, bound)
	})

	t.Run("header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set("X-Hub-Tenant", "acme")

		rec, bound := serveTenant(t, res, req)
		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Equal(t, tenant.ID, bound)
	})

	t.Run("subdomain", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Host = "acme.agenthub.dev"

		rec, bound := serveTenant(t, res, req)
		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Equal(t, tenant.ID, bound)
	})

	t.Run("principal fallback", func(t *testing.T) {
		principal := &model.Principal{
			UserID:   uuid.New(),
			TenantID: tenant.ID,
			Role:     model.RoleParticipant,
			Active:   true,
		}

		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req = req.WithContext(hubcontext.InjectPrincipal(req.Context(), principal))

		rec, bound := serveTenant(t, res, req)
		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Equal(t, tenant.ID, bound)
	})

	t.Run("path wins over header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/t/acme/ping", nil)
		req.Header.Set("X-Hub-Tenant", "globex")

		rec, bound := serveTenant(t, res, req)
		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Equal(t, tenant.ID, bound)
	})
}

func TestInjectMultiTenancyFailsClosed(t *testing.T) {
	r := mock.NewRepo()
	seedTenant(t, r, "acme", model.TenantStatusActive)
	suspended := seedTenant(t, r, "globex", model.TenantStatusSuspended)
	res := resolver.New(r, 16, time.Minute)

	t.Run("unknown tenant", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/t/nosuch/ping", nil)

		rec, _ := serveTenant(t, res, req)
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, apierrors.TenantNotFound, decodeError(t, rec).Error.Code)
	})

	t.Run("no discriminator", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)

		rec, _ := serveTenant(t, res, req)
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, apierrors.TenantNotFound, decodeError(t, rec).Error.Code)
	})

	t.Run("suspended tenant is locked", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/t/globex/ping", nil)

		rec, _ := serveTenant(t, res, req)
		assert.Equal(t, http.StatusLocked, rec.Code)
		assert.Equal(t, apierrors.TenantInactive, decodeError(t, rec).Error.Code)
	})

	t.Run("principal bound to another tenant", func(t *testing.T) {
		principal := &model.Principal{
			UserID:   uuid.New(),
			TenantID: suspended.ID,
			Role:     model.RoleParticipant,
			Active:   true,
		}

		req := httptest.NewRequest(http.MethodGet, "/t/acme/ping", nil)
		req = req.WithContext(hubcontext.InjectPrincipal(req.Context(), principal))

		rec, _ := serveTenant(t, res, req)
		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Equal(t, apierrors.TenantScopeViolation, decodeError(t, rec).Error.Code)
	})
}
