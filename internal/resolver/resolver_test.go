package resolver_test

import (
	"context"
	"testing"
	"time"

	multitenancy "github.com/bartventer/gorm-multitenancy/v8"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agenthub/hub/internal/model"
	"github.com/agenthub/hub/internal/repo"
	"github.com/agenthub/hub/internal/repo/mock"
	"github.com/agenthub/hub/internal/resolver"
	hubcontext "github.com/agenthub/hub/utils/context"
)

const baseDomain = "agenthub.dev"

func seedTenant(t *testing.T, r repo.Repo, slug string, status model.TenantStatus) model.Tenant {
	t.Helper()

	tenant := model.Tenant{
		ID:     uuid.NewString(),
		Name:   "Tenant " + slug,
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

func newResolver(r repo.Repo) *resolver.Resolver {
	return resolver.New(r, 16, time.Minute)
}

func TestResolveDiscriminatorVariantsAreEquivalent(t *testing.T) {
	r := mock.NewRepo()
	tenant := seedTenant(t, r, "acme", model.TenantStatusActive)
	res := newResolver(r)

	principal := &model.Principal{
		UserID:   uuid.New(),
		TenantID: tenant.ID,
		Role:     model.RoleParticipant,
	}

	discriminators := map[string]resolver.Discriminator{
		"Header":    resolver.FromHeader("acme"),
		"Path":      resolver.FromPath("acme"),
		"Subdomain": resolver.FromSubdomain("acme.agenthub.dev:8443", baseDomain),
		"Principal": resolver.FromPrincipal(principal),
	}

	for name, d := range discriminators {
		t.Run(name, func(t *testing.T) {
			got, err := res.Resolve(context.Background(), d)
			require.NoError(t, err)

			assert.Equal(t, tenant.ID, got.TenantID)
			assert.Equal(t, "acme", got.Slug)
			assert.Equal(t, "t_acme", got.SchemaName)
			assert.Equal(t, model.TenantStatusActive, got.Status)
		})
	}
}

func TestResolveIsIdempotent(t *testing.T) {
	r := mock.NewRepo()
	seedTenant(t, r, "acme", model.TenantStatusActive)
	res := newResolver(r)

	first, err := res.Resolve(context.Background(), resolver.FromHeader("acme"))
	require.NoError(t, err)

	second, err := res.Resolve(context.Background(), resolver.FromHeader("acme"))
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestResolveUnknownTenant(t *testing.T) {
	res := newResolver(mock.NewRepo())

	_, err := res.Resolve(context.Background(), resolver.FromHeader("ghost"))
	assert.ErrorIs(t, err, resolver.ErrTenantNotFound)
}

func TestResolveEmptyDiscriminator(t *testing.T) {
	res := newResolver(mock.NewRepo())

	_, err := res.Resolve(context.Background(), resolver.FromHeader(""))
	assert.ErrorIs(t, err, resolver.ErrEmptyDiscriminator)

	_, err = res.Resolve(context.Background(), resolver.FromPrincipal(nil))
	assert.ErrorIs(t, err, resolver.ErrEmptyDiscriminator)
}

func TestResolveRejectsNonServingTenant(t *testing.T) {
	for _, status := range []model.TenantStatus{model.TenantStatusSuspended, model.TenantStatusInactive} {
		t.Run(string(status), func(t *testing.T) {
			r := mock.NewRepo()
			seedTenant(t, r, "acme", status)
			res := newResolver(r)

			_, err := res.Resolve(context.Background(), resolver.FromHeader("acme"))
			assert.ErrorIs(t, err, resolver.ErrTenantInactive)
		})
	}
}

// A suspension must be observed on the next resolution even when the old
// row was cached, provided the mutation path invalidated the cache.
func TestResolveObservesSuspensionAfterInvalidate(t *testing.T) {
	r := mock.NewRepo()
	tenant := seedTenant(t, r, "acme", model.TenantStatusActive)
	res := newResolver(r)

	_, err := res.Resolve(context.Background(), resolver.FromHeader("acme"))
	require.NoError(t, err)

	tenant.Status = model.TenantStatusSuspended
	_, err = r.Patch(context.Background(), &tenant, *repo.NewQuery().Update(repo.StatusField))
	require.NoError(t, err)

	res.Invalidate(tenant.ID, tenant.Slug)

	_, err = res.Resolve(context.Background(), resolver.FromHeader("acme"))
	assert.ErrorIs(t, err, resolver.ErrTenantInactive)
}

func TestResolveTenantMismatch(t *testing.T) {
	r := mock.NewRepo()
	acme := seedTenant(t, r, "acme", model.TenantStatusActive)
	seedTenant(t, r, "globex", model.TenantStatusActive)
	res := newResolver(r)

	principal := &model.Principal{
		UserID:   uuid.New(),
		TenantID: acme.ID,
		Role:     model.RoleParticipant,
	}

	ctx := hubcontext.InjectPrincipal(context.Background(), principal)

	_, err := res.Resolve(ctx, resolver.FromHeader("globex"))
	assert.ErrorIs(t, err, resolver.ErrTenantMismatch)

	got, err := res.Resolve(ctx, resolver.FromHeader("acme"))
	require.NoError(t, err)
	assert.Equal(t, acme.ID, got.TenantID)
}

func TestFromSubdomain(t *testing.T) {
	tests := []struct {
		name string
		host string
		want bool // resolvable
	}{
		{name: "Plain", host: "acme.agenthub.dev", want: true},
		{name: "WithPort", host: "acme.agenthub.dev:443", want: true},
		{name: "Nested", host: "x.acme.agenthub.dev", want: false},
		{name: "BaseOnly", host: "agenthub.dev", want: false},
		{name: "OtherDomain", host: "acme.example.com", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := resolver.FromSubdomain(tt.host, baseDomain)
			assert.Equal(t, !tt.want, d.Empty())
		})
	}
}
