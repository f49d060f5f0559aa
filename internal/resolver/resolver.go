package resolver

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/agenthub/hub/internal/errs"
	"github.com/agenthub/hub/internal/model"
	"github.com/agenthub/hub/internal/repo"
	hubcontext "github.com/agenthub/hub/utils/context"
)

var (
	ErrTenantNotFound       = errors.New("tenant not found")
	ErrTenantInactive       = errors.New("tenant is suspended or inactive")
	ErrTenantMismatch       = errors.New("tenant does not match the principal's tenant")
	ErrEmptyDiscriminator   = errors.New("tenant discriminator is empty")
	ErrUnknownDiscriminator = errors.New("unknown tenant discriminator source")
)

// Source enumerates where a tenant discriminator may come from. Every
// source funnels into the same Resolve path; there is no way to construct
// a Discriminator that skips validation.
type Source int

const (
	SourceHeader Source = iota + 1
	SourceSubdomain
	SourcePrincipal
	SourcePath
)

// Discriminator is the tagged value a request carries to name its tenant.
type Discriminator struct {
	source Source
	slug   string
	id     string
}

// FromHeader builds a discriminator from an explicit tenant header value.
func FromHeader(slug string) Discriminator {
	return Discriminator{source: SourceHeader, slug: strings.TrimSpace(slug)}
}

// FromSubdomain builds a discriminator from the request host. baseDomain is
// stripped; the remaining left-most label is the tenant slug.
func FromSubdomain(host, baseDomain string) Discriminator {
	host = strings.ToLower(host)
	if h, _, found := strings.Cut(host, ":"); found {
		host = h
	}

	suffix := "." + strings.ToLower(baseDomain)
	if baseDomain == "" || !strings.HasSuffix(host, suffix) {
		return Discriminator{source: SourceSubdomain}
	}

	sub := strings.TrimSuffix(host, suffix)
	if strings.Contains(sub, ".") {
		// Nested subdomains are not tenant slugs.
		return Discriminator{source: SourceSubdomain}
	}

	return Discriminator{source: SourceSubdomain, slug: sub}
}

// FromPath builds a discriminator from a tenant slug carried as a URL
// path segment.
func FromPath(slug string) Discriminator {
	return Discriminator{source: SourcePath, slug: strings.TrimSpace(slug)}
}

// FromPrincipal builds a discriminator from the authenticated principal's
// stored tenant reference.
func FromPrincipal(p *model.Principal) Discriminator {
	if p == nil {
		return Discriminator{source: SourcePrincipal}
	}

	return Discriminator{source: SourcePrincipal, id: p.TenantID}
}

// Empty reports whether the discriminator carries no tenant reference.
// Resolving an empty discriminator fails with ErrEmptyDiscriminator.
func (d Discriminator) Empty() bool {
	return d.slug == "" && d.id == ""
}

// TenantContext is the resolved tenant binding handed to downstream
// components. SchemaName is the data-partition reference all scoped
// repository operations execute against.
type TenantContext struct {
	TenantID   string
	Slug       string
	SchemaName string
	Status     model.TenantStatus
	Tier       model.Tier
}

// Resolver maps an inbound discriminator to exactly one TenantContext,
// failing closed on any ambiguity. Resolution is a pure lookup plus
// validation; it never mutates tenant state.
type Resolver struct {
	repo  repo.Repo
	cache *expirable.LRU[string, model.Tenant]
}

// New creates a Resolver. Cached rows are bounded by ttl and evicted
// explicitly whenever a tenant is mutated, so a suspension is observed on
// the very next resolution.
func New(r repo.Repo, size int, ttl time.Duration) *Resolver {
	return &Resolver{
		repo:  r,
		cache: expirable.NewLRU[string, model.Tenant](size, nil, ttl),
	}
}

// Resolve validates the discriminator and returns the tenant context.
func (r *Resolver) Resolve(ctx context.Context, d Discriminator) (TenantContext, error) {
	tenant, err := r.lookup(ctx, d)
	if err != nil {
		return TenantContext{}, err
	}

	// Status is checked on every resolution so a suspended tenant is
	// rejected before any data access is attempted.
	if !tenant.Status.Serving() {
		r.Invalidate(tenant.ID, tenant.Slug)
		return TenantContext{}, ErrTenantInactive
	}

	// An authenticated request must resolve to the tenant the principal's
	// account belongs to, whatever the discriminator claimed.
	principal, perr := hubcontext.ExtractPrincipal(ctx)
	if perr == nil && principal.TenantID != tenant.ID {
		return TenantContext{}, ErrTenantMismatch
	}

	return TenantContext{
		TenantID:   tenant.ID,
		Slug:       tenant.Slug,
		SchemaName: tenant.SchemaName,
		Status:     tenant.Status,
		Tier:       tenant.Tier,
	}, nil
}

// Invalidate drops any cached rows for the tenant. Managers call this on
// every tenant mutation.
func (r *Resolver) Invalidate(keys ...string) {
	for _, k := range keys {
		if k != "" {
			r.cache.Remove(k)
		}
	}
}

func (r *Resolver) lookup(ctx context.Context, d Discriminator) (model.Tenant, error) {
	switch d.source {
	case SourceHeader, SourceSubdomain, SourcePath:
		if d.slug == "" {
			return model.Tenant{}, ErrEmptyDiscriminator
		}

		return r.fetch(ctx, d.slug, func(ctx context.Context) (*model.Tenant, error) {
			return repo.GetTenantBySlug(ctx, r.repo, d.slug)
		})
	case SourcePrincipal:
		if d.id == "" {
			return model.Tenant{}, ErrEmptyDiscriminator
		}

		return r.fetch(ctx, d.id, func(ctx context.Context) (*model.Tenant, error) {
			return repo.GetTenantByID(ctx, r.repo, d.id)
		})
	default:
		return model.Tenant{}, ErrUnknownDiscriminator
	}
}

func (r *Resolver) fetch(
	ctx context.Context,
	key string,
	load func(ctx context.Context) (*model.Tenant, error),
) (model.Tenant, error) {
	if tenant, ok := r.cache.Get(key); ok {
		return tenant, nil
	}

	tenant, err := load(ctx)
	if err != nil {
		if errors.Is(err, repo.ErrTenantNotFound) {
			return model.Tenant{}, ErrTenantNotFound
		}

		return model.Tenant{}, errs.Wrap(ErrTenantNotFound, err)
	}

	r.cache.Add(key, *tenant)

	return *tenant, nil
}
