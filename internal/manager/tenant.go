package manager

import (
	"context"
	"errors"

	"github.com/bartventer/gorm-multitenancy/v8/pkg/namespace"
	"github.com/google/uuid"

	"github.com/agenthub/hub/internal/errs"
	"github.com/agenthub/hub/internal/lifecycle"
	"github.com/agenthub/hub/internal/log"
	"github.com/agenthub/hub/internal/model"
	"github.com/agenthub/hub/internal/repo"
	hubcontext "github.com/agenthub/hub/utils/context"
)

// Invalidator evicts cached tenant resolutions. Every tenant mutation goes
// through it so a status change is observed on the next request.
type Invalidator interface {
	Invalidate(keys ...string)
}

// AdminStore is the explicitly cross-tenant read path used by super_admin
// views. It is a separate dependency from repo.Repo by design.
type AdminStore interface {
	ListAllTenants(ctx context.Context, offset, limit int) ([]*model.Tenant, int, error)
	CountUsersForTenant(ctx context.Context, tenant *model.Tenant) (int, error)
}

// TenantSummary is the per-organization row of the cross-tenant admin view.
type TenantSummary struct {
	Tenant    *model.Tenant
	UserCount int
}

type Tenant interface {
	Provision(ctx context.Context, name, slug string, tier model.Tier) (*model.Tenant, error)
	Get(ctx context.Context) (*model.Tenant, error)
	ListAll(ctx context.Context, skip, top int) ([]*model.Tenant, int, error)
	Summary(ctx context.Context, tenantID string) (*TenantSummary, error)
	UpdateTier(ctx context.Context, tenantID string, tier model.Tier) (*model.Tenant, error)
	ChangeStatus(ctx context.Context, tenantID, event string) (*model.Tenant, error)
}

type TenantManager struct {
	repo        repo.Repo
	admin       AdminStore
	invalidator Invalidator
}

func NewTenantManager(r repo.Repo, admin AdminStore, invalidator Invalidator) *TenantManager {
	return &TenantManager{
		repo:        r,
		admin:       admin,
		invalidator: invalidator,
	}
}

// Provision creates the tenant row and its data partition atomically. New
// tenants start in trial status; the partition reference is derived from
// the slug and never changes afterwards.
func (m *TenantManager) Provision(
	ctx context.Context,
	name, slug string,
	tier model.Tier,
) (*model.Tenant, error) {
	if tier == "" {
		tier = model.TierFree
	}

	schemaName := model.SchemaNameForSlug(slug)

	tenant := &model.Tenant{
		ID:     uuid.NewString(),
		Name:   name,
		Slug:   slug,
		Status: model.TenantStatusTrial,
		Tier:   tier,
	}
	tenant.DomainURL = slug
	tenant.SchemaName = schemaName

	err := validateSchema(schemaName)
	if err != nil {
		return nil, errs.Wrap(repo.ErrProvisioningTenant, err)
	}

	err = tenant.Validate()
	if err != nil {
		return nil, errs.Wrap(ErrValidatingTenant, err)
	}

	err = m.repo.Transaction(ctx, func(ctx context.Context, r repo.Repo) error {
		err := r.Create(ctx, tenant)
		if err != nil {
			if errors.Is(err, repo.ErrUniqueConstraint) {
				return errs.Wrap(ErrDuplicateSlug, err)
			}

			return errs.Wrap(ErrCreatingTenant, err)
		}

		log.Info(ctx, "Tenant added to public schema")

		return r.Migrate(ctx, tenant.SchemaName)
	})
	if err != nil {
		return nil, err
	}

	return tenant, nil
}

// Get returns the tenant resolved for the current request.
func (m *TenantManager) Get(ctx context.Context) (*model.Tenant, error) {
	tenantID, err := hubcontext.ExtractTenantID(ctx)
	if err != nil {
		return nil, errs.Wrap(repo.ErrWithTenant, err)
	}

	return repo.GetTenantByID(ctx, m.repo, tenantID)
}

// ListAll returns tenants across all partitions. Callers must hold the
// cross-tenant permission; the handler enforces that before calling in.
func (m *TenantManager) ListAll(ctx context.Context, skip, top int) ([]*model.Tenant, int, error) {
	tenants, count, err := m.admin.ListAllTenants(ctx, skip, top)
	if err != nil {
		return nil, 0, errs.Wrap(ErrListTenants, err)
	}

	return tenants, count, nil
}

// Summary builds the admin per-tenant overview row.
func (m *TenantManager) Summary(ctx context.Context, tenantID string) (*TenantSummary, error) {
	tenant, err := repo.GetTenantByID(ctx, m.repo, tenantID)
	if err != nil {
		return nil, err
	}

	users, err := m.admin.CountUsersForTenant(ctx, tenant)
	if err != nil {
		return nil, errs.Wrap(ErrTenantSummary, err)
	}

	return &TenantSummary{Tenant: tenant, UserCount: users}, nil
}

// UpdateTier changes the subscription tier.
func (m *TenantManager) UpdateTier(ctx context.Context, tenantID string, tier model.Tier) (*model.Tenant, error) {
	err := tier.Validate()
	if err != nil {
		return nil, errs.Wrap(ErrValidatingTenant, err)
	}

	tenant, err := repo.GetTenantByID(ctx, m.repo, tenantID)
	if err != nil {
		return nil, err
	}

	tenant.Tier = tier

	_, err = m.repo.Patch(ctx, tenant, *repo.NewQuery().Update(repo.TierField))
	if err != nil {
		return nil, err
	}

	m.invalidator.Invalidate(tenant.ID, tenant.Slug)

	return tenant, nil
}

// ChangeStatus drives the tenant through its lifecycle. There is no hard
// delete; deactivation is the terminal transition.
func (m *TenantManager) ChangeStatus(ctx context.Context, tenantID, event string) (*model.Tenant, error) {
	tenant, err := repo.GetTenantByID(ctx, m.repo, tenantID)
	if err != nil {
		return nil, err
	}

	next, err := lifecycle.Transition(ctx, tenant.Status, event)
	if err != nil {
		return nil, err
	}

	tenant.Status = next

	_, err = m.repo.Patch(ctx, tenant, *repo.NewQuery().Update(repo.StatusField))
	if err != nil {
		return nil, err
	}

	m.invalidator.Invalidate(tenant.ID, tenant.Slug)

	return tenant, nil
}

func validateSchema(schema string) error {
	err := namespace.Validate(schema)
	if err != nil {
		return errs.Wrap(ErrInvalidSchema, err)
	}

	if len(schema) < 3 || len(schema) > 63 {
		return repo.ErrSchemaNameLength
	}

	return nil
}
