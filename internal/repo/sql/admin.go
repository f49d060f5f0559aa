package sql

import (
	"context"

	multitenancy "github.com/bartventer/gorm-multitenancy/v8"

	"github.com/agenthub/hub/internal/errs"
	"github.com/agenthub/hub/internal/model"
	"github.com/agenthub/hub/internal/repo"
)

// AdminRepository is the explicitly cross-tenant code path behind the
// super_admin "Organizations" views. It is a separate type on purpose: the
// scoped ResourceRepository has no way to drop its tenant scope, so a future
// change to the default path cannot accidentally widen access.
type AdminRepository struct {
	db *multitenancy.DB
}

// NewAdminRepository creates a repository over the shared schema only.
func NewAdminRepository(db *multitenancy.DB) *AdminRepository {
	return &AdminRepository{db: db}
}

// ListAllTenants returns tenants across all partitions, newest first.
func (r *AdminRepository) ListAllTenants(ctx context.Context, offset, limit int) ([]*model.Tenant, int, error) {
	if limit <= 0 {
		limit = repo.DefaultLimit
	}

	var (
		tenants []*model.Tenant
		count   int64
	)

	db := r.db.WithContext(ctx).Model(&model.Tenant{})

	err := db.Count(&count).Error
	if err != nil {
		return nil, 0, errs.Wrap(repo.ErrGetResource, err)
	}

	err = db.Order(repo.CreatedField + " desc").Offset(offset).Limit(limit).Find(&tenants).Error
	if err != nil {
		return nil, 0, errs.Wrap(repo.ErrGetResource, err)
	}

	return tenants, int(count), nil
}

// CountUsersForTenant counts the users inside one tenant's partition. The
// target schema is named explicitly per call; there is no default.
func (r *AdminRepository) CountUsersForTenant(ctx context.Context, tenant *model.Tenant) (int, error) {
	var count int64

	err := r.db.WithTenant(ctx, tenant.SchemaName, func(tx *multitenancy.DB) error {
		return tx.Model(&model.User{}).Count(&count).Error
	})
	if err != nil {
		return 0, errs.Wrap(repo.ErrGetResource, err)
	}

	return int(count), nil
}
