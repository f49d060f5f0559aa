package repo

import (
	"context"
	"errors"

	"github.com/agenthub/hub/internal/errs"
	"github.com/agenthub/hub/internal/model"
)

// TransactionFunc is func signature for ExecTransaction.
type TransactionFunc func(context.Context, Repo) error

// Repo defines an interface for Repository operations. Every operation
// executes against the partition of the tenant carried in ctx; there is no
// variant that accepts tenant-owned models without a tenant context.
// Nothing is ever hard-deleted: tenants and users are deactivated, so the
// interface carries no delete operation.
type Repo interface {
	Create(ctx context.Context, resource Resource) error
	List(ctx context.Context, resource Resource, result any, query Query) (int, error)
	Count(ctx context.Context, resource Resource, query Query) (int, error)
	First(ctx context.Context, resource Resource, query Query) (bool, error)
	Patch(ctx context.Context, resource Resource, query Query) (bool, error)
	Transaction(ctx context.Context, txFunc TransactionFunc) error
	Migrate(ctx context.Context, schemaName string) error
}

// Resource defines the interface for Resource operations.
type Resource interface {
	IsSharedModel() bool
	TableName() string
}

// UniqueConstraintError represents an error caused by a violation of a unique constraint in the database.
type UniqueConstraintError struct {
	Detail string
}

// Error returns an error message describing the unique constraint violation.
func (u *UniqueConstraintError) Error() string {
	return "resource must be unique: " + u.Detail
}

var (
	ErrNotFound         = errors.New("resource not found")
	ErrUniqueConstraint = errors.New("unique constraint violation")
	ErrCreateResource   = errors.New("failed to create resource")
	ErrUpdateResource   = errors.New("failed to update resource")
	ErrGetResource      = errors.New("failed to get resource")
	ErrTransaction      = errors.New("failed to execute transaction")
	ErrWithTenant       = errors.New("failed to use tenant from context")
	ErrTenantNotFound   = errors.New("tenant not found")
)

// GetTenantByID loads a tenant row from the shared schema.
func GetTenantByID(ctx context.Context, r Repo, tenantID string) (*model.Tenant, error) {
	tenant := &model.Tenant{ID: tenantID}

	_, err := r.First(ctx, tenant, *NewQuery())
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrTenantNotFound
		}

		return nil, errs.Wrap(ErrGetResource, err)
	}

	return tenant, nil
}

// GetTenantBySlug loads a tenant row from the shared schema by its slug.
func GetTenantBySlug(ctx context.Context, r Repo, slug string) (*model.Tenant, error) {
	tenant := &model.Tenant{}

	ck := NewCompositeKey().Where(SlugField, slug)

	_, err := r.First(ctx, tenant, *NewQuery().Where(NewCompositeKeyGroup(ck)))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrTenantNotFound
		}

		return nil, errs.Wrap(ErrGetResource, err)
	}

	return tenant, nil
}

// ProcessInBatch retrieves and processes records in batches from the database based on the provided query parameters.
// It iterates through all matching records using pagination to avoid loading large datasets into memory.
// Processing stops immediately if processFunc returns an error.
func ProcessInBatch[T Resource](
	ctx context.Context,
	repo Repo,
	baseQuery *Query,
	batchSize int,
	processFunc func([]*T) error,
) error {
	offset := 0

	for {
		var items []*T

		query := baseQuery.SetLimit(batchSize).SetOffset(offset)

		count, err := repo.List(ctx, *new(T), &items, *query)
		if err != nil {
			return err
		}

		err = processFunc(items)
		if err != nil {
			return err
		}

		offset += batchSize

		if offset >= count {
			break
		}
	}

	return nil
}
