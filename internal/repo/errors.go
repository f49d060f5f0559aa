package repo

import (
	"context"
	"errors"

	hubcontext "github.com/agenthub/hub/utils/context"
)

var (
	ErrMigratingTenantModels = errors.New("migrating tenant models for existing tenant")
	ErrSchemaNameLength      = errors.New("schema name length must be between 3 and 63 characters")
	ErrCreatingTenant        = errors.New("creating tenant failed")
	ErrProvisioningTenant    = errors.New("provisioning tenant failed")

	// ErrCrossTenantAccess is the defense-in-depth failure raised when a
	// caller hands in an entity that belongs to a different tenant than the
	// one resolved for the request. It is logged as a security event,
	// distinct from ordinary authorization denials.
	ErrCrossTenantAccess = errors.New("entity belongs to a different tenant")
)

// EnsureTenantMatch compares the tenant resolved in ctx against the owning
// tenant of an entity supplied by a caller. Partition scoping already makes
// foreign rows unreachable; this guard exists so that an explicitly
// tenant-qualified argument pointing elsewhere fails loudly instead of
// silently resolving to "not found".
func EnsureTenantMatch(ctx context.Context, owningTenantID string) error {
	tenantID, err := hubcontext.ExtractTenantID(ctx)
	if err != nil {
		return ErrWithTenant
	}

	if owningTenantID != tenantID {
		return ErrCrossTenantAccess
	}

	return nil
}
