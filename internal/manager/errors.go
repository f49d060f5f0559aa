package manager

import "errors"

var (
	ErrInvalidSchema     = errors.New("schema name is not valid")
	ErrValidatingTenant  = errors.New("validating tenant failed")
	ErrCreatingTenant    = errors.New("creating tenant failed")
	ErrListTenants       = errors.New("failed to list tenants")
	ErrTenantSummary     = errors.New("failed to build tenant summary")
	ErrValidatingUser    = errors.New("validating user failed")
	ErrCreatingUser      = errors.New("creating user failed")
	ErrGettingUser       = errors.New("failed to get user")
	ErrListUsers         = errors.New("failed to list users")
	ErrUpdatingUser      = errors.New("failed to update user")
	ErrDuplicateEmail    = errors.New("a user with this email already exists")
	ErrDuplicateSlug     = errors.New("a tenant with this slug already exists")
	ErrValidatingContent = errors.New("validating content failed")
	ErrListContent       = errors.New("failed to list content")
	ErrGettingContent    = errors.New("failed to get content")
)
