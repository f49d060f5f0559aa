package model

import (
	"errors"
)

var (
	ErrInvalidTenantStatus = errors.New("tenant status is not valid")

	// validTenantStatuses contains all valid tenant statuses.
	validTenantStatuses = map[TenantStatus]struct{}{
		TenantStatusTrial:     {},
		TenantStatusActive:    {},
		TenantStatusSuspended: {},
		TenantStatusInactive:  {},
	}
)

// TenantStatus represents the status of the tenant.
type TenantStatus string

const (
	TenantStatusTrial     TenantStatus = "trial"
	TenantStatusActive    TenantStatus = "active"
	TenantStatusSuspended TenantStatus = "suspended"
	TenantStatusInactive  TenantStatus = "inactive"
)

// Validate validates the given status of the tenant.
// Returns an error if the status is invalid.
func (s TenantStatus) Validate() error {
	if _, ok := validTenantStatuses[s]; !ok {
		return ErrInvalidTenantStatus
	}

	return nil
}

// Serving reports whether requests resolving a tenant in this status may
// proceed. Suspended and inactive tenants are rejected before any data
// access is attempted.
func (s TenantStatus) Serving() bool {
	return s == TenantStatusTrial || s == TenantStatusActive
}
