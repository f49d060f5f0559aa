package apierrors

import (
	"net/http"

	"github.com/agenthub/hub/internal/api/hubapi"
	"github.com/agenthub/hub/internal/lifecycle"
	"github.com/agenthub/hub/internal/manager"
	"github.com/agenthub/hub/internal/model"
	"github.com/agenthub/hub/internal/repo"
)

const (
	DuplicateSlug           = "DUPLICATE_TENANT_SLUG"
	InvalidStatusTransition = "INVALID_STATUS_TRANSITION"
	InvalidTenant           = "INVALID_TENANT"
	ProvisioningFailed      = "TENANT_PROVISIONING_FAILED"
)

var tenants = []APIError{
	{
		Errors: []error{manager.ErrDuplicateSlug},
		ExposedError: hubapi.DetailedError{
			Code:    DuplicateSlug,
			Message: "A tenant with this slug already exists",
			Status:  http.StatusConflict,
		},
	},
	{
		Errors: []error{manager.ErrValidatingTenant, model.ErrInvalidSlug},
		ExposedError: hubapi.DetailedError{
			Code:    InvalidTenant,
			Message: "Tenant slug must be lowercase, start with a letter and contain only letters, digits and underscores",
			Status:  http.StatusBadRequest,
		},
	},
	{
		Errors: []error{manager.ErrValidatingTenant, model.ErrEmptyName},
		ExposedError: hubapi.DetailedError{
			Code:    InvalidTenant,
			Message: "Tenant name must not be empty",
			Status:  http.StatusBadRequest,
		},
	},
	{
		Errors: []error{manager.ErrValidatingTenant, model.ErrInvalidTier},
		ExposedError: hubapi.DetailedError{
			Code:    InvalidTenant,
			Message: "Unknown subscription tier",
			Status:  http.StatusBadRequest,
		},
	},
	{
		Errors: []error{manager.ErrValidatingTenant},
		ExposedError: hubapi.DetailedError{
			Code:    InvalidTenant,
			Message: "Tenant is not valid",
			Status:  http.StatusBadRequest,
		},
	},
	{
		Errors: []error{manager.ErrInvalidSchema},
		ExposedError: hubapi.DetailedError{
			Code:    InvalidTenant,
			Message: "Tenant slug does not map to a valid schema name",
			Status:  http.StatusBadRequest,
		},
	},
	{
		Errors: []error{lifecycle.ErrInvalidTransition},
		ExposedError: hubapi.DetailedError{
			Code:    InvalidStatusTransition,
			Message: "Requested status change is not allowed from the tenant's current status",
			Status:  http.StatusConflict,
		},
	},
	{
		Errors: []error{repo.ErrProvisioningTenant},
		ExposedError: hubapi.DetailedError{
			Code:    ProvisioningFailed,
			Message: "Failed to provision tenant",
			Status:  http.StatusInternalServerError,
		},
	},
	{
		Errors: []error{manager.ErrListTenants},
		ExposedError: hubapi.DetailedError{
			Code:    "GET_TENANTS",
			Message: "Failed to get tenants",
			Status:  http.StatusInternalServerError,
		},
	},
	{
		Errors: []error{manager.ErrTenantSummary},
		ExposedError: hubapi.DetailedError{
			Code:    "TENANT_SUMMARY",
			Message: "Failed to build tenant summary",
			Status:  http.StatusInternalServerError,
		},
	},
}
