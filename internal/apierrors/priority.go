package apierrors

import (
	"net/http"

	"github.com/agenthub/hub/internal/api/hubapi"
	"github.com/agenthub/hub/internal/repo"
	"github.com/agenthub/hub/internal/resolver"
)

const (
	TenantNotFound = "TENANT_NOT_FOUND"
	TenantInactive = "TENANT_INACTIVE"
)

var highPrio = []APIError{
	{
		Errors: []error{repo.ErrTenantNotFound},
		ExposedError: hubapi.DetailedError{
			Code:    TenantNotFound,
			Message: "Tenant does not exist",
			Status:  http.StatusNotFound,
		},
	},
	{
		Errors: []error{resolver.ErrTenantNotFound},
		ExposedError: hubapi.DetailedError{
			Code:    TenantNotFound,
			Message: "Tenant does not exist",
			Status:  http.StatusNotFound,
		},
	},
	{
		Errors: []error{resolver.ErrTenantInactive},
		ExposedError: hubapi.DetailedError{
			Code:    TenantInactive,
			Message: "Tenant is not currently serving requests",
			Status:  http.StatusLocked,
		},
	},
}
