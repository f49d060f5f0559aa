package apierrors

import (
	"net/http"

	"github.com/agenthub/hub/internal/api/hubapi"
	authzgate "github.com/agenthub/hub/internal/authz"
	"github.com/agenthub/hub/internal/repo"
	"github.com/agenthub/hub/internal/resolver"
)

const (
	TenantScopeViolation = "TENANT_SCOPE_VIOLATION"
	InsufficientRole     = "INSUFFICIENT_ROLE"
	AccountInactive      = "ACCOUNT_INACTIVE"
)

// DeniedErrorMessage renders a denied authorization decision. Unknown
// principals get 401; every other reason is a 403 carrying its reason code.
func DeniedErrorMessage(reason authzgate.Reason) hubapi.ErrorMessage {
	switch reason {
	case authzgate.ReasonUnknownPrincipal:
		return UnauthorizedErrorMessage("Authentication required")
	case authzgate.ReasonAccountInactive:
		return hubapi.ErrorMessage{Error: hubapi.DetailedError{
			Code:    AccountInactive,
			Message: "Account is deactivated",
			Status:  http.StatusForbidden,
		}}
	case authzgate.ReasonTenantScopeViolation:
		return hubapi.ErrorMessage{Error: hubapi.DetailedError{
			Code:    TenantScopeViolation,
			Message: "Operation is outside the caller's tenant scope",
			Status:  http.StatusForbidden,
		}}
	default:
		return hubapi.ErrorMessage{Error: hubapi.DetailedError{
			Code:    InsufficientRole,
			Message: "Caller's role does not permit this operation",
			Status:  http.StatusForbidden,
		}}
	}
}

var authz = []APIError{
	{
		Errors: []error{repo.ErrCrossTenantAccess},
		ExposedError: hubapi.DetailedError{
			Code:    TenantScopeViolation,
			Message: "Entity belongs to a different tenant",
			Status:  http.StatusForbidden,
		},
	},
	{
		Errors: []error{resolver.ErrTenantMismatch},
		ExposedError: hubapi.DetailedError{
			Code:    TenantScopeViolation,
			Message: "Requested tenant does not match the caller's tenant",
			Status:  http.StatusForbidden,
		},
	},
	{
		Errors: []error{resolver.ErrEmptyDiscriminator},
		ExposedError: hubapi.DetailedError{
			Code:    TenantNotFound,
			Message: "No tenant discriminator supplied",
			Status:  http.StatusNotFound,
		},
	},
}
