package apierrors

import (
	"database/sql"
	"net/http"

	"github.com/agenthub/hub/internal/api/hubapi"
	"github.com/agenthub/hub/internal/repo"
)

const (
	ResourceNotFound = "RESOURCE_NOT_FOUND"
	UniqueError      = "UNIQUE_ERROR"
)

var defaultCatalog = []APIError{
	{
		Errors: []error{sql.ErrNoRows},
		ExposedError: hubapi.DetailedError{
			Code:    ResourceNotFound,
			Message: "Requested resource not found",
			Status:  http.StatusNotFound,
		},
	},
	{
		Errors: []error{repo.ErrNotFound},
		ExposedError: hubapi.DetailedError{
			Code:    ResourceNotFound,
			Message: "The requested resource was not found",
			Status:  http.StatusNotFound,
		},
	},
	{
		Errors: []error{repo.ErrUniqueConstraint},
		ExposedError: hubapi.DetailedError{
			Code:    UniqueError,
			Message: "Resource with such identifier already exists",
			Status:  http.StatusConflict,
		},
	},
}
