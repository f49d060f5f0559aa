package apierrors

import (
	"net/http"

	"github.com/agenthub/hub/internal/api/hubapi"
	"github.com/agenthub/hub/internal/manager"
	"github.com/agenthub/hub/internal/model"
)

const (
	DuplicateEmail = "DUPLICATE_EMAIL"
	InvalidUser    = "INVALID_USER"
	UnknownRole    = "UNKNOWN_ROLE"
)

var users = []APIError{
	{
		Errors: []error{manager.ErrDuplicateEmail},
		ExposedError: hubapi.DetailedError{
			Code:    DuplicateEmail,
			Message: "A user with this email already exists in the tenant",
			Status:  http.StatusConflict,
		},
	},
	{
		Errors: []error{manager.ErrValidatingUser, model.ErrUnknownRole},
		ExposedError: hubapi.DetailedError{
			Code:    UnknownRole,
			Message: "Unknown role",
			Status:  http.StatusBadRequest,
		},
	},
	{
		Errors: []error{manager.ErrValidatingUser},
		ExposedError: hubapi.DetailedError{
			Code:    InvalidUser,
			Message: "User is not valid",
			Status:  http.StatusBadRequest,
		},
	},
	{
		Errors: []error{manager.ErrUpdatingUser, model.ErrUnknownRole},
		ExposedError: hubapi.DetailedError{
			Code:    UnknownRole,
			Message: "Unknown role",
			Status:  http.StatusBadRequest,
		},
	},
	{
		Errors: []error{manager.ErrListUsers},
		ExposedError: hubapi.DetailedError{
			Code:    "GET_USERS",
			Message: "Failed to get users",
			Status:  http.StatusInternalServerError,
		},
	},
}
