package apierrors

import (
	"net/http"

	"github.com/agenthub/hub/internal/api/hubapi"
	"github.com/agenthub/hub/internal/manager"
	"github.com/agenthub/hub/internal/model"
)

const InvalidContent = "INVALID_CONTENT"

var content = []APIError{
	{
		Errors: []error{manager.ErrValidatingContent, model.ErrEmptyWorkshopTitle},
		ExposedError: hubapi.DetailedError{
			Code:    InvalidContent,
			Message: "Workshop title must not be empty",
			Status:  http.StatusBadRequest,
		},
	},
	{
		Errors: []error{manager.ErrValidatingContent, model.ErrInvalidResourceKind},
		ExposedError: hubapi.DetailedError{
			Code:    InvalidContent,
			Message: "Unknown library resource kind",
			Status:  http.StatusBadRequest,
		},
	},
	{
		Errors: []error{manager.ErrValidatingContent},
		ExposedError: hubapi.DetailedError{
			Code:    InvalidContent,
			Message: "Content is not valid",
			Status:  http.StatusBadRequest,
		},
	},
	{
		Errors: []error{manager.ErrListContent},
		ExposedError: hubapi.DetailedError{
			Code:    "GET_CONTENT",
			Message: "Failed to get content",
			Status:  http.StatusInternalServerError,
		},
	},
}
