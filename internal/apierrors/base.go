package apierrors

import (
	"net/http"

	"github.com/agenthub/hub/internal/api/hubapi"
)

const (
	InternalServerErr = "INTERNAL_SERVER_ERROR"
	JSONDecodeErr     = "JSON_DECODE_ERROR"
	ValidationErr     = "VALIDATION_ERROR"
	UnauthorizedErr   = "UNAUTHORIZED"
	ForbiddenErr      = "FORBIDDEN"
	ParamsErr         = "PARAMS_ERROR"
)

// APIError couples a set of internal sentinel errors with the exposed
// error returned when a failing chain matches them.
type APIError struct {
	Errors        []error
	ExposedError  hubapi.DetailedError
	ContextGetter func(error) map[string]any
}

// Exposed implements the mapper's exposed-error contract over ErrorMessage.
type Exposed hubapi.ErrorMessage

func (e Exposed) WithContext(m *map[string]any) Exposed {
	e.Error.Context = m
	return e
}

func (e Exposed) DefaultError() Exposed {
	return Exposed(InternalServerErrorMessage())
}

func InternalServerErrorMessage() hubapi.ErrorMessage {
	return hubapi.ErrorMessage{Error: hubapi.DetailedError{
		Code:    InternalServerErr,
		Message: "Internal server error",
		Status:  http.StatusInternalServerError,
	}}
}

func JSONDecodeErrorMessage() hubapi.ErrorMessage {
	return hubapi.ErrorMessage{Error: hubapi.DetailedError{
		Code:    JSONDecodeErr,
		Message: "Can't decode JSON body",
		Status:  http.StatusBadRequest,
	}}
}

func UnauthorizedErrorMessage(message string) hubapi.ErrorMessage {
	return hubapi.ErrorMessage{Error: hubapi.DetailedError{
		Code:    UnauthorizedErr,
		Message: message,
		Status:  http.StatusUnauthorized,
	}}
}

func ForbiddenErrorMessage(message string) hubapi.ErrorMessage {
	return hubapi.ErrorMessage{Error: hubapi.DetailedError{
		Code:    ForbiddenErr,
		Message: message,
		Status:  http.StatusForbidden,
	}}
}

func ParamsErrorMessage(message string) hubapi.ErrorMessage {
	return hubapi.ErrorMessage{Error: hubapi.DetailedError{
		Code:    ParamsErr,
		Message: message,
		Status:  http.StatusBadRequest,
	}}
}
