package write

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/agenthub/hub/internal/api/hubapi"
	"github.com/agenthub/hub/internal/log"
)

// JSONResponse writes a JSON body with the given status code.
func JSONResponse(ctx context.Context, w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if body == nil {
		return
	}

	err := json.NewEncoder(w).Encode(body)
	if err != nil {
		log.Error(ctx, "failed to encode response body", err)
	}
}

// ErrorResponse writes an ErrorMessage using its embedded status.
func ErrorResponse(ctx context.Context, w http.ResponseWriter, message hubapi.ErrorMessage) {
	JSONResponse(ctx, w, message.Error.Status, message)
}
