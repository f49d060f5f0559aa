package middleware

import (
	"net/http"

	hubcontext "github.com/agenthub/hub/utils/context"
)

const requestIDHeader = "X-Request-Id"

// InjectRequestID injects a RequestID into the context to be used by other
// middlewares, and echoes it back on the response so clients can quote it
// when reporting a failure.
func InjectRequestID() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := hubcontext.InjectRequestID(r.Context())

			requestID, err := hubcontext.GetRequestID(ctx)
			if err == nil {
				w.Header().Set(requestIDHeader, requestID)
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
