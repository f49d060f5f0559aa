package middleware

import (
	"net/http"
	"strconv"
	"strings"

	"log/slog"

	"github.com/agenthub/hub/internal/api/write"
	"github.com/agenthub/hub/internal/apierrors"
	"github.com/agenthub/hub/internal/authz"
	"github.com/agenthub/hub/internal/constants"
	"github.com/agenthub/hub/internal/log"
	hubcontext "github.com/agenthub/hub/utils/context"
)

// AuthzMiddleware enforces the per-route requirement before the handler
// runs. Routes missing from both the restriction table and the allow list
// are denied.
func AuthzMiddleware(gate *authz.Gate) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			pattern := strings.Replace(r.Pattern, constants.BasePath, "", 1)
			log.Debug(ctx, "request pattern", slog.String("pattern", pattern))

			_, exists := authz.AllowListByAPI[pattern]
			if exists {
				next.ServeHTTP(w, r)
				return
			}

			restriction, exists := authz.RestrictionsByAPI[pattern]
			if !exists {
				log.Warn(ctx, "no authz restriction found for API", slog.String("api", pattern))
				write.ErrorResponse(ctx, w, apierrors.ForbiddenErrorMessage("Forbidden"))

				return
			}

			principal, perr := hubcontext.ExtractPrincipal(ctx)
			if perr != nil {
				principal = nil
			}

			// Cross-tenant routes carry no tenant binding of their own; the
			// principal's live record still has to be loaded from the
			// principal's home tenant.
			authCtx := ctx

			_, terr := hubcontext.ExtractTenantID(ctx)
			if terr != nil && principal != nil {
				authCtx = hubcontext.CreateTenantContext(ctx, principal.TenantID)
			}

			decision, err := gate.Authorize(authCtx, principal, restriction)
			if err != nil {
				log.Debug(ctx, "authorize error", log.ErrorAttr(err))
			}

			log.Debug(ctx, "authz result", slog.String("allowed", strconv.FormatBool(decision.Allowed)))

			if !decision.Allowed {
				ObserveAuthzDenial(string(decision.Reason))
				write.ErrorResponse(ctx, w, apierrors.DeniedErrorMessage(decision.Reason))

				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
