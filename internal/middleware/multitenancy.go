package middleware

import (
	"net/http"

	"github.com/agenthub/hub/internal/api/write"
	"github.com/agenthub/hub/internal/apierrors"
	"github.com/agenthub/hub/internal/constants"
	"github.com/agenthub/hub/internal/resolver"
	hubcontext "github.com/agenthub/hub/utils/context"
)

const (
	// TenantPathParamName is the name of the path parameter used to extract the tenant slug.
	TenantPathParamName = "tenant"
)

// InjectMultiTenancy resolves the request's tenant and binds it into the
// context. Discriminators are tried in a fixed order: path segment,
// explicit header, host subdomain, then the authenticated principal's own
// tenant. Any resolution failure terminates the request before a handler
// or repository sees it.
func InjectMultiTenancy(res *resolver.Resolver, baseDomain string) func(http.Handler) http.Handler {
	getters := []func(r *http.Request) resolver.Discriminator{
		func(r *http.Request) resolver.Discriminator {
			return resolver.FromPath(r.PathValue(TenantPathParamName))
		},
		func(r *http.Request) resolver.Discriminator {
			return resolver.FromHeader(r.Header.Get(constants.TenantHeader))
		},
		func(r *http.Request) resolver.Discriminator {
			return resolver.FromSubdomain(r.Host, baseDomain)
		},
		func(r *http.Request) resolver.Discriminator {
			principal, err := hubcontext.ExtractPrincipal(r.Context())
			if err != nil {
				return resolver.FromPrincipal(nil)
			}

			return resolver.FromPrincipal(principal)
		},
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			discriminator := resolver.Discriminator{}
			for _, getter := range getters {
				discriminator = getter(r)
				if !discriminator.Empty() {
					break
				}
			}

			tenantCtx, err := res.Resolve(ctx, discriminator)
			if err != nil {
				write.ErrorResponse(ctx, w, apierrors.TransformToAPIError(ctx, err))
				return
			}

			ctx = hubcontext.CreateTenantContext(ctx, tenantCtx.TenantID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
