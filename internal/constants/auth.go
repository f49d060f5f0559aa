package constants

// principalKey is an own type to avoid context key collisions
type principalKey string

const (
	PrincipalKey principalKey = "Principal"

	AuthorizationHeader = "Authorization"
	BearerPrefix        = "Bearer "

	// TenantHeader carries an explicit tenant slug on a request. When absent
	// the tenant is derived from the host subdomain or the authenticated
	// principal, in that order.
	TenantHeader = "X-Hub-Tenant"
)
