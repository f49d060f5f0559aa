package authz

import "github.com/agenthub/hub/internal/model"

// RestrictionsByAPI maps route patterns (relative to the base path) to the
// requirement enforced before the handler runs. A pattern missing from both
// this table and AllowListByAPI is denied.
var RestrictionsByAPI = map[string]Requirement{
	"GET /t/{tenant}":                  {Role: model.RoleParticipant},
	"GET /t/{tenant}/users":            {Role: model.RoleInstructor},
	"POST /t/{tenant}/users":           {Role: model.RoleTenantAdmin},
	"GET /t/{tenant}/users/{id}":       {Role: model.RoleInstructor},
	"PATCH /t/{tenant}/users/{id}":     {Role: model.RoleTenantAdmin},
	"GET /t/{tenant}/workshops":        {Role: model.RoleParticipant},
	"POST /t/{tenant}/workshops":       {Role: model.RoleInstructor},
	"GET /t/{tenant}/workshops/{id}":   {Role: model.RoleParticipant},
	"PATCH /t/{tenant}/workshops/{id}": {Role: model.RoleInstructor},
	"GET /t/{tenant}/library":          {Role: model.RoleParticipant},
	"POST /t/{tenant}/library":         {Role: model.RoleInstructor},
	"GET /t/{tenant}/library/{id}":     {Role: model.RoleParticipant},
	"GET /admin/tenants":               {Role: model.RoleSuperAdmin, CrossTenant: true},
	"POST /admin/tenants":              {Role: model.RoleSuperAdmin, CrossTenant: true},
	"PATCH /admin/tenants/{id}":        {Role: model.RoleSuperAdmin, CrossTenant: true},
	"GET /admin/tenants/{id}/summary":  {Role: model.RoleSuperAdmin, CrossTenant: true},
}

// AllowListByAPI names the endpoints that skip authorization entirely.
var AllowListByAPI = map[string]struct{}{
	"GET /meta/roles": {},
	"GET /healthz":    {},
}
