package tenantcli

import (
	multitenancy "github.com/bartventer/gorm-multitenancy/v8"

	"github.com/agenthub/hub/internal/config"
	"github.com/agenthub/hub/internal/manager"
	"github.com/agenthub/hub/internal/repo"
	"github.com/agenthub/hub/internal/repo/sql"
	"github.com/agenthub/hub/internal/resolver"
)

// CommandFactory wires the tenant manager for CLI use.
type CommandFactory struct {
	dbCon  *multitenancy.DB
	r      repo.Repo
	tenant manager.Tenant
}

func NewCommandFactory(dbCon *multitenancy.DB, cfg *config.Config) *CommandFactory {
	r := sql.NewRepository(dbCon)
	admin := sql.NewAdminRepository(dbCon)
	res := resolver.New(r, cfg.Resolver.CacheSize, cfg.Resolver.CacheTTL)

	return &CommandFactory{
		dbCon:  dbCon,
		r:      r,
		tenant: manager.NewTenantManager(r, admin, res),
	}
}
