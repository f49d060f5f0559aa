package manager

import (
	"github.com/agenthub/hub/internal/repo"
)

// Manager bundles the domain managers behind one constructor, mirroring
// how the API layer consumes them.
type Manager struct {
	Tenant   Tenant
	User     User
	Workshop Workshop
	Library  Library
}

func New(r repo.Repo, admin AdminStore, invalidator Invalidator) *Manager {
	return &Manager{
		Tenant:   NewTenantManager(r, admin, invalidator),
		User:     NewUserManager(r),
		Workshop: NewWorkshopManager(r),
		Library:  NewLibraryManager(r),
	}
}
