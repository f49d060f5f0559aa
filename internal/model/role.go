package model

import (
	"errors"
)

var ErrUnknownRole = errors.New("role is not valid")

// Role is the ordered privilege enumeration. The ordering is total and is
// the single source of truth for every authorization comparison: the same
// list is enforced server-side and served to clients, so visible actions and
// permitted actions cannot drift apart.
type Role string

const (
	RoleParticipant Role = "participant"
	RoleInstructor  Role = "instructor"
	RoleTenantAdmin Role = "tenant_admin"
	RoleSuperAdmin  Role = "super_admin"
)

// roleLevels assigns each role its rank. A role missing here is unknown and
// never defaults to any level.
var roleLevels = map[Role]int{
	RoleParticipant: 0,
	RoleInstructor:  1,
	RoleTenantAdmin: 2,
	RoleSuperAdmin:  3,
}

// Roles returns all roles ordered lowest to highest privilege.
func Roles() []Role {
	return []Role{RoleParticipant, RoleInstructor, RoleTenantAdmin, RoleSuperAdmin}
}

// Validate validates the given role.
// Returns an error if the role is invalid.
func (r Role) Validate() error {
	if _, ok := roleLevels[r]; !ok {
		return ErrUnknownRole
	}

	return nil
}

// Level returns the rank of the role in the privilege order.
// Unknown roles fail with ErrUnknownRole rather than ranking lowest or
// highest.
func (r Role) Level() (int, error) {
	level, ok := roleLevels[r]
	if !ok {
		return 0, ErrUnknownRole
	}

	return level, nil
}

// MeetsOrExceeds reports whether r ranks at least as high as required.
// It fails with ErrUnknownRole when either side is outside the enumeration.
func (r Role) MeetsOrExceeds(required Role) (bool, error) {
	have, err := r.Level()
	if err != nil {
		return false, err
	}

	want, err := required.Level()
	if err != nil {
		return false, err
	}

	return have >= want, nil
}
