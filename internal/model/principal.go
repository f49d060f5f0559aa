package model

import (
	"errors"

	"github.com/google/uuid"
)

var ErrInvalidPrincipal = errors.New("principal is not valid")

// Principal is the authenticated identity presented with a request: the
// user, the tenant the user's account belongs to, and the role held at
// authentication time. Authorization decisions never trust Role or Active
// as-is; the gate reloads the live user record so revocations take effect
// on the next request.
type Principal struct {
	UserID   uuid.UUID
	TenantID string
	Role     Role
	Active   bool
}

func (p Principal) Validate() error {
	if p.UserID == uuid.Nil || p.TenantID == "" {
		return ErrInvalidPrincipal
	}

	return p.Role.Validate()
}
