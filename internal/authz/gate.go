package authz

import (
	"context"
	"errors"

	"github.com/agenthub/hub/internal/errs"
	"github.com/agenthub/hub/internal/log"
	"github.com/agenthub/hub/internal/model"
	"github.com/agenthub/hub/internal/repo"
)

var ErrCheckAuthz = errors.New("authorization check failed")

// Reason codes carried on a denied decision. The gate never renders
// user-facing messages; callers translate these at the API boundary.
type Reason string

const (
	ReasonInsufficientRole     Reason = "INSUFFICIENT_ROLE"
	ReasonTenantScopeViolation Reason = "TENANT_SCOPE_VIOLATION"
	ReasonAccountInactive      Reason = "ACCOUNT_INACTIVE"
	ReasonUnknownPrincipal     Reason = "UNKNOWN_PRINCIPAL"
)

// Decision is the outcome of an authorization check.
type Decision struct {
	Allowed bool
	Reason  Reason
}

func allowed() Decision {
	return Decision{Allowed: true}
}

func denied(reason Reason) Decision {
	return Decision{Allowed: false, Reason: reason}
}

// Requirement describes what an operation demands of a principal. Cross-
// tenant capability is an explicit, named property: it is never implied by
// role level alone.
type Requirement struct {
	Role        model.Role
	CrossTenant bool
}

// Gate is the single choke point every privileged operation passes
// through. It re-reads the principal's live user record on every call so a
// role downgrade or deactivation takes effect on the next request, not at
// next login.
type Gate struct {
	repo repo.Repo
}

func NewGate(r repo.Repo) *Gate {
	return &Gate{repo: r}
}

// Authorize evaluates the requirement against the principal's current
// record. Any failure to establish the facts denies the request; the gate
// never fails open.
func (g *Gate) Authorize(
	ctx context.Context,
	principal *model.Principal,
	requirement Requirement,
) (Decision, error) {
	if principal == nil {
		return denied(ReasonUnknownPrincipal), nil
	}

	// Partition scoping already hides foreign rows; this guard makes a
	// principal reaching outside its home tenant fail loudly instead of
	// surfacing as not-found.
	err := repo.EnsureTenantMatch(ctx, principal.TenantID)
	if err != nil {
		if errors.Is(err, repo.ErrCrossTenantAccess) {
			log.Warn(ctx, "principal attempted access outside its home tenant")
			return denied(ReasonTenantScopeViolation), nil
		}

		return denied(ReasonUnknownPrincipal), errs.Wrap(ErrCheckAuthz, err)
	}

	user := &model.User{ID: principal.UserID}

	_, err = g.repo.First(ctx, user, *repo.NewQuery())
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return denied(ReasonUnknownPrincipal), nil
		}

		return denied(ReasonUnknownPrincipal), errs.Wrap(ErrCheckAuthz, err)
	}

	if !user.Active {
		return denied(ReasonAccountInactive), nil
	}

	// Cross-tenant operations demand super_admin exactly. tenant_admin
	// outranks instructor and participant on the ordinary scale but has no
	// cross-tenant scope.
	if requirement.CrossTenant && user.Role != model.RoleSuperAdmin {
		return denied(ReasonTenantScopeViolation), nil
	}

	ok, err := user.Role.MeetsOrExceeds(requirement.Role)
	if err != nil {
		// An out-of-enumeration role is a data-integrity fault, never a
		// grant.
		log.Error(ctx, "principal carries unknown role", err)
		return denied(ReasonInsufficientRole), errs.Wrap(ErrCheckAuthz, err)
	}

	if !ok {
		return denied(ReasonInsufficientRole), nil
	}

	return allowed(), nil
}
