package model

import "errors"

var ErrInvalidTier = errors.New("subscription tier is not valid")

// Tier represents the subscription tier of a tenant.
type Tier string

const (
	TierFree       Tier = "free"
	TierStandard   Tier = "standard"
	TierEnterprise Tier = "enterprise"
)

var validTiers = map[Tier]struct{}{
	TierFree:       {},
	TierStandard:   {},
	TierEnterprise: {},
}

// Validate validates the given tier.
// Returns an error if the tier is invalid.
func (t Tier) Validate() error {
	if _, ok := validTiers[t]; !ok {
		return ErrInvalidTier
	}

	return nil
}
