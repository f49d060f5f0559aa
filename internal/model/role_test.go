package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agenthub/hub/internal/model"
)

func TestRoleOrderIsTotal(t *testing.T) {
	roles := model.Roles()
	require.Len(t, roles, 4)

	// Levels must be strictly increasing in declaration order.
	previous := -1

	for _, role := range roles {
		level, err := role.Level()
		require.NoError(t, err)
		assert.Greater(t, level, previous)
		previous = level
	}

	// MeetsOrExceeds must agree with the level comparison for every pair.
	for _, a := range roles {
		for _, b := range roles {
			la, err := a.Level()
			require.NoError(t, err)

			lb, err := b.Level()
			require.NoError(t, err)

			got, err := a.MeetsOrExceeds(b)
			require.NoError(t, err)
			assert.Equal(t, la >= lb, got, "%s vs %s", a, b)
		}
	}
}

func TestRoleUnknownNeverRanks(t *testing.T) {
	unknown := model.Role("owner")

	_, err := unknown.Level()
	assert.ErrorIs(t, err, model.ErrUnknownRole)

	_, err = unknown.MeetsOrExceeds(model.RoleParticipant)
	assert.ErrorIs(t, err, model.ErrUnknownRole)

	_, err = model.RoleSuperAdmin.MeetsOrExceeds(unknown)
	assert.ErrorIs(t, err, model.ErrUnknownRole)

	assert.ErrorIs(t, unknown.Validate(), model.ErrUnknownRole)
	assert.ErrorIs(t, model.Role("").Validate(), model.ErrUnknownRole)
}

func TestRoleValidate(t *testing.T) {
	for _, role := range model.Roles() {
		assert.NoError(t, role.Validate())
	}
}
