package manager_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agenthub/hub/internal/manager"
	"github.com/agenthub/hub/internal/model"
	"github.com/agenthub/hub/internal/repo"
	"github.com/agenthub/hub/internal/repo/mock"
)

func setupUserManager(t *testing.T) (*manager.UserManager, context.Context) {
	t.Helper()

	r := mock.NewRepo()

	tm := manager.NewTenantManager(r, &adminStore{r: r}, &recordingInvalidator{})

	tenant, err := tm.Provision(context.Background(), "Acme", "acme", "")
	require.NoError(t, err)

	ctx := hubTenantContext(tenant.ID)

	return manager.NewUserManager(r), ctx
}

func TestCreateUserDefaults(t *testing.T) {
	m, ctx := setupUserManager(t)

	user := &model.User{Email: "jo@acme.test", FullName: "Jo"}
	require.NoError(t, m.Create(ctx, user))

	assert.NotEqual(t, uuid.Nil, user.ID)
	assert.Equal(t, model.RoleParticipant, user.Role, "self-registration defaults to the lowest role")
	assert.True(t, user.Active)
}

func TestCreateUserValidation(t *testing.T) {
	m, ctx := setupUserManager(t)

	err := m.Create(ctx, &model.User{FullName: "Jo"})
	assert.ErrorIs(t, err, manager.ErrValidatingUser)

	err = m.Create(ctx, &model.User{Email: "jo@acme.test"})
	assert.ErrorIs(t, err, manager.ErrValidatingUser)

	err = m.Create(ctx, &model.User{Email: "jo@acme.test", FullName: "Jo", Role: "owner"})
	assert.ErrorIs(t, err, model.ErrUnknownRole)
}

func TestCreateUserDuplicateEmail(t *testing.T) {
	m, ctx := setupUserManager(t)

	require.NoError(t, m.Create(ctx, &model.User{Email: "jo@acme.test", FullName: "Jo"}))

	err := m.Create(ctx, &model.User{Email: "jo@acme.test", FullName: "Another Jo"})
	assert.ErrorIs(t, err, manager.ErrDuplicateEmail)
}

func TestUpdateRole(t *testing.T) {
	m, ctx := setupUserManager(t)

	user := &model.User{Email: "jo@acme.test", FullName: "Jo"}
	require.NoError(t, m.Create(ctx, user))

	updated, err := m.UpdateRole(ctx, user.ID, model.RoleInstructor)
	require.NoError(t, err)
	assert.Equal(t, model.RoleInstructor, updated.Role)

	reloaded, err := m.Get(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, model.RoleInstructor, reloaded.Role)

	_, err = m.UpdateRole(ctx, user.ID, "owner")
	assert.ErrorIs(t, err, model.ErrUnknownRole)

	_, err = m.UpdateRole(ctx, uuid.New(), model.RoleInstructor)
	assert.ErrorIs(t, err, repo.ErrNotFound)
}

func TestSetActive(t *testing.T) {
	m, ctx := setupUserManager(t)

	user := &model.User{Email: "jo@acme.test", FullName: "Jo"}
	require.NoError(t, m.Create(ctx, user))

	updated, err := m.SetActive(ctx, user.ID, false)
	require.NoError(t, err)
	assert.False(t, updated.Active)

	reloaded, err := m.Get(ctx, user.ID)
	require.NoError(t, err)
	assert.False(t, reloaded.Active)
}

func TestListUsers(t *testing.T) {
	m, ctx := setupUserManager(t)

	for _, email := range []string{"a@acme.test", "b@acme.test", "c@acme.test"} {
		require.NoError(t, m.Create(ctx, &model.User{Email: email, FullName: "User"}))
	}

	users, count, err := m.List(ctx, 0, 2)
	require.NoError(t, err)
	assert.Equal(t, 3, count)
	assert.Len(t, users, 2)
}
