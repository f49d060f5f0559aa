package manager

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/agenthub/hub/internal/errs"
	"github.com/agenthub/hub/internal/model"
	"github.com/agenthub/hub/internal/repo"
)

type User interface {
	Create(ctx context.Context, user *model.User) error
	Get(ctx context.Context, id uuid.UUID) (*model.User, error)
	List(ctx context.Context, skip, top int) ([]*model.User, int, error)
	UpdateRole(ctx context.Context, id uuid.UUID, role model.Role) (*model.User, error)
	SetActive(ctx context.Context, id uuid.UUID, active bool) (*model.User, error)
}

type UserManager struct {
	repo repo.Repo
}

func NewUserManager(r repo.Repo) *UserManager {
	return &UserManager{repo: r}
}

// Create stores a new user inside the current tenant's partition. Used by
// both administrator creation and self-registration; self-registration
// callers pass the participant role.
func (m *UserManager) Create(ctx context.Context, user *model.User) error {
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}

	if user.Role == "" {
		user.Role = model.RoleParticipant
	}

	user.Active = true

	err := user.Validate()
	if err != nil {
		return errs.Wrap(ErrValidatingUser, err)
	}

	err = m.repo.Create(ctx, user)
	if err != nil {
		if errors.Is(err, repo.ErrUniqueConstraint) {
			return errs.Wrap(ErrDuplicateEmail, err)
		}

		return errs.Wrap(ErrCreatingUser, err)
	}

	return nil
}

func (m *UserManager) Get(ctx context.Context, id uuid.UUID) (*model.User, error) {
	user := &model.User{ID: id}

	_, err := m.repo.First(ctx, user, *repo.NewQuery())
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, err
		}

		return nil, errs.Wrap(ErrGettingUser, err)
	}

	return user, nil
}

func (m *UserManager) List(ctx context.Context, skip, top int) ([]*model.User, int, error) {
	var users []*model.User

	query := repo.NewQuery().
		SetOffset(skip).
		SetLimit(top).
		Order(repo.OrderField{Field: repo.CreatedField, Direction: repo.Asc})

	count, err := m.repo.List(ctx, model.User{}, &users, *query)
	if err != nil {
		return nil, 0, errs.Wrap(ErrListUsers, err)
	}

	return users, count, nil
}

// UpdateRole changes a user's role. The change is effective on the user's
// next request because the authorization gate reloads the live record.
func (m *UserManager) UpdateRole(ctx context.Context, id uuid.UUID, role model.Role) (*model.User, error) {
	err := role.Validate()
	if err != nil {
		return nil, errs.Wrap(ErrValidatingUser, err)
	}

	user, err := m.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	user.Role = role

	_, err = m.repo.Patch(ctx, user, *repo.NewQuery().Update(repo.RoleField))
	if err != nil {
		return nil, errs.Wrap(ErrUpdatingUser, err)
	}

	return user, nil
}

// SetActive flips the active flag. Accounts are deactivated rather than
// deleted to preserve audit history.
func (m *UserManager) SetActive(ctx context.Context, id uuid.UUID, active bool) (*model.User, error) {
	user, err := m.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	user.Active = active

	_, err = m.repo.Patch(ctx, user, *repo.NewQuery().Update(repo.ActiveField))
	if err != nil {
		return nil, errs.Wrap(ErrUpdatingUser, err)
	}

	return user, nil
}
