package manager

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/agenthub/hub/internal/errs"
	"github.com/agenthub/hub/internal/model"
	"github.com/agenthub/hub/internal/repo"
)

type Library interface {
	Create(ctx context.Context, resource *model.LibraryResource) error
	Get(ctx context.Context, id uuid.UUID) (*model.LibraryResource, error)
	List(ctx context.Context, kind model.ResourceKind, skip, top int) ([]*model.LibraryResource, int, error)
}

type LibraryManager struct {
	repo repo.Repo
}

func NewLibraryManager(r repo.Repo) *LibraryManager {
	return &LibraryManager{repo: r}
}

func (m *LibraryManager) Create(ctx context.Context, resource *model.LibraryResource) error {
	if resource.ID == uuid.Nil {
		resource.ID = uuid.New()
	}

	err := resource.Validate()
	if err != nil {
		return errs.Wrap(ErrValidatingContent, err)
	}

	return m.repo.Create(ctx, resource)
}

func (m *LibraryManager) Get(ctx context.Context, id uuid.UUID) (*model.LibraryResource, error) {
	resource := &model.LibraryResource{ID: id}

	_, err := m.repo.First(ctx, resource, *repo.NewQuery())
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, err
		}

		return nil, errs.Wrap(ErrGettingContent, err)
	}

	return resource, nil
}

// List returns the tenant's library, optionally filtered by kind.
func (m *LibraryManager) List(
	ctx context.Context,
	kind model.ResourceKind,
	skip, top int,
) ([]*model.LibraryResource, int, error) {
	var resources []*model.LibraryResource

	query := repo.NewQuery().
		SetOffset(skip).
		SetLimit(top).
		Order(repo.OrderField{Field: repo.CreatedField, Direction: repo.Desc})

	if kind != "" {
		err := kind.Validate()
		if err != nil {
			return nil, 0, errs.Wrap(ErrValidatingContent, err)
		}

		ck := repo.NewCompositeKey().Where(repo.KindField, kind)
		query = query.Where(repo.NewCompositeKeyGroup(ck))
	}

	count, err := m.repo.List(ctx, model.LibraryResource{}, &resources, *query)
	if err != nil {
		return nil, 0, errs.Wrap(ErrListContent, err)
	}

	return resources, count, nil
}
