package manager

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/agenthub/hub/internal/errs"
	"github.com/agenthub/hub/internal/model"
	"github.com/agenthub/hub/internal/repo"
)

// WorkshopFilter narrows a workshop listing. The time bounds are open when
// nil.
type WorkshopFilter struct {
	PublishedOnly bool
	CreatedAfter  *time.Time
	CreatedBefore *time.Time
}

type Workshop interface {
	Create(ctx context.Context, workshop *model.Workshop) error
	Get(ctx context.Context, id uuid.UUID) (*model.Workshop, error)
	List(ctx context.Context, filter WorkshopFilter, skip, top int) ([]*model.Workshop, int, error)
	SetPublished(ctx context.Context, id uuid.UUID, published bool) (*model.Workshop, error)
}

type WorkshopManager struct {
	repo repo.Repo
}

func NewWorkshopManager(r repo.Repo) *WorkshopManager {
	return &WorkshopManager{repo: r}
}

func (m *WorkshopManager) Create(ctx context.Context, workshop *model.Workshop) error {
	if workshop.ID == uuid.Nil {
		workshop.ID = uuid.New()
	}

	err := workshop.Validate()
	if err != nil {
		return errs.Wrap(ErrValidatingContent, err)
	}

	return m.repo.Create(ctx, workshop)
}

func (m *WorkshopManager) Get(ctx context.Context, id uuid.UUID) (*model.Workshop, error) {
	workshop := &model.Workshop{ID: id}

	_, err := m.repo.First(ctx, workshop, *repo.NewQuery())
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, err
		}

		return nil, errs.Wrap(ErrGettingContent, err)
	}

	return workshop, nil
}

func (m *WorkshopManager) List(
	ctx context.Context,
	filter WorkshopFilter,
	skip, top int,
) ([]*model.Workshop, int, error) {
	var workshops []*model.Workshop

	query := repo.NewQuery().
		SetOffset(skip).
		SetLimit(top).
		Order(repo.OrderField{Field: repo.CreatedField, Direction: repo.Desc})

	if filter.PublishedOnly {
		ck := repo.NewCompositeKey().Where(repo.PublishedField, true)
		query = query.Where(repo.NewCompositeKeyGroup(ck))
	}

	if filter.CreatedAfter != nil {
		ck := repo.NewCompositeKey().Where(repo.CreatedField, *filter.CreatedAfter, repo.Gt)
		query = query.Where(repo.NewCompositeKeyGroup(ck))
	}

	if filter.CreatedBefore != nil {
		ck := repo.NewCompositeKey().Where(repo.CreatedField, *filter.CreatedBefore, repo.Lt)
		query = query.Where(repo.NewCompositeKeyGroup(ck))
	}

	count, err := m.repo.List(ctx, model.Workshop{}, &workshops, *query)
	if err != nil {
		return nil, 0, errs.Wrap(ErrListContent, err)
	}

	return workshops, count, nil
}

func (m *WorkshopManager) SetPublished(ctx context.Context, id uuid.UUID, published bool) (*model.Workshop, error) {
	workshop, err := m.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	workshop.Published = published

	_, err = m.repo.Patch(ctx, workshop, *repo.NewQuery().Update(repo.PublishedField))
	if err != nil {
		return nil, err
	}

	return workshop, nil
}
