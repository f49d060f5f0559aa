package manager_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agenthub/hub/internal/manager"
	"github.com/agenthub/hub/internal/model"
	"github.com/agenthub/hub/internal/repo"
	"github.com/agenthub/hub/internal/repo/mock"
)

func setupContentManagers(t *testing.T) (*manager.WorkshopManager, *manager.LibraryManager, context.Context) {
	t.Helper()

	r := mock.NewRepo()

	tm := manager.NewTenantManager(r, &adminStore{r: r}, &recordingInvalidator{})

	tenant, err := tm.Provision(context.Background(), "Acme", "acme", "")
	require.NoError(t, err)

	return manager.NewWorkshopManager(r), manager.NewLibraryManager(r), hubTenantContext(tenant.ID)
}

func TestWorkshopLifecycle(t *testing.T) {
	wm, _, ctx := setupContentManagers(t)

	workshop := &model.Workshop{
		Title:        "Intro to Provisioning",
		Description:  "Hands-on session",
		InstructorID: uuid.New(),
	}
	require.NoError(t, wm.Create(ctx, workshop))
	require.NotEqual(t, uuid.Nil, workshop.ID)

	assert.ErrorIs(t, wm.Create(ctx, &model.Workshop{}), manager.ErrValidatingContent)

	got, err := wm.Get(ctx, workshop.ID)
	require.NoError(t, err)
	assert.Equal(t, workshop.Title, got.Title)
	assert.False(t, got.Published)

	published, err := wm.SetPublished(ctx, workshop.ID, true)
	require.NoError(t, err)
	assert.True(t, published.Published)

	_, err = wm.Get(ctx, uuid.New())
	assert.ErrorIs(t, err, repo.ErrNotFound)
}

func TestWorkshopListPublishedOnly(t *testing.T) {
	wm, _, ctx := setupContentManagers(t)

	draft := &model.Workshop{Title: "Draft", InstructorID: uuid.New()}
	require.NoError(t, wm.Create(ctx, draft))

	live := &model.Workshop{Title: "Live", InstructorID: uuid.New()}
	require.NoError(t, wm.Create(ctx, live))

	_, err := wm.SetPublished(ctx, live.ID, true)
	require.NoError(t, err)

	all, count, err := wm.List(ctx, manager.WorkshopFilter{}, 0, 10)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
	assert.Len(t, all, 2)

	published, count, err := wm.List(ctx, manager.WorkshopFilter{PublishedOnly: true}, 0, 10)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
	require.Len(t, published, 1)
	assert.Equal(t, "Live", published[0].Title)
}

func TestWorkshopListCreatedWindow(t *testing.T) {
	wm, _, ctx := setupContentManagers(t)

	base := time.Date(2026, time.January, 10, 0, 0, 0, 0, time.UTC)

	early := &model.Workshop{Title: "Early", InstructorID: uuid.New()}
	early.CreatedAt = base
	require.NoError(t, wm.Create(ctx, early))

	late := &model.Workshop{Title: "Late", InstructorID: uuid.New()}
	late.CreatedAt = base.AddDate(0, 1, 0)
	require.NoError(t, wm.Create(ctx, late))

	cutoff := base.AddDate(0, 0, 15)

	recent, count, err := wm.List(ctx, manager.WorkshopFilter{CreatedAfter: &cutoff}, 0, 10)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
	require.Len(t, recent, 1)
	assert.Equal(t, "Late", recent[0].Title)

	older, count, err := wm.List(ctx, manager.WorkshopFilter{CreatedBefore: &cutoff}, 0, 10)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
	require.Len(t, older, 1)
	assert.Equal(t, "Early", older[0].Title)
}

func TestLibraryResources(t *testing.T) {
	_, lm, ctx := setupContentManagers(t)

	guide := &model.LibraryResource{Title: "Getting Started", Kind: model.ResourceKindGuide}
	require.NoError(t, lm.Create(ctx, guide))

	template := &model.LibraryResource{Title: "Workshop Template", Kind: model.ResourceKindTemplate}
	require.NoError(t, lm.Create(ctx, template))

	err := lm.Create(ctx, &model.LibraryResource{Title: "Bad", Kind: "video"})
	assert.ErrorIs(t, err, model.ErrInvalidResourceKind)

	got, err := lm.Get(ctx, guide.ID)
	require.NoError(t, err)
	assert.Equal(t, "Getting Started", got.Title)

	all, count, err := lm.List(ctx, "", 0, 10)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
	assert.Len(t, all, 2)

	guides, count, err := lm.List(ctx, model.ResourceKindGuide, 0, 10)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
	require.Len(t, guides, 1)
	assert.Equal(t, model.ResourceKindGuide, guides[0].Kind)

	_, _, err = lm.List(ctx, "video", 0, 10)
	assert.ErrorIs(t, err, model.ErrInvalidResourceKind)
}
