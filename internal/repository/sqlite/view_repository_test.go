package sqlite

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hr-dashboard/internal/domain"
	"hr-dashboard/internal/listquery"
)

func newView(screen, name string) *domain.SavedView {
	state := listquery.NewState("age", listquery.Descending)
	state.SetSearchTerm("car")
	state.ToggleFilterValue("role", "employee")
	return domain.NewSavedView(screen, name, state)
}

func TestViewRepository_Create(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	repo := NewViewRepository(db)
	ctx := context.Background()

	view := newView("employees", "Seniors")
	view.Description = "older staff first"
	require.NoError(t, repo.Create(ctx, view))
	assert.NotZero(t, view.ID)

	t.Run("state survives the round trip", func(t *testing.T) {
		got, err := repo.GetByName(ctx, "employees", "seniors")
		require.NoError(t, err)

		state := got.QueryState()
		assert.Equal(t, "car", state.SearchTerm())
		assert.Equal(t, []string{"employee"}, state.FilterValues("role"))
		assert.Equal(t, "age", state.SortField())
		assert.Equal(t, listquery.Descending, state.SortDirection())
		assert.Equal(t, "older staff first", got.Description)
	})

	t.Run("names are unique per screen", func(t *testing.T) {
		assert.ErrorIs(t, repo.Create(ctx, newView("employees", "Seniors")), domain.ErrAlreadyExists)
		assert.NoError(t, repo.Create(ctx, newView("tasks", "Seniors")))
	})

	t.Run("invalid view", func(t *testing.T) {
		assert.ErrorIs(t, repo.Create(ctx, newView("employees", "")), domain.ErrInvalid)
	})
}

func TestViewRepository_Defaults(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	repo := NewViewRepository(db)
	ctx := context.Background()

	_, err := repo.GetDefault(ctx, "employees")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	first := newView("employees", "Alpha")
	first.IsDefault = true
	require.NoError(t, repo.Create(ctx, first))
	require.NoError(t, repo.Create(ctx, newView("employees", "Beta")))

	got, err := repo.GetDefault(ctx, "employees")
	require.NoError(t, err)
	assert.Equal(t, "Alpha", got.Name)

	require.NoError(t, repo.SetDefault(ctx, "employees", "Beta"))

	got, err = repo.GetDefault(ctx, "employees")
	require.NoError(t, err)
	assert.Equal(t, "Beta", got.Name)

	views, err := repo.ListByScreen(ctx, "employees")
	require.NoError(t, err)
	require.Len(t, views, 2)
	assert.Equal(t, "Beta", views[0].Name)
	assert.False(t, views[1].IsDefault)

	assert.ErrorIs(t, repo.SetDefault(ctx, "employees", "Gamma"), domain.ErrNotFound)

	got, err = repo.GetDefault(ctx, "employees")
	require.NoError(t, err)
	assert.Equal(t, "Beta", got.Name, "failed SetDefault leaves the old default")
}

func TestViewRepository_UpdateDelete(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	repo := NewViewRepository(db)
	ctx := context.Background()

	view := newView("tasks", "Mine")
	require.NoError(t, repo.Create(ctx, view))

	state := view.QueryState()
	state.ClearFilters()
	view.State = state.Snapshot()
	view.Name = "Everything"
	require.NoError(t, repo.Update(ctx, view))

	got, err := repo.GetByName(ctx, "tasks", "Everything")
	require.NoError(t, err)
	assert.False(t, got.QueryState().IsFiltered())

	require.NoError(t, repo.Delete(ctx, "tasks", "everything"))
	assert.ErrorIs(t, repo.Delete(ctx, "tasks", "everything"), domain.ErrNotFound)
}
