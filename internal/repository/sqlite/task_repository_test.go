package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hr-dashboard/internal/domain"
)

func TestTaskRepository_Create(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	repo := NewTaskRepository(db)
	ctx := context.Background()

	t.Run("create valid task", func(t *testing.T) {
		task := domain.NewTask("Test Task")
		task.Description = "This is a test task"
		task.Priority = domain.PriorityHigh
		task.Tags = []string{"test", "important"}
		task.Project = "Onboarding"

		require.NoError(t, repo.Create(ctx, task))
		assert.NotZero(t, task.ID)
	})

	t.Run("create task with invalid data", func(t *testing.T) {
		err := repo.Create(ctx, &domain.Task{Title: ""})
		assert.ErrorIs(t, err, domain.ErrInvalid)
	})

	t.Run("defaults are applied", func(t *testing.T) {
		task := &domain.Task{Title: "Bare"}
		require.NoError(t, repo.Create(ctx, task))
		assert.Equal(t, domain.PriorityMedium, task.Priority)
		assert.Equal(t, domain.StatusPending, task.Status)
	})
}

func TestTaskRepository_List(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	employees := NewEmployeeRepository(db)
	repo := NewTaskRepository(db)
	ctx := context.Background()

	bob := createEmployee(t, employees, "Bob", domain.RoleEmployee)

	due := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	first := domain.NewTask("Write docs")
	first.AssigneeID = bob.ID
	first.Tags = []string{"docs"}
	first.DueDate = &due
	second := domain.NewTask("Review docs")
	require.NoError(t, repo.Create(ctx, first))
	require.NoError(t, repo.Create(ctx, second))

	tasks, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, tasks, 2)

	got := tasks[0]
	assert.Equal(t, first.ID, got.ID)
	assert.Equal(t, "Write docs", got.Title)
	assert.Equal(t, bob.ID, got.AssigneeID)
	assert.Equal(t, "Bob", got.AssigneeName)
	assert.Equal(t, []string{"docs"}, got.Tags)
	require.NotNil(t, got.DueDate)
	assert.True(t, due.Equal(*got.DueDate))

	assert.Equal(t, "Review docs", tasks[1].Title)
	assert.Empty(t, tasks[1].AssigneeName)
	assert.Nil(t, tasks[1].DueDate)
}
