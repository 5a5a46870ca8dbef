package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hr-dashboard/internal/domain"
)

func TestNotificationRepository(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	repo := NewNotificationRepository(db)
	ctx := context.Background()

	base := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	older := domain.NewNotification("bob", domain.Activity{
		Type:      domain.ActivityTaskAssigned,
		ActorID:   "alice",
		TargetID:  "bob",
		Details:   map[string]string{"taskTitle": "Write docs"},
		CreatedAt: base,
	})
	newer := domain.NewNotification("bob", domain.Activity{
		Type:      domain.ActivityTeamJoined,
		ActorID:   "bob",
		CreatedAt: base.Add(time.Hour),
	})
	other := domain.NewNotification("carol", domain.Activity{
		Type:      domain.ActivityCommentAdded,
		CreatedAt: base,
	})

	for _, n := range []*domain.Notification{older, newer, other} {
		require.NoError(t, repo.Create(ctx, n))
	}

	t.Run("invalid notification", func(t *testing.T) {
		err := repo.Create(ctx, domain.NewNotification("", domain.Activity{Type: "x"}))
		assert.ErrorIs(t, err, domain.ErrInvalid)
	})

	t.Run("newest first with details", func(t *testing.T) {
		list, err := repo.ListForRecipient(ctx, "bob", false)
		require.NoError(t, err)
		require.Len(t, list, 2)
		assert.Equal(t, newer.ID, list[0].ID)
		assert.Equal(t, "Write docs", list[1].Detail("taskTitle"))
		assert.Equal(t, "alice", list[1].ActorID)
		assert.Nil(t, list[0].Details)
	})

	t.Run("mark read", func(t *testing.T) {
		require.NoError(t, repo.MarkRead(ctx, older.ID))
		assert.ErrorIs(t, repo.MarkRead(ctx, 9999), domain.ErrNotFound)

		unread, err := repo.ListForRecipient(ctx, "bob", true)
		require.NoError(t, err)
		require.Len(t, unread, 1)
		assert.Equal(t, newer.ID, unread[0].ID)

		n, err := repo.MarkAllRead(ctx, "bob")
		require.NoError(t, err)
		assert.EqualValues(t, 1, n)

		unread, err = repo.ListForRecipient(ctx, "bob", true)
		require.NoError(t, err)
		assert.Empty(t, unread)
	})

	all, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}
