package sqlite

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hr-dashboard/internal/domain"
)

func TestTeamRepository(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	employees := NewEmployeeRepository(db)
	repo := NewTeamRepository(db)
	ctx := context.Background()

	lead := createEmployee(t, employees, "Lena", domain.RoleManager)
	dev := createEmployee(t, employees, "Dev", domain.RoleEmployee)
	ops := createEmployee(t, employees, "Ops", domain.RoleEmployee)

	team := domain.NewTeam("Platform")
	team.LeadID = lead.ID
	team.MemberIDs = []string{dev.ID}
	require.NoError(t, repo.Create(ctx, team))
	assert.NotZero(t, team.ID)

	t.Run("get by name is case-insensitive", func(t *testing.T) {
		got, err := repo.GetByName(ctx, "platform")
		require.NoError(t, err)
		assert.Equal(t, team.ID, got.ID)
		assert.Equal(t, "Lena", got.LeadName)
		assert.Equal(t, []string{dev.ID}, got.MemberIDs)
	})

	t.Run("add member", func(t *testing.T) {
		require.NoError(t, repo.AddMember(ctx, team.ID, ops.ID))
		assert.ErrorIs(t, repo.AddMember(ctx, team.ID, ops.ID), domain.ErrAlreadyExists)

		got, err := repo.GetByName(ctx, "Platform")
		require.NoError(t, err)
		assert.Equal(t, []string{dev.ID, ops.ID}, got.MemberIDs)
		assert.Equal(t, 3, got.Size())
	})

	t.Run("duplicate name", func(t *testing.T) {
		err := repo.Create(ctx, domain.NewTeam("Platform"))
		assert.ErrorIs(t, err, domain.ErrAlreadyExists)
	})

	t.Run("list includes members", func(t *testing.T) {
		require.NoError(t, repo.Create(ctx, domain.NewTeam("Empty")))

		teams, err := repo.List(ctx)
		require.NoError(t, err)
		require.Len(t, teams, 2)
		assert.Len(t, teams[0].MemberIDs, 2)
		assert.Empty(t, teams[1].MemberIDs)
		assert.NotNil(t, teams[1].MemberIDs)
	})

	t.Run("missing team", func(t *testing.T) {
		_, err := repo.GetByName(ctx, "Payroll")
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}
