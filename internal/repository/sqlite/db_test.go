package sqlite

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

func setupTestDB(t *testing.T) (*DB, func()) {
	tmpFile, err := os.CreateTemp("", "hrdash_test_*.db")
	require.NoError(t, err)
	tmpFile.Close()

	dbPath := tmpFile.Name()

	db, err := NewDB(Config{Path: dbPath})
	require.NoError(t, err)

	cleanup := func() {
		db.Close()
		os.Remove(dbPath)
		os.Remove(dbPath + "-wal")
		os.Remove(dbPath + "-shm")
	}

	return db, cleanup
}

func TestNewDB_MigrationsAreIdempotent(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	require.NoError(t, runMigrations(db.DB.DB))
}

func TestNewStore(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	store := NewStore(db)
	require.NotNil(t, store.Employees)
	require.NotNil(t, store.Tasks)
	require.NotNil(t, store.Teams)
	require.NotNil(t, store.Attendance)
	require.NotNil(t, store.Notifications)
	require.NotNil(t, store.Views)
}
