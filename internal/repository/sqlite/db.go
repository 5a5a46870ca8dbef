package sqlite

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"

	"hr-dashboard/internal/repository"
)

type DB struct {
	*sqlx.DB
}

type Config struct {
	Path string
}

// creates a new db conn & runs migrations
func NewDB(cfg Config) (*DB, error) {
	dir := filepath.Dir(cfg.Path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	db, err := sqlx.Open("sqlite3", cfg.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// pragmas are per connection
	db.SetMaxOpenConns(1)

	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	if _, err := db.Exec("PRAGMA journal_mode = WAL"); err != nil {
		return nil, fmt.Errorf("failed to enable WAL mode: %w", err)
	}

	if err := runMigrations(db.DB); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return &DB{DB: db}, nil
}

// NewStore wires every repository to db.
func NewStore(db *DB) *repository.Store {
	return &repository.Store{
		Employees:     NewEmployeeRepository(db),
		Tasks:         NewTaskRepository(db),
		Teams:         NewTeamRepository(db),
		Attendance:    NewAttendanceRepository(db),
		Notifications: NewNotificationRepository(db),
		Views:         NewViewRepository(db),
	}
}

// executes db schema
func runMigrations(db *sql.DB) error {
	schema := `
	CREATE TABLE IF NOT EXISTS employees (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		email TEXT UNIQUE,
		role TEXT NOT NULL DEFAULT 'employee',
		department TEXT,
		age INTEGER NOT NULL DEFAULT 0,
		skills TEXT,
		joined_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,

		CHECK(name != ''),
		CHECK(length(name) <= 100),
		CHECK(role IN ('admin', 'manager', 'employee'))
	);

	CREATE INDEX IF NOT EXISTS idx_employees_role ON employees(role);
	CREATE INDEX IF NOT EXISTS idx_employees_department ON employees(department);

	CREATE TABLE IF NOT EXISTS tasks (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		title TEXT NOT NULL,
		description TEXT,
		priority TEXT NOT NULL DEFAULT 'medium',
		status TEXT NOT NULL DEFAULT 'pending',
		assignee_id TEXT REFERENCES employees(id) ON DELETE SET NULL,
		tags TEXT,
		project TEXT,
		created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
		due_date DATETIME,

		CHECK(title != ''),
		CHECK(length(title) <= 200),
		CHECK(length(description) <= 1000),
		CHECK(priority IN ('low', 'medium', 'high', 'urgent')),
		CHECK(status IN ('pending', 'in_progress', 'completed', 'cancelled'))
	);

	CREATE INDEX IF NOT EXISTS idx_tasks_status ON tasks(status);
	CREATE INDEX IF NOT EXISTS idx_tasks_assignee ON tasks(assignee_id);
	CREATE INDEX IF NOT EXISTS idx_tasks_due_date ON tasks(due_date);

	CREATE TABLE IF NOT EXISTS teams (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL UNIQUE,
		description TEXT,
		lead_id TEXT REFERENCES employees(id) ON DELETE SET NULL,
		created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,

		CHECK(name != ''),
		CHECK(length(name) <= 100)
	);

	CREATE TABLE IF NOT EXISTS team_members (
		team_id INTEGER NOT NULL REFERENCES teams(id) ON DELETE CASCADE,
		employee_id TEXT NOT NULL REFERENCES employees(id) ON DELETE CASCADE,
		PRIMARY KEY (team_id, employee_id)
	);

	CREATE TABLE IF NOT EXISTS attendance (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		employee_id TEXT NOT NULL REFERENCES employees(id) ON DELETE CASCADE,
		date DATE NOT NULL,
		status TEXT NOT NULL,
		hours_worked REAL NOT NULL DEFAULT 0,
		note TEXT,

		UNIQUE(employee_id, date),
		CHECK(status IN ('present', 'absent', 'late', 'leave')),
		CHECK(hours_worked >= 0 AND hours_worked <= 24)
	);

	CREATE INDEX IF NOT EXISTS idx_attendance_date ON attendance(date);

	CREATE TABLE IF NOT EXISTS notifications (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		recipient_id TEXT NOT NULL,
		type TEXT NOT NULL,
		actor_id TEXT,
		target_id TEXT,
		details TEXT,
		read BOOLEAN NOT NULL DEFAULT 0,
		created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,

		CHECK(type != '')
	);

	CREATE INDEX IF NOT EXISTS idx_notifications_recipient ON notifications(recipient_id, read);

	CREATE TABLE IF NOT EXISTS saved_views (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		screen TEXT NOT NULL,
		name TEXT NOT NULL,
		description TEXT,
		state TEXT NOT NULL,
		is_default BOOLEAN NOT NULL DEFAULT 0,
		created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,

		UNIQUE(screen, name),
		CHECK(name != ''),
		CHECK(length(name) <= 100)
	);

	CREATE UNIQUE INDEX IF NOT EXISTS idx_saved_views_default
		ON saved_views(screen) WHERE is_default = 1;

	CREATE TRIGGER IF NOT EXISTS update_tasks_updated_at
		AFTER UPDATE ON tasks
		FOR EACH ROW
	BEGIN
		UPDATE tasks SET updated_at = CURRENT_TIMESTAMP WHERE id = OLD.id;
	END;
	`

	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("failed to execute schema: %w", err)
	}

	return nil
}

func (db *DB) Close() error {
	return db.DB.Close()
}
