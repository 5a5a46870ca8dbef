package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"hr-dashboard/internal/domain"
)

type TaskRepository struct {
	db *DB
}

func NewTaskRepository(db *DB) *TaskRepository {
	return &TaskRepository{db: db}
}

type dbTask struct {
	ID           int64          `db:"id"`
	Title        string         `db:"title"`
	Description  sql.NullString `db:"description"`
	Priority     string         `db:"priority"`
	Status       string         `db:"status"`
	AssigneeID   sql.NullString `db:"assignee_id"`
	AssigneeName sql.NullString `db:"assignee_name"`
	Tags         sql.NullString `db:"tags"`
	Project      sql.NullString `db:"project"`
	CreatedAt    time.Time      `db:"created_at"`
	UpdatedAt    time.Time      `db:"updated_at"`
	DueDate      sql.NullTime   `db:"due_date"`
}

// converts dbTask to a domain.Task
func (dt *dbTask) toTask() (*domain.Task, error) {
	tags, err := decodeList(dt.Tags)
	if err != nil {
		return nil, err
	}

	task := &domain.Task{
		ID:           dt.ID,
		Title:        dt.Title,
		Description:  dt.Description.String,
		Priority:     domain.Priority(dt.Priority),
		Status:       domain.Status(dt.Status),
		AssigneeID:   dt.AssigneeID.String,
		AssigneeName: dt.AssigneeName.String,
		Project:      dt.Project.String,
		Tags:         tags,
		CreatedAt:    dt.CreatedAt,
		UpdatedAt:    dt.UpdatedAt,
	}

	if dt.DueDate.Valid {
		due := dt.DueDate.Time
		task.DueDate = &due
	}

	return task, nil
}

const taskSelect = `
	SELECT t.id, t.title, t.description, t.priority, t.status, t.assignee_id,
		e.name AS assignee_name, t.tags, t.project, t.created_at, t.updated_at, t.due_date
	FROM tasks t
	LEFT JOIN employees e ON e.id = t.assignee_id
`

// insert a new task
func (r *TaskRepository) Create(ctx context.Context, task *domain.Task) error {
	if err := task.Validate(); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	tags, err := encodeList(task.Tags)
	if err != nil {
		return err
	}

	if task.CreatedAt.IsZero() {
		task.CreatedAt = time.Now()
	}
	if task.UpdatedAt.IsZero() {
		task.UpdatedAt = task.CreatedAt
	}
	if task.Priority == "" {
		task.Priority = domain.PriorityMedium
	}
	if task.Status == "" {
		task.Status = domain.StatusPending
	}

	query := `
		INSERT INTO tasks (title, description, priority, status, assignee_id, tags, project, created_at, updated_at, due_date)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	result, err := r.db.ExecContext(ctx, query,
		task.Title,
		nullString(task.Description),
		task.Priority,
		task.Status,
		nullString(task.AssigneeID),
		tags,
		nullString(task.Project),
		task.CreatedAt,
		task.UpdatedAt,
		nullTime(task.DueDate),
	)
	if err != nil {
		return writeError("insert task", "task "+task.Title, err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert ID: %w", err)
	}

	task.ID = id
	return nil
}

// get all tasks with their assignee names
func (r *TaskRepository) List(ctx context.Context) ([]*domain.Task, error) {
	var rows []dbTask
	if err := r.db.SelectContext(ctx, &rows, taskSelect+" ORDER BY t.id"); err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}

	tasks := make([]*domain.Task, 0, len(rows))
	for _, row := range rows {
		task, err := row.toTask()
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, task)
	}

	return tasks, nil
}
