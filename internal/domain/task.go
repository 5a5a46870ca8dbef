package domain

import (
	"errors"
	"strings"
	"time"
)

// task priority
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
	PriorityUrgent Priority = "urgent"
)

// numeric rank, higher is more urgent
func (p Priority) Rank() int {
	switch p {
	case PriorityUrgent:
		return 4
	case PriorityHigh:
		return 3
	case PriorityMedium:
		return 2
	case PriorityLow:
		return 1
	default:
		return 0
	}
}

// task status
type Status string

const (
	StatusPending    Status = "pending"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
	StatusCancelled  Status = "cancelled"
)

type Task struct {
	ID          int64      `db:"id" json:"id" yaml:"id"`
	Title       string     `db:"title" json:"title" yaml:"title"`
	Description string     `db:"description" json:"description" yaml:"description"`
	Priority    Priority   `db:"priority" json:"priority" yaml:"priority"`
	Status      Status     `db:"status" json:"status" yaml:"status"`
	AssigneeID  string     `db:"assignee_id" json:"assignee_id,omitempty" yaml:"assignee_id"`
	Project     string     `db:"project" json:"project,omitempty" yaml:"project"`
	Tags        []string   `db:"tags" json:"tags" yaml:"tags"`
	CreatedAt   time.Time  `db:"created_at" json:"created_at" yaml:"created_at"`
	UpdatedAt   time.Time  `db:"updated_at" json:"updated_at" yaml:"updated_at"`
	DueDate     *time.Time `db:"due_date" json:"due_date,omitempty" yaml:"due_date"`

	AssigneeName string `db:"-" json:"assignee_name,omitempty" yaml:"-"`
}

func (t *Task) Validate() error {
	if strings.TrimSpace(t.Title) == "" {
		return invalid("task title cannot be empty")
	}

	if len(t.Title) > 200 {
		return invalid("task title cannot exceed 200 characters")
	}

	if len(t.Description) > 1000 {
		return invalid("task description cannot exceed 1000 characters")
	}

	if t.Priority != "" && !isValidPriority(t.Priority) {
		return invalid("invalid priority: must be low, medium, high, or urgent")
	}

	if t.Status != "" && !isValidStatus(t.Status) {
		return invalid("invalid status: must be pending, in_progress, completed, or cancelled")
	}

	return nil
}

// create a new task
func NewTask(title string) *Task {
	now := time.Now()
	return &Task{
		Title:     title,
		Priority:  PriorityMedium,
		Status:    StatusPending,
		Tags:      make([]string, 0),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func (t *Task) IsOpen() bool {
	return t.Status == StatusPending || t.Status == StatusInProgress
}

// DueBucket groups an open task by its due date relative to now:
// overdue, today, this_week, later or none.
func (t *Task) DueBucket(now time.Time) string {
	if t.DueDate == nil {
		return "none"
	}

	today := startOfDay(now)
	due := startOfDay(t.DueDate.In(now.Location()))

	switch {
	case due.Before(today):
		if !t.IsOpen() {
			return "past"
		}
		return "overdue"
	case due.Equal(today):
		return "today"
	case due.Before(today.AddDate(0, 0, 7)):
		return "this_week"
	default:
		return "later"
	}
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func isValidPriority(p Priority) bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent:
		return true
	default:
		return false
	}
}

func isValidStatus(s Status) bool {
	switch s {
	case StatusPending, StatusInProgress, StatusCompleted, StatusCancelled:
		return true
	default:
		return false
	}
}

// parses a date string in various formats
func ParseDate(dateStr string) (*time.Time, error) {
	formats := []string{
		"2006-01-02",
		"2006/01/02",
		"02-01-2006",
		"02/01/2006",
	}

	for _, format := range formats {
		if t, err := time.ParseInLocation(format, strings.TrimSpace(dateStr), time.Local); err == nil {
			return &t, nil
		}
	}

	return nil, errors.New("unable to parse date: " + dateStr)
}
