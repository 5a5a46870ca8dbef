// Package repository declares the storage contracts the dashboard
// screens load their records through.
package repository

import (
	"context"

	"hr-dashboard/internal/domain"
)

type EmployeeRepository interface {
	Create(ctx context.Context, employee *domain.Employee) error
	GetByID(ctx context.Context, id string) (*domain.Employee, error)
	GetByEmail(ctx context.Context, email string) (*domain.Employee, error)
	List(ctx context.Context) ([]*domain.Employee, error)
	Update(ctx context.Context, employee *domain.Employee) error
}

type TaskRepository interface {
	Create(ctx context.Context, task *domain.Task) error
	List(ctx context.Context) ([]*domain.Task, error)
}

type TeamRepository interface {
	Create(ctx context.Context, team *domain.Team) error
	GetByName(ctx context.Context, name string) (*domain.Team, error)
	List(ctx context.Context) ([]*domain.Team, error)
	AddMember(ctx context.Context, teamID int64, employeeID string) error
}

type AttendanceRepository interface {
	// Create records one day for one employee; a second record for the
	// same day fails with domain.ErrAlreadyExists.
	Create(ctx context.Context, record *domain.Attendance) error
	List(ctx context.Context) ([]*domain.Attendance, error)
}

type NotificationRepository interface {
	Create(ctx context.Context, n *domain.Notification) error
	List(ctx context.Context) ([]*domain.Notification, error)
	ListForRecipient(ctx context.Context, recipientID string, unreadOnly bool) ([]*domain.Notification, error)
	MarkRead(ctx context.Context, id int64) error
	MarkAllRead(ctx context.Context, recipientID string) (int64, error)
}

// ViewRepository stores saved views. Names are unique per screen and at
// most one view per screen is the default.
type ViewRepository interface {
	Create(ctx context.Context, view *domain.SavedView) error
	GetByName(ctx context.Context, screen, name string) (*domain.SavedView, error)
	ListByScreen(ctx context.Context, screen string) ([]*domain.SavedView, error)
	Update(ctx context.Context, view *domain.SavedView) error
	Delete(ctx context.Context, screen, name string) error

	SetDefault(ctx context.Context, screen, name string) error
	GetDefault(ctx context.Context, screen string) (*domain.SavedView, error)
}

// Store bundles every repository behind one database handle.
type Store struct {
	Employees     EmployeeRepository
	Tasks         TaskRepository
	Teams         TeamRepository
	Attendance    AttendanceRepository
	Notifications NotificationRepository
	Views         ViewRepository
}
