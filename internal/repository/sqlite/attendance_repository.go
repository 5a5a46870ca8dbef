package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"hr-dashboard/internal/domain"
)

type AttendanceRepository struct {
	db *DB
}

func NewAttendanceRepository(db *DB) *AttendanceRepository {
	return &AttendanceRepository{db: db}
}

type dbAttendance struct {
	ID           int64          `db:"id"`
	EmployeeID   string         `db:"employee_id"`
	EmployeeName sql.NullString `db:"employee_name"`
	Date         time.Time      `db:"date"`
	Status       string         `db:"status"`
	HoursWorked  float64        `db:"hours_worked"`
	Note         sql.NullString `db:"note"`
}

func (da *dbAttendance) toAttendance() *domain.Attendance {
	return &domain.Attendance{
		ID:           da.ID,
		EmployeeID:   da.EmployeeID,
		EmployeeName: da.EmployeeName.String,
		Date:         da.Date,
		Status:       domain.AttendanceStatus(da.Status),
		HoursWorked:  da.HoursWorked,
		Note:         da.Note.String,
	}
}

func (r *AttendanceRepository) Create(ctx context.Context, record *domain.Attendance) error {
	if err := record.Validate(); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	// one row per calendar day
	year, month, day := record.Date.Date()
	record.Date = time.Date(year, month, day, 0, 0, 0, 0, time.UTC)

	result, err := r.db.ExecContext(ctx, `
		INSERT INTO attendance (employee_id, date, status, hours_worked, note)
		VALUES (?, ?, ?, ?, ?)
	`,
		record.EmployeeID,
		record.Date.Format("2006-01-02"),
		record.Status,
		record.HoursWorked,
		nullString(record.Note),
	)
	if err != nil {
		return writeError("insert attendance",
			fmt.Sprintf("attendance for %s on %s", record.EmployeeID, record.Date.Format("2006-01-02")), err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert ID: %w", err)
	}

	record.ID = id
	return nil
}

func (r *AttendanceRepository) List(ctx context.Context) ([]*domain.Attendance, error) {
	query := `
		SELECT a.id, a.employee_id, e.name AS employee_name, a.date, a.status, a.hours_worked, a.note
		FROM attendance a
		LEFT JOIN employees e ON e.id = a.employee_id
		ORDER BY a.id
	`

	var rows []dbAttendance
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("failed to list attendance: %w", err)
	}

	records := make([]*domain.Attendance, 0, len(rows))
	for _, row := range rows {
		records = append(records, row.toAttendance())
	}

	return records, nil
}
