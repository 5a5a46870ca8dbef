package domain

import (
	"fmt"
	"strings"
	"time"
)

type AttendanceStatus string

const (
	AttendancePresent AttendanceStatus = "present"
	AttendanceAbsent  AttendanceStatus = "absent"
	AttendanceLate    AttendanceStatus = "late"
	AttendanceLeave   AttendanceStatus = "leave"
)

func ParseAttendanceStatus(s string) (AttendanceStatus, error) {
	status := AttendanceStatus(strings.ToLower(strings.TrimSpace(s)))
	switch status {
	case AttendancePresent, AttendanceAbsent, AttendanceLate, AttendanceLeave:
		return status, nil
	default:
		return "", fmt.Errorf("invalid attendance status: %s (must be present, absent, late, or leave)", s)
	}
}

type Attendance struct {
	ID          int64            `db:"id" json:"id" yaml:"id"`
	EmployeeID  string           `db:"employee_id" json:"employee_id" yaml:"employee_id"`
	Date        time.Time        `db:"date" json:"date" yaml:"date"`
	Status      AttendanceStatus `db:"status" json:"status" yaml:"status"`
	HoursWorked float64          `db:"hours_worked" json:"hours_worked" yaml:"hours_worked"`
	Note        string           `db:"note" json:"note,omitempty" yaml:"note"`

	EmployeeName string `db:"-" json:"employee_name,omitempty" yaml:"-"`
}

func NewAttendance(employeeID string, date time.Time, status AttendanceStatus) *Attendance {
	return &Attendance{
		EmployeeID: employeeID,
		Date:       date,
		Status:     status,
	}
}

func (a *Attendance) Validate() error {
	if strings.TrimSpace(a.EmployeeID) == "" {
		return invalid("attendance employee cannot be empty")
	}

	if a.Date.IsZero() {
		return invalid("attendance date cannot be empty")
	}

	if _, err := ParseAttendanceStatus(string(a.Status)); err != nil {
		return invalid(err.Error())
	}

	if a.HoursWorked < 0 || a.HoursWorked > 24 {
		return invalid("hours worked must be between 0 and 24")
	}

	if a.Status == AttendanceAbsent && a.HoursWorked > 0 {
		return invalid("absent records cannot log hours")
	}

	return nil
}

// Month returns the YYYY-MM bucket of the record date.
func (a *Attendance) Month() string {
	return a.Date.Format("2006-01")
}
