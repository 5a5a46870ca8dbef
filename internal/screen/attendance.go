package screen

import (
	"context"
	"strconv"
	"time"

	"hr-dashboard/internal/display"
	"hr-dashboard/internal/domain"
	"hr-dashboard/internal/listquery"
	"hr-dashboard/internal/repository"
)

func attendancePage(store *repository.Store, opts Options) *page[*domain.Attendance] {
	return newPage(pageSpec[*domain.Attendance]{
		name:  "attendance",
		title: "Attendance",
		fields: []listquery.Field[*domain.Attendance]{
			listquery.TextField("employee", func(a *domain.Attendance) string { return a.EmployeeName }),
			listquery.TimeField("date", func(a *domain.Attendance) *time.Time { return timeOrNil(a.Date) }),
			listquery.TextField("status", func(a *domain.Attendance) string { return string(a.Status) }),
			listquery.NumberField("hours", func(a *domain.Attendance) float64 { return a.HoursWorked }),
			listquery.TextField("note", func(a *domain.Attendance) string { return a.Note }),
		},
		categories: []string{"status", "employee", "month"},
		computed: map[string]listquery.Projection[*domain.Attendance]{
			"month": func(a *domain.Attendance) listquery.Value {
				return listquery.String(a.Month())
			},
		},
		sortFields: []string{"employee", "date", "status", "hours"},
		sort:       "date",
		dir:        listquery.Descending,
		mention:    "employee",
		columns: []Column{
			{Title: "Date", Width: 10},
			{Title: "Employee", Width: 20},
			{Title: "Status", Width: 10},
			{Title: "Hours", Width: 6},
			{Title: "Note", Width: 30},
		},
		row: func(a *domain.Attendance) Row {
			return Row{
				ID: strconv.FormatInt(a.ID, 10),
				Cells: []string{
					formatDate(a.Date),
					orDash(a.EmployeeName),
					display.GetAttendanceIcon(a.Status) + " " + string(a.Status),
					strconv.FormatFloat(a.HoursWorked, 'f', 1, 64),
					orDash(a.Note),
				},
				Record: a,
			}
		},
		load: func(ctx context.Context, store *repository.Store) ([]*domain.Attendance, error) {
			return store.Attendance.List(ctx)
		},
	}, store, opts)
}
