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

func employeesPage(store *repository.Store, opts Options) *page[*domain.Employee] {
	return newPage(pageSpec[*domain.Employee]{
		name:  "employees",
		title: "Employees",
		fields: []listquery.Field[*domain.Employee]{
			listquery.TextField("name", func(e *domain.Employee) string { return e.Name }),
			listquery.TextField("email", func(e *domain.Employee) string { return e.Email }),
			listquery.TextField("role", func(e *domain.Employee) string { return string(e.Role) }),
			listquery.TextField("department", func(e *domain.Employee) string { return e.Department }),
			listquery.NumberField("age", func(e *domain.Employee) float64 { return float64(e.Age) }),
			listquery.ListField("skills", func(e *domain.Employee) []string { return e.Skills }),
			listquery.TimeField("joined", func(e *domain.Employee) *time.Time { return timeOrNil(e.JoinedAt) }),
		},
		categories: []string{"role", "department", "skills"},
		sortFields: []string{"name", "email", "role", "department", "age", "joined"},
		sort:       "name",
		dir:        listquery.Ascending,
		aliases: map[string]string{
			"dept":  "department",
			"skill": "skills",
		},
		columns: []Column{
			{Title: "Name", Width: 20},
			{Title: "Email", Width: 26},
			{Title: "Role", Width: 10},
			{Title: "Department", Width: 14},
			{Title: "Age", Width: 4},
			{Title: "Skills", Width: 24},
			{Title: "Joined", Width: 10},
		},
		row: func(e *domain.Employee) Row {
			age := "-"
			if e.Age > 0 {
				age = strconv.Itoa(e.Age)
			}
			return Row{
				ID: e.ID,
				Cells: []string{
					e.Name,
					orDash(e.Email),
					e.Role.Label(),
					orDash(e.Department),
					age,
					display.JoinList(e.Skills),
					formatDate(e.JoinedAt),
				},
				Record: e,
			}
		},
		load: func(ctx context.Context, store *repository.Store) ([]*domain.Employee, error) {
			return store.Employees.List(ctx)
		},
	}, store, opts)
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Format("2006-01-02")
}
