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

// tasks filter on the priority name but sort on its rank, and filter on
// a due bucket but sort on the due date
func tasksPage(store *repository.Store, opts Options) *page[*domain.Task] {
	return newPage(pageSpec[*domain.Task]{
		name:  "tasks",
		title: "Tasks",
		fields: []listquery.Field[*domain.Task]{
			listquery.NumberField("id", func(t *domain.Task) float64 { return float64(t.ID) }),
			listquery.TextField("title", func(t *domain.Task) string { return t.Title }),
			listquery.TextField("description", func(t *domain.Task) string { return t.Description }),
			listquery.TextField("status", func(t *domain.Task) string { return string(t.Status) }),
			listquery.NumberField("priority", func(t *domain.Task) float64 { return float64(t.Priority.Rank()) }),
			listquery.TextField("project", func(t *domain.Task) string { return t.Project }),
			listquery.ListField("tags", func(t *domain.Task) []string { return t.Tags }),
			listquery.TextField("assignee", func(t *domain.Task) string { return t.AssigneeName }),
			listquery.TimeField("due", func(t *domain.Task) *time.Time { return t.DueDate }),
			listquery.TimeField("created", func(t *domain.Task) *time.Time { return timeOrNil(t.CreatedAt) }),
			listquery.TimeField("updated", func(t *domain.Task) *time.Time { return timeOrNil(t.UpdatedAt) }),
		},
		categories: []string{"status", "priority", "project", "tags", "assignee", "due"},
		computed: map[string]listquery.Projection[*domain.Task]{
			"priority": func(t *domain.Task) listquery.Value {
				return listquery.String(string(t.Priority))
			},
			"due": func(t *domain.Task) listquery.Value {
				return listquery.String(t.DueBucket(opts.now()))
			},
		},
		sortFields: []string{"id", "title", "status", "priority", "project", "assignee", "due", "created", "updated"},
		sort:       "due",
		dir:        listquery.Ascending,
		mention:    "assignee",
		aliases:    map[string]string{"tag": "tags"},
		columns: []Column{
			{Title: "ID", Width: 4},
			{Title: "Title", Width: 30},
			{Title: "Status", Width: 12},
			{Title: "Priority", Width: 9},
			{Title: "Assignee", Width: 16},
			{Title: "Project", Width: 14},
			{Title: "Tags", Width: 18},
			{Title: "Due", Width: 10},
		},
		row: func(t *domain.Task) Row {
			return Row{
				ID: strconv.FormatInt(t.ID, 10),
				Cells: []string{
					strconv.FormatInt(t.ID, 10),
					t.Title,
					display.GetStatusIcon(t.Status) + " " + string(t.Status),
					display.GetPriorityIcon(t.Priority) + " " + string(t.Priority),
					orDash(t.AssigneeName),
					orDash(t.Project),
					display.JoinList(t.Tags),
					display.FormatDueDate(t.DueDate, opts.now()),
				},
				Record: t,
			}
		},
		load: func(ctx context.Context, store *repository.Store) ([]*domain.Task, error) {
			return store.Tasks.List(ctx)
		},
	}, store, opts)
}
