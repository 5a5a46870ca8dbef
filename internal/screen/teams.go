package screen

import (
	"context"
	"strconv"
	"time"

	"hr-dashboard/internal/domain"
	"hr-dashboard/internal/listquery"
	"hr-dashboard/internal/repository"
)

func teamsPage(store *repository.Store, opts Options) *page[*domain.Team] {
	return newPage(pageSpec[*domain.Team]{
		name:  "teams",
		title: "Teams",
		fields: []listquery.Field[*domain.Team]{
			listquery.TextField("name", func(t *domain.Team) string { return t.Name }),
			listquery.TextField("description", func(t *domain.Team) string { return t.Description }),
			listquery.TextField("lead", func(t *domain.Team) string { return t.LeadName }),
			listquery.NumberField("size", func(t *domain.Team) float64 { return float64(t.Size()) }),
			listquery.TimeField("created", func(t *domain.Team) *time.Time { return timeOrNil(t.CreatedAt) }),
		},
		categories: []string{"lead", "size"},
		computed: map[string]listquery.Projection[*domain.Team]{
			"size": func(t *domain.Team) listquery.Value {
				return listquery.String(t.SizeBucket())
			},
		},
		sortFields: []string{"name", "lead", "size", "created"},
		sort:       "name",
		dir:        listquery.Ascending,
		columns: []Column{
			{Title: "Name", Width: 20},
			{Title: "Lead", Width: 18},
			{Title: "Size", Width: 5},
			{Title: "Description", Width: 36},
		},
		row: func(t *domain.Team) Row {
			return Row{
				ID: strconv.FormatInt(t.ID, 10),
				Cells: []string{
					t.Name,
					orDash(t.LeadName),
					strconv.Itoa(t.Size()),
					orDash(t.Description),
				},
				Record: t,
			}
		},
		load: func(ctx context.Context, store *repository.Store) ([]*domain.Team, error) {
			return store.Teams.List(ctx)
		},
	}, store, opts)
}
