package screen

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"hr-dashboard/internal/activity"
	"hr-dashboard/internal/display"
	"hr-dashboard/internal/domain"
	"hr-dashboard/internal/listquery"
	"hr-dashboard/internal/repository"
)

// Directory builds an activity directory from every employee.
func Directory(ctx context.Context, store *repository.Store) (activity.MapDirectory, error) {
	employees, err := store.Employees.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load directory: %w", err)
	}

	dir := make(activity.MapDirectory, len(employees))
	for _, e := range employees {
		dir[e.ID] = activity.Person{Name: e.Name, Role: e.Role}
	}
	return dir, nil
}

// notifications are searched by their rendered message
func notificationsPage(store *repository.Store, opts Options) *page[*domain.Notification] {
	return newPage(pageSpec[*domain.Notification]{
		name:  "notifications",
		title: "Notifications",
		fields: []listquery.Field[*domain.Notification]{
			listquery.TextField("message", func(n *domain.Notification) string { return n.Message }),
			listquery.TextField("type", func(n *domain.Notification) string { return string(n.Type) }),
			listquery.BoolField("read", func(n *domain.Notification) bool { return n.Read }),
			listquery.TimeField("created", func(n *domain.Notification) *time.Time { return timeOrNil(n.CreatedAt) }),
		},
		categories: []string{"type", "read"},
		computed: map[string]listquery.Projection[*domain.Notification]{
			"read": func(n *domain.Notification) listquery.Value {
				if n.Read {
					return listquery.String("read")
				}
				return listquery.String("unread")
			},
		},
		sortFields: []string{"created", "type", "message"},
		sort:       "created",
		dir:        listquery.Descending,
		columns: []Column{
			{Title: "", Width: 1},
			{Title: "When", Width: 10},
			{Title: "Message", Width: 60},
		},
		row: func(n *domain.Notification) Row {
			marker := "•"
			if n.Read {
				marker = " "
			}
			return Row{
				ID: strconv.FormatInt(n.ID, 10),
				Cells: []string{
					marker,
					display.RelativeTime(n.CreatedAt, opts.now()),
					n.Message,
				},
				Record: n,
			}
		},
		load: func(ctx context.Context, store *repository.Store) ([]*domain.Notification, error) {
			dir, err := Directory(ctx, store)
			if err != nil {
				return nil, err
			}

			list, err := store.Notifications.List(ctx)
			if err != nil {
				return nil, err
			}

			for _, n := range list {
				n.Message = activity.NewFormatter(dir, n.RecipientID).Format(n.Activity)
			}
			return list, nil
		},
	}, store, opts)
}
