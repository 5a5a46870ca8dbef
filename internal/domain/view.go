package domain

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"hr-dashboard/internal/listquery"
)

// SavedView is a named query state bound to one list screen.
type SavedView struct {
	ID          int64              `db:"id" json:"id"`
	Screen      string             `db:"screen" json:"screen"`
	Name        string             `db:"name" json:"name"`
	Description string             `db:"description" json:"description"`
	State       listquery.Snapshot `db:"state" json:"state"`
	IsDefault   bool               `db:"is_default" json:"is_default"`
	CreatedAt   time.Time          `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time          `db:"updated_at" json:"updated_at"`
}

func (v *SavedView) Validate() error {
	if strings.TrimSpace(v.Screen) == "" {
		return invalid("view screen cannot be empty")
	}

	if strings.TrimSpace(v.Name) == "" {
		return invalid("view name cannot be empty")
	}

	if len(v.Name) > 100 {
		return invalid("view name cannot exceed 100 characters")
	}

	if len(v.Description) > 500 {
		return invalid("view description cannot exceed 500 characters")
	}

	if _, err := listquery.ParseDirection(v.State.SortDirection); err != nil {
		return invalid(err.Error())
	}

	return nil
}

func NewSavedView(screen, name string, state listquery.State) *SavedView {
	now := time.Now()
	return &SavedView{
		Screen:    screen,
		Name:      name,
		State:     state.Snapshot(),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// QueryState restores the saved state.
func (v *SavedView) QueryState() listquery.State {
	return listquery.RestoreState(v.State)
}

func (v *SavedView) GetFilterSummary() string {
	var parts []string

	if v.State.SearchTerm != "" {
		parts = append(parts, "search: "+v.State.SearchTerm)
	}

	categories := make([]string, 0, len(v.State.Filters))
	for category := range v.State.Filters {
		categories = append(categories, category)
	}
	sort.Strings(categories)
	for _, category := range categories {
		parts = append(parts, category+":"+strings.Join(v.State.Filters[category], "|"))
	}

	if v.State.SortField != "" {
		dir := v.State.SortDirection
		if dir == "" {
			dir = "asc"
		}
		parts = append(parts, fmt.Sprintf("sort %s %s", v.State.SortField, dir))
	}

	if len(parts) == 0 {
		return "no filters"
	}

	return strings.Join(parts, ", ")
}

func (v *SavedView) GetDefaultIndicator() string {
	if v.IsDefault {
		return "★"
	}
	return ""
}
