package domain

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"hr-dashboard/internal/listquery"
)

func TestNewSavedView(t *testing.T) {
	state := listquery.NewState("name", listquery.Ascending)
	state.ToggleFilterValue("role", "employee")

	view := NewSavedView("employees", "Staff", state)

	assert.Equal(t, "employees", view.Screen)
	assert.Equal(t, "Staff", view.Name)
	assert.False(t, view.IsDefault)
	assert.True(t, view.CreatedAt.Before(time.Now().Add(time.Second)))
	assert.Equal(t, []string{"employee"}, view.QueryState().FilterValues("role"))
}

func TestSavedViewValidate(t *testing.T) {
	state := listquery.NewState("", listquery.Ascending)

	assert.NoError(t, NewSavedView("tasks", "Mine", state).Validate())
	assert.Error(t, NewSavedView("", "Mine", state).Validate())
	assert.Error(t, NewSavedView("tasks", "", state).Validate())
	assert.Error(t, NewSavedView("tasks", strings.Repeat("a", 101), state).Validate())

	long := NewSavedView("tasks", "Mine", state)
	long.Description = strings.Repeat("a", 501)
	assert.Error(t, long.Validate())

	badDir := NewSavedView("tasks", "Mine", state)
	badDir.State.SortDirection = "sideways"
	assert.Error(t, badDir.Validate())
}

func TestSavedViewFilterSummary(t *testing.T) {
	empty := NewSavedView("tasks", "All", listquery.NewState("", listquery.Ascending))
	assert.Equal(t, "no filters", empty.GetFilterSummary())

	state := listquery.NewState("due", listquery.Ascending)
	state.SetSearchTerm("deploy")
	state.ToggleFilterValue("status", "pending")
	state.ToggleFilterValue("priority", "high")
	state.ToggleFilterValue("priority", "urgent")

	view := NewSavedView("tasks", "Hot", state)
	assert.Equal(t, "search: deploy, priority:high|urgent, status:pending, sort due asc", view.GetFilterSummary())
}
