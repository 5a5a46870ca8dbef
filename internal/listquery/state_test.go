package listquery

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToggleFilterValue(t *testing.T) {
	t.Run("toggle twice restores the original set", func(t *testing.T) {
		s := NewState("name", Ascending)
		s.ToggleFilterValue("role", "admin")

		s.ToggleFilterValue("role", "employee")
		s.ToggleFilterValue("role", "employee")

		assert.Equal(t, []string{"admin"}, s.FilterValues("role"))
	})

	t.Run("emptied category is dropped", func(t *testing.T) {
		s := NewState("name", Ascending)
		s.ToggleFilterValue("role", "employee")
		s.ToggleFilterValue("role", "employee")

		assert.Empty(t, s.FilterValues("role"))
		assert.Empty(t, s.ActiveCategories())
		_, present := s.Filters()["role"]
		assert.False(t, present)
	})

	t.Run("copies do not share mutations", func(t *testing.T) {
		s := NewState("name", Ascending)
		s.ToggleFilterValue("role", "admin")

		copied := s
		copied.ToggleFilterValue("role", "employee")
		copied.ToggleFilterValue("dept", "eng")

		assert.Equal(t, []string{"admin"}, s.FilterValues("role"))
		assert.Equal(t, []string{"admin", "employee"}, copied.FilterValues("role"))
		assert.Equal(t, []string{"role"}, s.ActiveCategories())
	})

	t.Run("zero state accepts toggles", func(t *testing.T) {
		var s State
		s.ToggleFilterValue("role", "admin")

		assert.True(t, s.HasFilterValue("role", "admin"))
	})
}

func TestChangeSortField(t *testing.T) {
	s := NewState("name", Ascending)

	s.ChangeSortField("name")
	assert.Equal(t, "name", s.SortField())
	assert.Equal(t, Descending, s.SortDirection())

	s.ChangeSortField("age")
	assert.Equal(t, "age", s.SortField())
	assert.Equal(t, Ascending, s.SortDirection())

	s.ChangeSortField("age")
	s.ChangeSortField("age")
	assert.Equal(t, Ascending, s.SortDirection())
}

func TestClearFilters_KeepsSort(t *testing.T) {
	s := NewState("name", Ascending)
	s.ChangeSortField("age")
	s.ChangeSortField("age")
	s.SetSearchTerm("bo")
	s.ToggleFilterValue("role", "employee")

	s.ClearFilters()

	assert.Equal(t, "age", s.SortField())
	assert.Equal(t, Descending, s.SortDirection())
	assert.Equal(t, "", s.SearchTerm())
	assert.Empty(t, s.Filters())
	assert.False(t, s.IsFiltered())
}

func TestSetSearchTerm_LeavesFiltersAndSort(t *testing.T) {
	s := NewState("age", Descending)
	s.ToggleFilterValue("role", "admin")

	s.SetSearchTerm("ali")

	assert.Equal(t, "ali", s.SearchTerm())
	assert.Equal(t, []string{"admin"}, s.FilterValues("role"))
	assert.Equal(t, "age", s.SortField())
	assert.Equal(t, Descending, s.SortDirection())
	assert.True(t, s.IsFiltered())
}

func TestFilters_ReturnsCopy(t *testing.T) {
	s := NewState("", Ascending)
	s.ToggleFilterValue("role", "admin")

	f := s.Filters()
	f["role"]["employee"] = struct{}{}
	delete(f, "role")

	assert.Equal(t, []string{"admin"}, s.FilterValues("role"))
}

func TestSnapshotRoundTrip(t *testing.T) {
	s := NewState("age", Ascending)
	s.ChangeSortField("age")
	s.SetSearchTerm("car")
	s.ToggleFilterValue("role", "employee")
	s.ToggleFilterValue("role", "admin")

	snap := s.Snapshot()
	assert.Equal(t, "desc", snap.SortDirection)
	assert.Equal(t, map[string][]string{"role": {"admin", "employee"}}, snap.Filters)

	restored := RestoreState(snap)
	assert.Equal(t, s.SearchTerm(), restored.SearchTerm())
	assert.Equal(t, s.SortField(), restored.SortField())
	assert.Equal(t, s.SortDirection(), restored.SortDirection())
	assert.Equal(t, s.FilterValues("role"), restored.FilterValues("role"))
}

func TestRestoreState_Normalises(t *testing.T) {
	restored := RestoreState(Snapshot{
		Filters: map[string][]string{
			"role":  {},
			"skill": nil,
			"dept":  {"eng"},
		},
		SortField:     "name",
		SortDirection: "sideways",
	})

	assert.Equal(t, []string{"dept"}, restored.ActiveCategories())
	assert.Equal(t, Ascending, restored.SortDirection())
}

func TestParseDirection(t *testing.T) {
	tests := []struct {
		in      string
		want    Direction
		wantErr bool
	}{
		{in: "", want: Ascending},
		{in: "asc", want: Ascending},
		{in: "Ascending", want: Ascending},
		{in: "DESC", want: Descending},
		{in: "descending", want: Descending},
		{in: "up", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseDirection(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
