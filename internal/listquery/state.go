package listquery

import "sort"

// State is the query description held by a list view. Its fields change
// only through SetSearchTerm, ToggleFilterValue, ChangeSortField and
// ClearFilters. Copies of a State never share mutations.
type State struct {
	searchTerm string
	filters    Filters
	sortField  string
	direction  Direction
}

func NewState(sortField string, dir Direction) State {
	if dir != Descending {
		dir = Ascending
	}
	return State{
		filters:   Filters{},
		sortField: sortField,
		direction: dir,
	}
}

func (s State) SearchTerm() string {
	return s.searchTerm
}

func (s State) SortField() string {
	return s.sortField
}

func (s State) SortDirection() Direction {
	return s.direction
}

// Filters returns a copy of the active filters.
func (s State) Filters() Filters {
	return s.filters.clone()
}

// FilterValues returns the accepted values of category in sorted order.
func (s State) FilterValues(category string) []string {
	return s.filters[category].Values()
}

func (s State) HasFilterValue(category, value string) bool {
	return s.filters[category].Has(value)
}

// ActiveCategories returns the constrained categories in sorted order.
func (s State) ActiveCategories() []string {
	categories := make([]string, 0, len(s.filters))
	for category, set := range s.filters {
		if len(set) > 0 {
			categories = append(categories, category)
		}
	}
	sort.Strings(categories)
	return categories
}

// IsFiltered reports whether a search term or any category filter is set.
func (s State) IsFiltered() bool {
	return s.searchTerm != "" || len(s.ActiveCategories()) > 0
}

func (s *State) SetSearchTerm(term string) {
	s.searchTerm = term
}

// ToggleFilterValue adds value to category, or removes it when present.
// A category left with no values is dropped.
func (s *State) ToggleFilterValue(category, value string) {
	next := s.filters.clone()

	set := next[category]
	if set.Has(value) {
		delete(set, value)
		if len(set) == 0 {
			delete(next, category)
		}
	} else {
		if set == nil {
			set = ValueSet{}
			next[category] = set
		}
		set[value] = struct{}{}
	}

	s.filters = next
}

// ChangeSortField flips the direction when field is already the sort
// field, otherwise sorts by field ascending.
func (s *State) ChangeSortField(field string) {
	if field == s.sortField {
		s.direction = s.direction.Flip()
		return
	}
	s.sortField = field
	s.direction = Ascending
}

// ClearFilters drops the search term and all filters. Sort is kept.
func (s *State) ClearFilters() {
	s.searchTerm = ""
	s.filters = Filters{}
}

// Snapshot is the serialisable form of a State.
type Snapshot struct {
	SearchTerm    string              `json:"search_term,omitempty" yaml:"search_term,omitempty"`
	Filters       map[string][]string `json:"filters,omitempty" yaml:"filters,omitempty"`
	SortField     string              `json:"sort_field,omitempty" yaml:"sort_field,omitempty"`
	SortDirection string              `json:"sort_direction,omitempty" yaml:"sort_direction,omitempty"`
}

func (s State) Snapshot() Snapshot {
	snap := Snapshot{
		SearchTerm:    s.searchTerm,
		SortField:     s.sortField,
		SortDirection: s.direction.Short(),
	}
	for _, category := range s.ActiveCategories() {
		if snap.Filters == nil {
			snap.Filters = make(map[string][]string)
		}
		snap.Filters[category] = s.filters[category].Values()
	}
	return snap
}

// RestoreState rebuilds a State from a snapshot. Empty categories are
// dropped and an unreadable direction falls back to ascending.
func RestoreState(snap Snapshot) State {
	dir, err := ParseDirection(snap.SortDirection)
	if err != nil {
		dir = Ascending
	}

	state := NewState(snap.SortField, dir)
	state.searchTerm = snap.SearchTerm
	for category, values := range snap.Filters {
		if len(values) == 0 {
			continue
		}
		state.filters[category] = NewValueSet(values...)
	}
	return state
}
