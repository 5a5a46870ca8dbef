package listquery

import (
	"sort"
	"strings"
)

// Matches reports whether any string field of rec contains term,
// ignoring case. An empty term matches every record.
func Matches[T any](schema Schema[T], rec T, term string) bool {
	if term == "" {
		return true
	}

	needle := strings.ToLower(term)
	found := false
	schema.Each(rec, func(_ string, v Value) bool {
		if v.kind == KindString && strings.Contains(strings.ToLower(v.str), needle) {
			found = true
		}
		return !found
	})
	return found
}

// set of accepted values for one filter category
type ValueSet map[string]struct{}

func NewValueSet(values ...string) ValueSet {
	set := make(ValueSet, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	return set
}

func (s ValueSet) Has(value string) bool {
	_, ok := s[value]
	return ok
}

// Values returns the members in sorted order.
func (s ValueSet) Values() []string {
	values := make([]string, 0, len(s))
	for v := range s {
		values = append(values, v)
	}
	sort.Strings(values)
	return values
}

// Filters maps a category name to its accepted values.
// A nil or empty set imposes no constraint.
type Filters map[string]ValueSet

func (f Filters) clone() Filters {
	out := make(Filters, len(f))
	for category, set := range f {
		if len(set) == 0 {
			continue
		}
		copied := make(ValueSet, len(set))
		for v := range set {
			copied[v] = struct{}{}
		}
		out[category] = copied
	}
	return out
}

// PassesFilters reports whether rec satisfies every constrained category.
// project returns the record's value for a category name.
func PassesFilters[T any](project func(rec T, category string) Value, rec T, filters Filters) bool {
	for category, accepted := range filters {
		if len(accepted) == 0 {
			continue
		}
		if !accepts(project(rec, category), accepted) {
			return false
		}
	}
	return true
}

func accepts(v Value, accepted ValueSet) bool {
	if v.kind == KindStrings {
		for _, item := range v.list {
			if accepted.Has(item) {
				return true
			}
		}
		return false
	}

	key, ok := v.Key()
	if !ok {
		return false
	}
	return accepted.Has(key)
}
