package query

import (
	"fmt"
	"sort"
	"strings"

	"hr-dashboard/internal/fuzzy"
	"hr-dashboard/internal/listquery"
)

// Vocabulary names what a screen can filter and sort on.
type Vocabulary struct {
	Categories []string
	SortFields []string

	// MentionField is the category an @name filter applies to. Empty
	// means the screen does not support mentions.
	MentionField string

	// Aliases maps alternative spellings to category or sort field names.
	Aliases map[string]string
}

// UnknownFieldError reports a field the vocabulary does not know.
type UnknownFieldError struct {
	Field       string
	Kind        string
	Suggestions []string
}

func (e *UnknownFieldError) Error() string {
	msg := fmt.Sprintf("unknown %s %q", e.Kind, e.Field)
	if len(e.Suggestions) > 0 {
		msg += fmt.Sprintf(" (did you mean %s?)", strings.Join(e.Suggestions, ", "))
	}
	return msg
}

func (v Vocabulary) resolve(name string, known []string, kind string) (string, error) {
	if alias, ok := v.Aliases[name]; ok {
		name = alias
	}
	for _, k := range known {
		if k == name {
			return k, nil
		}
	}
	return "", &UnknownFieldError{
		Field:       name,
		Kind:        kind,
		Suggestions: fuzzy.Suggest(name, known, 3),
	}
}

// Apply folds q into state through its actions. Filter values already
// selected stay selected, and the sort ends up on the requested field and
// direction. Nothing is changed when q refers to an unknown field.
func Apply(state *listquery.State, q *ParsedQuery, vocab Vocabulary) error {
	type selection struct{ category, value string }

	selections := make([]selection, 0, len(q.Filters))
	for _, f := range q.Filters {
		field := f.Field
		if field == MentionField {
			if vocab.MentionField == "" {
				return fmt.Errorf("@%s: mentions are not supported here", f.Value)
			}
			field = vocab.MentionField
		}

		category, err := vocab.resolve(field, vocab.Categories, "filter")
		if err != nil {
			return err
		}
		selections = append(selections, selection{category, f.Value})
	}

	var sortField string
	if q.Sort != nil {
		field, err := vocab.resolve(q.Sort.Field, vocab.SortFields, "sort field")
		if err != nil {
			return err
		}
		sortField = field
	}

	if term := q.SearchTerm(); term != "" {
		state.SetSearchTerm(term)
	}

	for _, s := range selections {
		if !state.HasFilterValue(s.category, s.value) {
			state.ToggleFilterValue(s.category, s.value)
		}
	}

	if sortField != "" {
		if state.SortField() != sortField {
			state.ChangeSortField(sortField)
		}
		if state.SortDirection() != q.Sort.Direction {
			state.ChangeSortField(sortField)
		}
	}

	return nil
}

// Parse parses input and applies it to a fresh copy of base.
func Parse(input string, base listquery.State, vocab Vocabulary) (listquery.State, error) {
	q, err := ParseQuery(input)
	if err != nil {
		return base, err
	}

	state := base
	if err := Apply(&state, q, vocab); err != nil {
		return base, err
	}
	return state, nil
}

// Format renders state as a query string that Parse reads back into an
// equivalent state.
func Format(state listquery.State) string {
	var parts []string

	for _, category := range state.ActiveCategories() {
		for _, v := range state.FilterValues(category) {
			parts = append(parts, Filter{Field: category, Value: v}.String())
		}
	}

	if field := state.SortField(); field != "" {
		prefix := ""
		if state.SortDirection() == listquery.Descending {
			prefix = "-"
		}
		parts = append(parts, "sort:"+prefix+field)
	}

	if term := state.SearchTerm(); term != "" {
		parts = append(parts, quote(term))
	}

	return strings.Join(parts, " ")
}

// Fields returns the sorted union of categories, sort fields and aliases.
func (v Vocabulary) Fields() []string {
	seen := make(map[string]struct{})
	for _, list := range [][]string{v.Categories, v.SortFields} {
		for _, f := range list {
			seen[f] = struct{}{}
		}
	}
	for alias := range v.Aliases {
		seen[alias] = struct{}{}
	}

	fields := make([]string, 0, len(seen))
	for f := range seen {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	return fields
}
