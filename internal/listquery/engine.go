// Package listquery derives ordered, filtered views of in-memory record
// lists from a search term, per-category filters and a sort field.
//
// Derivation is pure: inputs are never mutated and no state is kept
// between calls, so an Engine may be shared by concurrent callers.
package listquery

import (
	"slices"
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Projection computes the value a record presents for a filter category.
type Projection[T any] func(T) Value

type Config[T any] struct {
	Schema Schema[T]

	// Categories maps computed filter categories to their projection.
	// Categories not listed here read the schema field of the same name.
	Categories map[string]Projection[T]

	DefaultSort      string
	DefaultDirection Direction

	// Locale drives string collation. The zero tag uses the root collation.
	Locale language.Tag
}

type Engine[T any] struct {
	schema      Schema[T]
	categories  map[string]Projection[T]
	defaultSort string
	defaultDir  Direction
	locale      language.Tag
}

func New[T any](cfg Config[T]) *Engine[T] {
	if cfg.Schema == nil {
		panic("listquery: nil schema")
	}

	categories := make(map[string]Projection[T], len(cfg.Categories))
	for name, project := range cfg.Categories {
		if project != nil {
			categories[name] = project
		}
	}

	return &Engine[T]{
		schema:      cfg.Schema,
		categories:  categories,
		defaultSort: cfg.DefaultSort,
		defaultDir:  cfg.DefaultDirection,
		locale:      cfg.Locale,
	}
}

// NewState returns a State with the configured default sort.
func (e *Engine[T]) NewState() State {
	return NewState(e.defaultSort, e.defaultDir)
}

func (e *Engine[T]) Matches(rec T, term string) bool {
	return Matches(e.schema, rec, term)
}

func (e *Engine[T]) PassesFilters(rec T, filters Filters) bool {
	return PassesFilters(e.Project, rec, filters)
}

// Project returns the value rec presents for category.
func (e *Engine[T]) Project(rec T, category string) Value {
	if project, ok := e.categories[category]; ok {
		return project(rec)
	}
	return e.schema.Lookup(rec, category)
}

// Compare orders a and b by field in the given direction.
func (e *Engine[T]) Compare(a, b T, field string, dir Direction) int {
	return e.compare(e.collator(), a, b, field, dir)
}

// Derive returns the records that match the state's search term and
// filters, stably sorted by its sort field. records is not modified.
func (e *Engine[T]) Derive(records []T, state State) []T {
	out := make([]T, 0, len(records))
	for _, rec := range records {
		if !e.Matches(rec, state.searchTerm) {
			continue
		}
		if !e.PassesFilters(rec, state.filters) {
			continue
		}
		out = append(out, rec)
	}

	if state.sortField == "" || len(out) < 2 {
		return out
	}

	col := e.collator()
	slices.SortStableFunc(out, func(a, b T) int {
		return e.compare(col, a, b, state.sortField, state.direction)
	})
	return out
}

// CategoryValues lists the distinct values records present for category,
// in sorted order. String lists contribute each of their items.
func (e *Engine[T]) CategoryValues(records []T, category string) []string {
	seen := make(map[string]struct{})
	for _, rec := range records {
		v := e.Project(rec, category)
		if v.kind == KindStrings {
			for _, item := range v.list {
				seen[item] = struct{}{}
			}
			continue
		}
		if key, ok := v.Key(); ok && key != "" {
			seen[key] = struct{}{}
		}
	}

	values := make([]string, 0, len(seen))
	for v := range seen {
		values = append(values, v)
	}

	col := e.collator()
	sort.SliceStable(values, func(i, j int) bool {
		return col.CompareString(values[i], values[j]) < 0
	})
	return values
}

// ComputedCategories returns the names of the configured projections.
func (e *Engine[T]) ComputedCategories() []string {
	names := make([]string, 0, len(e.categories))
	for name := range e.categories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// collators are not safe for concurrent use; one is built per call
func (e *Engine[T]) collator() *collate.Collator {
	return collate.New(e.locale)
}

func (e *Engine[T]) compare(col *collate.Collator, a, b T, field string, dir Direction) int {
	c := CompareValues(e.schema.Lookup(a, field), e.schema.Lookup(b, field), col.CompareString)
	return orient(c, dir)
}
