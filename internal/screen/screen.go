// Package screen configures the dashboard's list pages: which fields each
// record type exposes, how it is filtered and sorted, and how rows render.
package screen

import (
	"context"
	"time"

	"golang.org/x/text/language"

	"hr-dashboard/internal/listquery"
	"hr-dashboard/internal/query"
	"hr-dashboard/internal/repository"
)

type Column struct {
	Title string
	Width int
}

// Row is one rendered record. Record holds the domain value the row was
// built from.
type Row struct {
	ID     string   `json:"id"`
	Cells  []string `json:"cells"`
	Record any      `json:"record"`
}

type FieldInfo struct {
	Name       string
	Kind       listquery.Kind
	Searchable bool
	Category   bool
	Sortable   bool
}

// Screen is one list page, independent of its record type.
type Screen interface {
	Name() string
	Title() string
	Columns() []Column
	Fields() []FieldInfo
	Categories() []string
	SortFields() []string
	Vocabulary() query.Vocabulary
	NewState() listquery.State
	Load(ctx context.Context) (Dataset, error)
}

// Dataset is a loaded snapshot of a screen's records.
type Dataset interface {
	Len() int
	Derive(state listquery.State) []Row
	CategoryValues(category string) []string
}

type Options struct {
	Locale language.Tag
	Now    func() time.Time
}

func (o Options) now() time.Time {
	if o.Now != nil {
		return o.Now()
	}
	return time.Now()
}

type pageSpec[T any] struct {
	name       string
	title      string
	fields     []listquery.Field[T]
	categories []string
	computed   map[string]listquery.Projection[T]
	sortFields []string
	sort       string
	dir        listquery.Direction
	mention    string
	aliases    map[string]string
	columns    []Column
	row        func(T) Row
	load       func(ctx context.Context, store *repository.Store) ([]T, error)
}

type page[T any] struct {
	spec   pageSpec[T]
	schema *listquery.FieldSet[T]
	engine *listquery.Engine[T]
	store  *repository.Store
}

func newPage[T any](spec pageSpec[T], store *repository.Store, opts Options) *page[T] {
	schema := listquery.NewFieldSet(spec.fields...)
	return &page[T]{
		spec:   spec,
		schema: schema,
		engine: listquery.New(listquery.Config[T]{
			Schema:           schema,
			Categories:       spec.computed,
			DefaultSort:      spec.sort,
			DefaultDirection: spec.dir,
			Locale:           opts.Locale,
		}),
		store: store,
	}
}

func (p *page[T]) Name() string { return p.spec.name }

func (p *page[T]) Title() string { return p.spec.title }

func (p *page[T]) Columns() []Column {
	return append([]Column(nil), p.spec.columns...)
}

func (p *page[T]) Categories() []string {
	return append([]string(nil), p.spec.categories...)
}

func (p *page[T]) SortFields() []string {
	return append([]string(nil), p.spec.sortFields...)
}

func (p *page[T]) NewState() listquery.State {
	return p.engine.NewState()
}

func (p *page[T]) Vocabulary() query.Vocabulary {
	return query.Vocabulary{
		Categories:   p.Categories(),
		SortFields:   p.SortFields(),
		MentionField: p.spec.mention,
		Aliases:      p.spec.aliases,
	}
}

func (p *page[T]) Fields() []FieldInfo {
	isCategory := toSet(p.spec.categories)
	isSortable := toSet(p.spec.sortFields)

	var fields []FieldInfo
	seen := make(map[string]bool)
	for _, name := range p.schema.Names() {
		kind, _ := p.schema.Kind(name)
		fields = append(fields, FieldInfo{
			Name:       name,
			Kind:       kind,
			Searchable: kind == listquery.KindString,
			Category:   isCategory[name],
			Sortable:   isSortable[name],
		})
		seen[name] = true
	}

	// computed categories that shadow no field
	for _, name := range p.engine.ComputedCategories() {
		if !seen[name] {
			fields = append(fields, FieldInfo{Name: name, Kind: listquery.KindString, Category: true})
		}
	}
	return fields
}

func (p *page[T]) Load(ctx context.Context) (Dataset, error) {
	records, err := p.spec.load(ctx, p.store)
	if err != nil {
		return nil, err
	}
	return &dataset[T]{page: p, records: records}, nil
}

// over wraps records already in memory
func (p *page[T]) over(records []T) Dataset {
	return &dataset[T]{page: p, records: records}
}

type dataset[T any] struct {
	page    *page[T]
	records []T
}

func (d *dataset[T]) Len() int { return len(d.records) }

func (d *dataset[T]) Derive(state listquery.State) []Row {
	derived := d.page.engine.Derive(d.records, state)

	rows := make([]Row, len(derived))
	for i, rec := range derived {
		rows[i] = d.page.spec.row(rec)
	}
	return rows
}

func (d *dataset[T]) CategoryValues(category string) []string {
	return d.page.engine.CategoryValues(d.records, category)
}

func toSet(items []string) map[string]bool {
	set := make(map[string]bool, len(items))
	for _, item := range items {
		set[item] = true
	}
	return set
}

func timeOrNil(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}
