// Package tui is the terminal browser for one list screen.
package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"hr-dashboard/internal/listquery"
	"hr-dashboard/internal/screen"
	"hr-dashboard/internal/theme"
)

type uiMode int

const (
	normalMode uiMode = iota
	searchingMode
	filteringMode
	detailMode
)

// filterPanel tracks the cursor in the category/value picker.
type filterPanel struct {
	categories []string
	catIdx     int
	valueIdx   int
}

func (p filterPanel) category() string {
	if len(p.categories) == 0 {
		return ""
	}
	return p.categories[p.catIdx]
}

type Model struct {
	ctx    context.Context
	screen screen.Screen
	data   screen.Dataset
	state  listquery.State
	rows   []screen.Row

	table       table.Model
	searchInput textinput.Model
	help        help.Model
	keys        keyMap
	theme       *theme.Theme
	styles      *theme.Styles

	mode     uiMode
	filter   filterPanel
	width    int
	height   int
	loading  bool
	showHelp bool
	err      error
}

// NewModel browses s starting from state.
func NewModel(ctx context.Context, s screen.Screen, state listquery.State, themeObj *theme.Theme) Model {
	if themeObj == nil {
		themeObj = theme.DefaultTheme()
	}

	cols := s.Columns()
	columns := make([]table.Column, len(cols))
	for i, c := range cols {
		columns[i] = table.Column{Title: c.Title, Width: c.Width}
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows([]table.Row{}),
		table.WithFocused(true),
		table.WithHeight(20),
	)

	ts := table.DefaultStyles()
	ts.Header = ts.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color(themeObj.BorderColor)).
		BorderBottom(true).
		Bold(true)
	ts.Selected = ts.Selected.
		Foreground(lipgloss.Color(themeObj.SelectedFg)).
		Background(lipgloss.Color(themeObj.SelectedBg)).
		Bold(true)
	t.SetStyles(ts)

	si := textinput.New()
	si.Placeholder = "Search " + s.Title() + "..."
	si.CharLimit = 100
	si.Width = 50
	si.SetValue(state.SearchTerm())

	return Model{
		ctx:         ctx,
		screen:      s,
		state:       state,
		table:       t,
		searchInput: si,
		help:        help.New(),
		keys:        defaultKeyMap(),
		theme:       themeObj,
		styles:      theme.NewStyles(themeObj),
		filter:      filterPanel{categories: s.Categories()},
		loading:     true,
	}
}

func (m Model) Init() tea.Cmd {
	return loadCmd(m.ctx, m.screen)
}

// State returns the query state the browser currently shows.
func (m Model) State() listquery.State {
	return m.state
}

// derive recomputes the visible rows from the loaded snapshot
func (m *Model) derive() {
	if m.data == nil {
		m.rows = nil
		m.table.SetRows([]table.Row{})
		return
	}

	m.rows = m.data.Derive(m.state)
	rows := make([]table.Row, len(m.rows))
	for i, r := range m.rows {
		rows[i] = table.Row(r.Cells)
	}
	m.table.SetRows(rows)

	if m.table.Cursor() >= len(rows) {
		m.table.SetCursor(max(len(rows)-1, 0))
	}
}

func (m Model) selectedRow() (screen.Row, bool) {
	i := m.table.Cursor()
	if i < 0 || i >= len(m.rows) {
		return screen.Row{}, false
	}
	return m.rows[i], true
}

// filterValues lists the values the current category can be filtered by:
// those present in the data plus any already active.
func (m Model) filterValues() []string {
	category := m.filter.category()
	if category == "" || m.data == nil {
		return nil
	}

	values := m.data.CategoryValues(category)
	seen := make(map[string]bool, len(values))
	for _, v := range values {
		seen[v] = true
	}
	for _, v := range m.state.FilterValues(category) {
		if !seen[v] {
			values = append(values, v)
		}
	}
	return values
}

// nextSortField is the sort field after the current one, wrapping.
func (m Model) nextSortField() string {
	fields := m.screen.SortFields()
	if len(fields) == 0 {
		return ""
	}
	for i, f := range fields {
		if f == m.state.SortField() {
			return fields[(i+1)%len(fields)]
		}
	}
	return fields[0]
}
