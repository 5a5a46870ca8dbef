package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table.SetHeight(max(msg.Height-10, 5))
		return m, nil

	case datasetLoadedMsg:
		m.loading = false
		m.err = nil
		m.data = msg.data
		m.derive()
		return m, nil

	case errMsg:
		m.loading = false
		m.err = msg.err
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, key.NewBinding(key.WithKeys("ctrl+c"))) {
			return m, tea.Quit
		}

		switch m.mode {
		case searchingMode:
			return m.updateSearch(msg)
		case filteringMode:
			return m.updateFilter(msg)
		case detailMode:
			return m.updateDetail(msg)
		default:
			return m.updateNormal(msg)
		}
	}

	return m, nil
}

func (m Model) updateNormal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp
		m.help.ShowAll = m.showHelp
		return m, nil

	case key.Matches(msg, m.keys.Search):
		m.mode = searchingMode
		m.searchInput.SetValue(m.state.SearchTerm())
		m.searchInput.CursorEnd()
		return m, m.searchInput.Focus()

	case key.Matches(msg, m.keys.Filter):
		if len(m.filter.categories) == 0 {
			return m, nil
		}
		m.mode = filteringMode
		m.filter.valueIdx = 0
		return m, nil

	case key.Matches(msg, m.keys.Sort):
		if field := m.nextSortField(); field != "" {
			m.state.ChangeSortField(field)
			m.derive()
		}
		return m, nil

	case key.Matches(msg, m.keys.Reverse):
		if field := m.state.SortField(); field != "" {
			m.state.ChangeSortField(field)
			m.derive()
		}
		return m, nil

	case key.Matches(msg, m.keys.ClearFilters):
		m.state.ClearFilters()
		m.searchInput.SetValue("")
		m.derive()
		return m, nil

	case key.Matches(msg, m.keys.Refresh):
		m.loading = true
		return m, loadCmd(m.ctx, m.screen)

	case key.Matches(msg, m.keys.Enter):
		if _, ok := m.selectedRow(); ok {
			m.mode = detailMode
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// updateSearch re-derives on every keystroke. esc clears the term.
func (m Model) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		m.mode = normalMode
		m.searchInput.Blur()
		return m, nil
	case tea.KeyEsc:
		m.mode = normalMode
		m.searchInput.Blur()
		m.searchInput.SetValue("")
		m.state.SetSearchTerm("")
		m.derive()
		return m, nil
	}

	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	if m.searchInput.Value() != m.state.SearchTerm() {
		m.state.SetSearchTerm(m.searchInput.Value())
		m.derive()
	}
	return m, cmd
}

func (m Model) updateFilter(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	values := m.filterValues()

	switch {
	case key.Matches(msg, m.keys.Back), key.Matches(msg, m.keys.Filter), key.Matches(msg, m.keys.Quit):
		m.mode = normalMode

	case key.Matches(msg, m.keys.Left):
		n := len(m.filter.categories)
		m.filter.catIdx = (m.filter.catIdx + n - 1) % n
		m.filter.valueIdx = 0

	case key.Matches(msg, m.keys.Right):
		m.filter.catIdx = (m.filter.catIdx + 1) % len(m.filter.categories)
		m.filter.valueIdx = 0

	case key.Matches(msg, m.keys.Up):
		if m.filter.valueIdx > 0 {
			m.filter.valueIdx--
		}

	case key.Matches(msg, m.keys.Down):
		if m.filter.valueIdx < len(values)-1 {
			m.filter.valueIdx++
		}

	case key.Matches(msg, m.keys.Toggle), key.Matches(msg, m.keys.Enter):
		if m.filter.valueIdx < len(values) {
			m.state.ToggleFilterValue(m.filter.category(), values[m.filter.valueIdx])
			m.derive()
		}

	case key.Matches(msg, m.keys.ClearFilters):
		m.state.ClearFilters()
		m.searchInput.SetValue("")
		m.derive()
	}

	return m, nil
}

func (m Model) updateDetail(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Back), key.Matches(msg, m.keys.Enter):
		m.mode = normalMode
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Up):
		m.table.MoveUp(1)
	case key.Matches(msg, m.keys.Down):
		m.table.MoveDown(1)
	}
	return m, nil
}
