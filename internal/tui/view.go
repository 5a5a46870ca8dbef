package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"hr-dashboard/internal/listquery"
	"hr-dashboard/internal/query"
)

func (m Model) View() string {
	if m.loading {
		return m.styles.TUITitle.Render("Loading...") + "\n"
	}

	var b strings.Builder

	b.WriteString(m.styles.TUITitle.Render("  HR Dashboard · " + m.screen.Title() + "  "))
	b.WriteString("\n")

	if m.err != nil {
		b.WriteString(m.styles.Error.Render("✗ " + m.err.Error()))
		b.WriteString("\n\n")
		b.WriteString(m.styles.TUIHelp.Render("R: retry • q: quit"))
		return b.String()
	}

	b.WriteString(m.renderChips())
	b.WriteString("\n")

	switch m.mode {
	case searchingMode:
		b.WriteString(m.styles.Prompt.Render("/ ") + m.searchInput.View())
		b.WriteString("\n")
	case filteringMode:
		b.WriteString(m.renderFilterPanel())
		b.WriteString("\n")
	case detailMode:
		b.WriteString(m.renderDetail())
		b.WriteString("\n")
		b.WriteString(m.styles.TUIHelp.Render("↑/↓: previous/next • esc: back • q: quit"))
		return b.String()
	}

	if len(m.rows) == 0 {
		b.WriteString("\n")
		b.WriteString(m.styles.Muted.Render("  No matching records."))
		b.WriteString("\n\n")
	} else {
		b.WriteString(m.table.View())
		b.WriteString("\n")
	}

	b.WriteString(m.renderStatusBar())
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

// renderChips shows the active search term and filter values.
func (m Model) renderChips() string {
	var chips []string
	if term := m.state.SearchTerm(); term != "" {
		chips = append(chips, m.styles.Chip.Render(fmt.Sprintf("search: %q", term)))
	}
	for _, category := range m.state.ActiveCategories() {
		values := m.state.FilterValues(category)
		chips = append(chips, m.styles.Chip.Render(category+": "+strings.Join(values, " | ")))
	}
	if len(chips) == 0 {
		return m.styles.Muted.Render("no filters")
	}
	return strings.Join(chips, " ")
}

func (m Model) renderStatusBar() string {
	total := 0
	if m.data != nil {
		total = m.data.Len()
	}

	parts := []string{fmt.Sprintf("%d of %d", len(m.rows), total)}
	if field := m.state.SortField(); field != "" {
		arrow := "↑"
		if m.state.SortDirection() == listquery.Descending {
			arrow = "↓"
		}
		parts = append(parts, "sort: "+field+" "+arrow)
	}
	if q := query.Format(m.state); q != "" {
		parts = append(parts, "query: "+q)
	}
	return m.styles.TUIHelp.Render(strings.Join(parts, " • "))
}

func (m Model) renderFilterPanel() string {
	var b strings.Builder

	tabs := make([]string, len(m.filter.categories))
	for i, c := range m.filter.categories {
		label := c
		if n := len(m.state.FilterValues(c)); n > 0 {
			label = fmt.Sprintf("%s (%d)", c, n)
		}
		if i == m.filter.catIdx {
			tabs[i] = m.styles.Selected.Render(" " + label + " ")
		} else {
			tabs[i] = m.styles.Muted.Render(" " + label + " ")
		}
	}
	b.WriteString(strings.Join(tabs, " "))
	b.WriteString("\n")

	category := m.filter.category()
	values := m.filterValues()
	if len(values) == 0 {
		b.WriteString(m.styles.Muted.Render("  (no values)"))
	}
	for i, v := range values {
		box := "[ ]"
		if m.state.HasFilterValue(category, v) {
			box = "[x]"
		}
		line := fmt.Sprintf("%s %s", box, v)
		if i == m.filter.valueIdx {
			line = m.styles.Selected.Render("▶ " + line)
		} else {
			line = "  " + line
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	help := "←/→: category • ↑/↓: value • space: toggle • c: clear • esc: close"
	return m.styles.Border.Render(b.String()) + "\n" + m.styles.TUIHelp.Render(help)
}

func (m Model) renderDetail() string {
	row, ok := m.selectedRow()
	if !ok {
		return ""
	}

	cols := m.screen.Columns()
	width := 0
	for _, c := range cols {
		width = max(width, lipgloss.Width(c.Title))
	}

	var b strings.Builder
	for i, cell := range row.Cells {
		if i >= len(cols) {
			break
		}
		label := m.styles.DetailKey.Render(fmt.Sprintf("%-*s", width, cols[i].Title))
		b.WriteString(label + "  " + m.styles.RecordStyle(row.Record).Render(cell) + "\n")
	}
	return m.styles.Border.Render(strings.TrimRight(b.String(), "\n"))
}
