package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"hr-dashboard/internal/config"
	"hr-dashboard/internal/display"
	"hr-dashboard/internal/domain"
	"hr-dashboard/internal/theme"
)

const (
	minSetupWidth  = 60
	minSetupHeight = 10
)

// SetupModel is the interactive theme picker. Moving the cursor restyles
// the whole picker so the preview is the theme itself.
type SetupModel struct {
	themes []string
	cursor int
	keys   keyMap

	width  int
	height int

	done      bool
	confirmed bool
	saveErr   error
}

// NewSetupModel opens the picker on the named theme, or the first one.
func NewSetupModel(current string) SetupModel {
	themes := theme.ListThemes()
	cursor := 0
	for i, name := range themes {
		if name == current {
			cursor = i
		}
	}

	return SetupModel{
		themes: themes,
		cursor: cursor,
		keys:   defaultKeyMap(),
		width:  100,
		height: 30,
	}
}

// Confirmed reports whether a theme was saved.
func (m SetupModel) Confirmed() bool {
	return m.confirmed
}

// Selected is the theme under the cursor.
func (m SetupModel) Selected() string {
	return m.themes[m.cursor]
}

func (m SetupModel) Init() tea.Cmd {
	return nil
}

func (m SetupModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit), key.Matches(msg, m.keys.Back):
			m.done = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Up):
			m.cursor = (m.cursor - 1 + len(m.themes)) % len(m.themes)
		case key.Matches(msg, m.keys.Down):
			m.cursor = (m.cursor + 1) % len(m.themes)
		case key.Matches(msg, m.keys.Enter):
			if err := config.UpdateTheme(m.Selected()); err != nil {
				m.saveErr = err
				return m, nil
			}
			m.saveErr = nil
			m.confirmed = true
			m.done = true
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m SetupModel) View() string {
	if m.done {
		if m.confirmed {
			return ""
		}
		return "Theme unchanged.\n"
	}
	if m.width < minSetupWidth || m.height < minSetupHeight {
		return "Terminal too small. Please resize and try again.\n"
	}

	styles := theme.NewStyles(theme.Resolve(m.Selected()))

	listWidth := max(m.width/3, 30)
	previewWidth := max(m.width-listWidth-4, 30)
	panel := func(width int, body string) string {
		return styles.Border.Width(width).Height(m.height - 6).Render(body)
	}

	body := lipgloss.JoinHorizontal(lipgloss.Top,
		panel(listWidth, m.renderThemeList(styles, listWidth-4)),
		panel(previewWidth, renderPreview(styles, previewWidth-4, time.Now())),
	)

	help := styles.TUIHelp.Render("↑/k ↓/j choose • enter save • esc/q cancel")
	if m.saveErr != nil {
		help = styles.Error.Render("✗ failed to save theme: "+m.saveErr.Error()) + "\n" + help
	}

	return strings.Join([]string{
		styles.TUITitle.Render("HR Dashboard · Theme"),
		styles.Subtitle.Render("Pick the colours for tables and the browser"),
		"",
		body,
		"",
		help,
	}, "\n")
}

func (m SetupModel) renderThemeList(styles *theme.Styles, width int) string {
	lines := []string{styles.DetailKey.Render("Themes"), ""}
	for i, name := range m.themes {
		if i == m.cursor {
			lines = append(lines, styles.Selected.Width(width).Render("▶ "+name))
			continue
		}
		lines = append(lines, styles.Muted.Width(width).Render("  "+name))
	}
	return strings.Join(lines, "\n")
}

// sample records for every coloured state a list can show
func renderPreview(styles *theme.Styles, width int, now time.Time) string {
	var b strings.Builder
	b.WriteString(styles.DetailKey.Render("Preview"))
	b.WriteString("\n\n")

	due := now.AddDate(0, 0, 2)
	overdue := now.AddDate(0, 0, -1)
	for _, task := range []*domain.Task{
		{Title: "Review onboarding checklist", Priority: domain.PriorityUrgent, Status: domain.StatusInProgress, DueDate: &overdue},
		{Title: "Update leave policy", Priority: domain.PriorityMedium, Status: domain.StatusPending, DueDate: &due},
		{Title: "Close Q1 reviews", Priority: domain.PriorityHigh, Status: domain.StatusCompleted},
	} {
		fmt.Fprintf(&b, "%s %s\n  %s %s  %s  due %s\n\n",
			display.GetStatusIcon(task.Status),
			styles.RecordStyle(task).Render(task.Title),
			display.GetPriorityIcon(task.Priority),
			styles.PriorityStyle(task.Priority).Render(string(task.Priority)),
			styles.StatusStyle(task.Status).Render(string(task.Status)),
			display.FormatDueDate(task.DueDate, now),
		)
	}

	b.WriteString(styles.Separator.Render(strings.Repeat("─", max(width, 1))))
	b.WriteString("\n\n")

	statuses := []domain.AttendanceStatus{
		domain.AttendancePresent,
		domain.AttendanceLate,
		domain.AttendanceLeave,
		domain.AttendanceAbsent,
	}
	days := make([]string, len(statuses))
	for i, status := range statuses {
		days[i] = display.GetAttendanceIcon(status) + " " + styles.AttendanceStyle(status).Render(string(status))
	}
	b.WriteString(strings.Join(days, "  "))
	b.WriteString("\n\n")

	b.WriteString(styles.RecordStyle(&domain.Notification{}).Render(`• Alice assigned "Onboarding" to you`))
	b.WriteString("\n")
	b.WriteString(styles.RecordStyle(&domain.Notification{Read: true}).Render("  Bob joined Platform"))
	b.WriteString("\n")
	return b.String()
}
