package theme

import (
	"github.com/charmbracelet/lipgloss"

	"hr-dashboard/internal/domain"
)

type Styles struct {
	// cli
	Success   lipgloss.Style
	Error     lipgloss.Style
	Warning   lipgloss.Style
	Info      lipgloss.Style
	Title     lipgloss.Style
	Subtitle  lipgloss.Style
	Header    lipgloss.Style
	Cell      lipgloss.Style
	Muted     lipgloss.Style
	Separator lipgloss.Style

	// tui
	TUITitle   lipgloss.Style
	TUIHelp    lipgloss.Style
	Chip       lipgloss.Style
	Selected   lipgloss.Style
	Prompt     lipgloss.Style
	Unread     lipgloss.Style
	Border     lipgloss.Style
	DetailKey  lipgloss.Style
	DetailText lipgloss.Style

	priority   map[domain.Priority]lipgloss.Style
	status     map[domain.Status]lipgloss.Style
	attendance map[domain.AttendanceStatus]lipgloss.Style
}

func fg(color string) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(color))
}

// NewStyles builds every style from the given palette.
func NewStyles(t *Theme) *Styles {
	return &Styles{
		Success:  fg(t.Success).Bold(true),
		Error:    fg(t.Error).Bold(true),
		Warning:  fg(t.Warning),
		Info:     fg(t.Primary),
		Title:    fg(t.Secondary).Bold(true).PaddingTop(1).PaddingBottom(1),
		Subtitle: fg(t.TextSecondary).Italic(true),
		Header: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(t.HeaderFg)).
			Background(lipgloss.Color(t.HeaderBg)).
			PaddingLeft(1).
			PaddingRight(1),
		Cell:      lipgloss.NewStyle().PaddingLeft(1).PaddingRight(1),
		Muted:     fg(t.TextMuted),
		Separator: fg(t.Separator),

		TUITitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(t.HeaderFg)).
			Background(lipgloss.Color(t.HeaderBg)).
			Padding(0, 1),
		TUIHelp: fg(t.HelpText),
		Chip: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.TextPrimary)).
			Background(lipgloss.Color(t.ChipBg)).
			Padding(0, 1),
		Selected: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.SelectedFg)).
			Background(lipgloss.Color(t.SelectedBg)).
			Bold(true),
		Prompt: fg(t.Primary).Bold(true),
		Unread: fg(t.TextPrimary).Bold(true),
		Border: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(t.BorderColor)).
			Padding(0, 1),
		DetailKey:  fg(t.Primary).Bold(true),
		DetailText: fg(t.TextPrimary),

		priority: map[domain.Priority]lipgloss.Style{
			domain.PriorityUrgent: fg(t.PriorityUrgent).Bold(true),
			domain.PriorityHigh:   fg(t.PriorityHigh),
			domain.PriorityMedium: fg(t.PriorityMedium),
			domain.PriorityLow:    fg(t.PriorityLow),
		},
		status: map[domain.Status]lipgloss.Style{
			domain.StatusCompleted:  fg(t.StatusCompleted),
			domain.StatusInProgress: fg(t.StatusInProgress),
			domain.StatusPending:    fg(t.StatusPending),
			domain.StatusCancelled:  fg(t.StatusCancelled).Strikethrough(true),
		},
		attendance: map[domain.AttendanceStatus]lipgloss.Style{
			domain.AttendancePresent: fg(t.Present),
			domain.AttendanceLate:    fg(t.Late),
			domain.AttendanceLeave:   fg(t.Leave),
			domain.AttendanceAbsent:  fg(t.Absent),
		},
	}
}

func (s *Styles) PriorityStyle(p domain.Priority) lipgloss.Style {
	if style, ok := s.priority[p]; ok {
		return style
	}
	return s.Cell
}

func (s *Styles) StatusStyle(status domain.Status) lipgloss.Style {
	if style, ok := s.status[status]; ok {
		return style
	}
	return s.Cell
}

func (s *Styles) AttendanceStyle(status domain.AttendanceStatus) lipgloss.Style {
	if style, ok := s.attendance[status]; ok {
		return style
	}
	return s.Cell
}

// RecordStyle picks the row colour for a list record: tasks by priority
// (or status once closed), attendance by status, notifications by read
// state.
func (s *Styles) RecordStyle(record any) lipgloss.Style {
	switch r := record.(type) {
	case *domain.Task:
		if !r.IsOpen() {
			return s.StatusStyle(r.Status)
		}
		return s.PriorityStyle(r.Priority)
	case *domain.Attendance:
		return s.AttendanceStyle(r.Status)
	case *domain.Notification:
		if !r.Read {
			return s.Unread
		}
		return s.Muted
	default:
		return lipgloss.NewStyle()
	}
}
