// Package display holds the small text helpers list cells are built from.
package display

import (
	"fmt"
	"strings"
	"time"

	"hr-dashboard/internal/domain"
)

func GetStatusIcon(status domain.Status) string {
	switch status {
	case domain.StatusCompleted:
		return "✓"
	case domain.StatusInProgress:
		return "⚡"
	case domain.StatusPending:
		return "○"
	case domain.StatusCancelled:
		return "✗"
	default:
		return "?"
	}
}

func GetPriorityIcon(priority domain.Priority) string {
	switch priority {
	case domain.PriorityUrgent:
		return "🔥"
	case domain.PriorityHigh:
		return "⬆"
	case domain.PriorityMedium:
		return "➡"
	case domain.PriorityLow:
		return "⬇"
	default:
		return "?"
	}
}

func GetAttendanceIcon(status domain.AttendanceStatus) string {
	switch status {
	case domain.AttendancePresent:
		return "●"
	case domain.AttendanceLate:
		return "◐"
	case domain.AttendanceLeave:
		return "✈"
	case domain.AttendanceAbsent:
		return "○"
	default:
		return "?"
	}
}

// FormatDueDate renders a due date relative to now, by calendar day.
func FormatDueDate(dueDate *time.Time, now time.Time) string {
	if dueDate == nil {
		return "-"
	}

	days := calendarDays(now, *dueDate)
	switch {
	case days < 0:
		return fmt.Sprintf("-%dd", -days)
	case days == 0:
		return "Today"
	case days == 1:
		return "Tomorrow"
	case days <= 7:
		return fmt.Sprintf("%dd", days)
	default:
		return dueDate.Format("2006-01-02")
	}
}

// RelativeTime renders how long ago t was, falling back to the date
// after a week.
func RelativeTime(t, now time.Time) string {
	if t.IsZero() {
		return "-"
	}

	d := now.Sub(t)
	switch {
	case d < time.Minute:
		return "just now"
	case d < time.Hour:
		return fmt.Sprintf("%dm ago", int(d.Minutes()))
	case d < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(d.Hours()))
	case d < 7*24*time.Hour:
		return fmt.Sprintf("%dd ago", int(d.Hours()/24))
	default:
		return t.Format("2006-01-02")
	}
}

// Truncate shortens s to at most width runes, marking the cut with an ellipsis.
func Truncate(s string, width int) string {
	runes := []rune(s)
	if width <= 0 || len(runes) <= width {
		return s
	}
	if width == 1 {
		return "…"
	}
	return string(runes[:width-1]) + "…"
}

func JoinList(items []string) string {
	if len(items) == 0 {
		return "-"
	}
	return strings.Join(items, ", ")
}

func calendarDays(from, to time.Time) int {
	y1, m1, d1 := from.Date()
	y2, m2, d2 := to.In(from.Location()).Date()
	a := time.Date(y1, m1, d1, 0, 0, 0, 0, time.UTC)
	b := time.Date(y2, m2, d2, 0, 0, 0, 0, time.UTC)
	return int(b.Sub(a).Hours() / 24)
}
