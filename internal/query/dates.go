package query

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"hr-dashboard/internal/domain"
)

var offsetPattern = regexp.MustCompile(`^([+-]?)(\d+)([dwMy])$`)

// ParseDate reads an absolute date, a keyword (today, tomorrow,
// yesterday) or an offset from now such as +3d, -2w, 1M. "none" yields
// a nil time.
func ParseDate(value string, now time.Time) (*time.Time, error) {
	value = strings.TrimSpace(value)

	switch strings.ToLower(value) {
	case "none", "":
		return nil, nil
	case "today":
		return dayPtr(now), nil
	case "tomorrow":
		return dayPtr(now.AddDate(0, 0, 1)), nil
	case "yesterday":
		return dayPtr(now.AddDate(0, 0, -1)), nil
	}

	if m := offsetPattern.FindStringSubmatch(value); m != nil {
		n, err := strconv.Atoi(m[2])
		if err != nil {
			return nil, fmt.Errorf("invalid number in offset: %s", m[2])
		}
		if m[1] == "-" {
			n = -n
		}

		switch m[3] {
		case "d":
			return dayPtr(now.AddDate(0, 0, n)), nil
		case "w":
			return dayPtr(now.AddDate(0, 0, n*7)), nil
		case "M":
			return dayPtr(now.AddDate(0, n, 0)), nil
		default:
			return dayPtr(now.AddDate(n, 0, 0)), nil
		}
	}

	t, err := domain.ParseDate(value)
	if err != nil {
		return nil, fmt.Errorf("%w (expected a date, today/tomorrow/yesterday, or an offset like +3d)", err)
	}
	return t, nil
}

func dayPtr(t time.Time) *time.Time {
	year, month, day := t.Date()
	d := time.Date(year, month, day, 0, 0, 0, 0, t.Location())
	return &d
}
