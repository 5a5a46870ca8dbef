package listquery

import (
	"cmp"
	"fmt"
	"strings"
)

type Direction int

const (
	Ascending Direction = iota
	Descending
)

func (d Direction) String() string {
	if d == Descending {
		return "descending"
	}
	return "ascending"
}

// short form used in query strings and urls
func (d Direction) Short() string {
	if d == Descending {
		return "desc"
	}
	return "asc"
}

func (d Direction) Flip() Direction {
	if d == Descending {
		return Ascending
	}
	return Descending
}

// ParseDirection accepts asc/ascending/desc/descending in any case.
// An empty string is ascending.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "asc", "ascending":
		return Ascending, nil
	case "desc", "descending":
		return Descending, nil
	default:
		return Ascending, fmt.Errorf("invalid sort direction: %q (must be asc or desc)", s)
	}
}

// CompareValues orders two values of the same kind. Strings use strcmp,
// numbers their difference, times their instant. Anything else,
// including mixed kinds and absent values, compares equal.
func CompareValues(a, b Value, strcmp func(x, y string) int) int {
	if a.kind != b.kind {
		return 0
	}

	switch a.kind {
	case KindString:
		return strcmp(a.str, b.str)
	case KindNumber:
		d := a.num - b.num
		switch {
		case d < 0:
			return -1
		case d > 0:
			return 1
		default:
			// equal, or NaN on either side
			return 0
		}
	case KindTime:
		return cmp.Compare(a.at.UnixMilli(), b.at.UnixMilli())
	default:
		return 0
	}
}

func orient(c int, dir Direction) int {
	if dir == Descending {
		return -c
	}
	return c
}
