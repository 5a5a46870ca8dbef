package listquery

import (
	"strconv"
	"strings"
	"time"
)

// value kind tag
type Kind int

const (
	KindNone Kind = iota
	KindString
	KindNumber
	KindBool
	KindTime
	KindStrings
)

func (k Kind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindString:
		return "string"
	case KindNumber:
		return "number"
	case KindBool:
		return "bool"
	case KindTime:
		return "time"
	case KindStrings:
		return "strings"
	default:
		return "unknown"
	}
}

// Value is a tagged variant holding one field value of a record.
// The zero Value is KindNone and stands for an absent field.
type Value struct {
	kind Kind
	str  string
	num  float64
	flag bool
	at   time.Time
	list []string
}

func None() Value {
	return Value{}
}

func String(s string) Value {
	return Value{kind: KindString, str: s}
}

func Number(n float64) Value {
	return Value{kind: KindNumber, num: n}
}

func Int(n int) Value {
	return Value{kind: KindNumber, num: float64(n)}
}

func Bool(b bool) Value {
	return Value{kind: KindBool, flag: b}
}

// zero time is treated as absent
func Time(t time.Time) Value {
	if t.IsZero() {
		return Value{}
	}
	return Value{kind: KindTime, at: t}
}

func TimePtr(t *time.Time) Value {
	if t == nil {
		return Value{}
	}
	return Time(*t)
}

func Strings(values []string) Value {
	list := make([]string, len(values))
	copy(list, values)
	return Value{kind: KindStrings, list: list}
}

func (v Value) Kind() Kind {
	return v.kind
}

func (v Value) IsNone() bool {
	return v.kind == KindNone
}

func (v Value) Str() string {
	return v.str
}

func (v Value) Num() float64 {
	return v.num
}

func (v Value) Flag() bool {
	return v.flag
}

func (v Value) Time() time.Time {
	return v.at
}

func (v Value) List() []string {
	return v.list
}

// Key returns the string form used for filter-set membership.
// It reports false for absent values and string lists.
func (v Value) Key() (string, bool) {
	switch v.kind {
	case KindString:
		return v.str, true
	case KindNumber:
		return strconv.FormatFloat(v.num, 'f', -1, 64), true
	case KindBool:
		return strconv.FormatBool(v.flag), true
	case KindTime:
		return v.at.UTC().Format(time.RFC3339), true
	default:
		return "", false
	}
}

// String renders the value for display.
func (v Value) String() string {
	switch v.kind {
	case KindNone:
		return ""
	case KindStrings:
		return strings.Join(v.list, ", ")
	case KindTime:
		return v.at.Format("2006-01-02 15:04")
	default:
		key, _ := v.Key()
		return key
	}
}
