package listquery

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMatches(t *testing.T) {
	rec := Record{
		"name":  String("Bob Stone"),
		"email": String("BOB@EXAMPLE.COM"),
		"age":   Int(25),
		"tags":  Strings([]string{"oncall"}),
	}

	tests := []struct {
		name string
		rec  Record
		term string
		want bool
	}{
		{name: "empty term matches", rec: rec, term: "", want: true},
		{name: "empty term matches empty record", rec: Record{}, term: "", want: true},
		{name: "substring in name", rec: rec, term: "sto", want: true},
		{name: "upper-case term", rec: rec, term: "STONE", want: true},
		{name: "upper-case field", rec: rec, term: "example", want: true},
		{name: "numbers are ignored", rec: rec, term: "25", want: false},
		{name: "string lists are ignored", rec: rec, term: "oncall", want: false},
		{name: "no string fields", rec: Record{"age": Int(3)}, term: "a", want: false},
		{name: "no match", rec: rec, term: "carol", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Matches[Record](MapSchema{}, tt.rec, tt.term))
		})
	}
}

func TestPassesFilters(t *testing.T) {
	project := MapSchema{}.Lookup
	rec := Record{
		"role":   String("employee"),
		"age":    Int(25),
		"remote": Bool(true),
		"tags":   Strings([]string{"backend", "oncall"}),
	}

	tests := []struct {
		name    string
		filters Filters
		want    bool
	}{
		{name: "nil filters", filters: nil, want: true},
		{name: "empty filters", filters: Filters{}, want: true},
		{name: "empty set is no constraint", filters: Filters{"role": ValueSet{}}, want: true},
		{name: "nil set is no constraint", filters: Filters{"role": nil}, want: true},
		{name: "scalar member", filters: Filters{"role": NewValueSet("admin", "employee")}, want: true},
		{name: "scalar non-member", filters: Filters{"role": NewValueSet("admin")}, want: false},
		{name: "number key", filters: Filters{"age": NewValueSet("25")}, want: true},
		{name: "bool key", filters: Filters{"remote": NewValueSet("true")}, want: true},
		{name: "list intersects", filters: Filters{"tags": NewValueSet("oncall", "frontend")}, want: true},
		{name: "list disjoint", filters: Filters{"tags": NewValueSet("frontend")}, want: false},
		{name: "absent field with constraint", filters: Filters{"dept": NewValueSet("eng")}, want: false},
		{
			name: "and across categories",
			filters: Filters{
				"role": NewValueSet("employee"),
				"tags": NewValueSet("frontend"),
			},
			want: false,
		},
		{
			name: "bad category does not affect the others",
			filters: Filters{
				"role": NewValueSet("employee"),
				"dept": nil,
			},
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PassesFilters(project, rec, tt.filters))
		})
	}
}

func TestCompareValues(t *testing.T) {
	strcmp := strings.Compare

	assert.Negative(t, CompareValues(String("a"), String("b"), strcmp))
	assert.Positive(t, CompareValues(Number(2.5), Number(1), strcmp))
	assert.Zero(t, CompareValues(Number(1), Number(1), strcmp))
	assert.Zero(t, CompareValues(String("1"), Number(1), strcmp))
	assert.Zero(t, CompareValues(None(), None(), strcmp))
	assert.Zero(t, CompareValues(Bool(true), Bool(false), strcmp))
	assert.Zero(t, CompareValues(Strings([]string{"a"}), Strings([]string{"b"}), strcmp))
}

func TestValueKey(t *testing.T) {
	key, ok := Number(30).Key()
	assert.True(t, ok)
	assert.Equal(t, "30", key)

	key, ok = Number(2.5).Key()
	assert.True(t, ok)
	assert.Equal(t, "2.5", key)

	_, ok = None().Key()
	assert.False(t, ok)

	_, ok = Strings([]string{"x"}).Key()
	assert.False(t, ok)

	assert.True(t, Time(time.Time{}).IsNone())
	assert.Equal(t, "a, b", Strings([]string{"a", "b"}).String())
}
