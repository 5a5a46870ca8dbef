package fuzzy

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatch(t *testing.T) {
	tests := []struct {
		name     string
		pattern  string
		text     string
		minScore int
		maxScore int
	}{
		{name: "exact", pattern: "employees", text: "employees", minScore: 100, maxScore: 100},
		{name: "exact mixed case", pattern: "Teams", text: "teams", minScore: 100, maxScore: 100},
		{name: "prefix", pattern: "emp", text: "employees", minScore: 70, maxScore: 99},
		{name: "scattered", pattern: "atd", text: "attendance", minScore: 40, maxScore: 95},
		{name: "not a subsequence", pattern: "xyz", text: "tasks", minScore: 0, maxScore: 0},
		{name: "longer than text", pattern: "taskss", text: "tasks", minScore: 0, maxScore: 0},
		{name: "empty pattern", pattern: "", text: "tasks", minScore: 0, maxScore: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Match(tt.pattern, tt.text)
			assert.GreaterOrEqual(t, got, tt.minScore)
			assert.LessOrEqual(t, got, tt.maxScore)
		})
	}
}

func TestMatch_PrefixBeatsSuffix(t *testing.T) {
	assert.Greater(t, Match("dep", "department"), Match("ent", "department"))
}

func TestSimilarity(t *testing.T) {
	assert.Equal(t, 100, Similarity("role", "ROLE"))
	assert.Equal(t, 75, Similarity("agee", "age"))
	assert.Equal(t, 75, Similarity("rloe", "role"))
	assert.Equal(t, 0, Similarity("", ""))
	assert.Less(t, Similarity("status", "priority"), 50)
}

func TestSuggest(t *testing.T) {
	fields := []string{"name", "age", "role", "department", "skills", "joined"}

	assert.Equal(t, []string{"age"}, Suggest("agee", fields, 3))
	assert.Equal(t, []string{"role"}, Suggest("rloe", fields, 3))
	assert.Equal(t, []string{"department"}, Suggest("dept", fields, 1))
	assert.Empty(t, Suggest("salary", fields, 3))
}

func TestMatchMany_SortedByScore(t *testing.T) {
	results := MatchMany("tea", []string{"attendance", "teams", "tasks"}, 1)

	if assert.NotEmpty(t, results) {
		assert.Equal(t, "teams", results[0].Text)
		assert.Equal(t, 1, results[0].Index)
	}
	for i := 1; i < len(results); i++ {
		assert.GreaterOrEqual(t, results[i-1].Score, results[i].Score)
	}
}
