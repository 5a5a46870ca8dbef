package query

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hr-dashboard/internal/listquery"
)

func TestTokenize(t *testing.T) {
	tokens, err := Tokenize(`status:done @bob "two words"`)
	require.NoError(t, err)

	got := make([]string, len(tokens))
	for i, tok := range tokens {
		got[i] = tok.String()
	}
	want := []string{"WORD(status)", "COLON", "WORD(done)", "AT", "WORD(bob)", "QUOTED(two words)", "EOF"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Tokenize() mismatch (-want +got):\n%s", diff)
	}
}

func TestTokenize_UnterminatedQuote(t *testing.T) {
	_, err := Tokenize(`name:"alice`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unterminated")
}

func TestParseQuery(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  *ParsedQuery
	}{
		{
			name:  "empty",
			input: "   ",
			want:  &ParsedQuery{},
		},
		{
			name:  "single filter",
			input: "status:pending",
			want:  &ParsedQuery{Filters: []Filter{{Field: "status", Value: "pending"}}},
		},
		{
			name:  "field names are lower-cased",
			input: "Status:Pending",
			want:  &ParsedQuery{Filters: []Filter{{Field: "status", Value: "Pending"}}},
		},
		{
			name:  "comma alternatives",
			input: "tag:bug,ui",
			want: &ParsedQuery{Filters: []Filter{
				{Field: "tag", Value: "bug"},
				{Field: "tag", Value: "ui"},
			}},
		},
		{
			name:  "quoted value keeps commas",
			input: `department:"R&D, Europe"`,
			want:  &ParsedQuery{Filters: []Filter{{Field: "department", Value: "R&D, Europe"}}},
		},
		{
			name:  "mention",
			input: "@alice",
			want:  &ParsedQuery{Filters: []Filter{{Field: MentionField, Value: "alice"}}},
		},
		{
			name:  "descending sort",
			input: "sort:-due",
			want:  &ParsedQuery{Sort: &SortKey{Field: "due", Direction: listquery.Descending}},
		},
		{
			name:  "dotted sort direction",
			input: "sort:age.desc",
			want:  &ParsedQuery{Sort: &SortKey{Field: "age", Direction: listquery.Descending}},
		},
		{
			name:  "free text",
			input: `alice "van der"`,
			want:  &ParsedQuery{Text: []string{"alice", "van der"}},
		},
		{
			name:  "mixed",
			input: "status:pending tag:bug sort:-due alice",
			want: &ParsedQuery{
				Filters: []Filter{
					{Field: "status", Value: "pending"},
					{Field: "tag", Value: "bug"},
				},
				Sort: &SortKey{Field: "due", Direction: listquery.Descending},
				Text: []string{"alice"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseQuery(tt.input)
			require.NoError(t, err)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("ParseQuery(%q) mismatch (-want +got):\n%s", tt.input, diff)
			}
		})
	}
}

func TestParseQuery_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "missing value", input: "status:"},
		{name: "leading colon", input: ":pending"},
		{name: "empty sort", input: "sort:-"},
		{name: "bad sort direction", input: "sort:age.up"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseQuery(tt.input)
			var parseErr *ParseError
			assert.ErrorAs(t, err, &parseErr)
		})
	}
}

func TestParsedQuery_SearchTerm(t *testing.T) {
	q, err := ParseQuery("role:admin ada lovelace")
	require.NoError(t, err)

	assert.Equal(t, "ada lovelace", q.SearchTerm())
	assert.False(t, q.IsEmpty())
}

func TestParseSortKey(t *testing.T) {
	key, err := ParseSortKey("+Name")
	require.NoError(t, err)
	assert.Equal(t, &SortKey{Field: "name", Direction: listquery.Ascending}, key)

	key, err = ParseSortKey("joined.descending")
	require.NoError(t, err)
	assert.Equal(t, listquery.Descending, key.Direction)
}
