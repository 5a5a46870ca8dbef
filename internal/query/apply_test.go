package query

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hr-dashboard/internal/listquery"
)

var taskVocab = Vocabulary{
	Categories:   []string{"status", "priority", "tags", "assignee", "due"},
	SortFields:   []string{"title", "priority", "due", "created"},
	MentionField: "assignee",
	Aliases:      map[string]string{"tag": "tags"},
}

func TestApply(t *testing.T) {
	state := listquery.NewState("title", listquery.Ascending)

	q, err := ParseQuery("status:pending tag:bug @alice sort:-due login")
	require.NoError(t, err)
	require.NoError(t, Apply(&state, q, taskVocab))

	assert.Equal(t, "login", state.SearchTerm())
	assert.Equal(t, []string{"pending"}, state.FilterValues("status"))
	assert.Equal(t, []string{"bug"}, state.FilterValues("tags"))
	assert.Equal(t, []string{"alice"}, state.FilterValues("assignee"))
	assert.Equal(t, "due", state.SortField())
	assert.Equal(t, listquery.Descending, state.SortDirection())
}

func TestApply_KeepsSelectedValues(t *testing.T) {
	state := listquery.NewState("due", listquery.Descending)
	state.ToggleFilterValue("status", "pending")

	q, err := ParseQuery("status:pending,done sort:-due")
	require.NoError(t, err)
	require.NoError(t, Apply(&state, q, taskVocab))

	assert.Equal(t, []string{"done", "pending"}, state.FilterValues("status"))
	assert.Equal(t, listquery.Descending, state.SortDirection())
}

func TestApply_AscendingOnSameField(t *testing.T) {
	state := listquery.NewState("due", listquery.Descending)

	q, err := ParseQuery("sort:due")
	require.NoError(t, err)
	require.NoError(t, Apply(&state, q, taskVocab))

	assert.Equal(t, "due", state.SortField())
	assert.Equal(t, listquery.Ascending, state.SortDirection())
}

func TestApply_UnknownField(t *testing.T) {
	state := listquery.NewState("title", listquery.Ascending)

	q, err := ParseQuery("stauts:pending priority:high")
	require.NoError(t, err)

	err = Apply(&state, q, taskVocab)
	var unknown *UnknownFieldError
	require.True(t, errors.As(err, &unknown))
	assert.Equal(t, "stauts", unknown.Field)
	assert.Contains(t, unknown.Suggestions, "status")
	assert.Contains(t, err.Error(), "did you mean")

	assert.False(t, state.IsFiltered(), "state is untouched on error")
}

func TestApply_MentionsUnsupported(t *testing.T) {
	state := listquery.NewState("", listquery.Ascending)

	q, err := ParseQuery("@bob")
	require.NoError(t, err)

	assert.Error(t, Apply(&state, q, Vocabulary{Categories: []string{"role"}}))
}

func TestParse_LeavesBaseAlone(t *testing.T) {
	base := listquery.NewState("title", listquery.Ascending)
	base.ToggleFilterValue("status", "done")

	got, err := Parse("status:pending", base, taskVocab)
	require.NoError(t, err)

	assert.Equal(t, []string{"done"}, base.FilterValues("status"))
	assert.Equal(t, []string{"done", "pending"}, got.FilterValues("status"))
}

func TestFormat_RoundTrip(t *testing.T) {
	state := listquery.NewState("title", listquery.Ascending)
	state.SetSearchTerm("fix login")
	state.ToggleFilterValue("status", "pending")
	state.ToggleFilterValue("tags", "needs review")
	state.ToggleFilterValue("tags", "bug")
	state.ChangeSortField("due")
	state.ChangeSortField("due")

	text := Format(state)
	assert.Equal(t, `status:pending tags:bug tags:"needs review" sort:-due "fix login"`, text)

	parsed, err := Parse(text, listquery.NewState("", listquery.Ascending), taskVocab)
	require.NoError(t, err)

	assert.Equal(t, state.Snapshot(), parsed.Snapshot())
}

func TestFormat_Empty(t *testing.T) {
	assert.Equal(t, "", Format(listquery.State{}))
}

func TestVocabulary_Fields(t *testing.T) {
	assert.Equal(t,
		[]string{"assignee", "created", "due", "priority", "status", "tag", "tags", "title"},
		taskVocab.Fields())
}
