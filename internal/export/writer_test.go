package export

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hr-dashboard/internal/domain"
	"hr-dashboard/internal/screen"
)

var (
	testColumns = []screen.Column{{Title: "Name", Width: 10}, {Title: "Role", Width: 8}}
	testRows    = []screen.Row{
		{ID: "1", Cells: []string{"Alice", "admin"}, Record: &domain.Employee{ID: "1", Name: "Alice", Role: domain.RoleAdmin}},
		{ID: "2", Cells: []string{"Bob, Jr.", "a|b"}, Record: &domain.Employee{ID: "2", Name: "Bob, Jr.", Role: domain.RoleEmployee}},
	}
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{in: "", want: FormatTable},
		{in: "CSV", want: FormatCSV},
		{in: "json", want: FormatJSON},
		{in: "md", want: FormatMarkdown},
		{in: "xml", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFormat(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteRows(&buf, FormatCSV, "Employees", testColumns, testRows))

	assert.Equal(t, "ID,Name,Role\n1,Alice,admin\n2,\"Bob, Jr.\",a|b\n", buf.String())
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteRows(&buf, FormatJSON, "", testColumns, testRows))

	var got []domain.Employee
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	require.Len(t, got, 2)
	assert.Equal(t, "Alice", got[0].Name)
	assert.Equal(t, domain.RoleEmployee, got[1].Role)
}

func TestWriteMarkdown(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteRows(&buf, FormatMarkdown, "Employees", testColumns, testRows))

	out := buf.String()
	assert.Contains(t, out, "# Employees\n")
	assert.Contains(t, out, "| Name | Role |\n| --- | --- |\n")
	assert.Contains(t, out, `| Bob, Jr. | a\|b |`)
	assert.Contains(t, out, "2 record(s)")

	buf.Reset()
	require.NoError(t, WriteMarkdown(&buf, "", testColumns, nil))
	assert.Equal(t, "_No matching records._\n", buf.String())
}

func TestWriteRows_TableIsNotAFileFormat(t *testing.T) {
	assert.Error(t, WriteRows(&bytes.Buffer{}, FormatTable, "", testColumns, testRows))
}
