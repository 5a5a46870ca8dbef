package export

import (
	"fmt"
	"io"

	"hr-dashboard/internal/screen"
)

// WriteRows writes derived rows in one of the file formats. Table output
// is rendered by the CLI.
func WriteRows(w io.Writer, format Format, title string, columns []screen.Column, rows []screen.Row) error {
	switch format {
	case FormatCSV:
		return WriteCSV(w, columns, rows)
	case FormatJSON:
		return WriteJSON(w, rows)
	case FormatMarkdown:
		return WriteMarkdown(w, title, columns, rows)
	default:
		return fmt.Errorf("format %q is not a file format", format)
	}
}

func titles(columns []screen.Column) []string {
	out := make([]string, len(columns))
	for i, c := range columns {
		out[i] = c.Title
	}
	return out
}
