package export

import (
	"fmt"
	"io"
	"strings"

	"hr-dashboard/internal/screen"
)

func WriteMarkdown(w io.Writer, title string, columns []screen.Column, rows []screen.Row) error {
	var b strings.Builder

	if title != "" {
		fmt.Fprintf(&b, "# %s\n\n", title)
	}

	if len(rows) == 0 {
		b.WriteString("_No matching records._\n")
		_, err := io.WriteString(w, b.String())
		return err
	}

	heads := titles(columns)
	b.WriteString("| " + strings.Join(heads, " | ") + " |\n")
	b.WriteString("|" + strings.Repeat(" --- |", len(heads)) + "\n")

	for _, row := range rows {
		cells := make([]string, len(row.Cells))
		for i, cell := range row.Cells {
			cells[i] = escapeCell(cell)
		}
		b.WriteString("| " + strings.Join(cells, " | ") + " |\n")
	}

	fmt.Fprintf(&b, "\n%d record(s)\n", len(rows))

	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("failed to write markdown: %w", err)
	}
	return nil
}

func escapeCell(s string) string {
	s = strings.ReplaceAll(s, "|", `\|`)
	return strings.ReplaceAll(s, "\n", " ")
}
