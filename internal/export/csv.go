package export

import (
	"encoding/csv"
	"fmt"
	"io"

	"hr-dashboard/internal/screen"
)

// WriteCSV writes an ID column followed by the screen's columns.
func WriteCSV(w io.Writer, columns []screen.Column, rows []screen.Row) error {
	writer := csv.NewWriter(w)

	header := append([]string{"ID"}, titles(columns)...)
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, row := range rows {
		record := append([]string{row.ID}, row.Cells...)
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to flush CSV: %w", err)
	}
	return nil
}
