package export

import (
	"encoding/json"
	"fmt"
	"io"

	"hr-dashboard/internal/screen"
)

// WriteJSON writes the domain records behind the rows, in row order.
func WriteJSON(w io.Writer, rows []screen.Row) error {
	records := make([]any, len(rows))
	for i, row := range rows {
		records[i] = row.Record
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(records); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return nil
}
