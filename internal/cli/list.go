package cli

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/natefinch/atomic"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"hr-dashboard/internal/display"
	"hr-dashboard/internal/export"
	"hr-dashboard/internal/logger"
	"hr-dashboard/internal/query"
	"hr-dashboard/internal/screen"
)

var (
	listSearch  string
	listFilters []string
	listSort    string
	listQuery   string
	listView    string
	listFormat  string
	listOutput  string
)

const outputFilePerms = 0o644

var listCmd = &cobra.Command{
	Use:   "list [screen]",
	Short: "List a screen's records",
	Long: `List the records of one screen (employees, tasks, teams, attendance or
notifications), searched, filtered and sorted.

Filters are category:value pairs. Values within one category are OR'ed,
categories are AND'ed. A saved view or the screen's default view is the
starting point; --query, --search, --filter and --sort are applied on top.

Examples:
  hrdash list employees
  hrdash list employees --filter role:employee --filter dept:eng --sort -age
  hrdash list tasks --query 'status:pending due:overdue @alice'
  hrdash list employees --view "Engineers" --format csv > engineers.csv
  hrdash list tasks --format json --output tasks.json`,
	Args: cobra.MaximumNArgs(1),
	RunE: runList,
}

func init() {
	rootCmd.AddCommand(listCmd)

	listCmd.Flags().StringVarP(&listSearch, "search", "s", "", "Case-insensitive search over text fields")
	listCmd.Flags().StringArrayVarP(&listFilters, "filter", "f", nil, "Filter as category:value (repeatable)")
	listCmd.Flags().StringVar(&listSort, "sort", "", "Sort field; prefix with - or suffix .desc for descending")
	listCmd.Flags().StringVarP(&listQuery, "query", "q", "", "Query string, e.g. 'role:admin sort:-age bob'")
	listCmd.Flags().StringVar(&listView, "view", "", "Start from a saved view")
	listCmd.Flags().StringVarP(&listFormat, "format", "o", "table", "Output format (table, json, csv, markdown)")
	listCmd.Flags().StringVarP(&listOutput, "output", "O", "", "Write to this file instead of stdout")
}

func runList(cmd *cobra.Command, args []string) error {
	format, err := export.ParseFormat(listFormat)
	if err != nil {
		return err
	}

	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	name := a.cfg.DefaultScreen
	if len(args) > 0 {
		name = args[0]
	}

	req := screen.StateRequest{
		View:    listView,
		Query:   listQuery,
		Search:  listSearch,
		Filters: listFilters,
		Sort:    listSort,
	}
	if listOutput != "" {
		if err := a.writeList(cmd.Context(), listOutput, name, req, format); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "✓ Wrote %s\n", listOutput)
		return nil
	}
	return a.renderList(cmd.Context(), cmd.OutOrStdout(), name, req, format)
}

// writeList renders the list into path, replacing any existing file in one step.
func (a *app) writeList(ctx context.Context, path, name string, req screen.StateRequest, format export.Format) error {
	var buf bytes.Buffer
	if err := a.renderList(ctx, &buf, name, req, format); err != nil {
		return err
	}

	if err := atomic.WriteFile(path, &buf); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	// atomic.WriteFile doesn't set permissions for new files
	if err := os.Chmod(path, outputFilePerms); err != nil {
		return fmt.Errorf("failed to set permissions on %s: %w", path, err)
	}
	return nil
}

// renderList derives one screen for req and writes it in format.
func (a *app) renderList(ctx context.Context, w io.Writer, name string, req screen.StateRequest, format export.Format) error {
	ctx = logger.WithContext(ctx, a.logger)

	s, err := a.registry.Get(name)
	if err != nil {
		return err
	}

	state, err := screen.BuildState(ctx, s, a.store.Views, req)
	if err != nil {
		return err
	}

	data, err := s.Load(ctx)
	if err != nil {
		return fmt.Errorf("failed to load %s: %w", s.Name(), err)
	}
	rows := data.Derive(state)

	a.logger.Debug("list derived",
		zap.String("screen", s.Name()),
		zap.String("query", query.Format(state)),
		zap.Int("total", data.Len()),
		zap.Int("rows", len(rows)),
	)

	if format != export.FormatTable {
		return export.WriteRows(w, format, s.Title(), s.Columns(), rows)
	}

	a.printTable(w, s.Columns(), rows)

	summary := fmt.Sprintf("Showing %d of %d %s", len(rows), data.Len(), strings.ToLower(s.Title()))
	if q := query.Format(state); q != "" {
		summary += "  •  query: " + q
	}
	fmt.Fprintln(w, a.styles.Muted.Render(summary))
	fmt.Fprintln(w)
	return nil
}

func (a *app) printTable(w io.Writer, columns []screen.Column, rows []screen.Row) {
	fmt.Fprintln(w)

	headers := make([]string, len(columns))
	total := 0
	for i, col := range columns {
		headers[i] = a.styles.Header.Render(pad(col.Title, col.Width))
		total += col.Width + 3
	}
	fmt.Fprintln(w, strings.Join(headers, " "))
	fmt.Fprintln(w, a.styles.Separator.Render(strings.Repeat("─", total)))

	if len(rows) == 0 {
		fmt.Fprintln(w, a.styles.Muted.Render("  No matching records."))
	}

	for _, row := range rows {
		style := a.styles.RecordStyle(row.Record)
		cells := make([]string, len(columns))
		for i, col := range columns {
			cell := ""
			if i < len(row.Cells) {
				cell = row.Cells[i]
			}
			cells[i] = style.Render(a.styles.Cell.Render(pad(display.Truncate(cell, col.Width), col.Width)))
		}
		fmt.Fprintln(w, strings.Join(cells, " "))
	}

	fmt.Fprintln(w)
}

// pads s with spaces to width display cells
func pad(s string, width int) string {
	if gap := width - lipgloss.Width(s); gap > 0 {
		return s + strings.Repeat(" ", gap)
	}
	return s
}
