package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"hr-dashboard/internal/export"
)

var importConflict string

var importCmd = &cobra.Command{
	Use:   "import [file]",
	Short: "Load employees, teams, tasks, attendance and activity from a YAML seed",
	Long: `Load a YAML seed file into the dashboard. Use - to read standard input.

The seed has five optional lists: employees, teams, tasks, attendance and
activities. People are referenced by id, email or name; each activity is
delivered as a notification to everyone it concerns except its actor.

Conflict strategies for employees whose email is already on file:
  - skip: leave the existing employee untouched (default)
  - merge: fill blank fields and add new skills
  - overwrite: replace the existing employee's fields

Examples:
  hrdash import seed.yaml
  hrdash import seed.yaml --conflict merge
  cat seed.yaml | hrdash import -`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

func init() {
	rootCmd.AddCommand(importCmd)
	importCmd.Flags().StringVar(&importConflict, "conflict", "skip", "Conflict strategy (skip, merge, overwrite)")
}

func runImport(cmd *cobra.Command, args []string) error {
	strategy, err := export.ParseConflictStrategy(importConflict)
	if err != nil {
		return err
	}

	var r io.Reader = cmd.InOrStdin()
	if args[0] != "-" {
		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("failed to open seed: %w", err)
		}
		defer f.Close()
		r = f
	}

	return withApp(func(a *app) error {
		return a.importSeed(cmd.Context(), cmd.OutOrStdout(), r, strategy)
	})
}

func (a *app) importSeed(ctx context.Context, w io.Writer, r io.Reader, strategy export.ConflictStrategy) error {
	seed, err := export.DecodeSeed(r)
	if err != nil {
		return err
	}

	result, err := export.NewImporter(a.store, a.logger).Import(ctx, seed, strategy)
	if err != nil {
		return err
	}

	fmt.Fprintln(w, a.styles.Success.Render("✓ Import complete"))
	fmt.Fprintf(w, "  Employees:     %d\n", result.Employees)
	fmt.Fprintf(w, "  Teams:         %d\n", result.Teams)
	fmt.Fprintf(w, "  Tasks:         %d\n", result.Tasks)
	fmt.Fprintf(w, "  Attendance:    %d\n", result.Attendance)
	fmt.Fprintf(w, "  Notifications: %d\n", result.Notifications)
	if result.Skipped > 0 {
		fmt.Fprintln(w, a.styles.Muted.Render(fmt.Sprintf("  Skipped:       %d", result.Skipped)))
	}
	return nil
}
