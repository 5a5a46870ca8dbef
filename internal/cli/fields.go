package cli

import (
	"context"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"hr-dashboard/internal/display"
	"hr-dashboard/internal/screen"
)

var fieldsValues bool

var fieldsCmd = &cobra.Command{
	Use:   "fields [screen]",
	Short: "Show the fields a screen can be searched, filtered and sorted by",
	Long: `Show the fields of one screen, or of every screen when none is given.

Examples:
  hrdash fields
  hrdash fields employees --values`,
	Args: cobra.MaximumNArgs(1),
	RunE: runFields,
}

func init() {
	rootCmd.AddCommand(fieldsCmd)
	fieldsCmd.Flags().BoolVar(&fieldsValues, "values", false, "Also list the values each category currently has")
}

func runFields(cmd *cobra.Command, args []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	screens := a.registry.All()
	if len(args) > 0 {
		s, err := a.registry.Get(args[0])
		if err != nil {
			return err
		}
		screens = []screen.Screen{s}
	}

	for _, s := range screens {
		if err := a.printFields(cmd.Context(), cmd.OutOrStdout(), s, fieldsValues); err != nil {
			return err
		}
	}
	return nil
}

func (a *app) printFields(ctx context.Context, w io.Writer, s screen.Screen, withValues bool) error {
	var data screen.Dataset
	if withValues {
		var err error
		if data, err = s.Load(ctx); err != nil {
			return fmt.Errorf("failed to load %s: %w", s.Name(), err)
		}
	}

	fmt.Fprintln(w, a.styles.Title.Render(fmt.Sprintf("%s (%s)", s.Title(), s.Name())))

	for _, f := range s.Fields() {
		var uses []string
		if f.Searchable {
			uses = append(uses, "search")
		}
		if f.Category {
			uses = append(uses, "filter")
		}
		if f.Sortable {
			uses = append(uses, "sort")
		}

		line := fmt.Sprintf("  %s %s %s",
			a.styles.DetailKey.Render(pad(f.Name, 14)),
			a.styles.Muted.Render(pad(f.Kind.String(), 8)),
			display.JoinList(uses),
		)
		fmt.Fprintln(w, line)

		if withValues && f.Category {
			values := data.CategoryValues(f.Name)
			fmt.Fprintln(w, a.styles.Muted.Render("      "+display.Truncate(display.JoinList(values), 70)))
		}
	}

	if aliases := s.Vocabulary().Aliases; len(aliases) > 0 {
		names := make([]string, 0, len(aliases))
		for alias, field := range aliases {
			names = append(names, alias+" → "+field)
		}
		sort.Strings(names)
		fmt.Fprintln(w, a.styles.Muted.Render("  aliases: "+strings.Join(names, ", ")))
	}
	fmt.Fprintln(w)
	return nil
}
