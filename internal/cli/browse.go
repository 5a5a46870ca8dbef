package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"hr-dashboard/internal/query"
	"hr-dashboard/internal/screen"
	"hr-dashboard/internal/tui"
)

var (
	browseView  string
	browseQuery string
)

var browseCmd = &cobra.Command{
	Use:     "browse [screen]",
	Aliases: []string{"tui"},
	Short:   "Browse a screen interactively",
	Long: `Browse one screen in an interactive table. Search narrows the list as you
type, the filter panel toggles category values and sort cycles through the
sortable fields.

Keyboard shortcuts:
  ↑/k ↓/j   Move
  enter     Record details
  /         Search
  f         Filter panel (←/→ category, space toggles a value)
  s         Next sort field
  r         Reverse sort
  c         Clear search and filters
  R         Reload
  ?         Help
  q         Quit

Examples:
  hrdash browse employees
  hrdash browse tasks --query 'status:pending sort:due'
  hrdash browse employees --view "Engineers"`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(func(a *app) error {
			name := a.cfg.DefaultScreen
			if len(args) > 0 {
				name = args[0]
			}

			s, err := a.registry.Get(name)
			if err != nil {
				return err
			}

			state, err := screen.BuildState(cmd.Context(), s, a.store.Views, screen.StateRequest{
				View:  browseView,
				Query: browseQuery,
			})
			if err != nil {
				return err
			}

			p := tea.NewProgram(tui.NewModel(cmd.Context(), s, state, a.theme), tea.WithAltScreen())
			final, err := p.Run()
			if err != nil {
				return fmt.Errorf("error running browser: %w", err)
			}

			// the last query is printed so it can be saved as a view
			if m, ok := final.(tui.Model); ok {
				if q := query.Format(m.State()); q != "" {
					fmt.Fprintln(cmd.OutOrStdout(), a.styles.Muted.Render("query: "+q))
				}
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(browseCmd)
	browseCmd.Flags().StringVar(&browseView, "view", "", "Start from a saved view")
	browseCmd.Flags().StringVarP(&browseQuery, "query", "q", "", "Initial query")
}
