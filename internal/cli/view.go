package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"hr-dashboard/internal/domain"
	"hr-dashboard/internal/query"
	"hr-dashboard/internal/screen"
)

var (
	viewDescription string
	viewDefault     bool
	viewReplace     bool
	viewFrom        string
	viewQuery       string
	viewSearch      string
	viewFilters     []string
	viewSort        string
)

var viewCmd = &cobra.Command{
	Use:   "view",
	Short: "Manage saved views",
	Long: `Manage saved views: named searches, filters and sort orders for one screen.

A screen's default view is applied whenever the screen is listed without
any query of its own.`,
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

var viewSaveCmd = &cobra.Command{
	Use:   "save [screen] [name]",
	Short: "Save a query as a named view",
	Long: `Save a query as a named view of a screen.

Examples:
  hrdash view save employees "Engineers" --filter dept:eng --sort name
  hrdash view save tasks "Overdue" --query 'due:overdue sort:-priority' --default
  hrdash view save employees "Senior engineers" --from "Engineers" --filter bracket:senior`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		req := screen.StateRequest{
			View:    viewFrom,
			Query:   viewQuery,
			Search:  viewSearch,
			Filters: viewFilters,
			Sort:    viewSort,
		}
		return withApp(func(a *app) error {
			opts := saveOptions{Description: viewDescription, Default: viewDefault, Replace: viewReplace}
			return a.saveView(cmd.Context(), cmd.OutOrStdout(), args[0], args[1], req, opts)
		})
	},
}

var viewListCmd = &cobra.Command{
	Use:   "list [screen]",
	Short: "List saved views",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(func(a *app) error {
			screens := a.registry.All()
			if len(args) > 0 {
				s, err := a.registry.Get(args[0])
				if err != nil {
					return err
				}
				screens = []screen.Screen{s}
			}
			return a.listViews(cmd.Context(), cmd.OutOrStdout(), screens)
		})
	},
}

var viewShowCmd = &cobra.Command{
	Use:   "show [screen] [name]",
	Short: "Show a saved view",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(func(a *app) error {
			return a.showView(cmd.Context(), cmd.OutOrStdout(), args[0], args[1])
		})
	},
}

var viewDeleteCmd = &cobra.Command{
	Use:     "delete [screen] [name]",
	Aliases: []string{"rm"},
	Short:   "Delete a saved view",
	Args:    cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(func(a *app) error {
			s, err := a.registry.Get(args[0])
			if err != nil {
				return err
			}
			if err := a.store.Views.Delete(cmd.Context(), s.Name(), args[1]); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), a.styles.Success.Render(fmt.Sprintf("✓ View '%s' deleted", args[1])))
			return nil
		})
	},
}

var viewDefaultCmd = &cobra.Command{
	Use:   "default [screen] [name]",
	Short: "Make a saved view the screen's default",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(func(a *app) error {
			s, err := a.registry.Get(args[0])
			if err != nil {
				return err
			}
			if err := a.store.Views.SetDefault(cmd.Context(), s.Name(), args[1]); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), a.styles.Success.Render(fmt.Sprintf("✓ '%s' is now the default %s view", args[1], s.Name())))
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(viewCmd)
	viewCmd.AddCommand(viewSaveCmd, viewListCmd, viewShowCmd, viewDeleteCmd, viewDefaultCmd)

	viewSaveCmd.Flags().StringVarP(&viewDescription, "description", "d", "", "View description")
	viewSaveCmd.Flags().BoolVar(&viewDefault, "default", false, "Make this the screen's default view")
	viewSaveCmd.Flags().BoolVar(&viewReplace, "replace", false, "Replace a view of the same name")
	viewSaveCmd.Flags().StringVar(&viewFrom, "from", "", "Start from another saved view")
	viewSaveCmd.Flags().StringVarP(&viewQuery, "query", "q", "", "Query string")
	viewSaveCmd.Flags().StringVarP(&viewSearch, "search", "s", "", "Search term")
	viewSaveCmd.Flags().StringArrayVarP(&viewFilters, "filter", "f", nil, "Filter as category:value (repeatable)")
	viewSaveCmd.Flags().StringVar(&viewSort, "sort", "", "Sort field; prefix with - for descending")
}

type saveOptions struct {
	Description string
	Default     bool
	Replace     bool
}

func (a *app) saveView(ctx context.Context, w io.Writer, screenName, name string, req screen.StateRequest, opts saveOptions) error {
	s, err := a.registry.Get(screenName)
	if err != nil {
		return err
	}

	state, err := screen.BuildState(ctx, s, a.store.Views, req)
	if err != nil {
		return err
	}

	view := domain.NewSavedView(s.Name(), name, state)
	view.Description = opts.Description
	view.IsDefault = opts.Default

	err = a.store.Views.Create(ctx, view)
	if errors.Is(err, domain.ErrAlreadyExists) && opts.Replace {
		existing, getErr := a.store.Views.GetByName(ctx, s.Name(), name)
		if getErr != nil {
			return getErr
		}
		view.ID = existing.ID
		view.CreatedAt = existing.CreatedAt
		err = a.store.Views.Update(ctx, view)
		if err == nil && view.IsDefault {
			err = a.store.Views.SetDefault(ctx, s.Name(), name)
		}
	}
	if err != nil {
		if errors.Is(err, domain.ErrAlreadyExists) {
			return fmt.Errorf("%w (use --replace to overwrite it)", err)
		}
		return err
	}

	fmt.Fprintln(w, a.styles.Success.Render(fmt.Sprintf("✓ View '%s' saved for %s", name, s.Name())))
	if q := query.Format(state); q != "" {
		fmt.Fprintln(w, a.styles.Muted.Render("  query: "+q))
	}
	return nil
}

func (a *app) listViews(ctx context.Context, w io.Writer, screens []screen.Screen) error {
	found := 0
	for _, s := range screens {
		views, err := a.store.Views.ListByScreen(ctx, s.Name())
		if err != nil {
			return fmt.Errorf("failed to list %s views: %w", s.Name(), err)
		}
		if len(views) == 0 {
			continue
		}

		fmt.Fprintln(w, a.styles.Header.Render(s.Title()))
		for _, v := range views {
			found++
			fmt.Fprintf(w, "  %s %s  %s\n",
				pad(v.GetDefaultIndicator(), 1),
				a.styles.DetailKey.Render(pad(v.Name, 24)),
				a.styles.Muted.Render(v.GetFilterSummary()),
			)
		}
		fmt.Fprintln(w)
	}

	if found == 0 {
		fmt.Fprintln(w, a.styles.Muted.Render("No saved views. Create one with 'hrdash view save'."))
	}
	return nil
}

func (a *app) showView(ctx context.Context, w io.Writer, screenName, name string) error {
	s, err := a.registry.Get(screenName)
	if err != nil {
		return err
	}

	v, err := a.store.Views.GetByName(ctx, s.Name(), name)
	if err != nil {
		return err
	}

	fmt.Fprintln(w, a.styles.Title.Render(v.Name+" "+v.GetDefaultIndicator()))
	detail := func(key, value string) {
		if value == "" {
			value = "-"
		}
		fmt.Fprintf(w, "  %s %s\n", a.styles.DetailKey.Render(pad(key+":", 13)), a.styles.DetailText.Render(value))
	}
	detail("Screen", s.Name())
	detail("Description", v.Description)
	detail("Filters", v.GetFilterSummary())
	detail("Query", query.Format(v.QueryState()))
	detail("Updated", v.UpdatedAt.Format("2006-01-02 15:04"))
	fmt.Fprintln(w)
	return nil
}
