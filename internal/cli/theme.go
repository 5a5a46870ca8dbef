package cli

import (
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"hr-dashboard/internal/config"
	"hr-dashboard/internal/theme"
	"hr-dashboard/internal/tui"
)

var themeCmd = &cobra.Command{
	Use:   "theme",
	Short: "Manage the colour theme",
	Long: `Manage the colour theme used by tables and the browser.

Run without arguments to launch the interactive theme picker.

Examples:
  hrdash theme
  hrdash theme set dark
  hrdash theme list
  hrdash theme show`,
	RunE: runThemePicker,
}

var themeSetCmd = &cobra.Command{
	Use:   "set [theme-name]",
	Short: "Set the theme",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return setTheme(cmd.OutOrStdout(), args[0])
	},
}

var themeListCmd = &cobra.Command{
	Use:   "list",
	Short: "List available themes",
	RunE: func(cmd *cobra.Command, args []string) error {
		printThemes(cmd.OutOrStdout(), currentThemeName())
		return nil
	},
}

var themeShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the current theme's palette",
	RunE: func(cmd *cobra.Command, args []string) error {
		printPalette(cmd.OutOrStdout(), theme.Resolve(currentThemeName()))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(themeCmd)
	themeCmd.AddCommand(themeSetCmd, themeListCmd, themeShowCmd)
}

func currentThemeName() string {
	cfg, err := config.LoadConfig()
	if err != nil || cfg.ThemeName == "" {
		return "default"
	}
	return cfg.ThemeName
}

func runThemePicker(cmd *cobra.Command, args []string) error {
	p := tea.NewProgram(tui.NewSetupModel(currentThemeName()), tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("failed to run theme picker: %w", err)
	}

	if m, ok := final.(tui.SetupModel); ok && m.Confirmed() {
		fmt.Fprintf(cmd.OutOrStdout(), "✓ Theme set to '%s'\n", currentThemeName())
	}
	return nil
}

func setTheme(w io.Writer, name string) error {
	if !theme.ThemeExists(name) {
		return fmt.Errorf("%w: '%s'. Run 'hrdash theme list' to see available themes", theme.ErrThemeNotFound, name)
	}

	if err := config.UpdateTheme(name); err != nil {
		return fmt.Errorf("failed to update theme: %w", err)
	}

	fmt.Fprintf(w, "✓ Theme set to '%s'\n", name)
	return nil
}

func printThemes(w io.Writer, current string) {
	styles := theme.NewStyles(theme.Resolve(current))

	fmt.Fprintln(w)
	fmt.Fprintln(w, styles.Header.Render(" Available Themes "))
	fmt.Fprintln(w)

	for _, name := range theme.ListThemes() {
		prefix := "  "
		if name == current {
			prefix = "▶ "
			name = styles.Success.Render(name + " (current)")
		}
		fmt.Fprintf(w, "%s%s\n", prefix, name)
	}
	fmt.Fprintln(w)
}

func printPalette(w io.Writer, t *theme.Theme) {
	styles := theme.NewStyles(t)

	fmt.Fprintln(w)
	fmt.Fprintln(w, styles.Header.Render(fmt.Sprintf(" Current Theme: %s ", t.Name)))
	fmt.Fprintln(w)

	colors := []struct{ name, color string }{
		{"Primary", t.Primary},
		{"Success", t.Success},
		{"Error", t.Error},
		{"Warning", t.Warning},
		{"Text", t.TextPrimary},
		{"Present", t.Present},
		{"Late", t.Late},
		{"Leave", t.Leave},
		{"Absent", t.Absent},
		{"Border", t.BorderColor},
	}

	for _, c := range colors {
		sample := lipgloss.NewStyle().
			Background(lipgloss.Color(c.color)).
			Render("      ")
		fmt.Fprintf(w, "  %-10s %s %s\n", c.name+":", sample, c.color)
	}
	fmt.Fprintln(w)
}
