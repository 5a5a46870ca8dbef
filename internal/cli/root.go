package cli

import (
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"hr-dashboard/internal/config"
	"hr-dashboard/internal/theme"
	"hr-dashboard/internal/tui"
)

var (
	configPath string
	dbPath     string
)

var rootCmd = &cobra.Command{
	Use:   "hrdash",
	Short: "HR Dashboard - employees, tasks, teams and attendance from the terminal",
	Long: `HR Dashboard lists, searches, filters and sorts the records behind an HR
team's daily work: employees, tasks, teams, attendance and the activity feed.

Every list accepts the same query language, e.g.

  hrdash list employees --query 'role:employee dept:eng sort:-age ali'`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if configPath != "" {
			config.UseConfigFile(configPath)
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := checkAndRunSetup(cmd.OutOrStdout()); err != nil {
			return err
		}
		displayWelcome(cmd.OutOrStdout())
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default ~/.hrdash/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Database file, overriding db_path from config")
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func displayWelcome(w io.Writer) {
	cfg, err := config.LoadConfig()
	if err != nil {
		cfg = config.GetDefaultConfig()
	}

	styles := theme.NewStyles(theme.Resolve(cfg.ThemeName))

	title := styles.Title.Render(`
		------------------------------------------------------

		              H R   D A S H B O A R D

		------------------------------------------------------
	`)
	subtitle := styles.Subtitle.Render("People, tasks and attendance at a glance")

	fmt.Fprintln(w)
	fmt.Fprintln(w, title)
	fmt.Fprintln(w, subtitle)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'hrdash --help' to see available commands.")
	fmt.Fprintln(w)
}

// runs the theme picker the first time the dashboard is opened
func checkAndRunSetup(w io.Writer) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if cfg.ThemeName != "" {
		return nil
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Welcome to HR Dashboard! Let's set up your theme.")
	fmt.Fprintln(w)

	p := tea.NewProgram(tui.NewSetupModel(""), tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("failed to run setup: %w", err)
	}

	if m, ok := final.(tui.SetupModel); ok && !m.Confirmed() {
		fmt.Fprintln(w, "Setup skipped, using the default theme.")
		return nil
	}

	cfg, err = config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config after setup: %w", err)
	}
	fmt.Fprintf(w, "✓ Theme configured: '%s'\n\n", cfg.ThemeName)
	return nil
}
