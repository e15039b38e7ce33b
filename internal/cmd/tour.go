package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/risksurface/risksurface/internal/config"
	"github.com/risksurface/risksurface/internal/errors"
	"github.com/risksurface/risksurface/internal/logging"
	"github.com/risksurface/risksurface/internal/tui"
	"github.com/risksurface/risksurface/internal/tui/styles"
)

var tourCmd = &cobra.Command{
	Use:   "tour",
	Short: "Launch the full-screen product tour",
	Long: `Launch the product tour in the alternate screen.

The tour renders the marketing landing page for the configured content
revision. Tab cycles the focusable controls, enter activates them, 1-9
jump to sections, and s starts the analysis flow. Press q to quit.

Examples:
  # Tour with the current config
  risksurface tour

  # The original RepoAnalyst page, without the cognitive section
  risksurface tour --revision classic

  # A custom theme from ~/.config/risksurface/themes/ocean.yaml,
  # hot-reloaded on save
  risksurface tour --theme ocean

  # Accessibility: no particles, no springs, no spinners
  risksurface tour --reduce-motion

  # Debug what the key handler resolves
  risksurface tour --log-file /tmp/tour.log --log-level debug`,
	RunE: runTour,
}

func init() {
	rootCmd.AddCommand(tourCmd)

	tourCmd.Flags().StringP("revision", "r", "", "Content revision (classic or cognitive)")
	tourCmd.Flags().StringP("theme", "t", "", "Color theme")
	tourCmd.Flags().Bool("reduce-motion", false, "Disable particles, spring scrolling, and spinners")
	tourCmd.Flags().String("log-level", "", "Log level when file logging is on (debug/info/warn/error)")
	tourCmd.Flags().String("log-file", "", "Write JSON logs to this file")

	_ = viper.BindPFlag("tour.revision", tourCmd.Flags().Lookup("revision"))
	_ = viper.BindPFlag("tui.theme", tourCmd.Flags().Lookup("theme"))
	_ = viper.BindPFlag("tui.reduce_motion", tourCmd.Flags().Lookup("reduce-motion"))
	_ = viper.BindPFlag("logging.level", tourCmd.Flags().Lookup("log-level"))
	_ = viper.BindPFlag("logging.file", tourCmd.Flags().Lookup("log-file"))
}

func runTour(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Custom themes have to be discovered before the theme name can be
	// checked. Broken theme files are reported but don't block the tour.
	_, discoverErrs := styles.DiscoverCustomThemes()
	for _, derr := range discoverErrs {
		cmd.PrintErrf("warning: %v\n", derr)
	}

	if !styles.IsValidTheme(cfg.TUI.Theme) {
		return errors.Wrapf(errors.ErrThemeNotFound, "unknown theme %q (valid: %s)",
			cfg.TUI.Theme, strings.Join(styles.ValidThemes(), ", "))
	}

	logger, err := buildLogger(cfg)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer logger.Close()

	app := tui.NewApp(cfg, logger)
	if err := app.Run(); err != nil {
		return fmt.Errorf("tour error: %w", err)
	}
	return nil
}

// buildLogger opens the configured log file, or returns a no-op logger
// when file logging is off. The TUI owns the terminal, so logs never go to
// stdout or stderr.
func buildLogger(cfg *config.Config) (*logging.Logger, error) {
	if !cfg.Logging.Enabled && cfg.Logging.File == "" {
		return logging.NopLogger(), nil
	}
	return logging.NewLogger(cfg.Logging.ResolveLogFile(), cfg.Logging.Level)
}
