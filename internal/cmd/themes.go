package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/risksurface/risksurface/internal/tui/styles"
)

var themesCmd = &cobra.Command{
	Use:   "themes",
	Short: "List and manage color themes",
	Long: `List the available color themes.

Custom themes are YAML files in the themes directory (see below). They are
live: saving the file while the tour runs reloads the colors in place.

Examples:
  # List built-in and custom themes
  risksurface themes

  # Print a theme as YAML for copying
  risksurface themes --export midnight

  # Save the active theme under a new name for editing
  risksurface themes --save ocean`,
	RunE: runThemes,
}

var (
	themesExport string
	themesSave   string
)

func init() {
	rootCmd.AddCommand(themesCmd)

	themesCmd.Flags().StringVar(&themesExport, "export", "", "Print the named theme as YAML")
	themesCmd.Flags().StringVar(&themesSave, "save", "", "Save the active theme under this name in the themes directory")
}

func runThemes(cmd *cobra.Command, args []string) error {
	loaded, discoverErrs := styles.DiscoverCustomThemes()

	if themesExport != "" {
		data, err := styles.ExportTheme(styles.ThemeName(themesExport))
		if err != nil {
			return err
		}
		cmd.Print(string(data))
		return nil
	}

	active := viper.GetString("tui.theme")

	if themesSave != "" {
		if styles.IsBuiltinTheme(themesSave) {
			return fmt.Errorf("%q is a built-in theme name; pick another", themesSave)
		}
		theme, err := styles.ThemeFileFor(styles.ThemeName(active))
		if err != nil {
			return err
		}
		// Copy before renaming so a registered custom theme is untouched.
		saved := *theme
		saved.Name = themesSave
		if err := styles.SaveTheme(themesSave, &saved); err != nil {
			return err
		}
		path, _ := styles.ThemeFilePath(themesSave)
		cmd.Printf("Saved %s\n", path)
		return nil
	}

	cmd.Println("Built-in themes:")
	for _, name := range styles.BuiltinThemes() {
		cmd.Println(formatThemeLine(name, active))
	}

	cmd.Printf("\nCustom themes (%s):\n", styles.ThemesDir())
	if len(loaded) == 0 {
		cmd.Println("  (none)")
	}
	for _, name := range loaded {
		cmd.Println(formatThemeLine(name, active))
	}

	for _, err := range discoverErrs {
		cmd.PrintErrf("warning: %v\n", err)
	}
	return nil
}

func formatThemeLine(name, active string) string {
	if name == active {
		return fmt.Sprintf("  %s (active)", name)
	}
	return fmt.Sprintf("  %s", name)
}
