package cmd

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/risksurface/risksurface/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "risksurface",
	Short: "Terminal tour of the RiskSurface repository risk analyzer",
	Long: `RiskSurface presents the product tour for a repository risk analyzer
as a full-screen terminal app: a marketing landing page with an ambient
particle field, spring-animated section navigation, and a projects view
wired behind every "start analysis" control.`,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringP("config", "c", "", "config file (default is $HOME/.config/risksurface/config.yaml)")
	_ = viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))
}

func initConfig() {
	// Set defaults first so they're available even without a config file
	config.SetDefaults()

	if cfgFile := viper.GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(config.ConfigDir())
		viper.AddConfigPath("$HOME/.config/risksurface")
		viper.AddConfigPath(".")
	}

	viper.AutomaticEnv()
	viper.SetEnvPrefix("RISKSURFACE")
	// Replace dots with underscores for nested keys in env vars
	// e.g., RISKSURFACE_TUI_REDUCE_MOTION for tui.reduce_motion
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Read config file if it exists (ignore error if not found)
	_ = viper.ReadInConfig()
}
