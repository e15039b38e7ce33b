package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config represents the complete risksurface configuration
type Config struct {
	Tour    TourConfig    `mapstructure:"tour"`
	TUI     TUIConfig     `mapstructure:"tui"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// TourConfig controls which authored content the tour presents
type TourConfig struct {
	// Revision selects the content revision to render
	// Options: "classic" (RepoAnalyst branding), "cognitive" (RiskSurface
	// branding plus the Cognitive Layer section)
	Revision string `mapstructure:"revision"`
}

// TUIConfig controls the terminal UI behavior
type TUIConfig struct {
	// Theme is the color theme for the TUI (default: "default")
	// Options: built-in theme names plus any custom theme discovered in
	// the themes directory
	Theme string `mapstructure:"theme"`
	// ReduceMotion freezes the decoration field, disables spring scrolling,
	// and stops spinners (default: false)
	ReduceMotion bool `mapstructure:"reduce_motion"`
	// ContentWidth is the width of the centered content column in columns
	// (default: 72, min: 40, max: 160). The decoration field renders in the
	// gutters on either side.
	ContentWidth int `mapstructure:"content_width"`
	// FrameRateMs is the animation frame interval in milliseconds (default: 100)
	FrameRateMs int `mapstructure:"frame_rate_ms"`
}

// LoggingConfig controls debug logging behavior
type LoggingConfig struct {
	// Enabled controls whether debug logging is enabled (default: false).
	// The TUI owns the terminal, so logs only ever go to a file.
	Enabled bool `mapstructure:"enabled"`
	// Level is the log level: "debug", "info", "warn", "error" (default: "info")
	Level string `mapstructure:"level"`
	// File is the log file path. Empty means <config dir>/risksurface.log.
	// Supports ~ for home directory expansion.
	File string `mapstructure:"file"`
}

// ResolveLogFile returns the resolved log file path.
// If File is empty, it returns the default path under the config directory.
// If File starts with ~, it expands to the user's home directory.
func (l *LoggingConfig) ResolveLogFile() string {
	if l.File == "" {
		return filepath.Join(ConfigDir(), "risksurface.log")
	}

	path := l.File

	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err == nil {
			path = filepath.Join(home, path[2:])
		}
	} else if path == "~" {
		home, err := os.UserHomeDir()
		if err == nil {
			path = home
		}
	}

	return path
}

// Default returns a Config with sensible default values
func Default() *Config {
	return &Config{
		Tour: TourConfig{
			Revision: "cognitive",
		},
		TUI: TUIConfig{
			Theme:        "default",
			ReduceMotion: false,
			ContentWidth: 72,
			FrameRateMs:  100,
		},
		Logging: LoggingConfig{
			Enabled: false,
			Level:   "info",
			File:    "", // Empty means use default: <config dir>/risksurface.log
		},
	}
}

// FrameRate returns the frame interval as a time.Duration
func (t *TUIConfig) FrameRate() time.Duration {
	return time.Duration(t.FrameRateMs) * time.Millisecond
}

// SetDefaults registers default values with viper
func SetDefaults() {
	defaults := Default()

	// Tour defaults
	viper.SetDefault("tour.revision", defaults.Tour.Revision)

	// TUI defaults
	viper.SetDefault("tui.theme", defaults.TUI.Theme)
	viper.SetDefault("tui.reduce_motion", defaults.TUI.ReduceMotion)
	viper.SetDefault("tui.content_width", defaults.TUI.ContentWidth)
	viper.SetDefault("tui.frame_rate_ms", defaults.TUI.FrameRateMs)

	// Logging defaults
	viper.SetDefault("logging.enabled", defaults.Logging.Enabled)
	viper.SetDefault("logging.level", defaults.Logging.Level)
	viper.SetDefault("logging.file", defaults.Logging.File)
}

// Load reads the configuration from viper into a Config struct and validates it
func Load() (*Config, error) {
	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	// Validate the configuration
	if errs := cfg.Validate(); len(errs) > 0 {
		return nil, ValidationErrors(errs)
	}

	return &cfg, nil
}

// Get returns the current configuration (convenience function)
func Get() *Config {
	cfg, err := Load()
	if err != nil {
		// Fall back to defaults if unmarshaling fails
		return Default()
	}
	return cfg
}

// ConfigDir returns the path to the user's config directory
func ConfigDir() string {
	// Check XDG_CONFIG_HOME first
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "risksurface")
	}
	// Fall back to ~/.config/risksurface
	home, err := os.UserHomeDir()
	if err != nil {
		return ".risksurface"
	}
	return filepath.Join(home, ".config", "risksurface")
}

// ConfigFile returns the path to the config file
func ConfigFile() string {
	return filepath.Join(ConfigDir(), "config.yaml")
}

// ValidRevisions returns the list of valid content revision values
func ValidRevisions() []string {
	return []string{"classic", "cognitive"}
}

// IsValidRevision checks if the given revision is valid
func IsValidRevision(revision string) bool {
	for _, valid := range ValidRevisions() {
		if revision == valid {
			return true
		}
	}
	return false
}
