package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg == nil {
		t.Fatal("Default() returned nil")
	}

	if cfg.Tour.Revision != "cognitive" {
		t.Errorf("Tour.Revision = %q, want %q", cfg.Tour.Revision, "cognitive")
	}
	if cfg.TUI.Theme != "default" {
		t.Errorf("TUI.Theme = %q, want %q", cfg.TUI.Theme, "default")
	}
	if cfg.TUI.ReduceMotion {
		t.Error("TUI.ReduceMotion should be false by default")
	}
	if cfg.TUI.ContentWidth != 72 {
		t.Errorf("TUI.ContentWidth = %d, want 72", cfg.TUI.ContentWidth)
	}
	if cfg.TUI.FrameRateMs != 100 {
		t.Errorf("TUI.FrameRateMs = %d, want 100", cfg.TUI.FrameRateMs)
	}
	if cfg.Logging.Enabled {
		t.Error("Logging.Enabled should be false by default")
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("Logging.Level = %q, want %q", cfg.Logging.Level, "info")
	}
	if cfg.Logging.File != "" {
		t.Errorf("Logging.File = %q, want empty (resolved lazily)", cfg.Logging.File)
	}
}

func TestTUIConfig_FrameRate(t *testing.T) {
	tests := []struct {
		ms   int
		want time.Duration
	}{
		{100, 100 * time.Millisecond},
		{16, 16 * time.Millisecond},
		{1000, time.Second},
	}

	for _, tt := range tests {
		cfg := TUIConfig{FrameRateMs: tt.ms}
		if got := cfg.FrameRate(); got != tt.want {
			t.Errorf("FrameRate() with %dms = %v, want %v", tt.ms, got, tt.want)
		}
	}
}

func TestLoggingConfig_ResolveLogFile(t *testing.T) {
	t.Run("empty defaults to config dir", func(t *testing.T) {
		cfg := LoggingConfig{File: ""}
		got := cfg.ResolveLogFile()
		want := filepath.Join(ConfigDir(), "risksurface.log")
		if got != want {
			t.Errorf("ResolveLogFile() = %q, want %q", got, want)
		}
	})

	t.Run("absolute path passes through", func(t *testing.T) {
		cfg := LoggingConfig{File: "/var/log/risksurface.log"}
		if got := cfg.ResolveLogFile(); got != "/var/log/risksurface.log" {
			t.Errorf("ResolveLogFile() = %q", got)
		}
	})

	t.Run("tilde expands to home", func(t *testing.T) {
		home, err := os.UserHomeDir()
		if err != nil {
			t.Skip("no home directory available")
		}

		cfg := LoggingConfig{File: "~/logs/rs.log"}
		got := cfg.ResolveLogFile()
		want := filepath.Join(home, "logs", "rs.log")
		if got != want {
			t.Errorf("ResolveLogFile() = %q, want %q", got, want)
		}
	})
}

func TestValidRevisions(t *testing.T) {
	revisions := ValidRevisions()

	expected := []string{"classic", "cognitive"}
	if len(revisions) != len(expected) {
		t.Fatalf("expected %d revisions, got %d", len(expected), len(revisions))
	}
	for i, r := range revisions {
		if r != expected[i] {
			t.Errorf("ValidRevisions()[%d] = %q, want %q", i, r, expected[i])
		}
	}
}

func TestIsValidRevision(t *testing.T) {
	tests := []struct {
		revision string
		want     bool
	}{
		{"classic", true},
		{"cognitive", true},
		{"", false},
		{"modern", false},
		{"Classic", false}, // case sensitive
	}

	for _, tt := range tests {
		if got := IsValidRevision(tt.revision); got != tt.want {
			t.Errorf("IsValidRevision(%q) = %v, want %v", tt.revision, got, tt.want)
		}
	}
}

func TestConfigDir(t *testing.T) {
	t.Run("respects XDG_CONFIG_HOME", func(t *testing.T) {
		t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg-test")

		dir := ConfigDir()
		want := filepath.Join("/tmp/xdg-test", "risksurface")
		if dir != want {
			t.Errorf("ConfigDir() = %q, want %q", dir, want)
		}
	})

	t.Run("falls back to home config", func(t *testing.T) {
		t.Setenv("XDG_CONFIG_HOME", "")

		dir := ConfigDir()
		if !strings.HasSuffix(dir, filepath.Join(".config", "risksurface")) && dir != ".risksurface" {
			t.Errorf("ConfigDir() = %q, want ~/.config/risksurface suffix", dir)
		}
	})
}

func TestConfigFile(t *testing.T) {
	file := ConfigFile()
	if filepath.Base(file) != "config.yaml" {
		t.Errorf("ConfigFile() = %q, want config.yaml basename", file)
	}
	if filepath.Dir(file) != ConfigDir() {
		t.Errorf("ConfigFile() dir = %q, want %q", filepath.Dir(file), ConfigDir())
	}
}

func TestGet(t *testing.T) {
	// Get should never return nil, even without viper initialization
	cfg := Get()
	if cfg == nil {
		t.Fatal("Get() returned nil")
	}
}
