package styles

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/risksurface/risksurface/internal/errors"
)

func writeThemeFixture(t *testing.T, dir, name, author string) string {
	t.Helper()
	content := `name: "Ocean"
author: "` + author + `"
version: "1"
colors:
  primary: "#0EA5E9"
  secondary: "#14B8A6"
  warning: "#FBBF24"
  error: "#F87171"
  muted: "#94A3B8"
  surface: "#0C4A6E"
  text: "#F0F9FF"
  border: "#155E75"
`
	path := filepath.Join(dir, name+".yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write theme file: %v", err)
	}
	return path
}

func TestNewWatcherMissingFile(t *testing.T) {
	tmpDir := t.TempDir()
	prev := SetThemesDirFunc(func() string { return tmpDir })
	defer SetThemesDirFunc(prev)

	_, err := NewWatcher("ghost")
	if err == nil {
		t.Fatal("Expected error watching theme with no file, got nil")
	}
	if !errors.Is(err, errors.ErrThemeNotFound) {
		t.Errorf("Expected ErrThemeNotFound, got %v", err)
	}
}

func TestWatcherReload(t *testing.T) {
	tmpDir := t.TempDir()
	prev := SetThemesDirFunc(func() string { return tmpDir })
	defer SetThemesDirFunc(prev)

	path := writeThemeFixture(t, tmpDir, "ocean", "First Author")

	w, err := NewWatcher("ocean")
	if err != nil {
		t.Fatalf("Failed to create watcher: %v", err)
	}

	if w.Theme() != "ocean" {
		t.Errorf("Theme() = %v, want %v", w.Theme(), "ocean")
	}
	if w.Path() != path {
		t.Errorf("Path() = %v, want %v", w.Path(), path)
	}

	reloaded := make(chan *ThemeFile, 1)
	w.SetReloadCallback(func(name ThemeName, theme *ThemeFile) {
		if name != "ocean" {
			t.Errorf("callback theme name = %v, want %v", name, "ocean")
		}
		select {
		case reloaded <- theme:
		default:
		}
	})

	w.Start()
	defer w.Stop()

	// Give the watcher time to start
	time.Sleep(100 * time.Millisecond)

	writeThemeFixture(t, tmpDir, "ocean", "Second Author")

	select {
	case theme := <-reloaded:
		if theme.Author != "Second Author" {
			t.Errorf("reloaded Author = %v, want %v", theme.Author, "Second Author")
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Timed out waiting for reload callback")
	}
}

func TestWatcherReloadError(t *testing.T) {
	tmpDir := t.TempDir()
	prev := SetThemesDirFunc(func() string { return tmpDir })
	defer SetThemesDirFunc(prev)

	path := writeThemeFixture(t, tmpDir, "ocean", "First Author")

	w, err := NewWatcher("ocean")
	if err != nil {
		t.Fatalf("Failed to create watcher: %v", err)
	}

	failed := make(chan error, 1)
	w.SetErrorCallback(func(err error) {
		select {
		case failed <- err:
		default:
		}
	})

	w.Start()
	defer w.Stop()

	time.Sleep(100 * time.Millisecond)

	// Corrupt the file; the reload should surface a validation error
	if err := os.WriteFile(path, []byte("name: \"Broken\"\nversion: \"1\"\ncolors:\n  primary: \"nope\"\n"), 0o644); err != nil {
		t.Fatalf("Failed to corrupt theme file: %v", err)
	}

	select {
	case err := <-failed:
		if !errors.Is(err, errors.ErrThemeInvalid) {
			t.Errorf("Expected ErrThemeInvalid, got %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Timed out waiting for error callback")
	}
}

func TestWatcherIgnoresOtherFiles(t *testing.T) {
	tmpDir := t.TempDir()
	prev := SetThemesDirFunc(func() string { return tmpDir })
	defer SetThemesDirFunc(prev)

	writeThemeFixture(t, tmpDir, "ocean", "First Author")

	w, err := NewWatcher("ocean")
	if err != nil {
		t.Fatalf("Failed to create watcher: %v", err)
	}

	reloaded := make(chan *ThemeFile, 1)
	w.SetReloadCallback(func(_ ThemeName, theme *ThemeFile) {
		select {
		case reloaded <- theme:
		default:
		}
	})

	w.Start()
	defer w.Stop()

	time.Sleep(100 * time.Millisecond)

	// Writes to sibling files in the themes directory must not trigger a reload
	writeThemeFixture(t, tmpDir, "other", "Someone Else")

	select {
	case <-reloaded:
		t.Error("Reload fired for an unrelated file")
	case <-time.After(300 * time.Millisecond):
	}
}
