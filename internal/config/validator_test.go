package config

import (
	"strings"
	"testing"
)

func TestValidationError_Error(t *testing.T) {
	err := ValidationError{
		Field:   "test.field",
		Value:   123,
		Message: "must be greater than zero",
	}

	expected := "test.field: must be greater than zero (got: 123)"
	if err.Error() != expected {
		t.Errorf("Error() = %q, want %q", err.Error(), expected)
	}
}

func TestValidationErrors_Error(t *testing.T) {
	t.Run("empty errors", func(t *testing.T) {
		var errs ValidationErrors
		if errs.Error() != "" {
			t.Errorf("Error() for empty = %q, want empty string", errs.Error())
		}
	})

	t.Run("single error", func(t *testing.T) {
		errs := ValidationErrors{
			{Field: "test.field", Value: 123, Message: "is invalid"},
		}
		expected := "test.field: is invalid (got: 123)"
		if errs.Error() != expected {
			t.Errorf("Error() = %q, want %q", errs.Error(), expected)
		}
	})

	t.Run("multiple errors", func(t *testing.T) {
		errs := ValidationErrors{
			{Field: "field1", Value: "bad", Message: "is invalid"},
			{Field: "field2", Value: -1, Message: "must be positive"},
		}
		result := errs.Error()
		if !strings.Contains(result, "2 validation errors") {
			t.Errorf("Error() should mention 2 errors: %s", result)
		}
		if !strings.Contains(result, "field1") || !strings.Contains(result, "field2") {
			t.Errorf("Error() should mention both fields: %s", result)
		}
	})
}

// hasFieldError reports whether errs contains an error for the given field.
func hasFieldError(errs []ValidationError, field string) bool {
	for _, err := range errs {
		if err.Field == field {
			return true
		}
	}
	return false
}

func TestConfig_Validate_DefaultConfig(t *testing.T) {
	cfg := Default()
	errs := cfg.Validate()
	if len(errs) != 0 {
		t.Errorf("Default config should be valid, got %d errors: %v", len(errs), errs)
	}
}

func TestConfig_Validate_Tour(t *testing.T) {
	tests := []struct {
		name     string
		revision string
		hasError bool
	}{
		{"valid classic", "classic", false},
		{"valid cognitive", "cognitive", false},
		{"empty is valid", "", false},
		{"invalid revision", "modern", true},
		{"case sensitive", "COGNITIVE", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			cfg.Tour.Revision = tt.revision
			errs := cfg.Validate()

			got := hasFieldError(errs, "tour.revision")
			if got != tt.hasError {
				t.Errorf("revision %q: hasError = %v, want %v (errors: %v)", tt.revision, got, tt.hasError, errs)
			}
		})
	}
}

func TestConfig_Validate_TUI(t *testing.T) {
	t.Run("zero content width is valid", func(t *testing.T) {
		cfg := Default()
		cfg.TUI.ContentWidth = 0
		errs := cfg.Validate()

		if hasFieldError(errs, "tui.content_width") {
			t.Error("zero content width should be valid (uses default)")
		}
	})

	t.Run("content width below minimum", func(t *testing.T) {
		cfg := Default()
		cfg.TUI.ContentWidth = 20
		errs := cfg.Validate()

		if !hasFieldError(errs, "tui.content_width") {
			t.Error("expected error for content width below minimum")
		}
	})

	t.Run("content width above maximum", func(t *testing.T) {
		cfg := Default()
		cfg.TUI.ContentWidth = 400
		errs := cfg.Validate()

		if !hasFieldError(errs, "tui.content_width") {
			t.Error("expected error for content width above maximum")
		}
	})

	t.Run("boundary content widths are valid", func(t *testing.T) {
		for _, w := range []int{MinContentWidth, 72, MaxContentWidth} {
			cfg := Default()
			cfg.TUI.ContentWidth = w
			errs := cfg.Validate()

			if hasFieldError(errs, "tui.content_width") {
				t.Errorf("content width %d should be valid", w)
			}
		}
	})

	t.Run("zero frame rate is valid", func(t *testing.T) {
		cfg := Default()
		cfg.TUI.FrameRateMs = 0
		errs := cfg.Validate()

		if hasFieldError(errs, "tui.frame_rate_ms") {
			t.Error("zero frame rate should be valid (uses default)")
		}
	})

	t.Run("frame rate too fast", func(t *testing.T) {
		cfg := Default()
		cfg.TUI.FrameRateMs = 5
		errs := cfg.Validate()

		if !hasFieldError(errs, "tui.frame_rate_ms") {
			t.Error("expected error for frame rate below 16ms")
		}
	})

	t.Run("frame rate too slow", func(t *testing.T) {
		cfg := Default()
		cfg.TUI.FrameRateMs = 5000
		errs := cfg.Validate()

		if !hasFieldError(errs, "tui.frame_rate_ms") {
			t.Error("expected error for frame rate above 1000ms")
		}
	})

	t.Run("theme names are not validated here", func(t *testing.T) {
		cfg := Default()
		cfg.TUI.Theme = "some-custom-theme"
		errs := cfg.Validate()

		if hasFieldError(errs, "tui.theme") {
			t.Error("theme validation belongs to the styles package, not config")
		}
	})
}

func TestConfig_Validate_Logging(t *testing.T) {
	t.Run("valid log levels", func(t *testing.T) {
		for _, level := range []string{"debug", "info", "warn", "error", ""} {
			cfg := Default()
			cfg.Logging.Level = level
			errs := cfg.Validate()

			if hasFieldError(errs, "logging.level") {
				t.Errorf("level %q should be valid", level)
			}
		}
	})

	t.Run("invalid log level", func(t *testing.T) {
		cfg := Default()
		cfg.Logging.Level = "invalid"
		errs := cfg.Validate()

		if !hasFieldError(errs, "logging.level") {
			t.Error("expected error for invalid log level")
		}
	})

	t.Run("case sensitive log level", func(t *testing.T) {
		cfg := Default()
		cfg.Logging.Level = "INFO"
		errs := cfg.Validate()

		if !hasFieldError(errs, "logging.level") {
			t.Error("expected error for uppercase log level")
		}
	})

	t.Run("log file with null byte", func(t *testing.T) {
		cfg := Default()
		cfg.Logging.File = "/tmp/bad\x00path.log"
		errs := cfg.Validate()

		if !hasFieldError(errs, "logging.file") {
			t.Error("expected error for null byte in log file path")
		}
	})

	t.Run("log file too long", func(t *testing.T) {
		cfg := Default()
		cfg.Logging.File = "/" + strings.Repeat("a", 5000)
		errs := cfg.Validate()

		if !hasFieldError(errs, "logging.file") {
			t.Error("expected error for oversized log file path")
		}
	})

	t.Run("empty log file is valid", func(t *testing.T) {
		cfg := Default()
		cfg.Logging.File = ""
		errs := cfg.Validate()

		if hasFieldError(errs, "logging.file") {
			t.Error("empty log file should be valid (resolved lazily)")
		}
	})
}

func TestValidLogLevels(t *testing.T) {
	levels := ValidLogLevels()

	expected := []string{"debug", "info", "warn", "error"}
	if len(levels) != len(expected) {
		t.Fatalf("expected %d levels, got %d", len(expected), len(levels))
	}
	for i, level := range levels {
		if level != expected[i] {
			t.Errorf("ValidLogLevels()[%d] = %q, want %q", i, level, expected[i])
		}
	}
}

func TestConfig_Validate_MultipleErrors(t *testing.T) {
	cfg := Default()
	cfg.Tour.Revision = "modern"
	cfg.TUI.ContentWidth = 10
	cfg.Logging.Level = "loud"

	errs := cfg.Validate()
	if len(errs) != 3 {
		t.Errorf("expected 3 validation errors, got %d: %v", len(errs), errs)
	}
}
