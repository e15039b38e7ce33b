package config

import (
	"fmt"
	"slices"
	"strings"
)

// ValidationError represents a single validation failure
type ValidationError struct {
	Field   string // The config field path (e.g., "tui.content_width")
	Value   any    // The invalid value
	Message string // Human-readable error description
}

// Error implements the error interface for ValidationError
func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s (got: %v)", e.Field, e.Message, e.Value)
}

// ValidationErrors is a collection of validation errors
type ValidationErrors []ValidationError

// Error implements the error interface for ValidationErrors
func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return ""
	}
	if len(e) == 1 {
		return e[0].Error()
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%d validation errors:\n", len(e)))
	for i, err := range e {
		sb.WriteString(fmt.Sprintf("  %d. %s\n", i+1, err.Error()))
	}
	return sb.String()
}

// ValidLogLevels returns the list of valid log levels
func ValidLogLevels() []string {
	return []string{"debug", "info", "warn", "error"}
}

// Content column bounds. Narrower than 40 columns wraps the methodology
// cards unreadably; wider than 160 defeats the centered-column layout.
const (
	MinContentWidth = 40
	MaxContentWidth = 160
)

// Frame interval bounds in milliseconds.
const (
	minFrameRateMs = 16   // ~60 FPS
	maxFrameRateMs = 1000 // 1 FPS floor for animation
)

// Validate checks the Config for invalid values and returns all validation errors found
func (c *Config) Validate() []ValidationError {
	var errors []ValidationError

	errors = append(errors, c.validateTour()...)
	errors = append(errors, c.validateTUI()...)
	errors = append(errors, c.validateLogging()...)

	return errors
}

// validateTour validates the TourConfig
func (c *Config) validateTour() []ValidationError {
	var errors []ValidationError

	if c.Tour.Revision != "" && !IsValidRevision(c.Tour.Revision) {
		errors = append(errors, ValidationError{
			Field:   "tour.revision",
			Value:   c.Tour.Revision,
			Message: fmt.Sprintf("must be one of: %s", strings.Join(ValidRevisions(), ", ")),
		})
	}

	return errors
}

// validateTUI validates the TUIConfig.
// Theme names are not validated here; the styles package owns the theme
// registry (built-in plus discovered custom themes) and rejects unknown
// names at activation time.
func (c *Config) validateTUI() []ValidationError {
	var errors []ValidationError

	// Content width validation (0 means use default, which is valid)
	if c.TUI.ContentWidth != 0 {
		if c.TUI.ContentWidth < MinContentWidth {
			errors = append(errors, ValidationError{
				Field:   "tui.content_width",
				Value:   c.TUI.ContentWidth,
				Message: fmt.Sprintf("must be at least %d columns", MinContentWidth),
			})
		}
		if c.TUI.ContentWidth > MaxContentWidth {
			errors = append(errors, ValidationError{
				Field:   "tui.content_width",
				Value:   c.TUI.ContentWidth,
				Message: fmt.Sprintf("exceeds maximum of %d columns", MaxContentWidth),
			})
		}
	}

	// Frame rate validation (0 means use default, which is valid)
	if c.TUI.FrameRateMs != 0 {
		if c.TUI.FrameRateMs < minFrameRateMs {
			errors = append(errors, ValidationError{
				Field:   "tui.frame_rate_ms",
				Value:   c.TUI.FrameRateMs,
				Message: fmt.Sprintf("must be at least %dms", minFrameRateMs),
			})
		}
		if c.TUI.FrameRateMs > maxFrameRateMs {
			errors = append(errors, ValidationError{
				Field:   "tui.frame_rate_ms",
				Value:   c.TUI.FrameRateMs,
				Message: fmt.Sprintf("exceeds maximum of %dms", maxFrameRateMs),
			})
		}
	}

	return errors
}

// validateLogging validates the LoggingConfig
func (c *Config) validateLogging() []ValidationError {
	var errors []ValidationError

	// Validate log level
	if c.Logging.Level != "" && !slices.Contains(ValidLogLevels(), c.Logging.Level) {
		errors = append(errors, ValidationError{
			Field:   "logging.level",
			Value:   c.Logging.Level,
			Message: fmt.Sprintf("must be one of: %s", strings.Join(ValidLogLevels(), ", ")),
		})
	}

	// Log file path validation - if set, check for invalid characters
	if c.Logging.File != "" {
		path := c.Logging.File

		// Check for null bytes which are invalid in paths
		if strings.ContainsRune(path, '\x00') {
			errors = append(errors, ValidationError{
				Field:   "logging.file",
				Value:   path,
				Message: "path contains invalid null character",
			})
		}

		// Reasonable path length limit (most filesystems have limits around 4096)
		const maxPathLength = 4096
		if len(path) > maxPathLength {
			errors = append(errors, ValidationError{
				Field:   "logging.file",
				Value:   path,
				Message: fmt.Sprintf("path exceeds maximum length of %d characters", maxPathLength),
			})
		}
	}

	return errors
}
