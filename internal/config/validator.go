package config

import (
	"fmt"
	"slices"
	"strings"

	"github.com/Iron-Ham/mobilepane/internal/logging"
	"github.com/Iron-Ham/mobilepane/internal/pane"
)

// ValidationError represents a single validation failure
type ValidationError struct {
	Field   string // The config field path (e.g., "tui.default_width")
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

// Viewport width bounds for tui.default_width
const (
	MinDefaultWidth = 20
	MaxDefaultWidth = 1000
)

// Validate checks the Config for invalid values and returns all validation errors found
func (c *Config) Validate() []ValidationError {
	var errors []ValidationError

	errors = append(errors, c.validateTUI()...)
	errors = append(errors, c.validateLogging()...)

	return errors
}

// validateTUI validates the TUIConfig
func (c *Config) validateTUI() []ValidationError {
	var errors []ValidationError

	if c.TUI.DefaultWidth < MinDefaultWidth {
		errors = append(errors, ValidationError{
			Field:   "tui.default_width",
			Value:   c.TUI.DefaultWidth,
			Message: fmt.Sprintf("must be at least %d columns", MinDefaultWidth),
		})
	}
	if c.TUI.DefaultWidth > MaxDefaultWidth {
		errors = append(errors, ValidationError{
			Field:   "tui.default_width",
			Value:   c.TUI.DefaultWidth,
			Message: fmt.Sprintf("exceeds maximum of %d columns", MaxDefaultWidth),
		})
	}

	// Empty means the default (home)
	if c.TUI.StartPane != "" {
		if _, err := pane.Parse(c.TUI.StartPane); err != nil {
			errors = append(errors, ValidationError{
				Field:   "tui.start_pane",
				Value:   c.TUI.StartPane,
				Message: "must be one of: home, navigation, settings",
			})
		}
	}

	return errors
}

// validateLogging validates the LoggingConfig
func (c *Config) validateLogging() []ValidationError {
	var errors []ValidationError

	levels := logging.ValidLevels()
	if c.Logging.Level != "" && !slices.Contains(levels, strings.ToUpper(c.Logging.Level)) {
		errors = append(errors, ValidationError{
			Field:   "logging.level",
			Value:   c.Logging.Level,
			Message: fmt.Sprintf("must be one of: %s", strings.ToLower(strings.Join(levels, ", "))),
		})
	}

	return errors
}
