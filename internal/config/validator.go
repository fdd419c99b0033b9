package config

import (
	"fmt"
	"slices"
	"strings"
)

// ValidationError represents a single validation failure
type ValidationError struct {
	Field   string // The config field path (e.g., "form.max_title_length")
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

// ValidThemes returns the list of built-in theme names.
// These values must match the palettes in tui/styles (defined
// separately to keep this package free of UI imports).
func ValidThemes() []string {
	return []string{"default", "monokai", "dracula", "nord"}
}

// ValidLogLevels returns the list of valid log levels
func ValidLogLevels() []string {
	return []string{"debug", "info", "warn", "error"}
}

// ValidExportFormats returns the list of valid export formats.
// These values must match the export package's format registry.
func ValidExportFormats() []string {
	return []string{"json", "yaml", "markdown"}
}

// Validate checks the Config for invalid values and returns all validation errors found
func (c *Config) Validate() []ValidationError {
	var errors []ValidationError

	errors = append(errors, c.validateUI()...)
	errors = append(errors, c.validateForm()...)
	errors = append(errors, c.validateLogging()...)
	errors = append(errors, c.validateExport()...)

	return errors
}

// validateUI validates the UIConfig
func (c *Config) validateUI() []ValidationError {
	var errors []ValidationError

	if c.UI.Theme != "" && !slices.Contains(ValidThemes(), c.UI.Theme) {
		errors = append(errors, ValidationError{
			Field:   "ui.theme",
			Value:   c.UI.Theme,
			Message: fmt.Sprintf("must be one of: %s", strings.Join(ValidThemes(), ", ")),
		})
	}

	if c.UI.DateFormat == "" {
		errors = append(errors, ValidationError{
			Field:   "ui.date_format",
			Value:   c.UI.DateFormat,
			Message: "cannot be empty",
		})
	}

	return errors
}

// validateForm validates the FormConfig
func (c *Config) validateForm() []ValidationError {
	var errors []ValidationError

	const maxTitleLimit = 500
	if c.Form.MaxTitleLength < 1 {
		errors = append(errors, ValidationError{
			Field:   "form.max_title_length",
			Value:   c.Form.MaxTitleLength,
			Message: "must be positive",
		})
	}
	if c.Form.MaxTitleLength > maxTitleLimit {
		errors = append(errors, ValidationError{
			Field:   "form.max_title_length",
			Value:   c.Form.MaxTitleLength,
			Message: fmt.Sprintf("exceeds maximum of %d", maxTitleLimit),
		})
	}

	// The description input must be able to hold a description that
	// passes the minimum-length rule. This value must match
	// project.MinDescription (defined separately to keep this package
	// free of domain imports).
	const minDescriptionRule = 5
	const maxDescriptionLimit = 2000
	if c.Form.MaxDescriptionLength < minDescriptionRule {
		errors = append(errors, ValidationError{
			Field:   "form.max_description_length",
			Value:   c.Form.MaxDescriptionLength,
			Message: fmt.Sprintf("must be at least %d so a valid description fits", minDescriptionRule),
		})
	}
	if c.Form.MaxDescriptionLength > maxDescriptionLimit {
		errors = append(errors, ValidationError{
			Field:   "form.max_description_length",
			Value:   c.Form.MaxDescriptionLength,
			Message: fmt.Sprintf("exceeds maximum of %d", maxDescriptionLimit),
		})
	}

	return errors
}

// validateLogging validates the LoggingConfig
func (c *Config) validateLogging() []ValidationError {
	var errors []ValidationError

	if c.Logging.Level != "" && !slices.Contains(ValidLogLevels(), strings.ToLower(c.Logging.Level)) {
		errors = append(errors, ValidationError{
			Field:   "logging.level",
			Value:   c.Logging.Level,
			Message: fmt.Sprintf("must be one of: %s", strings.Join(ValidLogLevels(), ", ")),
		})
	}

	if c.Logging.MaxSizeMB <= 0 {
		errors = append(errors, ValidationError{
			Field:   "logging.max_size_mb",
			Value:   c.Logging.MaxSizeMB,
			Message: "must be positive",
		})
	}

	// Reasonable upper bound for log file size
	const maxLogSizeMB = 1000 // 1GB
	if c.Logging.MaxSizeMB > maxLogSizeMB {
		errors = append(errors, ValidationError{
			Field:   "logging.max_size_mb",
			Value:   c.Logging.MaxSizeMB,
			Message: fmt.Sprintf("exceeds maximum of %dMB", maxLogSizeMB),
		})
	}

	if c.Logging.MaxBackups < 0 {
		errors = append(errors, ValidationError{
			Field:   "logging.max_backups",
			Value:   c.Logging.MaxBackups,
			Message: "must be non-negative",
		})
	}

	return errors
}

// validateExport validates the ExportConfig
func (c *Config) validateExport() []ValidationError {
	var errors []ValidationError

	if c.Export.Format != "" && !slices.Contains(ValidExportFormats(), strings.ToLower(c.Export.Format)) {
		errors = append(errors, ValidationError{
			Field:   "export.format",
			Value:   c.Export.Format,
			Message: fmt.Sprintf("must be one of: %s", strings.Join(ValidExportFormats(), ", ")),
		})
	}

	if c.Export.Dir != "" {
		dir := c.Export.Dir

		// Null bytes are invalid in paths
		if strings.ContainsRune(dir, '\x00') {
			errors = append(errors, ValidationError{
				Field:   "export.dir",
				Value:   dir,
				Message: "path contains invalid null character",
			})
		}

		// Most filesystems cap paths around 4096
		const maxPathLength = 4096
		if len(dir) > maxPathLength {
			errors = append(errors, ValidationError{
				Field:   "export.dir",
				Value:   dir,
				Message: fmt.Sprintf("path exceeds maximum length of %d characters", maxPathLength),
			})
		}
	}

	return errors
}
