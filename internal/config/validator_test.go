package config

import (
	"strings"
	"testing"
)

// hasFieldError reports whether errs contains an error for field.
func hasFieldError(errs []ValidationError, field string) bool {
	for _, err := range errs {
		if err.Field == field {
			return true
		}
	}
	return false
}

func TestValidationError_Error(t *testing.T) {
	err := ValidationError{
		Field:   "form.max_title_length",
		Value:   -1,
		Message: "must be positive",
	}

	expected := "form.max_title_length: must be positive (got: -1)"
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
			{Field: "ui.theme", Value: "neon", Message: "is invalid"},
		}
		expected := "ui.theme: is invalid (got: neon)"
		if errs.Error() != expected {
			t.Errorf("Error() = %q, want %q", errs.Error(), expected)
		}
	})

	t.Run("multiple errors", func(t *testing.T) {
		errs := ValidationErrors{
			{Field: "ui.theme", Value: "neon", Message: "is invalid"},
			{Field: "logging.max_size_mb", Value: -1, Message: "must be positive"},
		}
		result := errs.Error()
		if !strings.Contains(result, "2 validation errors") {
			t.Errorf("Error() should mention 2 errors: %s", result)
		}
		if !strings.Contains(result, "ui.theme") || !strings.Contains(result, "logging.max_size_mb") {
			t.Errorf("Error() should mention both fields: %s", result)
		}
	})
}

func TestConfig_Validate_DefaultConfig(t *testing.T) {
	cfg := Default()
	errs := cfg.Validate()
	if len(errs) != 0 {
		t.Errorf("Default config should be valid, got %d errors: %v", len(errs), errs)
	}
}

func TestConfig_Validate_UI(t *testing.T) {
	tests := []struct {
		name     string
		theme    string
		hasError bool
	}{
		{"valid default", "default", false},
		{"valid monokai", "monokai", false},
		{"valid dracula", "dracula", false},
		{"valid nord", "nord", false},
		{"empty is valid", "", false},
		{"unknown theme", "neon", true},
		{"case sensitive", "Nord", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			cfg.UI.Theme = tt.theme
			errs := cfg.Validate()

			if got := hasFieldError(errs, "ui.theme"); got != tt.hasError {
				t.Errorf("Validate() for theme=%q: hasError=%v, want %v", tt.theme, got, tt.hasError)
			}
		})
	}

	t.Run("empty date format", func(t *testing.T) {
		cfg := Default()
		cfg.UI.DateFormat = ""
		errs := cfg.Validate()

		if !hasFieldError(errs, "ui.date_format") {
			t.Error("expected error for empty date_format")
		}
	})
}

func TestConfig_Validate_Form(t *testing.T) {
	t.Run("non-positive title length", func(t *testing.T) {
		cfg := Default()
		cfg.Form.MaxTitleLength = 0
		errs := cfg.Validate()

		if !hasFieldError(errs, "form.max_title_length") {
			t.Error("expected error for zero max_title_length")
		}
	})

	t.Run("excessive title length", func(t *testing.T) {
		cfg := Default()
		cfg.Form.MaxTitleLength = 1000
		errs := cfg.Validate()

		if !hasFieldError(errs, "form.max_title_length") {
			t.Error("expected error for excessive max_title_length")
		}
	})

	t.Run("description length below the minimum rule", func(t *testing.T) {
		cfg := Default()
		cfg.Form.MaxDescriptionLength = 4
		errs := cfg.Validate()

		if !hasFieldError(errs, "form.max_description_length") {
			t.Error("expected error when a valid description cannot fit")
		}
	})

	t.Run("description length at the minimum rule is valid", func(t *testing.T) {
		cfg := Default()
		cfg.Form.MaxDescriptionLength = 5
		errs := cfg.Validate()

		if hasFieldError(errs, "form.max_description_length") {
			t.Error("max_description_length of 5 should be valid")
		}
	})

	t.Run("excessive description length", func(t *testing.T) {
		cfg := Default()
		cfg.Form.MaxDescriptionLength = 5000
		errs := cfg.Validate()

		if !hasFieldError(errs, "form.max_description_length") {
			t.Error("expected error for excessive max_description_length")
		}
	})
}

func TestConfig_Validate_Logging(t *testing.T) {
	tests := []struct {
		name     string
		level    string
		hasError bool
	}{
		{"valid debug", "debug", false},
		{"valid info", "info", false},
		{"valid warn", "warn", false},
		{"valid error", "error", false},
		{"uppercase accepted", "INFO", false},
		{"empty is valid", "", false},
		{"invalid level", "verbose", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			cfg.Logging.Level = tt.level
			errs := cfg.Validate()

			if got := hasFieldError(errs, "logging.level"); got != tt.hasError {
				t.Errorf("Validate() for level=%q: hasError=%v, want %v", tt.level, got, tt.hasError)
			}
		})
	}

	t.Run("non-positive max size", func(t *testing.T) {
		cfg := Default()
		cfg.Logging.MaxSizeMB = 0
		errs := cfg.Validate()

		if !hasFieldError(errs, "logging.max_size_mb") {
			t.Error("expected error for zero max_size_mb")
		}
	})

	t.Run("excessive max size", func(t *testing.T) {
		cfg := Default()
		cfg.Logging.MaxSizeMB = 2000
		errs := cfg.Validate()

		if !hasFieldError(errs, "logging.max_size_mb") {
			t.Error("expected error for excessive max_size_mb")
		}
	})

	t.Run("negative max backups", func(t *testing.T) {
		cfg := Default()
		cfg.Logging.MaxBackups = -1
		errs := cfg.Validate()

		if !hasFieldError(errs, "logging.max_backups") {
			t.Error("expected error for negative max_backups")
		}
	})

	t.Run("zero max backups is valid", func(t *testing.T) {
		cfg := Default()
		cfg.Logging.MaxBackups = 0
		errs := cfg.Validate()

		if hasFieldError(errs, "logging.max_backups") {
			t.Error("zero max_backups should be valid")
		}
	})
}

func TestConfig_Validate_Export(t *testing.T) {
	tests := []struct {
		name     string
		format   string
		hasError bool
	}{
		{"valid json", "json", false},
		{"valid yaml", "yaml", false},
		{"valid markdown", "markdown", false},
		{"uppercase accepted", "JSON", false},
		{"empty is valid", "", false},
		{"alias rejected", "yml", true},
		{"unknown format", "xml", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			cfg.Export.Format = tt.format
			errs := cfg.Validate()

			if got := hasFieldError(errs, "export.format"); got != tt.hasError {
				t.Errorf("Validate() for format=%q: hasError=%v, want %v", tt.format, got, tt.hasError)
			}
		})
	}

	t.Run("dir with null byte", func(t *testing.T) {
		cfg := Default()
		cfg.Export.Dir = "bad\x00path"
		errs := cfg.Validate()

		if !hasFieldError(errs, "export.dir") {
			t.Error("expected error for path with null byte")
		}
	})

	t.Run("overlong dir", func(t *testing.T) {
		cfg := Default()
		cfg.Export.Dir = strings.Repeat("a", 5000)
		errs := cfg.Validate()

		if !hasFieldError(errs, "export.dir") {
			t.Error("expected error for overlong path")
		}
	})
}

func TestValidThemes(t *testing.T) {
	themes := ValidThemes()

	expected := []string{"default", "monokai", "dracula", "nord"}
	if len(themes) != len(expected) {
		t.Fatalf("ValidThemes() length = %d, want %d", len(themes), len(expected))
	}
	for i, theme := range expected {
		if themes[i] != theme {
			t.Errorf("ValidThemes()[%d] = %q, want %q", i, themes[i], theme)
		}
	}
}
