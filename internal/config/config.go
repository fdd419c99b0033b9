package config

import (
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config represents the complete boardwalk configuration
type Config struct {
	UI      UIConfig      `mapstructure:"ui"`
	Form    FormConfig    `mapstructure:"form"`
	Logging LoggingConfig `mapstructure:"logging"`
	Export  ExportConfig  `mapstructure:"export"`
}

// UIConfig controls the terminal UI behavior
type UIConfig struct {
	// Theme is the color theme for the board (default: "default")
	// Options: "default", "monokai", "dracula", "nord"
	Theme string `mapstructure:"theme"`
	// ShowHelpBar shows the key help bar at the bottom of the screen (default: true)
	ShowHelpBar bool `mapstructure:"show_help_bar"`
	// DateFormat is the Go time layout used to render project creation times
	DateFormat string `mapstructure:"date_format"`
}

// FormConfig controls the intake form inputs
type FormConfig struct {
	// MaxTitleLength caps how many characters the title input accepts (default: 60)
	MaxTitleLength int `mapstructure:"max_title_length"`
	// MaxDescriptionLength caps how many characters the description input accepts (default: 200)
	MaxDescriptionLength int `mapstructure:"max_description_length"`
}

// LoggingConfig controls debug logging behavior
type LoggingConfig struct {
	// Enabled controls whether debug logging is enabled (default: true)
	Enabled bool `mapstructure:"enabled"`
	// Level is the log level: "debug", "info", "warn", "error" (default: "info")
	Level string `mapstructure:"level"`
	// MaxSizeMB is the maximum log file size in megabytes before rotation (default: 10)
	MaxSizeMB int `mapstructure:"max_size_mb"`
	// MaxBackups is the number of backup log files to keep (default: 3)
	MaxBackups int `mapstructure:"max_backups"`
	// Compress gzips rotated log files (default: false)
	Compress bool `mapstructure:"compress"`
}

// ExportConfig controls board exports
type ExportConfig struct {
	// Format is the default export format: "json", "yaml", or "markdown" (default: "json")
	Format string `mapstructure:"format"`
	// Dir is the directory exports are written to.
	// Empty means the current working directory.
	Dir string `mapstructure:"dir"`
}

// Default returns a Config with sensible default values
func Default() *Config {
	return &Config{
		UI: UIConfig{
			Theme:       "default",
			ShowHelpBar: true,
			DateFormat:  "2006-01-02 15:04",
		},
		Form: FormConfig{
			MaxTitleLength:       60,
			MaxDescriptionLength: 200,
		},
		Logging: LoggingConfig{
			Enabled:    true,
			Level:      "info",
			MaxSizeMB:  10,
			MaxBackups: 3,
			Compress:   false,
		},
		Export: ExportConfig{
			Format: "json",
			Dir:    "", // Empty means current working directory
		},
	}
}

// SetDefaults registers default values with viper
func SetDefaults() {
	defaults := Default()

	// UI defaults
	viper.SetDefault("ui.theme", defaults.UI.Theme)
	viper.SetDefault("ui.show_help_bar", defaults.UI.ShowHelpBar)
	viper.SetDefault("ui.date_format", defaults.UI.DateFormat)

	// Form defaults
	viper.SetDefault("form.max_title_length", defaults.Form.MaxTitleLength)
	viper.SetDefault("form.max_description_length", defaults.Form.MaxDescriptionLength)

	// Logging defaults
	viper.SetDefault("logging.enabled", defaults.Logging.Enabled)
	viper.SetDefault("logging.level", defaults.Logging.Level)
	viper.SetDefault("logging.max_size_mb", defaults.Logging.MaxSizeMB)
	viper.SetDefault("logging.max_backups", defaults.Logging.MaxBackups)
	viper.SetDefault("logging.compress", defaults.Logging.Compress)

	// Export defaults
	viper.SetDefault("export.format", defaults.Export.Format)
	viper.SetDefault("export.dir", defaults.Export.Dir)
}

// Load reads the configuration from viper into a Config struct and validates it
func Load() (*Config, error) {
	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if errs := cfg.Validate(); len(errs) > 0 {
		return nil, ValidationErrors(errs)
	}

	return &cfg, nil
}

// Reload re-reads the config file before unmarshaling, so edits made
// while the app is running are picked up.
func Reload() (*Config, error) {
	// A missing or unreadable file leaves defaults and env in place.
	_ = viper.ReadInConfig()
	return Load()
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

// Dir returns the path to the user's config directory
func Dir() string {
	// Check XDG_CONFIG_HOME first
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "boardwalk")
	}
	// Fall back to ~/.config/boardwalk
	home, err := os.UserHomeDir()
	if err != nil {
		return ".boardwalk"
	}
	return filepath.Join(home, ".config", "boardwalk")
}

// File returns the path to the config file
func File() string {
	return filepath.Join(Dir(), "config.yaml")
}

// ActiveFile returns the config file viper actually loaded, which may
// differ from File when a --config flag pointed somewhere else. Falls
// back to the default location when no file has been read.
func ActiveFile() string {
	if used := viper.ConfigFileUsed(); used != "" {
		return used
	}
	return File()
}
