package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pkoester/boardwalk/internal/config"
)

var configInitForce bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect and manage boardwalk configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	Long: `Show prints the configuration boardwalk would run with, after merging
the config file, environment variables, and built-in defaults.`,
	RunE: runConfigShow,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file location",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(config.File())
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a commented config file with the default settings",
	RunE:  runConfigInit,
}

func init() {
	configInitCmd.Flags().BoolVar(&configInitForce, "force", false, "overwrite an existing config file")
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configInitCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	if used := viper.ConfigFileUsed(); used != "" {
		fmt.Printf("Config file: %s\n\n", used)
	} else {
		fmt.Printf("Config file: %s (not found, using defaults)\n\n", config.File())
	}

	fmt.Printf("  %-28s %s\n", "ui.theme", cfg.UI.Theme)
	fmt.Printf("  %-28s %t\n", "ui.show_help_bar", cfg.UI.ShowHelpBar)
	fmt.Printf("  %-28s %s\n", "ui.date_format", cfg.UI.DateFormat)
	fmt.Printf("  %-28s %d\n", "form.max_title_length", cfg.Form.MaxTitleLength)
	fmt.Printf("  %-28s %d\n", "form.max_description_length", cfg.Form.MaxDescriptionLength)
	fmt.Printf("  %-28s %t\n", "logging.enabled", cfg.Logging.Enabled)
	fmt.Printf("  %-28s %s\n", "logging.level", cfg.Logging.Level)
	fmt.Printf("  %-28s %d\n", "logging.max_size_mb", cfg.Logging.MaxSizeMB)
	fmt.Printf("  %-28s %d\n", "logging.max_backups", cfg.Logging.MaxBackups)
	fmt.Printf("  %-28s %t\n", "logging.compress", cfg.Logging.Compress)
	fmt.Printf("  %-28s %s\n", "export.format", cfg.Export.Format)
	if cfg.Export.Dir == "" {
		fmt.Printf("  %-28s %s\n", "export.dir", "(current directory)")
	} else {
		fmt.Printf("  %-28s %s\n", "export.dir", cfg.Export.Dir)
	}
	return nil
}

// configTemplate is written by `config init`. It mirrors the defaults
// in the config package.
const configTemplate = `# Boardwalk configuration.
# Values here override the built-in defaults. Environment variables
# with the BOARDWALK_ prefix override this file, for example
# BOARDWALK_UI_THEME=nord.

ui:
  # Color theme: default, monokai, dracula, nord
  theme: default
  # Show the key help bar at the bottom of the screen
  show_help_bar: true
  # Go time layout used for project creation times
  date_format: "2006-01-02 15:04"

form:
  # Character caps for the intake inputs
  max_title_length: 60
  max_description_length: 200

logging:
  enabled: true
  # debug, info, warn, error
  level: info
  # Rotate the log file once it exceeds this size
  max_size_mb: 10
  max_backups: 3
  compress: false

export:
  # json, yaml, or markdown
  format: json
  # Directory exports are written to. Empty means the working directory.
  dir: ""
`

func runConfigInit(cmd *cobra.Command, args []string) error {
	path := config.File()
	if _, err := os.Stat(path); err == nil && !configInitForce {
		return fmt.Errorf("%s already exists (use --force to overwrite)", path)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(configTemplate), 0o644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	fmt.Printf("Wrote %s\n", path)
	return nil
}
