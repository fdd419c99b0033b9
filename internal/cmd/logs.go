package cmd

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/pkoester/boardwalk/internal/logging"
)

var (
	logsLevel     string
	logsSince     string
	logsComponent string
	logsContains  string
	logsFormat    string
	logsLimit     int
)

var logsCmd = &cobra.Command{
	Use:   "logs",
	Short: "Show entries from the boardwalk log file",
	Long: `Logs reads the structured log file back and prints matching entries.

Filters combine with AND, so --level warn --component tui shows only
warnings and errors produced by the board UI.`,
	RunE: runLogs,
}

func init() {
	logsCmd.Flags().StringVar(&logsLevel, "level", "", "minimum level to show (debug, info, warn, error)")
	logsCmd.Flags().StringVar(&logsSince, "since", "", "only entries newer than this duration, e.g. 30m or 2h")
	logsCmd.Flags().StringVar(&logsComponent, "component", "", "only entries from this component")
	logsCmd.Flags().StringVar(&logsContains, "contains", "", "only entries whose message contains this text")
	logsCmd.Flags().StringVar(&logsFormat, "format", "text", "output format (text, json, csv)")
	logsCmd.Flags().IntVar(&logsLimit, "limit", 0, "only the last N matching entries, 0 shows all")
	rootCmd.AddCommand(logsCmd)
}

func runLogs(cmd *cobra.Command, args []string) error {
	filter := logging.Filter{
		Component:       logsComponent,
		MessageContains: logsContains,
	}

	if logsLevel != "" {
		if !logging.IsValidLevel(logsLevel) {
			return fmt.Errorf("invalid level %q (valid: %s)", logsLevel, strings.Join(logging.ValidLevels(), ", "))
		}
		filter.Level = logging.ParseLevel(logsLevel)
	}
	if logsSince != "" {
		d, err := time.ParseDuration(logsSince)
		if err != nil {
			return fmt.Errorf("invalid --since duration %q: %w", logsSince, err)
		}
		filter.Since = time.Now().Add(-d)
	}

	dir, err := logging.DefaultDir()
	if err != nil {
		return fmt.Errorf("resolving log directory: %w", err)
	}
	entries, err := logging.Read(dir)
	if err != nil {
		return err
	}

	entries = logging.FilterEntries(entries, filter)
	if logsLimit > 0 && len(entries) > logsLimit {
		entries = entries[len(entries)-logsLimit:]
	}
	if len(entries) == 0 {
		fmt.Println("No matching log entries.")
		return nil
	}

	return logging.WriteEntries(os.Stdout, entries, logsFormat)
}
