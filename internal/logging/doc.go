// Package logging provides structured logging for boardwalk.
//
// This package wraps Go's log/slog to provide JSON-formatted logs for
// debugging and post-hoc analysis. Because boardwalk owns the terminal
// while it runs, logs go to a file rather than stderr so they never
// corrupt the TUI.
//
// # Features
//
//   - JSON-formatted structured logging via slog
//   - Configurable log levels (DEBUG, INFO, WARN, ERROR)
//   - Per-component child loggers
//   - Log rotation with configurable size limits
//   - Optional gzip compression for rotated logs
//   - Reading, filtering, and exporting entries for the logs command
//
// # Thread Safety
//
// All types in this package are safe for concurrent use. The [Logger]
// type uses Go's slog internally which is designed for concurrent
// access. The [RotatingWriter] type uses a mutex to protect file
// operations during rotation. Child loggers created via [Logger.With]
// and [Logger.WithComponent] share the underlying writer safely.
//
// # Basic Usage
//
// Create a logger writing to {dir}/boardwalk.log:
//
//	logger, err := logging.New(logging.DefaultDir(), "INFO")
//	if err != nil {
//	    return err
//	}
//	defer logger.Close()
//
//	logger.Debug("key pressed", "key", "tab")
//	logger.Info("project added", "people", 3)
//	logger.Warn("validation failed", "field", "description")
//	logger.Error("export failed", "error", err.Error())
//
// # Components
//
// Create child loggers with a persistent component attribute:
//
//	boardLog := logger.WithComponent("board")
//	boardLog.Info("project added", "title", "Build API")
//
// Output:
//
//	{"time":"...","level":"INFO","msg":"project added","component":"board","title":"Build API"}
//
// # Log Rotation
//
// Use log rotation to prevent unbounded growth:
//
//	config := logging.RotationConfig{
//	    MaxSizeMB:  10,
//	    MaxBackups: 3,
//	    Compress:   true,
//	}
//
//	logger, err := logging.NewWithRotation(dir, "INFO", config)
//	if err != nil {
//	    return err
//	}
//	defer logger.Close()
//
// Rotated files are named boardwalk.log.1, boardwalk.log.2, etc.,
// where .1 is the most recent backup. When compression is enabled,
// rotated files become boardwalk.log.1.gz, etc.
//
// # Testing
//
// For testing, use [NopLogger] to discard all log output:
//
//	func TestSomething(t *testing.T) {
//	    logger := logging.NopLogger()
//	    // Use logger in tests without creating files
//	}
//
// # Reading Logs Back
//
// The logs command reads the log file with [Read], narrows it with
// [FilterEntries], and renders it with [WriteEntries]:
//
//	entries, err := logging.Read(dir)
//	if err != nil {
//	    return err
//	}
//
//	filter := logging.Filter{
//	    Level:     "WARN",
//	    Component: "form",
//	    Since:     time.Now().Add(-1 * time.Hour),
//	}
//	filtered := logging.FilterEntries(entries, filter)
//
//	logging.WriteEntries(os.Stdout, filtered, "text")
//
// # Log Levels
//
// The package defines four log levels:
//
//   - [LevelDebug]: Detailed information for debugging
//   - [LevelInfo]: General operational information (default)
//   - [LevelWarn]: Warning conditions that may need attention
//   - [LevelError]: Error conditions that affect functionality
//
// Use [ValidLevels] to get the list of valid level strings, and
// [ParseLevel] to normalize user-provided level strings.
//
// # Configuration
//
// The logging system is typically configured via boardwalk's config
// file:
//
//	logging:
//	  level: info
//	  max_size_mb: 10
//	  max_backups: 3
//
// See the boardwalk README for complete configuration documentation.
package logging
