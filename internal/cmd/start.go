package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/pkoester/boardwalk/internal/board"
	"github.com/pkoester/boardwalk/internal/config"
	"github.com/pkoester/boardwalk/internal/errors"
	"github.com/pkoester/boardwalk/internal/logging"
	"github.com/pkoester/boardwalk/internal/sample"
	"github.com/pkoester/boardwalk/internal/tui"
	"github.com/pkoester/boardwalk/internal/tui/styles"
)

// minBoardWidth is the narrowest terminal the three panel layout still
// fits in without clipping the form inputs.
const minBoardWidth = 80

var (
	startSample bool
	startTheme  string
)

var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Open the project board",
	Long: `Start opens the interactive project board in the current terminal.

The board runs full screen and needs an interactive terminal at least
80 columns wide. Use --sample to pre-fill it with demo projects.`,
	RunE: runStart,
}

func init() {
	startCmd.Flags().BoolVar(&startSample, "sample", false, "seed the board with sample projects")
	startCmd.Flags().StringVar(&startTheme, "theme", "", "color theme for this session (default, monokai, dracula, nord)")
	rootCmd.AddCommand(startCmd)
}

func runStart(cmd *cobra.Command, args []string) error {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return fmt.Errorf("cannot open the board: %w", errors.ErrNotTerminal)
	}
	width, _, err := term.GetSize(fd)
	if err != nil {
		return fmt.Errorf("reading terminal size: %w", err)
	}
	if width < minBoardWidth {
		return fmt.Errorf("terminal is %d columns wide, the board needs at least %d", width, minBoardWidth)
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if startTheme != "" {
		cfg.UI.Theme = startTheme
	}
	if err := styles.Apply(styles.ThemeName(cfg.UI.Theme)); err != nil {
		return err
	}

	logger := logging.NopLogger()
	if cfg.Logging.Enabled {
		dir, err := logging.DefaultDir()
		if err != nil {
			return fmt.Errorf("resolving log directory: %w", err)
		}
		logger, err = logging.NewWithRotation(dir, cfg.Logging.Level, logging.RotationConfig{
			MaxSizeMB:  cfg.Logging.MaxSizeMB,
			MaxBackups: cfg.Logging.MaxBackups,
			Compress:   cfg.Logging.Compress,
		})
		if err != nil {
			return fmt.Errorf("opening log file: %w", err)
		}
		defer logger.Close()
	}

	opts := []board.Option{
		board.WithPanicHandler(func(recovered any, stack []byte) {
			logger.Error("board listener panicked", "recovered", recovered, "stack", string(stack))
		}),
	}
	if startSample {
		opts = append(opts, board.WithSeed(sample.Projects()...))
	}
	b := board.New(opts...)

	logger.Info("starting board", "theme", cfg.UI.Theme, "sample", startSample)
	return tui.New(b, cfg, logger).Run()
}
