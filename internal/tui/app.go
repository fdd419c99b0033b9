package tui

import (
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/pkoester/boardwalk/internal/board"
	"github.com/pkoester/boardwalk/internal/config"
	"github.com/pkoester/boardwalk/internal/logging"
)

// App wraps the bubbletea program.
type App struct {
	program *tea.Program
	model   Model
	logger  *logging.Logger
}

// configChangedMsg reports that the config file on disk was modified.
type configChangedMsg struct{}

// New creates a TUI application on the given board.
func New(b *board.Board, cfg *config.Config, logger *logging.Logger) *App {
	return &App{
		model:  NewModel(b, cfg, logger),
		logger: logger.WithComponent("app"),
	}
}

// Run starts the TUI and blocks until it exits.
func (a *App) Run() error {
	a.program = tea.NewProgram(
		a.model,
		tea.WithAltScreen(),
	)

	// Preserve terminal state when the process is terminated from
	// outside (the alt screen must be restored).
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP)
	go func() {
		<-sigChan
		if a.program != nil {
			a.program.Send(tea.Quit())
		}
	}()

	// Re-apply the theme when the config file changes on disk.
	watcher, err := config.Watch(config.ActiveFile(), func() {
		a.program.Send(configChangedMsg{})
	})
	if err != nil {
		a.logger.Warn("config watcher unavailable", "error", err)
	} else {
		defer watcher.Stop()
	}

	_, err = a.program.Run()

	signal.Stop(sigChan)

	return err
}
