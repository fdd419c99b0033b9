// Package tui implements the boardwalk terminal interface: a three
// panel board (intake form, active projects, finished projects) on a
// single shared board.
package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/pkoester/boardwalk/internal/board"
	"github.com/pkoester/boardwalk/internal/config"
	"github.com/pkoester/boardwalk/internal/export"
	"github.com/pkoester/boardwalk/internal/logging"
	"github.com/pkoester/boardwalk/internal/project"
	"github.com/pkoester/boardwalk/internal/tui/component"
	"github.com/pkoester/boardwalk/internal/tui/keymap"
	"github.com/pkoester/boardwalk/internal/tui/styles"
)

// Model holds the TUI application state.
type Model struct {
	// Core components
	board  *board.Board
	cfg    *config.Config
	logger *logging.Logger
	km     *keymap.Keymap

	form     *component.Form
	active   *component.List
	finished *component.List

	// lists in tab order; focusedList indexes into it
	lists       []*component.List
	focusedList int

	// UI state
	mode          keymap.Mode
	commandBuffer string
	width         int
	height        int
	ready         bool
	quitting      bool
	showHelp      bool
	infoMessage   string
	errorMessage  string
}

// NewModel builds the model and configures the components against the
// injected board in a fixed order, so board listeners always fire form
// first, then the active list, then the finished list.
func NewModel(b *board.Board, cfg *config.Config, logger *logging.Logger) Model {
	form := component.NewForm(cfg.Form.MaxTitleLength, cfg.Form.MaxDescriptionLength)
	active := component.NewList(project.StatusActive)
	finished := component.NewList(project.StatusFinished)

	for _, c := range []component.Component{form, active, finished} {
		c.Configure(b)
	}

	// The app starts in normal mode with the active list focused.
	form.Blur()
	active.SetFocused(true)

	return Model{
		board:    b,
		cfg:      cfg,
		logger:   logger.WithComponent("tui"),
		km:       keymap.Default(),
		form:     form,
		active:   active,
		finished: finished,
		lists:    []*component.List{active, finished},
		mode:     keymap.ModeNormal,
	}
}

// Init implements tea.Model. The model needs no startup commands; the
// cursor blink starts when the form gains focus.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeypress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.form.SetWidth(m.panelContentWidth())
		return m, nil

	case configChangedMsg:
		return m.reloadConfig()
	}

	// Everything else (cursor blinks and the like) belongs to the
	// focused text input.
	if m.mode == keymap.ModeForm {
		return m, m.form.Update(msg)
	}
	return m, nil
}

func (m Model) handleKeypress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Any keypress dismisses a lingering status message.
	m.infoMessage = ""
	m.errorMessage = ""

	if cmd, ok := m.km.GetBinding(msg, m.mode); ok {
		return m.runCommand(cmd)
	}

	switch m.mode {
	case keymap.ModeForm:
		return m, m.form.Update(msg)
	case keymap.ModeCommand:
		return m.handleCommandInput(msg)
	}
	return m, nil
}

// runCommand executes a keymap command against the model.
func (m Model) runCommand(cmd keymap.Command) (tea.Model, tea.Cmd) {
	switch cmd {
	case keymap.CmdQuit:
		m.quitting = true
		return m, tea.Quit

	// Focus movement
	case keymap.CmdFocusForm:
		return m.enterFormMode()
	case keymap.CmdNextPanel:
		m.cycleListFocus(1)
	case keymap.CmdPrevPanel:
		m.cycleListFocus(-1)

	// List cursor
	case keymap.CmdCursorDown:
		m.focusedListPanel().CursorDown()
	case keymap.CmdCursorUp:
		m.focusedListPanel().CursorUp()
	case keymap.CmdCursorTop:
		m.focusedListPanel().CursorTop()
	case keymap.CmdCursorBottom:
		m.focusedListPanel().CursorBottom()

	// Mode switches
	case keymap.CmdEnterCommandMode:
		m.mode = keymap.ModeCommand
		m.commandBuffer = ""
	case keymap.CmdToggleHelp:
		m.showHelp = !m.showHelp

	// Actions
	case keymap.CmdExport:
		return m.exportBoard("")

	// Form mode
	case keymap.CmdLeaveForm:
		return m.leaveFormMode()
	case keymap.CmdNextField:
		m.form.NextField()
	case keymap.CmdPrevField:
		m.form.PrevField()
	case keymap.CmdConfirm:
		if p, ok := m.form.Confirm(); ok {
			m.logger.Info("project added", "title", p.Title, "people", p.People)
		}
	case keymap.CmdSubmit:
		if p, ok := m.form.Submit(); ok {
			m.logger.Info("project added", "title", p.Title, "people", p.People)
		}

	// Command mode
	case keymap.CmdCancel:
		m.mode = keymap.ModeNormal
		m.commandBuffer = ""
	case keymap.CmdExecute:
		line := m.commandBuffer
		m.commandBuffer = ""
		m.mode = keymap.ModeNormal
		return m.executeCommand(line)
	}

	return m, nil
}

// handleCommandInput appends typed characters to the command buffer.
// Esc, enter, and ctrl+c are bound in the keymap and never reach here.
func (m Model) handleCommandInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyBackspace, tea.KeyDelete:
		if len(m.commandBuffer) > 0 {
			m.commandBuffer = m.commandBuffer[:len(m.commandBuffer)-1]
		}
	case tea.KeySpace:
		m.commandBuffer += " "
	case tea.KeyRunes:
		m.commandBuffer += string(msg.Runes)
	}
	return m, nil
}

// executeCommand parses and executes a vim-style ex command.
func (m Model) executeCommand(line string) (tea.Model, tea.Cmd) {
	line = strings.TrimSpace(line)
	if line == "" {
		return m, nil
	}

	parts := strings.Fields(line)
	cmd, ok := keymap.LookupExCommand(parts[0])
	if !ok {
		m.errorMessage = fmt.Sprintf("Unknown command: %s (type :h for help)", parts[0])
		return m, nil
	}
	args := parts[1:]

	switch cmd {
	case keymap.CmdExQuit:
		m.quitting = true
		return m, tea.Quit

	case keymap.CmdExExport:
		format := ""
		if len(args) > 0 {
			format = args[0]
		}
		return m.exportBoard(format)

	case keymap.CmdExTheme:
		if len(args) == 0 {
			m.errorMessage = "Usage: :theme <name>"
			return m, nil
		}
		return m.applyTheme(args[0])

	case keymap.CmdExHelp:
		m.showHelp = !m.showHelp
	}

	return m, nil
}

// exportBoard writes the board to a file in the configured export
// directory. An empty formatArg falls back to the configured format.
func (m Model) exportBoard(formatArg string) (tea.Model, tea.Cmd) {
	name := formatArg
	if name == "" {
		name = m.cfg.Export.Format
	}

	format, err := export.Parse(name)
	if err != nil {
		m.errorMessage = err.Error()
		return m, nil
	}

	path, err := export.WriteFile(m.cfg.Export.Dir, format, m.board.Projects())
	if err != nil {
		m.errorMessage = err.Error()
		return m, nil
	}

	m.infoMessage = fmt.Sprintf("Exported board to %s", path)
	m.logger.Info("board exported", "path", path, "format", string(format))
	return m, nil
}

// applyTheme switches the active theme at runtime.
func (m Model) applyTheme(name string) (tea.Model, tea.Cmd) {
	if err := styles.Apply(styles.ThemeName(name)); err != nil {
		m.errorMessage = err.Error()
		return m, nil
	}
	m.cfg.UI.Theme = name
	m.infoMessage = fmt.Sprintf("Theme set to %s", name)
	m.logger.Info("theme applied", "theme", name)
	return m, nil
}

// reloadConfig re-reads the config file after the watcher reports a
// change and re-applies the theme.
func (m Model) reloadConfig() (tea.Model, tea.Cmd) {
	cfg, err := config.Reload()
	if err != nil {
		m.errorMessage = fmt.Sprintf("Config reload failed: %v", err)
		m.logger.Warn("config reload failed", "error", err)
		return m, nil
	}

	m.cfg = cfg
	if err := styles.Apply(styles.ThemeName(cfg.UI.Theme)); err != nil {
		m.errorMessage = err.Error()
		return m, nil
	}

	m.infoMessage = "Config reloaded"
	m.logger.Info("config reloaded", "theme", cfg.UI.Theme)
	return m, nil
}

func (m Model) enterFormMode() (tea.Model, tea.Cmd) {
	m.mode = keymap.ModeForm
	m.focusedListPanel().SetFocused(false)
	return m, m.form.Focus()
}

func (m Model) leaveFormMode() (tea.Model, tea.Cmd) {
	m.mode = keymap.ModeNormal
	m.form.Blur()
	m.focusedListPanel().SetFocused(true)
	return m, nil
}

// cycleListFocus moves list focus by delta, wrapping around.
func (m *Model) cycleListFocus(delta int) {
	m.focusedListPanel().SetFocused(false)
	n := len(m.lists)
	m.focusedList = (m.focusedList + delta + n) % n
	m.focusedListPanel().SetFocused(true)
}

func (m Model) focusedListPanel() *component.List {
	return m.lists[m.focusedList]
}

// panelContentWidth returns the inner width available to a panel body:
// a third of the screen minus panel borders and padding.
func (m Model) panelContentWidth() int {
	return max((m.width-4)/3-6, 20)
}
