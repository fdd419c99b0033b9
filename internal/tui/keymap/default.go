package keymap

import tea "github.com/charmbracelet/bubbletea"

// Default returns the default keymap.
func Default() *Keymap {
	return &Keymap{
		Name:        "default",
		Description: "Default boardwalk key bindings",
		Modes: map[Mode]*ModeBindings{
			ModeNormal:  defaultNormalBindings(),
			ModeForm:    defaultFormBindings(),
			ModeCommand: defaultCommandBindings(),
		},
	}
}

func defaultNormalBindings() *ModeBindings {
	return &ModeBindings{
		Mode: ModeNormal,
		Bindings: []KeyBinding{
			// Focus
			{KeyType: tea.KeyRunes, Rune: 'i', Command: CmdFocusForm, Description: "Focus the form", Category: "Focus"},
			{KeyType: tea.KeyTab, Command: CmdNextPanel, Description: "Next panel", Category: "Focus"},
			{KeyType: tea.KeyShiftTab, Command: CmdPrevPanel, Description: "Previous panel", Category: "Focus"},

			// Cursor movement in the focused list
			{KeyType: tea.KeyRunes, Rune: 'j', Command: CmdCursorDown, Description: "Cursor down", Category: "Cursor"},
			{KeyType: tea.KeyDown, Command: CmdCursorDown, Description: "Cursor down", Category: "Cursor"},
			{KeyType: tea.KeyRunes, Rune: 'k', Command: CmdCursorUp, Description: "Cursor up", Category: "Cursor"},
			{KeyType: tea.KeyUp, Command: CmdCursorUp, Description: "Cursor up", Category: "Cursor"},
			{KeyType: tea.KeyRunes, Rune: 'g', Command: CmdCursorTop, Description: "First project", Category: "Cursor"},
			{KeyType: tea.KeyRunes, Rune: 'G', Command: CmdCursorBottom, Description: "Last project", Category: "Cursor"},

			// Mode entry
			{KeyType: tea.KeyRunes, Rune: ':', Command: CmdEnterCommandMode, Description: "Enter command mode", Category: "Modes"},
			{KeyType: tea.KeyRunes, Rune: '?', Command: CmdToggleHelp, Description: "Toggle help", Category: "Modes"},

			// Actions
			{KeyType: tea.KeyCtrlE, Command: CmdExport, Description: "Export the board", Category: "Actions"},

			// Exit
			{KeyType: tea.KeyRunes, Rune: 'q', Command: CmdQuit, Description: "Quit", Category: "Application"},
			{KeyType: tea.KeyCtrlC, Command: CmdQuit, Description: "Quit", Category: "Application"},
		},
	}
}

func defaultFormBindings() *ModeBindings {
	return &ModeBindings{
		Mode: ModeForm,
		Bindings: []KeyBinding{
			// Control
			{KeyType: tea.KeyEsc, Command: CmdLeaveForm, Description: "Leave the form", Category: "Control"},
			{KeyType: tea.KeyEnter, Command: CmdConfirm, Description: "Next field, submit on the last", Category: "Control"},
			{KeyType: tea.KeyCtrlS, Command: CmdSubmit, Description: "Submit the form", Category: "Control"},

			// Field navigation
			{KeyType: tea.KeyTab, Command: CmdNextField, Description: "Next field", Category: "Navigation"},
			{KeyType: tea.KeyDown, Command: CmdNextField, Description: "Next field", Category: "Navigation"},
			{KeyType: tea.KeyShiftTab, Command: CmdPrevField, Description: "Previous field", Category: "Navigation"},
			{KeyType: tea.KeyUp, Command: CmdPrevField, Description: "Previous field", Category: "Navigation"},

			// Exit
			{KeyType: tea.KeyCtrlC, Command: CmdQuit, Description: "Quit", Category: "Application"},
			// All other keys are forwarded to the focused text input.
		},
	}
}

func defaultCommandBindings() *ModeBindings {
	return &ModeBindings{
		Mode: ModeCommand,
		Bindings: []KeyBinding{
			{KeyType: tea.KeyEsc, Command: CmdCancel, Description: "Exit command mode", Category: "Control"},
			{KeyType: tea.KeyEnter, Command: CmdExecute, Description: "Execute command", Category: "Control"},
			{KeyType: tea.KeyCtrlC, Command: CmdQuit, Description: "Quit", Category: "Application"},
			// All other keys are forwarded to the command input.
		},
	}
}

// ExCommands maps ex command strings to their Command constants.
// This is used by command mode to look up the action for a typed command;
// arguments after the command word (export format, theme name) are the
// model's to interpret.
var ExCommands = map[string]Command{
	"q":      CmdExQuit,
	"quit":   CmdExQuit,
	"e":      CmdExExport,
	"export": CmdExExport,
	"t":      CmdExTheme,
	"theme":  CmdExTheme,
	"h":      CmdExHelp,
	"help":   CmdExHelp,
}

// LookupExCommand looks up an ex command by its string representation.
func LookupExCommand(cmd string) (Command, bool) {
	c, ok := ExCommands[cmd]
	return c, ok
}
