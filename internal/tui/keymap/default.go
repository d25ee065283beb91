package keymap

import tea "github.com/charmbracelet/bubbletea"

// DefaultKeymap returns the default keymap configuration.
func DefaultKeymap() *Keymap {
	return &Keymap{
		Name:        "default",
		Description: "Default mobilepane key bindings",
		Modes: map[Mode]*ModeBindings{
			ModeNormal: defaultNormalBindings(),
		},
	}
}

func defaultNormalBindings() *ModeBindings {
	return &ModeBindings{
		Mode: ModeNormal,
		Bindings: []KeyBinding{
			// Direct pane selection
			{KeyType: tea.KeyRunes, Rune: '1', Command: CmdSelectHome, Description: "home"},
			{KeyType: tea.KeyRunes, Rune: '2', Command: CmdSelectNavigation, Description: "navigation"},
			{KeyType: tea.KeyRunes, Rune: '3', Command: CmdSelectSettings, Description: "settings"},

			// Cycling
			{KeyType: tea.KeyTab, Command: CmdNextPane, Description: "next pane"},
			{KeyType: tea.KeyRight, Command: CmdNextPane, Description: "next pane"},
			{KeyType: tea.KeyRunes, Rune: 'l', Command: CmdNextPane, Description: "next pane"},
			{KeyType: tea.KeyShiftTab, Command: CmdPrevPane, Description: "previous pane"},
			{KeyType: tea.KeyLeft, Command: CmdPrevPane, Description: "previous pane"},
			{KeyType: tea.KeyRunes, Rune: 'h', Command: CmdPrevPane, Description: "previous pane"},

			// View
			{KeyType: tea.KeyRunes, Rune: '?', Command: CmdToggleHelp, Description: "toggle help"},

			// Exit
			{KeyType: tea.KeyRunes, Rune: 'q', Command: CmdQuit, Description: "quit"},
			{KeyType: tea.KeyCtrlC, Command: CmdQuit, Description: "quit"},
		},
	}
}
