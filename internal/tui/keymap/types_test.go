package keymap

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestKeyBindingMatches(t *testing.T) {
	tests := []struct {
		name     string
		binding  KeyBinding
		msg      tea.KeyMsg
		expected bool
	}{
		{
			name:     "simple rune match",
			binding:  KeyBinding{KeyType: tea.KeyRunes, Rune: '1'},
			msg:      tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'1'}},
			expected: true,
		},
		{
			name:     "simple rune mismatch",
			binding:  KeyBinding{KeyType: tea.KeyRunes, Rune: '1'},
			msg:      tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'2'}},
			expected: false,
		},
		{
			name:     "special key match",
			binding:  KeyBinding{KeyType: tea.KeyTab},
			msg:      tea.KeyMsg{Type: tea.KeyTab},
			expected: true,
		},
		{
			name:     "special key mismatch",
			binding:  KeyBinding{KeyType: tea.KeyTab},
			msg:      tea.KeyMsg{Type: tea.KeyShiftTab},
			expected: false,
		},
		{
			name:     "alt modifier required",
			binding:  KeyBinding{KeyType: tea.KeyRunes, Rune: 'x', Modifiers: ModAlt},
			msg:      tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}},
			expected: false,
		},
		{
			name:     "alt pressed but not bound",
			binding:  KeyBinding{KeyType: tea.KeyRunes, Rune: 'x'},
			msg:      tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}, Alt: true},
			expected: false,
		},
		{
			name:     "catch-all rune",
			binding:  KeyBinding{KeyType: tea.KeyRunes},
			msg:      tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'z'}},
			expected: true,
		},
		{
			name:     "rune binding vs special key",
			binding:  KeyBinding{KeyType: tea.KeyRunes, Rune: 'q'},
			msg:      tea.KeyMsg{Type: tea.KeyEnter},
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.binding.Matches(tt.msg); got != tt.expected {
				t.Errorf("Matches() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestKeymapGetBinding(t *testing.T) {
	km := DefaultKeymap()

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want Command
		ok   bool
	}{
		{"1 selects home", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'1'}}, CmdSelectHome, true},
		{"2 selects navigation", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'2'}}, CmdSelectNavigation, true},
		{"3 selects settings", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'3'}}, CmdSelectSettings, true},
		{"tab next", tea.KeyMsg{Type: tea.KeyTab}, CmdNextPane, true},
		{"shift+tab prev", tea.KeyMsg{Type: tea.KeyShiftTab}, CmdPrevPane, true},
		{"left prev", tea.KeyMsg{Type: tea.KeyLeft}, CmdPrevPane, true},
		{"ctrl+c quits", tea.KeyMsg{Type: tea.KeyCtrlC}, CmdQuit, true},
		{"unbound key", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'z'}}, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := km.GetBinding(tt.msg, ModeNormal)
			if ok != tt.ok || got != tt.want {
				t.Errorf("GetBinding() = (%q, %v), want (%q, %v)", got, ok, tt.want, tt.ok)
			}
		})
	}

	if _, ok := km.GetBinding(tea.KeyMsg{Type: tea.KeyTab}, Mode("missing")); ok {
		t.Error("GetBinding() for unknown mode should return false")
	}
}

func TestModifiersString(t *testing.T) {
	tests := []struct {
		mod  Modifier
		want string
	}{
		{ModNone, ""},
		{ModAlt, "alt+"},
	}

	for _, tt := range tests {
		if got := tt.mod.String(); got != tt.want {
			t.Errorf("Modifier(%d).String() = %q, want %q", tt.mod, got, tt.want)
		}
	}
}

func TestKeyBindingString(t *testing.T) {
	tests := []struct {
		binding KeyBinding
		want    string
	}{
		{KeyBinding{KeyType: tea.KeyRunes, Rune: '1'}, "1"},
		{KeyBinding{KeyType: tea.KeyRunes, Rune: ' '}, "space"},
		{KeyBinding{KeyType: tea.KeyTab}, "tab"},
		{KeyBinding{KeyType: tea.KeyShiftTab}, "shift+tab"},
		{KeyBinding{KeyType: tea.KeyRunes, Rune: 'x', Modifiers: ModAlt}, "alt+x"},
	}

	for _, tt := range tests {
		if got := tt.binding.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestGetBindingsForCommand(t *testing.T) {
	km := DefaultKeymap()

	bindings := km.GetBindingsForCommand(CmdNextPane, ModeNormal)
	if len(bindings) != 3 {
		t.Fatalf("expected 3 bindings for next pane, got %d", len(bindings))
	}
	if km.GetBindingsForCommand(CmdNextPane, Mode("missing")) != nil {
		t.Error("expected nil for unknown mode")
	}
}

func TestGetCommands(t *testing.T) {
	km := DefaultKeymap()

	want := []Command{
		CmdSelectHome, CmdSelectNavigation, CmdSelectSettings,
		CmdNextPane, CmdPrevPane, CmdToggleHelp, CmdQuit,
	}
	got := km.GetCommands(ModeNormal)
	if len(got) != len(want) {
		t.Fatalf("GetCommands() returned %d commands, want %d: %v", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("GetCommands()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestDefaultKeymapCompleteness(t *testing.T) {
	km := DefaultKeymap()

	for _, binding := range km.Modes[ModeNormal].Bindings {
		if binding.Description == "" {
			t.Errorf("binding %s (%s) has no description", binding.String(), binding.Command)
		}
	}
}
