package view

import (
	"strings"
	"testing"

	"github.com/Iron-Ham/mobilepane/internal/tui/keymap"
	"github.com/charmbracelet/lipgloss"
)

func TestNewHelpBarView(t *testing.T) {
	km := keymap.DefaultKeymap()
	v := NewHelpBarView(km)

	commands := km.GetCommands(keymap.ModeNormal)
	if got := len(v.Bindings()); got != len(commands) {
		t.Fatalf("got %d help entries, want one per command (%d)", got, len(commands))
	}

	// Next pane is bound to several keys; they share one entry
	found := false
	for _, b := range v.Bindings() {
		if b.Help().Desc == "next pane" {
			found = true
			if len(b.Keys()) != 3 {
				t.Errorf("next pane keys = %v, want 3", b.Keys())
			}
		}
	}
	if !found {
		t.Error("expected a next pane entry")
	}
}

func TestHelpBarView_Render(t *testing.T) {
	v := NewHelpBarView(keymap.DefaultKeymap())

	tests := []struct {
		name     string
		width    int
		contains []string
	}{
		{"wide", 200, []string{"home", "settings", "quit", "toggle help"}},
		{"narrow", 30, []string{"home"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := v.Render(tt.width)
			for _, want := range tt.contains {
				if !strings.Contains(out, want) {
					t.Errorf("expected %q in help, got: %s", want, out)
				}
			}
			if got := lipgloss.Width(out); got > tt.width {
				t.Errorf("help width = %d, want at most %d", got, tt.width)
			}
		})
	}
}
