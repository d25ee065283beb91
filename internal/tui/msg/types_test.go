package msg

import (
	"testing"

	"github.com/Iron-Ham/mobilepane/internal/pane"
	tea "github.com/charmbracelet/bubbletea"
)

func TestMessagesAreTeaMsgs(t *testing.T) {
	msgs := []tea.Msg{
		PaneSelectedMsg{Pane: pane.Navigation},
		ConfigReloadedMsg{ShowHelp: true},
	}

	for _, m := range msgs {
		switch v := m.(type) {
		case PaneSelectedMsg:
			if v.Pane != pane.Navigation {
				t.Errorf("PaneSelectedMsg.Pane = %q, want navigation", v.Pane)
			}
		case ConfigReloadedMsg:
			if !v.ShowHelp || v.Err != nil {
				t.Errorf("unexpected ConfigReloadedMsg: %+v", v)
			}
		default:
			t.Errorf("unexpected message type %T", m)
		}
	}
}
