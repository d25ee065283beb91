package tui

import (
	"testing"

	"github.com/Iron-Ham/mobilepane/internal/pane"
	"github.com/Iron-Ham/mobilepane/internal/tui/msg"
)

func TestSelectPane_CallbackProducesSelection(t *testing.T) {
	cmd := selectPane(pane.Navigation)
	if cmd == nil {
		t.Fatal("selectPane returned nil")
	}
	got, ok := cmd().(msg.PaneSelectedMsg)
	if !ok {
		t.Fatalf("selectPane command produced %T, want PaneSelectedMsg", cmd())
	}
	if got.Pane != pane.Navigation {
		t.Errorf("Pane = %q, want navigation", got.Pane)
	}
}

func TestNew(t *testing.T) {
	app := New(newTestModel(t, 80), true)
	if app == nil || app.program == nil {
		t.Fatal("New() should create the program")
	}

	var nilApp *App
	nilApp.Send(msg.PaneSelectedMsg{Pane: pane.Home}) // must not panic
}

func TestInit(t *testing.T) {
	if cmd := newTestModel(t, 80).Init(); cmd != nil {
		t.Error("Init() should not return a command")
	}
}

func TestUpdate_IgnoresUnknownMessages(t *testing.T) {
	m := newTestModel(t, 80)
	next, cmd := m.Update(struct{}{})
	if cmd != nil {
		t.Error("unknown message should not produce a command")
	}
	if next.(Model).Screen() != pane.Home {
		t.Error("unknown message should not change the pane")
	}
}
