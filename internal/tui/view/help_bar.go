package view

import (
	"strings"

	"github.com/Iron-Ham/mobilepane/internal/tui/keymap"
	"github.com/Iron-Ham/mobilepane/internal/tui/styles"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
)

// HelpBarView renders the one-line key help shown above the navigation bar.
type HelpBarView struct {
	help     help.Model
	bindings []key.Binding
}

// NewHelpBarView builds the help entries from the keymap's normal mode, one
// entry per command with all of its keys.
func NewHelpBarView(km *keymap.Keymap) *HelpBarView {
	h := help.New()
	h.Styles.ShortKey = styles.HelpKey
	h.Styles.ShortDesc = styles.HelpBar
	h.Styles.ShortSeparator = styles.Muted
	h.Styles.Ellipsis = styles.Muted

	var bindings []key.Binding
	for _, cmd := range km.GetCommands(keymap.ModeNormal) {
		kbs := km.GetBindingsForCommand(cmd, keymap.ModeNormal)
		keys := make([]string, 0, len(kbs))
		for _, kb := range kbs {
			keys = append(keys, kb.String())
		}
		bindings = append(bindings, key.NewBinding(
			key.WithKeys(keys...),
			key.WithHelp(strings.Join(keys, "/"), kbs[0].Description),
		))
	}

	return &HelpBarView{help: h, bindings: bindings}
}

// Bindings returns the help entries.
func (v *HelpBarView) Bindings() []key.Binding {
	return v.bindings
}

// Render renders the help line truncated to width.
func (v *HelpBarView) Render(width int) string {
	h := v.help
	h.Width = width
	return h.ShortHelpView(v.bindings)
}
