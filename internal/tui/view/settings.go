package view

import (
	"fmt"
	"strings"

	"github.com/Iron-Ham/mobilepane/internal/pane"
	"github.com/Iron-Ham/mobilepane/internal/tui/styles"
	"github.com/Iron-Ham/mobilepane/internal/util"
)

// Setting is one key/value row in the settings pane.
type Setting struct {
	Key   string
	Value string
}

// SettingsPane lists the runtime settings.
type SettingsPane struct {
	imageWidth int
	settings   []Setting
}

// NewSettingsPane creates a SettingsPane. imageWidth bounds the value column.
func NewSettingsPane(imageWidth int, settings []Setting) *SettingsPane {
	return &SettingsPane{imageWidth: imageWidth, settings: settings}
}

// Pane returns pane.Settings.
func (v *SettingsPane) Pane() pane.Pane { return pane.Settings }

// ImageWidth returns the width the pane was built with.
func (v *SettingsPane) ImageWidth() int { return v.imageWidth }

// Settings returns the rows shown by the pane.
func (v *SettingsPane) Settings() []Setting { return v.settings }

// Render renders the settings pane.
func (v *SettingsPane) Render(height int) string {
	var b strings.Builder

	b.WriteString(renderPaneTitle(pane.Settings))
	b.WriteString("\n")
	b.WriteString(styles.Subtitle.Render("Runtime settings"))
	b.WriteString("\n\n")

	keyWidth := 0
	for _, s := range v.settings {
		keyWidth = max(keyWidth, len(s.Key))
	}

	valueWidth := EffectiveImageWidth(v.imageWidth)
	rows := height - paneChromeLines
	for i, s := range v.settings {
		if i >= max(rows, 0) {
			break
		}
		key := styles.SettingKey.Render(fmt.Sprintf("%-*s", keyWidth, s.Key))
		value := styles.SettingValue.Render(util.TruncateANSI(s.Value, valueWidth))
		b.WriteString(key + "  " + value + "\n")
	}

	return strings.TrimSuffix(b.String(), "\n")
}
