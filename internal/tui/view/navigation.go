package view

import (
	"strings"

	"github.com/Iron-Ham/mobilepane/internal/pane"
	"github.com/Iron-Ham/mobilepane/internal/tui/styles"
	"github.com/charmbracelet/lipgloss"
)

// NavigationPane shows the camera feed next to the movement controls legend.
type NavigationPane struct {
	imageWidth int
}

// NewNavigationPane creates a NavigationPane drawing a frame imageWidth cells wide.
func NewNavigationPane(imageWidth int) *NavigationPane {
	return &NavigationPane{imageWidth: imageWidth}
}

// Pane returns pane.Navigation.
func (v *NavigationPane) Pane() pane.Pane { return pane.Navigation }

// ImageWidth returns the frame width the pane was built with.
func (v *NavigationPane) ImageWidth() int { return v.imageWidth }

// Render renders the navigation pane.
func (v *NavigationPane) Render(height int) string {
	var b strings.Builder

	b.WriteString(renderPaneTitle(pane.Navigation))
	b.WriteString("\n")
	b.WriteString(styles.Subtitle.Render("Move the agent"))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
		renderImageFrame("first person", v.imageWidth, height),
		strings.Repeat(" ", imageGap),
		renderControls(),
	))

	return b.String()
}

// renderControls renders the directional pad legend.
func renderControls() string {
	rows := []string{
		"      " + styles.HelpKey.Render("▲"),
		"  " + styles.HelpKey.Render("◀") + "   ●   " + styles.HelpKey.Render("▶"),
		"      " + styles.HelpKey.Render("▼"),
		"",
		styles.Muted.Render("forward  back"),
		styles.Muted.Render("left     right"),
	}
	return strings.Join(rows, "\n")
}
