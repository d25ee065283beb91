package view

import (
	"strings"

	"github.com/Iron-Ham/mobilepane/internal/pane"
	"github.com/Iron-Ham/mobilepane/internal/tui/styles"
	"github.com/charmbracelet/lipgloss"
)

// PaneView is a child screen of the main container.
type PaneView interface {
	// Pane returns the identifier of the screen this view renders.
	Pane() pane.Pane
	// ImageWidth returns the image width the view was built with.
	ImageWidth() int
	// Render renders the view into at most height lines.
	Render(height int) string
}

// imageGap separates side-by-side image frames.
const imageGap = 2

// HomePane shows the two camera feeds side by side.
type HomePane struct {
	imageWidth int
}

// NewHomePane creates a HomePane drawing frames imageWidth cells wide.
func NewHomePane(imageWidth int) *HomePane {
	return &HomePane{imageWidth: imageWidth}
}

// Pane returns pane.Home.
func (v *HomePane) Pane() pane.Pane { return pane.Home }

// ImageWidth returns the frame width the pane was built with.
func (v *HomePane) ImageWidth() int { return v.imageWidth }

// Render renders the home pane.
func (v *HomePane) Render(height int) string {
	var b strings.Builder

	b.WriteString(renderPaneTitle(pane.Home))
	b.WriteString("\n")
	b.WriteString(styles.Subtitle.Render("Live agent view"))
	b.WriteString("\n\n")

	frames := lipgloss.JoinHorizontal(lipgloss.Top,
		renderImageFrame("first person", v.imageWidth, height),
		strings.Repeat(" ", imageGap),
		renderImageFrame("scene map", v.imageWidth, height),
	)
	b.WriteString(frames)

	return b.String()
}

// renderPaneTitle renders the icon and title line shared by all panes.
func renderPaneTitle(p pane.Pane) string {
	return styles.Title.
		Foreground(styles.PaneColor(p)).
		Render(styles.PaneIcon(p) + " " + p.Title())
}
