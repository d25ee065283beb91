package view

import (
	"github.com/Iron-Ham/mobilepane/internal/tui/styles"
)

// Image frame bounds, in terminal cells.
const (
	// MinImageWidth is the narrowest frame drawn when the derived image width
	// is smaller (including zero or negative on narrow terminals).
	MinImageWidth = 8

	// MinImageHeight and MaxImageHeight bound the frame's inner height.
	MinImageHeight = 3
	MaxImageHeight = 12

	// paneChromeLines is the height taken by a pane title and its subtitle.
	paneChromeLines = 4
)

// EffectiveImageWidth returns the inner width an image frame is drawn at.
func EffectiveImageWidth(imageWidth int) int {
	if imageWidth < MinImageWidth {
		return MinImageWidth
	}
	return imageWidth
}

// imageHeight returns the inner frame height that fits a pane of paneHeight lines.
func imageHeight(paneHeight int) int {
	h := paneHeight - paneChromeLines - 2 // frame border
	if h < MinImageHeight {
		return MinImageHeight
	}
	if h > MaxImageHeight {
		return MaxImageHeight
	}
	return h
}

// renderImageFrame draws a bordered placeholder with label centered inside.
func renderImageFrame(label string, imageWidth, paneHeight int) string {
	return styles.ImageFrame.
		Width(EffectiveImageWidth(imageWidth)).
		Height(imageHeight(paneHeight)).
		Render(label)
}
