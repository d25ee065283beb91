// Package tui provides the terminal user interface for mobilepane.
// This file contains layout-related constants and dimension calculation functions.
package tui

// Image sizing
const (
	// ImageGutter is subtracted from half the viewport width to size pane images.
	ImageGutter = 25
)

// Fixed UI element heights
const (
	// NavBarHeight is the height of the bottom navigation bar.
	NavBarHeight = 1

	// HelpBarHeight is the height of the key help line above the navigation bar.
	HelpBarHeight = 1

	// MinPaneHeight is the smallest pane height the help bar is shown with.
	// Below it the help bar is dropped so the pane keeps the rows.
	MinPaneHeight = 3

	// DefaultHeight is used before the first window size message arrives.
	DefaultHeight = 24
)

// ImageWidth returns the width of pane images for a viewport viewportWidth
// columns wide: half the viewport less the gutter. Terminal cells are whole,
// so the half is taken with integer division and odd widths round down
// (101 columns gives 25, not 25.5). The result may be zero or negative on
// narrow viewports.
func ImageWidth(viewportWidth int) int {
	return viewportWidth/2 - ImageGutter
}

// HelpFits reports whether a terminal termHeight rows tall has room for the
// help bar while leaving the pane at least MinPaneHeight rows.
func HelpFits(termHeight int) bool {
	return termHeight-NavBarHeight-HelpBarHeight >= MinPaneHeight
}

// CalculatePaneHeight returns the height left for the active pane once the
// navigation bar and, when shown, the help bar are placed. It never exceeds
// what the terminal has left, so it is zero when only the bar fits.
func CalculatePaneHeight(termHeight int, showHelp bool) int {
	h := termHeight - NavBarHeight
	if showHelp {
		h -= HelpBarHeight
	}
	return max(h, 0)
}
