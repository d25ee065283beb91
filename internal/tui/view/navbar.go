package view

import (
	"strings"

	"github.com/Iron-Ham/mobilepane/internal/pane"
	"github.com/Iron-Ham/mobilepane/internal/tui/styles"
	"github.com/Iron-Ham/mobilepane/internal/util"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// SelectFunc requests a pane change. It is supplied by the container.
type SelectFunc func(pane.Pane) tea.Cmd

// NavBar is the bottom navigation bar. It owns no selection state: the
// active pane is passed in at render time and selections go to onSelect.
type NavBar struct {
	onSelect SelectFunc
}

// NewNavBar creates a NavBar that reports selections to onSelect.
func NewNavBar(onSelect SelectFunc) *NavBar {
	return &NavBar{onSelect: onSelect}
}

// Select requests p through the container's callback.
func (n *NavBar) Select(p pane.Pane) tea.Cmd {
	if n.onSelect == nil {
		return nil
	}
	return n.onSelect(p)
}

// tabLabel is the unstyled text of a tab.
func tabLabel(p pane.Pane) string {
	return styles.PaneIcon(p) + " " + p.Title()
}

// renderTab renders one tab, highlighted when active.
func renderTab(p, active pane.Pane) string {
	if p == active.Resolve() {
		return styles.NavTabActive.Background(styles.PaneColor(p)).Render(tabLabel(p))
	}
	return styles.NavTabInactive.Render(tabLabel(p))
}

// Render renders the bar for the active pane, width columns wide.
// An unknown active pane highlights the settings tab, since that is what is shown.
func (n *NavBar) Render(active pane.Pane, width int) string {
	tabs := make([]string, 0, len(pane.All()))
	for _, p := range pane.All() {
		tabs = append(tabs, renderTab(p, active))
	}
	bar := lipgloss.JoinHorizontal(lipgloss.Top, tabs...)

	if width <= 0 {
		return bar
	}
	bar = util.TruncateANSI(bar, width)
	if pad := width - lipgloss.Width(bar); pad > 0 {
		bar += styles.NavBar.Render(strings.Repeat(" ", pad))
	}
	return bar
}

// TabAt returns the pane whose tab covers column x, or false when x is
// outside every tab.
func (n *NavBar) TabAt(x int) (pane.Pane, bool) {
	if x < 0 {
		return "", false
	}
	start := 0
	for _, p := range pane.All() {
		// Active and inactive tabs share padding, so widths don't depend on selection
		w := lipgloss.Width(styles.NavTabInactive.Render(tabLabel(p)))
		if x < start+w {
			return p, true
		}
		start += w
	}
	return "", false
}

// Click handles a press at column x on the bar row.
func (n *NavBar) Click(x int) tea.Cmd {
	p, ok := n.TabAt(x)
	if !ok {
		return nil
	}
	return n.Select(p)
}
