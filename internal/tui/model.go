package tui

import (
	"strconv"

	"github.com/Iron-Ham/mobilepane/internal/logging"
	"github.com/Iron-Ham/mobilepane/internal/pane"
	"github.com/Iron-Ham/mobilepane/internal/tui/keymap"
	"github.com/Iron-Ham/mobilepane/internal/tui/view"
)

// Options configures a Model.
type Options struct {
	// ViewportWidth is the terminal width at startup. Pane images are sized
	// from it once; later resizes do not change them.
	ViewportWidth int
	// StartPane is the pane shown first. Empty means home.
	StartPane pane.Pane
	// ShowHelp shows the key help line.
	ShowHelp bool
	// Mouse is reported in the settings pane; the program enables mouse
	// reporting separately.
	Mouse bool
	// LogLevel and ConfigFile are reported in the settings pane.
	LogLevel   string
	ConfigFile string
	// Logger receives debug output. Nil disables logging.
	Logger *logging.Logger
}

// Model is the main pane container. It holds the selected pane and renders
// it above the navigation bar.
type Model struct {
	// Pane state
	screen     pane.Pane
	imageWidth int

	// Children, built once with imageWidth
	home       *view.HomePane
	navigation *view.NavigationPane
	settings   *view.SettingsPane
	navbar     *view.NavBar
	helpBar    *view.HelpBarView

	// UI state
	viewportWidth int
	width         int
	height        int
	ready         bool
	quitting      bool
	showHelp      bool

	keymap *keymap.Keymap
	logger *logging.Logger
}

// NewModel creates the container showing opts.StartPane (home by default).
func NewModel(opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = logging.NopLogger()
	}

	start := opts.StartPane
	if start == "" {
		start = pane.Home
	}

	imageWidth := ImageWidth(opts.ViewportWidth)
	km := keymap.DefaultKeymap()

	settings := []view.Setting{
		{Key: "viewport width", Value: strconv.Itoa(opts.ViewportWidth)},
		{Key: "image width", Value: strconv.Itoa(imageWidth)},
		{Key: "start pane", Value: start.String()},
		{Key: "mouse", Value: strconv.FormatBool(opts.Mouse)},
		{Key: "log level", Value: logging.ParseLevel(opts.LogLevel)},
	}
	if opts.ConfigFile != "" {
		settings = append(settings, view.Setting{Key: "config file", Value: opts.ConfigFile})
	}

	return Model{
		screen:        start,
		imageWidth:    imageWidth,
		home:          view.NewHomePane(imageWidth),
		navigation:    view.NewNavigationPane(imageWidth),
		settings:      view.NewSettingsPane(imageWidth, settings),
		navbar:        view.NewNavBar(selectPane),
		helpBar:       view.NewHelpBarView(km),
		viewportWidth: opts.ViewportWidth,
		showHelp:      opts.ShowHelp,
		keymap:        km,
		logger:        logger.WithComponent("tui"),
	}
}

// Screen returns the selected pane as stored, which may be a value other
// than the three known panes.
func (m Model) Screen() pane.Pane {
	return m.screen
}

// ImageWidth returns the image width computed at construction.
func (m Model) ImageWidth() int {
	return m.imageWidth
}

// ShowHelp reports whether the help line is shown.
func (m Model) ShowHelp() bool {
	return m.showHelp
}

// setScreen is the only place the selected pane changes.
func (m *Model) setScreen(p pane.Pane) {
	if p == m.screen {
		return
	}
	logger := m.logger.WithPane(p.String())
	logger.Debug("pane selected", "from", m.screen.String())
	if !p.Valid() {
		logger.Debug("unknown pane, showing settings")
	}
	m.screen = p
}

// paneView maps the selected pane to the child that renders it. Anything
// other than home or navigation renders settings.
func (m Model) paneView() view.PaneView {
	switch m.screen.Resolve() {
	case pane.Home:
		return m.home
	case pane.Navigation:
		return m.navigation
	default:
		return m.settings
	}
}

// frameSize returns the size the frame is laid out at. Before the first
// window size message the startup viewport width is used.
func (m Model) frameSize() (width, height int) {
	if m.ready {
		return m.width, m.height
	}
	return m.viewportWidth, DefaultHeight
}
