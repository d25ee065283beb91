package tui

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/Iron-Ham/mobilepane/internal/pane"
	"github.com/Iron-Ham/mobilepane/internal/tui/keymap"
	"github.com/Iron-Ham/mobilepane/internal/tui/msg"
	"github.com/Iron-Ham/mobilepane/internal/tui/styles"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// App wraps the Bubbletea program
type App struct {
	program *tea.Program
	model   Model
}

// New creates a new TUI application. Mouse reporting is enabled when mouse
// is true so navigation bar tabs can be clicked. Extra program options are
// appended after the defaults.
func New(model Model, mouse bool, opts ...tea.ProgramOption) *App {
	programOpts := []tea.ProgramOption{tea.WithAltScreen()}
	if mouse {
		programOpts = append(programOpts, tea.WithMouseCellMotion())
	}
	programOpts = append(programOpts, opts...)

	return &App{
		program: tea.NewProgram(model, programOpts...),
		model:   model,
	}
}

// Send delivers a message to the running program. It is safe to call from
// other goroutines.
func (a *App) Send(m tea.Msg) {
	if a == nil || a.program == nil {
		return
	}
	a.program.Send(m)
}

// Run starts the TUI application and blocks until it exits
func (a *App) Run() error {
	// Set up signal handling for graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP)
	done := make(chan struct{})

	go func() {
		select {
		case <-sigChan:
			a.model.logger.Info("received signal, shutting down")
			a.program.Send(tea.Quit())
		case <-done:
		}
	}()

	a.model.logger.Info("tui started",
		"pane", a.model.screen.String(),
		"viewport_width", a.model.viewportWidth,
		"image_width", a.model.imageWidth,
	)

	final, err := a.program.Run()

	// Clean up signal handler
	signal.Stop(sigChan)
	close(done)

	if fm, ok := final.(Model); ok {
		a.model.logger.Info("tui stopped", "pane", fm.screen.String())
	}
	return err
}

// selectPane is the selection callback given to the navigation bar. The
// returned command is applied by Update through setScreen.
func selectPane(p pane.Pane) tea.Cmd {
	return func() tea.Msg {
		return msg.PaneSelectedMsg{Pane: p}
	}
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m Model) Update(message tea.Msg) (tea.Model, tea.Cmd) {
	switch message := message.(type) {
	case tea.KeyMsg:
		return m.handleKeypress(message)

	case tea.MouseMsg:
		return m.handleMouse(message)

	case tea.WindowSizeMsg:
		// Pane images keep the width computed at startup
		m.width = message.Width
		m.height = message.Height
		m.ready = true
		return m, nil

	case msg.PaneSelectedMsg:
		m.setScreen(message.Pane)
		return m, nil

	case msg.ConfigReloadedMsg:
		if message.Err != nil {
			m.logger.Warn("config reload failed, keeping previous settings", "error", message.Err.Error())
			return m, nil
		}
		m.logger.Info("config reloaded", "show_help", message.ShowHelp)
		m.showHelp = message.ShowHelp
		return m, nil
	}

	return m, nil
}

// handleKeypress routes pane keys through the navigation bar so its callback
// stays the only way the selection changes.
func (m Model) handleKeypress(k tea.KeyMsg) (tea.Model, tea.Cmd) {
	cmd, ok := m.keymap.GetBinding(k, keymap.ModeNormal)
	if !ok {
		return m, nil
	}

	switch cmd {
	case keymap.CmdSelectHome:
		return m, m.navbar.Select(pane.Home)
	case keymap.CmdSelectNavigation:
		return m, m.navbar.Select(pane.Navigation)
	case keymap.CmdSelectSettings:
		return m, m.navbar.Select(pane.Settings)
	case keymap.CmdNextPane:
		return m, m.navbar.Select(m.screen.Next())
	case keymap.CmdPrevPane:
		return m, m.navbar.Select(m.screen.Prev())
	case keymap.CmdToggleHelp:
		m.showHelp = !m.showHelp
		return m, nil
	case keymap.CmdQuit:
		m.quitting = true
		return m, tea.Quit
	}

	return m, nil
}

// handleMouse forwards left clicks on the navigation bar row to the bar.
func (m Model) handleMouse(mm tea.MouseMsg) (tea.Model, tea.Cmd) {
	if mm.Action != tea.MouseActionPress || mm.Button != tea.MouseButtonLeft {
		return m, nil
	}
	if mm.Y != m.navBarRow() {
		return m, nil
	}
	return m, m.navbar.Click(mm.X)
}

// frameLayout returns the frame width, the pane height and whether the help
// bar is drawn. View and navBarRow both lay out from it.
func (m Model) frameLayout() (width, paneHeight int, help bool) {
	width, height := m.frameSize()
	help = m.showHelp && HelpFits(height)
	return width, CalculatePaneHeight(height, help), help
}

// navBarRow returns the screen row the navigation bar is drawn on.
func (m Model) navBarRow() int {
	_, paneHeight, help := m.frameLayout()
	if help {
		return paneHeight + HelpBarHeight
	}
	return paneHeight
}

// View renders the UI
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	width, paneHeight, help := m.frameLayout()

	var sections []string
	if paneHeight > 0 {
		body := lipgloss.NewStyle().
			Height(paneHeight).
			MaxHeight(paneHeight).
			MaxWidth(width).
			Render(m.paneView().Render(paneHeight))
		sections = append(sections, body)
	}
	if help {
		sections = append(sections, styles.HelpBar.MaxWidth(width).Render(m.helpBar.Render(width)))
	}
	sections = append(sections, m.navbar.Render(m.screen, width))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}
