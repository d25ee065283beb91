package cmd

import (
	"fmt"
	"os"

	appconfig "github.com/Iron-Ham/mobilepane/internal/config"
	"github.com/Iron-Ham/mobilepane/internal/errors"
	"github.com/Iron-Ham/mobilepane/internal/logging"
	"github.com/Iron-Ham/mobilepane/internal/pane"
	"github.com/Iron-Ham/mobilepane/internal/tui"
	"github.com/Iron-Ham/mobilepane/internal/tui/msg"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"
)

// Wrapper for term.GetSize to allow testing
var termGetSize = term.GetSize

func runTUI(cmd *cobra.Command, args []string) error {
	cfg, err := appconfig.Load()
	if err != nil {
		return err
	}

	logger := createLogger(cfg)
	defer func() { _ = logger.Close() }()

	widthFlag, _ := cmd.Flags().GetInt("width")
	paneFlag, _ := cmd.Flags().GetString("pane")

	start, err := resolveStartPane(paneFlag, cfg.TUI.StartPane)
	if err != nil {
		return err
	}
	width, err := resolveViewportWidth(widthFlag, cfg.TUI.DefaultWidth, logger)
	if err != nil {
		return err
	}

	model := tui.NewModel(tui.Options{
		ViewportWidth: width,
		StartPane:     start,
		ShowHelp:      cfg.TUI.ShowHelp,
		Mouse:         cfg.TUI.Mouse,
		LogLevel:      cfg.Logging.Level,
		ConfigFile:    viper.ConfigFileUsed(),
		Logger:        logger,
	})
	app := tui.New(model, cfg.TUI.Mouse)

	// Live reload only applies when a config file was found
	if viper.ConfigFileUsed() != "" {
		viper.OnConfigChange(newConfigChangeHandler(app.Send, appconfig.Load, logger))
		viper.WatchConfig()
	}

	if err := app.Run(); err != nil {
		return errors.Wrap(err, "TUI error")
	}
	return nil
}

// resolveStartPane returns the pane named by the --pane flag, or the
// configured start pane when the flag is empty. Unknown names are rejected.
func resolveStartPane(flag, configured string) (pane.Pane, error) {
	name := flag
	field := "--pane"
	if name == "" {
		name = configured
		field = "tui.start_pane"
	}
	if name == "" {
		return pane.Home, nil
	}

	p, err := pane.Parse(name)
	if err != nil {
		var verr *errors.ValidationError
		if errors.As(err, &verr) {
			verr.WithField(field)
		}
		return "", err
	}
	return p, nil
}

// resolveViewportWidth returns the width pane images are sized from: the
// --width flag when set, else the terminal width, else fallback.
func resolveViewportWidth(flag, fallback int, logger *logging.Logger) (int, error) {
	if flag < 0 {
		return 0, errors.NewValidationError("width must not be negative").
			WithField("--width").
			WithValue(flag)
	}
	if flag > 0 {
		return flag, nil
	}

	w, _, err := termGetSize(int(os.Stdout.Fd()))
	if err == nil && w > 0 {
		return w, nil
	}

	reason := "reported width is zero"
	if err != nil {
		reason = err.Error()
	}
	logger.Debug("using default viewport width",
		"width", fallback,
		"error", errors.Wrapf(errors.ErrTerminalSize, "stdout: %s", reason).Error(),
	)
	return fallback, nil
}

// createLogger creates the debug logger from config.
// Returns a NopLogger if logging is disabled or if creation fails.
func createLogger(cfg *appconfig.Config) *logging.Logger {
	if !cfg.Logging.Enabled {
		return logging.NopLogger()
	}

	logger, err := logging.NewLogger(cfg.Logging.ResolveDir(), cfg.Logging.Level)
	if err != nil {
		// Log creation failure shouldn't prevent the application from starting
		fmt.Fprintf(os.Stderr, "Warning: failed to create logger: %v\n", err)
		return logging.NopLogger()
	}
	return logger
}

// newConfigChangeHandler returns a viper OnConfigChange callback that
// reloads the config and sends the result to the running program.
func newConfigChangeHandler(send func(tea.Msg), load func() (*appconfig.Config, error), logger *logging.Logger) func(fsnotify.Event) {
	logger = logger.WithComponent("config")
	return func(event fsnotify.Event) {
		if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
			return
		}
		logger.Debug("config file changed", "file", event.Name, "op", event.Op.String())

		cfg, err := load()
		if err != nil {
			logger.Warn("config reload failed", "file", event.Name, "error", err.Error())
			send(msg.ConfigReloadedMsg{Err: err})
			return
		}
		send(msg.ConfigReloadedMsg{ShowHelp: cfg.TUI.ShowHelp})
	}
}
