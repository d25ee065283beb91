// Package logging provides structured logging for mobilepane.
//
// The terminal is owned by the TUI while it runs, so logs go to a JSON file
// in the configured log directory. The package wraps Go's log/slog.
//
// # Basic Usage
//
//	logger, err := logging.NewLogger("/path/to/logs", "INFO")
//	if err != nil {
//	    return err
//	}
//	defer logger.Close()
//
//	logger.Info("tui started", "viewport_width", 120)
//
// # Context Propagation
//
// Child loggers carry persistent attributes:
//
//	tuiLogger := logger.WithComponent("tui")
//	tuiLogger.WithPane("settings").Debug("pane selected")
//
// Output:
//
//	{"time":"...","level":"DEBUG","msg":"pane selected","component":"tui","pane":"settings"}
//
// # Testing
//
// Use [NopLogger] to discard all output.
package logging
