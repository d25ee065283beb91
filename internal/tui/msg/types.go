package msg

import "github.com/Iron-Ham/mobilepane/internal/pane"

// PaneSelectedMsg requests that the container show a pane. Pane is applied
// as-is; identifiers other than home and navigation render the settings pane.
type PaneSelectedMsg struct {
	Pane pane.Pane
}

// ConfigReloadedMsg carries settings re-read after the config file changed.
// Err is set when the new file failed to load; the previous settings stay.
type ConfigReloadedMsg struct {
	ShowHelp bool
	Err      error
}
