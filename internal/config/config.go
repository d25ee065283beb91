package config

import (
	"os"
	"path/filepath"

	"github.com/Iron-Ham/mobilepane/internal/errors"
	"github.com/spf13/viper"
)

// AppName is used for the config directory and environment prefix.
const AppName = "mobilepane"

// Config represents the complete mobilepane configuration
type Config struct {
	TUI     TUIConfig     `mapstructure:"tui" yaml:"tui"`
	Logging LoggingConfig `mapstructure:"logging" yaml:"logging"`
}

// TUIConfig controls the terminal UI behavior
type TUIConfig struct {
	// DefaultWidth is the viewport width used when the terminal size cannot be
	// read (e.g. output is not a TTY). The pane image width is derived from it.
	DefaultWidth int `mapstructure:"default_width" yaml:"default_width"`
	// StartPane is the pane shown on startup: "home", "navigation" or "settings"
	// (default: "home")
	StartPane string `mapstructure:"start_pane" yaml:"start_pane"`
	// ShowHelp shows the key help bar above the navigation bar (default: true)
	ShowHelp bool `mapstructure:"show_help" yaml:"show_help"`
	// Mouse enables clicking navigation bar tabs (default: true)
	Mouse bool `mapstructure:"mouse" yaml:"mouse"`
}

// LoggingConfig controls debug logging behavior
type LoggingConfig struct {
	// Enabled controls whether debug logging is enabled (default: true)
	Enabled bool `mapstructure:"enabled" yaml:"enabled"`
	// Level is the log level: "debug", "info", "warn", "error" (default: "info")
	Level string `mapstructure:"level" yaml:"level"`
	// Dir is the directory for debug.log. Empty means <config dir>/logs.
	// Supports ~ for home directory expansion.
	Dir string `mapstructure:"dir" yaml:"dir"`
}

// ResolveDir returns the directory logs are written to.
func (l *LoggingConfig) ResolveDir() string {
	if l.Dir == "" {
		return filepath.Join(ConfigDir(), "logs")
	}

	path := l.Dir
	if path == "~" || len(path) > 1 && path[:2] == "~/" {
		home, err := os.UserHomeDir()
		if err == nil {
			path = filepath.Join(home, path[1:])
		}
	}
	return path
}

// Default returns a Config with sensible default values
func Default() *Config {
	return &Config{
		TUI: TUIConfig{
			DefaultWidth: 80,
			StartPane:    "home",
			ShowHelp:     true,
			Mouse:        true,
		},
		Logging: LoggingConfig{
			Enabled: true,
			Level:   "info",
			Dir:     "", // Empty means <config dir>/logs
		},
	}
}

// SetDefaults registers default values with viper
func SetDefaults() {
	defaults := Default()

	// TUI defaults
	viper.SetDefault("tui.default_width", defaults.TUI.DefaultWidth)
	viper.SetDefault("tui.start_pane", defaults.TUI.StartPane)
	viper.SetDefault("tui.show_help", defaults.TUI.ShowHelp)
	viper.SetDefault("tui.mouse", defaults.TUI.Mouse)

	// Logging defaults
	viper.SetDefault("logging.enabled", defaults.Logging.Enabled)
	viper.SetDefault("logging.level", defaults.Logging.Level)
	viper.SetDefault("logging.dir", defaults.Logging.Dir)
}

// Load reads the configuration from viper into a Config struct and validates it.
// Validation failures are returned as a user-facing *errors.ValidationError
// whose cause is the ValidationErrors list.
func Load() (*Config, error) {
	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "failed to decode configuration")
	}

	if errs := cfg.Validate(); len(errs) > 0 {
		return nil, errors.NewValidationError("invalid configuration").
			WithCause(ValidationErrors(errs))
	}

	return &cfg, nil
}

// ConfigDir returns the path to the user's config directory
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, AppName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "." + AppName
	}
	return filepath.Join(home, ".config", AppName)
}

// ConfigFile returns the path to the config file
func ConfigFile() string {
	return filepath.Join(ConfigDir(), "config.yaml")
}
