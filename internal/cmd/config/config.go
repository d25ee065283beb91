// Package config provides CLI commands for inspecting mobilepane configuration.
package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	appconfig "github.com/Iron-Ham/mobilepane/internal/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "View mobilepane configuration",
	Long: `View mobilepane configuration.

Use 'config show' to display the effective configuration, 'config path' to
see where it is read from and 'config init' to create a default file.`,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current configuration",
	Args:  cobra.NoArgs,
	RunE:  runConfigShow,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Show the config file path",
	Args:  cobra.NoArgs,
	RunE:  runConfigPath,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a default config file",
	Long:  `Create a default config file at ~/.config/mobilepane/config.yaml with all available options.`,
	Args:  cobra.NoArgs,
	RunE:  runConfigInit,
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configInitCmd)
}

// Register adds all config-related commands to the given parent command.
func Register(parent *cobra.Command) {
	parent.AddCommand(configCmd)
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	cfg, err := appconfig.Load()
	if err != nil {
		return err
	}
	return writeConfig(cmd.OutOrStdout(), cfg, viper.ConfigFileUsed())
}

// writeConfig prints cfg in the layout of the config file.
func writeConfig(w io.Writer, cfg *appconfig.Config, file string) error {
	fmt.Fprintln(w, "Current configuration:")
	fmt.Fprintln(w)

	// Show where config is being read from
	if file != "" {
		fmt.Fprintf(w, "Config file: %s\n", file)
	} else {
		fmt.Fprintf(w, "Config file: (none - using defaults)\n")
	}
	fmt.Fprintf(w, "Log directory: %s\n", cfg.Logging.ResolveDir())
	fmt.Fprintln(w)

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return fmt.Errorf("failed to encode configuration: %w", err)
	}
	return enc.Close()
}

func runConfigPath(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	if viper.ConfigFileUsed() != "" {
		fmt.Fprintf(out, "Active config: %s\n", viper.ConfigFileUsed())
	} else {
		fmt.Fprintf(out, "Default path: %s (not created)\n", appconfig.ConfigFile())
	}

	// Also show config search paths
	fmt.Fprintln(out, "\nSearch paths:")
	fmt.Fprintf(out, "  1. %s\n", filepath.Join(appconfig.ConfigDir(), "config.yaml"))
	fmt.Fprintf(out, "  2. $HOME/.config/%s/config.yaml\n", appconfig.AppName)
	fmt.Fprintf(out, "  3. ./config.yaml (current directory)\n")
	fmt.Fprintln(out, "\nEnvironment variables: MOBILEPANE_* (e.g., MOBILEPANE_TUI_START_PANE)")

	return nil
}

// defaultConfigContent is written by config init.
const defaultConfigContent = `# mobilepane configuration

# Terminal UI settings
tui:
  # Viewport width used when the terminal size cannot be read
  default_width: 80
  # Pane shown on startup: home, navigation or settings
  start_pane: home
  # Show the key help line above the navigation bar
  show_help: true
  # Allow clicking navigation bar tabs
  mouse: true

# Debug logging
logging:
  enabled: true
  # debug, info, warn or error
  level: info
  # Directory for debug.log (empty: <config dir>/logs)
  dir: ""
`

func runConfigInit(cmd *cobra.Command, args []string) error {
	configDir := appconfig.ConfigDir()
	configFile := appconfig.ConfigFile()

	// Check if config file already exists
	if _, err := os.Stat(configFile); err == nil {
		return fmt.Errorf("config file already exists at %s", configFile)
	}

	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := os.WriteFile(configFile, []byte(defaultConfigContent), 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Created config file: %s\n", configFile)
	return nil
}
