package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/Iron-Ham/mobilepane/internal/cmd/config"
	appconfig "github.com/Iron-Ham/mobilepane/internal/config"
	"github.com/Iron-Ham/mobilepane/internal/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// EnvPrefix is the prefix for environment variable overrides.
const EnvPrefix = "MOBILEPANE"

var rootCmd = &cobra.Command{
	Use:   "mobilepane",
	Short: "Mobile main pane shell for the terminal",
	Long: `mobilepane shows a three-pane mobile layout (home, navigation and
settings) with a bottom navigation bar. Switch panes with 1/2/3, tab and
shift+tab, or by clicking a tab.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runTUI,
}

// Exit codes returned by Execute.
const (
	ExitOK    = 0
	ExitError = 1
	// ExitUsage is returned for user-facing errors below error severity,
	// such as an unknown pane name or an invalid config value.
	ExitUsage = 2
)

// Execute runs the root command, prints any error to stderr and returns the
// process exit code.
func Execute() int {
	return reportError(os.Stderr, rootCmd.Execute())
}

// reportError writes err to w and maps it to an exit code. Invalid input
// gets a usage hint and ExitUsage.
func reportError(w io.Writer, err error) int {
	if err == nil {
		return ExitOK
	}

	fmt.Fprintf(w, "Error: %v\n", err)
	if errors.IsUserFacing(err) && errors.Is(err, errors.ErrInvalidInput) {
		fmt.Fprintf(w, "Run '%s --help' for usage.\n", rootCmd.CommandPath())
	}

	if errors.GetSeverity(err) < errors.SeverityError {
		return ExitUsage
	}
	return ExitError
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringP("config", "c", "", "config file (default is $HOME/.config/mobilepane/config.yaml)")
	_ = viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))

	rootCmd.Flags().Int("width", 0, "viewport width used to size pane images (default: terminal width)")
	rootCmd.Flags().String("pane", "", "pane to show on startup: home, navigation or settings")

	config.Register(rootCmd)
}

func initConfig() {
	// Set defaults first so they're available even without a config file
	appconfig.SetDefaults()

	if cfgFile := viper.GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(appconfig.ConfigDir())
		viper.AddConfigPath("$HOME/.config/" + appconfig.AppName)
		viper.AddConfigPath(".")
	}

	viper.AutomaticEnv()
	viper.SetEnvPrefix(EnvPrefix)
	// Replace dots with underscores for nested keys in env vars
	// e.g., MOBILEPANE_TUI_START_PANE for tui.start_pane
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Read config file if it exists (ignore error if not found)
	_ = viper.ReadInConfig()
}
