package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/psantana5/lapse/internal/display"
	"github.com/psantana5/lapse/internal/logging"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile       string
	watchInterval time.Duration
	outputFormat  string
	logLevel      string
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "lapse",
	Short: "Stopwatch CLI with laps, realtime watch, and command timing",
	Long: `lapse is an in-memory stopwatch: start, stop, reset, lap, and query
elapsed time from batch commands, an interactive REPL, or a live
ticking display. It can also time external commands and expose its
state over HTTP.

With no arguments lapse starts the interactive REPL. Passing commands
directly runs them in batch mode, equivalent to "lapse run <cmds...>".`,
	Args: cobra.ArbitraryArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) > 0 {
			// Legacy compat: commands without the run subcommand
			runBatch(args)
			return nil
		}
		return runRepl()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.lapse/config.yaml)")
	rootCmd.PersistentFlags().DurationVar(&watchInterval, "interval", 0, "watch render interval (default from config or 100ms)")
	rootCmd.PersistentFlags().StringVar(&outputFormat, "output", "", "laps output format: table or json")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: debug, info, warn, error")
}

// initConfig reads in config file and ENV variables if set
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error finding home directory: %v\n", err)
			os.Exit(1)
		}

		configDir := filepath.Join(home, ".lapse")
		viper.AddConfigPath(configDir)
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
	}

	viper.SetDefault("interval", display.DefaultInterval.String())
	viper.SetDefault("output", "table")
	viper.SetDefault("listen", ":9090")
	viper.SetDefault("log_level", "info")

	viper.SetEnvPrefix("lapse")
	viper.AutomaticEnv()

	// Missing config file is fine, defaults apply
	_ = viper.ReadInConfig()
}

// GetInterval returns the effective watch render interval
func GetInterval() time.Duration {
	if watchInterval > 0 {
		return watchInterval
	}
	if d := viper.GetDuration("interval"); d > 0 {
		return d
	}
	return display.DefaultInterval
}

// IsJSONOutput returns true if JSON output is requested
func IsJSONOutput() bool {
	if outputFormat != "" {
		return outputFormat == "json"
	}
	return viper.GetString("output") == "json"
}

// GetListenAddr returns the configured serve listen address
func GetListenAddr() string {
	return viper.GetString("listen")
}

// NewLogger builds a logger from the effective log level
func NewLogger() *logging.Logger {
	level := logLevel
	if level == "" {
		level = viper.GetString("log_level")
	}
	return logging.NewLogger(logging.ParseLevel(level), false)
}
