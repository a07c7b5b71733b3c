// runner is a side-scrolling dino runner played in the terminal.
//
// Usage:
//
//	runner                  - Start the game (same as "runner play")
//	runner play             - Start the game
//	runner drivers          - List available terminal drivers
//	runner config           - Print the default configuration
//
// Global flags:
//
//	--config <path>     - Config file (default: ~/.runner/config.yaml, ./configs/runner.yaml)
//	--driver <name>     - Terminal driver (default from config: bubbletea)
//	--log-file <path>   - Write logs to a file (default: discard)
//	--log-level <lvl>   - debug, info, warn or error
//	--seed <value>      - RNG seed, logged for diagnostics only (0 = time based)
//
// RUNNER_CONFIG, RUNNER_DRIVER, RUNNER_LOG_LEVEL and RUNNER_LOG_FILE set the
// same options from the environment; flags win.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import drivers to register them
	_ "github.com/vovakirdan/dino-runner/internal/platform/tcellterm"
	_ "github.com/vovakirdan/dino-runner/internal/platform/tui"
)

var (
	// Global flags
	flagConfig   string
	flagDriver   string
	flagLogFile  string
	flagLogLevel string
	flagSeed     int64
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "runner",
	Short: "Dino Console Runner - jump the cacti in your terminal",
	Long: `Dino Console Runner is a terminal side-scroller. Jump over the
cacti; every obstacle that scrolls past scores a point. The high score is
kept until the program exits.

Available commands:
  play     - Start the game (default)
  drivers  - Show the terminal drivers
  config   - Print the default configuration

Examples:
  runner
  runner --driver tcell
  runner play --log-file runner.log --log-level debug
  runner config > ~/.runner/config.yaml`,
	Run: runPlay,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDriver, "driver", "", "Terminal driver (see 'runner drivers')")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed, recorded in the log for diagnostics only (0 = time based)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(driversCmd)
	rootCmd.AddCommand(configCmd)
}
