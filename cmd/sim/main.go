// sim runs the Little Witch player controller headless and prints a per-tick
// trace.
//
// Usage:
//
//	sim run [--script name | --sequence name] [--ticks n] [--basic]
//	sim list                 - List built-in sequences and embedded scripts
//
// Global flags:
//
//	--tps <rate>        - Simulation tick rate (default: 60)
//	--log-level <lvl>   - debug, info, warn or error (default: warn)
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	flagTPS      int
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "sim",
	Short: "Headless Little Witch movement simulator",
	Long: `Runs the player controller against the prefab level without a window.

Examples:
  sim list
  sim run --sequence dash
  sim run --script dash_demo --ticks 240
  sim run --sequence jump --basic --log-level debug`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagTPS, "tps", 60, "Simulation tick rate (ticks per second)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "warn", "Log level (debug, info, warn, error)")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(listCmd)
}

func newLogger() (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}
	return log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "sim",
		Level:           level,
	}), nil
}
