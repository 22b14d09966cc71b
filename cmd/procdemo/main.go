// Procdemo is a terminal demo of a simulated process.
//
// A fake external process changes its temperature, percent, state and
// color on two periodic update loops. The interactive display shows the
// values live and lets the user edit the limits and the mode.
//
// Usage:
//
//	procdemo [command] [flags]
//
// Running without arguments launches the interactive display.
// See 'procdemo --help' for available commands.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/muurk/procdemo/internal/version"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// Global flags
var (
	configPath string
	logLevel   string
	seed       int64
)

var rootCmd = &cobra.Command{
	Use:   "procdemo",
	Short: "Simulated process demo",
	Long: `A terminal demo of a simulated external process.

The process has a temperature and a percentage that sweep back and forth
between limits, a state that changes at random, a mode you can set, and a
color that cycles through RGB space.

If no command is specified, the interactive display will launch.

Keys:
  Tab     select the next region
  Enter   go into the selected region, or edit the selected field
  Esc     go back out
  Ctrl-p  add a message
  Arrows  scroll the messages
  Ctrl-x  exit`,
	Version:       version.Version,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runSession,
}

func init() {
	// Disable automatic completion command generation
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default: $XDG_CONFIG_HOME/procdemo/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error); overrides the config file")
	rootCmd.PersistentFlags().Int64Var(&seed, "seed", 0, "Random seed; 0 picks one from the clock")

	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "procdemo %s\n", version.Full())
	},
}
