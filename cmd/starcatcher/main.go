// starcatcher is a terminal arcade game: flap through pipes collecting stars,
// or catch falling stars in a basket.
//
// Usage:
//
//	starcatcher list              - List available variants
//	starcatcher play <variant>    - Play a variant
//	starcatcher config <variant>  - Print the effective configuration
//	starcatcher sim <variant>     - Run a headless autopilot game
//
// Global flags:
//
//	--log-level <level>  - debug, info, warn or error (default: info)
//	--log-file <path>    - Write logs to a file instead of stderr
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	// Import variants to register them
	_ "github.com/vovakirdan/star-catcher/internal/games/catcher"
	_ "github.com/vovakirdan/star-catcher/internal/games/flappy"
)

var (
	// Global flags
	flagLogLevel string
	flagLogFile  string

	logger  = log.New(os.Stderr)
	logFile io.Closer
)

func main() {
	err := rootCmd.Execute()
	if logFile != nil {
		logFile.Close()
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "starcatcher",
	Short: "Star Catcher - collect stars in your terminal",
	Long: `Star Catcher is a single-screen arcade game with two variants:

  flappy   - flap through gaps in scrolling pipes and collect the star in each gap
  catcher  - slide a basket along the bottom and catch falling stars

Examples:
  starcatcher list
  starcatcher play flappy
  starcatcher play catcher --mute
  starcatcher config flappy
  starcatcher sim flappy --seed 42`,
	SilenceUsage:      true,
	PersistentPreRunE: setupLogging,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(simCmd)
}

// setupLogging configures the shared logger from the global flags.
func setupLogging(cmd *cobra.Command, args []string) error {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level: %w", err)
	}

	var out io.Writer = os.Stderr
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("cannot open log file: %w", err)
		}
		logFile = f
		out = f
	}

	logger = log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          "starcatcher",
		Level:           level,
	})
	return nil
}
