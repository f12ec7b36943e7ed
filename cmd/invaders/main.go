// invaders is a terminal arcade shooter.
//
// Usage:
//
//	invaders                   - Open the mode picker menu
//	invaders menu              - Same as above
//	invaders list              - List available game modes
//	invaders play [mode]       - Play (default mode: invaders)
//	invaders simulate          - Run the simulation headless and print statistics
//	invaders serve             - Start SSH server for remote play
//	invaders scores [mode]     - Show high scores and recent runs
//
// Global flags:
//
//	--fps <rate>    - Set render rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.arcade/scores.db)
//	--log <path>    - Write debug logs of game events to a file
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-invaders/internal/games/invaders"
)

var (
	// Global flags
	flagFPS     int
	flagSeed    int64
	flagDBPath  string
	flagLogPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "invaders",
	Short: "Invaders - a space shooter in your terminal",
	Long: `Invaders is a terminal space shooter. Move your ship along the bottom
of the playfield, fire laser pairs at the invader and dodge its shots.

Run without a command to open the mode picker menu.

Available commands:
  menu      - Pick a mode and difficulty interactively
  list      - Show the available game modes
  play      - Play a game
  simulate  - Run the simulation without a terminal UI
  serve     - Start SSH server for remote play
  scores    - View high scores and recent runs

Examples:
  invaders play
  invaders play invaders_endless --difficulty hard
  invaders simulate --ticks 36000 --seed 7
  invaders serve --ssh :2222
  invaders scores --tui`,
	PersistentPreRunE: setupLogging,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Render rate (frames per second); the simulation keeps timing.tick_rate")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.arcade/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogPath, "log", "", "Write debug logs of game events to this file")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}

// logFile is closed by closeLogging once the command finishes.
var logFile io.Closer

// setupLogging routes game event logs to --log. The terminal belongs to the
// game, so nothing is logged without it.
func setupLogging(_ *cobra.Command, _ []string) error {
	if flagLogPath == "" {
		return nil
	}

	f, err := os.OpenFile(flagLogPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return fmt.Errorf("cannot open log file: %w", err)
	}
	logFile = f

	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Level:           log.DebugLevel,
		Prefix:          "invaders",
	})
	invaders.SetLogger(logger)
	return nil
}

// closeLogging flushes and closes the log file, if any.
func closeLogging() {
	if logFile != nil {
		//nolint:errcheck // Nothing left to report to
		logFile.Close()
		logFile = nil
	}
}
