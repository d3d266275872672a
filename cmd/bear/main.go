// bear runs the Bear Adventure cartridge in a terminal, a desktop window or
// over SSH.
//
// Usage:
//
//	bear                     - Start menu
//	bear list                - List available cartridges
//	bear play                - Play in the terminal
//	bear console             - Play in a desktop window
//	bear serve               - Start SSH server for remote play
//	bear stages [dir]        - Check stage files
//	bear records             - Show the best runs
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: 60)
//	--seed <value>      - Set RNG seed for reproducible gameplay
//	--db <path>         - Set database path (default: ~/.bear/runs.db)
//	--log-level <level> - debug, info, warn or error
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/bear-adventure/internal/platform/tui"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagLogLevel string

	// Cartridge flags shared by the menu, play and console
	flagConfig     string
	flagDifficulty string
	flagStageDir   string
	flagPlayer     string
	flagHold       int
	flagLogFile    string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "bear",
	Short: "Bear Adventure - a tiny side-scrolling platformer",
	Long: `Bear Adventure is a side-scrolling platformer cartridge. Walk the bear
to the castle, stomp mushrooms and monsters, and mind the holes.

Available commands:
  list     - Show available cartridges
  play     - Play in the terminal
  console  - Play in a desktop window
  serve    - Start SSH server for remote play
  stages   - Validate stage files
  records  - View the best runs

Run without a command to open the start menu.

Examples:
  bear
  bear play --difficulty easy
  bear console
  bear serve --ssh :2222
  bear stages ./stages`,
	Run: runMenu,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.bear/runs.db", "Path to run records database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom bear config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagStageDir, "stages", "", "Directory of stage YAML files (default: built-in stages)")
	rootCmd.PersistentFlags().StringVar(&flagPlayer, "player", os.Getenv("USER"), "Player name for run records")
	rootCmd.PersistentFlags().IntVar(&flagHold, "hold", tui.DefaultHoldTicks, "Ticks a terminal key press counts as held")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write game logs to this file (terminal modes)")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(consoleCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(stagesCmd)
	rootCmd.AddCommand(recordsCmd)
}

// newLogger builds the CLI logger writing to w.
func newLogger(w io.Writer) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "bear",
	})
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		logger.Warn("unknown log level, using info", "level", flagLogLevel)
		level = log.InfoLevel
	}
	logger.SetLevel(level)
	return logger
}

// fileLogger logs to path, or discards when path is empty. The returned
// close func is always safe to call.
func fileLogger(path string) (*log.Logger, func(), error) {
	if path == "" {
		return log.New(io.Discard), func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}
	return newLogger(f), func() { f.Close() }, nil
}
