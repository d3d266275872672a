package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/bear-adventure/internal/cartridge"
	"github.com/vovakirdan/bear-adventure/internal/platform/tui"
)

var flagWatch bool

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play Bear Adventure in the terminal",
	Long: `Start Bear Adventure in the terminal.

Terminals do not report key releases, so a key press counts as held for
--hold ticks and auto-repeat keeps it held.

Controls:
  Left/Right, A/D  - Walk
  Z/Space          - Jump, start
  X/Enter          - Next stage, back to title
  P                - Pause
  Ctrl+S           - Save a screenshot
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - Slower enemies, more HP
  normal - Default tuning
  hard   - Faster enemies, less HP
  fixed  - Config file tuning only

Examples:
  bear play
  bear play --difficulty hard
  bear play --stages ./stages --watch
  bear play --config ./my-bear.yaml --log-file bear.log`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagWatch, "watch", false, "Reload stages when files in --stages change")
}

func runPlay(_ *cobra.Command, _ []string) {
	if flagWatch && flagStageDir == "" {
		fmt.Fprintln(os.Stderr, "Error: --watch needs --stages")
		os.Exit(1)
	}

	logger, closeLog, err := fileLogger(flagLogFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	game, err := createGame(cartridge.ID, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	if flagWatch {
		stop, err := watchStages(flagStageDir, game.(*cartridge.Game), logger)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		defer stop()
	}

	if err := tui.Run(game, store, terminalConfig(), tui.Options{
		Player:    flagPlayer,
		HoldTicks: flagHold,
		Logger:    logger,
	}); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
