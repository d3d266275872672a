package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/bear-adventure/internal/cartridge"
	"github.com/vovakirdan/bear-adventure/internal/core"
	"github.com/vovakirdan/bear-adventure/internal/platform/console"
)

const settingsApp = "bear_adventure"

var flagScale int

var consoleCmd = &cobra.Command{
	Use:   "console",
	Short: "Play Bear Adventure in a desktop window",
	Long: `Open Bear Adventure in a desktop window with sound.

The window scale and mute setting are remembered between runs.

Controls:
  Left/Right, A/D  - Walk
  Z/Space          - Jump, start
  X/Enter          - Next stage, back to title
  P                - Pause
  M                - Mute
  Esc/Q            - Quit

Examples:
  bear console
  bear console --scale 6
  bear console --stages ./stages --watch`,
	Args: cobra.NoArgs,
	Run:  runConsole,
}

func init() {
	consoleCmd.Flags().IntVar(&flagScale, "scale", 0, "Window scale (saved for later runs)")
	consoleCmd.Flags().BoolVar(&flagWatch, "watch", false, "Reload stages when files in --stages change")
}

func runConsole(_ *cobra.Command, _ []string) {
	logger := newLogger(os.Stderr)

	settings, err := console.OpenSettings(settingsApp)
	if err != nil {
		logger.Warn("settings unavailable, using defaults", "err", err)
	}
	if flagScale > 0 {
		s := settings.Get()
		s.Scale = flagScale
		settings.Set(s)
		if err := settings.Save(); err != nil {
			logger.Warn("could not save settings", "err", err)
		}
	}

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	game, err := createGame(cartridge.ID, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}
	cart := game.(*cartridge.Game)

	if flagWatch {
		if flagStageDir == "" {
			fmt.Fprintln(os.Stderr, "Error: --watch needs --stages")
			os.Exit(1)
		}
		stop, err := watchStages(flagStageDir, cart, logger)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		defer stop()
	}

	cfg := core.RuntimeConfig{TickRate: flagFPS, Seed: flagSeed}
	if err := console.Run(cart, cfg, console.Options{
		Player:   flagPlayer,
		Settings: settings,
		Store:    store,
		Logger:   logger,
	}); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
