package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/bear-adventure/internal/cartridge"
	"github.com/vovakirdan/bear-adventure/internal/core"
	"github.com/vovakirdan/bear-adventure/internal/platform/tui"
	"github.com/vovakirdan/bear-adventure/internal/registry"
	"github.com/vovakirdan/bear-adventure/internal/storage"
)

// openStore opens the run records database, warning and returning nil when
// it cannot.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open runs database: %v\n", err)
		return nil
	}
	return store
}

// terminalConfig builds a runtime config sized to the terminal.
func terminalConfig() core.RuntimeConfig {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

func runMenu(_ *cobra.Command, _ []string) {
	store := openStore()
	if store != nil {
		defer store.Close()
	}

	logger, closeLog, err := fileLogger(flagLogFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	cfg := terminalConfig()

	for {
		menuResult, err := tui.RunMenu(cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return
		}
		cfg = menuResult.Config
		if menuResult.Quit {
			return
		}

		switch menuResult.Item.Kind {
		case tui.MenuRecords:
			goBack, recErr := tui.RunRecords(store, cfg.ScreenW, cfg.ScreenH)
			if recErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", recErr)
			}
			if !goBack {
				return
			}
			continue

		case tui.MenuPlay:
			game, err := createGame(menuResult.Item.GameID, logger)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
				continue
			}
			if err := tui.Run(game, store, cfg, tui.Options{
				Player:    flagPlayer,
				HoldTicks: flagHold,
				Logger:    logger,
				InMenu:    true,
			}); err != nil {
				fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
			}
		}
	}
}

// createGame creates a registered cartridge with the CLI's tuning applied
// and logger attached.
func createGame(id string, logger *log.Logger) (registry.Game, error) {
	cartridge.SetConfigPath(flagConfig)
	cartridge.SetDifficultyPreset(flagDifficulty)
	cartridge.SetStageDir(flagStageDir)

	game, err := registry.Create(id)
	if err != nil {
		return nil, err
	}
	if l, ok := game.(interface{ SetLogger(*log.Logger) }); ok {
		l.SetLogger(logger)
	}
	return game, nil
}
