package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/bear-adventure/internal/cartridge"
	"github.com/vovakirdan/bear-adventure/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the Bear Adventure SSH server",
	Long: `Start an SSH server that lets users connect and play.

Each SSH connection gets its own session with the start menu. Runs are
stored per server, so every user shares the same best-runs table.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.bear/host_key

Examples:
  bear serve                           # Listen on :23234 with auto-generated key
  bear serve --ssh :2222               # Listen on port 2222
  bear serve --host-key ./my_host_key  # Use specific host key
  bear serve --db ./runs.db            # Use specific database

Users can connect with:
  ssh localhost -p 23234`,
	Run: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
}

func runServe(_ *cobra.Command, _ []string) {
	logger := newLogger(os.Stderr)

	cartridge.SetConfigPath(flagConfig)
	cartridge.SetDifficultyPreset(flagDifficulty)
	cartridge.SetStageDir(flagStageDir)

	cfg := tui.DefaultSSHServerConfig()
	cfg.Address = flagSSHAddr
	cfg.HostKeyPath = flagHostKey
	cfg.DBPath = flagDBPath
	cfg.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute
	cfg.TickRate = flagFPS
	cfg.HoldTicks = flagHold

	server, err := tui.NewSSHServer(cfg, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating server: %v\n", err)
		os.Exit(1)
	}

	logger.Info("connect with ssh", "command", "ssh localhost -p <port>", "address", server.Addr())
	if err := server.ListenAndServe(); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}
