package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/splitjoin/internal/games/splitjoin"
	"github.com/vovakirdan/splitjoin/internal/platform/tui"
	"github.com/vovakirdan/splitjoin/internal/storage"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
	flagSSHVariant  string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the SSH server",
	Long: `Start an SSH server that lets users connect and play.

Each SSH connection gets its own board. Best scores are kept per SSH user
under "<best_score_key>:<user>"; all users share the run history.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.splitjoin/host_key

Examples:
  splitjoin serve                           # Listen on the configured address
  splitjoin serve --ssh :2222               # Listen on port 2222
  splitjoin serve --variant splitjoin_setup # Sessions start in edit mode

Users can connect with:
  ssh localhost -p 23234`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", "", "SSH server address (default from config)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 0, "Idle timeout in minutes (default from config)")
	serveCmd.Flags().StringVar(&flagSSHVariant, "variant", splitjoin.GameID, "Variant every session plays")
}

func runServe(_ *cobra.Command, _ []string) error {
	logger := newLogger(os.Stderr, "splitjoin-ssh")

	cfg := tui.DefaultSSHServerConfig()
	cfg.Address = appConfig.Server.SSHAddress
	cfg.HostKeyPath = appConfig.Server.HostKeyPath
	cfg.IdleTimeout = time.Duration(appConfig.Server.IdleTimeoutMinutes) * time.Minute
	cfg.BestScoreKey = appConfig.Storage.BestScoreKey
	cfg.GameID = flagSSHVariant
	cfg.TickRate = flagFPS
	if flagSSHAddr != "" {
		cfg.Address = flagSSHAddr
	}
	if flagHostKey != "" {
		cfg.HostKeyPath = flagHostKey
	}
	if flagIdleTimeout > 0 {
		cfg.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute
	}

	store, err := storage.Open(appConfig.Storage.DBPath)
	if err != nil {
		logger.Warn("Could not open scores database, best scores will not persist", "err", err)
		store = nil
	} else {
		defer store.Close()
	}

	server, err := tui.NewSSHServer(cfg, store, logger)
	if err != nil {
		return err
	}

	fmt.Printf("Connect with: ssh localhost -p <port> (listening on %s)\n", server.Addr())
	fmt.Println("Press Ctrl+C to stop")
	return server.ListenAndServe()
}
