package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/splitjoin/internal/core"
	"github.com/vovakirdan/splitjoin/internal/games/splitjoin"
	"github.com/vovakirdan/splitjoin/internal/platform/tui"
	"github.com/vovakirdan/splitjoin/internal/registry"
	"github.com/vovakirdan/splitjoin/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play [variant]",
	Short: "Play in the terminal",
	Long: `Start a game in the terminal. Without an argument the standard variant
starts in play mode; splitjoin_setup starts in free-edit mode.

Controls:
  Arrows/WASD  - Move cursor
  Space/Click  - Split or join (play), toggle cell (edit)
  E/Tab        - Switch play/edit (returning to play resets the best score)
  M, X         - Set anchor, toggle rectangle (edit)
  Shift+Click  - Toggle rectangle from last edited cell (edit)
  R            - Reset board (asks first)
  ?            - Full help
  Q/Ctrl+C     - Quit

Examples:
  splitjoin play
  splitjoin play splitjoin_setup
  splitjoin play --config ./my-splitjoin.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, args []string) error {
	gameID := splitjoin.GameID
	if len(args) == 1 {
		gameID = args[0]
	}
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown variant %q, run 'splitjoin list' to see variants", gameID)
	}

	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}

	logger, closeLog := fileLogger("splitjoin")
	defer closeLog()

	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
	}

	store, err := storage.Open(appConfig.Storage.DBPath)
	if err != nil {
		// Play on without persistence.
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("Scores database unavailable", "err", err)
		store = nil
	} else {
		defer store.Close()
		cfg.Scores = storage.NewKeyedBestScore(store, appConfig.Storage.BestScoreKey, logger)
	}

	logger.Info("Starting game", "game", gameID, "size", fmt.Sprintf("%dx%d", width, height))
	return tui.Run(game, store, cfg, logger)
}
