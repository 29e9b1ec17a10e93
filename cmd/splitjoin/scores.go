package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/splitjoin/internal/games/splitjoin"
	"github.com/vovakirdan/splitjoin/internal/platform/tui"
	"github.com/vovakirdan/splitjoin/internal/registry"
	"github.com/vovakirdan/splitjoin/internal/storage"
)

var (
	flagInteractive bool
	flagClear       bool
	flagLimit       int
)

var scoresCmd = &cobra.Command{
	Use:   "scores [variant]",
	Short: "Show recorded runs",
	Long: `Display the best recorded runs for a variant, plus the persisted best
score. With --interactive, opens a scoreboard to browse every variant.

Examples:
  splitjoin scores
  splitjoin scores splitjoin_setup --limit 20
  splitjoin scores -i
  splitjoin scores --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "Browse scores in a table")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete recorded runs for the variant")
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of runs to show")
}

func runScores(cmd *cobra.Command, args []string) error {
	gameID := splitjoin.GameID
	if len(args) == 1 {
		gameID = args[0]
	}
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown variant %q, run 'splitjoin list' to see variants", gameID)
	}

	store, err := storage.Open(appConfig.Storage.DBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	if flagInteractive {
		width, height := 80, 24
		if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
			width, height = w, h
		}
		return tui.RunScoreboard(store, width, height)
	}

	if flagClear {
		if err := store.ClearScores(gameID); err != nil {
			return err
		}
		fmt.Printf("Cleared runs for %s.\n", gameID)
		return nil
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}
	scores, err := store.TopScores(gameID, flagLimit)
	if err != nil {
		return err
	}

	fmt.Printf("Best Runs - %s\n", game.Title())
	fmt.Println()

	if best, ok, err := store.BestScore(appConfig.Storage.BestScoreKey); err == nil && ok {
		fmt.Printf("Current best score: %.2f\n", best)
		fmt.Println()
	}

	if len(scores) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'splitjoin play %s' to record one.\n", gameID)
		return nil
	}

	fmt.Printf("  %-4s  %-8s  %-5s  %s\n", "Rank", "Best", "Level", "Date")
	fmt.Printf("  %-4s  %-8s  %-5s  %s\n", "----", "----", "-----", "----")
	for i, entry := range scores {
		fmt.Printf("  %-4d  %-8.2f  %-5d  %s\n", i+1, entry.Score, entry.Level, entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	if high, err := store.HighScore(gameID); err == nil {
		fmt.Println()
		fmt.Printf("Highest: %.2f\n", high)
	}
	return nil
}
