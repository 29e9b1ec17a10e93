package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/splitjoin/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List game variants",
	Long:  `Shows every registered variant with its controls.`,
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	games := registry.List()
	if len(games) == 0 {
		fmt.Println("No games available.")
		return
	}

	maxIDLen := 2 // "ID" header
	for _, g := range games {
		maxIDLen = max(maxIDLen, len(g.ID))
	}

	fmt.Println("Available variants:")
	fmt.Println()
	fmt.Printf("  %-*s  %s\n", maxIDLen, "ID", "Title")
	fmt.Printf("  %-*s  %s\n", maxIDLen, "--", "-----")
	for _, g := range games {
		fmt.Printf("  %-*s  %s\n", maxIDLen, g.ID, g.Title)
		if game, err := registry.Create(g.ID); err == nil {
			fmt.Printf("  %-*s  %s\n", maxIDLen, "", game.Controls())
		}
	}

	fmt.Println()
	fmt.Println("Run 'splitjoin play <id>' to play.")
}
