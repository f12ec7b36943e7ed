package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-invaders/internal/registry"
	"github.com/vovakirdan/tui-invaders/internal/storage"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available game modes",
	Long:  `Shows every registered game mode, with play statistics when a scores database exists.`,
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	games := registry.List()

	if len(games) == 0 {
		fmt.Println("No games available.")
		return
	}

	// Stats are optional; a missing database just leaves the columns empty
	var stats map[string]*storage.GameStats
	if store, err := storage.Open(flagDBPath); err == nil {
		stats, _ = store.GetAllGamesStats()
		store.Close()
	}

	fmt.Println("Available modes:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	maxTitleLen := 5
	for _, g := range games {
		maxIDLen = max(maxIDLen, len(g.ID))
		maxTitleLen = max(maxTitleLen, len(g.Title))
	}

	// Print header
	fmt.Printf("  %-*s  %-*s  %6s  %6s  %6s\n", maxIDLen, "ID", maxTitleLen, "Title", "Games", "Best", "Kills")
	fmt.Printf("  %-*s  %-*s  %6s  %6s  %6s\n", maxIDLen, "--", maxTitleLen, "-----", "-----", "----", "-----")

	// Print games
	for _, g := range games {
		played, best, kills := "-", "-", "-"
		if st, ok := stats[g.ID]; ok {
			played = fmt.Sprint(st.GamesCount)
			best = fmt.Sprint(st.HighScore)
			kills = fmt.Sprint(st.TotalKills)
		}
		fmt.Printf("  %-*s  %-*s  %6s  %6s  %6s\n", maxIDLen, g.ID, maxTitleLen, g.Title, played, best, kills)
	}

	fmt.Println()
	fmt.Println("Run 'invaders play <id>' to play.")
}
