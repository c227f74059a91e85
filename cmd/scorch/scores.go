package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-scorch/internal/platform/tui"
	"github.com/vovakirdan/tui-scorch/internal/storage"
)

var (
	flagScoresPlayers     int
	flagScoresInteractive bool
	flagScoresName        string
	flagScoresClear       bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the leaderboard",
	Long: `Display the top 10 results for matches of the given size.
Each match size keeps its own board.

Examples:
  scorch scores
  scorch scores --players 4
  scorch scores --interactive
  scorch scores --name Alfa
  scorch scores --players 4 --clear`,
	Run: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresPlayers, "players", 2, "Match size to show the board for")
	scoresCmd.Flags().BoolVarP(&flagScoresInteractive, "interactive", "i", false, "Browse all boards in a full-screen view")
	scoresCmd.Flags().StringVar(&flagScoresName, "name", "", "Show aggregated stats for one player instead of a board")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Wipe the board for the given match size")
}

func runScores(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening results database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagScoresClear {
		if err := store.ClearResults(flagScoresPlayers); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing results: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Cleared the %d-player board.\n", flagScoresPlayers)
		return
	}

	if flagScoresName != "" {
		stats, err := store.GetPlayerStats(flagScoresName)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error retrieving player stats: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("%s\n", stats.Name)
		fmt.Printf("  Wins:       %d\n", stats.Wins)
		fmt.Printf("  Best score: %.2f\n", stats.BestScore)
		fmt.Printf("  Kills:      %d\n", stats.TotalKills)
		fmt.Printf("  Shots:      %d\n", stats.TotalShots)
		if !stats.LastPlayed.IsZero() {
			fmt.Printf("  Last win:   %s\n", stats.LastPlayed.Format("2006-01-02 15:04"))
		}
		return
	}

	if flagScoresInteractive {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		if _, sbErr := tui.RunScoreboard(store, width, height); sbErr != nil {
			fmt.Fprintf(os.Stderr, "Error showing leaderboard: %v\n", sbErr)
			os.Exit(1)
		}
		return
	}

	results, err := store.TopResults(flagScoresPlayers, 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving results: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Leaderboard - %d players\n", flagScoresPlayers)
	fmt.Println()

	if len(results) == 0 {
		fmt.Println("No results recorded yet.")
		fmt.Println()
		fmt.Printf("Win 'scorch play --players %d' to claim the board!\n", flagScoresPlayers)
		return
	}

	// Print header
	fmt.Printf("  %-4s  %-16s  %-7s  %-7s  %s\n", "Rank", "Name", "Score", "K/S", "Date")
	fmt.Printf("  %-4s  %-16s  %-7s  %-7s  %s\n", "----", "----", "-----", "---", "----")

	for i, entry := range results {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		ks := fmt.Sprintf("%d/%d", entry.Kills, entry.Shots)
		fmt.Printf("  %-4d  %-16s  %-7.2f  %-7s  %s\n", i+1, entry.Name, entry.Score, ks, dateStr)
	}

	fmt.Println()
	best, err := store.BestScore(flagScoresPlayers)
	if err == nil {
		fmt.Printf("Best: %.2f\n", best)
	}
}
