package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tank-battleground/internal/registry"
	"github.com/vovakirdan/tank-battleground/internal/storage"
)

var flagRecent int

var scoresCmd = &cobra.Command{
	Use:   "scores <mode>",
	Short: "Show high scores for a mode",
	Long: `Display the top 10 scores and the most recent rounds for a mode.

Examples:
  battleground scores tanks
  battleground scores tanks_survival --recent 20`,
	Args: cobra.ExactArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagRecent, "recent", 5, "Number of recent rounds to show")
}

func runScores(_ *cobra.Command, args []string) error {
	gameID := args[0]

	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown mode %q, run 'battleground list' to see available modes", gameID)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("cannot create game: %w", err)
	}
	title := game.Title()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	scores, err := store.TopScores(gameID, 10)
	if err != nil {
		return err
	}

	fmt.Printf("High Scores - %s\n", title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'battleground play %s' to set the first high score!\n", gameID)
		return nil
	}

	fmt.Printf("  %-4s  %-8s  %-8s  %-8s  %s\n", "Rank", "Total", "P1", "P2", "Date")
	fmt.Printf("  %-4s  %-8s  %-8s  %-8s  %s\n", "----", "-----", "--", "--", "----")
	for i, entry := range scores {
		fmt.Printf("  %-4d  %-8d  %-8d  %-8d  %s\n",
			i+1, entry.Score, entry.Score1, entry.Score2, entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	if stats, err := store.GetGameStats(gameID); err == nil {
		fmt.Println()
		fmt.Printf("Best: %d   Rounds: %d\n", stats.HighScore, stats.GamesCount)
	}

	if flagRecent <= 0 {
		return nil
	}
	matches, err := store.RecentMatches(gameID, flagRecent)
	if err != nil {
		return err
	}
	if len(matches) == 0 {
		return nil
	}

	fmt.Println()
	fmt.Println("Recent rounds:")
	fmt.Printf("  %-16s  %-8s  %-6s  %s\n", "Date", "Total", "Time", "End")
	for _, m := range matches {
		fmt.Printf("  %-16s  %-8d  %-6s  %s\n",
			m.CreatedAt.Format("2006-01-02 15:04"), m.Total(), clock(m.DurationSecs), m.EndReason)
	}
	return nil
}

func clock(secs int) string {
	return fmt.Sprintf("%02d:%02d", secs/60, secs%60)
}
