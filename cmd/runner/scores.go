package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-runner/internal/platform/tui"
	"github.com/vovakirdan/tui-runner/internal/score"
	"github.com/vovakirdan/tui-runner/internal/storage"
)

var (
	flagScoresLimit int
	flagInteractive bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the leaderboard",
	Long: `Display the top runs on the leaderboard.

Examples:
  runner scores
  runner scores --limit 25
  runner scores --interactive`,
	Run: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of entries to show")
	scoresCmd.Flags().BoolVar(&flagInteractive, "interactive", false, "Browse the leaderboard in a full-screen table")
}

func runScores(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening results database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	scores := score.NewService(store)

	if flagInteractive {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width = w
			height = h
		}
		if err := tui.RunScoreboard(scores, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error showing leaderboard: %v\n", err)
			os.Exit(1)
		}
		return
	}

	entries, err := scores.Leaderboard(flagScoresLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Leaderboard")
	fmt.Println()

	if len(entries) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'runner play' to set the first one!")
		return
	}

	fmt.Printf("  %-4s  %-20s  %-10s  %-8s  %s\n", "Rank", "Player", "Score", "Avoided", "Date")
	fmt.Printf("  %-4s  %-20s  %-10s  %-8s  %s\n", "----", "------", "-----", "-------", "----")

	for _, e := range entries {
		dateStr := e.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-20s  %-10d  %-8d  %s\n", e.Rank, e.PlayerName, e.Score, e.ObstaclesAvoided, dateStr)
	}

	best, err := scores.BestScore()
	if err == nil && best > 0 {
		fmt.Println()
		fmt.Printf("Best: %d\n", best)
	}
}
