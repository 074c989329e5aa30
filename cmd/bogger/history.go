package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/bogger/internal/storage"
)

var (
	flagLimit int
	flagMode  string
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent runs",
	Long: `Display the most recent finished runs and totals.

Examples:
  bogger history
  bogger history --limit 25`,
	Args: cobra.NoArgs,
	Run:  runHistory,
}

func init() {
	historyCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of runs to show")
	historyCmd.Flags().StringVar(&flagMode, "mode", "bogger", "Game mode to show")
}

func runHistory(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening run history: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	runs, err := store.Recent(flagMode, flagLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Recent runs - %s\n", flagMode)
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Finish a game of 'bogger play' to record the first run!")
		return
	}

	fmt.Printf("  %-4s  %-6s  %-7s  %-7s  %-5s  %-5s  %s\n", "#", "Score", "Rescues", "Berries", "Chain", "Time", "Date")
	fmt.Printf("  %-4s  %-6s  %-7s  %-7s  %-5s  %-5s  %s\n", "-", "-----", "-------", "-------", "-----", "----", "----")

	for i, r := range runs {
		secs := r.DurationMs / 1000
		fmt.Printf("  %-4d  %-6d  %-7d  %-7d  %-5d  %2d:%02d  %s\n",
			i+1, r.Score, r.Rescues, r.Berries, r.PeakSegments, secs/60, secs%60,
			r.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.Stats(flagMode)
	if err == nil {
		fmt.Println()
		fmt.Printf("Runs: %d  Best: %d  Average: %.1f  Longest pontoon: %d\n",
			stats.Runs, stats.BestScore, stats.AvgScore, stats.LongestChain)
	}
}
