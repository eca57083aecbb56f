package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mkarev/mimic/internal/config"
	"github.com/mkarev/mimic/internal/storage"
)

var (
	flagLimit int
	flagDuets bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the best runs",
	Long: `Show the best recorded runs, solo and duet.

Examples:
  mimic scores
  mimic scores --limit 5
  mimic scores --duets`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of entries to show")
	scoresCmd.Flags().BoolVar(&flagDuets, "duets", false, "Show recent duet matches instead of runs")
}

func runScores(_ *cobra.Command, _ []string) {
	dbPath := flagDBPath
	if dbPath == "" {
		cfg, err := config.Load("")
		if err == nil {
			dbPath = cfg.DB.Path
		}
	}

	store, err := storage.Open(dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagDuets {
		printDuets(store)
		return
	}
	printRuns(store)
}

func printRuns(store *storage.Store) {
	runs, err := store.TopRuns(flagLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading runs: %v\n", err)
		os.Exit(1)
	}
	if len(runs) == 0 {
		fmt.Println("No runs recorded yet. Play one with: mimic play")
		return
	}

	fmt.Printf("%-4s %-16s %-6s %-7s %-6s %s\n", "#", "PLAYER", "SCORE", "LEVELS", "MODE", "RANK")
	for i, run := range runs {
		fmt.Printf("%-4d %-16s %-6d %-7d %-6s %s\n", i+1, run.Player, run.Score, run.LevelsCleared, run.Mode, run.Rank)
	}
}

func printDuets(store *storage.Store) {
	matches, err := store.RecentDuetMatches(flagLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading duet matches: %v\n", err)
		os.Exit(1)
	}
	if len(matches) == 0 {
		fmt.Println("No duet matches recorded yet. Host one with: mimic serve")
		return
	}

	fmt.Printf("%-10s %-16s %-6s %-16s %-6s %s\n", "ROOM", "PLAYER 1", "SCORE", "PLAYER 2", "SCORE", "WHEN")
	for _, match := range matches {
		fmt.Printf("%-10s %-16s %-6d %-16s %-6d %s\n",
			match.Room, match.Player1, match.Score1, match.Player2, match.Score2,
			match.CreatedAt.Format("2006-01-02 15:04"))
	}
}
