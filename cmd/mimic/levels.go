package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mkarev/mimic/internal/game"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List the level catalog",
	Long: `List every level with its length and the size of each character's part.

Example:
  mimic levels`,
	Args: cobra.NoArgs,
	Run:  runLevels,
}

func runLevels(_ *cobra.Command, _ []string) {
	catalog, err := game.LoadCatalog()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading levels: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("%-6s %-8s %-8s %s\n", "LEVEL", "LENGTH", "ACTIONS", "PARTS PER CHARACTER")
	for _, lvl := range catalog.Levels() {
		var parts [game.CharacterCount]int
		for _, a := range lvl.Actions {
			parts[a.Character]++
		}
		fmt.Printf("%-6d %-8s %-8d %v\n",
			lvl.ID,
			fmt.Sprintf("%.1fs", float64(lvl.TotalMs)/1000),
			len(lvl.Actions),
			parts,
		)
	}
}
