// mimic is a terminal rhythm game: watch five faces perform, then sing
// your character's part from memory.
//
// Usage:
//
//	mimic play               - Play a solo run
//	mimic serve              - Start the SSH server for duet play
//	mimic scores             - Show the best runs
//	mimic levels             - List the level catalog
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 30)
//	--seed <value>  - Set RNG seed for a reproducible seat draw
//	--db <path>     - Set database path (default: ~/.mimic/mimic.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "mimic",
	Short: "Mimic - a listen-and-repeat rhythm game for your terminal",
	Long: `Mimic puts five singing faces on stage. Each round they perform a short
piece; one of the parts is yours. Watch the demo, then repeat your part
from memory with the space bar. Timing counts.

Available commands:
  play     - Play a solo run
  serve    - Start the SSH server for two-player duets
  scores   - View the best runs
  levels   - List the level catalog

Examples:
  mimic play
  mimic play --seed 7
  mimic serve --ssh :2222
  mimic scores --limit 5`,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 30, "Tick rate (activation updates per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to results database (default from config)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(levelsCmd)
}
