// minesweeper is a terminal Minesweeper game.
//
// Usage:
//
//	minesweeper play [difficulty]  - Play a game (easy, medium or hard)
//	minesweeper scores [difficulty] - Show result history and stats
//	minesweeper rules              - Print the how-to-play text
//
// Global flags:
//
//	--seed <value>   - RNG seed for reproducible boards
//	--db <path>      - Results database path (default from config)
//	--config <path>  - Path to a custom config YAML
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagSeed   int64
	flagDBPath string
	flagConfig string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "minesweeper",
	Short: "Minesweeper - dig up a minefield in your terminal",
	Long: `Minesweeper is a terminal game: dig up every safe location of a
minefield without hitting a mine.

Available commands:
  play     - Play a game
  scores   - View result history and per-difficulty stats
  rules    - Print the how-to-play text

Examples:
  minesweeper play
  minesweeper play hard
  minesweeper scores easy`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to results database (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(rulesCmd)
}
