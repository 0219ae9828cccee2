package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/olidan/minesweeper/internal/config"
	"github.com/olidan/minesweeper/internal/minefield"
	"github.com/olidan/minesweeper/internal/storage"
)

var flagLimit int

var scoresCmd = &cobra.Command{
	Use:   "scores [difficulty]",
	Short: "Show result history and stats",
	Long: `Display recorded game results.

Without an argument, prints per-difficulty statistics. With a
difficulty, prints its stats and the most recent games.

Examples:
  minesweeper scores
  minesweeper scores easy
  minesweeper scores hard --limit 20`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of recent games to show")
}

func runScores(cmd *cobra.Command, args []string) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	dbPath := cfg.Database.Path
	if flagDBPath != "" {
		dbPath = flagDBPath
	}

	store, err := storage.Open(dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening results database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if len(args) == 0 {
		printAllStats(store)
		return
	}

	d, err := minefield.ParseDifficulty(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: unknown difficulty %q (easy, medium or hard)\n", args[0])
		os.Exit(1)
	}
	printDifficulty(store, d.String())
}

func printAllStats(store *storage.Store) {
	all, err := store.AllStats()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving stats: %v\n", err)
		os.Exit(1)
	}

	if len(all) == 0 {
		fmt.Println("No games recorded yet.")
		fmt.Println()
		fmt.Println("Play 'minesweeper play' to record the first one!")
		return
	}

	fmt.Println("Results by difficulty:")
	fmt.Println()
	fmt.Printf("  %-8s  %-6s  %-6s  %-8s  %s\n", "Mode", "Games", "Wins", "Win rate", "Best time")
	fmt.Printf("  %-8s  %-6s  %-6s  %-8s  %s\n", "----", "-----", "----", "--------", "---------")
	for _, st := range all {
		fmt.Printf("  %-8s  %-6d  %-6d  %-8s  %s\n",
			st.Difficulty, st.Games, st.Wins,
			fmt.Sprintf("%.0f%%", st.WinRate()*100),
			formatBest(st.BestDuration))
	}
}

func printDifficulty(store *storage.Store, difficulty string) {
	stats, err := store.Stats(difficulty)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving stats: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Results - %s\n", difficulty)
	fmt.Println()

	if stats.Games == 0 {
		fmt.Println("No games recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'minesweeper play %s' to record the first one!\n", difficulty)
		return
	}

	fmt.Printf("Games: %d  Wins: %d  Win rate: %.0f%%  Best time: %s\n",
		stats.Games, stats.Wins, stats.WinRate()*100, formatBest(stats.BestDuration))
	fmt.Println()

	recent, err := store.RecentResults(difficulty, flagLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving results: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("  %-8s  %-6s  %-6s  %s\n", "Outcome", "Time", "Dug", "Date")
	fmt.Printf("  %-8s  %-6s  %-6s  %s\n", "-------", "----", "---", "----")
	for _, r := range recent {
		outcome := "lost"
		if r.Won {
			outcome = "won"
		}
		fmt.Printf("  %-8s  %-6s  %-6d  %s\n",
			outcome, fmt.Sprintf("%ds", r.DurationSecs), r.CellsDug,
			r.CreatedAt.Format("2006-01-02 15:04"))
	}
}

func formatBest(secs int) string {
	if secs == 0 {
		return "-"
	}
	return fmt.Sprintf("%ds", secs)
}
