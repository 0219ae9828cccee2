package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	xterm "golang.org/x/term"

	"github.com/olidan/minesweeper/internal/config"
	"github.com/olidan/minesweeper/internal/minefield"
	"github.com/olidan/minesweeper/internal/platform/term"
	"github.com/olidan/minesweeper/internal/storage"
)

var flagShowHelp bool

var playCmd = &cobra.Command{
	Use:   "play [difficulty]",
	Short: "Play a game of minesweeper",
	Long: `Start a game. The optional difficulty argument skips the prompt.

Difficulties:
  easy   - 10 mines on an 8x8 board
  medium - 40 mines on a 15x15 board
  hard   - 40 mines on a 30x16 board

Moves are typed as '<action> <row> <col>' with 1-based coordinates:
  D 5 6  - dig at row 5, column 6
  F 5 6  - toggle a flag at row 5, column 6
  Q      - abandon the game

Examples:
  minesweeper play
  minesweeper play hard
  minesweeper play easy --seed 42`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagShowHelp, "help-text", false, "Print the how-to-play text before the game")
}

func runPlay(cmd *cobra.Command, args []string) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	logger := newLogger(cfg)

	// An explicit argument must be valid; a config token is validated
	// by the loop and falls back to the prompt.
	difficulty := cfg.DefaultDifficulty
	if len(args) == 1 {
		difficulty = args[0]
		if _, err := minefield.ParseDifficulty(difficulty); err != nil {
			fmt.Fprintf(os.Stderr, "Error: unknown difficulty %q (easy, medium or hard)\n", difficulty)
			os.Exit(1)
		}
	}

	store := openStore(cfg, logger)

	// Terminal width, for the board-wrap warning
	width := 0
	if w, _, termErr := xterm.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
	}

	opts := term.Options{
		Difficulty: difficulty,
		ShowHelp:   flagShowHelp || cfg.ShowHelpOnStart,
		Seed:       flagSeed,
		TermWidth:  width,
	}

	loop := term.NewLoop(opts, store, logger, os.Stdin, os.Stdout)
	runErr := loop.Run()

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

// newLogger builds the diagnostic logger from config. Diagnostics go
// to stderr; the board and prompts own stdout.
func newLogger(cfg config.Config) *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		Prefix: "minesweeper",
	})
	if lvl, err := log.ParseLevel(cfg.Log.Level); err == nil {
		logger.SetLevel(lvl)
	}
	return logger
}

// openStore opens the results database, or returns nil when recording
// is disabled or the database cannot be opened. A broken database is
// never fatal for playing.
func openStore(cfg config.Config, logger *log.Logger) *storage.Store {
	if cfg.Database.Disabled {
		return nil
	}
	dbPath := cfg.Database.Path
	if flagDBPath != "" {
		dbPath = flagDBPath
	}
	store, err := storage.Open(dbPath)
	if err != nil {
		logger.Warn("could not open results database", "error", err)
		return nil
	}
	return store
}
