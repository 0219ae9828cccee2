// Package term runs the text interaction loop for minesweeper: it
// prompts for a difficulty, parses dig/flag commands, prints the board
// dump after every move and records finished games. All game rules
// live in the minefield package; this is glue over its public
// operations.
package term

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/olidan/minesweeper/internal/minefield"
	"github.com/olidan/minesweeper/internal/storage"
)

// Options configures one run of the interaction loop.
type Options struct {
	// Difficulty is a preset token (easy/medium/hard). Empty means
	// prompt the player.
	Difficulty string

	// ShowHelp prints the how-to-play text up front instead of asking.
	ShowHelp bool

	// Seed for board generation. 0 means time-based.
	Seed int64

	// TermWidth is the terminal width in characters, used to warn when
	// the board dump will wrap. 0 means unknown.
	TermWidth int
}

// Loop drives games of minesweeper over a line-based reader/writer
// pair, so it can run on a real terminal or on scripted buffers in
// tests.
type Loop struct {
	opts   Options
	store  *storage.Store // nil disables result recording
	logger *log.Logger
	in     *bufio.Scanner
	out    io.Writer
	rng    *rand.Rand
}

// errInputClosed reports that the input stream ended mid-prompt.
var errInputClosed = errors.New("term: input closed")

// NewLoop creates a loop reading player input from in and printing to
// out. store may be nil, in which case results are not recorded.
func NewLoop(opts Options, store *storage.Store, logger *log.Logger, in io.Reader, out io.Writer) *Loop {
	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Loop{
		opts:   opts,
		store:  store,
		logger: logger,
		in:     bufio.NewScanner(in),
		out:    out,
		rng:    rand.New(rand.NewSource(seed)),
	}
}

// Run plays games until the player declines another round or input
// ends. It returns nil on a normal quit.
func (l *Loop) Run() error {
	fmt.Fprintln(l.out, "Welcome to Minesweeper!")

	if l.opts.ShowHelp {
		fmt.Fprintln(l.out, HowToPlay)
	} else {
		wantHelp, err := l.promptYesNo("Would you like to see how to play? (Y/N): ")
		if err != nil {
			return l.quiet(err)
		}
		if wantHelp {
			fmt.Fprintln(l.out, HowToPlay)
		}
	}

	for {
		difficulty, err := l.resolveDifficulty()
		if err != nil {
			return l.quiet(err)
		}

		if err := l.playGame(difficulty); err != nil {
			if errors.Is(err, errInputClosed) {
				return nil
			}
			return err
		}

		again, err := l.promptYesNo("Would you like to play again? (Y/N): ")
		if err != nil {
			return l.quiet(err)
		}
		if !again {
			fmt.Fprintln(l.out, "Thanks for playing!")
			return nil
		}
		// Subsequent rounds always get a fresh difficulty prompt.
		l.opts.Difficulty = ""
	}
}

// playGame runs a single game to completion or quit.
func (l *Loop) playGame(difficulty minefield.Difficulty) error {
	field, err := minefield.New(difficulty, l.rng)
	if err != nil {
		return err
	}

	if l.opts.TermWidth > 0 && field.RenderWidth() > l.opts.TermWidth {
		l.logger.Warn("board is wider than the terminal, the dump will wrap",
			"board", field.RenderWidth(), "terminal", l.opts.TermWidth)
	}

	start := time.Now()

	for {
		fmt.Fprintln(l.out, field.Render())

		line, ok := l.readLine("Please input next move: ")
		if !ok {
			return errInputClosed
		}

		cmd, err := parseCommand(line)
		if err != nil {
			fmt.Fprintln(l.out, err)
			continue
		}
		if cmd.kind == actionQuit {
			fmt.Fprintln(l.out, "Game abandoned.")
			return nil
		}

		// Bounds are validated here, 1-based as typed; the core
		// double-checks on its side.
		row, col := cmd.row-1, cmd.col-1
		if row < 0 || row >= field.Height() {
			fmt.Fprintln(l.out, "Row location is out of bounds. Try again!")
			continue
		}
		if col < 0 || col >= field.Width() {
			fmt.Fprintln(l.out, "Column location is out of bounds. Try again!")
			continue
		}

		switch cmd.kind {
		case actionDig:
			if err := field.Dig(row, col); err != nil {
				return err
			}
			if field.Lost() {
				fmt.Fprintln(l.out, field.Render())
				fmt.Fprintln(l.out, "BOOM! You hit a mine and have lost!")
				l.recordResult(difficulty, field, start)
				return nil
			}
			if field.Won() {
				fmt.Fprintln(l.out, field.Render())
				fmt.Fprintln(l.out, "Congratulations! You have successfully navigated the minefield!")
				l.recordResult(difficulty, field, start)
				return nil
			}
		case actionFlag:
			if err := field.Flag(row, col); err != nil {
				return err
			}
		}
	}
}

// recordResult saves a finished game. Abandoned games are never
// recorded. Storage failures are logged, not fatal.
func (l *Loop) recordResult(difficulty minefield.Difficulty, field *minefield.Minefield, start time.Time) {
	if l.store == nil {
		return
	}

	snap := field.Snapshot()
	res := storage.GameResult{
		Difficulty:   difficulty.String(),
		Won:          snap.Won,
		DurationSecs: int(time.Since(start).Seconds()),
		CellsDug:     snap.Dug,
		FlagsPlaced:  snap.Flagged,
	}
	if _, err := l.store.SaveResult(res); err != nil {
		l.logger.Warn("could not record game result", "error", err)
	}
}

// resolveDifficulty uses the configured token when present, otherwise
// prompts until the player picks a valid one.
func (l *Loop) resolveDifficulty() (minefield.Difficulty, error) {
	if l.opts.Difficulty != "" {
		d, err := minefield.ParseDifficulty(l.opts.Difficulty)
		if err == nil {
			return d, nil
		}
		l.logger.Warn("ignoring invalid configured difficulty", "token", l.opts.Difficulty)
	}

	for {
		line, ok := l.readLine("Please select one of the following gamemodes - Easy (E), Medium (M), Hard (H): ")
		if !ok {
			return 0, errInputClosed
		}
		d, err := minefield.ParseDifficulty(line)
		if err != nil {
			fmt.Fprintln(l.out, "I am sorry, input not recognized!")
			continue
		}
		return d, nil
	}
}

// promptYesNo asks until the player answers Y or N.
func (l *Loop) promptYesNo(prompt string) (bool, error) {
	for {
		line, ok := l.readLine(prompt)
		if !ok {
			return false, errInputClosed
		}
		switch strings.ToUpper(strings.TrimSpace(line)) {
		case "Y", "YES":
			return true, nil
		case "N", "NO":
			return false, nil
		default:
			fmt.Fprintln(l.out, "I am sorry, input not recognized!")
		}
	}
}

// readLine prints a prompt and reads one input line. ok is false when
// the input stream has ended.
func (l *Loop) readLine(prompt string) (line string, ok bool) {
	fmt.Fprint(l.out, prompt)
	if !l.in.Scan() {
		fmt.Fprintln(l.out)
		return "", false
	}
	return l.in.Text(), true
}

// quiet maps input exhaustion to a normal exit.
func (l *Loop) quiet(err error) error {
	if errors.Is(err, errInputClosed) {
		return nil
	}
	return err
}
