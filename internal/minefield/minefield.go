// Package minefield implements the Minesweeper game core: board
// generation, adjacency counts, dig propagation, flag toggling and
// win/loss queries. It contains pure logic with no I/O so the game
// is fully testable with a seeded RNG.
package minefield

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"time"
)

// Difficulty selects one of the fixed board presets.
type Difficulty int

const (
	Easy Difficulty = iota
	Medium
	Hard
)

// Params is the immutable board configuration bound to a Difficulty.
type Params struct {
	Mines  int
	Width  int
	Height int
}

var (
	// ErrInvalidDifficulty is returned for difficulty tokens or values
	// outside the fixed Easy/Medium/Hard set.
	ErrInvalidDifficulty = errors.New("minefield: invalid difficulty")

	// ErrOutOfBounds is returned by Dig and Flag for coordinates outside
	// the board. The caller is expected to validate first, but the core
	// rejects bad coordinates rather than panicking.
	ErrOutOfBounds = errors.New("minefield: coordinates out of bounds")
)

// String returns the difficulty token.
func (d Difficulty) String() string {
	switch d {
	case Easy:
		return "easy"
	case Medium:
		return "medium"
	case Hard:
		return "hard"
	default:
		return "unknown"
	}
}

// Params returns the (mines, width, height) preset for the difficulty.
// Every preset keeps mines < width*height so at least one cell is safe.
func (d Difficulty) Params() Params {
	switch d {
	case Easy:
		return Params{Mines: 10, Width: 8, Height: 8}
	case Medium:
		return Params{Mines: 40, Width: 15, Height: 15}
	case Hard:
		return Params{Mines: 40, Width: 30, Height: 16}
	default:
		return Params{}
	}
}

// ParseDifficulty maps a user-facing token to a Difficulty. It accepts
// full names and single-letter shorthands, case-insensitively.
func ParseDifficulty(token string) (Difficulty, error) {
	switch strings.ToLower(strings.TrimSpace(token)) {
	case "e", "easy":
		return Easy, nil
	case "m", "med", "medium":
		return Medium, nil
	case "h", "hard":
		return Hard, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidDifficulty, token)
	}
}

// Status is the player-facing state of one cell, distinct from the
// cell's fixed board value.
type Status uint8

const (
	Buried Status = iota
	Dug
	Flagged
)

// String returns a human-readable name for the status.
func (s Status) String() string {
	switch s {
	case Buried:
		return "buried"
	case Dug:
		return "dug"
	case Flagged:
		return "flagged"
	default:
		return "unknown"
	}
}

// Cell is one board position. Fixed after construction: either a mine,
// or a count of mines among its up-to-8 neighbors.
type Cell struct {
	Mine     bool
	Adjacent int
}

type point struct {
	row, col int
}

// Minefield owns the board geometry, mine layout, adjacency counts and
// per-cell visibility for one game session. Not safe for concurrent
// use; one interaction loop drives one instance.
type Minefield struct {
	width  int
	height int
	mines  int
	board  [][]Cell
	status [][]Status
	lost   bool
}

// New creates a minefield for the given difficulty. Exactly
// params.Mines cells are mined, placed as a uniformly random
// permutation over all positions. rng may be nil, in which case a
// time-seeded source is used.
func New(d Difficulty, rng *rand.Rand) (*Minefield, error) {
	switch d {
	case Easy, Medium, Hard:
	default:
		return nil, fmt.Errorf("%w: %d", ErrInvalidDifficulty, int(d))
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	p := d.Params()
	m := &Minefield{
		width:  p.Width,
		height: p.Height,
		mines:  p.Mines,
	}

	// Lay out a flat field with the first Mines cells mined, shuffle,
	// then reshape row-major into the grid.
	flat := make([]Cell, p.Width*p.Height)
	for i := 0; i < p.Mines; i++ {
		flat[i].Mine = true
	}
	rng.Shuffle(len(flat), func(i, j int) {
		flat[i], flat[j] = flat[j], flat[i]
	})

	m.board = make([][]Cell, p.Height)
	m.status = make([][]Status, p.Height)
	for r := 0; r < p.Height; r++ {
		m.board[r] = flat[r*p.Width : (r+1)*p.Width : (r+1)*p.Width]
		m.status[r] = make([]Status, p.Width)
	}

	m.computeAdjacency()
	return m, nil
}

// computeAdjacency fills in the neighbor counts: each mine increments
// every in-bounds non-mine neighbor by one. Runs once at construction;
// the board is immutable afterwards.
func (m *Minefield) computeAdjacency() {
	for r := 0; r < m.height; r++ {
		for c := 0; c < m.width; c++ {
			if !m.board[r][c].Mine {
				continue
			}
			for _, n := range m.neighbors(r, c) {
				if !m.board[n.row][n.col].Mine {
					m.board[n.row][n.col].Adjacent++
				}
			}
		}
	}
}

// neighbors returns the in-bounds orthogonal and diagonal neighbors of
// (row, col). No wraparound at the edges.
func (m *Minefield) neighbors(row, col int) []point {
	pts := make([]point, 0, 8)
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			r, c := row+dr, col+dc
			if m.inBounds(r, c) {
				pts = append(pts, point{r, c})
			}
		}
	}
	return pts
}

func (m *Minefield) inBounds(row, col int) bool {
	return row >= 0 && row < m.height && col >= 0 && col < m.width
}

// Width returns the number of columns.
func (m *Minefield) Width() int { return m.width }

// Height returns the number of rows.
func (m *Minefield) Height() int { return m.height }

// Mines returns the total number of mines on the board.
func (m *Minefield) Mines() int { return m.mines }

// StatusAt returns the visibility of the cell at (row, col).
func (m *Minefield) StatusAt(row, col int) (Status, error) {
	if !m.inBounds(row, col) {
		return 0, fmt.Errorf("status (%d,%d): %w", row, col, ErrOutOfBounds)
	}
	return m.status[row][col], nil
}

// Dig reveals the cell at (row, col). Cells that are already dug or
// flagged are left alone. Revealing a mine loses the game; revealing a
// zero-count cell flood-fills its contiguous zero region plus the
// bordering numbered cells. Digging a mine is a normal losing outcome,
// not an error.
func (m *Minefield) Dig(row, col int) error {
	if !m.inBounds(row, col) {
		return fmt.Errorf("dig (%d,%d): %w", row, col, ErrOutOfBounds)
	}
	if m.status[row][col] != Buried {
		return nil
	}

	// Explicit frontier instead of recursion so large boards cannot
	// exhaust the call stack. The Buried guard bounds every cell to a
	// single visit per call.
	frontier := []point{{row, col}}
	for len(frontier) > 0 {
		p := frontier[len(frontier)-1]
		frontier = frontier[:len(frontier)-1]

		if m.status[p.row][p.col] != Buried {
			continue
		}
		m.status[p.row][p.col] = Dug

		cell := m.board[p.row][p.col]
		if cell.Mine {
			m.lost = true
			return nil
		}
		if cell.Adjacent == 0 {
			frontier = append(frontier, m.neighbors(p.row, p.col)...)
		}
	}
	return nil
}

// Flag toggles the cell at (row, col) between Buried and Flagged. Dug
// cells cannot be flagged; the call is a no-op for them.
func (m *Minefield) Flag(row, col int) error {
	if !m.inBounds(row, col) {
		return fmt.Errorf("flag (%d,%d): %w", row, col, ErrOutOfBounds)
	}
	switch m.status[row][col] {
	case Buried:
		m.status[row][col] = Flagged
	case Flagged:
		m.status[row][col] = Buried
	}
	return nil
}

// Lost reports whether a mine has been dug. Terminal for the instance.
func (m *Minefield) Lost() bool { return m.lost }

// Won reports whether every non-mine cell has been dug without losing.
// Flags on mine cells do not matter. Derived from the current
// visibility on every call; nothing is cached.
func (m *Minefield) Won() bool {
	if m.lost {
		return false
	}
	dug := 0
	for r := 0; r < m.height; r++ {
		for c := 0; c < m.width; c++ {
			if m.status[r][c] == Dug {
				dug++
			}
		}
	}
	return dug == m.width*m.height-m.mines
}
