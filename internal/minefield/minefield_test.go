package minefield

import (
	"errors"
	"math/rand"
	"testing"
)

// newTestField builds a field with mines at fixed coordinates, so
// flood-fill and win/loss behavior can be asserted deterministically.
func newTestField(t *testing.T, width, height int, mines [][2]int) *Minefield {
	t.Helper()

	m := &Minefield{
		width:  width,
		height: height,
		mines:  len(mines),
		board:  make([][]Cell, height),
		status: make([][]Status, height),
	}
	for r := 0; r < height; r++ {
		m.board[r] = make([]Cell, width)
		m.status[r] = make([]Status, width)
	}
	for _, mc := range mines {
		m.board[mc[0]][mc[1]].Mine = true
	}
	m.computeAdjacency()
	return m
}

func TestDifficultyParams(t *testing.T) {
	tests := []struct {
		difficulty Difficulty
		mines      int
		width      int
		height     int
	}{
		{Easy, 10, 8, 8},
		{Medium, 40, 15, 15},
		{Hard, 40, 30, 16},
	}

	for _, tt := range tests {
		p := tt.difficulty.Params()
		if p.Mines != tt.mines || p.Width != tt.width || p.Height != tt.height {
			t.Errorf("%s: got (%d,%d,%d), want (%d,%d,%d)",
				tt.difficulty, p.Mines, p.Width, p.Height, tt.mines, tt.width, tt.height)
		}
		if p.Mines >= p.Width*p.Height {
			t.Errorf("%s: no safe cell (%d mines on %dx%d)",
				tt.difficulty, p.Mines, p.Width, p.Height)
		}
	}
}

func TestParseDifficulty(t *testing.T) {
	tests := []struct {
		token string
		want  Difficulty
		ok    bool
	}{
		{"e", Easy, true},
		{"E", Easy, true},
		{"easy", Easy, true},
		{" EASY ", Easy, true},
		{"m", Medium, true},
		{"med", Medium, true},
		{"medium", Medium, true},
		{"h", Hard, true},
		{"Hard", Hard, true},
		{"", 0, false},
		{"extreme", 0, false},
		{"x", 0, false},
	}

	for _, tt := range tests {
		got, err := ParseDifficulty(tt.token)
		if tt.ok {
			if err != nil {
				t.Errorf("ParseDifficulty(%q) returned error: %v", tt.token, err)
			} else if got != tt.want {
				t.Errorf("ParseDifficulty(%q) = %v, want %v", tt.token, got, tt.want)
			}
			continue
		}
		if !errors.Is(err, ErrInvalidDifficulty) {
			t.Errorf("ParseDifficulty(%q) error = %v, want ErrInvalidDifficulty", tt.token, err)
		}
	}
}

func TestNewRejectsUnknownDifficulty(t *testing.T) {
	_, err := New(Difficulty(42), nil)
	if !errors.Is(err, ErrInvalidDifficulty) {
		t.Fatalf("New(42) error = %v, want ErrInvalidDifficulty", err)
	}
}

func TestNewMineCount(t *testing.T) {
	for _, d := range []Difficulty{Easy, Medium, Hard} {
		rng := rand.New(rand.NewSource(1))
		m, err := New(d, rng)
		if err != nil {
			t.Fatalf("New(%s) failed: %v", d, err)
		}

		p := d.Params()
		if m.Width() != p.Width || m.Height() != p.Height || m.Mines() != p.Mines {
			t.Errorf("%s: geometry (%d,%d,%d) does not match preset", d, m.Width(), m.Height(), m.Mines())
		}

		mines := 0
		for r := 0; r < m.height; r++ {
			for c := 0; c < m.width; c++ {
				if m.board[r][c].Mine {
					mines++
				}
			}
		}
		if mines != p.Mines {
			t.Errorf("%s: %d mines placed, want %d", d, mines, p.Mines)
		}
	}
}

func TestAdjacencyCounts(t *testing.T) {
	// Brute-force recompute the neighbor counts on several random
	// boards and compare against the constructed values.
	for seed := int64(1); seed <= 5; seed++ {
		m, err := New(Medium, rand.New(rand.NewSource(seed)))
		if err != nil {
			t.Fatalf("New failed: %v", err)
		}

		for r := 0; r < m.height; r++ {
			for c := 0; c < m.width; c++ {
				if m.board[r][c].Mine {
					continue
				}
				want := 0
				for dr := -1; dr <= 1; dr++ {
					for dc := -1; dc <= 1; dc++ {
						if dr == 0 && dc == 0 {
							continue
						}
						nr, nc := r+dr, c+dc
						if m.inBounds(nr, nc) && m.board[nr][nc].Mine {
							want++
						}
					}
				}
				if got := m.board[r][c].Adjacent; got != want {
					t.Fatalf("seed %d: cell (%d,%d) adjacency = %d, want %d", seed, r, c, got, want)
				}
			}
		}
	}
}

func TestNewDeterminism(t *testing.T) {
	m1, err := New(Easy, rand.New(rand.NewSource(12345)))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	m2, err := New(Easy, rand.New(rand.NewSource(12345)))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	for r := 0; r < m1.height; r++ {
		for c := 0; c < m1.width; c++ {
			if m1.board[r][c] != m2.board[r][c] {
				t.Fatalf("boards diverge at (%d,%d) for identical seeds", r, c)
			}
		}
	}
}

func TestDigOutOfBounds(t *testing.T) {
	m := newTestField(t, 8, 8, [][2]int{{0, 0}})
	before := m.Snapshot()

	for _, coords := range [][2]int{{-1, 0}, {0, -1}, {8, 0}, {0, 8}, {100, 100}} {
		if err := m.Dig(coords[0], coords[1]); !errors.Is(err, ErrOutOfBounds) {
			t.Errorf("Dig(%d,%d) error = %v, want ErrOutOfBounds", coords[0], coords[1], err)
		}
	}

	if m.Snapshot() != before {
		t.Error("out-of-bounds dig mutated state")
	}
}

func TestDigMineLoses(t *testing.T) {
	m := newTestField(t, 8, 8, [][2]int{{3, 3}})

	if err := m.Dig(3, 3); err != nil {
		t.Fatalf("Dig returned error: %v", err)
	}

	if !m.Lost() {
		t.Error("Lost() = false after digging a mine")
	}
	if m.Won() {
		t.Error("Won() = true on a lost game")
	}

	snap := m.Snapshot()
	if snap.Dug != 1 {
		t.Errorf("digging a mine revealed %d cells, want 1", snap.Dug)
	}

	// Terminal: the flag never resets within one instance.
	if err := m.Flag(0, 0); err != nil {
		t.Fatalf("Flag returned error: %v", err)
	}
	if !m.Lost() {
		t.Error("Lost() reset after further moves")
	}
}

func TestDigNumberedCellRevealsOnlyItself(t *testing.T) {
	m := newTestField(t, 8, 8, [][2]int{{0, 0}})

	// (0,1) borders the mine, so it carries a count and must not
	// propagate.
	if err := m.Dig(0, 1); err != nil {
		t.Fatalf("Dig returned error: %v", err)
	}
	if snap := m.Snapshot(); snap.Dug != 1 {
		t.Errorf("digging a numbered cell revealed %d cells, want 1", snap.Dug)
	}
	if m.Lost() {
		t.Error("Lost() = true after digging a safe cell")
	}
}

func TestDigIsNoopOnDugAndFlagged(t *testing.T) {
	m := newTestField(t, 8, 8, [][2]int{{0, 0}})

	if err := m.Dig(0, 1); err != nil {
		t.Fatalf("Dig returned error: %v", err)
	}
	before := m.Snapshot()

	// Re-dig a dug cell.
	if err := m.Dig(0, 1); err != nil {
		t.Fatalf("Dig returned error: %v", err)
	}
	if m.Snapshot() != before {
		t.Error("re-digging a dug cell changed state")
	}

	// Dig a flagged cell - even a flagged mine stays put.
	if err := m.Flag(0, 0); err != nil {
		t.Fatalf("Flag returned error: %v", err)
	}
	before = m.Snapshot()
	if err := m.Dig(0, 0); err != nil {
		t.Fatalf("Dig returned error: %v", err)
	}
	if m.Snapshot() != before {
		t.Error("digging a flagged cell changed state")
	}
	if m.Lost() {
		t.Error("digging a flagged mine lost the game")
	}
}

func TestFlagToggle(t *testing.T) {
	m := newTestField(t, 8, 8, [][2]int{{0, 0}})

	if err := m.Flag(4, 4); err != nil {
		t.Fatalf("Flag returned error: %v", err)
	}
	if st, _ := m.StatusAt(4, 4); st != Flagged {
		t.Errorf("status after flag = %v, want Flagged", st)
	}

	if err := m.Flag(4, 4); err != nil {
		t.Fatalf("Flag returned error: %v", err)
	}
	if st, _ := m.StatusAt(4, 4); st != Buried {
		t.Errorf("status after unflag = %v, want Buried", st)
	}

	if snap := m.Snapshot(); snap.Dug != 0 || snap.Flagged != 0 {
		t.Errorf("flag round trip left counts dug=%d flagged=%d", snap.Dug, snap.Flagged)
	}
}

func TestFlagDugCellIsNoop(t *testing.T) {
	m := newTestField(t, 8, 8, [][2]int{{0, 0}})

	if err := m.Dig(0, 1); err != nil {
		t.Fatalf("Dig returned error: %v", err)
	}
	if err := m.Flag(0, 1); err != nil {
		t.Fatalf("Flag returned error: %v", err)
	}
	if st, _ := m.StatusAt(0, 1); st != Dug {
		t.Errorf("status after flagging a dug cell = %v, want Dug", st)
	}
}

func TestFlagOutOfBounds(t *testing.T) {
	m := newTestField(t, 8, 8, [][2]int{{0, 0}})
	before := m.Snapshot()

	if err := m.Flag(-1, 0); !errors.Is(err, ErrOutOfBounds) {
		t.Errorf("Flag(-1,0) error = %v, want ErrOutOfBounds", err)
	}
	if err := m.Flag(0, 8); !errors.Is(err, ErrOutOfBounds) {
		t.Errorf("Flag(0,8) error = %v, want ErrOutOfBounds", err)
	}
	if m.Snapshot() != before {
		t.Error("out-of-bounds flag mutated state")
	}
}

func TestFloodFillSingleMine(t *testing.T) {
	// One mine at the corner of an 8x8 board: digging the far corner
	// must cascade across the whole field and win the game, leaving
	// only the mine buried.
	m := newTestField(t, 8, 8, [][2]int{{0, 0}})

	if err := m.Dig(7, 7); err != nil {
		t.Fatalf("Dig returned error: %v", err)
	}

	if st, _ := m.StatusAt(0, 0); st != Buried {
		t.Errorf("mine cell status = %v, want Buried", st)
	}
	for r := 0; r < 8; r++ {
		for c := 0; c < 8; c++ {
			if r == 0 && c == 0 {
				continue
			}
			if st, _ := m.StatusAt(r, c); st != Dug {
				t.Errorf("cell (%d,%d) status = %v, want Dug", r, c, st)
			}
		}
	}

	if m.Lost() {
		t.Error("Lost() = true; flood fill reached the mine")
	}
	if !m.Won() {
		t.Error("Won() = false with every safe cell dug")
	}

	// The mine is still flaggable and the win stands.
	if err := m.Flag(0, 0); err != nil {
		t.Fatalf("Flag returned error: %v", err)
	}
	if !m.Won() {
		t.Error("Won() = false after flagging the remaining mine")
	}
}

func TestFloodFillStopsAtNumberedBorder(t *testing.T) {
	// 1x5 strip with a mine at the right end. Digging the left end
	// reveals the zero region and its numbered border, never the mine.
	m := newTestField(t, 5, 1, [][2]int{{0, 4}})

	if err := m.Dig(0, 0); err != nil {
		t.Fatalf("Dig returned error: %v", err)
	}

	for c := 0; c < 4; c++ {
		if st, _ := m.StatusAt(0, c); st != Dug {
			t.Errorf("cell (0,%d) status = %v, want Dug", c, st)
		}
	}
	if st, _ := m.StatusAt(0, 4); st != Buried {
		t.Errorf("mine cell status = %v, want Buried", st)
	}
	if m.board[0][3].Adjacent != 1 {
		t.Errorf("border cell adjacency = %d, want 1", m.board[0][3].Adjacent)
	}
	if !m.Won() {
		t.Error("Won() = false with all safe cells revealed")
	}
}

func TestFloodFillBoundedOnFullZeroBoard(t *testing.T) {
	// A board without mines is the worst case for the frontier: the
	// fill must terminate after visiting every cell exactly once.
	m := newTestField(t, 30, 16, nil)

	if err := m.Dig(8, 15); err != nil {
		t.Fatalf("Dig returned error: %v", err)
	}
	if snap := m.Snapshot(); snap.Dug != 30*16 {
		t.Errorf("flood fill dug %d cells, want %d", snap.Dug, 30*16)
	}
}

func TestWonRequiresAllSafeCellsDug(t *testing.T) {
	m := newTestField(t, 5, 1, [][2]int{{0, 4}})

	if m.Won() {
		t.Error("Won() = true on a fresh board")
	}

	if err := m.Dig(0, 3); err != nil {
		t.Fatalf("Dig returned error: %v", err)
	}
	if m.Won() {
		t.Error("Won() = true with buried safe cells remaining")
	}

	if err := m.Dig(0, 0); err != nil {
		t.Fatalf("Dig returned error: %v", err)
	}
	if !m.Won() {
		t.Error("Won() = false with every safe cell dug")
	}
}

func TestStatusAtOutOfBounds(t *testing.T) {
	m := newTestField(t, 5, 1, [][2]int{{0, 4}})
	if _, err := m.StatusAt(1, 0); !errors.Is(err, ErrOutOfBounds) {
		t.Errorf("StatusAt(1,0) error = %v, want ErrOutOfBounds", err)
	}
}
