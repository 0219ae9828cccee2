package minefield

import (
	"fmt"
	"strings"
)

// Render produces the fixed-width text dump of the board. Each cell is
// one of four glyphs: '-' buried, 'F' flagged, 'M' a dug mine (only
// ever visible after a loss), or the adjacency digit 0-8 for a dug
// safe cell. Row and column indices are 1-based in the frame.
func (m *Minefield) Render() string {
	var b strings.Builder

	header := m.columnHeader()
	barrier := "   " + strings.Repeat("=", m.width*3+6)

	b.WriteString(header)
	b.WriteByte('\n')
	b.WriteString(barrier)
	b.WriteByte('\n')

	for r := 0; r < m.height; r++ {
		fmt.Fprintf(&b, "%-2d || ", r+1)
		for c := 0; c < m.width; c++ {
			b.WriteString(m.glyph(r, c))
		}
		fmt.Fprintf(&b, " || %d\n", r+1)
	}

	b.WriteString(barrier)
	b.WriteByte('\n')
	b.WriteString(header)
	b.WriteByte('\n')
	return b.String()
}

// String implements fmt.Stringer so a minefield can be printed directly.
func (m *Minefield) String() string {
	return m.Render()
}

// RenderWidth returns the width in characters of the widest line of
// the rendered dump, letting callers check whether it fits the
// terminal before printing.
func (m *Minefield) RenderWidth() int {
	// "%-2d || " prefix, three characters per cell, " || " and the
	// trailing 1-based row label.
	return 6 + m.width*3 + 4 + len(fmt.Sprint(m.height))
}

func (m *Minefield) glyph(row, col int) string {
	switch m.status[row][col] {
	case Buried:
		return " - "
	case Flagged:
		return " F "
	default:
		if m.board[row][col].Mine {
			return " M "
		}
		return fmt.Sprintf(" %d ", m.board[row][col].Adjacent)
	}
}

func (m *Minefield) columnHeader() string {
	cols := make([]string, m.width)
	for c := 0; c < m.width; c++ {
		cols[c] = fmt.Sprintf("%-2d", c+1)
	}
	return strings.Repeat(" ", 7) + strings.Join(cols, " ")
}
