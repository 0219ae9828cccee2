package minefield

// Snapshot captures the observable game state in one struct, used by
// determinism tests and by the result recorder at game end.
type Snapshot struct {
	Width   int
	Height  int
	Mines   int
	Buried  int
	Dug     int
	Flagged int
	Lost    bool
	Won     bool
}

// Snapshot returns the current state counts and outcome flags.
func (m *Minefield) Snapshot() Snapshot {
	s := Snapshot{
		Width:  m.width,
		Height: m.height,
		Mines:  m.mines,
	}
	for r := 0; r < m.height; r++ {
		for c := 0; c < m.width; c++ {
			switch m.status[r][c] {
			case Buried:
				s.Buried++
			case Dug:
				s.Dug++
			case Flagged:
				s.Flagged++
			}
		}
	}
	s.Lost = m.lost
	s.Won = m.Won()
	return s
}
