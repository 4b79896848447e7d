package mines

import "strings"

// Snapshot is a read-only copy of a board. Mutating it has no effect on the
// board it was taken from.
type Snapshot struct {
	GameParams
	Status Status
	Flags  int
	Cells  []Cell /* row-major, Rows*Cols long */
}

func (b *Board) Snapshot() Snapshot {
	cells := make([]Cell, len(b.cells))
	copy(cells, b.cells)
	return Snapshot{
		GameParams: b.GameParams,
		Status:     b.status,
		Flags:      b.flags,
		Cells:      cells,
	}
}

func (s Snapshot) At(row, col int) Cell {
	return s.Cells[row*s.Cols+col]
}

// MinesRemaining is the counter shown to the player. It goes negative when
// more flags than mines are placed.
func (s Snapshot) MinesRemaining() int {
	return s.Mines - s.Flags
}

// String renders the grid as the player sees it.
func (s Snapshot) String() string {
	return s.render(Cell.String)
}

// Disclosed renders the grid with every cell uncovered.
func (s Snapshot) Disclosed() string {
	return s.render(func(c Cell) string {
		c.IsFlagged, c.IsRevealed = false, true
		return c.String()
	})
}

func (s Snapshot) render(cellString func(Cell) string) string {
	var b strings.Builder
	for row := range s.Rows {
		for col := range s.Cols {
			if col > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(cellString(s.At(row, col)))
		}
		b.WriteByte('\n')
	}
	return b.String()
}
