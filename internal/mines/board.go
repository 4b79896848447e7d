package mines

import (
	"iter"
	"math/rand/v2"
	"time"

	"github.com/sirupsen/logrus"
)

var Log = logrus.New()

// Board is the game engine. It owns the grid and every state transition;
// callers observe it only through [MoveResult] and [Snapshot] values.
//
// A Board is not safe for concurrent use.
type Board struct {
	GameParams
	cells  []Cell
	status Status
	flags  int
	rng    *rand.Rand
	layout []bool /* fixed mine layout, nil for random boards */
}

// MoveResult reports the outcome of a single Reveal, ToggleFlag or Chord.
type MoveResult struct {
	Status        Status
	Flags         int
	Opened        int     /* safe cells revealed by this move */
	RevealedMines []Point /* mines disclosed by a loss */
	Changed       bool
}

func newRand() *rand.Rand {
	return rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), rand.Uint64()))
}

// NewBoard validates params and initializes a fresh board. r may be nil, in
// which case a time-seeded source is used.
func NewBoard(params GameParams, r *rand.Rand) (*Board, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	if r == nil {
		r = newRand()
	}
	b := &Board{GameParams: params, rng: r}
	b.initialize()
	return b, nil
}

func (b *Board) initialize() {
	grid := b.layout
	if grid == nil {
		grid = placeMines(b.GameParams, b.rng)
	}

	b.cells = make([]Cell, b.Size())
	for i, mine := range grid {
		b.cells[i].IsMine = mine
	}
	for i := range b.cells {
		if b.cells[i].IsMine {
			continue
		}
		n := 0
		for j := range b.neighbors(i) {
			if b.cells[j].IsMine {
				n++
			}
		}
		b.cells[i].NeighborMines = n
	}

	b.status = Playing
	b.flags = 0

	Log.WithFields(logrus.Fields{
		"params": b.GameParams.String(),
		"fixed":  b.layout != nil,
	}).Debug("board initialized")
}

// Reset reinitializes the board with the same parameters. Random boards get
// a new mine layout drawn from the same source.
func (b *Board) Reset() {
	b.initialize()
}

func (b *Board) Status() Status {
	return b.status
}

func (b *Board) Flags() int {
	return b.flags
}

func (b *Board) Cell(row, col int) (Cell, error) {
	i, err := b.index(row, col)
	if err != nil {
		return Cell{}, err
	}
	return b.cells[i], nil
}

// Reveal opens the cell at (row, col). Opening a mine loses the game;
// opening a cell with no neighboring mines opens its whole zero region.
// Revealed or flagged targets and finished games are left untouched.
func (b *Board) Reveal(row, col int) (MoveResult, error) {
	i, err := b.index(row, col)
	if err != nil {
		return b.result(), err
	}
	cell := b.cells[i]
	if b.status != Playing || cell.IsRevealed || cell.IsFlagged {
		return b.result(), nil
	}
	if cell.IsMine {
		return b.explode(i, 0), nil
	}
	return b.settle(b.flood(i)), nil
}

// ToggleFlag flags or unflags a covered cell.
func (b *Board) ToggleFlag(row, col int) (MoveResult, error) {
	i, err := b.index(row, col)
	if err != nil {
		return b.result(), err
	}
	cell := &b.cells[i]
	if b.status != Playing || cell.IsRevealed {
		return b.result(), nil
	}
	cell.IsFlagged = !cell.IsFlagged
	if cell.IsFlagged {
		b.flags++
	} else {
		b.flags--
	}
	return b.settle(0), nil
}

// Chord opens every covered, unflagged neighbor of a revealed numbered cell
// once the flags around it match its number.
func (b *Board) Chord(row, col int) (MoveResult, error) {
	i, err := b.index(row, col)
	if err != nil {
		return b.result(), err
	}
	cell := b.cells[i]
	if b.status != Playing || !cell.IsRevealed || cell.NeighborMines == 0 {
		return b.result(), nil
	}

	flagged := 0
	for j := range b.neighbors(i) {
		if b.cells[j].IsFlagged {
			flagged++
		}
	}
	if flagged != cell.NeighborMines {
		return b.result(), nil
	}

	opened := 0
	for j := range b.neighbors(i) {
		c := b.cells[j]
		if c.IsRevealed || c.IsFlagged {
			continue
		}
		if c.IsMine {
			return b.explode(j, opened), nil
		}
		opened += b.flood(j)
	}
	if opened == 0 {
		return b.result(), nil
	}
	return b.settle(opened), nil
}

// flood reveals start and, through an explicit worklist, every cell
// reachable from it across zero-count cells. It returns the number of
// cells revealed.
func (b *Board) flood(start int) (opened int) {
	todo := []int{start}
	for len(todo) > 0 {
		i := todo[len(todo)-1]
		todo = todo[:len(todo)-1]

		cell := &b.cells[i]
		if cell.IsRevealed || cell.IsFlagged {
			continue
		}
		cell.IsRevealed = true
		opened++

		if cell.NeighborMines == 0 {
			for j := range b.neighbors(i) {
				if c := b.cells[j]; !c.IsRevealed && !c.IsFlagged {
					todo = append(todo, j)
				}
			}
		}
	}
	return opened
}

// explode ends the game after the mine at i was opened and discloses every
// covered mine. Flags stay in place, so a flagged mine ends up both flagged
// and revealed; this is the only way a cell gets into that state.
func (b *Board) explode(i, opened int) MoveResult {
	var disclosed []Point
	for j := range b.cells {
		c := &b.cells[j]
		if c.IsMine && !c.IsRevealed {
			c.IsRevealed = true
			disclosed = append(disclosed, b.point(j))
		}
	}
	b.status = Lost

	p := b.point(i)
	Log.WithFields(logrus.Fields{
		"params": b.GameParams.String(),
		"row":    p.Row,
		"col":    p.Col,
	}).Debug("mine hit")

	res := b.result()
	res.Opened = opened
	res.RevealedMines = disclosed
	res.Changed = true
	return res
}

func (b *Board) settle(opened int) MoveResult {
	if b.won() {
		b.status = Won
		Log.WithField("params", b.GameParams.String()).Debug("board cleared")
	}
	res := b.result()
	res.Opened = opened
	res.Changed = true
	return res
}

// won requires every safe cell revealed and every mine flagged.
func (b *Board) won() bool {
	var revealed, flagged int
	for _, c := range b.cells {
		if c.IsRevealed && !c.IsMine {
			revealed++
		}
		if c.IsMine && c.IsFlagged {
			flagged++
		}
	}
	return revealed == b.Size()-b.Mines && flagged == b.Mines
}

func (b *Board) result() MoveResult {
	return MoveResult{Status: b.status, Flags: b.flags}
}

func (b *Board) index(row, col int) (int, error) {
	if !b.PointInBounds(row, col) {
		return 0, &BoundsError{Row: row, Col: col, Rows: b.Rows, Cols: b.Cols}
	}
	return row*b.Cols + col, nil
}

func (b *Board) point(i int) Point {
	return Point{Row: i / b.Cols, Col: i % b.Cols}
}

// neighbors yields the indices of the up to 8 cells adjacent to i.
func (b *Board) neighbors(i int) iter.Seq[int] {
	return func(yield func(int) bool) {
		row, col := i/b.Cols, i%b.Cols
		for r := max(0, row-1); r <= min(b.Rows-1, row+1); r++ {
			for c := max(0, col-1); c <= min(b.Cols-1, col+1); c++ {
				if r == row && c == col {
					continue
				}
				if !yield(r*b.Cols + c) {
					return
				}
			}
		}
	}
}
