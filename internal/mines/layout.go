package mines

import (
	"fmt"
	"strings"
)

// NewBoardFromLayout builds a board with a fixed mine layout. The layout has
// one line per row, '*' for a mine and '.' for a safe cell; blank lines and
// surrounding whitespace are ignored. Reset keeps the layout.
func NewBoardFromLayout(layout string) (*Board, error) {
	var (
		grid []bool
		p    GameParams
	)
	for _, line := range strings.Split(layout, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if p.Rows == 0 {
			p.Cols = len(line)
		} else if len(line) != p.Cols {
			return nil, fmt.Errorf(
				"%w: row %d has %d cells, want %d",
				ErrInvalidConfiguration, p.Rows, len(line), p.Cols,
			)
		}
		for col, ch := range []byte(line) {
			switch ch {
			case '*':
				grid = append(grid, true)
				p.Mines++
			case '.':
				grid = append(grid, false)
			default:
				return nil, fmt.Errorf(
					"%w: unexpected %q at row %d col %d",
					ErrInvalidConfiguration, ch, p.Rows, col,
				)
			}
		}
		p.Rows++
	}

	if err := p.Validate(); err != nil {
		return nil, err
	}
	b := &Board{GameParams: p, layout: grid}
	b.initialize()
	return b, nil
}
