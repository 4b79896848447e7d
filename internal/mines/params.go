package mines

import (
	"fmt"
	"strings"
)

type GameParams struct {
	Rows, Cols, Mines int
}

var (
	Easy   = GameParams{Rows: 9, Cols: 9, Mines: 10}
	Medium = GameParams{Rows: 16, Cols: 16, Mines: 40}
	Hard   = GameParams{Rows: 16, Cols: 30, Mines: 99}
)

// Presets maps difficulty names to their parameters.
var Presets = map[string]GameParams{
	"easy":   Easy,
	"medium": Medium,
	"hard":   Hard,
}

func (p GameParams) Unpack() (rows int, cols int, mines int) {
	return p.Rows, p.Cols, p.Mines
}

func (p GameParams) Size() int {
	return p.Rows * p.Cols
}

func (p GameParams) String() string {
	return fmt.Sprintf("%d:%d:%d", p.Rows, p.Cols, p.Mines)
}

// Name returns the preset name for p, or its R:C:M form for custom boards.
func (p GameParams) Name() string {
	for name, preset := range Presets {
		if preset == p {
			return name
		}
	}
	return p.String()
}

func (p GameParams) Validate() error {
	if p.Rows < 1 || p.Cols < 1 || p.Mines < 0 || p.Mines >= p.Size() {
		return &ParamsError{Params: p}
	}
	return nil
}

func (p GameParams) PointInBounds(row, col int) bool {
	return 0 <= row && row < p.Rows && 0 <= col && col < p.Cols
}

// ParseGameParams accepts a preset name (easy, medium, hard) or an explicit
// "rows:cols:mines" triple.
func ParseGameParams(s string) (GameParams, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if p, ok := Presets[name]; ok {
		return p, nil
	}

	var p GameParams
	n, err := fmt.Sscanf(
		strings.ReplaceAll(name, ":", " "), "%d %d %d", &p.Rows, &p.Cols, &p.Mines,
	)
	if n != 3 || err != nil {
		return GameParams{}, fmt.Errorf(
			`%w: unknown difficulty "%s"`, ErrInvalidConfiguration, s,
		)
	}
	if err := p.Validate(); err != nil {
		return GameParams{}, err
	}
	return p, nil
}
