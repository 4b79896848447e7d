package mines

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidConfiguration = errors.New("invalid configuration")
	ErrOutOfBounds          = errors.New("out of bounds")
)

type ParamsError struct {
	Params GameParams
}

// [ParamsError] implements [error]
func (e *ParamsError) Error() string {
	return fmt.Sprintf(
		"%s: %d rows, %d cols, %d mines (need rows, cols >= 1 and 0 <= mines < rows*cols)",
		ErrInvalidConfiguration, e.Params.Rows, e.Params.Cols, e.Params.Mines,
	)
}

func (e *ParamsError) Unwrap() error {
	return ErrInvalidConfiguration
}

type BoundsError struct {
	Row, Col   int
	Rows, Cols int
}

// [BoundsError] implements [error]
func (e *BoundsError) Error() string {
	return fmt.Sprintf(
		"%s: (%d, %d) is outside %dx%d grid",
		ErrOutOfBounds, e.Row, e.Col, e.Rows, e.Cols,
	)
}

func (e *BoundsError) Unwrap() error {
	return ErrOutOfBounds
}
