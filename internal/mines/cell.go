package mines

import "strconv"

type Cell struct {
	IsMine        bool
	IsRevealed    bool
	IsFlagged     bool
	NeighborMines int
}

// String renders the cell as the player sees it.
func (c Cell) String() string {
	switch {
	case c.IsFlagged:
		return "F"
	case !c.IsRevealed:
		return "#"
	case c.IsMine:
		return "*"
	case c.NeighborMines == 0:
		return "."
	default:
		return strconv.Itoa(c.NeighborMines)
	}
}

type Point struct {
	Row, Col int
}

type Status int8

const (
	Playing Status = iota
	Won
	Lost
)

func (s Status) String() string {
	switch s {
	case Playing:
		return "playing"
	case Won:
		return "won"
	case Lost:
		return "lost"
	default:
		return "unknown"
	}
}

// [Status] implements [encoding.TextMarshaler]
func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *Status) UnmarshalText(text []byte) error {
	switch string(text) {
	case "playing":
		*s = Playing
	case "won":
		*s = Won
	case "lost":
		*s = Lost
	default:
		return &StatusError{Value: string(text)}
	}
	return nil
}

type StatusError struct {
	Value string
}

func (e *StatusError) Error() string {
	return "unknown game status " + strconv.Quote(e.Value)
}
