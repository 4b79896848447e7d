package console

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/vancomm/minesweeper/internal/mines"
	"github.com/vancomm/minesweeper/internal/session"
)

// ErrQuit is returned by Execute for the quit command.
var ErrQuit = errors.New("quit")

// Maps known commands to number of arguments
var commandNargs = map[string]int{
	"o": 2,
	"f": 2,
	"c": 2,
	"n": 0,
	"d": 1,
	"g": 0,
	"h": 0,
	"q": 0,
}

const help = `commands:
  o ROW COL   open a cell
  f ROW COL   toggle a flag
  c ROW COL   chord around a revealed number
  n           new game
  d LEVEL     change difficulty (easy, medium, hard or ROWS:COLS:MINES)
  g           show the board
  h           show this help
  q           quit
`

func parsePoint(twoStrings []string) (row int, col int, err error) {
	if row, err = strconv.Atoi(twoStrings[0]); err != nil {
		err = errors.New("row must be an int")
		return
	}
	if col, err = strconv.Atoi(twoStrings[1]); err != nil {
		err = errors.New("col must be an int")
		return
	}
	return
}

// Execute runs a single command line against s and writes the response to
// out. Invalid input is reported as an error; the session is left as it was.
func Execute(s *session.Session, line string, out io.Writer) error {
	parts := strings.Fields(line)
	if len(parts) == 0 {
		return nil
	}
	nargs, ok := commandNargs[parts[0]]
	if !ok {
		return fmt.Errorf("unknown command %q, try h", parts[0])
	}
	if nargs != len(parts)-1 {
		return fmt.Errorf("%s takes %d arguments", parts[0], nargs)
	}

	switch parts[0] {
	case "o", "f", "c":
		row, col, err := parsePoint(parts[1:])
		if err != nil {
			return err
		}
		move := map[string]func(int, int) (mines.MoveResult, error){
			"o": s.Reveal,
			"f": s.ToggleFlag,
			"c": s.Chord,
		}[parts[0]]
		res, err := move(row, col)
		if err != nil {
			return err
		}
		writeState(out, s)
		writeOutcome(out, res)
	case "n":
		s.Reset()
		writeState(out, s)
	case "d":
		params, err := mines.ParseGameParams(parts[1])
		if err != nil {
			return err
		}
		if err := s.SetDifficulty(params); err != nil {
			return err
		}
		writeState(out, s)
	case "g":
		writeState(out, s)
	case "h":
		fmt.Fprint(out, help)
	case "q":
		return ErrQuit
	}
	return nil
}

func writeOutcome(out io.Writer, res mines.MoveResult) {
	if !res.Changed {
		return
	}
	switch res.Status {
	case mines.Lost:
		fmt.Fprintf(out, "boom! you hit a mine (%d mines shown)\n", len(res.RevealedMines))
	case mines.Won:
		fmt.Fprintln(out, "board cleared, you win!")
	}
}

// writeState prints the board with row and column indices followed by a
// status line.
func writeState(out io.Writer, s *session.Session) {
	snap := s.Snapshot()

	var b strings.Builder
	width := len(strconv.Itoa(snap.Rows - 1))
	b.WriteString(strings.Repeat(" ", width+1))
	for col := range snap.Cols {
		fmt.Fprintf(&b, " %d", col%10)
	}
	b.WriteByte('\n')
	for row, line := range strings.Split(strings.TrimSuffix(snap.String(), "\n"), "\n") {
		fmt.Fprintf(&b, "%*d | %s\n", width, row, line)
	}
	fmt.Fprintf(&b, "status: %s  mines: %d  time: %ds\n",
		snap.Status, snap.MinesRemaining(), int(s.Elapsed().Seconds()))

	io.WriteString(out, b.String())
}
