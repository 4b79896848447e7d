package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/vancomm/minesweeper/internal/session"
)

const prompt = "> "

// Run reads commands from in until EOF, the quit command, or ctx is done.
// Command errors are printed to out and do not end the loop.
func Run(ctx context.Context, in io.Reader, out io.Writer, s *session.Session) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	lines := make(chan string)
	scanErr := make(chan error, 1)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
		scanErr <- scanner.Err()
	}()

	writeState(out, s)
	fmt.Fprint(out, prompt)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case line, ok := <-lines:
			if !ok {
				select {
				case err := <-scanErr:
					return err
				default:
					return ctx.Err()
				}
			}
			err := Execute(s, line, out)
			if errors.Is(err, ErrQuit) {
				return nil
			}
			if err != nil {
				fmt.Fprintf(out, "error: %s\n", err)
			}
			fmt.Fprint(out, prompt)
		}
	}
}
