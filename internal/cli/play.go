package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/vancomm/minesweeper/internal/console"
	"github.com/vancomm/minesweeper/internal/mines"
	"github.com/vancomm/minesweeper/internal/session"
	"golang.org/x/sync/errgroup"
)

type playOptions struct {
	difficulty string
	seed       uint64
	layoutPath string
}

// NewPlayCommand creates the interactive game command.
func NewPlayCommand(root *RootOptions) *cobra.Command {
	opts := &playOptions{}

	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play an interactive game",
		Long: `Play an interactive game on stdin/stdout.

Type h at the prompt for the list of commands. A game is won once every safe
cell is open and every mine is flagged.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlay(cmd, root, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.difficulty, "difficulty", "d", "", "easy, medium, hard or ROWS:COLS:MINES (overrides config)")
	cmd.Flags().Uint64Var(&opts.seed, "seed", 0, "random seed, 0 for a time-based one (overrides config)")
	cmd.Flags().StringVar(&opts.layoutPath, "layout", "", "file with a fixed mine layout ('*' mine, '.' safe)")

	return cmd
}

func runPlay(cmd *cobra.Command, root *RootOptions, opts *playOptions) error {
	cfg := root.Config
	if opts.difficulty != "" {
		cfg.Difficulty = opts.difficulty
	}
	if cmd.Flags().Changed("seed") {
		cfg.Seed = opts.seed
	}
	params, err := cfg.Params()
	if err != nil {
		return err
	}

	var layout string
	if opts.layoutPath != "" {
		b, err := os.ReadFile(opts.layoutPath)
		if err != nil {
			return fmt.Errorf("unable to read layout: %w", err)
		}
		layout = string(b)
	}

	log := root.Log
	sess, err := session.New(session.Options{
		Params:       params,
		Layout:       layout,
		Rand:         newRand(cfg.Seed),
		TickInterval: cfg.TickInterval.Duration,
		Logger:       log,
		Hooks: session.Hooks{
			OnInteraction: func() { log.Debug("timer started") },
			OnGameOver: func(res mines.MoveResult) {
				log.WithField("mines", len(res.RevealedMines)).Debug("timer stopped: game over")
			},
			OnGameWin: func(mines.MoveResult) { log.Debug("timer stopped: game won") },
			OnReset: func(p mines.GameParams) {
				log.WithField("params", p.Name()).Debug("timer reset")
			},
		},
	})
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		defer cancel()
		return console.Run(gCtx, cmd.InOrStdin(), cmd.OutOrStdout(), sess)
	})
	g.Go(func() error {
		<-gCtx.Done()
		sess.Close()
		return nil
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	log.WithField("session", sess.ID.String()).Info("bye")
	return nil
}
