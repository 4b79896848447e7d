package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/vancomm/minesweeper/internal/mines"
)

// NewBoardCommand creates a command that prints a generated board with every
// cell uncovered.
func NewBoardCommand(root *RootOptions) *cobra.Command {
	var (
		difficulty string
		seed       uint64
	)

	cmd := &cobra.Command{
		Use:   "board",
		Short: "Print a generated board fully uncovered",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := root.Config
			if difficulty != "" {
				cfg.Difficulty = difficulty
			}
			if cmd.Flags().Changed("seed") {
				cfg.Seed = seed
			}
			params, err := cfg.Params()
			if err != nil {
				return err
			}

			b, err := mines.NewBoard(params, newRand(cfg.Seed))
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s (%s) seed=%d\n", params.Name(), params, cfg.Seed)
			fmt.Fprint(cmd.OutOrStdout(), b.Snapshot().Disclosed())
			return nil
		},
	}

	cmd.Flags().StringVarP(&difficulty, "difficulty", "d", "", "easy, medium, hard or ROWS:COLS:MINES (overrides config)")
	cmd.Flags().Uint64Var(&seed, "seed", 0, "random seed, 0 for a time-based one (overrides config)")

	return cmd
}
