package cli

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/vancomm/minesweeper/internal/config"
	"github.com/vancomm/minesweeper/internal/mines"
)

// RootOptions holds global flags and the state they produce.
type RootOptions struct {
	ConfigPath string
	Verbose    bool

	Config *config.Config
	Log    *logrus.Logger
}

// NewRootCommand creates the root command for the mines CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{Log: logrus.New()}

	cmd := &cobra.Command{
		Use:           "mines",
		Short:         "Minesweeper in the terminal",
		Long:          "Play minesweeper from a terminal: reveal, flag and chord cells until every mine is flagged.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.setup(cmd)
		},
	}

	cmd.PersistentFlags().StringVarP(&opts.ConfigPath, "config", "c", "", "config file path (json or yaml)")
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")

	cmd.AddCommand(NewPlayCommand(opts))
	cmd.AddCommand(NewBoardCommand(opts))

	return cmd
}

func (o *RootOptions) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(o.ConfigPath)
	if err != nil {
		return err
	}
	if o.Verbose {
		cfg.Log.Level = logrus.DebugLevel.String()
	}

	o.Log.SetOutput(cmd.ErrOrStderr())
	mines.Log.SetOutput(cmd.ErrOrStderr())
	for _, log := range []*logrus.Logger{o.Log, mines.Log} {
		if err := cfg.SetupLogging(log); err != nil {
			return err
		}
	}

	o.Config = cfg
	o.Log.Infof("starting up, mode = %s", cfg.Mode)
	o.Log.WithFields(cfg.Fields()).Debug("config")
	return nil
}
