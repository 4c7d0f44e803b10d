package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type rootFlags struct {
	configPath string
	adapterBin string
	verbose    bool
}

func NewRootCmd() *cobra.Command {
	flags := &rootFlags{}

	root := &cobra.Command{
		Use:           "dbgrun",
		Short:         "Launch sample targets under a debug-adapter listener",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&flags.configPath, "config", "", "optional scenarios override file (yaml)")
	root.PersistentFlags().StringVar(&flags.adapterBin, "adapter", "", "debug adapter binary (default dlv)")
	root.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "enable debug diagnostics")

	root.AddCommand(newRunCmd(flags))
	root.AddCommand(newListCmd(flags))

	return root
}

// newLogger builds the diagnostics logger. Operator-facing output goes
// through the console sink instead; this only carries harness internals.
func newLogger(verbose bool) (*zap.SugaredLogger, error) {
	cfg := zap.NewDevelopmentConfig()
	if !verbose {
		cfg.Level = zap.NewAtomicLevelAt(zap.ErrorLevel)
	}
	logger, err := cfg.Build()
	if err != nil {
		return nil, err
	}
	return logger.Sugar(), nil
}
