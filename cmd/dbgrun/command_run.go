package main

import (
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Kaboom2025/debug-harness/internal/config"
	"github.com/Kaboom2025/debug-harness/pkg/harness"
)

func newRunCmd(flags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run <scenario>",
		Short: "Run one debugging scenario, or \"all\" for the whole suite",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(flags.configPath)
			if err != nil {
				return err
			}
			if flags.adapterBin != "" {
				cfg.AdapterBin = flags.adapterBin
			}

			name := strings.ToLower(args[0])
			if _, ok := cfg.Find(name); !ok && name != config.SuiteName {
				return fmt.Errorf("unknown scenario %q; available: %s", args[0], strings.Join(cfg.Names(), ", "))
			}

			log, err := newLogger(flags.verbose)
			if err != nil {
				return err
			}
			defer log.Sync()

			sink := harness.NewConsoleSink(cmd.OutOrStdout())

			// One Ctrl+C stops the scenario running at that moment; in
			// suite mode the next scenario still runs.
			interrupt := make(chan os.Signal, 1)
			signal.Notify(interrupt, os.Interrupt)
			defer signal.Stop(interrupt)

			launcher := harness.NewLauncher(harness.DelveAdapter(cfg.AdapterBin), cfg.BaseDir, log)
			runner := harness.NewRunner(launcher, sink, interrupt, log)

			if name == config.SuiteName {
				sink.Notice("Running all debugging scenarios...")
				sink.Notice("Note: each scenario runs until you press Ctrl+C")
				runner.RunAll(cfg.Scenarios)
				return nil
			}

			sc, _ := cfg.Find(name)
			runner.Run(sc)
			return nil
		},
	}
	return cmd
}
