package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Kaboom2025/debug-harness/internal/config"
)

func newListCmd(flags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List available scenarios",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(flags.configPath)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, sc := range cfg.Scenarios {
				fmt.Fprintf(out, "%-8s port %d  %s\n", sc.Name, sc.Port, sc.Target)
			}
			fmt.Fprintf(out, "%-8s run every scenario in order\n", config.SuiteName)
			return nil
		},
	}
	return cmd
}
