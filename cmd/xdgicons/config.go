package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newConfigCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect the configuration",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration as TOML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := a.cfg.TOML()
			if err != nil {
				return err
			}

			source := a.cfgPath
			if source == "" {
				source = "defaults (no config file)"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "# source: %s\n%s", source, out)
			return nil
		},
	})

	return cmd
}
