package main

import (
	"fmt"

	"github.com/lerenn/issue-marker/cmd/im/internal/cli"
	"github.com/spf13/cobra"
)

var force bool

func createInitCmd() *cobra.Command {
	initCmd := &cobra.Command{
		Use:   "init [--force]",
		Short: "Write the default configuration file",
		Long: `Write the default configuration to .github/issue-marker.yaml, or to the path given with --config.

Flags:
  --force   Overwrite an existing configuration file`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			manager := cli.NewConfigManager()
			if err := manager.WriteDefaultConfig(force); err != nil {
				return err
			}
			if !cli.Quiet {
				fmt.Fprintf(cmd.OutOrStdout(), "Configuration written to %s\n", manager.GetConfigPath())
			}
			return nil
		},
	}

	initCmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing configuration file")

	return initCmd
}
