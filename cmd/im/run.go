package main

import (
	"github.com/lerenn/issue-marker/cmd/im/internal/cli"
	issuemarker "github.com/lerenn/issue-marker/pkg/issue-marker"
	"github.com/spf13/cobra"
)

func createRunCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Check the pull request, publish the report and update the board",
		Long: `Parse the pull request description, classify every referenced issue,
replace the previous report comment and connect or disconnect issues on the board.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := cli.LoadConfig()
			if err != nil {
				return err
			}

			marker, err := cli.NewIssueMarker(cfg, cli.NewLogger())
			if err != nil {
				return err
			}

			_, err = marker.Run(cmd.Context(), issuemarker.RunParams{})
			return err
		},
	}
}
