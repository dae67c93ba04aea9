// Package main provides the command-line interface for the issue marker.
package main

import (
	"os"

	"github.com/lerenn/issue-marker/cmd/im/internal/cli"
	"github.com/lerenn/issue-marker/pkg/logger"
	"github.com/spf13/cobra"
)

func main() {
	var rootCmd = &cobra.Command{
		Use:   "im",
		Short: "Issue Marker - pull request issue linker",
		Long: `Checks the issues referenced by a pull request description, reports them ` +
			`in a comment and keeps the project board links in sync.`,
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	// Add global flags
	rootCmd.PersistentFlags().BoolVarP(&cli.Quiet, "quiet", "q", false, "Suppress all output except errors")
	rootCmd.PersistentFlags().BoolVarP(&cli.Verbose, "verbose", "v", false, "Print the run log as plain lines")
	rootCmd.PersistentFlags().StringVarP(&cli.ConfigPath, "config", "c", "", "Specify a custom config file path")
	rootCmd.PersistentFlags().StringVar(&cli.Repository, "repo", "", "Repository as owner/name (defaults to GITHUB_REPOSITORY)")
	rootCmd.PersistentFlags().IntVar(&cli.PullRequest, "pr", 0, "Pull request number (defaults to the event payload)")

	// Add subcommands
	rootCmd.AddCommand(createRunCmd(), createPlanCmd(), createInitCmd())

	if err := rootCmd.Execute(); err != nil {
		logger.NewActionsLogger().Errorf("%v", err)
		os.Exit(1)
	}
}
