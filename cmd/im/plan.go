package main

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/lerenn/issue-marker/cmd/im/internal/cli"
	issuemarker "github.com/lerenn/issue-marker/pkg/issue-marker"
	"github.com/spf13/cobra"
)

func createPlanCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "plan",
		Short: "Show the report and board changes without applying them",
		Long: `Run the same checks as "run" but leave comments and the board untouched,
then print the report that would be published and the planned board changes.`,
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

			result, err := marker.Plan(cmd.Context(), issuemarker.RunParams{})
			if err != nil {
				return err
			}

			printPlan(cmd.OutOrStdout(), result)
			return nil
		},
	}
}

// printPlan writes the report and the planned board changes.
func printPlan(w io.Writer, result *issuemarker.Result) {
	bold := color.New(color.Bold).SprintFunc()
	green := color.New(color.FgGreen).SprintFunc()
	red := color.New(color.FgRed).SprintFunc()
	gray := color.New(color.FgHiBlack).SprintFunc()

	fmt.Fprintf(w, "%s %s\n\n", bold("Report"), gray("("+result.RunID+")"))
	fmt.Fprintln(w, result.Report)
	fmt.Fprintf(w, "\n%s\n", bold("Board changes"))

	if result.Plan.Empty() {
		fmt.Fprintln(w, gray("  none"))
		return
	}
	for _, key := range result.Plan.ToConnect.Keys() {
		fmt.Fprintf(w, "  %s %s\n", green("+"), key)
	}
	for _, key := range result.Plan.ToDisconnect.Keys() {
		fmt.Fprintf(w, "  %s %s\n", red("-"), key)
	}
}
