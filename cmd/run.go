package cmd

import (
	"github.com/spf13/cobra"

	"github.com/llm4s/szmigrate/internal/domain"
)

var runDryRunFlag bool
var runExcludeFlags []string

// runCmd represents the run command.
var runCmd = newRunCmd()

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run [paths...]",
		Short: "Rewrite legacy error signatures in place",
		Long:  runLongDescription,
		RunE: func(_ *cobra.Command, args []string) error {
			return workflow.Migrate(domain.MigrateArgs{
				Paths:   parsePaths(args),
				Exclude: runExcludeFlags,
				DryRun:  runDryRunFlag,
			})
		},
	}
	cmd.Flags().BoolVarP(&runDryRunFlag, "dry-run", "n", false, "report and preview changes without writing any file")
	cmd.Flags().StringArrayVarP(&runExcludeFlags, "exclude", "x", nil, "exclude files matching regex (can be repeated)")

	return cmd
}

func init() {
	rootCmd.AddCommand(runCmd)
}
