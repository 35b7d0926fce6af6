package cmd

import (
	"github.com/spf13/cobra"
)

// reviewCmd represents the review command.
var reviewCmd = newReviewCmd()

func newReviewCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "review",
		Short: "Print the manual-review file list",
		Long:  "Print the fixed advisory list of files that should be reviewed by hand after a migration run.",
		Args:  cobra.ExactArgs(0),
		RunE: func(_ *cobra.Command, _ []string) error {
			return workflow.Review()
		},
	}
}

func init() {
	rootCmd.AddCommand(reviewCmd)
}
