// Package cmd provides the root command and CLI setup for szmigrate.
package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/llm4s/szmigrate/internal/adapter"
	"github.com/llm4s/szmigrate/internal/controller"
	"github.com/llm4s/szmigrate/internal/domain"
	m "github.com/llm4s/szmigrate/internal/model"
)

// defaultSourceRoot is assumed when no paths are given, matching the
// layout of the Scala project the tool was written for.
const defaultSourceRoot = "src/main/scala/..."

var fsAdapter adapter.SourceFSAdapter
var ui controller.UI
var workflow domain.Workflow

func init() {
	ui = controller.NewUI(rootCmd, controller.IsTTY(os.Stdout))
	fsAdapter = adapter.NewLocalSourceFSAdapter()
	workflow = domain.NewWorkflow(fsAdapter, ui)
}

var listFlag bool
var dryRunFlag bool
var excludeFlags []string

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "szmigrate [paths...]",
		Short: "Szork error-handling migration tool",
		Long:  rootLongDescription,
		RunE: func(_ *cobra.Command, args []string) error {
			paths := parsePaths(args)

			if listFlag {
				return workflow.Estimate(domain.EstimateArgs{
					Paths:   paths,
					Exclude: excludeFlags,
				})
			}

			return workflow.Migrate(domain.MigrateArgs{
				Paths:   paths,
				Exclude: excludeFlags,
				DryRun:  dryRunFlag,
			})
		},
	}
	cmd.Flags().BoolVarP(&listFlag, "list", "l", false, "list source files and legacy signature counts instead of migrating")
	cmd.Flags().BoolVarP(&dryRunFlag, "dry-run", "n", false, "report and preview changes without writing any file")
	cmd.Flags().StringArrayVarP(&excludeFlags, "exclude", "x", nil, "exclude files matching regex (can be repeated)")

	return cmd
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func parsePaths(args []string) []m.Path {
	if len(args) == 0 {
		return []m.Path{defaultSourceRoot}
	}

	paths := make([]m.Path, 0, len(args))
	for _, arg := range args {
		paths = append(paths, m.Path(arg))
	}

	return paths
}
