package controller

import (
	"bytes"
	"fmt"

	m "github.com/llm4s/szmigrate/internal/model"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// SimpleUI implements UI using the cobra command's output writer.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// DisplayRunStart announces the candidate count.
func (s *SimpleUI) DisplayRunStart(total int) {
	s.printf("Scanning %d source files\n", total)
}

// DisplayMigratedFile reports one changed file, with a line diff
// preview during dry runs.
func (s *SimpleUI) DisplayMigratedFile(report m.FileReport, dryRun bool) {
	if !dryRun {
		s.printf("Migrated: %s\n", report.Path)
		return
	}

	s.printf("Would migrate: %s (%s)\n", report.Path, report.Category)
	s.printf("%s", renderLineDiff(report.Original, report.Migrated))
}

// DisplayRunSummary reports the final counts.
func (s *SimpleUI) DisplayRunSummary(summary m.RunSummary) error {
	if summary.DryRun {
		s.printf("\nDry run complete. %d of %d files would change.\n", summary.Migrated, summary.Scanned)
		return nil
	}

	s.printf("\nMigration complete. %d files migrated.\n", summary.Migrated)

	return nil
}

// DisplayReviewList prints the advisory manual-review list.
func (s *SimpleUI) DisplayReviewList(files []string) {
	s.printf("\nFiles that may need manual review:\n")

	for _, file := range files {
		s.printf("  - %s\n", file)
	}
}

// DisplayEstimation renders the scan results as a table.
func (s *SimpleUI) DisplayEstimation(reports []m.FileReport) error {
	if len(reports) == 0 {
		s.printf("No source files found\n")
		return nil
	}

	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Path", "Category", "Legacy Hits"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT, tablewriter.ALIGN_CENTER})

	total := 0

	for _, report := range reports {
		hits := "-"
		if report.LegacyHits > 0 {
			hits = fmt.Sprintf("%d", report.LegacyHits)
			total += report.LegacyHits
		}

		table.Append([]string{string(report.Path), string(report.Category), hits})
	}

	table.SetFooter([]string{
		fmt.Sprintf("Total Files %d", len(reports)),
		"",
		fmt.Sprintf("%d", total),
	})

	table.Render()
	s.printf("\n%s", tableBuffer.String())

	return nil
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}
