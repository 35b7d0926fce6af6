// Package controller provides output adapters for displaying migration
// results.
package controller

import (
	m "github.com/llm4s/szmigrate/internal/model"
)

// UI defines the interface for displaying migration progress and
// results. Implementations can use different output methods (simple
// text, TUI).
type UI interface {
	// DisplayRunStart announces how many candidate files the pass
	// will visit.
	DisplayRunStart(total int)

	// DisplayMigratedFile reports one changed file. During a dry run
	// it previews the pending change instead of announcing a write.
	DisplayMigratedFile(report m.FileReport, dryRun bool)

	// DisplayRunSummary reports the final counts of a migration pass.
	DisplayRunSummary(summary m.RunSummary) error

	// DisplayReviewList prints the advisory manual-review file list.
	DisplayReviewList(files []string)

	// DisplayEstimation renders the read-only scan results.
	DisplayEstimation(reports []m.FileReport) error
}
