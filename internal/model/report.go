package model

// FileReport describes what the rewriter did (or would do) to one file.
type FileReport struct {
	Path     Path
	Category Category
	// LegacyHits is the number of legacy signature occurrences found
	// before rewriting. Used by the read-only scan.
	LegacyHits int
	// ImportsInjected is true when the sentinel imports were added.
	ImportsInjected bool
	// Changed is true when the final content differs from the original.
	Changed bool
	// Original and Migrated hold both versions of the content so the
	// UI can render a preview during a dry run.
	Original string
	Migrated string
}

// RunSummary aggregates a whole migration pass.
type RunSummary struct {
	Scanned  int
	Migrated int
	DryRun   bool
}
