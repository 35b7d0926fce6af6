package domain

import (
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/llm4s/szmigrate/internal/adapter"
	"github.com/llm4s/szmigrate/internal/controller"
	"github.com/llm4s/szmigrate/internal/domain/rules"
	m "github.com/llm4s/szmigrate/internal/model"
)

// reviewList names files known to mix transport, agent and game-state
// error handling in ways the regex pass cannot untangle. It is a fixed
// advisory list, not derived from the run.
var reviewList = []string{
	"TypedWebSocketServer.scala",
	"SzorkServer.scala",
	"StreamingAgent.scala",
	"GameTools.scala",
}

// MigrateArgs configures a migration pass.
type MigrateArgs struct {
	Paths   []m.Path
	Exclude []string
	DryRun  bool
}

// EstimateArgs configures a read-only scan.
type EstimateArgs struct {
	Paths   []m.Path
	Exclude []string
}

// Workflow defines the operations exposed to the CLI commands.
type Workflow interface {
	// Migrate rewrites every candidate file under the given roots and
	// reports each change. Strictly sequential; the first read or
	// write error aborts the whole run.
	Migrate(args MigrateArgs) error

	// Estimate scans candidates without writing anything and reports
	// legacy-pattern hit counts and the category each file would get.
	Estimate(args EstimateArgs) error

	// Review prints the fixed advisory list of files to check by hand.
	Review() error
}

type workflow struct {
	fs adapter.SourceFSAdapter
	ui controller.UI
}

// NewWorkflow creates a Workflow wired to the given adapters.
func NewWorkflow(fs adapter.SourceFSAdapter, ui controller.UI) Workflow {
	return &workflow{fs: fs, ui: ui}
}

func (w *workflow) Migrate(args MigrateArgs) error {
	paths, err := w.fs.Scan(args.Paths, args.Exclude)
	if err != nil {
		return err
	}

	w.ui.DisplayRunStart(len(paths))

	summary := m.RunSummary{Scanned: len(paths), DryRun: args.DryRun}

	for _, path := range paths {
		report, err := w.migrateFile(path, args.DryRun)
		if err != nil {
			return err
		}

		if !report.Changed {
			continue
		}

		summary.Migrated++

		w.ui.DisplayMigratedFile(report, args.DryRun)
	}

	if err := w.ui.DisplayRunSummary(summary); err != nil {
		return err
	}

	w.ui.DisplayReviewList(reviewList)

	return nil
}

// migrateFile runs the pipeline for one file: classify need, inject
// imports, rewrite, then write back only when the content changed.
// The unchanged-content check is the idempotence guarantee: a second
// run finds no legacy patterns and skips the file entirely.
func (w *workflow) migrateFile(path m.Path, dryRun bool) (m.FileReport, error) {
	original, err := w.fs.ReadFile(path)
	if err != nil {
		return m.FileReport{}, fmt.Errorf("failed to read %s: %w", path, err)
	}

	report := m.FileReport{Path: path}

	if !NeedsMigration(original) {
		return report, nil
	}

	content, injected := InjectImports(original)
	content, category := Rewrite(content, path)

	report.Category = category
	report.ImportsInjected = injected

	if content == original {
		return report, nil
	}

	report.Changed = true
	report.Original = original
	report.Migrated = content

	if !dryRun {
		if err := w.fs.WriteFile(path, content); err != nil {
			return m.FileReport{}, fmt.Errorf("failed to write %s: %w", path, err)
		}
	}

	return report, nil
}

func (w *workflow) Estimate(args EstimateArgs) error {
	paths, err := w.fs.Scan(args.Paths, args.Exclude)
	if err != nil {
		return err
	}

	// The scan never writes, so fanning out reads is safe. The
	// migration pass itself stays sequential.
	reports := make([]m.FileReport, len(paths))

	g := new(errgroup.Group)
	g.SetLimit(runtime.NumCPU())

	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			content, err := w.fs.ReadFile(path)
			if err != nil {
				return fmt.Errorf("failed to read %s: %w", path, err)
			}

			reports[i] = m.FileReport{
				Path:       path,
				Category:   rules.ClassifyPath(path).Category,
				LegacyHits: rules.CountLegacyHits(content),
			}

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	return w.ui.DisplayEstimation(reports)
}

func (w *workflow) Review() error {
	w.ui.DisplayReviewList(reviewList)

	return nil
}
