package controller

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	m "github.com/llm4s/szmigrate/internal/model"
)

var (
	pathStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
	categoryStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("5"))
	addedStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	removedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	summaryStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true)
	reviewStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
)

// TUI implements UI for interactive terminals.
type TUI struct {
	output io.Writer
	bar    progress.Model
	total  int
	done   int
}

// NewTUI creates a new TUI writing to output.
func NewTUI(output io.Writer) *TUI {
	bar := progress.New(progress.WithDefaultGradient())
	bar.Width = 24

	return &TUI{output: output, bar: bar}
}

// DisplayRunStart announces the candidate count.
func (t *TUI) DisplayRunStart(total int) {
	t.total = total
	t.done = 0

	_, _ = fmt.Fprintf(t.output, "Scanning %d source files\n", total)
}

// DisplayMigratedFile reports one changed file with a progress counter.
func (t *TUI) DisplayMigratedFile(report m.FileReport, dryRun bool) {
	t.done++

	verb := "Migrated"
	if dryRun {
		verb = "Would migrate"
	}

	_, _ = fmt.Fprintf(t.output, "%s %s %s: %s (%s)\n",
		t.progressView(),
		progressCounter(t.done, t.total),
		verb,
		pathStyle.Render(string(report.Path)),
		categoryStyle.Render(string(report.Category)),
	)

	if dryRun {
		_, _ = fmt.Fprint(t.output, colorizeDiff(renderLineDiff(report.Original, report.Migrated)))
	}
}

// DisplayRunSummary reports the final counts.
func (t *TUI) DisplayRunSummary(summary m.RunSummary) error {
	line := fmt.Sprintf("Migration complete. %d files migrated.", summary.Migrated)
	if summary.DryRun {
		line = fmt.Sprintf("Dry run complete. %d of %d files would change.", summary.Migrated, summary.Scanned)
	}

	_, _ = fmt.Fprintf(t.output, "\n%s\n", summaryStyle.Render(line))

	return nil
}

// DisplayReviewList prints the advisory manual-review list.
func (t *TUI) DisplayReviewList(files []string) {
	_, _ = fmt.Fprintf(t.output, "\n%s\n", reviewStyle.Render("Files that may need manual review:"))

	for _, file := range files {
		_, _ = fmt.Fprintf(t.output, "  - %s\n", reviewStyle.Render(file))
	}
}

// DisplayEstimation renders the scan results as an interactive list,
// falling back to a static view when everything fits on screen.
func (t *TUI) DisplayEstimation(reports []m.FileReport) error {
	if len(reports) == 0 {
		_, _ = fmt.Fprintln(t.output, "No source files found")
		return nil
	}

	model := newEstimateModel(reports)

	if !model.needsPagination() {
		_, _ = fmt.Fprint(t.output, model.staticView())
		return nil
	}

	program := tea.NewProgram(model, tea.WithOutput(t.output), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return err
	}

	return nil
}

func progressCounter(done, total int) string {
	return summaryStyle.Render(fmt.Sprintf("[%d/%d]", done, total))
}

// progressView renders the bar against the candidate total. Only
// changed files advance it, so a clean tree never fills the bar.
func (t *TUI) progressView() string {
	if t.total <= 0 {
		return t.bar.ViewAs(0)
	}

	return t.bar.ViewAs(float64(t.done) / float64(t.total))
}

func colorizeDiff(diff string) string {
	var out string

	for _, line := range splitDiffLines(diff) {
		switch {
		case len(line) > 0 && line[0] == '+':
			out += addedStyle.Render(line) + "\n"
		case len(line) > 0 && line[0] == '-':
			out += removedStyle.Render(line) + "\n"
		default:
			out += line + "\n"
		}
	}

	return out
}
