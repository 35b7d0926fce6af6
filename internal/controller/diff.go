package controller

import (
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// renderLineDiff produces a minimal line-level preview of a pending
// change: removed lines prefixed with "- ", added lines with "+ ".
// Unchanged regions are omitted.
func renderLineDiff(original, migrated string) string {
	dmp := diffmatchpatch.New()

	a, b, lines := dmp.DiffLinesToChars(original, migrated)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lines)

	var sb strings.Builder

	for _, diff := range diffs {
		var prefix string

		switch diff.Type {
		case diffmatchpatch.DiffDelete:
			prefix = "- "
		case diffmatchpatch.DiffInsert:
			prefix = "+ "
		default:
			continue
		}

		text := strings.TrimSuffix(diff.Text, "\n")
		for _, line := range strings.Split(text, "\n") {
			sb.WriteString(prefix)
			sb.WriteString(line)
			sb.WriteString("\n")
		}
	}

	return sb.String()
}

// splitDiffLines splits rendered diff output into lines, dropping the
// trailing empty element.
func splitDiffLines(diff string) []string {
	if diff == "" {
		return nil
	}

	return strings.Split(strings.TrimSuffix(diff, "\n"), "\n")
}
