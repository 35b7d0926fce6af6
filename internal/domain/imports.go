// Package domain contains the migration pipeline: need classification,
// import injection, the context-sensitive rewriter, and the workflow
// driving them over a source tree.
package domain

import "strings"

const (
	// sentinelImport marks a file as already migrated.
	sentinelImport = "import org.llm4s.szork.error._"
	helpersImport  = "import org.llm4s.szork.error.ErrorHandling._"
)

// InjectImports inserts the two error-vocabulary import lines. The
// insertion point is after the last existing import line, else after
// the package declaration, else the top of the file. Injection is
// idempotent: a file carrying the sentinel import is returned as is.
func InjectImports(content string) (string, bool) {
	if strings.Contains(content, sentinelImport) {
		return content, false
	}

	lines := strings.Split(content, "\n")

	lastImport := -1
	for i, line := range lines {
		if strings.HasPrefix(line, "import ") {
			lastImport = i
		}
	}

	if lastImport >= 0 {
		return strings.Join(insertLines(lines, lastImport+1, sentinelImport, helpersImport), "\n"), true
	}

	for i, line := range lines {
		if strings.HasPrefix(line, "package ") {
			return strings.Join(insertLines(lines, i+1, "", sentinelImport, helpersImport), "\n"), true
		}
	}

	// No import and no package line. The original script left this
	// branch undefined; prepending keeps it deterministic.
	return strings.Join(insertLines(lines, 0, sentinelImport, helpersImport), "\n"), true
}

func insertLines(lines []string, at int, inserted ...string) []string {
	out := make([]string, 0, len(lines)+len(inserted))
	out = append(out, lines[:at]...)
	out = append(out, inserted...)
	out = append(out, lines[at:]...)

	return out
}
