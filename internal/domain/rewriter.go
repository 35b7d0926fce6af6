package domain

import (
	"github.com/llm4s/szmigrate/internal/domain/rules"
	m "github.com/llm4s/szmigrate/internal/model"
)

// Rewrite applies the full migration transformation to one file's
// content: signature unification, path-classified failure wrapping,
// then the implicit-logger touch-up. Pure text to text; a pattern
// that matches nowhere is a silent no-op.
func Rewrite(content string, path m.Path) (string, m.Category) {
	content = rules.RewriteSignatures(content)

	rule := rules.ClassifyPath(path)
	content = rules.WrapFailures(content, rule)
	content = rules.MarkLoggersImplicit(content)

	return content, rule.Category
}

// NeedsMigration reports whether a file still carries legacy error
// signatures. Thin wrapper so the workflow depends on the domain
// package only.
func NeedsMigration(content string) bool {
	return rules.NeedsMigration(content)
}
