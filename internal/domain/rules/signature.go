// Package rules holds the pure text rules of the migration: legacy
// signature detection and rewriting, the ordered category table for
// failure wrapping, and the logger modifier rule. Everything here is
// deliberately regex-over-flat-text, not a Scala parser; files the
// expressions don't anticipate are left partially migrated for the
// manual review pass.
package rules

import (
	"regexp"
	"strings"
)

const (
	legacyStringFailure = "Either[String,"
	legacyListFailure   = "Either[List[String],"
)

var (
	stringFailureSig = regexp.MustCompile(`:\s*Either\[String,\s*([^\]]+)\]`)
	listFailureSig   = regexp.MustCompile(`:\s*Either\[List\[String\],\s*([^\]]+)\]`)
)

// NeedsMigration reports whether content still carries either legacy
// error signature. Substring test only: comments and string literals
// can produce false positives, reformatted code false negatives.
func NeedsMigration(content string) bool {
	return strings.Contains(content, legacyStringFailure) ||
		strings.Contains(content, legacyListFailure)
}

// CountLegacyHits returns the number of legacy signature occurrences.
func CountLegacyHits(content string) int {
	return strings.Count(content, legacyStringFailure) +
		strings.Count(content, legacyListFailure)
}

// RewriteSignatures converts both legacy two-argument signatures into
// the unified SzorkResult form, preserving the success type verbatim.
// A success type that itself contains ']' is not matched; that case
// goes to manual review.
func RewriteSignatures(content string) string {
	content = stringFailureSig.ReplaceAllString(content, ": SzorkResult[${1}]")
	content = listFailureSig.ReplaceAllString(content, ": SzorkResult[${1}]")

	return content
}
