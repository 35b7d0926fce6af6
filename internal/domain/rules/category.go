package rules

import (
	"regexp"
	"strings"

	m "github.com/llm4s/szmigrate/internal/model"
)

// leftCall matches a single-argument Left(...) failure expression.
// Nested parentheses inside the argument are out of scope.
var leftCall = regexp.MustCompile(`Left\(([^)]+)\)`)

// CategoryRule pairs a path-keyword predicate with the replacement
// template for Left(...) expressions in files of that category.
type CategoryRule struct {
	Category m.Category
	// Keywords are tested as substrings of the lowercased path. An
	// empty list matches every path (the catch-all default).
	Keywords []string
	// Template is the leftCall replacement, with ${1} carrying the
	// original wrapped argument.
	Template string
}

// Matches reports whether the rule applies to the lowercased path.
func (r CategoryRule) Matches(lowerPath string) bool {
	if len(r.Keywords) == 0 {
		return true
	}

	for _, kw := range r.Keywords {
		if strings.Contains(lowerPath, kw) {
			return true
		}
	}

	return false
}

// categoryRules is the fixed priority order: the first matching rule
// wins and exactly one rule applies per file. The trailing entry has
// no keywords and therefore always matches.
var categoryRules = []CategoryRule{
	{m.CategoryPersistence, []string{"save", "persistence"}, `Left(PersistenceError(${1}, "operation"))`},
	{m.CategoryParse, []string{"parse", "parser"}, `Left(ParseError(${1}))`},
	{m.CategoryValidation, []string{"valid"}, `Left(ValidationError(List(${1})))`},
	{m.CategoryMusic, []string{"music"}, `Left(MusicGenerationError(${1}))`},
	{m.CategoryAudio, []string{"tts", "speech"}, `Left(AudioGenerationError(${1}))`},
	{m.CategoryImage, []string{"image"}, `Left(ImageGenerationError(${1}))`},
	{m.CategoryNetwork, []string{"network", "api"}, `Left(NetworkError(${1}, "service"))`},
	{m.CategoryGameState, nil, `Left(GameStateError(${1}))`},
}

// ClassifyPath selects the single rule for a file path.
func ClassifyPath(path m.Path) CategoryRule {
	lower := strings.ToLower(string(path))

	for _, rule := range categoryRules {
		if rule.Matches(lower) {
			return rule
		}
	}

	// Unreachable: the last rule always matches.
	return categoryRules[len(categoryRules)-1]
}

// WrapFailures rewrites every Left(...) occurrence using the rule's
// template. Zero matches is a no-op, never an error.
func WrapFailures(content string, rule CategoryRule) string {
	return leftCall.ReplaceAllString(content, rule.Template)
}
