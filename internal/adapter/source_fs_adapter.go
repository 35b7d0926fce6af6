// Package adapter contains infrastructure adapters for the szmigrate CLI.
package adapter

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	m "github.com/llm4s/szmigrate/internal/model"
)

const scalaFileExt = ".scala"

// vocabularyFiles implement the error-handling vocabulary itself and
// must never be rewritten by the tool that migrates to them.
var vocabularyFiles = []string{
	"error/SzorkError.scala",
	"error/ErrorHandling.scala",
}

// SourceFSAdapter abstracts filesystem operations the workflow relies
// on when scanning and rewriting user projects. It hides direct `os`
// access so the migration logic can be tested without touching disk.
type SourceFSAdapter interface {
	// Scan collects candidate Scala files for the provided roots,
	// applying the vocabulary denylist and the exclude regexes. The
	// result is de-duplicated and sorted for reproducible runs.
	Scan(roots []m.Path, exclude []string) ([]m.Path, error)

	// Walk traverses the provided root path. When recursive is false
	// the implementation limits itself to the root directory.
	Walk(root m.Path, recursive bool, fn FilepathWalkFunc) error

	// ReadFile loads a file from disk and returns its contents.
	ReadFile(path m.Path) (string, error)

	// WriteFile overwrites a file in place, preserving its mode.
	WriteFile(path m.Path, content string) error

	// FileInfo returns metadata for a path so the workflow can check
	// existence or distinguish files from directories.
	FileInfo(path m.Path) (os.FileInfo, error)
}

// FilepathWalkFunc mirrors the callback shape used by filepath.Walk.
// It is defined here to avoid leaking the standard-library type into
// the domain layer.
type FilepathWalkFunc func(path string, info os.FileInfo, err error) error

// LocalSourceFSAdapter is the concrete SourceFSAdapter backed by `os`.
type LocalSourceFSAdapter struct{}

// NewLocalSourceFSAdapter constructs a LocalSourceFSAdapter ready to be
// wired into the workflow.
func NewLocalSourceFSAdapter() *LocalSourceFSAdapter {
	return &LocalSourceFSAdapter{}
}

// Scan collects Scala source files for the provided roots.
func (a *LocalSourceFSAdapter) Scan(roots []m.Path, exclude []string) ([]m.Path, error) {
	excludes, err := compileExcludes(exclude)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{})

	var paths []m.Path

	for _, root := range roots {
		rootPath, recursive, err := normalizeRootPath(string(root))
		if err != nil {
			return nil, err
		}

		info, err := a.FileInfo(m.Path(rootPath))
		if err != nil {
			return nil, fmt.Errorf("root path error: %w", err)
		}

		if !info.IsDir() {
			if includeFilePath(rootPath, excludes) {
				addPath(seen, &paths, rootPath)
			}

			continue
		}

		err = a.Walk(m.Path(rootPath), recursive, func(path string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}

			if info.IsDir() {
				return nil
			}

			if includeFilePath(path, excludes) {
				addPath(seen, &paths, path)
			}

			return nil
		})
		if err != nil {
			return nil, err
		}
	}

	sort.Slice(paths, func(i, j int) bool { return paths[i] < paths[j] })

	return paths, nil
}

// Walk iterates over files under root, optionally descending into
// subdirectories.
func (a *LocalSourceFSAdapter) Walk(root m.Path, recursive bool, fn FilepathWalkFunc) error {
	rootStr := string(root)

	return filepath.Walk(rootStr, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return fn(path, info, err)
		}

		if info.IsDir() && !recursive && path != rootStr {
			return filepath.SkipDir
		}

		return fn(path, info, nil)
	})
}

// ReadFile loads file contents from disk.
func (a *LocalSourceFSAdapter) ReadFile(path m.Path) (string, error) {
	data, err := os.ReadFile(string(path))
	if err != nil {
		return "", err
	}

	return string(data), nil
}

// WriteFile overwrites the file in place, keeping its current mode.
func (a *LocalSourceFSAdapter) WriteFile(path m.Path, content string) error {
	mode := os.FileMode(0o644)
	if info, err := os.Stat(string(path)); err == nil {
		mode = info.Mode()
	}

	return os.WriteFile(string(path), []byte(content), mode)
}

// FileInfo returns os.FileInfo metadata for the given path.
func (a *LocalSourceFSAdapter) FileInfo(path m.Path) (os.FileInfo, error) {
	return os.Stat(string(path))
}

func addPath(seen map[string]struct{}, paths *[]m.Path, path string) {
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}

	if _, exists := seen[abs]; exists {
		return
	}

	seen[abs] = struct{}{}
	*paths = append(*paths, m.Path(path))
}

func includeFilePath(path string, excludes []*regexp.Regexp) bool {
	if filepath.Ext(path) != scalaFileExt {
		return false
	}

	if IsVocabularyFile(m.Path(path)) {
		return false
	}

	for _, re := range excludes {
		if re.MatchString(path) {
			return false
		}
	}

	return true
}

// IsVocabularyFile reports whether the path names one of the files that
// define the target error types.
func IsVocabularyFile(path m.Path) bool {
	slashed := filepath.ToSlash(string(path))

	for _, denied := range vocabularyFiles {
		if strings.HasSuffix(slashed, denied) {
			return true
		}
	}

	return false
}

func compileExcludes(patterns []string) ([]*regexp.Regexp, error) {
	excludes := make([]*regexp.Regexp, 0, len(patterns))

	for _, pattern := range patterns {
		re, err := regexp.Compile(pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid exclude pattern %q: %w", pattern, err)
		}

		excludes = append(excludes, re)
	}

	return excludes, nil
}

func normalizeRootPath(root string) (string, bool, error) {
	rootStr, recursive := parseRootPath(root)

	if strings.HasPrefix(rootStr, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", false, err
		}

		suffix := strings.TrimPrefix(rootStr, "~")
		suffix = strings.TrimPrefix(suffix, string(os.PathSeparator))
		rootStr = filepath.Join(home, suffix)
	}

	if rootStr == "" {
		rootStr = "."
	}

	return rootStr, recursive, nil
}

func parseRootPath(rootStr string) (path string, recursive bool) {
	if len(rootStr) >= 4 && rootStr[len(rootStr)-4:] == "/..." {
		return rootStr[:len(rootStr)-4], true
	}

	return rootStr, false
}
