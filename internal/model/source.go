// Package model defines the data structures for the error-handling migration.
package model

// Path represents a file system path.
type Path string

// SourceFile is a Scala source file held in memory during a single run.
// Content is read once, rewritten zero or more times, and written back
// at most once if it changed.
type SourceFile struct {
	Path    Path
	Content string
}
