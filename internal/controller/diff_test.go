package controller

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderLineDiff(t *testing.T) {
	original := "package a\n\ndef f(): Either[String, Unit] = ???\n"
	migrated := "package a\n\ndef f(): SzorkResult[Unit] = ???\n"

	diff := renderLineDiff(original, migrated)

	assert.Contains(t, diff, "- def f(): Either[String, Unit] = ???\n")
	assert.Contains(t, diff, "+ def f(): SzorkResult[Unit] = ???\n")
	assert.NotContains(t, diff, "package a")
}

func TestRenderLineDiffIdentical(t *testing.T) {
	content := "package a\n"

	assert.Empty(t, renderLineDiff(content, content))
}

func TestSplitDiffLines(t *testing.T) {
	assert.Nil(t, splitDiffLines(""))
	assert.Equal(t, []string{"- a", "+ b"}, splitDiffLines("- a\n+ b\n"))
}
