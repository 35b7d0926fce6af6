package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInjectImportsAfterLastImport(t *testing.T) {
	content := strings.Join([]string{
		"package org.llm4s.szork.persistence",
		"",
		"import foo.Bar",
		"import foo.Baz",
		"",
		"class Store",
	}, "\n")

	got, injected := InjectImports(content)
	require.True(t, injected)

	lines := strings.Split(got, "\n")
	assert.Equal(t, "import foo.Baz", lines[3])
	assert.Equal(t, "import org.llm4s.szork.error._", lines[4])
	assert.Equal(t, "import org.llm4s.szork.error.ErrorHandling._", lines[5])
	assert.Equal(t, "", lines[6])
}

func TestInjectImportsAfterPackageDeclaration(t *testing.T) {
	content := strings.Join([]string{
		"package org.llm4s.szork",
		"",
		"class GameEngine",
	}, "\n")

	got, injected := InjectImports(content)
	require.True(t, injected)

	lines := strings.Split(got, "\n")
	assert.Equal(t, "package org.llm4s.szork", lines[0])
	assert.Equal(t, "", lines[1])
	assert.Equal(t, "import org.llm4s.szork.error._", lines[2])
	assert.Equal(t, "import org.llm4s.szork.error.ErrorHandling._", lines[3])
}

func TestInjectImportsPrependsWithoutPackageOrImports(t *testing.T) {
	content := "class Loose"

	got, injected := InjectImports(content)
	require.True(t, injected)

	lines := strings.Split(got, "\n")
	assert.Equal(t, "import org.llm4s.szork.error._", lines[0])
	assert.Equal(t, "import org.llm4s.szork.error.ErrorHandling._", lines[1])
	assert.Equal(t, "class Loose", lines[2])
}

func TestInjectImportsIdempotent(t *testing.T) {
	content := strings.Join([]string{
		"package org.llm4s.szork",
		"",
		"import org.llm4s.szork.error._",
		"import org.llm4s.szork.error.ErrorHandling._",
		"",
		"class GameEngine",
	}, "\n")

	got, injected := InjectImports(content)
	assert.False(t, injected)
	assert.Equal(t, content, got)
}
