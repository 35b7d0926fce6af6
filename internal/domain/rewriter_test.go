package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/llm4s/szmigrate/internal/model"
)

func TestRewritePersistenceFile(t *testing.T) {
	content := strings.Join([]string{
		"package org.llm4s.szork.persistence",
		"",
		"import foo.Bar",
		"",
		"class Store {",
		`  def save(x: Int): Either[String, Unit] = Left("boom")`,
		"}",
	}, "\n")

	injected, added := InjectImports(content)
	require.True(t, added)

	got, category := Rewrite(injected, m.Path("src/main/scala/org/llm4s/szork/persistence/Store.scala"))

	assert.Equal(t, m.CategoryPersistence, category)
	assert.Contains(t, got, "import foo.Bar\nimport org.llm4s.szork.error._\nimport org.llm4s.szork.error.ErrorHandling._")
	assert.Contains(t, got, `def save(x: Int): SzorkResult[Unit] = Left(PersistenceError("boom", "operation"))`)
	assert.NotContains(t, got, "Either[String,")
}

func TestRewriteDefaultCategory(t *testing.T) {
	content := strings.Join([]string{
		"package org.llm4s.szork",
		"",
		"class GameEngine {",
		"  private val logger = LoggerFactory.getLogger(getClass)",
		"",
		`  def advance(cmd: String): Either[String, GameState] = Left("empty command")`,
		"}",
	}, "\n")

	got, category := Rewrite(content, m.Path("src/main/scala/org/llm4s/szork/GameEngine.scala"))

	assert.Equal(t, m.CategoryGameState, category)
	assert.Contains(t, got, "private implicit val logger = LoggerFactory")
	assert.Contains(t, got, `def advance(cmd: String): SzorkResult[GameState] = Left(GameStateError("empty command"))`)
}

func TestPipelineIsIdempotentThroughClassifierGate(t *testing.T) {
	content := `def parse(s: String): Either[String, Command] = Left("bad input")`
	path := m.Path("src/main/scala/org/llm4s/szork/parsing/CommandParser.scala")

	require.True(t, NeedsMigration(content))

	once, _ := Rewrite(content, path)
	assert.Contains(t, once, `def parse(s: String): SzorkResult[Command] = Left(ParseError("bad input"))`)

	// Rewrite alone would re-wrap the Left call; the second pass is a
	// no-op only because the classifier no longer fires. This is the
	// tool's sole idempotence guarantee.
	assert.False(t, NeedsMigration(once))
}

func TestNeedsMigrationWrapper(t *testing.T) {
	assert.True(t, NeedsMigration(`def f(): Either[String, Int] = ???`))
	assert.False(t, NeedsMigration(`def f(): SzorkResult[Int] = ???`))
}
