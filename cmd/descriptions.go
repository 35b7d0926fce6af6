package cmd

const rootLongDescription = `Szmigrate rewrites the Szork codebase from bare Either error channels
to the unified SzorkResult type. It injects the error-vocabulary
imports, unifies Either[String, T] and Either[List[String], T]
signatures, and wraps Left(...) failures with a context-specific error
constructor chosen from the file path.

The rewrite is regex-based, not a Scala parser: it is a one-time,
manually supervised aid, and every run ends with a fixed list of files
to review by hand.

Supports Go-style path patterns:
  - src/main/scala/...   recursively scan (the default)
  - ./gameplay           scan a single directory, no sub-dirs
  - a/... b/...          scan multiple trees`

const runLongDescription = `Run the migration pass over the given roots (default src/main/scala,
recursive). Files are rewritten in place and only when their content
actually changes, so running twice is a no-op. Use --dry-run to see
per-file diffs without touching the tree.`

const listLongDescription = `Scan the given roots without writing anything and show, per file, how
many legacy Either signatures remain and which failure category the
path classifies into. Useful before a run, and afterwards to confirm
nothing was left behind.`
