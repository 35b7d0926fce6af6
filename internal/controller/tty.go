package controller

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// IsTTY reports whether the file is attached to a terminal, so the CLI
// can pick the interactive UI only when someone is watching.
func IsTTY(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// NewUI picks the UI implementation for the session: the TUI on a
// terminal, plain text otherwise (pipes, CI).
func NewUI(cmd *cobra.Command, isTTY bool) UI {
	if isTTY {
		return NewTUI(cmd.OutOrStdout())
	}

	return NewSimpleUI(cmd)
}
