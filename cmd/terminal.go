package cmd

import (
	"os"

	"github.com/mattn/go-isatty"
)

// isTerminal returns whether or not the specified file descriptor refers to an
// interactive terminal, including Cygwin and MSYS terminals on Windows.
func isTerminal(fd uintptr) bool {
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// StandardInputIsTerminal returns whether or not standard input is connected to
// an interactive terminal.
func StandardInputIsTerminal() bool {
	return isTerminal(os.Stdin.Fd())
}

// StandardOutputIsTerminal returns whether or not standard output is connected
// to an interactive terminal.
func StandardOutputIsTerminal() bool {
	return isTerminal(os.Stdout.Fd())
}
