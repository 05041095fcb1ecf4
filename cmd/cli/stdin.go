package cli

import (
	"os"

	"github.com/mattn/go-isatty"
)

// hasTerminalInput reports whether stdin is an interactive terminal rather than a pipe or redirect
func hasTerminalInput() bool {
	fd := os.Stdin.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
