package util

import (
	"os"

	"github.com/fatih/color"
)

func isTerminal(f *os.File) bool {
	fi, err := f.Stat()
	if err != nil {
		return false
	}
	return fi.Mode()&os.ModeCharDevice != 0
}

// IsTTY reports whether stdout is a terminal.
func IsTTY() bool {
	return isTerminal(os.Stdout)
}

// CanPrompt reports whether questions can be asked and answered: both
// stdin and stdout must be terminals.
func CanPrompt() bool {
	return isTerminal(os.Stdin) && isTerminal(os.Stdout)
}

// InitColor turns colored output off for --no-color or when stdout is
// not a terminal.
func InitColor(noColor bool) {
	if noColor || !IsTTY() {
		color.NoColor = true
	}
}
