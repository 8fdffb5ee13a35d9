// Package terminal controls the local terminal the bridge runs inside.
package terminal

import (
	"fmt"
	"os"

	"golang.org/x/term"
)

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// MakeRaw switches the terminal attached to f into raw mode so keystrokes
// reach the shell unmodified. The returned restore function switches the
// terminal back and clears the current line.
func MakeRaw(f *os.File) (restore func(), err error) {
	oldState, err := term.MakeRaw(int(f.Fd()))
	if err != nil {
		return nil, fmt.Errorf("setting terminal to raw mode: %s", err)
	}

	return func() {
		term.Restore(int(f.Fd()), oldState)
		fmt.Printf("\033[2K\r") // clear line
	}, nil
}
