// Package pty allocates pseudo-terminal pairs and controls their
// descriptors. The master end is what a controller reads and writes,
// the slave end becomes the controlling terminal of a child process.
package pty

// TerminalSize represents the dimensions of a terminal window in rows and columns.
type TerminalSize struct {
	Rows int // Number of rows (height) in the terminal
	Cols int // Number of columns (width) in the terminal
}
