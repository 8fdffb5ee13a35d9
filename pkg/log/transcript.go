package log

import (
	"fmt"
	"io"
	"os"
)

// Transcript tees everything written to an output stream into a file,
// producing a byte-for-byte record of the shell's output.
type Transcript struct {
	out  io.Writer
	file *os.File
}

// NewTranscript wraps out so that all writes are also appended to the
// file at path. The file is created if it does not exist.
func NewTranscript(out io.Writer, path string) (*Transcript, error) {
	file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0644)
	if err != nil {
		return nil, err
	}

	return &Transcript{out: out, file: file}, nil
}

// Write forwards b to the wrapped writer and records the bytes that made
// it through in the transcript file.
func (t *Transcript) Write(b []byte) (int, error) {
	n, err := t.out.Write(b)
	if n > 0 {
		if _, ferr := t.file.Write(b[:n]); ferr != nil {
			return n, fmt.Errorf("writing transcript: %s", ferr)
		}
	}
	return n, err
}

// Close closes the transcript file. The wrapped writer is left open.
func (t *Transcript) Close() error {
	return t.file.Close()
}
