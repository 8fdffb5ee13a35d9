package log

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

func TestTranscript_TeesWrites(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "session.log")

	var out bytes.Buffer
	tr, err := NewTranscript(&out, path)
	if err != nil {
		t.Fatalf("NewTranscript() error = %v", err)
	}

	for _, chunk := range []string{"hello ", "world\n"} {
		n, err := tr.Write([]byte(chunk))
		if err != nil {
			t.Fatalf("Write(%q) error = %v", chunk, err)
		}
		if n != len(chunk) {
			t.Errorf("Write(%q) = %d bytes, want %d", chunk, n, len(chunk))
		}
	}

	if err := tr.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	want := "hello world\n"
	if out.String() != want {
		t.Errorf("wrapped writer received %q, want %q", out.String(), want)
	}

	recorded, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading transcript: %v", err)
	}
	if string(recorded) != want {
		t.Errorf("transcript file contains %q, want %q", recorded, want)
	}
}

func TestTranscript_Appends(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "session.log")

	for _, chunk := range []string{"first", "second"} {
		tr, err := NewTranscript(&bytes.Buffer{}, path)
		if err != nil {
			t.Fatalf("NewTranscript() error = %v", err)
		}
		if _, err := tr.Write([]byte(chunk)); err != nil {
			t.Fatalf("Write() error = %v", err)
		}
		tr.Close()
	}

	recorded, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading transcript: %v", err)
	}
	if string(recorded) != "firstsecond" {
		t.Errorf("transcript file contains %q, want %q", recorded, "firstsecond")
	}
}

func TestNewTranscript_BadPath(t *testing.T) {
	t.Parallel()

	if _, err := NewTranscript(&bytes.Buffer{}, "/nonexistent-dir/session.log"); err == nil {
		t.Error("NewTranscript() with an unwritable path should return an error")
	}
}
