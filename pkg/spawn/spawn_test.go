//go:build linux || darwin
// +build linux darwin

package spawn

import (
	"os"
	"strings"
	"testing"
	"time"
)

func TestDefaultShell(t *testing.T) {
	t.Setenv("SHELL", "/bin/testsh")
	if got := DefaultShell(); got != "/bin/testsh" {
		t.Errorf("DefaultShell() = %q, want %q", got, "/bin/testsh")
	}

	t.Setenv("SHELL", "")
	if got := DefaultShell(); got != fallbackShell {
		t.Errorf("DefaultShell() = %q, want fallback %q", got, fallbackShell)
	}
}

func TestSpawn_MissingShell(t *testing.T) {
	t.Parallel()

	if _, err := Spawn("/nonexistent/shell"); err == nil {
		t.Error("Spawn() with a missing shell should return an error")
	}
}

func TestSpawn_ShellRunsOnPty(t *testing.T) {
	t.Parallel()

	if _, err := os.Stat("/bin/sh"); err != nil {
		t.Skip("/bin/sh not available")
	}

	sess, err := Spawn("/bin/sh")
	if err != nil {
		t.Fatalf("Spawn(/bin/sh) error = %v", err)
	}
	defer sess.Master.Close()

	if sess.Pid() <= 0 {
		t.Errorf("Pid() = %d, want > 0", sess.Pid())
	}

	if _, err := sess.Master.WriteString("echo pty-works; exit\n"); err != nil {
		t.Fatalf("writing to master: %v", err)
	}

	// Collect output until the marker shows up or the slave side goes
	// away. The line discipline echoes the command, so match the marker
	// on a line of its own.
	outCh := make(chan string, 1)
	go func() {
		var sb strings.Builder
		buf := make([]byte, 1024)
		for {
			n, err := sess.Master.Read(buf)
			if n > 0 {
				sb.Write(buf[:n])
				if strings.Contains(sb.String(), "pty-works\r\n") {
					outCh <- sb.String()
					return
				}
			}
			if err != nil {
				outCh <- sb.String()
				return
			}
		}
	}()

	select {
	case out := <-outCh:
		if !strings.Contains(out, "pty-works") {
			t.Errorf("shell output %q does not contain marker", out)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for shell output")
	}

	done := make(chan struct{})
	go func() {
		sess.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("shell was not reaped")
	}
}
