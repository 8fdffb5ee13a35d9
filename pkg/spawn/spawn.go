// Package spawn starts an interactive shell attached to the slave end of
// a freshly allocated pseudo-terminal. The parent keeps only the master
// descriptor and the child's pid.
package spawn

import (
	"fmt"
	"os"
	"os/exec"
	"syscall"
	"ttybridge/pkg/pty"
)

const fallbackShell = "/bin/bash"

// DefaultShell returns the shell configured in the environment, falling
// back to /bin/bash when $SHELL is unset. It is a pure function of the
// process environment and is meant to be queried once at startup.
func DefaultShell() string {
	if shell := os.Getenv("SHELL"); shell != "" {
		return shell
	}

	return fallbackShell
}

// Session is a shell process running on the slave end of a PTY pair.
type Session struct {
	// Master is the master end of the PTY. Ownership passes to whoever
	// bridges the session; it is not closed by Session itself.
	Master *os.File

	cmd *exec.Cmd
}

// Spawn starts the given shell on a new PTY. The shell becomes a session
// leader with the slave as its controlling terminal. The slave descriptor
// is closed in the parent once the child holds its own reference, so a
// shell exit is observable on the master.
func Spawn(shell string) (*Session, error) {
	ptm, pts, err := pty.NewPty()
	if err != nil {
		return nil, fmt.Errorf("pty.NewPty(): %s", err)
	}

	// The argument vector is fully resolved here, before the underlying
	// fork/exec runs inside cmd.Start().
	cmd := exec.Command(shell)
	cmd.Env = os.Environ()
	cmd.Stdin = pts
	cmd.Stdout = pts
	cmd.Stderr = pts
	cmd.SysProcAttr = &syscall.SysProcAttr{
		Setsid:  true,
		Setctty: true,
	}

	// Best effort: start the shell at the size of the local terminal.
	// Fails when stdout is not a terminal, which is fine.
	if size, err := pty.GetTerminalSize(); err == nil {
		pty.SetTerminalSize(ptm, size)
	}

	if err := cmd.Start(); err != nil {
		pts.Close()
		ptm.Close()
		return nil, fmt.Errorf("cmd.Start(): %s", err)
	}

	pts.Close()

	return &Session{Master: ptm, cmd: cmd}, nil
}

// Pid returns the process id of the shell.
func (s *Session) Pid() int {
	return s.cmd.Process.Pid
}

// Wait reaps the shell process and reports how it exited.
func (s *Session) Wait() error {
	return s.cmd.Wait()
}
