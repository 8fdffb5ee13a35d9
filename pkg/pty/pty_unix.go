//go:build linux || darwin
// +build linux darwin

package pty

import (
	"fmt"
	"os"
	"syscall"

	"golang.org/x/sys/unix"
)

// NewPty allocates a new pseudo-terminal pair.
// It returns the master (ptm) and slave (pts) ends as open files.
// The caller is responsible for closing both.
func NewPty() (*os.File, *os.File, error) {
	ptm, err := openPtm()
	if err != nil {
		return nil, nil, fmt.Errorf("openPtm(): %s", err)
	}

	ptsName, err := ptsname(ptm)
	if err != nil {
		ptm.Close()
		return nil, nil, fmt.Errorf("ptsname(ptm): %s", err)
	}

	if err := grantpt(ptm); err != nil {
		ptm.Close()
		return nil, nil, fmt.Errorf("grantpt(ptm): %s", err)
	}

	if err := unlockpt(ptm); err != nil {
		ptm.Close()
		return nil, nil, fmt.Errorf("unlockpt(ptm): %s", err)
	}

	pts, err := os.OpenFile(ptsName, os.O_RDWR|syscall.O_NOCTTY, 0)
	if err != nil {
		ptm.Close()
		return nil, nil, fmt.Errorf("os.OpenFile(%s): %s", ptsName, err)
	}

	return ptm, pts, nil
}

// SetNonblock puts the raw descriptor into non-blocking mode, so reads
// and writes return EAGAIN instead of suspending. Callers must keep
// using this descriptor directly afterwards: going back through
// os.File.Fd re-registers the file with the runtime poller and clears
// O_NONBLOCK again.
func SetNonblock(fd int) error {
	return unix.SetNonblock(fd, true)
}

// GetTerminalSize retrieves the current size of the terminal attached to stdout.
func GetTerminalSize() (size TerminalSize, err error) {
	ws, err := unix.IoctlGetWinsize(int(os.Stdout.Fd()), unix.TIOCGWINSZ)
	if err != nil {
		return size, err
	}

	return TerminalSize{
		Rows: int(ws.Row),
		Cols: int(ws.Col),
	}, nil
}

// SetTerminalSize sets the terminal size for the given PTY file descriptor.
func SetTerminalSize(t *os.File, size TerminalSize) error {
	ws := &unix.Winsize{
		Row: uint16(size.Rows),
		Col: uint16(size.Cols),
	}
	return unix.IoctlSetWinsize(int(t.Fd()), unix.TIOCSWINSZ, ws)
}
