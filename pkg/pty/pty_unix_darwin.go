//go:build darwin
// +build darwin

package pty

import (
	"bytes"
	"fmt"
	"os"
	"syscall"
	"unsafe"

	"golang.org/x/sys/unix"
)

// Darwin has no TIOCGPTN. The slave name comes from TIOCPTYGNAME, which
// fills a caller-provided buffer whose length is encoded in the ioctl
// request itself.

func openPtm() (*os.File, error) {
	ptmFd, err := unix.Open("/dev/ptmx", unix.O_RDWR|unix.O_CLOEXEC, 0)
	if err != nil {
		return nil, fmt.Errorf("unix.Open(/dev/ptmx): %s", err)
	}

	return os.NewFile(uintptr(ptmFd), "/dev/ptmx"), nil
}

const _IOCPARM_MASK = 0x1fff
const _IOCPARM_LEN = (syscall.TIOCPTYGNAME >> 16) & _IOCPARM_MASK

func ptsname(f *os.File) (string, error) {
	buf := make([]byte, _IOCPARM_LEN)

	if err := ioctl(f.Fd(), syscall.TIOCPTYGNAME, uintptr(unsafe.Pointer(&buf[0]))); err != nil {
		return "", fmt.Errorf("ioctl(fd, TIOCPTYGNAME): %s", err)
	}

	n := bytes.IndexByte(buf, 0)
	if n == -1 {
		return "", fmt.Errorf("slave name is not null-terminated")
	}

	return string(buf[:n]), nil
}

func grantpt(f *os.File) error {
	return ioctl(f.Fd(), syscall.TIOCPTYGRANT, 0)
}

func unlockpt(f *os.File) error {
	return ioctl(f.Fd(), syscall.TIOCPTYUNLK, 0)
}

func ioctl(fd, cmd, ptr uintptr) error {
	_, _, e := syscall.Syscall(syscall.SYS_IOCTL, fd, cmd, ptr)
	if e != 0 {
		return e
	}
	return nil
}
