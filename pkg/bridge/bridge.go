// Package bridge relays bytes between local stdin/stdout and the master
// end of a pseudo-terminal until either side closes. It is the component
// that owns the master descriptor.
package bridge

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"
	"ttybridge/pkg/pty"

	"golang.org/x/sys/unix"
)

const (
	// stdinChunkSize caps how many bytes a single stdin read may produce.
	stdinChunkSize = 256

	// queueCapacity bounds the number of stdin chunks in flight. A full
	// queue blocks the stdin reader, which is the only back-pressure
	// mechanism on the PTY write path.
	queueCapacity = 64

	// masterBufSize is the read buffer for PTY output.
	masterBufSize = 2048

	// pollInterval is how long the relay waits after a would-block read
	// before probing the master again.
	pollInterval = 10 * time.Millisecond
)

// Bridge owns the master end of a PTY pair and shuttles bytes between it
// and a local input/output stream pair. The master descriptor is closed
// exactly once when Run returns, on every exit path.
type Bridge struct {
	master *os.File
	in     io.Reader
	out    io.Writer

	closeOnce sync.Once
}

// New creates a Bridge that consumes ownership of the master descriptor.
// in and out are usually stdin and stdout of the process.
func New(master *os.File, in io.Reader, out io.Writer) *Bridge {
	return &Bridge{
		master: master,
		in:     in,
		out:    out,
	}
}

// Run sets the master descriptor to non-blocking mode and relays bytes
// until the input stream is exhausted, the shell side of the PTY goes
// away, or a fatal I/O error occurs. Would-block conditions on the master
// are never errors; they are retried after pollInterval.
//
// The input reader should be closable or cancelable (see cancelreader in
// cmd/run): the stdin goroutine stays alive until its pending Read
// returns, even after Run itself has finished.
func (b *Bridge) Run() error {
	defer b.closeMaster()

	// The raw descriptor is captured exactly once. Calling Fd again later
	// would re-register the file with the runtime poller and silently
	// switch it back to blocking mode.
	fd := int(b.master.Fd())
	if err := pty.SetNonblock(fd); err != nil {
		return fmt.Errorf("pty.SetNonblock(master): %s", err)
	}

	queue := make(chan []byte, queueCapacity)
	done := make(chan struct{})
	defer close(done)

	go b.readInput(queue, done)

	return b.relay(fd, queue)
}

// readInput moves stdin into the queue, one owned chunk per read call.
// It closes the queue when the input stream ends and terminates silently
// once the relay has shut down.
func (b *Bridge) readInput(queue chan<- []byte, done <-chan struct{}) {
	buf := make([]byte, stdinChunkSize)
	for {
		n, err := b.in.Read(buf)
		if n > 0 {
			// buf is reused, so the relay gets its own copy.
			chunk := make([]byte, n)
			copy(chunk, buf[:n])

			select {
			case queue <- chunk:
			case <-done:
				return
			}
		}
		if err != nil {
			close(queue)
			return
		}
	}
}

// relay is the single consumer of the queue and the only goroutine that
// touches the master descriptor.
func (b *Bridge) relay(fd int, queue <-chan []byte) error {
	buf := make([]byte, masterBufSize)

	for {
		// Queued input is drained before new PTY output is read, so
		// heavy shell output cannot starve keystrokes.
		select {
		case chunk, ok := <-queue:
			if !ok {
				return nil // input exhausted and queue drained
			}
			if err := b.writeMaster(fd, chunk); err != nil {
				return err
			}
			continue
		default:
		}

		n, err := unix.Read(fd, buf)
		switch {
		case err == unix.EAGAIN:
			// No output available right now. Wait out the poll
			// interval, but take queued input immediately if some
			// arrives first.
			select {
			case chunk, ok := <-queue:
				if !ok {
					return nil
				}
				if err := b.writeMaster(fd, chunk); err != nil {
					return err
				}
			case <-time.After(pollInterval):
			}
		case err == unix.EINTR:
		case err != nil:
			if isClosedPty(err) {
				return nil
			}
			return fmt.Errorf("reading from pty master: %s", err)
		case n == 0:
			// The slave side dropped its last descriptor, the shell
			// is gone.
			return nil
		default:
			if _, err := b.out.Write(buf[:n]); err != nil {
				return fmt.Errorf("writing to stdout: %s", err)
			}
		}
	}
}

// writeMaster flushes one chunk completely to the master, preserving the
// FIFO order of the queue. Short writes and would-block conditions are
// retried until the chunk is gone.
func (b *Bridge) writeMaster(fd int, chunk []byte) error {
	for len(chunk) > 0 {
		n, err := unix.Write(fd, chunk)
		if n > 0 {
			chunk = chunk[n:]
		}

		switch {
		case err == unix.EAGAIN:
			time.Sleep(pollInterval)
		case err == unix.EINTR:
		case err != nil:
			return fmt.Errorf("writing to pty master: %s", err)
		}
	}

	return nil
}

func (b *Bridge) closeMaster() {
	b.closeOnce.Do(func() {
		b.master.Close()
	})
}

// isClosedPty reports whether a master read error means the slave side
// has been closed. Linux reports EIO in that case; it is the ordinary end
// of a session, not a failure.
func isClosedPty(err error) bool {
	return err == unix.EIO || err == io.EOF
}
