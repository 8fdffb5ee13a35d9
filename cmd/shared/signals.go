package shared

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"
)

// SetupSignalHandling cancels the given context on the first interrupt or
// termination signal so the session can shut down gracefully. A second
// signal forces an immediate exit.
func SetupSignalHandling(cancel context.CancelFunc) {
	sigCh := make(chan os.Signal, 2)

	// broken pipes surface as write errors instead of killing the process
	signal.Ignore(syscall.SIGPIPE)

	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM, syscall.SIGHUP, syscall.SIGQUIT)

	go func() {
		s := <-sigCh
		cancel()

		// allow a grace period for cleanup, force exit on a second signal
		select {
		case <-sigCh:
			if ss, ok := s.(syscall.Signal); ok {
				os.Exit(128 + int(ss))
			}
			os.Exit(1)
		case <-time.After(5 * time.Second):
			os.Exit(0)
		}
	}()
}
