// Package config holds the runtime configuration assembled from CLI flags.
package config

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
)

// Config describes one bridged shell session.
type Config struct {
	Shell   string // shell program to run on the PTY slave
	Raw     bool   // put the local terminal into raw mode while bridging
	LogFile string // optional transcript file for shell output
	Verbose bool   // verbose error logging
}

// Validate checks the configuration and returns all problems found.
func (c *Config) Validate() []error {
	var errors []error

	if c.Shell == "" {
		errors = append(errors, fmt.Errorf("shell must not be empty"))
	} else if _, err := exec.LookPath(c.Shell); err != nil {
		errors = append(errors, fmt.Errorf("shell %q: %s", c.Shell, err))
	}

	if c.LogFile != "" {
		dir := filepath.Dir(c.LogFile)
		if info, err := os.Stat(dir); err != nil || !info.IsDir() {
			errors = append(errors, fmt.Errorf("log file directory %q does not exist", dir))
		}
	}

	return errors
}
