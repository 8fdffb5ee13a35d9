// Package shared provides the CLI flag definitions and signal handling
// used across ttybridge's command-line interface.
package shared

import (
	"github.com/urfave/cli/v3"
)

const categorySession = "session"

// ShellFlag is the name of the flag to override the shell program.
const ShellFlag = "shell"

// RawFlag is the name of the flag to enable raw mode on the local terminal.
const RawFlag = "raw"

// LogFileFlag is the name of the flag to specify a transcript file.
const LogFileFlag = "log"

// VerboseFlag is the name of the flag to enable verbose error logging.
const VerboseFlag = "verbose"

// GetSessionFlags returns the CLI flags controlling a bridged shell session.
func GetSessionFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:     ShellFlag,
			Aliases:  []string{"s"},
			Usage:    "Shell to run (defaults to $SHELL, then /bin/bash)",
			Category: categorySession,
			Value:    "",
			Required: false,
		},
		&cli.BoolFlag{
			Name:     RawFlag,
			Aliases:  []string{"r"},
			Usage:    "Put the local terminal into raw mode while the shell runs",
			Category: categorySession,
			Value:    false,
			Required: false,
		},
		&cli.StringFlag{
			Name:     LogFileFlag,
			Aliases:  []string{"l"},
			Usage:    "Write a transcript of shell output to this file",
			Category: categorySession,
			Value:    "",
			Required: false,
		},
		&cli.BoolFlag{
			Name:     VerboseFlag,
			Aliases:  []string{"v"},
			Usage:    "Verbose error logging",
			Category: categorySession,
			Value:    false,
			Required: false,
		},
	}
}
