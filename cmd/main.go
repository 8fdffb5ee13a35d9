package main

import (
	"context"
	"fmt"
	"os"
	"ttybridge/cmd/run"
	"ttybridge/cmd/version"

	"github.com/urfave/cli/v3"
)

func main() {
	cmd := &cli.Command{
		Name:  "ttybridge",
		Usage: "attach an interactive shell through a pseudo-terminal",
		Commands: []*cli.Command{
			run.GetCommand(),
			version.GetCommand(),
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "[!] Error: %s\n", err)
		os.Exit(1)
	}
}
