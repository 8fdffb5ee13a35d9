package version

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"
)

// Version is the program version, overwritten during release builds.
var Version = "unknown"

// GetCommand returns the version command.
func GetCommand() *cli.Command {
	return &cli.Command{
		Name:  "version",
		Usage: "Program version",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			fmt.Println(Version)
			return nil
		},
		Flags: []cli.Flag{},
	}
}
