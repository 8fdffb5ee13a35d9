// Package run implements the run command, which spawns an interactive
// shell on a new PTY and bridges it to the local terminal.
package run

import (
	"context"
	"fmt"
	"io"
	"os"
	"ttybridge/cmd/shared"
	"ttybridge/pkg/bridge"
	"ttybridge/pkg/config"
	"ttybridge/pkg/log"
	"ttybridge/pkg/spawn"
	"ttybridge/pkg/terminal"

	"github.com/muesli/cancelreader"
	"github.com/urfave/cli/v3"
)

// GetCommand returns the run command.
func GetCommand() *cli.Command {
	return &cli.Command{
		Name:  "run",
		Usage: "Spawn a shell on a new PTY and attach it to this terminal",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg := config.Config{
				Shell:   cmd.String(shared.ShellFlag),
				Raw:     cmd.Bool(shared.RawFlag),
				LogFile: cmd.String(shared.LogFileFlag),
				Verbose: cmd.Bool(shared.VerboseFlag),
			}
			if cfg.Shell == "" {
				cfg.Shell = spawn.DefaultShell()
			}

			if errors := cfg.Validate(); len(errors) > 0 {
				log.ErrorMsg("Argument validation errors:\n")
				for _, err := range errors {
					log.ErrorMsg(" - %s\n", err)
				}
				return fmt.Errorf("exiting")
			}

			return runSession(ctx, cfg)
		},
		Flags: shared.GetSessionFlags(),
	}
}

func runSession(ctx context.Context, cfg config.Config) error {
	log.InfoMsg("Using shell: %s\n", cfg.Shell)

	sess, err := spawn.Spawn(cfg.Shell)
	if err != nil {
		return fmt.Errorf("spawn.Spawn(%s): %s", cfg.Shell, err)
	}
	log.InfoMsg("Shell running with pid %d\n", sess.Pid())

	out, cleanupOut, err := sessionOutput(cfg)
	if err != nil {
		sess.Master.Close()
		return err
	}
	defer cleanupOut()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	shared.SetupSignalHandling(cancel)

	in := sessionInput(ctx, cfg)

	if cfg.Raw && terminal.IsTerminal(os.Stdin) {
		restore, err := terminal.MakeRaw(os.Stdin)
		if err != nil {
			sess.Master.Close()
			return fmt.Errorf("terminal.MakeRaw(stdin): %s", err)
		}
		defer restore()
	}

	return bridgeSession(sess, in, out, cfg)
}

// bridgeSession runs the bridge and then reaps the shell. The bridge
// closing the master hangs up the session, so the shell terminates if it
// has not already; it is waited on even when the bridge failed, so a
// fatal relay error leaves no zombie behind.
func bridgeSession(sess *spawn.Session, in io.Reader, out io.Writer, cfg config.Config) error {
	bridgeErr := bridge.New(sess.Master, in, out).Run()
	waitErr := sess.Wait()

	if bridgeErr != nil {
		return fmt.Errorf("bridging session: %s", bridgeErr)
	}

	if waitErr != nil {
		if cfg.Verbose {
			log.ErrorMsg("Shell exited: %s\n", waitErr)
		}
		return nil
	}

	log.InfoMsg("Session finished\n")
	return nil
}

// sessionOutput returns the writer for shell output, wrapping stdout in a
// transcript tee when a log file was requested.
func sessionOutput(cfg config.Config) (io.Writer, func(), error) {
	if cfg.LogFile == "" {
		return os.Stdout, func() {}, nil
	}

	transcript, err := log.NewTranscript(os.Stdout, cfg.LogFile)
	if err != nil {
		return nil, nil, fmt.Errorf("log.NewTranscript(%s): %s", cfg.LogFile, err)
	}

	return transcript, func() { transcript.Close() }, nil
}

// sessionInput returns the reader for shell input. Stdin is wrapped in a
// cancelable reader where the platform supports it, so a context cancel
// unblocks a pending terminal read and shuts the bridge down cleanly.
func sessionInput(ctx context.Context, cfg config.Config) io.Reader {
	cr, err := cancelreader.NewReader(os.Stdin)
	if err != nil {
		if cfg.Verbose {
			log.ErrorMsg("stdin reads are not cancelable: %s\n", err)
		}
		return os.Stdin
	}

	go func() {
		<-ctx.Done()
		cr.Cancel()
	}()

	return cr
}
