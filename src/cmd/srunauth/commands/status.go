// FILE: srunauth/src/cmd/srunauth/commands/status.go
package commands

import (
	"flag"
	"fmt"
	"io"
	"os"

	"srunauth/src/internal/format"
)

// StatusCommand queries the online session of this client
type StatusCommand struct {
	output io.Writer
	errOut io.Writer
}

// NewStatusCommand creates a new status command
func NewStatusCommand() *StatusCommand {
	return &StatusCommand{
		output: os.Stdout,
		errOut: os.Stderr,
	}
}

func (c *StatusCommand) Execute(args []string) error {
	cmd := flag.NewFlagSet("status", flag.ContinueOnError)
	cmd.SetOutput(c.errOut)
	flags := registerCommonFlags(cmd)
	cmd.Usage = func() { fmt.Fprint(c.errOut, c.Help()) }

	if err := parseArgs(cmd, args); err != nil {
		return err
	}

	rt, err := newRuntime(flags, false, c.errOut)
	if err != nil {
		return err
	}
	defer rt.close()

	ctx, cancel := rt.context()
	defer cancel()

	info, err := rt.auth.Status(ctx)
	if err != nil {
		return err
	}

	if !flags.isQuiet() {
		rt.print(c.output, format.Report{
			Command:  "status",
			Online:   info.Online,
			Username: info.Username,
			IP:       info.IP,
			Message:  info.Message,
			Bytes:    info.Bytes,
			Seconds:  info.Seconds,
			Balance:  info.Balance,
		})
	}

	if !info.Online {
		return fmt.Errorf("%w: %s", ErrOffline, info.Message)
	}
	return nil
}

func (c *StatusCommand) Description() string {
	return "Show the online session of this client"
}

func (c *StatusCommand) Help() string {
	return `Status Command - Query the gateway for the current session

Usage:
  srunauth status [options]

Accepts the same options as login. Exits with status 3 when offline.

Examples:
  srunauth status
  srunauth status -q && echo online
  srunauth status --format json
`
}
