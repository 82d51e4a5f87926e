// FILE: srunauth/src/cmd/srunauth/commands/logout.go
package commands

import (
	"flag"
	"fmt"
	"io"
	"os"
)

// LogoutCommand ends the session bound to this client
type LogoutCommand struct {
	output io.Writer
	errOut io.Writer
}

// NewLogoutCommand creates a new logout command
func NewLogoutCommand() *LogoutCommand {
	return &LogoutCommand{
		output: os.Stdout,
		errOut: os.Stderr,
	}
}

func (c *LogoutCommand) Execute(args []string) error {
	cmd := flag.NewFlagSet("logout", flag.ContinueOnError)
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

	result, err := rt.auth.Logout(ctx)
	if err != nil {
		return err
	}
	if !flags.isQuiet() {
		rt.print(c.output, resultReport("logout", result))
	}

	if !result.Success() {
		return fmt.Errorf("%w: %s", ErrRejected, result.Message)
	}
	return nil
}

func (c *LogoutCommand) Description() string {
	return "End the session of this client"
}

func (c *LogoutCommand) Help() string {
	return `Logout Command - Drop the gateway session bound to this client

Usage:
  srunauth logout [options]

Accepts the same options as login; no password is needed.
`
}
