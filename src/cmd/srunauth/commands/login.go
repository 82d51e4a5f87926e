// FILE: srunauth/src/cmd/srunauth/commands/login.go
package commands

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
)

var (
	// ErrRejected reports a gateway refusal of a login or logout
	ErrRejected = errors.New("rejected by gateway")

	// ErrOffline reports that the status query found no session
	ErrOffline = errors.New("not online")
)

// LoginCommand performs one authentication attempt
type LoginCommand struct {
	output io.Writer
	errOut io.Writer
}

// NewLoginCommand creates a new login command
func NewLoginCommand() *LoginCommand {
	return &LoginCommand{
		output: os.Stdout,
		errOut: os.Stderr,
	}
}

func (c *LoginCommand) Execute(args []string) error {
	cmd := flag.NewFlagSet("login", flag.ContinueOnError)
	cmd.SetOutput(c.errOut)
	flags := registerCommonFlags(cmd)
	cmd.Usage = func() { fmt.Fprint(c.errOut, c.Help()) }

	if err := parseArgs(cmd, args); err != nil {
		return err
	}

	rt, err := newRuntime(flags, true, c.errOut)
	if err != nil {
		return err
	}
	defer rt.close()

	ctx, cancel := rt.context()
	defer cancel()

	result, err := rt.auth.Login(ctx)
	if err != nil {
		rt.logger.Error("msg", "Login failed", "component", "login", "error", err)
		return err
	}

	if !flags.isQuiet() {
		rt.print(c.output, resultReport("login", result))
	}

	if !result.Success() {
		return fmt.Errorf("%w: %s", ErrRejected, result.Message)
	}
	return nil
}

func (c *LoginCommand) Description() string {
	return "Authenticate with the campus gateway (default command)"
}

func (c *LoginCommand) Help() string {
	return `Login Command - Authenticate with the SRUN gateway

Usage:
  srunauth [login] [options]

Options:
  -c, --config <path>      Config file (default: ~/.config/srunauth.toml)
  -u, --user <name>        Username without domain suffix
  -p, --password <pass>    Password (prompted when not configured)
  -e, --ethernet <name>    Network adapter to read the client address from
  -d, --domain <suffix>    Carrier domain suffix, e.g. @cmcc
      --ip <address>       Use a fixed client IPv4 address
      --format <name>      Console output: text, json or raw (default: text)
  -q, --quiet              Suppress console output
      --debug              Enable debug logging

Examples:
  srunauth -u 20231234 -d @cmcc
  srunauth login -c /etc/srunauth.json --ip 10.170.3.21
`
}
