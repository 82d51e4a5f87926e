// FILE: srunauth/src/cmd/srunauth/commands/hold.go
package commands

import (
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"srunauth/src/internal/keepalive"
)

// HoldCommand keeps the client online until interrupted
type HoldCommand struct {
	output io.Writer
	errOut io.Writer
}

// NewHoldCommand creates a new hold command
func NewHoldCommand() *HoldCommand {
	return &HoldCommand{
		output: os.Stdout,
		errOut: os.Stderr,
	}
}

func (c *HoldCommand) Execute(args []string) error {
	cmd := flag.NewFlagSet("hold", flag.ContinueOnError)
	cmd.SetOutput(c.errOut)
	flags := registerCommonFlags(cmd)
	interval := cmd.Int("n", 0, "Seconds between status checks (overrides hold.interval_seconds)")
	intervalLong := cmd.Int("interval", 0, "Seconds between status checks (overrides hold.interval_seconds)")
	cmd.Usage = func() { fmt.Fprint(c.errOut, c.Help()) }

	if err := parseArgs(cmd, args); err != nil {
		return err
	}
	finalInterval := coalesceInt(*interval, *intervalLong, 0)
	if finalInterval < 0 {
		return fmt.Errorf("interval cannot be negative: %d", finalInterval)
	}

	rt, err := newRuntime(flags, true, c.errOut)
	if err != nil {
		return err
	}
	defer rt.close()

	if err := rt.cfg.RequireCredentials(); err != nil {
		return err
	}

	opts := keepalive.OptionsFromConfig(rt.cfg.Hold)
	if finalInterval > 0 {
		opts.Interval = time.Duration(finalInterval) * time.Second
	}
	keeper := keepalive.New(rt.auth, opts, rt.logger)

	ctx, cancel := rt.context()
	defer cancel()

	if !flags.isQuiet() {
		fmt.Fprintf(c.output, "Holding session for %s every %s, Ctrl+C to stop\n",
			rt.cfg.FullUsername(), opts.Interval)
	}

	err = keeper.Run(ctx)
	rt.logger.Info("msg", "Hold statistics", "component", "hold", "stats", keeper.GetStats())
	return err
}

func (c *HoldCommand) Description() string {
	return "Stay online, logging in again whenever the session drops"
}

func (c *HoldCommand) Help() string {
	return `Hold Command - Keep the client online

Usage:
  srunauth hold [options]

Options:
  -n, --interval <sec>     Seconds between status checks
  plus every login option

Logins are spaced at least hold.min_relogin_seconds apart.
Stops on SIGINT or SIGTERM.
`
}
