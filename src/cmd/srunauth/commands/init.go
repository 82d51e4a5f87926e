// FILE: srunauth/src/cmd/srunauth/commands/init.go
package commands

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"srunauth/src/internal/config"
)

// InitCommand writes a starter configuration file
type InitCommand struct {
	output io.Writer
	errOut io.Writer
}

// NewInitCommand creates a new init command
func NewInitCommand() *InitCommand {
	return &InitCommand{
		output: os.Stdout,
		errOut: os.Stderr,
	}
}

func (c *InitCommand) Execute(args []string) error {
	cmd := flag.NewFlagSet("init", flag.ContinueOnError)
	cmd.SetOutput(c.errOut)

	var (
		outPath      = cmd.String("o", "", "Output file (format from extension: .toml, .json, .yaml)")
		outPathLong  = cmd.String("output", "", "Output file (format from extension: .toml, .json, .yaml)")
		username     = cmd.String("u", "", "Username to store")
		usernameLong = cmd.String("user", "", "Username to store")
		domain       = cmd.String("d", "", "Carrier domain suffix to store")
		domainLong   = cmd.String("domain", "", "Carrier domain suffix to store")
		force        = cmd.Bool("f", false, "Overwrite an existing file")
		forceLong    = cmd.Bool("force", false, "Overwrite an existing file")
	)
	cmd.Usage = func() { fmt.Fprint(c.errOut, c.Help()) }

	if err := parseArgs(cmd, args); err != nil {
		return err
	}

	path := coalesceString(*outPath, *outPathLong, config.GetConfigPath())
	if _, err := os.Stat(path); err == nil && !coalesceBool(*force, *forceLong) {
		return fmt.Errorf("%s already exists, use --force to overwrite", path)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create config directory: %w", err)
		}
	}

	cfg := config.Defaults()
	cfg.User.Username = coalesceString(*username, *usernameLong)
	cfg.Constant.Domain = coalesceString(*domain, *domainLong)

	if err := cfg.SaveToFile(path); err != nil {
		return err
	}

	fmt.Fprintf(c.output, "Configuration written to %s\n", path)
	return nil
}

func (c *InitCommand) Description() string {
	return "Write a starter configuration file"
}

func (c *InitCommand) Help() string {
	return `Init Command - Write a configuration file with built-in defaults

Usage:
  srunauth init [options]

Options:
  -o, --output <path>      Output file (default: ~/.config/srunauth.toml)
  -u, --user <name>        Username to store
  -d, --domain <suffix>    Carrier domain suffix to store
  -f, --force              Overwrite an existing file

The password is never written; it is prompted for at login or read from
SRUNAUTH_USER_PASSWORD.
`
}
