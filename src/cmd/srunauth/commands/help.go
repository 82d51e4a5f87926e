// FILE: srunauth/src/cmd/srunauth/commands/help.go
package commands

import (
	"fmt"
	"sort"
	"strings"
)

// generalHelpTemplate is the default help message shown when no specific command is requested.
const generalHelpTemplate = `srunauth: SRUN captive portal authentication client.

Usage:
  srunauth [command] [options]
  srunauth [options]            (same as: srunauth login [options])

Commands:
%s

Common Options:
  -c, --config <path>      Config file (default: ~/.config/srunauth.toml)
  -u, --user <name>        Username without domain suffix
  -p, --password <pass>    Password (prompted when not configured)
  -q, --quiet              Suppress console output
  -h, --help               Display this help message and exit
  -v, --version            Display version information and exit

For command-specific help:
  srunauth help <command>
  srunauth <command> --help

Configuration Sources (Precedence: CLI > Env > File > Defaults):
  - Config file format follows the extension: .toml, .json, .yaml
  - Environment variables: SRUNAUTH_<SECTION>_<KEY>, e.g. SRUNAUTH_USER_PASSWORD
  - SRUNAUTH_CONFIG_FILE and SRUNAUTH_CONFIG_DIR select the config file

Examples:
  # Write a starter config, then log in
  srunauth init -u 20231234 -d @cmcc
  srunauth

  # Stay online on a headless box
  srunauth hold -q -c /etc/srunauth.toml
`

// HelpCommand handles the display of general or command-specific help messages.
type HelpCommand struct {
	router *CommandRouter
}

// NewHelpCommand creates a new help command handler.
func NewHelpCommand(router *CommandRouter) *HelpCommand {
	return &HelpCommand{router: router}
}

// Execute displays the appropriate help message based on the provided arguments.
func (c *HelpCommand) Execute(args []string) error {
	if len(args) > 0 && args[0] != "" {
		cmdName := args[0]

		if handler, exists := c.router.GetCommand(cmdName); exists {
			fmt.Fprint(c.router.output, handler.Help())
			return nil
		}

		return fmt.Errorf("unknown command: %s", cmdName)
	}

	fmt.Fprintf(c.router.output, generalHelpTemplate, c.formatCommandList())
	return nil
}

// Description returns a brief one-line description of the command.
func (c *HelpCommand) Description() string {
	return "Display help information"
}

// Help returns the detailed help text for the 'help' command itself.
func (c *HelpCommand) Help() string {
	return `Help Command - Display help information

Usage:
  srunauth help              Show general help
  srunauth help <command>    Show help for a specific command
`
}

// formatCommandList creates a formatted and aligned list of all available commands.
func (c *HelpCommand) formatCommandList() string {
	commands := c.router.GetCommands()

	names := make([]string, 0, len(commands))
	maxLen := 0
	for name := range commands {
		names = append(names, name)
		if len(name) > maxLen {
			maxLen = len(name)
		}
	}
	sort.Strings(names)

	var lines []string
	for _, name := range names {
		handler := commands[name]
		padding := strings.Repeat(" ", maxLen-len(name)+2)
		lines = append(lines, fmt.Sprintf("  %s%s%s", name, padding, handler.Description()))
	}

	return strings.Join(lines, "\n")
}
