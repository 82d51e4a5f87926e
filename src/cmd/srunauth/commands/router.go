// FILE: srunauth/src/cmd/srunauth/commands/router.go
package commands

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// Handler defines the interface required for all subcommands.
type Handler interface {
	Execute(args []string) error
	Description() string
	Help() string
}

// defaultCommand runs when no subcommand is named
const defaultCommand = "login"

// CommandRouter handles the routing of CLI arguments to the appropriate subcommand handler.
type CommandRouter struct {
	commands map[string]Handler
	output   io.Writer
}

// NewCommandRouter creates and initializes the command router with all available commands.
func NewCommandRouter() *CommandRouter {
	router := &CommandRouter{
		commands: make(map[string]Handler),
		output:   os.Stdout,
	}

	// Register available commands
	router.commands["login"] = NewLoginCommand()
	router.commands["status"] = NewStatusCommand()
	router.commands["logout"] = NewLogoutCommand()
	router.commands["hold"] = NewHoldCommand()
	router.commands["init"] = NewInitCommand()
	router.commands["version"] = NewVersionCommand()
	router.commands["help"] = NewHelpCommand(router)

	return router
}

// Route executes the subcommand named by args[1]. Without one, or when args[1]
// is a flag, the login command receives the remaining arguments.
func (r *CommandRouter) Route(args []string) error {
	if len(args) < 2 {
		return r.commands[defaultCommand].Execute(nil)
	}

	cmdName := args[1]

	// Help flag at any position shows command-specific or general help
	for _, arg := range args[1:] {
		if arg == "-h" || arg == "--help" {
			if handler, exists := r.commands[cmdName]; exists && cmdName != "help" {
				fmt.Fprint(r.output, handler.Help())
				return nil
			}
			return r.commands["help"].Execute(nil)
		}
	}

	if cmdName == "-v" || cmdName == "--version" {
		return r.commands["version"].Execute(nil)
	}

	handler, exists := r.commands[cmdName]
	if !exists {
		if !strings.HasPrefix(cmdName, "-") {
			return fmt.Errorf("unknown command: %s\n\nRun 'srunauth help' for usage", cmdName)
		}
		return r.commands[defaultCommand].Execute(args[1:])
	}

	return handler.Execute(args[2:])
}

// GetCommand returns a specific command handler by its name.
func (r *CommandRouter) GetCommand(name string) (Handler, bool) {
	cmd, exists := r.commands[name]
	return cmd, exists
}

// GetCommands returns a map of all registered commands.
func (r *CommandRouter) GetCommands() map[string]Handler {
	return r.commands
}

// coalesceString returns the first non-empty string from a list of arguments.
func coalesceString(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// coalesceInt returns the first non-default integer from a list of arguments.
func coalesceInt(primary, secondary, defaultVal int) int {
	if primary != defaultVal {
		return primary
	}
	if secondary != defaultVal {
		return secondary
	}
	return defaultVal
}

// coalesceBool returns true if any of the boolean arguments is true.
func coalesceBool(values ...bool) bool {
	for _, v := range values {
		if v {
			return true
		}
	}
	return false
}
