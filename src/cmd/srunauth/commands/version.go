// FILE: srunauth/src/cmd/srunauth/commands/version.go
package commands

import (
	"fmt"

	"srunauth/src/internal/version"
)

// VersionCommand handles version display
type VersionCommand struct{}

// NewVersionCommand creates a new version command
func NewVersionCommand() *VersionCommand {
	return &VersionCommand{}
}

func (c *VersionCommand) Execute(args []string) error {
	fmt.Println(version.String())
	return nil
}

func (c *VersionCommand) Description() string {
	return "Show version information"
}

func (c *VersionCommand) Help() string {
	return `Version Command - Show srunauth version information

Usage:
  srunauth version
  srunauth -v
  srunauth --version
`
}
