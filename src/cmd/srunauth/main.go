// FILE: srunauth/src/cmd/srunauth/main.go
package main

import (
	"errors"
	"os"

	"srunauth/src/cmd/srunauth/commands"
	"srunauth/src/internal/core"
)

// Exit codes
const (
	exitOK       = 0
	exitFailure  = 1
	exitConfig   = 2
	exitOffline  = 3
	exitRejected = 4
)

func main() {
	// Quiet mode is needed before any command runs
	InitOutputHandler(hasQuietFlag(os.Args[1:]))

	router := commands.NewCommandRouter()
	if err := router.Route(os.Args); err != nil {
		FatalError(exitCode(err), "Error: %v\n", err)
	}
	os.Exit(exitOK)
}

func exitCode(err error) int {
	switch {
	case errors.Is(err, core.ErrConfiguration):
		return exitConfig
	case errors.Is(err, commands.ErrOffline):
		return exitOffline
	case errors.Is(err, commands.ErrRejected):
		return exitRejected
	default:
		return exitFailure
	}
}

func hasQuietFlag(args []string) bool {
	for _, arg := range args {
		if arg == "-q" || arg == "--quiet" || arg == "-quiet" {
			return true
		}
	}
	return false
}
