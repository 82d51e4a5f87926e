// FILE: srunauth/src/internal/version/version.go
package version

import "fmt"

var (
	// Version is set at compile time via -ldflags
	Version   = "dev"
	GitCommit = "unknown"
	BuildTime = "unknown"
)

// String returns a formatted version string
func String() string {
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, GitCommit, BuildTime)
}

// UserAgentToken identifies the client in log output, e.g. "srunauth/dev"
func UserAgentToken() string {
	return "srunauth/" + Version
}
