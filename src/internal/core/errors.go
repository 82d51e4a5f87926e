// FILE: srunauth/src/internal/core/errors.go
package core

import "errors"

// Error kinds surfaced by the authentication pipeline. Callers match them with errors.Is;
// the concrete cause is wrapped alongside.
var (
	// ErrConfiguration covers missing credentials and malformed alphabets or endpoints
	ErrConfiguration = errors.New("configuration error")

	// ErrNetwork covers transport failures and non-200 responses
	ErrNetwork = errors.New("network error")

	// ErrProtocol covers malformed gateway responses and codec input violations
	ErrProtocol = errors.New("protocol error")

	// ErrUnsupportedPlatform is returned by IP discovery on hosts it cannot inspect
	ErrUnsupportedPlatform = errors.New("unsupported platform")

	// ErrInterfaceNotFound is returned when the named network adapter is absent or has no IPv4 address
	ErrInterfaceNotFound = errors.New("interface not found")
)
