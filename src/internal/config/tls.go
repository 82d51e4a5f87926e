// FILE: srunauth/src/internal/config/tls.go
package config

import (
	"fmt"
	"os"
)

// TLSClientConfig controls verification of https portal endpoints
type TLSClientConfig struct {
	// Many campus gateways serve self-signed certificates
	InsecureSkipVerify bool `toml:"insecure_skip_verify"`

	// CA file to trust the gateway certificate
	ServerCAFile string `toml:"server_ca_file"`

	// Overrides SNI and verification name, for gateways addressed by IP
	ServerName string `toml:"server_name"`

	// TLS version constraints
	MinVersion string `toml:"min_version"` // "TLS1.2", "TLS1.3"
	MaxVersion string `toml:"max_version"`
}

func validateTLSClient(tls *TLSClientConfig) error {
	validVersions := map[string]bool{"": true, "TLS1.0": true, "TLS1.1": true, "TLS1.2": true, "TLS1.3": true}
	if !validVersions[tls.MinVersion] {
		return fmt.Errorf("invalid min TLS version: %s", tls.MinVersion)
	}
	if !validVersions[tls.MaxVersion] {
		return fmt.Errorf("invalid max TLS version: %s", tls.MaxVersion)
	}

	if tls.ServerCAFile != "" {
		if _, err := os.Stat(tls.ServerCAFile); err != nil {
			return fmt.Errorf("server_ca_file is not accessible: %w", err)
		}
	}
	return nil
}
