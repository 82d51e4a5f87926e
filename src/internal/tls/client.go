// FILE: srunauth/src/internal/tls/client.go
package tls

import (
	"crypto/tls"
	"crypto/x509"
	"fmt"
	"os"

	"srunauth/src/internal/config"
	"srunauth/src/internal/core"

	"github.com/lixenwraith/log"
)

// ClientManager builds the TLS configuration used for https portal endpoints.
type ClientManager struct {
	config    *config.TLSClientConfig
	tlsConfig *tls.Config
	logger    *log.Logger
}

// NewClientManager creates a TLS manager from the http.tls section.
func NewClientManager(cfg *config.TLSClientConfig, logger *log.Logger) (*ClientManager, error) {
	if cfg == nil {
		return nil, fmt.Errorf("%w: tls config is nil", core.ErrConfiguration)
	}

	m := &ClientManager{
		config: cfg,
		logger: logger,
		tlsConfig: &tls.Config{
			MinVersion: parseTLSVersion(cfg.MinVersion, tls.VersionTLS12),
			MaxVersion: parseTLSVersion(cfg.MaxVersion, tls.VersionTLS13),
		},
	}

	if m.tlsConfig.MaxVersion < m.tlsConfig.MinVersion {
		return nil, fmt.Errorf("%w: max TLS version %s is below min %s", core.ErrConfiguration,
			tlsVersionString(m.tlsConfig.MaxVersion), tlsVersionString(m.tlsConfig.MinVersion))
	}

	// Load server CA for verification.
	if cfg.ServerCAFile != "" {
		caCert, err := os.ReadFile(cfg.ServerCAFile)
		if err != nil {
			return nil, fmt.Errorf("%w: failed to read server CA file: %v", core.ErrConfiguration, err)
		}
		caCertPool := x509.NewCertPool()
		if !caCertPool.AppendCertsFromPEM(caCert) {
			return nil, fmt.Errorf("%w: failed to parse server CA certificate", core.ErrConfiguration)
		}
		m.tlsConfig.RootCAs = caCertPool
	}

	m.tlsConfig.InsecureSkipVerify = cfg.InsecureSkipVerify
	m.tlsConfig.ServerName = cfg.ServerName

	if cfg.InsecureSkipVerify {
		logger.Warn("msg", "Gateway certificate verification disabled", "component", "tls")
	}
	logger.Debug("msg", "TLS client manager initialized",
		"component", "tls",
		"min_version", tlsVersionString(m.tlsConfig.MinVersion),
		"max_version", tlsVersionString(m.tlsConfig.MaxVersion),
		"has_server_ca", cfg.ServerCAFile != "")
	return m, nil
}

// GetConfig returns a copy of the client TLS configuration.
func (m *ClientManager) GetConfig() *tls.Config {
	if m == nil {
		return nil
	}
	return m.tlsConfig.Clone()
}

// GetStats returns a summary of the client TLS configuration.
func (m *ClientManager) GetStats() map[string]any {
	if m == nil {
		return map[string]any{"enabled": false}
	}
	return map[string]any{
		"enabled":              true,
		"min_version":          tlsVersionString(m.tlsConfig.MinVersion),
		"max_version":          tlsVersionString(m.tlsConfig.MaxVersion),
		"has_server_ca":        m.config.ServerCAFile != "",
		"server_name":          m.config.ServerName,
		"insecure_skip_verify": m.config.InsecureSkipVerify,
	}
}
