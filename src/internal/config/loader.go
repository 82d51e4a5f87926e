// FILE: srunauth/src/internal/config/loader.go
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"srunauth/src/internal/core"

	lconfig "github.com/lixenwraith/config"
)

// LoadOptions selects the configuration file and command line overrides
type LoadOptions struct {
	// Explicit file path; empty falls back to GetConfigPath
	Path string

	Overrides Overrides
}

// Overrides are command line values taking precedence over every other source
type Overrides struct {
	Username string
	Password string
	Ethernet string
	Domain   string
	IP       string
}

// Load merges defaults, the config file and SRUNAUTH_* environment variables, applies
// command line overrides and validates the result. A missing file is only tolerated
// at the default location; an explicit path must exist.
func Load(opts LoadOptions) (*Config, error) {
	configPath := opts.Path
	if configPath == "" {
		configPath = GetConfigPath()
	} else if _, err := os.Stat(configPath); err != nil {
		return nil, fmt.Errorf("%w: config file %s: %v", core.ErrConfiguration, configPath, err)
	}

	cfg, err := lconfig.NewBuilder().
		WithDefaults(defaults()).
		WithEnvPrefix("SRUNAUTH_").
		WithFile(configPath).
		WithFileFormat(FileFormat(configPath)).
		WithEnvTransform(customEnvTransform).
		WithSources(
			lconfig.SourceEnv,
			lconfig.SourceFile,
			lconfig.SourceDefault,
		).
		Build()

	if err != nil && !errors.Is(err, lconfig.ErrConfigNotFound) {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	finalConfig := &Config{}
	if err := cfg.Scan(finalConfig, ""); err != nil {
		return nil, fmt.Errorf("failed to scan config: %w", err)
	}
	if finalConfig.Logging == nil {
		finalConfig.Logging = DefaultLogConfig()
	}

	finalConfig.alignEndpoints()
	finalConfig.applyOverrides(opts.Overrides)

	return finalConfig, finalConfig.Validate()
}

// alignEndpoints moves endpoints left at their built-in value onto the scheme and
// host of api.authenticate. Config files of existing login scripts only name
// authenticate and challenge.
func (c *Config) alignEndpoints() {
	auth, err := url.Parse(c.API.Authenticate)
	if err != nil || auth.Host == "" {
		return
	}

	builtin := defaults().API
	endpoints := []struct {
		current *string
		builtin string
	}{
		{&c.API.Challenge, builtin.Challenge},
		{&c.API.Status, builtin.Status},
		{&c.API.Logout, builtin.Logout},
		{&c.API.Portal, builtin.Portal},
	}

	for _, ep := range endpoints {
		if *ep.current != ep.builtin {
			continue
		}
		u, err := url.Parse(ep.builtin)
		if err != nil {
			continue
		}
		u.Scheme = auth.Scheme
		u.Host = auth.Host
		*ep.current = u.String()
	}
}

func (c *Config) applyOverrides(o Overrides) {
	if o.Username != "" {
		c.User.Username = o.Username
	}
	if o.Password != "" {
		c.User.Password = o.Password
	}
	if o.Ethernet != "" {
		c.Device.Ethernet = o.Ethernet
	}
	if o.Domain != "" {
		c.Constant.Domain = o.Domain
	}
	if o.IP != "" {
		c.Device.IP = o.IP
		c.Device.IPSource = IPSourceStatic
	}
}

// WithPassword returns a copy of c carrying password, for interactively prompted secrets
func (c *Config) WithPassword(password string) *Config {
	out := c.Clone()
	out.User.Password = password
	return out
}

// FileFormat infers the config file format from its extension. JSON matches the
// layout of the config.json files shipped with existing portal login scripts.
func FileFormat(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return "json"
	case ".yaml", ".yml":
		return "yaml"
	default:
		return "toml"
	}
}

func customEnvTransform(path string) string {
	env := strings.ReplaceAll(path, ".", "_")
	env = strings.ToUpper(env)
	env = "SRUNAUTH_" + env
	return env
}

// GetConfigPath resolves the default config file location
func GetConfigPath() string {
	if configFile := os.Getenv("SRUNAUTH_CONFIG_FILE"); configFile != "" {
		if filepath.IsAbs(configFile) {
			return configFile
		}
		if configDir := os.Getenv("SRUNAUTH_CONFIG_DIR"); configDir != "" {
			return filepath.Join(configDir, configFile)
		}
		return configFile
	}

	if configDir := os.Getenv("SRUNAUTH_CONFIG_DIR"); configDir != "" {
		return filepath.Join(configDir, "srunauth.toml")
	}

	if homeDir, err := os.UserHomeDir(); err == nil {
		return filepath.Join(homeDir, ".config", "srunauth.toml")
	}

	return "srunauth.toml"
}
