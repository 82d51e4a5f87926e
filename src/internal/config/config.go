// FILE: srunauth/src/internal/config/config.go
package config

import (
	"srunauth/src/internal/core"
)

// Config is the complete client configuration. It is built once by Load and treated
// as read-only afterwards.
type Config struct {
	User     UserConfig     `toml:"user"`
	Device   DeviceConfig   `toml:"device"`
	API      APIConfig      `toml:"api"`
	Constant ConstantConfig `toml:"constant"`
	HTTP     HTTPConfig     `toml:"http"`
	Hold     HoldConfig     `toml:"hold"`
	Logging  *LogConfig     `toml:"logging"`
}

type UserConfig struct {
	Username string `toml:"username"`
	Password string `toml:"password"`
}

// IP sources for DeviceConfig.IPSource
const (
	IPSourceInterface = "interface"
	IPSourcePortal    = "portal"
	IPSourceStatic    = "static"
)

type DeviceConfig struct {
	// Adapter name, either the OS interface name or an ipconfig section header
	Ethernet  string `toml:"ethernet"`
	UserAgent string `toml:"user_agent"`

	// "interface", "portal" or "static"
	IPSource string `toml:"ip_source"`

	// Used when IPSource is "static"
	IP string `toml:"ip"`
}

type APIConfig struct {
	Authenticate string `toml:"authenticate"`
	Challenge    string `toml:"challenge"`
	Status       string `toml:"status"`
	Logout       string `toml:"logout"`

	// Portal landing page, scraped for the client IP when IPSource is "portal"
	Portal string `toml:"portal"`
}

type ConstantConfig struct {
	Type   string `toml:"type"`
	N      string `toml:"n"`
	Enc    string `toml:"enc"`
	ACID   string `toml:"ac_id"`
	Domain string `toml:"domain"`
	Alpha  string `toml:"alpha"`
	Pad    string `toml:"pad"`

	// HMAC key role for the password digest: "token" or "password"
	HMACKey string `toml:"hmac_key"`
}

type HTTPConfig struct {
	TimeoutMS int64 `toml:"timeout_ms"`

	// Sent as the User-Agent header; defaults to device.user_agent
	UserAgentHeader string `toml:"user_agent_header"`

	TLS TLSClientConfig `toml:"tls"`
}

type HoldConfig struct {
	IntervalSeconds   int64 `toml:"interval_seconds"`
	MinReloginSeconds int64 `toml:"min_relogin_seconds"`
}

// FullUsername returns the account name with the carrier domain suffix appended
func (c *Config) FullUsername() string {
	return c.User.Username + c.Constant.Domain
}

// PadRune returns the configured padding symbol
func (c *Config) PadRune() rune {
	for _, r := range c.Constant.Pad {
		return r
	}
	return core.DefaultPad
}

// Clone returns a deep copy, used when applying overrides to a loaded configuration
func (c *Config) Clone() *Config {
	out := *c
	if c.Logging != nil {
		logging := *c.Logging
		out.Logging = &logging
	}
	return &out
}

func defaults() *Config {
	return &Config{
		Device: DeviceConfig{
			Ethernet:  "Wireless LAN adapter WLAN",
			UserAgent: core.DefaultUserAgent,
			IPSource:  IPSourceInterface,
		},
		API: APIConfig{
			Authenticate: "http://202.203.208.5/cgi-bin/srun_portal",
			Challenge:    "http://202.203.208.5/cgi-bin/get_challenge",
			Status:       "http://202.203.208.5/cgi-bin/rad_user_info",
			Logout:       "http://202.203.208.5/cgi-bin/rad_user_dm",
			Portal:       "http://202.203.208.5/srun_portal_pc",
		},
		Constant: ConstantConfig{
			Type:    core.DefaultType,
			N:       core.DefaultN,
			Enc:     core.DefaultEncVersion,
			ACID:    core.DefaultACID,
			Domain:  "",
			Alpha:   core.DefaultAlphabet,
			Pad:     string(core.DefaultPad),
			HMACKey: "token",
		},
		HTTP: HTTPConfig{
			TimeoutMS: 5000,
			TLS: TLSClientConfig{
				MinVersion: "TLS1.2",
			},
		},
		Hold: HoldConfig{
			IntervalSeconds:   60,
			MinReloginSeconds: 30,
		},
		Logging: DefaultLogConfig(),
	}
}

// Defaults returns the built-in configuration, used by the init command
func Defaults() *Config {
	return defaults()
}
