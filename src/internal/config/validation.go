// FILE: srunauth/src/internal/config/validation.go
package config

import (
	"fmt"
	"net"
	"net/url"
	"strings"
	"unicode/utf8"

	"srunauth/src/internal/alphabet"
	"srunauth/src/internal/checksum"
	"srunauth/src/internal/core"

	lconfig "github.com/lixenwraith/config"
)

// Validate checks everything except credentials, which some commands do not need.
// All failures wrap core.ErrConfiguration.
func (c *Config) Validate() error {
	if err := validateConfig(c); err != nil {
		return fmt.Errorf("%w: %v", core.ErrConfiguration, err)
	}
	return nil
}

// RequireCredentials reports a configuration error when username or password is empty
func (c *Config) RequireCredentials() error {
	if err := c.RequireUsername(); err != nil {
		return err
	}
	if err := lconfig.NonEmpty(c.User.Password); err != nil {
		return fmt.Errorf("%w: password cannot be empty", core.ErrConfiguration)
	}
	return nil
}

// RequireUsername reports a configuration error when the username is empty
func (c *Config) RequireUsername() error {
	if err := lconfig.NonEmpty(c.User.Username); err != nil {
		return fmt.Errorf("%w: username cannot be empty", core.ErrConfiguration)
	}
	return nil
}

func validateConfig(cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("config is nil")
	}

	if err := validateDevice(&cfg.Device); err != nil {
		return fmt.Errorf("device: %w", err)
	}

	if err := validateAPI(&cfg.API, cfg.Device.IPSource); err != nil {
		return fmt.Errorf("api: %w", err)
	}

	if err := validateConstant(&cfg.Constant); err != nil {
		return fmt.Errorf("constant: %w", err)
	}

	if cfg.HTTP.TimeoutMS <= 0 {
		return fmt.Errorf("http: timeout_ms must be positive: %d", cfg.HTTP.TimeoutMS)
	}
	if err := validateTLSClient(&cfg.HTTP.TLS); err != nil {
		return fmt.Errorf("http.tls: %w", err)
	}

	if cfg.Hold.IntervalSeconds < 1 {
		return fmt.Errorf("hold: interval_seconds must be at least 1: %d", cfg.Hold.IntervalSeconds)
	}
	if cfg.Hold.MinReloginSeconds < 0 {
		return fmt.Errorf("hold: min_relogin_seconds cannot be negative: %d", cfg.Hold.MinReloginSeconds)
	}

	if err := validateLogConfig(cfg.Logging); err != nil {
		return fmt.Errorf("logging: %w", err)
	}

	return nil
}

// causeText drops the error kind prefix of errors from shared packages; Validate adds it once
func causeText(err error) string {
	return strings.TrimPrefix(err.Error(), core.ErrConfiguration.Error()+": ")
}

type namedValue struct {
	name  string
	value string
}

func validateDevice(d *DeviceConfig) error {
	if err := lconfig.NonEmpty(d.UserAgent); err != nil {
		return fmt.Errorf("user_agent cannot be empty")
	}

	switch d.IPSource {
	case IPSourceInterface:
		if err := lconfig.NonEmpty(d.Ethernet); err != nil {
			return fmt.Errorf("ethernet cannot be empty when ip_source is %q", IPSourceInterface)
		}
	case IPSourcePortal:
	case IPSourceStatic:
		if err := lconfig.IPAddress(d.IP); err != nil {
			return fmt.Errorf("invalid static ip %q: %w", d.IP, err)
		}
		if ip := net.ParseIP(d.IP); ip == nil || ip.To4() == nil {
			return fmt.Errorf("static ip must be IPv4: %q", d.IP)
		}
	default:
		return fmt.Errorf("invalid ip_source: %s (valid: interface, portal, static)", d.IPSource)
	}

	return nil
}

func validateAPI(a *APIConfig, ipSource string) error {
	endpoints := []namedValue{
		{"authenticate", a.Authenticate},
		{"challenge", a.Challenge},
		{"status", a.Status},
		{"logout", a.Logout},
	}
	if ipSource == IPSourcePortal {
		endpoints = append(endpoints, namedValue{"portal", a.Portal})
	}

	for _, ep := range endpoints {
		if err := validateEndpoint(ep.value); err != nil {
			return fmt.Errorf("%s: %w", ep.name, err)
		}
	}
	return nil
}

func validateEndpoint(raw string) error {
	if err := lconfig.NonEmpty(raw); err != nil {
		return fmt.Errorf("endpoint cannot be empty")
	}
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("invalid URL %q: %w", raw, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("URL %q must use http or https", raw)
	}
	if u.Host == "" {
		return fmt.Errorf("URL %q has no host", raw)
	}
	return nil
}

func validateConstant(c *ConstantConfig) error {
	required := []namedValue{
		{"type", c.Type},
		{"n", c.N},
		{"enc", c.Enc},
		{"ac_id", c.ACID},
	}
	for _, field := range required {
		if err := lconfig.NonEmpty(field.value); err != nil {
			return fmt.Errorf("%s cannot be empty", field.name)
		}
	}

	if utf8.RuneCountInString(c.Pad) != 1 {
		return fmt.Errorf("pad must be a single symbol: %q", c.Pad)
	}
	pad, _ := utf8.DecodeRuneInString(c.Pad)
	if err := alphabet.Validate(c.Alpha, pad); err != nil {
		return fmt.Errorf("alpha: %s", causeText(err))
	}

	if _, err := checksum.ParseKeyRole(c.HMACKey); err != nil {
		return fmt.Errorf("hmac_key: %s", causeText(err))
	}

	return nil
}
