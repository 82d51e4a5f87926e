// FILE: srunauth/src/internal/config/config_test.go
package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"srunauth/src/internal/core"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	cfg := defaults()
	cfg.User.Username = "20231234"
	cfg.User.Password = "secret"
	return cfg
}

func TestDefaults(t *testing.T) {
	cfg := defaults()

	assert.NoError(t, cfg.Validate(), "defaults must validate without credentials")
	assert.Equal(t, core.DefaultAlphabet, cfg.Constant.Alpha)
	assert.Equal(t, "200", cfg.Constant.N)
	assert.Equal(t, "1", cfg.Constant.Type)
	assert.Equal(t, "srun_bx1", cfg.Constant.Enc)
	assert.Equal(t, '=', cfg.PadRune())
	assert.ErrorIs(t, cfg.RequireCredentials(), core.ErrConfiguration)
}

func TestConfig_Validate(t *testing.T) {
	testCases := []struct {
		name   string
		mutate func(c *Config)
	}{
		{"ShortAlphabet", func(c *Config) { c.Constant.Alpha = c.Constant.Alpha[:63] }},
		{"LongAlphabet", func(c *Config) { c.Constant.Alpha += "!" }},
		{"PadInAlphabet", func(c *Config) { c.Constant.Pad = "L" }},
		{"MultiSymbolPad", func(c *Config) { c.Constant.Pad = "==" }},
		{"EmptyN", func(c *Config) { c.Constant.N = "" }},
		{"EmptyACID", func(c *Config) { c.Constant.ACID = "" }},
		{"BadHMACKey", func(c *Config) { c.Constant.HMACKey = "ip" }},
		{"NoChallengeURL", func(c *Config) { c.API.Challenge = "" }},
		{"FTPEndpoint", func(c *Config) { c.API.Authenticate = "ftp://10.0.0.1/cgi-bin/srun_portal" }},
		{"HostlessEndpoint", func(c *Config) { c.API.Status = "http:///cgi-bin/rad_user_info" }},
		{"EmptyEthernet", func(c *Config) { c.Device.Ethernet = "" }},
		{"UnknownIPSource", func(c *Config) { c.Device.IPSource = "dhcp" }},
		{"StaticWithoutIP", func(c *Config) { c.Device.IPSource = IPSourceStatic }},
		{"StaticIPv6", func(c *Config) {
			c.Device.IPSource = IPSourceStatic
			c.Device.IP = "fe80::1"
		}},
		{"PortalWithoutURL", func(c *Config) {
			c.Device.IPSource = IPSourcePortal
			c.API.Portal = ""
		}},
		{"ZeroTimeout", func(c *Config) { c.HTTP.TimeoutMS = 0 }},
		{"BadTLSVersion", func(c *Config) { c.HTTP.TLS.MinVersion = "SSL3" }},
		{"ZeroHoldInterval", func(c *Config) { c.Hold.IntervalSeconds = 0 }},
		{"BadLogLevel", func(c *Config) { c.Logging.Level = "trace" }},
		{"NilLogging", func(c *Config) { c.Logging = nil }},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := validConfig()
			tc.mutate(cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.ErrorIs(t, err, core.ErrConfiguration)
		})
	}

	t.Run("Valid", func(t *testing.T) {
		cfg := validConfig()
		require.NoError(t, cfg.Validate())
		require.NoError(t, cfg.RequireCredentials())
	})

	t.Run("StaticIPv4", func(t *testing.T) {
		cfg := validConfig()
		cfg.Device.IPSource = IPSourceStatic
		cfg.Device.IP = "10.20.30.40"
		assert.NoError(t, cfg.Validate())
	})

	t.Run("EmptyDomainAllowed", func(t *testing.T) {
		cfg := validConfig()
		cfg.Constant.Domain = ""
		assert.NoError(t, cfg.Validate())
	})
}

func TestConfig_RequireCredentials(t *testing.T) {
	cfg := validConfig()
	cfg.User.Password = ""
	assert.ErrorIs(t, cfg.RequireCredentials(), core.ErrConfiguration)
	assert.NoError(t, cfg.RequireUsername())

	cfg.User.Username = ""
	assert.ErrorIs(t, cfg.RequireUsername(), core.ErrConfiguration)
}

func TestConfig_Overrides(t *testing.T) {
	cfg := validConfig()
	cfg.applyOverrides(Overrides{
		Username: "override",
		Domain:   "@cmcc",
		IP:       "10.1.1.1",
	})

	assert.Equal(t, "override", cfg.User.Username)
	assert.Equal(t, "secret", cfg.User.Password, "empty override keeps existing value")
	assert.Equal(t, "override@cmcc", cfg.FullUsername())
	assert.Equal(t, IPSourceStatic, cfg.Device.IPSource)
	assert.Equal(t, "10.1.1.1", cfg.Device.IP)
}

func TestConfig_WithPassword(t *testing.T) {
	cfg := validConfig()
	withPass := cfg.WithPassword("prompted")

	assert.Equal(t, "prompted", withPass.User.Password)
	assert.Equal(t, "secret", cfg.User.Password, "source config must not change")

	withPass.Logging.Level = "debug"
	assert.Equal(t, "info", cfg.Logging.Level, "clone must not share logging config")
}

func TestFileFormat(t *testing.T) {
	assert.Equal(t, "json", FileFormat("/etc/srunauth/config.JSON"))
	assert.Equal(t, "yaml", FileFormat("cfg.yml"))
	assert.Equal(t, "yaml", FileFormat("cfg.yaml"))
	assert.Equal(t, "toml", FileFormat("srunauth.toml"))
	assert.Equal(t, "toml", FileFormat("noext"))
}

func TestGetConfigPath(t *testing.T) {
	t.Run("ExplicitAbsolute", func(t *testing.T) {
		t.Setenv("SRUNAUTH_CONFIG_FILE", "/opt/srun.toml")
		t.Setenv("SRUNAUTH_CONFIG_DIR", "/ignored")
		assert.Equal(t, "/opt/srun.toml", GetConfigPath())
	})

	t.Run("RelativeInDir", func(t *testing.T) {
		t.Setenv("SRUNAUTH_CONFIG_FILE", "campus.toml")
		t.Setenv("SRUNAUTH_CONFIG_DIR", "/etc/srunauth")
		assert.Equal(t, filepath.Join("/etc/srunauth", "campus.toml"), GetConfigPath())
	})

	t.Run("DirOnly", func(t *testing.T) {
		t.Setenv("SRUNAUTH_CONFIG_FILE", "")
		t.Setenv("SRUNAUTH_CONFIG_DIR", "/etc/srunauth")
		assert.Equal(t, filepath.Join("/etc/srunauth", "srunauth.toml"), GetConfigPath())
	})
}

func TestCustomEnvTransform(t *testing.T) {
	assert.Equal(t, "SRUNAUTH_USER_USERNAME", customEnvTransform("user.username"))
	assert.Equal(t, "SRUNAUTH_CONSTANT_AC_ID", customEnvTransform("constant.ac_id"))
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "srunauth.toml")
	content := `
[user]
username = "file-user"
password = "file-pass"

[constant]
ac_id = "8"
domain = "@dx"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := Load(LoadOptions{
		Path:      path,
		Overrides: Overrides{Password: "cli-pass"},
	})
	require.NoError(t, err)

	assert.Equal(t, "file-user", cfg.User.Username)
	assert.Equal(t, "cli-pass", cfg.User.Password)
	assert.Equal(t, "8", cfg.Constant.ACID)
	assert.Equal(t, "file-user@dx", cfg.FullUsername())
	assert.Equal(t, core.DefaultAlphabet, cfg.Constant.Alpha, "unset keys keep defaults")
	require.NotNil(t, cfg.Logging)
}

func TestLoad_MissingFile(t *testing.T) {
	dir := t.TempDir()

	t.Run("ExplicitPathMustExist", func(t *testing.T) {
		cfg, err := Load(LoadOptions{Path: filepath.Join(dir, "missing.json")})
		require.Error(t, err)
		assert.ErrorIs(t, err, core.ErrConfiguration)
		assert.Nil(t, cfg)
	})

	t.Run("DefaultLocationFallsBack", func(t *testing.T) {
		t.Setenv("SRUNAUTH_CONFIG_FILE", filepath.Join(dir, "absent.toml"))

		cfg, err := Load(LoadOptions{})
		require.NoError(t, err)
		assert.Equal(t, defaults().API, cfg.API)
	})
}

func TestLoad_EndpointsFollowAuthenticateHost(t *testing.T) {
	path := filepath.Join(t.TempDir(), "srunauth.toml")
	content := `
[user]
username = "u"

[api]
authenticate = "https://10.0.0.1/cgi-bin/srun_portal"
challenge = "https://10.0.0.1/cgi-bin/get_challenge"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := Load(LoadOptions{Path: path})
	require.NoError(t, err)

	assert.Equal(t, "https://10.0.0.1/cgi-bin/rad_user_info", cfg.API.Status)
	assert.Equal(t, "https://10.0.0.1/cgi-bin/rad_user_dm", cfg.API.Logout)
	assert.Equal(t, "https://10.0.0.1/srun_portal_pc", cfg.API.Portal)
}

func TestConfig_AlignEndpoints(t *testing.T) {
	t.Run("KeepsExplicitEndpoints", func(t *testing.T) {
		cfg := validConfig()
		cfg.API.Authenticate = "http://gw.example.edu/cgi-bin/srun_portal"
		cfg.API.Status = "http://status.example.edu/cgi-bin/rad_user_info"
		cfg.alignEndpoints()

		assert.Equal(t, "http://gw.example.edu/cgi-bin/get_challenge", cfg.API.Challenge)
		assert.Equal(t, "http://status.example.edu/cgi-bin/rad_user_info", cfg.API.Status)
	})

	t.Run("DefaultsUnchanged", func(t *testing.T) {
		cfg := validConfig()
		cfg.alignEndpoints()
		assert.Equal(t, defaults().API, cfg.API)
	})
}

func TestConfig_ValidateMessage(t *testing.T) {
	cfg := validConfig()
	cfg.Constant.Alpha = cfg.Constant.Alpha[:63]

	err := cfg.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, core.ErrConfiguration)
	assert.Equal(t, 1, strings.Count(err.Error(), core.ErrConfiguration.Error()))
	assert.Contains(t, err.Error(), "constant: alpha: alphabet must be exactly 64")

	cfg = validConfig()
	cfg.Constant.HMACKey = "ip"
	err = cfg.Validate()
	require.Error(t, err)
	assert.Equal(t, 1, strings.Count(err.Error(), core.ErrConfiguration.Error()))
}
