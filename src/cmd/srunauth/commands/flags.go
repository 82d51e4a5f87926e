// FILE: srunauth/src/cmd/srunauth/commands/flags.go
package commands

import (
	"flag"
	"fmt"
	"strings"

	"srunauth/src/internal/config"
)

// commonFlags are accepted by every command that talks to the gateway
type commonFlags struct {
	config, configLong     *string
	username, usernameLong *string
	password, passwordLong *string
	ethernet, ethernetLong *string
	domain, domainLong     *string
	ip                     *string
	format                 *string
	quiet, quietLong       *bool
	debug                  *bool
}

func registerCommonFlags(fs *flag.FlagSet) *commonFlags {
	return &commonFlags{
		config:       fs.String("c", "", "Config file path"),
		configLong:   fs.String("config", "", "Config file path"),
		username:     fs.String("u", "", "Username (without domain suffix)"),
		usernameLong: fs.String("user", "", "Username (without domain suffix)"),
		password:     fs.String("p", "", "Password (will prompt if not configured)"),
		passwordLong: fs.String("password", "", "Password (will prompt if not configured)"),
		ethernet:     fs.String("e", "", "Network adapter name"),
		ethernetLong: fs.String("ethernet", "", "Network adapter name"),
		domain:       fs.String("d", "", "Carrier domain suffix, e.g. @cmcc"),
		domainLong:   fs.String("domain", "", "Carrier domain suffix, e.g. @cmcc"),
		ip:           fs.String("ip", "", "Use this client IPv4 address instead of detecting it"),
		format:       fs.String("format", "text", "Console output format: text, json or raw"),
		quiet:        fs.Bool("q", false, "Suppress console output"),
		quietLong:    fs.Bool("quiet", false, "Suppress console output"),
		debug:        fs.Bool("debug", false, "Enable debug logging"),
	}
}

func (f *commonFlags) loadOptions() config.LoadOptions {
	return config.LoadOptions{
		Path: coalesceString(*f.config, *f.configLong),
		Overrides: config.Overrides{
			Username: coalesceString(*f.username, *f.usernameLong),
			Password: coalesceString(*f.password, *f.passwordLong),
			Ethernet: coalesceString(*f.ethernet, *f.ethernetLong),
			Domain:   coalesceString(*f.domain, *f.domainLong),
			IP:       *f.ip,
		},
	}
}

func (f *commonFlags) isQuiet() bool {
	return coalesceBool(*f.quiet, *f.quietLong)
}

// parseArgs parses args and rejects positional leftovers
func parseArgs(fs *flag.FlagSet, args []string) error {
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() > 0 {
		return fmt.Errorf("unexpected argument(s): %s", strings.Join(fs.Args(), " "))
	}
	return nil
}
