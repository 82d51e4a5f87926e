// FILE: srunauth/src/internal/portal/ip.go
package portal

import (
	"context"
	"fmt"
	"net/url"
	"regexp"

	"srunauth/src/internal/config"
	"srunauth/src/internal/core"
)

// The portal landing page embeds the client address as `ip : "x.x.x.x"`
var portalIPPattern = regexp.MustCompile(`ip\s*:\s*"(\d{1,3}(?:\.\d{1,3}){3})"`)

// ResolveIP returns the client address according to device.ip_source
func (a *Authenticator) ResolveIP(ctx context.Context) (string, error) {
	switch a.cfg.Device.IPSource {
	case config.IPSourceStatic:
		return a.cfg.Device.IP, nil
	case config.IPSourcePortal:
		return a.scrapeIP(ctx)
	default:
		ip, err := a.resolver.Lookup(a.cfg.Device.Ethernet)
		if err != nil {
			return "", fmt.Errorf("failed to resolve client ip: %w", err)
		}
		return ip, nil
	}
}

func (a *Authenticator) scrapeIP(ctx context.Context) (string, error) {
	params := url.Values{}
	params.Set("ac_id", a.cfg.Constant.ACID)

	resp, err := a.doer.Get(ctx, a.cfg.API.Portal, params)
	if err != nil {
		return "", fmt.Errorf("portal page request failed: %w", err)
	}

	m := portalIPPattern.FindSubmatch(resp.Body)
	if m == nil {
		return "", fmt.Errorf("%w: client ip not found on portal page", core.ErrProtocol)
	}

	a.logger.Debug("msg", "Client ip read from portal page", "component", "portal", "ip", string(m[1]))
	return string(m[1]), nil
}
