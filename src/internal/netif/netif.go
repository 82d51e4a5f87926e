// FILE: srunauth/src/internal/netif/netif.go
package netif

import (
	"fmt"
	"net"
	"runtime"
	"strings"

	"srunauth/src/internal/core"
)

var supportedOS = map[string]bool{
	"linux":   true,
	"darwin":  true,
	"windows": true,
	"freebsd": true,
	"openbsd": true,
	"netbsd":  true,
	"android": true,
}

// Resolver finds the IPv4 address bound to a named network adapter.
type Resolver struct {
	goos       string
	interfaces func() ([]net.Interface, error)
	addrs      func(iface net.Interface) ([]net.Addr, error)
}

// NewResolver returns a Resolver backed by the host network stack.
func NewResolver() *Resolver {
	return &Resolver{
		goos:       runtime.GOOS,
		interfaces: net.Interfaces,
		addrs: func(iface net.Interface) ([]net.Addr, error) {
			return iface.Addrs()
		},
	}
}

// Lookup returns the dotted IPv4 address of the adapter called name. Besides the
// OS interface name it accepts ipconfig section headers such as
// "Wireless LAN adapter WLAN". It never returns an empty address without an error.
func (r *Resolver) Lookup(name string) (string, error) {
	if !supportedOS[r.goos] {
		return "", fmt.Errorf("%w: interface lookup on %s", core.ErrUnsupportedPlatform, r.goos)
	}

	name = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(name), ":"))
	if name == "" {
		return "", fmt.Errorf("%w: adapter name is empty", core.ErrInterfaceNotFound)
	}

	ifaces, err := r.interfaces()
	if err != nil {
		return "", fmt.Errorf("%w: failed to list interfaces: %v", core.ErrInterfaceNotFound, err)
	}

	iface, ok := match(ifaces, name)
	if !ok {
		return "", fmt.Errorf("%w: %q", core.ErrInterfaceNotFound, name)
	}

	addrs, err := r.addrs(iface)
	if err != nil {
		return "", fmt.Errorf("%w: failed to read addresses of %s: %v", core.ErrInterfaceNotFound, iface.Name, err)
	}

	for _, addr := range addrs {
		if ip := ipv4Of(addr); ip != nil {
			return ip.String(), nil
		}
	}

	return "", fmt.Errorf("%w: %s has no IPv4 address", core.ErrInterfaceNotFound, iface.Name)
}

// match tries the exact name, then a case-insensitive name, then the part after
// the last "adapter " as printed by ipconfig.
func match(ifaces []net.Interface, name string) (net.Interface, bool) {
	candidates := []string{name}
	lower := strings.ToLower(name)
	if i := strings.LastIndex(lower, "adapter "); i >= 0 {
		if short := strings.TrimSpace(name[i+len("adapter "):]); short != "" {
			candidates = append(candidates, short)
		}
	}

	for _, candidate := range candidates {
		for _, iface := range ifaces {
			if iface.Name == candidate {
				return iface, true
			}
		}
		for _, iface := range ifaces {
			if strings.EqualFold(iface.Name, candidate) {
				return iface, true
			}
		}
	}
	return net.Interface{}, false
}

func ipv4Of(addr net.Addr) net.IP {
	var ip net.IP
	switch v := addr.(type) {
	case *net.IPNet:
		ip = v.IP
	case *net.IPAddr:
		ip = v.IP
	default:
		return nil
	}
	return ip.To4()
}
