// FILE: srunauth/src/internal/useragent/useragent.go
package useragent

import (
	"strings"
	"sync"

	"srunauth/src/internal/core"

	"github.com/ua-parser/uap-go/uaparser"
)

// Compiling the regex database is slow; it is shared by every Parse call
var parser = sync.OnceValue(func() *uaparser.Parser {
	return uaparser.NewFromSaved()
})

// Parse returns the device family (os) and the OS family (name) sent in the
// login request. Empty families fall back to "Windows NT" and "Windows".
func Parse(ua string) (device, platform string) {
	device, platform = core.DefaultDevice, core.DefaultPlatform

	client := parser().Parse(strings.TrimSpace(ua))
	if client == nil {
		return device, platform
	}
	if client.Device != nil && client.Device.Family != "" {
		device = client.Device.Family
	}
	if client.Os != nil && client.Os.Family != "" {
		platform = client.Os.Family
	}
	return device, platform
}
