// FILE: srunauth/src/internal/useragent/useragent_test.go
package useragent

import (
	"testing"

	"srunauth/src/internal/core"

	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	testCases := []struct {
		name     string
		ua       string
		device   string
		platform string
	}{
		{
			name:     "WindowsChrome",
			ua:       core.DefaultUserAgent,
			device:   "Other",
			platform: "Windows",
		},
		{
			name:     "IPhoneSafari",
			ua:       "Mozilla/5.0 (iPhone; CPU iPhone OS 16_0 like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/16.0 Mobile/15E148 Safari/604.1",
			device:   "iPhone",
			platform: "iOS",
		},
		{
			name:     "LinuxFirefox",
			ua:       "Mozilla/5.0 (X11; Linux x86_64; rv:121.0) Gecko/20100101 Firefox/121.0",
			device:   "Other",
			platform: "Linux",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			device, platform := Parse(tc.ua)
			assert.Equal(t, tc.device, device)
			assert.Equal(t, tc.platform, platform)
		})
	}

	t.Run("EmptyYieldsFamilies", func(t *testing.T) {
		device, platform := Parse("   ")
		assert.NotEmpty(t, device)
		assert.NotEmpty(t, platform)
	})

	t.Run("Deterministic", func(t *testing.T) {
		d1, p1 := Parse(core.DefaultUserAgent)
		d2, p2 := Parse(core.DefaultUserAgent)
		assert.Equal(t, d1, d2)
		assert.Equal(t, p1, p2)
	})
}
