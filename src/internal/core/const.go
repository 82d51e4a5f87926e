// FILE: srunauth/src/internal/core/const.go
package core

// Protocol constants shared by the portal client and its configuration defaults
const (
	// PayloadPrefix tags the encoded info field format version
	PayloadPrefix = "{SRBX1}"

	// PasswordPrefix marks the HMAC-MD5 password parameter
	PasswordPrefix = "{MD5}"

	// Callback is the JSONP callback name sent to and expected back from the gateway
	Callback = "_"

	DefaultAlphabet = "LVoJPiCN2R8G90yg+hmFHuacZ1OWMnrsSTXkYpUq/3dlbfKwv6xztjI7DeBE45QA"
	DefaultPad      = '='

	DefaultEncVersion = "srun_bx1"
	DefaultN          = "200"
	DefaultType       = "1"
	DefaultACID       = "0"
)

// Default device identity used when no user agent can be parsed
const (
	DefaultDevice    = "Windows NT"
	DefaultPlatform  = "Windows"
	DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"
)
