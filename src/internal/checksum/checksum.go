// FILE: srunauth/src/internal/checksum/checksum.go
package checksum

import (
	"crypto/hmac"
	"crypto/md5"
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"strings"

	"srunauth/src/internal/core"
)

// KeyRole selects which operand keys the password HMAC
type KeyRole string

const (
	// KeyToken uses the challenge token as HMAC key and the password as message.
	// This is what the portal's own JavaScript computes.
	KeyToken KeyRole = "token"

	// KeyPassword swaps the roles, for gateways matching the Python client's call order
	KeyPassword KeyRole = "password"
)

// ParseKeyRole converts a configuration value into a KeyRole
func ParseKeyRole(s string) (KeyRole, error) {
	switch KeyRole(strings.ToLower(strings.TrimSpace(s))) {
	case KeyToken, "":
		return KeyToken, nil
	case KeyPassword:
		return KeyPassword, nil
	default:
		return "", fmt.Errorf("%w: unknown hmac key role %q (valid: token, password)", core.ErrConfiguration, s)
	}
}

// PasswordHMAC returns the hex HMAC-MD5 of password and token with the given key role
func PasswordHMAC(password, token string, role KeyRole) string {
	key, msg := token, password
	if role == KeyPassword {
		key, msg = password, token
	}

	h := hmac.New(md5.New, []byte(key))
	h.Write([]byte(msg))
	return hex.EncodeToString(h.Sum(nil))
}

// Fields holds the checksum inputs. The concatenation order is part of the gateway contract.
type Fields struct {
	Token        string
	Username     string
	PasswordHMAC string
	ACID         string
	IP           string
	N            string
	Type         string
	Info         string
}

// Concat interleaves the token before every other field with no separators
func (f Fields) Concat() string {
	parts := [...]string{f.Username, f.PasswordHMAC, f.ACID, f.IP, f.N, f.Type, f.Info}

	var b strings.Builder
	b.Grow(len(parts)*len(f.Token) + len(f.Username) + len(f.PasswordHMAC) + len(f.ACID) +
		len(f.IP) + len(f.N) + len(f.Type) + len(f.Info))
	for _, p := range parts {
		b.WriteString(f.Token)
		b.WriteString(p)
	}
	return b.String()
}

// Sum returns the SHA-1 hex digest of the concatenated fields
func Sum(f Fields) string {
	return SHA1Hex(f.Concat())
}

// SHA1Hex returns the SHA-1 hex digest of s
func SHA1Hex(s string) string {
	sum := sha1.Sum([]byte(s))
	return hex.EncodeToString(sum[:])
}
