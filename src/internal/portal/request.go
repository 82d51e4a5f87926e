// FILE: srunauth/src/internal/portal/request.go
package portal

import (
	"fmt"
	"net/url"
	"strings"
	"unicode/utf16"
	"unicode/utf8"

	"srunauth/src/internal/alphabet"
	"srunauth/src/internal/checksum"
	"srunauth/src/internal/core"
	"srunauth/src/internal/xencode"
)

// Credentials identify the account. Username already carries the domain suffix.
type Credentials struct {
	Username string
	Password string
}

// LoginInput is everything the login request is derived from
type LoginInput struct {
	Credentials Credentials
	Token       string
	IP          string

	ACID       string
	N          string
	Type       string
	EncVersion string

	// os and name parameters
	Device   string
	Platform string

	Encoding *alphabet.Encoding
	KeyRole  checksum.KeyRole
}

// AuthRequest is the immutable parameter set of one login submission
type AuthRequest struct {
	params url.Values
}

// Values returns a copy of the request parameters
func (r *AuthRequest) Values() url.Values {
	out := make(url.Values, len(r.params))
	for k, v := range r.params {
		out[k] = append([]string(nil), v...)
	}
	return out
}

// Get returns a single parameter value
func (r *AuthRequest) Get(key string) string {
	return r.params.Get(key)
}

// Len returns the number of parameters
func (r *AuthRequest) Len() int {
	return len(r.params)
}

// BuildLogin derives the login parameters. Identical input always yields an
// identical request; the send timestamp is added by the caller.
func BuildLogin(in LoginInput) (*AuthRequest, error) {
	if in.Credentials.Username == "" || in.Credentials.Password == "" {
		return nil, fmt.Errorf("%w: username and password are required", core.ErrConfiguration)
	}
	if in.Token == "" {
		return nil, fmt.Errorf("%w: challenge token is empty", core.ErrProtocol)
	}
	if in.IP == "" {
		return nil, fmt.Errorf("%w: client ip is empty", core.ErrConfiguration)
	}
	if in.Encoding == nil {
		return nil, fmt.Errorf("%w: payload alphabet is not configured", core.ErrConfiguration)
	}
	for _, field := range []struct{ name, value string }{
		{"username", in.Credentials.Username},
		{"password", in.Credentials.Password},
		{"ip", in.IP},
		{"ac_id", in.ACID},
		{"enc_ver", in.EncVersion},
	} {
		if !utf8.ValidString(field.value) {
			return nil, fmt.Errorf("%w: %s is not valid UTF-8", core.ErrConfiguration, field.name)
		}
	}

	info := EncodeInfo(InfoJSON(in.Credentials, in.IP, in.ACID, in.EncVersion), in.Token, in.Encoding)
	hmd5 := checksum.PasswordHMAC(in.Credentials.Password, in.Token, in.KeyRole)
	chksum := checksum.Sum(checksum.Fields{
		Token:        in.Token,
		Username:     in.Credentials.Username,
		PasswordHMAC: hmd5,
		ACID:         in.ACID,
		IP:           in.IP,
		N:            in.N,
		Type:         in.Type,
		Info:         info,
	})

	params := url.Values{}
	params.Set("callback", core.Callback)
	params.Set("action", "login")
	params.Set("username", in.Credentials.Username)
	params.Set("password", core.PasswordPrefix+hmd5)
	params.Set("ac_id", in.ACID)
	params.Set("ip", in.IP)
	params.Set("chksum", chksum)
	params.Set("info", info)
	params.Set("n", in.N)
	params.Set("type", in.Type)
	params.Set("os", in.Device)
	params.Set("name", in.Platform)
	params.Set("double_stack", "0")

	return &AuthRequest{params: params}, nil
}

// InfoJSON renders the credential document encrypted into the info parameter.
// Keys keep a fixed order and every non-ASCII symbol is \u escaped. Values must be
// valid UTF-8.
func InfoJSON(cred Credentials, ip, acid, encVersion string) string {
	fields := []struct {
		key   string
		value string
	}{
		{"username", cred.Username},
		{"password", cred.Password},
		{"ip", ip},
		{"acid", acid},
		{"enc_ver", encVersion},
	}

	var b strings.Builder
	b.WriteByte('{')
	for i, f := range fields {
		if i > 0 {
			b.WriteByte(',')
		}
		writeQuoted(&b, f.key)
		b.WriteByte(':')
		writeQuoted(&b, f.value)
	}
	b.WriteByte('}')
	return b.String()
}

// EncodeInfo encrypts infoJSON under token and renders it with the payload prefix
func EncodeInfo(infoJSON, token string, enc *alphabet.Encoding) string {
	return core.PayloadPrefix + enc.Encode(xencode.EncryptString(infoJSON, token))
}

func writeQuoted(b *strings.Builder, s string) {
	b.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		case '\b':
			b.WriteString(`\b`)
		case '\f':
			b.WriteString(`\f`)
		default:
			switch {
			case r >= 0x20 && r <= 0x7e:
				b.WriteRune(r)
			case r > 0xffff:
				r1, r2 := utf16.EncodeRune(r)
				fmt.Fprintf(b, `\u%04x\u%04x`, r1, r2)
			default:
				fmt.Fprintf(b, `\u%04x`, r)
			}
		}
	}
	b.WriteByte('"')
}
