// FILE: srunauth/src/internal/alphabet/alphabet.go

// Package alphabet renders ciphertext as a transport-safe string using the standard
// Base64 bit grouping (3 bytes in, 4 symbols out) over a caller-supplied symbol table.
//
// Only encoding is provided; the portal never sends encoded data back to the client.
package alphabet

import (
	"encoding/base64"
	"fmt"
	"strings"
	"unicode/utf8"

	"srunauth/src/internal/core"
)

// Size is the number of symbols an alphabet must contain
const Size = 64

// Encoding is an immutable custom-alphabet encoder, safe for concurrent use.
type Encoding struct {
	alphabet string
	pad      rune
	enc      *base64.Encoding
}

// NewEncoding validates alphabet and pad and returns an encoder. The alphabet must be
// exactly 64 distinct printable ASCII symbols and pad must be a printable ASCII symbol
// not present in the alphabet.
func NewEncoding(alphabet string, pad rune) (*Encoding, error) {
	if err := Validate(alphabet, pad); err != nil {
		return nil, err
	}

	return &Encoding{
		alphabet: alphabet,
		pad:      pad,
		enc:      base64.NewEncoding(alphabet).WithPadding(pad),
	}, nil
}

// Validate checks an alphabet and pad symbol without building an encoder.
func Validate(alphabet string, pad rune) error {
	if n := utf8.RuneCountInString(alphabet); n != Size || len(alphabet) != Size {
		return fmt.Errorf("%w: alphabet must be exactly %d ASCII symbols, got %d", core.ErrConfiguration, Size, n)
	}

	var seen [128]bool
	for i := 0; i < len(alphabet); i++ {
		c := alphabet[i]
		if !printable(rune(c)) {
			return fmt.Errorf("%w: alphabet symbol %q at %d is not printable", core.ErrConfiguration, c, i)
		}
		if seen[c] {
			return fmt.Errorf("%w: alphabet symbol %q appears more than once", core.ErrConfiguration, c)
		}
		seen[c] = true
	}

	if !printable(pad) {
		return fmt.Errorf("%w: pad symbol %q is not printable ASCII", core.ErrConfiguration, pad)
	}
	if seen[pad] {
		return fmt.Errorf("%w: pad symbol %q is part of the alphabet", core.ErrConfiguration, pad)
	}

	return nil
}

func printable(r rune) bool {
	return r > ' ' && r < 0x7f
}

// Alphabet returns the symbol table.
func (e *Encoding) Alphabet() string {
	return e.alphabet
}

// Pad returns the padding symbol.
func (e *Encoding) Pad() rune {
	return e.pad
}

// Encode returns the encoded form of src. Empty input yields an empty string.
func (e *Encoding) Encode(src []byte) string {
	return e.enc.EncodeToString(src)
}

// EncodedLen returns the length of the encoding of n input bytes.
func (e *Encoding) EncodedLen(n int) int {
	return e.enc.EncodedLen(n)
}

// EncodeString encodes a string whose code points each stand for one byte. A code point
// above 255 means the input is not a byte string and is rejected with core.ErrProtocol.
func (e *Encoding) EncodeString(s string) (string, error) {
	var b strings.Builder
	b.Grow(len(s))

	for i, r := range s {
		if r == utf8.RuneError {
			if _, size := utf8.DecodeRuneInString(s[i:]); size == 1 {
				return "", fmt.Errorf("%w: invalid UTF-8 at offset %d", core.ErrProtocol, i)
			}
		}
		if r > 0xff {
			return "", fmt.Errorf("%w: code point U+%04X at offset %d exceeds one byte", core.ErrProtocol, r, i)
		}
		b.WriteByte(byte(r))
	}

	return e.Encode([]byte(b.String())), nil
}
