// FILE: srunauth/src/internal/jsonp/jsonp.go

// Package jsonp strips a JSONP callback wrapper of the form `callback(<json>)` from a
// gateway response body and decodes the inner document.
package jsonp

import (
	"bytes"
	"encoding/json"
	"fmt"

	"srunauth/src/internal/core"
)

// Unwrap returns the JSON document enclosed by callback(...). Surrounding whitespace and
// a trailing semicolon are tolerated; anything else is a protocol error.
func Unwrap(body []byte, callback string) ([]byte, error) {
	if callback == "" {
		return nil, fmt.Errorf("%w: empty JSONP callback name", core.ErrProtocol)
	}

	trimmed := bytes.TrimSpace(body)
	trimmed = bytes.TrimSuffix(trimmed, []byte(";"))
	trimmed = bytes.TrimRightFunc(trimmed, isSpace)

	prefix := callback + "("
	if !bytes.HasPrefix(trimmed, []byte(prefix)) || !bytes.HasSuffix(trimmed, []byte(")")) ||
		len(trimmed) < len(prefix)+1 {
		return nil, fmt.Errorf("%w: response is not wrapped in %s(...): %s",
			core.ErrProtocol, callback, preview(body))
	}

	inner := trimmed[len(prefix) : len(trimmed)-1]
	if !json.Valid(inner) {
		return nil, fmt.Errorf("%w: invalid JSON inside %s(...): %s", core.ErrProtocol, callback, preview(inner))
	}
	return inner, nil
}

// Decode unwraps body and unmarshals the inner document into v.
func Decode(body []byte, callback string, v any) error {
	inner, err := Unwrap(body, callback)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(inner, v); err != nil {
		return fmt.Errorf("%w: failed to decode JSONP payload: %v", core.ErrProtocol, err)
	}
	return nil
}

func isSpace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\r' || r == '\n'
}

// preview bounds response text quoted in error messages
func preview(b []byte) string {
	const maxPreview = 128
	if len(b) > maxPreview {
		return fmt.Sprintf("%q...", b[:maxPreview])
	}
	return fmt.Sprintf("%q", b)
}
