// Package obfuscate encodes hand-off query parameters (date, location) so they
// are not immediately readable in shared URLs.
//
// This is a display-hiding convenience only, NOT a security boundary: the
// encoding is plain base64 and anyone can reverse it. Never use these values
// for authorization decisions.
package obfuscate

import "encoding/base64"

// Encode obfuscates a value for use in a URL query parameter.
func Encode(value string) string {
	return base64.StdEncoding.EncodeToString([]byte(value))
}

// Decode reverses Encode. Decoding is best effort: if the input is not valid
// base64 the raw input is returned unchanged, so hand-written URLs keep
// working.
func Decode(encoded string) string {
	decoded, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return encoded
	}
	return string(decoded)
}
