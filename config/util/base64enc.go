// Package util provides value types used in config files.
package util

import "encoding/base64"

// Base64Enc is a byte slice that reads from config files as a standard
// base64 string. The zero value decodes to nil.
type Base64Enc struct {
	inner []byte
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (b *Base64Enc) UnmarshalText(text []byte) error {
	v, err := base64.StdEncoding.DecodeString(string(text))
	if err != nil {
		return err
	}
	b.inner = v
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (b Base64Enc) MarshalText() ([]byte, error) {
	return []byte(base64.StdEncoding.EncodeToString(b.inner)), nil
}

// Bytes returns the decoded payload.
func (b *Base64Enc) Bytes() []byte {
	return b.inner
}

// Base64FromString decodes a standard base64 string.
func Base64FromString(s string) (Base64Enc, error) {
	b := Base64Enc{}
	if err := b.UnmarshalText([]byte(s)); err != nil {
		return Base64Enc{}, err
	}
	return b, nil
}

// MustBase64FromString is Base64FromString that panics on invalid input.
// Use only in tests and defaults.
func MustBase64FromString(s string) Base64Enc {
	b, err := Base64FromString(s)
	if err != nil {
		panic(err)
	}
	return b
}
