package guuid

import (
	"encoding/base64"
	"fmt"
)

// EncodeToHex encodes the UUID to a hexadecimal string without hyphens
func (u UUID) EncodeToHex() string {
	return u.Hex().String()
}

// EncodeToBase64 encodes the binary form to a base64 string (URL-safe, no padding)
func (u UUID) EncodeToBase64() string {
	return base64.RawURLEncoding.EncodeToString(u.Bytes())
}

// EncodeToBase64Std encodes the binary form to a standard base64 string
func (u UUID) EncodeToBase64Std() string {
	return base64.StdEncoding.EncodeToString(u.Bytes())
}

// DecodeFromHex decodes a hexadecimal string to UUID
func DecodeFromHex(s string) (UUID, error) {
	if len(s) != 32 {
		return UUID{}, fmt.Errorf("%w: %q is not 32 hex digits", ErrInvalidFormat, s)
	}
	return defaultFactory.FromString(s)
}

// DecodeFromBase64 decodes a base64 string to UUID (URL-safe encoding)
func DecodeFromBase64(s string) (UUID, error) {
	return decodeBase64(base64.RawURLEncoding, s)
}

// DecodeFromBase64Std decodes a standard base64 string to UUID
func DecodeFromBase64Std(s string) (UUID, error) {
	return decodeBase64(base64.StdEncoding, s)
}

func decodeBase64(enc *base64.Encoding, s string) (UUID, error) {
	data, err := enc.DecodeString(s)
	if err != nil {
		return UUID{}, fmt.Errorf("%w: %w", ErrInvalidFormat, err)
	}
	return defaultFactory.FromBytes(data)
}

// FromBytes creates a UUID from its 16-byte binary form
func FromBytes(b []byte) (UUID, error) {
	return defaultFactory.FromBytes(b)
}

// MustFromBytes is like FromBytes but panics on error
func MustFromBytes(b []byte) UUID {
	uuid, err := FromBytes(b)
	if err != nil {
		panic(err)
	}
	return uuid
}
