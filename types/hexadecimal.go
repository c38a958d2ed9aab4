// Package types provides small value types that guarantee a string really is
// a hexadecimal number, a decimal integer, a decimal fraction or a timestamp.
package types

import (
	"fmt"
	"strings"

	"github.com/Lzww0608/guuid/v2/uuiderr"
)

var (
	// ErrInvalidHexadecimal indicates a value that is not a hexadecimal number
	ErrInvalidHexadecimal = uuiderr.New(uuiderr.ErrInvalidArgument, "value must be a hexadecimal number")

	// ErrInvalidInteger indicates a value that is not a signed decimal integer
	ErrInvalidInteger = uuiderr.New(uuiderr.ErrInvalidArgument, "value must be a signed integer or a string containing only digits 0-9 and, optionally, a sign (+ or -)")

	// ErrInvalidDecimal indicates a value that is not a signed decimal number
	ErrInvalidDecimal = uuiderr.New(uuiderr.ErrInvalidArgument, "value must be a signed decimal or a string containing only digits 0-9 and, optionally, a decimal point or sign (+ or -)")
)

// Hexadecimal is a non-empty, lower-case string of hexadecimal digits.
type Hexadecimal struct {
	value string
}

// NewHexadecimal validates s and returns it as a Hexadecimal.
// A leading "0x" is dropped and the digits are lower-cased.
func NewHexadecimal(s string) (Hexadecimal, error) {
	v := strings.ToLower(s)
	v = strings.TrimPrefix(v, "0x")
	if !isHex(v) {
		return Hexadecimal{}, fmt.Errorf("%w: %q", ErrInvalidHexadecimal, s)
	}
	return Hexadecimal{value: v}, nil
}

// MustHexadecimal is like NewHexadecimal but panics on error.
func MustHexadecimal(s string) Hexadecimal {
	h, err := NewHexadecimal(s)
	if err != nil {
		panic(err)
	}
	return h
}

// String returns the hexadecimal digits without a prefix.
func (h Hexadecimal) String() string {
	return h.value
}

// IsZero reports whether h is the zero Hexadecimal (no digits).
func (h Hexadecimal) IsZero() bool {
	return h.value == ""
}

// Pad returns h left-padded with zeros to width digits.
// Values already at least width digits long are returned unchanged.
func (h Hexadecimal) Pad(width int) Hexadecimal {
	if len(h.value) >= width {
		return h
	}
	return Hexadecimal{value: strings.Repeat("0", width-len(h.value)) + h.value}
}

func isHex(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c < '0' || c > '9') && (c < 'a' || c > 'f') {
			return false
		}
	}
	return true
}
