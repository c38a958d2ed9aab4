package types

import (
	"fmt"
	"strconv"
	"strings"
)

// Number is a signed numeric value kept in its exact decimal string form.
type Number interface {
	fmt.Stringer
	IsNegative() bool
}

// Integer is an arbitrary-size signed decimal integer.
// Leading zeros are trimmed and negative zero is normalized to "0".
type Integer struct {
	value    string
	negative bool
}

// NewInteger parses a string of decimal digits with an optional sign.
func NewInteger(s string) (Integer, error) {
	digits := s
	negative := false
	if strings.HasPrefix(digits, "-") || strings.HasPrefix(digits, "+") {
		negative = digits[0] == '-'
		digits = digits[1:]
	}
	if !isDigits(digits) {
		return Integer{}, fmt.Errorf("%w: %q", ErrInvalidInteger, s)
	}

	digits = strings.TrimLeft(digits, "0")
	if digits == "" {
		return Integer{value: "0"}, nil
	}
	if negative {
		return Integer{value: "-" + digits, negative: true}, nil
	}
	return Integer{value: digits}, nil
}

// MustInteger is like NewInteger but panics on error.
func MustInteger(s string) Integer {
	i, err := NewInteger(s)
	if err != nil {
		panic(err)
	}
	return i
}

// IntegerFromInt64 converts a native integer.
func IntegerFromInt64(n int64) Integer {
	return Integer{value: strconv.FormatInt(n, 10), negative: n < 0}
}

// IntegerFromUint64 converts a native unsigned integer.
func IntegerFromUint64(n uint64) Integer {
	return Integer{value: strconv.FormatUint(n, 10)}
}

// String returns the decimal representation, with a leading "-" when negative.
func (i Integer) String() string {
	if i.value == "" {
		return "0"
	}
	return i.value
}

// IsNegative reports whether the integer is below zero.
func (i Integer) IsNegative() bool {
	return i.negative
}

// Int64 returns the integer as an int64, failing when it does not fit.
func (i Integer) Int64() (int64, error) {
	n, err := strconv.ParseInt(i.String(), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s does not fit in 64 bits", ErrInvalidInteger, i.String())
	}
	return n, nil
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
