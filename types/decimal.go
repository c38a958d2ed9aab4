package types

import (
	"fmt"
	"strings"
)

// Decimal is a signed decimal number with an optional fractional part,
// such as "-12.345678".
type Decimal struct {
	value    string
	negative bool
}

// NewDecimal validates s as a decimal number.
func NewDecimal(s string) (Decimal, error) {
	body := s
	negative := false
	if strings.HasPrefix(body, "-") || strings.HasPrefix(body, "+") {
		negative = body[0] == '-'
		body = body[1:]
	}

	whole, frac, hasPoint := strings.Cut(body, ".")
	if whole == "" && hasPoint {
		whole = "0"
	}
	if !isDigits(whole) || (hasPoint && !isDigits(frac)) {
		return Decimal{}, fmt.Errorf("%w: %q", ErrInvalidDecimal, s)
	}

	if negative && strings.Trim(whole+frac, "0") == "" {
		negative = false
		s = body
	}
	return Decimal{value: s, negative: negative}, nil
}

// String returns the decimal as given, minus any sign on a zero value.
func (d Decimal) String() string {
	if d.value == "" {
		return "0"
	}
	return d.value
}

// IsNegative reports whether the decimal is below zero.
func (d Decimal) IsNegative() bool {
	return d.negative
}
