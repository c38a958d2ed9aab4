// Package calc provides exact arbitrary-precision arithmetic over the types
// package's Integer values.
//
// UUID integers are 128 bits wide and Gregorian timestamps are 60 bits wide,
// so every conversion between hexadecimal and decimal, and every epoch
// computation, goes through a Calculator rather than native integers.
package calc

import (
	"github.com/Lzww0608/guuid/v2/types"
	"github.com/Lzww0608/guuid/v2/uuiderr"
)

var (
	// ErrDivisionByZero indicates a zero divisor
	ErrDivisionByZero = uuiderr.New(uuiderr.ErrInvalidArgument, "division by zero")

	// ErrRoundingNecessary indicates an inexact quotient under RoundUnnecessary
	ErrRoundingNecessary = uuiderr.New(uuiderr.ErrInvalidArgument, "rounding is necessary to represent the result of the operation at this scale")

	// ErrInvalidBase indicates a base outside 2..36
	ErrInvalidBase = uuiderr.New(uuiderr.ErrInvalidArgument, "base must be between 2 and 36")

	// ErrInvalidNumber indicates a string that is not a number in the given base
	ErrInvalidNumber = uuiderr.New(uuiderr.ErrInvalidArgument, "value is not a valid number in the given base")

	// ErrInvalidRoundingMode indicates a RoundingMode outside the defined set
	ErrInvalidRoundingMode = uuiderr.New(uuiderr.ErrInvalidArgument, "unknown rounding mode")
)

// Calculator performs exact integer arithmetic.
// Implementations must be stateless and safe for concurrent use.
type Calculator interface {
	// Add returns the sum of augend and all addends.
	Add(augend types.Integer, addends ...types.Integer) types.Integer

	// Subtract returns minuend minus all subtrahends.
	Subtract(minuend types.Integer, subtrahends ...types.Integer) types.Integer

	// Multiply returns the product of multiplicand and all multipliers.
	Multiply(multiplicand types.Integer, multipliers ...types.Integer) types.Integer

	// Divide divides dividend by each divisor in turn, keeping scale digits
	// after the decimal point and rounding each step with mode. A zero scale
	// yields a types.Integer, anything else a types.Decimal.
	Divide(mode RoundingMode, scale int, dividend types.Integer, divisors ...types.Integer) (types.Number, error)

	// FromBase parses value written in base (2..36).
	FromBase(value string, base int) (types.Integer, error)

	// ToBase formats value in base (2..36) using lower-case digits.
	ToBase(value types.Integer, base int) (string, error)

	// ToHexadecimal formats a non-negative value in base 16.
	ToHexadecimal(value types.Integer) (types.Hexadecimal, error)

	// ToInteger parses a hexadecimal value.
	ToInteger(value types.Hexadecimal) (types.Integer, error)
}
