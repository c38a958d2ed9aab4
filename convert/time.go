package convert

import (
	"fmt"

	"github.com/Lzww0608/guuid/v2/calc"
	"github.com/Lzww0608/guuid/v2/types"
	"github.com/Lzww0608/guuid/v2/uuiderr"
)

// ErrTimeOutOfRange indicates a time that cannot be stored in the timestamp
// bits of a UUID.
var ErrTimeOutOfRange = uuiderr.New(uuiderr.ErrInvalidArgument, "time is outside the range a UUID timestamp can hold")

const (
	// gregorianOffset is the number of 100-nanosecond intervals between the
	// Gregorian reform (1582-10-15) and the Unix epoch, 0x01B21DD213814000.
	gregorianOffset = "122192928000000000"

	// 60-bit and 48-bit timestamps as hex digit counts.
	gregorianDigits = 15
	unixDigits      = 12
)

var (
	intervalsPerSecond      = types.MustInteger("10000000")
	intervalsPerMicrosecond = types.MustInteger("10")
	microsPerSecond         = types.MustInteger("1000000")
	millisPerSecond         = types.MustInteger("1000")
	microsPerMilli          = types.MustInteger("1000")
	offset                  = types.MustInteger(gregorianOffset)
)

// TimeConverter converts between wall-clock times and the hexadecimal
// timestamps stored in time-based UUIDs.
type TimeConverter interface {
	CalculateTime(t types.Time) (types.Hexadecimal, error)
	ConvertTime(timestamp types.Hexadecimal) (types.Time, error)
}

// GenericTimeConverter handles 60-bit counts of 100-nanosecond intervals
// since 1582-10-15 00:00:00 UTC, as used by versions 1, 2 and 6.
type GenericTimeConverter struct {
	calculator calc.Calculator
}

// NewGenericTimeConverter returns a Gregorian TimeConverter backed by c.
func NewGenericTimeConverter(c calc.Calculator) *GenericTimeConverter {
	return &GenericTimeConverter{calculator: c}
}

// CalculateTime returns the timestamp as 16 hex digits, the top digit always zero.
func (g *GenericTimeConverter) CalculateTime(t types.Time) (types.Hexadecimal, error) {
	c := g.calculator
	sec := c.Multiply(t.Seconds(), intervalsPerSecond)
	usec := c.Multiply(t.Microseconds(), intervalsPerMicrosecond)
	ticks := c.Add(sec, usec, offset)
	if ticks.IsNegative() {
		return types.Hexadecimal{}, fmt.Errorf("%w: %s.%s precedes the Gregorian epoch", ErrTimeOutOfRange, t.Seconds(), t.Microseconds())
	}

	hex, err := c.ToHexadecimal(ticks)
	if err != nil {
		return types.Hexadecimal{}, err
	}
	if len(hex.String()) > gregorianDigits {
		return types.Hexadecimal{}, fmt.Errorf("%w: %s exceeds 60 bits", ErrTimeOutOfRange, hex)
	}
	return hex.Pad(16), nil
}

func (g *GenericTimeConverter) ConvertTime(timestamp types.Hexadecimal) (types.Time, error) {
	c := g.calculator
	ticks, err := c.ToInteger(timestamp)
	if err != nil {
		return types.Time{}, err
	}
	ticks = c.Subtract(ticks, offset)

	micros, err := c.Divide(calc.RoundHalfUp, 0, ticks, intervalsPerMicrosecond)
	if err != nil {
		return types.Time{}, err
	}
	whole, err := asInteger(micros)
	if err != nil {
		return types.Time{}, err
	}
	return splitMicros(c, whole)
}

// UnixTimeConverter handles 48-bit millisecond Unix timestamps, as used by
// version 7.
type UnixTimeConverter struct {
	calculator calc.Calculator
}

// NewUnixTimeConverter returns a Unix-epoch TimeConverter backed by c.
func NewUnixTimeConverter(c calc.Calculator) *UnixTimeConverter {
	return &UnixTimeConverter{calculator: c}
}

// CalculateTime returns the timestamp as 12 hex digits.
// Microseconds are truncated to stay within the current millisecond.
func (u *UnixTimeConverter) CalculateTime(t types.Time) (types.Hexadecimal, error) {
	c := u.calculator
	sec := c.Multiply(t.Seconds(), millisPerSecond)
	usec, err := c.Divide(calc.RoundDown, 0, t.Microseconds(), microsPerMilli)
	if err != nil {
		return types.Hexadecimal{}, err
	}
	whole, err := asInteger(usec)
	if err != nil {
		return types.Hexadecimal{}, err
	}
	millis := c.Add(sec, whole)
	if millis.IsNegative() {
		return types.Hexadecimal{}, fmt.Errorf("%w: %s.%s precedes the Unix epoch", ErrTimeOutOfRange, t.Seconds(), t.Microseconds())
	}

	hex, err := c.ToHexadecimal(millis)
	if err != nil {
		return types.Hexadecimal{}, err
	}
	if len(hex.String()) > unixDigits {
		return types.Hexadecimal{}, fmt.Errorf("%w: %s exceeds 48 bits", ErrTimeOutOfRange, hex)
	}
	return hex.Pad(unixDigits), nil
}

func (u *UnixTimeConverter) ConvertTime(timestamp types.Hexadecimal) (types.Time, error) {
	c := u.calculator
	millis, err := c.ToInteger(timestamp)
	if err != nil {
		return types.Time{}, err
	}
	return splitMicros(c, c.Multiply(millis, microsPerMilli))
}

// DegradedTimeConverter refuses every conversion with ErrNoCalculator.
type DegradedTimeConverter struct{}

func (DegradedTimeConverter) CalculateTime(types.Time) (types.Hexadecimal, error) {
	return types.Hexadecimal{}, ErrNoCalculator
}

func (DegradedTimeConverter) ConvertTime(types.Hexadecimal) (types.Time, error) {
	return types.Time{}, ErrNoCalculator
}

// splitMicros splits microseconds since the Unix epoch into whole seconds,
// rounded towards negative infinity, and the remaining microseconds.
func splitMicros(c calc.Calculator, micros types.Integer) (types.Time, error) {
	sec, err := c.Divide(calc.RoundFloor, 0, micros, microsPerSecond)
	if err != nil {
		return types.Time{}, err
	}
	seconds, err := asInteger(sec)
	if err != nil {
		return types.Time{}, err
	}
	rest := c.Subtract(micros, c.Multiply(seconds, microsPerSecond))
	return types.NewTime(seconds, rest), nil
}

func asInteger(n types.Number) (types.Integer, error) {
	if i, ok := n.(types.Integer); ok {
		return i, nil
	}
	return types.NewInteger(n.String())
}
