package calc

import "fmt"

// RoundingMode selects how an inexact quotient is rounded.
type RoundingMode int

const (
	// RoundUnnecessary asserts the division is exact; an inexact result is an error.
	RoundUnnecessary RoundingMode = iota
	// RoundUp rounds away from zero.
	RoundUp
	// RoundDown rounds towards zero.
	RoundDown
	// RoundCeiling rounds towards positive infinity.
	RoundCeiling
	// RoundFloor rounds towards negative infinity.
	RoundFloor
	// RoundHalfUp rounds to the nearest neighbor, ties away from zero.
	RoundHalfUp
	// RoundHalfDown rounds to the nearest neighbor, ties towards zero.
	RoundHalfDown
	// RoundHalfCeiling rounds to the nearest neighbor, ties towards positive infinity.
	RoundHalfCeiling
	// RoundHalfFloor rounds to the nearest neighbor, ties towards negative infinity.
	RoundHalfFloor
	// RoundHalfEven rounds to the nearest neighbor, ties to the even neighbor.
	RoundHalfEven
)

var roundingModeNames = [...]string{
	RoundUnnecessary: "unnecessary",
	RoundUp:          "up",
	RoundDown:        "down",
	RoundCeiling:     "ceiling",
	RoundFloor:       "floor",
	RoundHalfUp:      "half-up",
	RoundHalfDown:    "half-down",
	RoundHalfCeiling: "half-ceiling",
	RoundHalfFloor:   "half-floor",
	RoundHalfEven:    "half-even",
}

func (m RoundingMode) String() string {
	if m < 0 || int(m) >= len(roundingModeNames) {
		return fmt.Sprintf("RoundingMode(%d)", int(m))
	}
	return roundingModeNames[m]
}

// increment reports whether a truncated quotient must move one step away
// from zero. sign is the sign of the exact quotient, half compares twice the
// remainder against the divisor (both absolute) and odd tells whether the
// truncated quotient is odd.
func (m RoundingMode) increment(sign, half int, odd bool) (bool, error) {
	switch m {
	case RoundUnnecessary:
		return false, ErrRoundingNecessary
	case RoundUp:
		return true, nil
	case RoundDown:
		return false, nil
	case RoundCeiling:
		return sign > 0, nil
	case RoundFloor:
		return sign < 0, nil
	case RoundHalfUp:
		return half >= 0, nil
	case RoundHalfDown:
		return half > 0, nil
	case RoundHalfCeiling:
		return half > 0 || (half == 0 && sign > 0), nil
	case RoundHalfFloor:
		return half > 0 || (half == 0 && sign < 0), nil
	case RoundHalfEven:
		return half > 0 || (half == 0 && odd), nil
	default:
		return false, fmt.Errorf("%w: %d", ErrInvalidRoundingMode, int(m))
	}
}
