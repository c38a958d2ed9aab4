// Package convert turns UUID hexadecimal values into integers and UUID
// timestamps into wall-clock times, delegating all arithmetic to a
// calc.Calculator.
package convert

import (
	"github.com/Lzww0608/guuid/v2/calc"
	"github.com/Lzww0608/guuid/v2/types"
	"github.com/Lzww0608/guuid/v2/uuiderr"
)

// ErrNoCalculator is returned by the degraded converters, which exist for
// hosts where no big-integer backend is configured.
var ErrNoCalculator = uuiderr.New(uuiderr.ErrUnsatisfiedDependency, "a big-integer calculator is required for this operation")

// NumberConverter converts between hexadecimal and decimal integers.
type NumberConverter interface {
	FromHex(hex types.Hexadecimal) (types.Integer, error)
	ToHex(number types.Integer) (types.Hexadecimal, error)
}

// GenericNumberConverter converts numbers with a Calculator.
type GenericNumberConverter struct {
	calculator calc.Calculator
}

// NewNumberConverter returns a NumberConverter backed by c.
func NewNumberConverter(c calc.Calculator) *GenericNumberConverter {
	return &GenericNumberConverter{calculator: c}
}

func (n *GenericNumberConverter) FromHex(hex types.Hexadecimal) (types.Integer, error) {
	return n.calculator.ToInteger(hex)
}

func (n *GenericNumberConverter) ToHex(number types.Integer) (types.Hexadecimal, error) {
	return n.calculator.ToHexadecimal(number)
}

// DegradedNumberConverter refuses every conversion with ErrNoCalculator.
type DegradedNumberConverter struct{}

func (DegradedNumberConverter) FromHex(types.Hexadecimal) (types.Integer, error) {
	return types.Integer{}, ErrNoCalculator
}

func (DegradedNumberConverter) ToHex(types.Integer) (types.Hexadecimal, error) {
	return types.Hexadecimal{}, ErrNoCalculator
}
