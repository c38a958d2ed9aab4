package calc

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/Lzww0608/guuid/v2/types"
)

var bigTen = big.NewInt(10)

// BigCalculator is a Calculator backed by math/big.
type BigCalculator struct{}

// NewBigCalculator returns the math/big backed Calculator.
func NewBigCalculator() *BigCalculator {
	return &BigCalculator{}
}

var _ Calculator = (*BigCalculator)(nil)

func (c *BigCalculator) Add(augend types.Integer, addends ...types.Integer) types.Integer {
	sum := toBig(augend)
	for _, a := range addends {
		sum.Add(sum, toBig(a))
	}
	return fromBig(sum)
}

func (c *BigCalculator) Subtract(minuend types.Integer, subtrahends ...types.Integer) types.Integer {
	diff := toBig(minuend)
	for _, s := range subtrahends {
		diff.Sub(diff, toBig(s))
	}
	return fromBig(diff)
}

func (c *BigCalculator) Multiply(multiplicand types.Integer, multipliers ...types.Integer) types.Integer {
	product := toBig(multiplicand)
	for _, m := range multipliers {
		product.Mul(product, toBig(m))
	}
	return fromBig(product)
}

func (c *BigCalculator) Divide(mode RoundingMode, scale int, dividend types.Integer, divisors ...types.Integer) (types.Number, error) {
	if scale < 0 {
		return nil, fmt.Errorf("%w: negative scale %d", ErrInvalidNumber, scale)
	}

	// The quotient is tracked as an unscaled integer: value = unscaled / 10^scale.
	unscaled := toBig(dividend)
	unscaled.Mul(unscaled, new(big.Int).Exp(bigTen, big.NewInt(int64(scale)), nil))

	for _, d := range divisors {
		divisor := toBig(d)
		if divisor.Sign() == 0 {
			return nil, ErrDivisionByZero
		}
		q, err := divideRounded(unscaled, divisor, mode)
		if err != nil {
			return nil, err
		}
		unscaled = q
	}

	if scale == 0 {
		return fromBig(unscaled), nil
	}
	return formatDecimal(unscaled, scale)
}

func (c *BigCalculator) FromBase(value string, base int) (types.Integer, error) {
	if base < 2 || base > 36 {
		return types.Integer{}, fmt.Errorf("%w: %d", ErrInvalidBase, base)
	}
	// SetString with an explicit base rejects prefixes and underscores,
	// which is the strictness wanted here.
	n, ok := new(big.Int).SetString(value, base)
	if !ok {
		return types.Integer{}, fmt.Errorf("%w: %q in base %d", ErrInvalidNumber, value, base)
	}
	return fromBig(n), nil
}

func (c *BigCalculator) ToBase(value types.Integer, base int) (string, error) {
	if base < 2 || base > 36 {
		return "", fmt.Errorf("%w: %d", ErrInvalidBase, base)
	}
	return toBig(value).Text(base), nil
}

func (c *BigCalculator) ToHexadecimal(value types.Integer) (types.Hexadecimal, error) {
	if value.IsNegative() {
		return types.Hexadecimal{}, fmt.Errorf("%w: %s is negative", types.ErrInvalidHexadecimal, value)
	}
	s, err := c.ToBase(value, 16)
	if err != nil {
		return types.Hexadecimal{}, err
	}
	return types.NewHexadecimal(s)
}

func (c *BigCalculator) ToInteger(value types.Hexadecimal) (types.Integer, error) {
	return c.FromBase(value.String(), 16)
}

// divideRounded returns n / d rounded with mode.
func divideRounded(n, d *big.Int, mode RoundingMode) (*big.Int, error) {
	q, r := new(big.Int).QuoRem(n, d, new(big.Int))
	if r.Sign() == 0 {
		return q, nil
	}

	sign := n.Sign() * d.Sign()
	twiceRem := new(big.Int).Abs(r)
	twiceRem.Lsh(twiceRem, 1)
	half := twiceRem.Cmp(new(big.Int).Abs(d))

	inc, err := mode.increment(sign, half, q.Bit(0) == 1)
	if err != nil {
		return nil, err
	}
	if inc {
		q.Add(q, big.NewInt(int64(sign)))
	}
	return q, nil
}

func formatDecimal(unscaled *big.Int, scale int) (types.Decimal, error) {
	digits := new(big.Int).Abs(unscaled).String()
	if len(digits) <= scale {
		digits = strings.Repeat("0", scale-len(digits)+1) + digits
	}
	s := digits[:len(digits)-scale] + "." + digits[len(digits)-scale:]
	if unscaled.Sign() < 0 {
		s = "-" + s
	}
	return types.NewDecimal(s)
}

func toBig(i types.Integer) *big.Int {
	// types.Integer only ever holds a validated decimal string.
	n, _ := new(big.Int).SetString(i.String(), 10)
	return n
}

func fromBig(n *big.Int) types.Integer {
	return types.MustInteger(n.String())
}
