package calc

import (
	"math"
	"strconv"
)

// Number is a numeric value in an expression. It wraps a float64 and
// remembers whether it originated from a decimal literal; all arithmetic
// happens on the float64 view.
type Number struct {
	value   float64
	decimal bool
}

// NewNumber wraps a float64. The value is considered decimal in origin when
// it has a fractional part.
func NewNumber(v float64) Number {
	return Number{value: v, decimal: v != math.Trunc(v)}
}

// NewInt wraps an integer value.
func NewInt(v int64) Number {
	return Number{value: float64(v)}
}

// Float64 returns the value.
func (n Number) Float64() float64 {
	return n.value
}

// Int64 returns the value rounded to the nearest integer, saturating at the
// int64 range.
func (n Number) Int64() int64 {
	v := math.Round(n.value)
	switch {
	case math.IsNaN(v):
		return 0
	case v >= math.MaxInt64:
		return math.MaxInt64
	case v <= math.MinInt64:
		return math.MinInt64
	}
	return int64(v)
}

// IsDecimal reports whether the number came from a decimal literal or a
// computation with a fractional result.
func (n Number) IsDecimal() bool {
	return n.decimal
}

// Neg returns the number with its sign flipped.
func (n Number) Neg() Number {
	return Number{value: -n.value, decimal: n.decimal}
}

// String renders the value as an integer literal when the fractional part is
// exactly zero and as the shortest decimal representation otherwise. Integral
// values beyond the int64 range render through the float formatter, which
// still produces a plain integer literal.
func (n Number) String() string {
	if n.value == math.Trunc(n.value) && math.Abs(n.value) < 1<<63 {
		return strconv.FormatInt(int64(n.value), 10)
	}
	return strconv.FormatFloat(n.value, 'f', -1, 64)
}
