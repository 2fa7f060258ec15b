//go:build !float32

package scalar

import "math"

// Real is the scalar every kernel type is built from.
// Build with -tags float32 for single precision.
type Real = float64

// BitSize is the width of Real, as strconv expects it.
const BitSize = 64

const (
	MaxValue        Real = math.MaxFloat64
	SmallestNonzero Real = math.SmallestNonzeroFloat64
)

func Sqrt(x Real) Real         { return math.Sqrt(x) }
func Sin(x Real) Real          { return math.Sin(x) }
func Cos(x Real) Real          { return math.Cos(x) }
func Tan(x Real) Real          { return math.Tan(x) }
func Asin(x Real) Real         { return math.Asin(x) }
func Acos(x Real) Real         { return math.Acos(x) }
func Atan(x Real) Real         { return math.Atan(x) }
func Atan2(y, x Real) Real     { return math.Atan2(y, x) }
func Abs(x Real) Real          { return math.Abs(x) }
func Floor(x Real) Real        { return math.Floor(x) }
func Ceil(x Real) Real         { return math.Ceil(x) }
func Round(x Real) Real        { return math.Round(x) }
func Trunc(x Real) Real        { return math.Trunc(x) }
func Mod(x, y Real) Real       { return math.Mod(x, y) }
func Pow(x, y Real) Real       { return math.Pow(x, y) }
func Exp(x Real) Real          { return math.Exp(x) }
func Log(x Real) Real          { return math.Log(x) }
func Hypot(x, y Real) Real     { return math.Hypot(x, y) }
func IsNaN(x Real) bool        { return math.IsNaN(x) }
func IsInf(x Real, s int) bool { return math.IsInf(x, s) }
func Inf(sign int) Real        { return math.Inf(sign) }
func NaN() Real                { return math.NaN() }

// ordered maps the bit pattern of x onto a signed integer line where
// adjacent floats are adjacent integers and -0 meets +0.
func ordered(x Real) int64 {
	i := int64(math.Float64bits(x))
	if i < 0 {
		i = math.MinInt64 - i
	}
	return i
}

// Bits returns the raw bit pattern of x widened to 64 bits.
func Bits(x Real) uint64 { return math.Float64bits(x) }
