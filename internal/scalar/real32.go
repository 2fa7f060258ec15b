//go:build float32

package scalar

import (
	"math"

	"github.com/chewxy/math32"
)

// Real is the scalar every kernel type is built from.
// This file is selected by -tags float32.
type Real = float32

// BitSize is the width of Real, as strconv expects it.
const BitSize = 32

const (
	MaxValue        Real = math.MaxFloat32
	SmallestNonzero Real = math.SmallestNonzeroFloat32
)

func Sqrt(x Real) Real         { return math32.Sqrt(x) }
func Sin(x Real) Real          { return math32.Sin(x) }
func Cos(x Real) Real          { return math32.Cos(x) }
func Tan(x Real) Real          { return math32.Tan(x) }
func Asin(x Real) Real         { return math32.Asin(x) }
func Acos(x Real) Real         { return math32.Acos(x) }
func Atan(x Real) Real         { return math32.Atan(x) }
func Atan2(y, x Real) Real     { return math32.Atan2(y, x) }
func Abs(x Real) Real          { return math32.Abs(x) }
func Floor(x Real) Real        { return math32.Floor(x) }
func Ceil(x Real) Real         { return math32.Ceil(x) }
func Round(x Real) Real        { return Real(math.Round(float64(x))) }
func Trunc(x Real) Real        { return math32.Trunc(x) }
func Mod(x, y Real) Real       { return math32.Mod(x, y) }
func Pow(x, y Real) Real       { return math32.Pow(x, y) }
func Exp(x Real) Real          { return math32.Exp(x) }
func Log(x Real) Real          { return math32.Log(x) }
func Hypot(x, y Real) Real     { return math32.Hypot(x, y) }
func IsNaN(x Real) bool        { return math32.IsNaN(x) }
func IsInf(x Real, s int) bool { return math32.IsInf(x, s) }
func Inf(sign int) Real        { return math32.Inf(sign) }
func NaN() Real                { return math32.NaN() }

// ordered maps the bit pattern of x onto a signed integer line where
// adjacent floats are adjacent integers and -0 meets +0.
func ordered(x Real) int64 {
	i := int32(math.Float32bits(x))
	if i < 0 {
		i = math.MinInt32 - i
	}
	return int64(i)
}

// Bits returns the raw bit pattern of x widened to 64 bits.
func Bits(x Real) uint64 { return uint64(math.Float32bits(x)) }
