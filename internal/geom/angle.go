package geom

import (
	"encoding/xml"

	"github.com/lukaszgryglicki/kernel3d/internal/scalar"
)

// Angle is a planar angle. Radians is the stored value; degrees are
// always derived from it. Trigonometry goes through Angle so a bare
// scalar can never be mistaken for the wrong unit.
type Angle struct {
	Radians Real
}

var (
	AngleZero     = Angle{}
	AngleRight    = Angle{scalar.HalfPi}
	AngleStraight = Angle{scalar.Pi}
	AngleFull     = Angle{scalar.TwoPi}
)

// Radians returns an angle of r radians.
func Radians(r Real) Angle { return Angle{r} }

// Degrees returns an angle of d degrees.
func Degrees(d Real) Angle { return Angle{d * scalar.DegRad} }

// Revolutions returns an angle of n full turns.
func Revolutions(n Real) Angle { return Angle{n * scalar.TwoPi} }

// Degrees returns the angle in degrees.
func (a Angle) Degrees() Real { return a.Radians * scalar.RadDeg }

// Revolutions returns the angle in full turns.
func (a Angle) Revolutions() Real { return a.Radians / scalar.TwoPi }

func (a Angle) Add(b Angle) Angle  { return Angle{a.Radians + b.Radians} }
func (a Angle) Sub(b Angle) Angle  { return Angle{a.Radians - b.Radians} }
func (a Angle) Mul(s Real) Angle   { return Angle{a.Radians * s} }
func (a Angle) Div(s Real) Angle   { return Angle{a.Radians / s} }
func (a Angle) Mod(b Angle) Angle  { return Angle{scalar.Mod(a.Radians, b.Radians)} }
func (a Angle) Neg() Angle         { return Angle{-a.Radians} }
func (a Angle) Abs() Angle         { return Angle{scalar.Abs(a.Radians)} }
func (a Angle) Ratio(b Angle) Real { return a.Radians / b.Radians }
func (a Angle) Less(b Angle) bool  { return a.Radians < b.Radians }

func (a Angle) Min(b Angle) Angle { return Angle{min(a.Radians, b.Radians)} }
func (a Angle) Max(b Angle) Angle { return Angle{max(a.Radians, b.Radians)} }

// Clamp limits a to [lo, hi].
func (a Angle) Clamp(lo, hi Angle) Angle {
	return Angle{scalar.Clamp(a.Radians, lo.Radians, hi.Radians)}
}

// Lerp blends a toward b; amount is not clamped.
func (a Angle) Lerp(b Angle, amount Real) Angle {
	return Angle{scalar.Lerp(a.Radians, b.Radians, amount)}
}

// Wrap returns the equivalent angle in (-π, π].
func (a Angle) Wrap() Angle {
	r := scalar.Mod(a.Radians+scalar.Pi, scalar.TwoPi)
	if r <= 0 {
		r += scalar.TwoPi
	}
	return Angle{r - scalar.Pi}
}

func (a Angle) Sin() Real { return scalar.Sin(a.Radians) }
func (a Angle) Cos() Real { return scalar.Cos(a.Radians) }
func (a Angle) Tan() Real { return scalar.Tan(a.Radians) }

// SinCos returns the sine and cosine of a.
func (a Angle) SinCos() (sin, cos Real) { return a.Sin(), a.Cos() }

func Asin(x Real) Angle     { return Angle{scalar.Asin(x)} }
func Acos(x Real) Angle     { return Angle{scalar.Acos(x)} }
func Atan(x Real) Angle     { return Angle{scalar.Atan(x)} }
func Atan2(y, x Real) Angle { return Angle{scalar.Atan2(y, x)} }

func (a Angle) Near(b Angle) bool { return scalar.Near(a.Radians, b.Radians) }
func (a Angle) IsNaN() bool       { return scalar.IsNaN(a.Radians) }
func (a Angle) Hash() uint64      { return scalar.Hash(a.Radians) }

// String formats the angle as its radian value.
func (a Angle) String() string { return scalar.FormatReal(a.Radians) }

func buildAngle(c []Real) Angle { return Angle{c[0]} }

// ParseAngle parses a single radian value.
func ParseAngle(s string) (Angle, error) { return parseValues(s, 1, "angle", buildAngle) }

// TryParseAngle is ParseAngle reporting failure as false.
func TryParseAngle(s string) (Angle, bool) {
	a, err := ParseAngle(s)
	return a, err == nil
}

func (a Angle) MarshalText() ([]byte, error) { return []byte(a.String()), nil }

func (a *Angle) UnmarshalText(text []byte) error {
	v, err := unmarshalValues(text, 1, "angle", buildAngle)
	if err != nil {
		return err
	}
	*a = v
	return nil
}

func (a Angle) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	return marshalXMLValues(e, start, a.Radians)
}

func (a *Angle) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	v, err := unmarshalXMLValues(d, start, 1, "angle", buildAngle)
	if err == nil {
		*a = v
	}
	return err
}
