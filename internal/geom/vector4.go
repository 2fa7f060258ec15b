package geom

import (
	"encoding/xml"

	"github.com/lukaszgryglicki/kernel3d/internal/scalar"
)

// Vector4 is a homogeneous coordinate or a generic 4-tuple.
type Vector4 struct {
	X, Y, Z, W Real
}

var (
	Vector4Zero             = Vector4{}
	Vector4One              = Vector4{1, 1, 1, 1}
	Vector4UnitX            = Vector4{1, 0, 0, 0}
	Vector4UnitY            = Vector4{0, 1, 0, 0}
	Vector4UnitZ            = Vector4{0, 0, 1, 0}
	Vector4UnitW            = Vector4{0, 0, 0, 1}
	Vector4NaN              = Vector4{scalar.NaN(), scalar.NaN(), scalar.NaN(), scalar.NaN()}
	Vector4PositiveInfinity = Vector4{scalar.Inf(1), scalar.Inf(1), scalar.Inf(1), scalar.Inf(1)}
	Vector4NegativeInfinity = Vector4{scalar.Inf(-1), scalar.Inf(-1), scalar.Inf(-1), scalar.Inf(-1)}
)

func (a Vector4) Add(b Vector4) Vector4 { return Vector4{a.X + b.X, a.Y + b.Y, a.Z + b.Z, a.W + b.W} }
func (a Vector4) Sub(b Vector4) Vector4 { return Vector4{a.X - b.X, a.Y - b.Y, a.Z - b.Z, a.W - b.W} }
func (a Vector4) Mul(b Vector4) Vector4 { return Vector4{a.X * b.X, a.Y * b.Y, a.Z * b.Z, a.W * b.W} }
func (a Vector4) Div(b Vector4) Vector4 { return Vector4{a.X / b.X, a.Y / b.Y, a.Z / b.Z, a.W / b.W} }
func (a Vector4) Mod(b Vector4) Vector4 {
	return Vector4{scalar.Mod(a.X, b.X), scalar.Mod(a.Y, b.Y), scalar.Mod(a.Z, b.Z), scalar.Mod(a.W, b.W)}
}

func (v Vector4) AddScalar(s Real) Vector4 { return Vector4{v.X + s, v.Y + s, v.Z + s, v.W + s} }
func (v Vector4) SubScalar(s Real) Vector4 { return Vector4{v.X - s, v.Y - s, v.Z - s, v.W - s} }
func (v Vector4) Scale(s Real) Vector4     { return Vector4{v.X * s, v.Y * s, v.Z * s, v.W * s} }
func (v Vector4) DivScalar(s Real) Vector4 { return Vector4{v.X / s, v.Y / s, v.Z / s, v.W / s} }
func (v Vector4) ModScalar(s Real) Vector4 {
	return Vector4{scalar.Mod(v.X, s), scalar.Mod(v.Y, s), scalar.Mod(v.Z, s), scalar.Mod(v.W, s)}
}

func (v Vector4) RSub(s Real) Vector4 { return Vector4{s - v.X, s - v.Y, s - v.Z, s - v.W} }
func (v Vector4) RDiv(s Real) Vector4 { return Vector4{s / v.X, s / v.Y, s / v.Z, s / v.W} }
func (v Vector4) RMod(s Real) Vector4 {
	return Vector4{scalar.Mod(s, v.X), scalar.Mod(s, v.Y), scalar.Mod(s, v.Z), scalar.Mod(s, v.W)}
}

func (v Vector4) Neg() Vector4 { return Vector4{-v.X, -v.Y, -v.Z, -v.W} }

func (v Vector4) apply(f func(Real) Real) Vector4 { return Vector4{f(v.X), f(v.Y), f(v.Z), f(v.W)} }

func (v Vector4) Abs() Vector4      { return v.apply(scalar.Abs) }
func (v Vector4) Floor() Vector4    { return v.apply(scalar.Floor) }
func (v Vector4) Ceiling() Vector4  { return v.apply(scalar.Ceil) }
func (v Vector4) Round() Vector4    { return v.apply(scalar.Round) }
func (v Vector4) Fraction() Vector4 { return v.apply(scalar.Fraction) }
func (v Vector4) Sign() Vector4     { return v.apply(scalar.Sign) }

func (a Vector4) Min(b Vector4) Vector4 {
	return Vector4{min(a.X, b.X), min(a.Y, b.Y), min(a.Z, b.Z), min(a.W, b.W)}
}

func (a Vector4) Max(b Vector4) Vector4 {
	return Vector4{max(a.X, b.X), max(a.Y, b.Y), max(a.Z, b.Z), max(a.W, b.W)}
}

func (v Vector4) Clamp(lo, hi Vector4) Vector4 {
	return Vector4{
		scalar.Clamp(v.X, lo.X, hi.X),
		scalar.Clamp(v.Y, lo.Y, hi.Y),
		scalar.Clamp(v.Z, lo.Z, hi.Z),
		scalar.Clamp(v.W, lo.W, hi.W),
	}
}

func (a Vector4) Dot(b Vector4) Real { return a.X*b.X + a.Y*b.Y + a.Z*b.Z + a.W*b.W }

func (v Vector4) MagnitudeSquared() Real { return v.Dot(v) }
func (v Vector4) Magnitude() Real        { return scalar.Norm(v.X, v.Y, v.Z, v.W) }

func (a Vector4) DistanceSquared(b Vector4) Real { return a.Sub(b).MagnitudeSquared() }
func (a Vector4) Distance(b Vector4) Real        { return a.Sub(b).Magnitude() }

// Normalize returns a unit-length copy, or the zero vector when the
// magnitude is near zero.
func (v Vector4) Normalize() Vector4 {
	l := v.Magnitude()
	if scalar.NearZero(l) {
		return Vector4{}
	}
	return v.DivScalar(l)
}

func (v Vector4) IsNormalized() bool { return scalar.Abs(v.MagnitudeSquared()-1) < scalar.Epsilon }

func (a Vector4) Lerp(b Vector4, amount Real) Vector4 {
	return Vector4{
		scalar.Lerp(a.X, b.X, amount),
		scalar.Lerp(a.Y, b.Y, amount),
		scalar.Lerp(a.Z, b.Z, amount),
		scalar.Lerp(a.W, b.W, amount),
	}
}

func (a Vector4) SmoothStep(b Vector4, amount Real) Vector4 {
	return Vector4{
		scalar.SmoothStep(a.X, b.X, amount),
		scalar.SmoothStep(a.Y, b.Y, amount),
		scalar.SmoothStep(a.Z, b.Z, amount),
		scalar.SmoothStep(a.W, b.W, amount),
	}
}

// Slerp interpolates along the great arc of the 4D hypersphere, falling
// back to Lerp for near-parallel or zero inputs.
func (a Vector4) Slerp(b Vector4, amount Real) Vector4 {
	la, lb := a.Magnitude(), b.Magnitude()
	if scalar.NearZero(la) || scalar.NearZero(lb) {
		return a.Lerp(b, amount)
	}
	theta := scalar.Acos(scalar.Clamp(a.Dot(b)/(la*lb), -1, 1))
	sin := scalar.Sin(theta)
	if scalar.Abs(sin) < scalar.Epsilon {
		return a.Lerp(b, amount)
	}
	return a.Scale(scalar.Sin((1-amount)*theta) / sin).Add(b.Scale(scalar.Sin(amount*theta) / sin))
}

func Vector4Barycentric(v1, v2, v3 Vector4, w2, w3 Real) Vector4 {
	return Vector4{
		scalar.Barycentric(v1.X, v2.X, v3.X, w2, w3),
		scalar.Barycentric(v1.Y, v2.Y, v3.Y, w2, w3),
		scalar.Barycentric(v1.Z, v2.Z, v3.Z, w2, w3),
		scalar.Barycentric(v1.W, v2.W, v3.W, w2, w3),
	}
}

func Vector4Hermite(v1, t1, v2, t2 Vector4, amount Real) Vector4 {
	h1, h2, h3, h4 := scalar.HermiteWeights(amount)
	return v1.Scale(h1).Add(v2.Scale(h2)).Add(t1.Scale(h3)).Add(t2.Scale(h4))
}

func Vector4CatmullRom(v1, v2, v3, v4 Vector4, amount Real) Vector4 {
	return Vector4{
		scalar.CatmullRom(v1.X, v2.X, v3.X, v4.X, amount),
		scalar.CatmullRom(v1.Y, v2.Y, v3.Y, v4.Y, amount),
		scalar.CatmullRom(v1.Z, v2.Z, v3.Z, v4.Z, amount),
		scalar.CatmullRom(v1.W, v2.W, v3.W, v4.W, amount),
	}
}

// Transform returns m * v.
func (v Vector4) Transform(m Matrix4) Vector4 { return m.MulVector4(v) }

// Rotate rotates the xyz part by q and keeps W.
func (v Vector4) Rotate(q Quaternion) Vector4 { return v.Vector3().Rotate(q).Vector4(v.W) }

// Vector3 drops W.
func (v Vector4) Vector3() Vector3 { return Vector3{v.X, v.Y, v.Z} }

// Homogenize divides xyz by W.
func (v Vector4) Homogenize() Vector3 { return Vector3{v.X / v.W, v.Y / v.W, v.Z / v.W} }

func (v Vector4) Components() [4]Real { return [4]Real{v.X, v.Y, v.Z, v.W} }

// Component returns component i; it panics unless 0 <= i < 4.
func (v Vector4) Component(i int) Real {
	switch i {
	case 0:
		return v.X
	case 1:
		return v.Y
	case 2:
		return v.Z
	case 3:
		return v.W
	}
	panic(indexPanic("Vector4 component", i, 4))
}

func (v Vector4) WithComponent(i int, value Real) Vector4 {
	switch i {
	case 0:
		v.X = value
	case 1:
		v.Y = value
	case 2:
		v.Z = value
	case 3:
		v.W = value
	default:
		panic(indexPanic("Vector4 component", i, 4))
	}
	return v
}

func (v Vector4) IsNaN() bool              { return anyNaN(v.X, v.Y, v.Z, v.W) }
func (v Vector4) IsInfinity() bool         { return anyInf(0, v.X, v.Y, v.Z, v.W) }
func (v Vector4) IsPositiveInfinity() bool { return anyInf(1, v.X, v.Y, v.Z, v.W) }
func (v Vector4) IsNegativeInfinity() bool { return anyInf(-1, v.X, v.Y, v.Z, v.W) }

func (a Vector4) Near(b Vector4) bool {
	return scalar.Near(a.X, b.X) && scalar.Near(a.Y, b.Y) && scalar.Near(a.Z, b.Z) && scalar.Near(a.W, b.W)
}

func (v Vector4) Hash() uint64   { return scalar.Hash(v.X, v.Y, v.Z, v.W) }
func (v Vector4) String() string { return scalar.FormatList(v.X, v.Y, v.Z, v.W) }

func buildVector4(c []Real) Vector4 { return Vector4{c[0], c[1], c[2], c[3]} }

// ParseVector4 parses "X Y Z W".
func ParseVector4(s string) (Vector4, error) { return parseValues(s, 4, "vector4", buildVector4) }

func TryParseVector4(s string) (Vector4, bool) {
	v, err := ParseVector4(s)
	return v, err == nil
}

func (v Vector4) MarshalText() ([]byte, error) { return []byte(v.String()), nil }

func (v *Vector4) UnmarshalText(text []byte) error {
	r, err := unmarshalValues(text, 4, "vector4", buildVector4)
	if err != nil {
		return err
	}
	*v = r
	return nil
}

func (v Vector4) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	return marshalXMLValues(e, start, v.X, v.Y, v.Z, v.W)
}

func (v *Vector4) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	r, err := unmarshalXMLValues(d, start, 4, "vector4", buildVector4)
	if err == nil {
		*v = r
	}
	return err
}
