package geom

import (
	"encoding/xml"

	"github.com/lukaszgryglicki/kernel3d/internal/scalar"
)

// Vector2 is a point or direction in the plane.
type Vector2 struct {
	X, Y Real
}

var (
	Vector2Zero             = Vector2{}
	Vector2One              = Vector2{1, 1}
	Vector2UnitX            = Vector2{1, 0}
	Vector2UnitY            = Vector2{0, 1}
	Vector2NaN              = Vector2{scalar.NaN(), scalar.NaN()}
	Vector2PositiveInfinity = Vector2{scalar.Inf(1), scalar.Inf(1)}
	Vector2NegativeInfinity = Vector2{scalar.Inf(-1), scalar.Inf(-1)}
)

func (a Vector2) Add(b Vector2) Vector2 { return Vector2{a.X + b.X, a.Y + b.Y} }
func (a Vector2) Sub(b Vector2) Vector2 { return Vector2{a.X - b.X, a.Y - b.Y} }
func (a Vector2) Mul(b Vector2) Vector2 { return Vector2{a.X * b.X, a.Y * b.Y} }
func (a Vector2) Div(b Vector2) Vector2 { return Vector2{a.X / b.X, a.Y / b.Y} }
func (a Vector2) Mod(b Vector2) Vector2 { return Vector2{scalar.Mod(a.X, b.X), scalar.Mod(a.Y, b.Y)} }

func (v Vector2) AddScalar(s Real) Vector2 { return Vector2{v.X + s, v.Y + s} }
func (v Vector2) SubScalar(s Real) Vector2 { return Vector2{v.X - s, v.Y - s} }
func (v Vector2) Scale(s Real) Vector2     { return Vector2{v.X * s, v.Y * s} }
func (v Vector2) DivScalar(s Real) Vector2 { return Vector2{v.X / s, v.Y / s} }
func (v Vector2) ModScalar(s Real) Vector2 { return Vector2{scalar.Mod(v.X, s), scalar.Mod(v.Y, s)} }

func (v Vector2) RSub(s Real) Vector2 { return Vector2{s - v.X, s - v.Y} }
func (v Vector2) RDiv(s Real) Vector2 { return Vector2{s / v.X, s / v.Y} }
func (v Vector2) RMod(s Real) Vector2 { return Vector2{scalar.Mod(s, v.X), scalar.Mod(s, v.Y)} }

func (v Vector2) Neg() Vector2 { return Vector2{-v.X, -v.Y} }

func (v Vector2) apply(f func(Real) Real) Vector2 { return Vector2{f(v.X), f(v.Y)} }

func (v Vector2) Abs() Vector2      { return v.apply(scalar.Abs) }
func (v Vector2) Floor() Vector2    { return v.apply(scalar.Floor) }
func (v Vector2) Ceiling() Vector2  { return v.apply(scalar.Ceil) }
func (v Vector2) Round() Vector2    { return v.apply(scalar.Round) }
func (v Vector2) Fraction() Vector2 { return v.apply(scalar.Fraction) }
func (v Vector2) Sign() Vector2     { return v.apply(scalar.Sign) }

func (a Vector2) Min(b Vector2) Vector2 { return Vector2{min(a.X, b.X), min(a.Y, b.Y)} }
func (a Vector2) Max(b Vector2) Vector2 { return Vector2{max(a.X, b.X), max(a.Y, b.Y)} }

func (v Vector2) Clamp(lo, hi Vector2) Vector2 {
	return Vector2{scalar.Clamp(v.X, lo.X, hi.X), scalar.Clamp(v.Y, lo.Y, hi.Y)}
}

func (a Vector2) Dot(b Vector2) Real { return a.X*b.X + a.Y*b.Y }

// Cross returns the Z component of the 3D cross product of (a, 0) and (b, 0).
func (a Vector2) Cross(b Vector2) Real { return a.X*b.Y - a.Y*b.X }

// Perpendicular returns v rotated a quarter turn counterclockwise.
func (v Vector2) Perpendicular() Vector2 { return Vector2{-v.Y, v.X} }

func (v Vector2) MagnitudeSquared() Real { return v.Dot(v) }
func (v Vector2) Magnitude() Real        { return scalar.Norm(v.X, v.Y) }

func (a Vector2) DistanceSquared(b Vector2) Real { return a.Sub(b).MagnitudeSquared() }
func (a Vector2) Distance(b Vector2) Real        { return a.Sub(b).Magnitude() }

// Normalize returns a unit-length copy, or the zero vector when the
// magnitude is near zero.
func (v Vector2) Normalize() Vector2 {
	l := v.Magnitude()
	if scalar.NearZero(l) {
		return Vector2{}
	}
	return Vector2{v.X / l, v.Y / l}
}

func (v Vector2) IsNormalized() bool { return scalar.Abs(v.MagnitudeSquared()-1) < scalar.Epsilon }

// Rotate turns v counterclockwise by angle.
func (v Vector2) Rotate(angle Angle) Vector2 {
	sin, cos := angle.SinCos()
	return Vector2{v.X*cos - v.Y*sin, v.X*sin + v.Y*cos}
}

// AngleBetween returns the signed counterclockwise angle from a to b.
func (a Vector2) AngleBetween(b Vector2) Angle { return Atan2(a.Cross(b), a.Dot(b)) }

func (v Vector2) Reflect(normal Vector2) Vector2 { return v.Sub(normal.Scale(2 * v.Dot(normal))) }

func (a Vector2) Lerp(b Vector2, amount Real) Vector2 {
	return Vector2{scalar.Lerp(a.X, b.X, amount), scalar.Lerp(a.Y, b.Y, amount)}
}

func (a Vector2) SmoothStep(b Vector2, amount Real) Vector2 {
	return Vector2{scalar.SmoothStep(a.X, b.X, amount), scalar.SmoothStep(a.Y, b.Y, amount)}
}

// Slerp interpolates along the arc between a and b.
func (a Vector2) Slerp(b Vector2, amount Real) Vector2 {
	return a.Vector3(0).Slerp(b.Vector3(0), amount).Vector2()
}

func Vector2Barycentric(v1, v2, v3 Vector2, w2, w3 Real) Vector2 {
	return Vector2{
		scalar.Barycentric(v1.X, v2.X, v3.X, w2, w3),
		scalar.Barycentric(v1.Y, v2.Y, v3.Y, w2, w3),
	}
}

func Vector2Hermite(v1, t1, v2, t2 Vector2, amount Real) Vector2 {
	h1, h2, h3, h4 := scalar.HermiteWeights(amount)
	return v1.Scale(h1).Add(v2.Scale(h2)).Add(t1.Scale(h3)).Add(t2.Scale(h4))
}

func Vector2CatmullRom(v1, v2, v3, v4 Vector2, amount Real) Vector2 {
	return Vector2{
		scalar.CatmullRom(v1.X, v2.X, v3.X, v4.X, amount),
		scalar.CatmullRom(v1.Y, v2.Y, v3.Y, v4.Y, amount),
	}
}

// TransformCoordinate transforms v as a point in the z=0 plane.
func (v Vector2) TransformCoordinate(m Matrix4) Vector2 {
	return v.Vector3(0).TransformCoordinate(m).Vector2()
}

// TransformNormal transforms v as a direction in the z=0 plane.
func (v Vector2) TransformNormal(m Matrix4) Vector2 {
	return v.Vector3(0).TransformNormal(m).Vector2()
}

// Vector3 widens v with the given z.
func (v Vector2) Vector3(z Real) Vector3 { return Vector3{v.X, v.Y, z} }

func (v Vector2) Components() [2]Real { return [2]Real{v.X, v.Y} }

// Component returns component i; it panics unless 0 <= i < 2.
func (v Vector2) Component(i int) Real {
	switch i {
	case 0:
		return v.X
	case 1:
		return v.Y
	}
	panic(indexPanic("Vector2 component", i, 2))
}

func (v Vector2) WithComponent(i int, value Real) Vector2 {
	switch i {
	case 0:
		v.X = value
	case 1:
		v.Y = value
	default:
		panic(indexPanic("Vector2 component", i, 2))
	}
	return v
}

func (v Vector2) IsNaN() bool              { return anyNaN(v.X, v.Y) }
func (v Vector2) IsInfinity() bool         { return anyInf(0, v.X, v.Y) }
func (v Vector2) IsPositiveInfinity() bool { return anyInf(1, v.X, v.Y) }
func (v Vector2) IsNegativeInfinity() bool { return anyInf(-1, v.X, v.Y) }

func (a Vector2) Near(b Vector2) bool { return scalar.Near(a.X, b.X) && scalar.Near(a.Y, b.Y) }
func (v Vector2) Hash() uint64        { return scalar.Hash(v.X, v.Y) }
func (v Vector2) String() string      { return scalar.FormatList(v.X, v.Y) }

func buildVector2(c []Real) Vector2 { return Vector2{c[0], c[1]} }

// ParseVector2 parses "X Y".
func ParseVector2(s string) (Vector2, error) { return parseValues(s, 2, "vector2", buildVector2) }

func TryParseVector2(s string) (Vector2, bool) {
	v, err := ParseVector2(s)
	return v, err == nil
}

func (v Vector2) MarshalText() ([]byte, error) { return []byte(v.String()), nil }

func (v *Vector2) UnmarshalText(text []byte) error {
	r, err := unmarshalValues(text, 2, "vector2", buildVector2)
	if err != nil {
		return err
	}
	*v = r
	return nil
}

func (v Vector2) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	return marshalXMLValues(e, start, v.X, v.Y)
}

func (v *Vector2) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	r, err := unmarshalXMLValues(d, start, 2, "vector2", buildVector2)
	if err == nil {
		*v = r
	}
	return err
}
