package geom

import (
	"encoding/xml"

	"github.com/lukaszgryglicki/kernel3d/internal/scalar"
)

// Vector3 is a point or direction in 3D space.
type Vector3 struct {
	X, Y, Z Real
}

var (
	Vector3Zero             = Vector3{}
	Vector3One              = Vector3{1, 1, 1}
	Vector3UnitX            = Vector3{1, 0, 0}
	Vector3UnitY            = Vector3{0, 1, 0}
	Vector3UnitZ            = Vector3{0, 0, 1}
	Vector3NaN              = Vector3{scalar.NaN(), scalar.NaN(), scalar.NaN()}
	Vector3PositiveInfinity = Vector3{scalar.Inf(1), scalar.Inf(1), scalar.Inf(1)}
	Vector3NegativeInfinity = Vector3{scalar.Inf(-1), scalar.Inf(-1), scalar.Inf(-1)}
)

// Splat3 returns a vector with every component set to s.
func Splat3(s Real) Vector3 { return Vector3{s, s, s} }

// Componentwise arithmetic.
func (a Vector3) Add(b Vector3) Vector3 { return Vector3{a.X + b.X, a.Y + b.Y, a.Z + b.Z} }
func (a Vector3) Sub(b Vector3) Vector3 { return Vector3{a.X - b.X, a.Y - b.Y, a.Z - b.Z} }
func (a Vector3) Mul(b Vector3) Vector3 { return Vector3{a.X * b.X, a.Y * b.Y, a.Z * b.Z} }
func (a Vector3) Div(b Vector3) Vector3 { return Vector3{a.X / b.X, a.Y / b.Y, a.Z / b.Z} }
func (a Vector3) Mod(b Vector3) Vector3 {
	return Vector3{scalar.Mod(a.X, b.X), scalar.Mod(a.Y, b.Y), scalar.Mod(a.Z, b.Z)}
}

// Scalar on the right.
func (v Vector3) AddScalar(s Real) Vector3 { return Vector3{v.X + s, v.Y + s, v.Z + s} }
func (v Vector3) SubScalar(s Real) Vector3 { return Vector3{v.X - s, v.Y - s, v.Z - s} }
func (v Vector3) Scale(s Real) Vector3     { return Vector3{v.X * s, v.Y * s, v.Z * s} }
func (v Vector3) DivScalar(s Real) Vector3 { return Vector3{v.X / s, v.Y / s, v.Z / s} }
func (v Vector3) ModScalar(s Real) Vector3 {
	return Vector3{scalar.Mod(v.X, s), scalar.Mod(v.Y, s), scalar.Mod(v.Z, s)}
}

// Scalar on the left: s-v, s/v and s mod v, componentwise.
func (v Vector3) RSub(s Real) Vector3 { return Vector3{s - v.X, s - v.Y, s - v.Z} }
func (v Vector3) RDiv(s Real) Vector3 { return Vector3{s / v.X, s / v.Y, s / v.Z} }
func (v Vector3) RMod(s Real) Vector3 {
	return Vector3{scalar.Mod(s, v.X), scalar.Mod(s, v.Y), scalar.Mod(s, v.Z)}
}

func (v Vector3) Neg() Vector3 { return Vector3{-v.X, -v.Y, -v.Z} }

func (v Vector3) apply(f func(Real) Real) Vector3 { return Vector3{f(v.X), f(v.Y), f(v.Z)} }

func (v Vector3) Abs() Vector3      { return v.apply(scalar.Abs) }
func (v Vector3) Floor() Vector3    { return v.apply(scalar.Floor) }
func (v Vector3) Ceiling() Vector3  { return v.apply(scalar.Ceil) }
func (v Vector3) Round() Vector3    { return v.apply(scalar.Round) }
func (v Vector3) Fraction() Vector3 { return v.apply(scalar.Fraction) }
func (v Vector3) Sign() Vector3     { return v.apply(scalar.Sign) }

func (a Vector3) Min(b Vector3) Vector3 { return Vector3{min(a.X, b.X), min(a.Y, b.Y), min(a.Z, b.Z)} }
func (a Vector3) Max(b Vector3) Vector3 { return Vector3{max(a.X, b.X), max(a.Y, b.Y), max(a.Z, b.Z)} }

// Clamp limits each component to the matching components of lo and hi.
func (v Vector3) Clamp(lo, hi Vector3) Vector3 {
	return Vector3{
		scalar.Clamp(v.X, lo.X, hi.X),
		scalar.Clamp(v.Y, lo.Y, hi.Y),
		scalar.Clamp(v.Z, lo.Z, hi.Z),
	}
}

// MinComponent and MaxComponent return the smallest and largest component.
func (v Vector3) MinComponent() Real { return min(v.X, v.Y, v.Z) }
func (v Vector3) MaxComponent() Real { return max(v.X, v.Y, v.Z) }

// Dot returns the dot product.
func (a Vector3) Dot(b Vector3) Real { return a.X*b.X + a.Y*b.Y + a.Z*b.Z }

// Cross returns the right-handed cross product a × b.
func (a Vector3) Cross(b Vector3) Vector3 {
	return Vector3{
		a.Y*b.Z - a.Z*b.Y,
		a.Z*b.X - a.X*b.Z,
		a.X*b.Y - a.Y*b.X,
	}
}

func (v Vector3) MagnitudeSquared() Real { return v.Dot(v) }
func (v Vector3) Magnitude() Real        { return scalar.Norm(v.X, v.Y, v.Z) }

func (a Vector3) DistanceSquared(b Vector3) Real { return a.Sub(b).MagnitudeSquared() }
func (a Vector3) Distance(b Vector3) Real        { return a.Sub(b).Magnitude() }

// Normalize returns a unit-length copy, or the zero vector when the
// magnitude is near zero.
func (v Vector3) Normalize() Vector3 {
	l := v.Magnitude()
	if scalar.NearZero(l) {
		return Vector3{}
	}
	return Vector3{v.X / l, v.Y / l, v.Z / l}
}

// IsNormalized reports whether the magnitude is within tolerance of 1.
func (v Vector3) IsNormalized() bool {
	return scalar.Abs(v.MagnitudeSquared()-1) < scalar.Epsilon
}

// IsZero reports whether every component is near zero.
func (v Vector3) IsZero() bool {
	return scalar.NearZero(v.X) && scalar.NearZero(v.Y) && scalar.NearZero(v.Z)
}

// Lerp blends a toward b; amount is not clamped.
func (a Vector3) Lerp(b Vector3, amount Real) Vector3 {
	return Vector3{
		scalar.Lerp(a.X, b.X, amount),
		scalar.Lerp(a.Y, b.Y, amount),
		scalar.Lerp(a.Z, b.Z, amount),
	}
}

// SmoothStep blends with a cubic ease; amount is clamped to [0, 1].
func (a Vector3) SmoothStep(b Vector3, amount Real) Vector3 {
	return Vector3{
		scalar.SmoothStep(a.X, b.X, amount),
		scalar.SmoothStep(a.Y, b.Y, amount),
		scalar.SmoothStep(a.Z, b.Z, amount),
	}
}

// Slerp interpolates along the arc between a and b, falling back to Lerp
// when they are parallel or either is zero.
func (a Vector3) Slerp(b Vector3, amount Real) Vector3 {
	la, lb := a.Magnitude(), b.Magnitude()
	if scalar.NearZero(la) || scalar.NearZero(lb) {
		return a.Lerp(b, amount)
	}
	cos := scalar.Clamp(a.Dot(b)/(la*lb), -1, 1)
	theta := scalar.Acos(cos)
	sin := scalar.Sin(theta)
	if scalar.Abs(sin) < scalar.Epsilon {
		return a.Lerp(b, amount)
	}
	wa := scalar.Sin((1-amount)*theta) / sin
	wb := scalar.Sin(amount*theta) / sin
	return a.Scale(wa).Add(b.Scale(wb))
}

// Vector3Barycentric returns v1 + w2*(v2-v1) + w3*(v3-v1).
func Vector3Barycentric(v1, v2, v3 Vector3, w2, w3 Real) Vector3 {
	return Vector3{
		scalar.Barycentric(v1.X, v2.X, v3.X, w2, w3),
		scalar.Barycentric(v1.Y, v2.Y, v3.Y, w2, w3),
		scalar.Barycentric(v1.Z, v2.Z, v3.Z, w2, w3),
	}
}

// Vector3Hermite interpolates from v1 to v2 with tangents t1 and t2.
func Vector3Hermite(v1, t1, v2, t2 Vector3, amount Real) Vector3 {
	h1, h2, h3, h4 := scalar.HermiteWeights(amount)
	return v1.Scale(h1).Add(v2.Scale(h2)).Add(t1.Scale(h3)).Add(t2.Scale(h4))
}

// Vector3CatmullRom interpolates between v2 and v3 using v1 and v4 as neighbours.
func Vector3CatmullRom(v1, v2, v3, v4 Vector3, amount Real) Vector3 {
	return Vector3{
		scalar.CatmullRom(v1.X, v2.X, v3.X, v4.X, amount),
		scalar.CatmullRom(v1.Y, v2.Y, v3.Y, v4.Y, amount),
		scalar.CatmullRom(v1.Z, v2.Z, v3.Z, v4.Z, amount),
	}
}

// Reflect mirrors v about a unit normal.
func (v Vector3) Reflect(normal Vector3) Vector3 {
	return v.Sub(normal.Scale(2 * v.Dot(normal)))
}

// Refract bends unit direction v through a surface with unit outward
// normal, where eta is n1/n2 for the side v travels from. It reports false
// on total internal reflection.
func (v Vector3) Refract(normal Vector3, eta Real) (Vector3, bool) {
	n := normal
	cosi := v.Dot(normal)
	if cosi > 0 {
		n = normal.Neg()
	} else {
		cosi = -cosi
	}
	cosi = scalar.Saturate(cosi)
	k := 1 - eta*eta*(1-cosi*cosi)
	if k < 0 {
		return Vector3{}, false
	}
	return v.Scale(eta).Add(n.Scale(eta*cosi - scalar.Sqrt(k))), true
}

// AngleBetween returns the unsigned angle between a and b, zero if either
// is a zero vector.
func (a Vector3) AngleBetween(b Vector3) Angle {
	l := a.Magnitude() * b.Magnitude()
	if scalar.NearZero(l) {
		return AngleZero
	}
	return Acos(scalar.Clamp(a.Dot(b)/l, -1, 1))
}

// Rotate applies the rotation of unit quaternion q.
func (v Vector3) Rotate(q Quaternion) Vector3 {
	u := Vector3{q.X, q.Y, q.Z}
	t := u.Cross(v).Scale(2)
	return v.Add(t.Scale(q.W)).Add(u.Cross(t))
}

// RotateAxis rotates v by angle about axis (right-handed). A zero axis
// leaves v unchanged.
func (v Vector3) RotateAxis(angle Angle, axis Vector3) Vector3 {
	k := axis.Normalize()
	if k == (Vector3{}) {
		return v
	}
	sin, cos := angle.SinCos()
	return v.Scale(cos).
		Add(k.Cross(v).Scale(sin)).
		Add(k.Scale(k.Dot(v) * (1 - cos)))
}

// Transform returns m * (v, 1).
func (v Vector3) Transform(m Matrix4) Vector4 { return m.MulVector4(v.Vector4(1)) }

// TransformCoordinate transforms v as a point and divides by the resulting w.
func (v Vector3) TransformCoordinate(m Matrix4) Vector3 {
	r := v.Transform(m)
	if r.W == 1 {
		return r.Vector3()
	}
	return r.Vector3().DivScalar(r.W)
}

// TransformNormal transforms v as a direction, ignoring translation.
func (v Vector3) TransformNormal(m Matrix4) Vector3 { return m.MulVector4(v.Vector4(0)).Vector3() }

// Vector2 drops Z.
func (v Vector3) Vector2() Vector2 { return Vector2{v.X, v.Y} }

// Vector4 widens v with the given w.
func (v Vector3) Vector4(w Real) Vector4 { return Vector4{v.X, v.Y, v.Z, w} }

// Components returns X, Y, Z in order.
func (v Vector3) Components() [3]Real { return [3]Real{v.X, v.Y, v.Z} }

// Component returns component i; it panics unless 0 <= i < 3.
func (v Vector3) Component(i int) Real {
	switch i {
	case 0:
		return v.X
	case 1:
		return v.Y
	case 2:
		return v.Z
	}
	panic(indexPanic("Vector3 component", i, 3))
}

// WithComponent returns a copy with component i replaced; it panics
// unless 0 <= i < 3.
func (v Vector3) WithComponent(i int, value Real) Vector3 {
	switch i {
	case 0:
		v.X = value
	case 1:
		v.Y = value
	case 2:
		v.Z = value
	default:
		panic(indexPanic("Vector3 component", i, 3))
	}
	return v
}

func (v Vector3) IsNaN() bool              { return anyNaN(v.X, v.Y, v.Z) }
func (v Vector3) IsInfinity() bool         { return anyInf(0, v.X, v.Y, v.Z) }
func (v Vector3) IsPositiveInfinity() bool { return anyInf(1, v.X, v.Y, v.Z) }
func (v Vector3) IsNegativeInfinity() bool { return anyInf(-1, v.X, v.Y, v.Z) }

// Near reports whether every component is near its counterpart.
func (a Vector3) Near(b Vector3) bool {
	return scalar.Near(a.X, b.X) && scalar.Near(a.Y, b.Y) && scalar.Near(a.Z, b.Z)
}

func (v Vector3) Hash() uint64   { return scalar.Hash(v.X, v.Y, v.Z) }
func (v Vector3) String() string { return scalar.FormatList(v.X, v.Y, v.Z) }

func buildVector3(c []Real) Vector3 { return Vector3{c[0], c[1], c[2]} }

// ParseVector3 parses "X Y Z".
func ParseVector3(s string) (Vector3, error) { return parseValues(s, 3, "vector3", buildVector3) }

// TryParseVector3 is ParseVector3 reporting failure as false.
func TryParseVector3(s string) (Vector3, bool) {
	v, err := ParseVector3(s)
	return v, err == nil
}

func (v Vector3) MarshalText() ([]byte, error) { return []byte(v.String()), nil }

func (v *Vector3) UnmarshalText(text []byte) error {
	r, err := unmarshalValues(text, 3, "vector3", buildVector3)
	if err != nil {
		return err
	}
	*v = r
	return nil
}

func (v Vector3) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	return marshalXMLValues(e, start, v.X, v.Y, v.Z)
}

func (v *Vector3) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	r, err := unmarshalXMLValues(d, start, 3, "vector3", buildVector3)
	if err == nil {
		*v = r
	}
	return err
}
