package geom

import (
	"encoding/xml"

	"github.com/lukaszgryglicki/kernel3d/internal/scalar"
)

// Quaternion is X i + Y j + Z k + W. Unit quaternions represent rotations.
type Quaternion struct {
	X, Y, Z, W Real
}

var (
	QuaternionZero             = Quaternion{}
	QuaternionIdentity         = Quaternion{0, 0, 0, 1}
	QuaternionNaN              = Quaternion(Vector4NaN)
	QuaternionPositiveInfinity = Quaternion(Vector4PositiveInfinity)
	QuaternionNegativeInfinity = Quaternion(Vector4NegativeInfinity)
)

// QuaternionFromAxisAngle returns a rotation by angle about axis. The axis
// is normalized first; a zero axis gives the identity.
func QuaternionFromAxisAngle(angle Angle, axis Vector3) Quaternion {
	k := axis.Normalize()
	if k == (Vector3{}) {
		return QuaternionIdentity
	}
	s, c := angle.Div(2).SinCos()
	return Quaternion{k.X * s, k.Y * s, k.Z * s, c}
}

// QuaternionFromAngularVelocity treats |v| as the angle in radians and the
// direction of v as the axis. A near-zero v gives the identity.
func QuaternionFromAngularVelocity(v Vector3) Quaternion {
	l := v.Magnitude()
	if scalar.NearZero(l) {
		return QuaternionIdentity
	}
	return QuaternionFromAxisAngle(Radians(l), v.DivScalar(l))
}

// QuaternionFromMatrix extracts the rotation of the upper 3x3 block, which
// must be orthonormal. The branch is chosen by the largest diagonal term so
// the square root never approaches zero.
func QuaternionFromMatrix(m Matrix4) Quaternion {
	a := &m.M
	trace := a[0][0] + a[1][1] + a[2][2]
	var q Quaternion
	switch {
	case trace > 0:
		s := 0.5 / scalar.Sqrt(trace+1)
		q.W = 0.25 / s
		q.X = (a[2][1] - a[1][2]) * s
		q.Y = (a[0][2] - a[2][0]) * s
		q.Z = (a[1][0] - a[0][1]) * s
	case a[0][0] > a[1][1] && a[0][0] > a[2][2]:
		s := 2 * scalar.Sqrt(1+a[0][0]-a[1][1]-a[2][2])
		q.W = (a[2][1] - a[1][2]) / s
		q.X = 0.25 * s
		q.Y = (a[0][1] + a[1][0]) / s
		q.Z = (a[0][2] + a[2][0]) / s
	case a[1][1] > a[2][2]:
		s := 2 * scalar.Sqrt(1+a[1][1]-a[0][0]-a[2][2])
		q.W = (a[0][2] - a[2][0]) / s
		q.X = (a[0][1] + a[1][0]) / s
		q.Y = 0.25 * s
		q.Z = (a[1][2] + a[2][1]) / s
	default:
		s := 2 * scalar.Sqrt(1+a[2][2]-a[0][0]-a[1][1])
		q.W = (a[1][0] - a[0][1]) / s
		q.X = (a[0][2] + a[2][0]) / s
		q.Y = (a[1][2] + a[2][1]) / s
		q.Z = 0.25 * s
	}
	return q
}

// QuaternionFromEuler composes yaw about Y, then pitch about X, then roll
// about Z, applied to a vector in the order roll, pitch, yaw.
func QuaternionFromEuler(yaw, pitch, roll Angle) Quaternion {
	return QuaternionFromAxisAngle(yaw, Vector3UnitY).
		Mul(QuaternionFromAxisAngle(pitch, Vector3UnitX)).
		Mul(QuaternionFromAxisAngle(roll, Vector3UnitZ))
}

// QuaternionBetween returns the shortest rotation taking the direction of
// from onto the direction of to. Opposite vectors rotate a half turn about
// an arbitrary perpendicular axis; a zero input gives the identity.
func QuaternionBetween(from, to Vector3) Quaternion {
	a, b := from.Normalize(), to.Normalize()
	if a == (Vector3{}) || b == (Vector3{}) {
		return QuaternionIdentity
	}
	d := a.Dot(b)
	if d >= 1-scalar.Epsilon {
		return QuaternionIdentity
	}
	if d <= -1+scalar.Epsilon {
		axis := Vector3UnitX.Cross(a)
		if axis.MagnitudeSquared() < scalar.Epsilon {
			axis = Vector3UnitY.Cross(a)
		}
		return QuaternionFromAxisAngle(AngleStraight, axis)
	}
	c := a.Cross(b)
	return Quaternion{c.X, c.Y, c.Z, 1 + d}.Normalize()
}

func (a Quaternion) Add(b Quaternion) Quaternion { return Quaternion{a.X + b.X, a.Y + b.Y, a.Z + b.Z, a.W + b.W} }
func (a Quaternion) Sub(b Quaternion) Quaternion { return Quaternion{a.X - b.X, a.Y - b.Y, a.Z - b.Z, a.W - b.W} }
func (q Quaternion) Scale(s Real) Quaternion     { return Quaternion{q.X * s, q.Y * s, q.Z * s, q.W * s} }
func (q Quaternion) DivScalar(s Real) Quaternion { return Quaternion{q.X / s, q.Y / s, q.Z / s, q.W / s} }
func (q Quaternion) Neg() Quaternion             { return Quaternion{-q.X, -q.Y, -q.Z, -q.W} }

// Mul returns the Hamilton product a*b; as a rotation, b is applied first.
func (a Quaternion) Mul(b Quaternion) Quaternion {
	return Quaternion{
		X: a.W*b.X + a.X*b.W + a.Y*b.Z - a.Z*b.Y,
		Y: a.W*b.Y - a.X*b.Z + a.Y*b.W + a.Z*b.X,
		Z: a.W*b.Z + a.X*b.Y - a.Y*b.X + a.Z*b.W,
		W: a.W*b.W - a.X*b.X - a.Y*b.Y - a.Z*b.Z,
	}
}

// Div returns a * b⁻¹.
func (a Quaternion) Div(b Quaternion) Quaternion { return a.Mul(b.Inverse()) }

func (a Quaternion) Dot(b Quaternion) Real { return a.X*b.X + a.Y*b.Y + a.Z*b.Z + a.W*b.W }

func (q Quaternion) Conjugate() Quaternion { return Quaternion{-q.X, -q.Y, -q.Z, q.W} }

// Inverse returns the multiplicative inverse, or the zero quaternion when
// the magnitude is near zero.
func (q Quaternion) Inverse() Quaternion {
	l := q.MagnitudeSquared()
	if scalar.NearZero(l) {
		return Quaternion{}
	}
	return q.Conjugate().DivScalar(l)
}

func (q Quaternion) MagnitudeSquared() Real { return q.Dot(q) }
func (q Quaternion) Magnitude() Real        { return scalar.Norm(q.X, q.Y, q.Z, q.W) }

// Normalize returns a unit quaternion, or the zero quaternion when the
// magnitude is near zero.
func (q Quaternion) Normalize() Quaternion {
	l := q.Magnitude()
	if scalar.NearZero(l) {
		return Quaternion{}
	}
	return q.DivScalar(l)
}

func (q Quaternion) IsNormalized() bool { return scalar.Abs(q.MagnitudeSquared()-1) < scalar.Epsilon }
func (q Quaternion) IsIdentity() bool   { return q.Near(QuaternionIdentity) }

// Axis returns the rotation axis; X for a rotation by zero.
func (q Quaternion) Axis() Vector3 {
	v := Vector3{q.X, q.Y, q.Z}.Normalize()
	if v == (Vector3{}) {
		return Vector3UnitX
	}
	return v
}

// Angle returns the rotation angle in [0, 2π].
func (q Quaternion) Angle() Angle {
	return Radians(2 * scalar.Acos(scalar.Clamp(q.W, -1, 1)))
}

// Lerp blends along the shorter chord and renormalizes.
func (a Quaternion) Lerp(b Quaternion, amount Real) Quaternion {
	if a.Dot(b) < 0 {
		b = b.Neg()
	}
	return Quaternion(a.Vector4().Lerp(b.Vector4(), amount)).Normalize()
}

// Slerp interpolates at constant angular speed along the shorter arc.
func (a Quaternion) Slerp(b Quaternion, amount Real) Quaternion {
	cos := a.Dot(b)
	if cos < 0 {
		b, cos = b.Neg(), -cos
	}
	if cos > 1-scalar.Epsilon {
		return a.Lerp(b, amount)
	}
	theta := scalar.Acos(cos)
	sin := scalar.Sin(theta)
	wa := scalar.Sin((1-amount)*theta) / sin
	wb := scalar.Sin(amount*theta) / sin
	return a.Scale(wa).Add(b.Scale(wb))
}

// SmoothStep slerps with a cubic ease on amount.
func (a Quaternion) SmoothStep(b Quaternion, amount Real) Quaternion {
	return a.Slerp(b, scalar.SmoothStep(0, 1, amount))
}

// QuaternionBarycentric blends three rotations with two nested slerps.
func QuaternionBarycentric(q1, q2, q3 Quaternion, w2, w3 Real) Quaternion {
	s := w2 + w3
	if scalar.NearZero(s) {
		return q1
	}
	return q1.Slerp(q2, s).Slerp(q1.Slerp(q3, s), w3/s)
}

// QuaternionHermite blends componentwise and renormalizes.
func QuaternionHermite(q1, t1, q2, t2 Quaternion, amount Real) Quaternion {
	return Quaternion(Vector4Hermite(q1.Vector4(), t1.Vector4(), q2.Vector4(), t2.Vector4(), amount)).Normalize()
}

// QuaternionCatmullRom blends componentwise and renormalizes.
func QuaternionCatmullRom(q1, q2, q3, q4 Quaternion, amount Real) Quaternion {
	return Quaternion(Vector4CatmullRom(q1.Vector4(), q2.Vector4(), q3.Vector4(), q4.Vector4(), amount)).Normalize()
}

func (a Quaternion) Min(b Quaternion) Quaternion { return Quaternion(a.Vector4().Min(b.Vector4())) }
func (a Quaternion) Max(b Quaternion) Quaternion { return Quaternion(a.Vector4().Max(b.Vector4())) }

func (q Quaternion) Clamp(lo, hi Quaternion) Quaternion {
	return Quaternion(q.Vector4().Clamp(lo.Vector4(), hi.Vector4()))
}

func (q Quaternion) Abs() Quaternion      { return Quaternion(q.Vector4().Abs()) }
func (q Quaternion) Floor() Quaternion    { return Quaternion(q.Vector4().Floor()) }
func (q Quaternion) Ceiling() Quaternion  { return Quaternion(q.Vector4().Ceiling()) }
func (q Quaternion) Round() Quaternion    { return Quaternion(q.Vector4().Round()) }
func (q Quaternion) Fraction() Quaternion { return Quaternion(q.Vector4().Fraction()) }
func (q Quaternion) Sign() Quaternion     { return Quaternion(q.Vector4().Sign()) }

// Vector4 reinterprets the components as (X, Y, Z, W).
func (q Quaternion) Vector4() Vector4 { return Vector4(q) }

func (q Quaternion) Components() [4]Real { return [4]Real{q.X, q.Y, q.Z, q.W} }

// Component returns component i in X, Y, Z, W order; it panics on a bad index.
func (q Quaternion) Component(i int) Real {
	if i < 0 || i > 3 {
		panic(indexPanic("Quaternion component", i, 4))
	}
	return q.Vector4().Component(i)
}

func (q Quaternion) WithComponent(i int, value Real) Quaternion {
	if i < 0 || i > 3 {
		panic(indexPanic("Quaternion component", i, 4))
	}
	return Quaternion(q.Vector4().WithComponent(i, value))
}

func (q Quaternion) IsNaN() bool              { return anyNaN(q.X, q.Y, q.Z, q.W) }
func (q Quaternion) IsInfinity() bool         { return anyInf(0, q.X, q.Y, q.Z, q.W) }
func (q Quaternion) IsPositiveInfinity() bool { return anyInf(1, q.X, q.Y, q.Z, q.W) }
func (q Quaternion) IsNegativeInfinity() bool { return anyInf(-1, q.X, q.Y, q.Z, q.W) }

func (a Quaternion) Near(b Quaternion) bool { return a.Vector4().Near(b.Vector4()) }
func (q Quaternion) Hash() uint64           { return scalar.Hash(q.X, q.Y, q.Z, q.W) }
func (q Quaternion) String() string         { return scalar.FormatList(q.X, q.Y, q.Z, q.W) }

func buildQuaternion(c []Real) Quaternion { return Quaternion{c[0], c[1], c[2], c[3]} }

// ParseQuaternion parses "X Y Z W".
func ParseQuaternion(s string) (Quaternion, error) {
	return parseValues(s, 4, "quaternion", buildQuaternion)
}

func TryParseQuaternion(s string) (Quaternion, bool) {
	q, err := ParseQuaternion(s)
	return q, err == nil
}

func (q Quaternion) MarshalText() ([]byte, error) { return []byte(q.String()), nil }

func (q *Quaternion) UnmarshalText(text []byte) error {
	r, err := unmarshalValues(text, 4, "quaternion", buildQuaternion)
	if err != nil {
		return err
	}
	*q = r
	return nil
}

func (q Quaternion) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	return marshalXMLValues(e, start, q.X, q.Y, q.Z, q.W)
}

func (q *Quaternion) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	r, err := unmarshalXMLValues(d, start, 4, "quaternion", buildQuaternion)
	if err == nil {
		*q = r
	}
	return err
}
