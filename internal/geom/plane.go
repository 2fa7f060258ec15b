package geom

import (
	"encoding/xml"

	"github.com/lukaszgryglicki/kernel3d/internal/scalar"
)

// Plane is the set of points with A*x + B*y + C*z + D = 0. Several queries
// expect a normalized plane (unit normal) and give wrong answers otherwise.
type Plane struct {
	A, B, C, D Real
}

var (
	PlaneZero             = Plane{}
	PlaneNaN              = planeFromVector4(Vector4NaN)
	PlanePositiveInfinity = planeFromVector4(Vector4PositiveInfinity)
	PlaneNegativeInfinity = planeFromVector4(Vector4NegativeInfinity)
)

func planeFromVector4(v Vector4) Plane { return Plane{v.X, v.Y, v.Z, v.W} }

// NewPlane returns the plane with the given normal and distance term.
func NewPlane(normal Vector3, d Real) Plane { return Plane{normal.X, normal.Y, normal.Z, d} }

// PlaneFromPointNormal returns the plane through point with the given normal.
func PlaneFromPointNormal(point, normal Vector3) Plane { return NewPlane(normal, -normal.Dot(point)) }

// PlaneFromPoints returns the normalized plane through three points, wound
// counterclockwise when seen from the front. Collinear points give the zero
// plane.
func PlaneFromPoints(p1, p2, p3 Vector3) Plane {
	n := p2.Sub(p1).Cross(p3.Sub(p1)).Normalize()
	if n == (Vector3{}) {
		return Plane{}
	}
	return PlaneFromPointNormal(p1, n)
}

// Normal returns (A, B, C).
func (p Plane) Normal() Vector3 { return Vector3{p.A, p.B, p.C} }

// Normalize scales the plane so its normal has unit length; a near-zero
// normal gives the zero plane.
func (p Plane) Normalize() Plane {
	l := p.Normal().Magnitude()
	if scalar.NearZero(l) {
		return Plane{}
	}
	return Plane{p.A / l, p.B / l, p.C / l, p.D / l}
}

func (p Plane) IsNormalized() bool { return p.Normal().IsNormalized() }

// Dot returns (A, B, C, D) · v.
func (p Plane) Dot(v Vector4) Real { return p.Vector4().Dot(v) }

// DotCoordinate returns the signed distance of point from a normalized plane.
func (p Plane) DotCoordinate(point Vector3) Real {
	return p.A*point.X + p.B*point.Y + p.C*point.Z + p.D
}

// DotNormal returns Normal · v.
func (p Plane) DotNormal(v Vector3) Real { return p.A*v.X + p.B*v.Y + p.C*v.Z }

// Flip returns the same plane facing the other way.
func (p Plane) Flip() Plane { return Plane{-p.A, -p.B, -p.C, -p.D} }

func (p Plane) Scale(s Real) Plane { return Plane{p.A * s, p.B * s, p.C * s, p.D * s} }

// Transform maps the plane through m using the inverse transpose, so
// points on p land on the result.
func (p Plane) Transform(m Matrix4) Plane {
	return planeFromVector4(m.Invert().Transpose().MulVector4(p.Vector4()))
}

// Rotate turns the plane about the origin by q.
func (p Plane) Rotate(q Quaternion) Plane { return NewPlane(p.Normal().Rotate(q), p.D) }

// Vector4 returns (A, B, C, D).
func (p Plane) Vector4() Vector4 { return Vector4{p.A, p.B, p.C, p.D} }

func (p Plane) Components() [4]Real { return [4]Real{p.A, p.B, p.C, p.D} }

func (p Plane) IsNaN() bool              { return anyNaN(p.A, p.B, p.C, p.D) }
func (p Plane) IsInfinity() bool         { return anyInf(0, p.A, p.B, p.C, p.D) }
func (p Plane) IsPositiveInfinity() bool { return anyInf(1, p.A, p.B, p.C, p.D) }
func (p Plane) IsNegativeInfinity() bool { return anyInf(-1, p.A, p.B, p.C, p.D) }

func (p Plane) Near(o Plane) bool { return p.Vector4().Near(o.Vector4()) }
func (p Plane) Hash() uint64      { return scalar.Hash(p.A, p.B, p.C, p.D) }
func (p Plane) String() string    { return scalar.FormatList(p.A, p.B, p.C, p.D) }

func buildPlane(c []Real) Plane { return Plane{c[0], c[1], c[2], c[3]} }

// ParsePlane parses "A B C D".
func ParsePlane(s string) (Plane, error) { return parseValues(s, 4, "plane", buildPlane) }

func TryParsePlane(s string) (Plane, bool) {
	p, err := ParsePlane(s)
	return p, err == nil
}

func (p Plane) MarshalText() ([]byte, error) { return []byte(p.String()), nil }

func (p *Plane) UnmarshalText(text []byte) error {
	r, err := unmarshalValues(text, 4, "plane", buildPlane)
	if err != nil {
		return err
	}
	*p = r
	return nil
}

func (p Plane) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	return marshalXMLValues(e, start, p.A, p.B, p.C, p.D)
}

func (p *Plane) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	r, err := unmarshalXMLValues(d, start, 4, "plane", buildPlane)
	if err == nil {
		*p = r
	}
	return err
}
