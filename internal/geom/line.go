package geom

import (
	"encoding/xml"

	"github.com/lukaszgryglicki/kernel3d/internal/scalar"
)

func pairValues(a, b Vector3) []Real { return []Real{a.X, a.Y, a.Z, b.X, b.Y, b.Z} }

func pairVectors(c []Real) (Vector3, Vector3) {
	return Vector3{c[0], c[1], c[2]}, Vector3{c[3], c[4], c[5]}
}

func pairNear(a1, b1, a2, b2 Vector3) bool { return a1.Near(a2) && b1.Near(b2) }

// Line is the infinite line through two points.
type Line struct {
	Point1, Point2 Vector3
}

var (
	LineZero             = Line{}
	LineNaN              = Line{Vector3NaN, Vector3NaN}
	LinePositiveInfinity = Line{Vector3PositiveInfinity, Vector3PositiveInfinity}
	LineNegativeInfinity = Line{Vector3NegativeInfinity, Vector3NegativeInfinity}
)

// Direction returns Point2 - Point1, not normalized.
func (l Line) Direction() Vector3 { return l.Point2.Sub(l.Point1) }

// PointAt returns Point1 + t*Direction.
func (l Line) PointAt(t Real) Vector3 { return l.Point1.Add(l.Direction().Scale(t)) }

func (l Line) Transform(m Matrix4) Line {
	return Line{l.Point1.TransformCoordinate(m), l.Point2.TransformCoordinate(m)}
}

func (l Line) values() []Real { return pairValues(l.Point1, l.Point2) }

func (l Line) IsNaN() bool              { return anyNaN(l.values()...) }
func (l Line) IsInfinity() bool         { return anyInf(0, l.values()...) }
func (l Line) IsPositiveInfinity() bool { return anyInf(1, l.values()...) }
func (l Line) IsNegativeInfinity() bool { return anyInf(-1, l.values()...) }

func (l Line) Near(o Line) bool { return pairNear(l.Point1, l.Point2, o.Point1, o.Point2) }
func (l Line) Hash() uint64     { return scalar.Hash(l.values()...) }
func (l Line) String() string   { return scalar.FormatList(l.values()...) }

func buildLine(c []Real) Line {
	p1, p2 := pairVectors(c)
	return Line{p1, p2}
}

// ParseLine parses "X1 Y1 Z1 X2 Y2 Z2".
func ParseLine(s string) (Line, error) { return parseValues(s, 6, "line", buildLine) }

func TryParseLine(s string) (Line, bool) {
	l, err := ParseLine(s)
	return l, err == nil
}

func (l Line) MarshalText() ([]byte, error) { return []byte(l.String()), nil }

func (l *Line) UnmarshalText(text []byte) error {
	r, err := unmarshalValues(text, 6, "line", buildLine)
	if err != nil {
		return err
	}
	*l = r
	return nil
}

func (l Line) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	return marshalXMLValues(e, start, l.values()...)
}

func (l *Line) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	r, err := unmarshalXMLValues(d, start, 6, "line", buildLine)
	if err == nil {
		*l = r
	}
	return err
}

// LineSegment is the finite segment between two end points.
type LineSegment struct {
	End1, End2 Vector3
}

var (
	LineSegmentZero             = LineSegment{}
	LineSegmentNaN              = LineSegment{Vector3NaN, Vector3NaN}
	LineSegmentPositiveInfinity = LineSegment{Vector3PositiveInfinity, Vector3PositiveInfinity}
	LineSegmentNegativeInfinity = LineSegment{Vector3NegativeInfinity, Vector3NegativeInfinity}
)

func (s LineSegment) Direction() Vector3      { return s.End2.Sub(s.End1) }
func (s LineSegment) Length() Real            { return s.End1.Distance(s.End2) }
func (s LineSegment) LengthSquared() Real     { return s.End1.DistanceSquared(s.End2) }
func (s LineSegment) Center() Vector3         { return s.End1.Lerp(s.End2, 0.5) }
func (s LineSegment) PointAt(u Real) Vector3  { return s.End1.Lerp(s.End2, u) }
func (s LineSegment) Line() Line              { return Line{s.End1, s.End2} }
func (s LineSegment) Reverse() LineSegment    { return LineSegment{s.End2, s.End1} }
func (s LineSegment) IsDegenerate() bool      { return s.Direction().IsZero() }
func (s LineSegment) values() []Real          { return pairValues(s.End1, s.End2) }
func (s LineSegment) Near(o LineSegment) bool { return pairNear(s.End1, s.End2, o.End1, o.End2) }

func (s LineSegment) Transform(m Matrix4) LineSegment {
	return LineSegment{s.End1.TransformCoordinate(m), s.End2.TransformCoordinate(m)}
}

func (s LineSegment) IsNaN() bool              { return anyNaN(s.values()...) }
func (s LineSegment) IsInfinity() bool         { return anyInf(0, s.values()...) }
func (s LineSegment) IsPositiveInfinity() bool { return anyInf(1, s.values()...) }
func (s LineSegment) IsNegativeInfinity() bool { return anyInf(-1, s.values()...) }

func (s LineSegment) Hash() uint64   { return scalar.Hash(s.values()...) }
func (s LineSegment) String() string { return scalar.FormatList(s.values()...) }

func buildLineSegment(c []Real) LineSegment {
	e1, e2 := pairVectors(c)
	return LineSegment{e1, e2}
}

// ParseLineSegment parses "X1 Y1 Z1 X2 Y2 Z2".
func ParseLineSegment(s string) (LineSegment, error) {
	return parseValues(s, 6, "line segment", buildLineSegment)
}

func TryParseLineSegment(s string) (LineSegment, bool) {
	v, err := ParseLineSegment(s)
	return v, err == nil
}

func (s LineSegment) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

func (s *LineSegment) UnmarshalText(text []byte) error {
	r, err := unmarshalValues(text, 6, "line segment", buildLineSegment)
	if err != nil {
		return err
	}
	*s = r
	return nil
}

func (s LineSegment) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	return marshalXMLValues(e, start, s.values()...)
}

func (s *LineSegment) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	r, err := unmarshalXMLValues(d, start, 6, "line segment", buildLineSegment)
	if err == nil {
		*s = r
	}
	return err
}

// Ray is a half-line from Position along Direction. Direction is usually
// unit length; nothing enforces it.
type Ray struct {
	Position, Direction Vector3
}

var (
	RayZero             = Ray{}
	RayNaN              = Ray{Vector3NaN, Vector3NaN}
	RayPositiveInfinity = Ray{Vector3PositiveInfinity, Vector3PositiveInfinity}
	RayNegativeInfinity = Ray{Vector3NegativeInfinity, Vector3NegativeInfinity}
)

// NewRay returns a ray from position toward target with a unit direction.
func NewRay(position, target Vector3) Ray {
	return Ray{position, target.Sub(position).Normalize()}
}

// PointAt returns Position + t*Direction.
func (r Ray) PointAt(t Real) Vector3 { return r.Position.Add(r.Direction.Scale(t)) }

func (r Ray) Normalize() Ray { return Ray{r.Position, r.Direction.Normalize()} }

func (r Ray) Transform(m Matrix4) Ray {
	return Ray{r.Position.TransformCoordinate(m), r.Direction.TransformNormal(m)}
}

func (r Ray) values() []Real { return pairValues(r.Position, r.Direction) }

func (r Ray) IsNaN() bool              { return anyNaN(r.values()...) }
func (r Ray) IsInfinity() bool         { return anyInf(0, r.values()...) }
func (r Ray) IsPositiveInfinity() bool { return anyInf(1, r.values()...) }
func (r Ray) IsNegativeInfinity() bool { return anyInf(-1, r.values()...) }

func (r Ray) Near(o Ray) bool { return pairNear(r.Position, r.Direction, o.Position, o.Direction) }
func (r Ray) Hash() uint64    { return scalar.Hash(r.values()...) }
func (r Ray) String() string  { return scalar.FormatList(r.values()...) }

func buildRay(c []Real) Ray {
	p, d := pairVectors(c)
	return Ray{p, d}
}

// ParseRay parses "PX PY PZ DX DY DZ".
func ParseRay(s string) (Ray, error) { return parseValues(s, 6, "ray", buildRay) }

func TryParseRay(s string) (Ray, bool) {
	r, err := ParseRay(s)
	return r, err == nil
}

func (r Ray) MarshalText() ([]byte, error) { return []byte(r.String()), nil }

func (r *Ray) UnmarshalText(text []byte) error {
	v, err := unmarshalValues(text, 6, "ray", buildRay)
	if err != nil {
		return err
	}
	*r = v
	return nil
}

func (r Ray) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	return marshalXMLValues(e, start, r.values()...)
}

func (r *Ray) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	v, err := unmarshalXMLValues(d, start, 6, "ray", buildRay)
	if err == nil {
		*r = v
	}
	return err
}
