package geom

import (
	"encoding/xml"

	"github.com/lukaszgryglicki/kernel3d/internal/scalar"
)

// BoundingSphere is a solid ball. Radius is expected to be non-negative;
// IsValid reports it.
type BoundingSphere struct {
	Center Vector3
	Radius Real
}

var (
	BoundingSphereZero             = BoundingSphere{}
	BoundingSphereNaN              = BoundingSphere{Vector3NaN, scalar.NaN()}
	BoundingSpherePositiveInfinity = BoundingSphere{Vector3PositiveInfinity, scalar.Inf(1)}
	BoundingSphereNegativeInfinity = BoundingSphere{Vector3NegativeInfinity, scalar.Inf(-1)}
)

// BoundingSphereFromPoints centers the sphere on the centroid and grows it
// to reach the farthest point; no points gives the zero sphere.
func BoundingSphereFromPoints(points ...Vector3) BoundingSphere {
	if len(points) == 0 {
		return BoundingSphere{}
	}
	var c Vector3
	for _, p := range points {
		c = c.Add(p)
	}
	c = c.DivScalar(Real(len(points)))
	var r2 Real
	for _, p := range points {
		r2 = max(r2, c.DistanceSquared(p))
	}
	return BoundingSphere{c, scalar.Sqrt(r2)}
}

// BoundingSphereFromBox returns the sphere circumscribing b.
func BoundingSphereFromBox(b BoundingBox) BoundingSphere {
	c := b.Center()
	return BoundingSphere{c, c.Distance(b.Maximum)}
}

// IsValid reports whether the radius is non-negative.
func (s BoundingSphere) IsValid() bool { return s.Radius >= 0 }

func (s BoundingSphere) Volume() Real { return 4.0 / 3.0 * scalar.Pi * s.Radius * s.Radius * s.Radius }

// Merge returns the smallest sphere holding both spheres. When one already
// holds the other, that one is returned unchanged.
func (s BoundingSphere) Merge(o BoundingSphere) BoundingSphere {
	diff := o.Center.Sub(s.Center)
	d := diff.Magnitude()
	if s.Radius >= d+o.Radius {
		return s
	}
	if o.Radius >= d+s.Radius {
		return o
	}
	dir := diff.DivScalar(d)
	r := (s.Radius + o.Radius + d) / 2
	return BoundingSphere{s.Center.Add(dir.Scale(r - s.Radius)), r}
}

// MergePoint grows s just enough to hold p.
func (s BoundingSphere) MergePoint(p Vector3) BoundingSphere {
	return s.Merge(BoundingSphere{Center: p})
}

// Transform moves the center through m and scales the radius by the
// largest axis scale of m.
func (s BoundingSphere) Transform(m Matrix4) BoundingSphere {
	scale := max(
		m.Column(0).Vector3().Magnitude(),
		m.Column(1).Vector3().Magnitude(),
		m.Column(2).Vector3().Magnitude(),
	)
	return BoundingSphere{s.Center.TransformCoordinate(m), s.Radius * scale}
}

func (s BoundingSphere) values() []Real { return []Real{s.Center.X, s.Center.Y, s.Center.Z, s.Radius} }

func (s BoundingSphere) IsNaN() bool              { return anyNaN(s.values()...) }
func (s BoundingSphere) IsInfinity() bool         { return anyInf(0, s.values()...) }
func (s BoundingSphere) IsPositiveInfinity() bool { return anyInf(1, s.values()...) }
func (s BoundingSphere) IsNegativeInfinity() bool { return anyInf(-1, s.values()...) }

func (s BoundingSphere) Near(o BoundingSphere) bool {
	return s.Center.Near(o.Center) && scalar.Near(s.Radius, o.Radius)
}

func (s BoundingSphere) Hash() uint64   { return scalar.Hash(s.values()...) }
func (s BoundingSphere) String() string { return scalar.FormatList(s.values()...) }

func buildBoundingSphere(c []Real) BoundingSphere {
	return BoundingSphere{Vector3{c[0], c[1], c[2]}, c[3]}
}

// ParseBoundingSphere parses "X Y Z Radius".
func ParseBoundingSphere(s string) (BoundingSphere, error) {
	return parseValues(s, 4, "bounding sphere", buildBoundingSphere)
}

func TryParseBoundingSphere(s string) (BoundingSphere, bool) {
	v, err := ParseBoundingSphere(s)
	return v, err == nil
}

func (s BoundingSphere) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

func (s *BoundingSphere) UnmarshalText(text []byte) error {
	r, err := unmarshalValues(text, 4, "bounding sphere", buildBoundingSphere)
	if err != nil {
		return err
	}
	*s = r
	return nil
}

func (s BoundingSphere) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	return marshalXMLValues(e, start, s.values()...)
}

func (s *BoundingSphere) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	r, err := unmarshalXMLValues(d, start, 4, "bounding sphere", buildBoundingSphere)
	if err == nil {
		*s = r
	}
	return err
}
