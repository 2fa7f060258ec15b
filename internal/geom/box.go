package geom

import (
	"encoding/xml"

	"github.com/lukaszgryglicki/kernel3d/internal/scalar"
)

// BoundingBox is an axis-aligned box. Queries assume Minimum <= Maximum on
// every axis; an inverted box is not rejected, it just never intersects
// anything sensibly. IsValid reports the ordering.
type BoundingBox struct {
	Minimum, Maximum Vector3
}

var (
	BoundingBoxZero             = BoundingBox{}
	BoundingBoxNaN              = BoundingBox{Vector3NaN, Vector3NaN}
	BoundingBoxPositiveInfinity = BoundingBox{Vector3PositiveInfinity, Vector3PositiveInfinity}
	BoundingBoxNegativeInfinity = BoundingBox{Vector3NegativeInfinity, Vector3NegativeInfinity}
	// BoundingBoxEmpty is the identity for Merge and MergePoint.
	BoundingBoxEmpty = BoundingBox{Vector3PositiveInfinity, Vector3NegativeInfinity}
)

// BoundingBoxFromPoints returns the smallest box holding every point; no
// points gives the zero box.
func BoundingBoxFromPoints(points ...Vector3) BoundingBox {
	if len(points) == 0 {
		return BoundingBox{}
	}
	b := BoundingBox{points[0], points[0]}
	for _, p := range points[1:] {
		b = b.MergePoint(p)
	}
	return b
}

// BoundingBoxFromSphere returns the box circumscribing s.
func BoundingBoxFromSphere(s BoundingSphere) BoundingBox {
	r := Splat3(s.Radius)
	return BoundingBox{s.Center.Sub(r), s.Center.Add(r)}
}

// BoundingBoxFromCenter returns the box with the given center and half size.
func BoundingBoxFromCenter(center, extents Vector3) BoundingBox {
	return BoundingBox{center.Sub(extents), center.Add(extents)}
}

func (b BoundingBox) Center() Vector3  { return b.Minimum.Lerp(b.Maximum, 0.5) }
func (b BoundingBox) Size() Vector3    { return b.Maximum.Sub(b.Minimum) }
func (b BoundingBox) Extents() Vector3 { return b.Size().Scale(0.5) }

func (b BoundingBox) Volume() Real {
	s := b.Size()
	return s.X * s.Y * s.Z
}

func (b BoundingBox) SurfaceArea() Real {
	s := b.Size()
	return 2 * (s.X*s.Y + s.Y*s.Z + s.Z*s.X)
}

// IsValid reports whether Minimum <= Maximum on every axis.
func (b BoundingBox) IsValid() bool {
	return b.Minimum.X <= b.Maximum.X && b.Minimum.Y <= b.Maximum.Y && b.Minimum.Z <= b.Maximum.Z
}

// Corner returns corner i; bit 0 of i picks Maximum.X, bit 1 Maximum.Y
// and bit 2 Maximum.Z.
func (b BoundingBox) Corner(i int) Vector3 {
	if i < 0 || i > 7 {
		panic(indexPanic("BoundingBox corner", i, 8))
	}
	c := b.Minimum
	if i&1 != 0 {
		c.X = b.Maximum.X
	}
	if i&2 != 0 {
		c.Y = b.Maximum.Y
	}
	if i&4 != 0 {
		c.Z = b.Maximum.Z
	}
	return c
}

// Corners returns all eight corners in Corner order.
func (b BoundingBox) Corners() [8]Vector3 {
	var out [8]Vector3
	for i := range out {
		out[i] = b.Corner(i)
	}
	return out
}

// Merge returns the smallest box holding both boxes.
func (b BoundingBox) Merge(o BoundingBox) BoundingBox {
	return BoundingBox{b.Minimum.Min(o.Minimum), b.Maximum.Max(o.Maximum)}
}

// MergePoint grows b to hold p.
func (b BoundingBox) MergePoint(p Vector3) BoundingBox {
	return BoundingBox{b.Minimum.Min(p), b.Maximum.Max(p)}
}

// Inflate grows the box by d on every side.
func (b BoundingBox) Inflate(d Real) BoundingBox {
	v := Splat3(d)
	return BoundingBox{b.Minimum.Sub(v), b.Maximum.Add(v)}
}

func (b BoundingBox) Translate(v Vector3) BoundingBox {
	return BoundingBox{b.Minimum.Add(v), b.Maximum.Add(v)}
}

// Transform returns the axis-aligned box holding the eight transformed
// corners.
func (b BoundingBox) Transform(m Matrix4) BoundingBox {
	corners := b.Corners()
	out := BoundingBoxEmpty
	for _, c := range corners {
		out = out.MergePoint(c.TransformCoordinate(m))
	}
	return out
}

func (b BoundingBox) values() []Real { return pairValues(b.Minimum, b.Maximum) }

func (b BoundingBox) IsNaN() bool              { return anyNaN(b.values()...) }
func (b BoundingBox) IsInfinity() bool         { return anyInf(0, b.values()...) }
func (b BoundingBox) IsPositiveInfinity() bool { return anyInf(1, b.values()...) }
func (b BoundingBox) IsNegativeInfinity() bool { return anyInf(-1, b.values()...) }

func (b BoundingBox) Near(o BoundingBox) bool {
	return pairNear(b.Minimum, b.Maximum, o.Minimum, o.Maximum)
}

func (b BoundingBox) Hash() uint64 { return scalar.Hash(b.values()...) }

// String writes Minimum then Maximum.
func (b BoundingBox) String() string { return scalar.FormatList(b.values()...) }

func buildBoundingBox(c []Real) BoundingBox {
	lo, hi := pairVectors(c)
	return BoundingBox{lo, hi}
}

// ParseBoundingBox parses "MinX MinY MinZ MaxX MaxY MaxZ".
func ParseBoundingBox(s string) (BoundingBox, error) {
	return parseValues(s, 6, "bounding box", buildBoundingBox)
}

func TryParseBoundingBox(s string) (BoundingBox, bool) {
	b, err := ParseBoundingBox(s)
	return b, err == nil
}

func (b BoundingBox) MarshalText() ([]byte, error) { return []byte(b.String()), nil }

func (b *BoundingBox) UnmarshalText(text []byte) error {
	r, err := unmarshalValues(text, 6, "bounding box", buildBoundingBox)
	if err != nil {
		return err
	}
	*b = r
	return nil
}

func (b BoundingBox) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	return marshalXMLValues(e, start, b.values()...)
}

func (b *BoundingBox) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	r, err := unmarshalXMLValues(d, start, 6, "bounding box", buildBoundingBox)
	if err == nil {
		*b = r
	}
	return err
}
