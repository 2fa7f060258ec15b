package intersect

import (
	"github.com/lukaszgryglicki/kernel3d/internal/geom"
	"github.com/lukaszgryglicki/kernel3d/internal/scalar"
)

// RaySlab caches the reciprocal direction of a ray for repeated box tests.
type RaySlab struct {
	origin [3]Real
	inv    [3]Real
	par    [3]bool // direction component near zero
}

// NewRaySlab prepares origin + t*dir for slab tests.
func NewRaySlab(origin, dir Vector3) RaySlab {
	s := RaySlab{origin: origin.Components()}
	d := dir.Components()
	for i := range d {
		if scalar.NearZero(d[i]) {
			s.par[i] = true
			continue
		}
		s.inv[i] = 1 / d[i]
	}
	return s
}

// Interval clips the parameter range [near, far] against the box and
// reports whether anything is left. Axes the ray runs parallel to are
// checked by position instead.
func (s *RaySlab) Interval(b geom.BoundingBox, near, far Real) (Real, Real, bool) {
	lo, hi := b.Minimum.Components(), b.Maximum.Components()
	for i := 0; i < 3; i++ {
		if s.par[i] {
			if s.origin[i] < lo[i] || s.origin[i] > hi[i] {
				return 0, 0, false
			}
			continue
		}
		t1 := (lo[i] - s.origin[i]) * s.inv[i]
		t2 := (hi[i] - s.origin[i]) * s.inv[i]
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		if t1 > near {
			near = t1
		}
		if t2 < far {
			far = t2
		}
		if near > far {
			return 0, 0, false
		}
	}
	return near, far, true
}

var inf = scalar.Inf(1)

// BoundingBoxWithRay reports whether the ray hits the box.
func BoundingBoxWithRay(b geom.BoundingBox, r geom.Ray) bool {
	_, ok := BoundingBoxWithRayDistance(b, r)
	return ok
}

// BoundingBoxWithRayDistance returns the ray parameter where the ray enters
// the box, 0 when it starts inside.
func BoundingBoxWithRayDistance(b geom.BoundingBox, r geom.Ray) (Real, bool) {
	s := NewRaySlab(r.Position, r.Direction)
	near, _, ok := s.Interval(b, 0, inf)
	if !ok {
		return 0, false
	}
	return near, true
}

// BoundingBoxWithRayPoints returns where the ray enters and leaves the
// box. A ray starting inside enters at its origin.
func BoundingBoxWithRayPoints(b geom.BoundingBox, r geom.Ray) (entry, exit Vector3, ok bool) {
	s := NewRaySlab(r.Position, r.Direction)
	near, far, ok := s.Interval(b, 0, inf)
	if !ok || scalar.IsInf(far, 1) {
		return Vector3{}, Vector3{}, false
	}
	return r.PointAt(near), r.PointAt(far), true
}

// BoundingBoxWithLine reports whether the infinite line crosses the box.
func BoundingBoxWithLine(b geom.BoundingBox, l geom.Line) bool {
	_, _, ok := BoundingBoxWithLinePoints(b, l)
	return ok
}

// BoundingBoxWithLinePoints returns where the line enters and leaves the
// box, ordered along the line's direction.
func BoundingBoxWithLinePoints(b geom.BoundingBox, l geom.Line) (entry, exit Vector3, ok bool) {
	d := l.Direction()
	if d.IsZero() {
		if !BoundingBoxWithPoint(b, l.Point1) {
			return Vector3{}, Vector3{}, false
		}
		return l.Point1, l.Point1, true
	}
	s := NewRaySlab(l.Point1, d)
	near, far, ok := s.Interval(b, -inf, inf)
	if !ok {
		return Vector3{}, Vector3{}, false
	}
	return l.PointAt(near), l.PointAt(far), true
}

// BoundingBoxWithLineSegment reports whether any part of the segment lies
// in the box.
func BoundingBoxWithLineSegment(b geom.BoundingBox, seg geom.LineSegment) bool {
	s := NewRaySlab(seg.End1, seg.Direction())
	_, _, ok := s.Interval(b, 0, 1)
	return ok
}
