// Package project computes closest points and vector projections. These
// are the building blocks the distance and intersect packages reduce to.
//
// A degenerate direction (a line whose points coincide, a zero ray
// direction) projects every point onto the anchor point.
package project

import (
	"github.com/lukaszgryglicki/kernel3d/internal/geom"
	"github.com/lukaszgryglicki/kernel3d/internal/scalar"
)

type (
	Real    = scalar.Real
	Vector3 = geom.Vector3
)

// parameter returns t such that origin + t*dir is closest to point, or 0
// for a degenerate direction.
func parameter(origin, dir, point Vector3) Real {
	dd := dir.MagnitudeSquared()
	if scalar.NearZero(dd) {
		return 0
	}
	return point.Sub(origin).Dot(dir) / dd
}

// LineParameter returns t with l.PointAt(t) closest to point.
func LineParameter(l geom.Line, point Vector3) Real {
	return parameter(l.Point1, l.Direction(), point)
}

// RayParameter returns the ray parameter of the closest point, clamped to
// [0, ∞).
func RayParameter(r geom.Ray, point Vector3) Real {
	return max(0, parameter(r.Position, r.Direction, point))
}

// LineSegmentParameter returns the segment parameter of the closest point,
// clamped to [0, 1].
func LineSegmentParameter(s geom.LineSegment, point Vector3) Real {
	return scalar.Saturate(parameter(s.End1, s.Direction(), point))
}

// PointOnPlane drops point onto a normalized plane.
func PointOnPlane(p geom.Plane, point Vector3) Vector3 {
	return point.Sub(p.Normal().Scale(p.DotCoordinate(point)))
}

// PointOnLine returns the closest point on the infinite line.
func PointOnLine(l geom.Line, point Vector3) Vector3 { return l.PointAt(LineParameter(l, point)) }

// PointOnRay returns the closest point on the ray.
func PointOnRay(r geom.Ray, point Vector3) Vector3 { return r.PointAt(RayParameter(r, point)) }

// PointOnLineSegment returns the closest point on the segment.
func PointOnLineSegment(s geom.LineSegment, point Vector3) Vector3 {
	return s.PointAt(LineSegmentParameter(s, point))
}

// PointOnBoundingBox clamps point into the box.
func PointOnBoundingBox(b geom.BoundingBox, point Vector3) Vector3 {
	return point.Clamp(b.Minimum, b.Maximum)
}

// PointOnBoundingSphere returns the closest point of the solid ball: point
// itself when inside, otherwise the surface point toward it.
func PointOnBoundingSphere(s geom.BoundingSphere, point Vector3) Vector3 {
	d := point.Sub(s.Center)
	l := d.Magnitude()
	if l <= s.Radius {
		return point
	}
	return s.Center.Add(d.Scale(s.Radius / l))
}

// PointOnBoundingSphereSurface returns the closest point on the sphere's
// surface, or Center+Radius*X when point is the center.
func PointOnBoundingSphereSurface(s geom.BoundingSphere, point Vector3) Vector3 {
	d := point.Sub(s.Center).Normalize()
	if d == (Vector3{}) {
		d = geom.Vector3UnitX
	}
	return s.Center.Add(d.Scale(s.Radius))
}

// VectorOnVector projects v onto the direction of onto; a zero onto gives
// the zero vector.
func VectorOnVector(v, onto Vector3) Vector3 {
	oo := onto.MagnitudeSquared()
	if scalar.NearZero(oo) {
		return Vector3{}
	}
	return onto.Scale(v.Dot(onto) / oo)
}

// VectorOnPlane removes the component of v along the normal of a
// normalized plane.
func VectorOnPlane(p geom.Plane, v Vector3) Vector3 {
	return v.Sub(p.Normal().Scale(p.DotNormal(v)))
}

// LineOnLine returns the closest pair of points between two infinite
// lines. ok is false when they are parallel or either is degenerate.
func LineOnLine(a, b geom.Line) (pa, pb Vector3, ok bool) {
	s, t, ok := closestParameters(a.Point1, a.Direction(), b.Point1, b.Direction())
	if !ok {
		return Vector3{}, Vector3{}, false
	}
	return a.PointAt(s), b.PointAt(t), true
}

// closestParameters solves for s, t minimizing |(p1+s*d1) - (p2+t*d2)|.
func closestParameters(p1, d1, p2, d2 Vector3) (s, t Real, ok bool) {
	r := p1.Sub(p2)
	a, e := d1.Dot(d1), d2.Dot(d2)
	b, c, f := d1.Dot(d2), d1.Dot(r), d2.Dot(r)
	denom := a*e - b*b
	if scalar.NearZero(a) || scalar.NearZero(e) || scalar.NearZero(denom) {
		return 0, 0, false
	}
	s = (b*f - c*e) / denom
	t = (a*f - b*c) / denom
	return s, t, true
}

// LineSegmentOnLineSegment returns the closest pair of points between two
// segments, handling parallel and degenerate segments.
func LineSegmentOnLineSegment(a, b geom.LineSegment) (pa, pb Vector3) {
	d1, d2 := a.Direction(), b.Direction()
	r := a.End1.Sub(b.End1)
	aa, e, f := d1.Dot(d1), d2.Dot(d2), d2.Dot(r)
	var s, t Real
	switch {
	case scalar.NearZero(aa) && scalar.NearZero(e):
		return a.End1, b.End1
	case scalar.NearZero(aa):
		t = scalar.Saturate(f / e)
	default:
		c := d1.Dot(r)
		if scalar.NearZero(e) {
			s = scalar.Saturate(-c / aa)
			break
		}
		bb := d1.Dot(d2)
		denom := aa*e - bb*bb
		if !scalar.NearZero(denom) {
			s = scalar.Saturate((bb*f - c*e) / denom)
		}
		t = (bb*s + f) / e
		if t < 0 {
			t, s = 0, scalar.Saturate(-c/aa)
		} else if t > 1 {
			t, s = 1, scalar.Saturate((bb-c)/aa)
		}
	}
	return a.PointAt(s), b.PointAt(t)
}

// RayOnRay returns the closest pair of points between two rays, with both
// parameters kept non-negative. ok is false for parallel or degenerate
// rays.
func RayOnRay(a, b geom.Ray) (pa, pb Vector3, ok bool) {
	s, t, ok := closestParameters(a.Position, a.Direction, b.Position, b.Direction)
	if !ok {
		return Vector3{}, Vector3{}, false
	}
	if s < 0 || t < 0 {
		// The constrained minimum lies on one of the boundaries s=0 or t=0.
		pa1, pb1 := a.Position, PointOnRay(b, a.Position)
		pa2, pb2 := PointOnRay(a, b.Position), b.Position
		if pa1.DistanceSquared(pb1) <= pa2.DistanceSquared(pb2) {
			return pa1, pb1, true
		}
		return pa2, pb2, true
	}
	return a.PointAt(s), b.PointAt(t), true
}
