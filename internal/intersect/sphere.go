package intersect

import (
	"github.com/lukaszgryglicki/kernel3d/internal/distance"
	"github.com/lukaszgryglicki/kernel3d/internal/geom"
	"github.com/lukaszgryglicki/kernel3d/internal/scalar"
)

// BoundingSphereWithPoint reports whether point lies in the ball, surface
// included.
func BoundingSphereWithPoint(s geom.BoundingSphere, point Vector3) bool {
	return s.Center.DistanceSquared(point) <= s.Radius*s.Radius
}

// BoundingSphereWithBoundingSphere reports whether two balls overlap or
// touch.
func BoundingSphereWithBoundingSphere(a, b geom.BoundingSphere) bool {
	r := a.Radius + b.Radius
	return a.Center.DistanceSquared(b.Center) <= r*r
}

// BoundingSphereWithBoundingSphereVolume bounds the region two balls share.
// When one ball holds the other the smaller ball is returned. Otherwise the
// result is centered on the circle where the surfaces cross, with that
// circle's radius.
func BoundingSphereWithBoundingSphereVolume(a, b geom.BoundingSphere) (geom.BoundingSphere, bool) {
	diff := b.Center.Sub(a.Center)
	d := diff.Magnitude()
	small, big := a, b
	if small.Radius > big.Radius {
		small, big = big, small
	}
	if d+small.Radius <= big.Radius {
		return small, true
	}
	r1, r2 := a.Radius, b.Radius
	if d > r1+r2 {
		return geom.BoundingSphere{}, false
	}
	// Offset of the circle's plane from a along the center line, and the
	// circle radius from the four-term product (Heron's formula on the
	// triangle of the two centers and a point on the circle).
	off := (d*d + r1*r1 - r2*r2) / (2 * d)
	prod := (d + r1 + r2) * (-d + r1 + r2) * (d - r1 + r2) * (d + r1 - r2)
	h := scalar.Sqrt(max(0, prod)) / (2 * d)
	return geom.BoundingSphere{Center: a.Center.Add(diff.Scale(off / d)), Radius: h}, true
}

// BoundingSphereWithRay reports whether the ray hits the ball.
func BoundingSphereWithRay(s geom.BoundingSphere, r geom.Ray) bool {
	_, ok := BoundingSphereWithRayDistance(s, r)
	return ok
}

// sphereRay solves |origin + t*dir - center| = radius for t, keeping the
// part of the chord with t >= lo.
func sphereRay(s geom.BoundingSphere, origin, dir Vector3, lo Real) (t0, t1 Real, ok bool) {
	a := dir.MagnitudeSquared()
	if scalar.NearZero(a) {
		return 0, 0, false
	}
	m := origin.Sub(s.Center)
	b := m.Dot(dir)
	c := m.MagnitudeSquared() - s.Radius*s.Radius
	disc := b*b - a*c
	if disc < 0 {
		return 0, 0, false
	}
	sq := scalar.Sqrt(disc)
	t0, t1 = (-b-sq)/a, (-b+sq)/a
	if t1 < lo {
		return 0, 0, false
	}
	return max(t0, lo), t1, true
}

// BoundingSphereWithRayDistance returns the ray parameter where the ray
// enters the ball, 0 when it starts inside.
func BoundingSphereWithRayDistance(s geom.BoundingSphere, r geom.Ray) (Real, bool) {
	t0, _, ok := sphereRay(s, r.Position, r.Direction, 0)
	if !ok {
		return 0, false
	}
	return t0, true
}

// BoundingSphereWithRayPoints returns where the ray enters and leaves the
// ball.
func BoundingSphereWithRayPoints(s geom.BoundingSphere, r geom.Ray) (entry, exit Vector3, ok bool) {
	t0, t1, ok := sphereRay(s, r.Position, r.Direction, 0)
	if !ok {
		return Vector3{}, Vector3{}, false
	}
	return r.PointAt(t0), r.PointAt(t1), true
}

// BoundingSphereWithLine reports whether the infinite line meets the ball.
func BoundingSphereWithLine(s geom.BoundingSphere, l geom.Line) bool {
	return distance.PointToLine(l, s.Center) <= s.Radius
}

// BoundingSphereWithLinePoints returns where the line enters and leaves the
// ball, ordered along the line's direction.
func BoundingSphereWithLinePoints(s geom.BoundingSphere, l geom.Line) (entry, exit Vector3, ok bool) {
	t0, t1, ok := sphereRay(s, l.Point1, l.Direction(), scalar.Inf(-1))
	if !ok {
		return Vector3{}, Vector3{}, false
	}
	return l.PointAt(t0), l.PointAt(t1), true
}

// BoundingSphereWithLineSegment reports whether any part of the segment
// lies in the ball.
func BoundingSphereWithLineSegment(s geom.BoundingSphere, seg geom.LineSegment) bool {
	return distance.PointToLineSegment(seg, s.Center) <= s.Radius
}

// BoundingSphereWithPlane classifies the ball against a normalized plane.
func BoundingSphereWithPlane(s geom.BoundingSphere, p geom.Plane) geom.PlaneIntersection {
	return classify(p.DotCoordinate(s.Center), s.Radius)
}
