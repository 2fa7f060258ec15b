// Package distance computes separation between shapes. Every function is
// non-negative and returns exactly 0 when the shapes touch or overlap.
// Planes are expected to be normalized.
package distance

import (
	"github.com/lukaszgryglicki/kernel3d/internal/geom"
	"github.com/lukaszgryglicki/kernel3d/internal/project"
	"github.com/lukaszgryglicki/kernel3d/internal/scalar"
)

type (
	Real    = scalar.Real
	Vector3 = geom.Vector3
)

func PointToPoint(a, b Vector3) Real        { return a.Distance(b) }
func PointToPointSquared(a, b Vector3) Real { return a.DistanceSquared(b) }

// PointToPlane returns the unsigned distance from point to the plane.
func PointToPlane(p geom.Plane, point Vector3) Real { return scalar.Abs(p.DotCoordinate(point)) }

func PointToLine(l geom.Line, point Vector3) Real {
	return point.Distance(project.PointOnLine(l, point))
}

func PointToLineSegment(s geom.LineSegment, point Vector3) Real {
	return point.Distance(project.PointOnLineSegment(s, point))
}

func PointToRay(r geom.Ray, point Vector3) Real {
	return point.Distance(project.PointOnRay(r, point))
}

func PointToBoundingBox(b geom.BoundingBox, point Vector3) Real {
	return point.Distance(project.PointOnBoundingBox(b, point))
}

func PointToBoundingSphere(s geom.BoundingSphere, point Vector3) Real {
	return max(0, point.Distance(s.Center)-s.Radius)
}

// gap returns how far apart [lo1, hi1] and [lo2, hi2] are, 0 if they overlap.
func gap(lo1, hi1, lo2, hi2 Real) Real { return max(0, lo1-hi2, lo2-hi1) }

func BoundingBoxToBoundingBox(a, b geom.BoundingBox) Real {
	d := Vector3{
		gap(a.Minimum.X, a.Maximum.X, b.Minimum.X, b.Maximum.X),
		gap(a.Minimum.Y, a.Maximum.Y, b.Minimum.Y, b.Maximum.Y),
		gap(a.Minimum.Z, a.Maximum.Z, b.Minimum.Z, b.Maximum.Z),
	}
	return d.Magnitude()
}

func BoundingBoxToBoundingSphere(b geom.BoundingBox, s geom.BoundingSphere) Real {
	return max(0, PointToBoundingBox(b, s.Center)-s.Radius)
}

// boxPlaneRadius is the half-length of the box's projection onto the
// plane normal.
func boxPlaneRadius(b geom.BoundingBox, p geom.Plane) Real {
	e := b.Extents()
	return e.Dot(p.Normal().Abs())
}

func BoundingBoxToPlane(b geom.BoundingBox, p geom.Plane) Real {
	return max(0, PointToPlane(p, b.Center())-boxPlaneRadius(b, p))
}

func BoundingSphereToBoundingSphere(a, b geom.BoundingSphere) Real {
	return max(0, a.Center.Distance(b.Center)-a.Radius-b.Radius)
}

func BoundingSphereToLine(s geom.BoundingSphere, l geom.Line) Real {
	return max(0, PointToLine(l, s.Center)-s.Radius)
}

func BoundingSphereToLineSegment(s geom.BoundingSphere, l geom.LineSegment) Real {
	return max(0, PointToLineSegment(l, s.Center)-s.Radius)
}

func BoundingSphereToRay(s geom.BoundingSphere, r geom.Ray) Real {
	return max(0, PointToRay(r, s.Center)-s.Radius)
}

func BoundingSphereToPlane(s geom.BoundingSphere, p geom.Plane) Real {
	return max(0, PointToPlane(p, s.Center)-s.Radius)
}

// LineToLine returns the shortest distance between two infinite lines.
func LineToLine(a, b geom.Line) Real {
	pa, pb, ok := project.LineOnLine(a, b)
	if !ok {
		return PointToLine(b, a.Point1)
	}
	return pa.Distance(pb)
}

func LineSegmentToLineSegment(a, b geom.LineSegment) Real {
	pa, pb := project.LineSegmentOnLineSegment(a, b)
	return pa.Distance(pb)
}

// RayToRay returns the shortest distance between two rays.
func RayToRay(a, b geom.Ray) Real {
	pa, pb, ok := project.RayOnRay(a, b)
	if !ok {
		return min(PointToRay(b, a.Position), PointToRay(a, b.Position))
	}
	return pa.Distance(pb)
}

// LineToPlane is 0 unless the line runs parallel to the plane.
func LineToPlane(l geom.Line, p geom.Plane) Real {
	if !scalar.NearZero(p.DotNormal(l.Direction())) {
		return 0
	}
	return PointToPlane(p, l.Point1)
}

// LineSegmentToPlane is 0 when the ends straddle the plane, otherwise the
// distance of the nearer end.
func LineSegmentToPlane(s geom.LineSegment, p geom.Plane) Real {
	d1, d2 := p.DotCoordinate(s.End1), p.DotCoordinate(s.End2)
	if d1*d2 <= 0 {
		return 0
	}
	return min(scalar.Abs(d1), scalar.Abs(d2))
}

// RayToPlane is 0 when the ray reaches the plane, otherwise the distance of
// its origin.
func RayToPlane(r geom.Ray, p geom.Plane) Real {
	s := p.DotCoordinate(r.Position)
	if s == 0 || s*p.DotNormal(r.Direction) < 0 {
		return 0
	}
	return scalar.Abs(s)
}

// PlaneToPlane is 0 unless the planes are parallel.
func PlaneToPlane(a, b geom.Plane) Real {
	if !a.Normal().Cross(b.Normal()).IsZero() {
		return 0
	}
	a, b = a.Normalize(), b.Normalize()
	if a.Normal().Dot(b.Normal()) < 0 {
		b = b.Flip()
	}
	return scalar.Abs(a.D - b.D)
}
