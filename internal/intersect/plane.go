package intersect

import (
	"github.com/lukaszgryglicki/kernel3d/internal/geom"
	"github.com/lukaszgryglicki/kernel3d/internal/scalar"
)

// PlaneWithPoint classifies point against a normalized plane; points
// whose signed distance is near zero are Intersecting.
func PlaneWithPoint(p geom.Plane, point Vector3) geom.PlaneIntersection {
	s := p.DotCoordinate(point)
	if scalar.NearZero(s) {
		return geom.Intersecting
	}
	return classify(s, 0)
}

// planeParameter returns t where origin + t*dir crosses the plane, false
// when dir runs parallel to it.
func planeParameter(p geom.Plane, origin, dir Vector3) (Real, bool) {
	denom := p.DotNormal(dir)
	if scalar.NearZero(denom) {
		return 0, false
	}
	return -p.DotCoordinate(origin) / denom, true
}

// PlaneWithLine returns where the line crosses the plane.
func PlaneWithLine(p geom.Plane, l geom.Line) (Vector3, bool) {
	t, ok := planeParameter(p, l.Point1, l.Direction())
	if !ok {
		return Vector3{}, false
	}
	return l.PointAt(t), true
}

// PlaneWithLineSegment returns where the segment crosses the plane.
func PlaneWithLineSegment(p geom.Plane, s geom.LineSegment) (Vector3, bool) {
	t, ok := planeParameter(p, s.End1, s.Direction())
	if !ok || t < 0 || t > 1 {
		return Vector3{}, false
	}
	return s.PointAt(t), true
}

// PlaneWithRay reports whether the ray reaches the plane.
func PlaneWithRay(p geom.Plane, r geom.Ray) bool {
	_, ok := PlaneWithRayDistance(p, r)
	return ok
}

// PlaneWithRayDistance returns the ray parameter of the crossing.
func PlaneWithRayDistance(p geom.Plane, r geom.Ray) (Real, bool) {
	t, ok := planeParameter(p, r.Position, r.Direction)
	if !ok || t < 0 {
		return 0, false
	}
	return t, true
}

// PlaneWithRayPoint returns the crossing point.
func PlaneWithRayPoint(p geom.Plane, r geom.Ray) (Vector3, bool) {
	t, ok := PlaneWithRayDistance(p, r)
	if !ok {
		return Vector3{}, false
	}
	return r.PointAt(t), true
}

// PlaneWithPlane returns the line where two planes meet, with Point2 one
// unit from Point1 along the line. Parallel planes give false.
func PlaneWithPlane(a, b geom.Plane) (geom.Line, bool) {
	n1, n2 := a.Normal(), b.Normal()
	dir := n1.Cross(n2)
	dd := dir.MagnitudeSquared()
	if scalar.NearZero(dd) {
		return geom.Line{}, false
	}
	// n·x = -D on each plane.
	p := n2.Cross(dir).Scale(-a.D).Add(dir.Cross(n1).Scale(-b.D)).DivScalar(dd)
	return geom.Line{Point1: p, Point2: p.Add(dir.Normalize())}, true
}

// PlaneWithPlaneWithPlane returns the single point shared by three
// planes. It fails when the triple product of the normals is near zero,
// that is when any two are parallel or all three share a direction.
func PlaneWithPlaneWithPlane(p1, p2, p3 geom.Plane) (Vector3, bool) {
	n1, n2, n3 := p1.Normal(), p2.Normal(), p3.Normal()
	c23, c31, c12 := n2.Cross(n3), n3.Cross(n1), n1.Cross(n2)
	denom := n1.Dot(c23)
	if scalar.NearZero(denom) {
		return Vector3{}, false
	}
	p := c23.Scale(-p1.D).Add(c31.Scale(-p2.D)).Add(c12.Scale(-p3.D))
	return p.DivScalar(denom), true
}
