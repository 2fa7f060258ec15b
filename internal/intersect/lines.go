package intersect

import (
	"github.com/lukaszgryglicki/kernel3d/internal/distance"
	"github.com/lukaszgryglicki/kernel3d/internal/geom"
	"github.com/lukaszgryglicki/kernel3d/internal/project"
)

func samePoint(a, b Vector3) bool {
	return a.DistanceSquared(b) <= pointTolerance*pointTolerance
}

// LineWithLine returns the point where two infinite lines cross. Parallel,
// skew and degenerate lines give false.
func LineWithLine(a, b geom.Line) (Vector3, bool) {
	pa, pb, ok := project.LineOnLine(a, b)
	if !ok || !samePoint(pa, pb) {
		return Vector3{}, false
	}
	return pa.Lerp(pb, 0.5), true
}

// LineSegmentWithLineSegment returns the point where two segments cross.
func LineSegmentWithLineSegment(a, b geom.LineSegment) (Vector3, bool) {
	pa, pb := project.LineSegmentOnLineSegment(a, b)
	if !samePoint(pa, pb) {
		return Vector3{}, false
	}
	return pa.Lerp(pb, 0.5), true
}

// RayWithRay returns the point where two rays cross.
func RayWithRay(a, b geom.Ray) (Vector3, bool) {
	pa, pb, ok := project.RayOnRay(a, b)
	if !ok || !samePoint(pa, pb) {
		return Vector3{}, false
	}
	return pa.Lerp(pb, 0.5), true
}

// RayWithPoint reports whether point lies on the ray.
func RayWithPoint(r geom.Ray, point Vector3) bool {
	if r.Direction.IsZero() {
		return false
	}
	return distance.PointToRay(r, point) <= pointTolerance
}
