package query

import (
	"github.com/samber/lo"

	"github.com/lukaszgryglicki/kernel3d/internal/distance"
	"github.com/lukaszgryglicki/kernel3d/internal/geom"
	"github.com/lukaszgryglicki/kernel3d/internal/intersect"
	"github.com/lukaszgryglicki/kernel3d/internal/project"
)

type Vector3 = geom.Vector3

// symmetric tries f on (a, b) and then on (b, a).
func symmetric(a, b any, r *Result, f func(a, b any, r *Result) bool) bool {
	return f(a, b, r) || f(b, a, r)
}

func distanceOrdered(a, b any, r *Result) bool {
	var d Real
	switch a := a.(type) {
	case Vector3:
		switch b := b.(type) {
		case Vector3:
			d = distance.PointToPoint(a, b)
		case geom.Plane:
			d = distance.PointToPlane(b, a)
		case geom.Line:
			d = distance.PointToLine(b, a)
		case geom.LineSegment:
			d = distance.PointToLineSegment(b, a)
		case geom.Ray:
			d = distance.PointToRay(b, a)
		case geom.BoundingBox:
			d = distance.PointToBoundingBox(b, a)
		case geom.BoundingSphere:
			d = distance.PointToBoundingSphere(b, a)
		default:
			return false
		}
	case geom.BoundingBox:
		switch b := b.(type) {
		case geom.BoundingBox:
			d = distance.BoundingBoxToBoundingBox(a, b)
		case geom.BoundingSphere:
			d = distance.BoundingBoxToBoundingSphere(a, b)
		case geom.Plane:
			d = distance.BoundingBoxToPlane(a, b)
		default:
			return false
		}
	case geom.BoundingSphere:
		switch b := b.(type) {
		case geom.BoundingSphere:
			d = distance.BoundingSphereToBoundingSphere(a, b)
		case geom.Line:
			d = distance.BoundingSphereToLine(a, b)
		case geom.LineSegment:
			d = distance.BoundingSphereToLineSegment(a, b)
		case geom.Ray:
			d = distance.BoundingSphereToRay(a, b)
		case geom.Plane:
			d = distance.BoundingSphereToPlane(a, b)
		default:
			return false
		}
	case geom.Line:
		switch b := b.(type) {
		case geom.Line:
			d = distance.LineToLine(a, b)
		case geom.Plane:
			d = distance.LineToPlane(a, b)
		default:
			return false
		}
	case geom.LineSegment:
		switch b := b.(type) {
		case geom.LineSegment:
			d = distance.LineSegmentToLineSegment(a, b)
		case geom.Plane:
			d = distance.LineSegmentToPlane(a, b)
		default:
			return false
		}
	case geom.Ray:
		switch b := b.(type) {
		case geom.Ray:
			d = distance.RayToRay(a, b)
		case geom.Plane:
			d = distance.RayToPlane(a, b)
		default:
			return false
		}
	case geom.Plane:
		b, ok := b.(geom.Plane)
		if !ok {
			return false
		}
		d = distance.PlaneToPlane(a, b)
	default:
		return false
	}
	r.Distance = lo.ToPtr(d)
	return true
}

func (r *Result) hit(ok bool) { r.Hit = lo.ToPtr(ok) }

// points records a crossing; points are only kept on a hit.
func (r *Result) points(p1, p2 Vector3, ok bool) {
	r.hit(ok)
	if ok {
		r.Point, r.Point2 = lo.ToPtr(p1), lo.ToPtr(p2)
	}
}

func (r *Result) point(p Vector3, ok bool) {
	r.hit(ok)
	if ok {
		r.Point = lo.ToPtr(p)
	}
}

func (r *Result) param(t Real, ok bool) {
	if ok {
		r.Distance = lo.ToPtr(t)
	}
}

func (r *Result) relation(s interface{ String() string }) { r.Relation = s.String() }

func intersectOrdered(a, b any, r *Result) bool {
	switch a := a.(type) {
	case geom.BoundingBox:
		switch b := b.(type) {
		case Vector3:
			r.hit(intersect.BoundingBoxWithPoint(a, b))
		case geom.BoundingBox:
			v, ok := intersect.BoundingBoxWithBoundingBoxVolume(a, b)
			r.points(v.Minimum, v.Maximum, ok)
		case geom.BoundingSphere:
			r.hit(intersect.BoundingBoxWithBoundingSphere(a, b))
		case geom.Ray:
			t, ok := intersect.BoundingBoxWithRayDistance(a, b)
			r.hit(ok)
			r.param(t, ok)
			if p1, p2, ok := intersect.BoundingBoxWithRayPoints(a, b); ok {
				r.points(p1, p2, ok)
			}
		case geom.Line:
			r.points(intersect.BoundingBoxWithLinePoints(a, b))
		case geom.LineSegment:
			r.hit(intersect.BoundingBoxWithLineSegment(a, b))
		case geom.Plane:
			rel := intersect.BoundingBoxWithPlane(a, b)
			r.hit(rel == geom.Intersecting)
			r.relation(rel)
		default:
			return false
		}
	case geom.BoundingSphere:
		switch b := b.(type) {
		case Vector3:
			r.hit(intersect.BoundingSphereWithPoint(a, b))
		case geom.BoundingSphere:
			v, ok := intersect.BoundingSphereWithBoundingSphereVolume(a, b)
			r.point(v.Center, ok)
			if ok {
				r.Radius = lo.ToPtr(v.Radius)
			}
		case geom.Ray:
			t, ok := intersect.BoundingSphereWithRayDistance(a, b)
			r.param(t, ok)
			r.points(intersect.BoundingSphereWithRayPoints(a, b))
		case geom.Line:
			r.points(intersect.BoundingSphereWithLinePoints(a, b))
		case geom.LineSegment:
			r.hit(intersect.BoundingSphereWithLineSegment(a, b))
		case geom.Plane:
			rel := intersect.BoundingSphereWithPlane(a, b)
			r.hit(rel == geom.Intersecting)
			r.relation(rel)
		default:
			return false
		}
	case geom.Plane:
		switch b := b.(type) {
		case Vector3:
			rel := intersect.PlaneWithPoint(a, b)
			r.hit(rel == geom.Intersecting)
			r.relation(rel)
		case geom.Line:
			r.point(intersect.PlaneWithLine(a, b))
		case geom.LineSegment:
			r.point(intersect.PlaneWithLineSegment(a, b))
		case geom.Ray:
			t, ok := intersect.PlaneWithRayDistance(a, b)
			r.param(t, ok)
			r.point(intersect.PlaneWithRayPoint(a, b))
		case geom.Plane:
			l, ok := intersect.PlaneWithPlane(a, b)
			r.points(l.Point1, l.Point2, ok)
		default:
			return false
		}
	case geom.Line:
		b, ok := b.(geom.Line)
		if !ok {
			return false
		}
		r.point(intersect.LineWithLine(a, b))
	case geom.LineSegment:
		b, ok := b.(geom.LineSegment)
		if !ok {
			return false
		}
		r.point(intersect.LineSegmentWithLineSegment(a, b))
	case geom.Ray:
		switch b := b.(type) {
		case geom.Ray:
			r.point(intersect.RayWithRay(a, b))
		case Vector3:
			r.hit(intersect.RayWithPoint(a, b))
		default:
			return false
		}
	default:
		return false
	}
	return true
}

// projectOnto projects a point onto a shape, or finds the closest points of
// two linear shapes of the same kind.
func projectOnto(a, b any, r *Result) bool {
	switch a := a.(type) {
	case Vector3:
		var p Vector3
		switch b := b.(type) {
		case geom.Plane:
			p = project.PointOnPlane(b, a)
		case geom.Line:
			p = project.PointOnLine(b, a)
		case geom.LineSegment:
			p = project.PointOnLineSegment(b, a)
		case geom.Ray:
			p = project.PointOnRay(b, a)
		case geom.BoundingBox:
			p = project.PointOnBoundingBox(b, a)
		case geom.BoundingSphere:
			p = project.PointOnBoundingSphere(b, a)
		default:
			return false
		}
		r.point(p, true)
	case geom.Line:
		b, ok := b.(geom.Line)
		if !ok {
			return false
		}
		r.points(project.LineOnLine(a, b))
	case geom.LineSegment:
		b, ok := b.(geom.LineSegment)
		if !ok {
			return false
		}
		pa, pb := project.LineSegmentOnLineSegment(a, b)
		r.points(pa, pb, true)
	case geom.Ray:
		b, ok := b.(geom.Ray)
		if !ok {
			return false
		}
		r.points(project.RayOnRay(a, b))
	default:
		return false
	}
	return true
}

func containsOrdered(a, b any, r *Result) bool {
	var c geom.Containment
	switch a := a.(type) {
	case geom.BoundingBox:
		switch b := b.(type) {
		case Vector3:
			c = intersect.BoundingBoxContainsPoint(a, b)
		case geom.BoundingBox:
			c = intersect.BoundingBoxContainsBoundingBox(a, b)
		case geom.BoundingSphere:
			c = intersect.BoundingBoxContainsBoundingSphere(a, b)
		default:
			return false
		}
	case geom.BoundingSphere:
		switch b := b.(type) {
		case Vector3:
			c = intersect.BoundingSphereContainsPoint(a, b)
		case geom.BoundingBox:
			c = intersect.BoundingSphereContainsBoundingBox(a, b)
		case geom.BoundingSphere:
			c = intersect.BoundingSphereContainsBoundingSphere(a, b)
		default:
			return false
		}
	default:
		return false
	}
	r.hit(c == geom.Contains)
	r.relation(c)
	return true
}
