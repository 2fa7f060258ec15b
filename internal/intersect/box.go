package intersect

import (
	"github.com/lukaszgryglicki/kernel3d/internal/geom"
	"github.com/lukaszgryglicki/kernel3d/internal/project"
)

// BoundingBoxWithPoint reports whether point lies in the box, faces
// included.
func BoundingBoxWithPoint(b geom.BoundingBox, point Vector3) bool {
	return point.X >= b.Minimum.X && point.X <= b.Maximum.X &&
		point.Y >= b.Minimum.Y && point.Y <= b.Maximum.Y &&
		point.Z >= b.Minimum.Z && point.Z <= b.Maximum.Z
}

// BoundingBoxWithBoundingBox reports whether two boxes overlap or touch.
func BoundingBoxWithBoundingBox(a, b geom.BoundingBox) bool {
	return a.Minimum.X <= b.Maximum.X && b.Minimum.X <= a.Maximum.X &&
		a.Minimum.Y <= b.Maximum.Y && b.Minimum.Y <= a.Maximum.Y &&
		a.Minimum.Z <= b.Maximum.Z && b.Minimum.Z <= a.Maximum.Z
}

// BoundingBoxWithBoundingSphere reports whether a box and a sphere
// overlap or touch.
func BoundingBoxWithBoundingSphere(b geom.BoundingBox, s geom.BoundingSphere) bool {
	c := project.PointOnBoundingBox(b, s.Center)
	return c.DistanceSquared(s.Center) <= s.Radius*s.Radius
}

// BoundingBoxWithPlane classifies the box against a normalized plane.
func BoundingBoxWithPlane(b geom.BoundingBox, p geom.Plane) geom.PlaneIntersection {
	r := b.Extents().Dot(p.Normal().Abs())
	return classify(p.DotCoordinate(b.Center()), r)
}

// BoundingBoxWithBoundingBoxVolume returns the overlap of two boxes.
func BoundingBoxWithBoundingBoxVolume(a, b geom.BoundingBox) (geom.BoundingBox, bool) {
	if !BoundingBoxWithBoundingBox(a, b) {
		return geom.BoundingBox{}, false
	}
	return geom.BoundingBox{Minimum: a.Minimum.Max(b.Minimum), Maximum: a.Maximum.Min(b.Maximum)}, true
}

// classify places a shape whose center lies at signed distance s from a
// plane and whose projected half-size is r.
func classify(s, r Real) geom.PlaneIntersection {
	switch {
	case s > r:
		return geom.Front
	case s < -r:
		return geom.Back
	}
	return geom.Intersecting
}
