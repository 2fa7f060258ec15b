package intersect

import "github.com/lukaszgryglicki/kernel3d/internal/geom"

func BoundingBoxContainsPoint(b geom.BoundingBox, point Vector3) geom.Containment {
	if BoundingBoxWithPoint(b, point) {
		return geom.Contains
	}
	return geom.Disjoint
}

// BoundingBoxContainsBoundingBox tells how box o sits relative to box b.
func BoundingBoxContainsBoundingBox(b, o geom.BoundingBox) geom.Containment {
	if !BoundingBoxWithBoundingBox(b, o) {
		return geom.Disjoint
	}
	if BoundingBoxWithPoint(b, o.Minimum) && BoundingBoxWithPoint(b, o.Maximum) {
		return geom.Contains
	}
	return geom.Intersects
}

func BoundingBoxContainsBoundingSphere(b geom.BoundingBox, s geom.BoundingSphere) geom.Containment {
	if !BoundingBoxWithBoundingSphere(b, s) {
		return geom.Disjoint
	}
	if BoundingBoxContainsBoundingBox(b, geom.BoundingBoxFromSphere(s)) == geom.Contains {
		return geom.Contains
	}
	return geom.Intersects
}

func BoundingSphereContainsPoint(s geom.BoundingSphere, point Vector3) geom.Containment {
	if BoundingSphereWithPoint(s, point) {
		return geom.Contains
	}
	return geom.Disjoint
}

// BoundingSphereContainsBoundingBox holds the box when all eight corners
// are inside.
func BoundingSphereContainsBoundingBox(s geom.BoundingSphere, b geom.BoundingBox) geom.Containment {
	if !BoundingBoxWithBoundingSphere(b, s) {
		return geom.Disjoint
	}
	for _, c := range b.Corners() {
		if !BoundingSphereWithPoint(s, c) {
			return geom.Intersects
		}
	}
	return geom.Contains
}

func BoundingSphereContainsBoundingSphere(s, o geom.BoundingSphere) geom.Containment {
	d := s.Center.Distance(o.Center)
	switch {
	case d > s.Radius+o.Radius:
		return geom.Disjoint
	case d+o.Radius <= s.Radius:
		return geom.Contains
	}
	return geom.Intersects
}
