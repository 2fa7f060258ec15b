package distance

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lukaszgryglicki/kernel3d/internal/geom"
)

const tol = 1e-5

var (
	unitBox    = geom.BoundingBox{Minimum: Vector3{0, 0, 0}, Maximum: Vector3{1, 1, 1}}
	unitSphere = geom.BoundingSphere{Center: Vector3{0, 0, 0}, Radius: 1}
	groundY    = geom.NewPlane(geom.Vector3UnitY, 0)
)

func TestSphereToSphere(t *testing.T) {
	a := geom.BoundingSphere{Center: Vector3{0, 0, 0}, Radius: 1}
	b := geom.BoundingSphere{Center: Vector3{3, 0, 0}, Radius: 1}
	assert.Equal(t, Real(1), BoundingSphereToBoundingSphere(a, b))
	assert.Equal(t, Real(1), BoundingSphereToBoundingSphere(b, a))
	assert.Equal(t, Real(0), BoundingSphereToBoundingSphere(a, geom.BoundingSphere{Center: Vector3{1.5, 0, 0}, Radius: 1}))
}

func TestPointDistances(t *testing.T) {
	p := Vector3{3, 4, 0}
	assert.Equal(t, Real(5), PointToPoint(Vector3{}, p))
	assert.Equal(t, Real(25), PointToPointSquared(Vector3{}, p))
	assert.Equal(t, Real(4), PointToPlane(groundY, p))
	assert.Equal(t, Real(4), PointToPlane(groundY, Vector3{3, -4, 0}))
	assert.Equal(t, Real(4), PointToLine(geom.Line{Point1: Vector3{}, Point2: geom.Vector3UnitX}, p))
	assert.Equal(t, Real(5), PointToRay(geom.Ray{Direction: geom.Vector3UnitX.Neg()}, p))
	assert.InDelta(t, 4.4721359, PointToLineSegment(geom.LineSegment{End2: geom.Vector3UnitX}, p), tol)
	assert.InDelta(t, 3.6055512, PointToBoundingBox(unitBox, p), tol)
	assert.Equal(t, Real(4), PointToBoundingSphere(unitSphere, p))
	assert.Equal(t, Real(0), PointToBoundingSphere(unitSphere, Vector3{0.5, 0, 0}))
	assert.Equal(t, Real(0), PointToBoundingBox(unitBox, Vector3{0.5, 0.5, 0.5}))
}

func TestBoxDistances(t *testing.T) {
	far := unitBox.Translate(Vector3{3, 4, 0})
	assert.InDelta(t, 3.6055512, BoundingBoxToBoundingBox(unitBox, far), tol)
	assert.Equal(t, Real(0), BoundingBoxToBoundingBox(unitBox, unitBox.Translate(Vector3{0.5, 0.5, 0.5})))
	assert.Equal(t, Real(0), BoundingBoxToBoundingBox(unitBox, unitBox.Translate(geom.Vector3UnitX)))

	s := geom.BoundingSphere{Center: Vector3{4, 0.5, 0.5}, Radius: 1}
	assert.Equal(t, Real(2), BoundingBoxToBoundingSphere(unitBox, s))

	above := geom.NewPlane(geom.Vector3UnitY, -3)
	assert.Equal(t, Real(2), BoundingBoxToPlane(unitBox, above))
	assert.Equal(t, Real(0), BoundingBoxToPlane(unitBox, geom.NewPlane(geom.Vector3UnitY, -0.5)))
}

func TestSphereToLinear(t *testing.T) {
	s := geom.BoundingSphere{Center: Vector3{0, 3, 0}, Radius: 1}
	line := geom.Line{Point1: Vector3{-1, 0, 0}, Point2: Vector3{1, 0, 0}}
	assert.Equal(t, Real(2), BoundingSphereToLine(s, line))
	assert.Equal(t, Real(2), BoundingSphereToLineSegment(s, geom.LineSegment{End1: line.Point1, End2: line.Point2}))
	assert.Equal(t, Real(2), BoundingSphereToRay(s, geom.Ray{Direction: geom.Vector3UnitX}))
	assert.Equal(t, Real(2), BoundingSphereToPlane(s, groundY))
	assert.Equal(t, Real(0), BoundingSphereToPlane(s, geom.NewPlane(geom.Vector3UnitY, -3.5)))
}

func TestLinearDistances(t *testing.T) {
	x := geom.Line{Point1: Vector3{0, 0, 0}, Point2: Vector3{1, 0, 0}}
	skew := geom.Line{Point1: Vector3{0, 0, 2}, Point2: Vector3{0, 1, 2}}
	parallel := geom.Line{Point1: Vector3{0, 3, 4}, Point2: Vector3{1, 3, 4}}
	assert.InDelta(t, 2, LineToLine(x, skew), tol)
	assert.InDelta(t, 5, LineToLine(x, parallel), tol)

	a := geom.LineSegment{End1: Vector3{0, 0, 0}, End2: Vector3{1, 0, 0}}
	b := geom.LineSegment{End1: Vector3{3, 0, 0}, End2: Vector3{5, 0, 0}}
	assert.InDelta(t, 2, LineSegmentToLineSegment(a, b), tol)

	ra := geom.Ray{Direction: geom.Vector3UnitX}
	rb := geom.Ray{Position: Vector3{-2, 1, 0}, Direction: geom.Vector3UnitX.Neg()}
	assert.InDelta(t, 2.2360679, RayToRay(ra, rb), tol)
}

func TestPlaneDistances(t *testing.T) {
	flat := geom.Line{Point1: Vector3{0, 2, 0}, Point2: Vector3{1, 2, 0}}
	assert.Equal(t, Real(2), LineToPlane(flat, groundY))
	assert.Equal(t, Real(0), LineToPlane(geom.Line{Point1: Vector3{0, 2, 0}, Point2: Vector3{0, 3, 1}}, groundY))

	up := geom.Ray{Position: Vector3{0, 2, 0}, Direction: geom.Vector3UnitY}
	down := geom.Ray{Position: Vector3{0, 2, 0}, Direction: geom.Vector3UnitY.Neg()}
	assert.Equal(t, Real(2), RayToPlane(up, groundY))
	assert.Equal(t, Real(0), RayToPlane(down, groundY))

	assert.Equal(t, Real(1), LineSegmentToPlane(geom.LineSegment{End1: Vector3{0, 1, 0}, End2: Vector3{0, 3, 0}}, groundY))
	assert.Equal(t, Real(0), LineSegmentToPlane(geom.LineSegment{End1: Vector3{0, -1, 0}, End2: Vector3{0, 3, 0}}, groundY))

	assert.Equal(t, Real(3), PlaneToPlane(groundY, geom.NewPlane(geom.Vector3UnitY, -3)))
	assert.Equal(t, Real(3), PlaneToPlane(groundY, geom.NewPlane(geom.Vector3UnitY.Neg(), 3)))
	assert.Equal(t, Real(0), PlaneToPlane(groundY, geom.NewPlane(geom.Vector3UnitX, 7)))
}

func TestIdentityAndNonNegativity(t *testing.T) {
	boxes := []geom.BoundingBox{unitBox, unitBox.Translate(Vector3{-5, 2, 9}), {Minimum: Vector3{-1, -1, -1}, Maximum: Vector3{3, 0, 2}}}
	spheres := []geom.BoundingSphere{unitSphere, {Center: Vector3{4, -2, 1}, Radius: 0.5}, {Center: Vector3{0.5, 0.5, 0.5}, Radius: 3}}
	for _, a := range boxes {
		assert.Equal(t, Real(0), BoundingBoxToBoundingBox(a, a))
		for _, b := range boxes {
			d := BoundingBoxToBoundingBox(a, b)
			assert.GreaterOrEqual(t, d, Real(0))
			assert.Equal(t, d, BoundingBoxToBoundingBox(b, a))
		}
		for _, s := range spheres {
			assert.GreaterOrEqual(t, BoundingBoxToBoundingSphere(a, s), Real(0))
		}
	}
	for _, a := range spheres {
		assert.Equal(t, Real(0), BoundingSphereToBoundingSphere(a, a))
		for _, b := range spheres {
			assert.GreaterOrEqual(t, BoundingSphereToBoundingSphere(a, b), Real(0))
			assert.Equal(t, BoundingSphereToBoundingSphere(a, b), BoundingSphereToBoundingSphere(b, a))
		}
	}
	seg := geom.LineSegment{End1: Vector3{1, 2, 3}, End2: Vector3{-4, 0, 1}}
	assert.Equal(t, Real(0), LineSegmentToLineSegment(seg, seg))
	assert.Equal(t, Real(0), PointToPoint(seg.End1, seg.End1))
}
