package intersect

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lukaszgryglicki/kernel3d/internal/geom"
)

const tol = 1e-5

func assertVec(t *testing.T, want, got Vector3) {
	t.Helper()
	assert.InDelta(t, want.X, got.X, tol, "X of %v", got)
	assert.InDelta(t, want.Y, got.Y, tol, "Y of %v", got)
	assert.InDelta(t, want.Z, got.Z, tol, "Z of %v", got)
}

var unitBox = geom.BoundingBox{Minimum: Vector3{0, 0, 0}, Maximum: Vector3{1, 1, 1}}

func TestBoundingBoxWithRayPoints(t *testing.T) {
	r := geom.Ray{Position: Vector3{0.5, 0.5, -1}, Direction: Vector3{0, 0, 1}}
	entry, exit, ok := BoundingBoxWithRayPoints(unitBox, r)
	require.True(t, ok)
	assert.Equal(t, Vector3{0.5, 0.5, 0}, entry)
	assert.Equal(t, Vector3{0.5, 0.5, 1}, exit)

	d, ok := BoundingBoxWithRayDistance(unitBox, r)
	require.True(t, ok)
	assert.Equal(t, Real(1), d)
	assert.True(t, BoundingBoxWithRay(unitBox, r))
}

func TestBoundingBoxWithRayCases(t *testing.T) {
	tests := []struct {
		name string
		ray  geom.Ray
		hit  bool
		dist Real
	}{
		{"diagonal", geom.NewRay(Vector3{-1, -1, -1}, Vector3{0, 0, 0}), true, 1.7320508},
		{"inside", geom.Ray{Position: Vector3{0.5, 0.5, 0.5}, Direction: geom.Vector3UnitX}, true, 0},
		{"pointing away", geom.Ray{Position: Vector3{0.5, 0.5, 2}, Direction: geom.Vector3UnitZ}, false, 0},
		{"parallel outside", geom.Ray{Position: Vector3{2, 0.5, -1}, Direction: geom.Vector3UnitZ}, false, 0},
		{"parallel on face", geom.Ray{Position: Vector3{1, 0.5, -1}, Direction: geom.Vector3UnitZ}, true, 1},
		{"miss", geom.Ray{Position: Vector3{-1, 3, 0.5}, Direction: Vector3{1, 1, 0}}, false, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, ok := BoundingBoxWithRayDistance(unitBox, tt.ray)
			assert.Equal(t, tt.hit, ok)
			assert.InDelta(t, tt.dist, d, tol)
			if !ok {
				entry, exit, ok := BoundingBoxWithRayPoints(unitBox, tt.ray)
				assert.False(t, ok)
				assert.Equal(t, Vector3{}, entry)
				assert.Equal(t, Vector3{}, exit)
			}
		})
	}
}

func TestBoundingBoxWithLinear(t *testing.T) {
	behind := geom.Line{Point1: Vector3{0.5, 0.5, 3}, Point2: Vector3{0.5, 0.5, 4}}
	assert.True(t, BoundingBoxWithLine(unitBox, behind))
	entry, exit, ok := BoundingBoxWithLinePoints(unitBox, behind)
	require.True(t, ok)
	assertVec(t, Vector3{0.5, 0.5, 0}, entry)
	assertVec(t, Vector3{0.5, 0.5, 1}, exit)
	assert.False(t, BoundingBoxWithLine(unitBox, geom.Line{Point1: Vector3{3, 0, 0}, Point2: Vector3{3, 1, 0}}))

	assert.True(t, BoundingBoxWithLineSegment(unitBox, geom.LineSegment{End1: Vector3{-1, 0.5, 0.5}, End2: Vector3{0.5, 0.5, 0.5}}))
	assert.False(t, BoundingBoxWithLineSegment(unitBox, geom.LineSegment{End1: Vector3{-3, 0.5, 0.5}, End2: Vector3{-1, 0.5, 0.5}}))
	assert.True(t, BoundingBoxWithLineSegment(unitBox, geom.LineSegment{End1: Vector3{0.2, 0.2, 0.2}, End2: Vector3{0.2, 0.2, 0.2}}))
}

func TestBoxPredicates(t *testing.T) {
	assert.True(t, BoundingBoxWithPoint(unitBox, Vector3{1, 1, 1}))
	assert.False(t, BoundingBoxWithPoint(unitBox, Vector3{1, 1, 1.01}))

	boxes := []geom.BoundingBox{
		unitBox,
		unitBox.Translate(Vector3{0.5, 0.5, 0.5}),
		unitBox.Translate(Vector3{1, 0, 0}),
		unitBox.Translate(Vector3{2, 0, 0}),
		{Minimum: Vector3{-5, -5, -5}, Maximum: Vector3{5, 5, 5}},
	}
	for _, a := range boxes {
		for _, b := range boxes {
			assert.Equal(t, BoundingBoxWithBoundingBox(a, b), BoundingBoxWithBoundingBox(b, a))
		}
	}
	assert.True(t, BoundingBoxWithBoundingBox(boxes[0], boxes[2]))
	assert.False(t, BoundingBoxWithBoundingBox(boxes[0], boxes[3]))

	v, ok := BoundingBoxWithBoundingBoxVolume(boxes[0], boxes[1])
	require.True(t, ok)
	assert.Equal(t, geom.BoundingBox{Minimum: Vector3{0.5, 0.5, 0.5}, Maximum: Vector3{1, 1, 1}}, v)

	assert.True(t, BoundingBoxWithBoundingSphere(unitBox, geom.BoundingSphere{Center: Vector3{2, 0.5, 0.5}, Radius: 1}))
	assert.False(t, BoundingBoxWithBoundingSphere(unitBox, geom.BoundingSphere{Center: Vector3{2, 2, 2}, Radius: 1}))

	assert.Equal(t, geom.Front, BoundingBoxWithPlane(unitBox, geom.NewPlane(geom.Vector3UnitY, 1)))
	assert.Equal(t, geom.Back, BoundingBoxWithPlane(unitBox, geom.NewPlane(geom.Vector3UnitY, -2)))
	assert.Equal(t, geom.Intersecting, BoundingBoxWithPlane(unitBox, geom.NewPlane(geom.Vector3UnitY, -0.5)))
}

func TestSphereWithSphere(t *testing.T) {
	a := geom.BoundingSphere{Center: Vector3{0, 0, 0}, Radius: 1}
	b := geom.BoundingSphere{Center: Vector3{3, 0, 0}, Radius: 1}
	assert.False(t, BoundingSphereWithBoundingSphere(a, b))
	assert.False(t, BoundingSphereWithBoundingSphere(b, a))
	v, ok := BoundingSphereWithBoundingSphereVolume(a, b)
	assert.False(t, ok)
	assert.Equal(t, geom.BoundingSphere{}, v)

	c := geom.BoundingSphere{Center: Vector3{1, 0, 0}, Radius: 1}
	assert.True(t, BoundingSphereWithBoundingSphere(a, c))
	v, ok = BoundingSphereWithBoundingSphereVolume(a, c)
	require.True(t, ok)
	assertVec(t, Vector3{0.5, 0, 0}, v.Center)
	assert.InDelta(t, 0.8660254, v.Radius, tol)

	small := geom.BoundingSphere{Center: Vector3{0.2, 0, 0}, Radius: 0.5}
	v, ok = BoundingSphereWithBoundingSphereVolume(a, small)
	require.True(t, ok)
	assert.Equal(t, small, v)
	v, _ = BoundingSphereWithBoundingSphereVolume(small, a)
	assert.Equal(t, small, v)

	touching := geom.BoundingSphere{Center: Vector3{2, 0, 0}, Radius: 1}
	v, ok = BoundingSphereWithBoundingSphereVolume(a, touching)
	require.True(t, ok)
	assertVec(t, Vector3{1, 0, 0}, v.Center)
	assert.InDelta(t, 0, v.Radius, tol)
}

func TestSphereWithRay(t *testing.T) {
	s := geom.BoundingSphere{Center: Vector3{0, 0, 5}, Radius: 1}
	r := geom.Ray{Direction: geom.Vector3UnitZ}
	d, ok := BoundingSphereWithRayDistance(s, r)
	require.True(t, ok)
	assert.InDelta(t, 4, d, tol)
	entry, exit, ok := BoundingSphereWithRayPoints(s, r)
	require.True(t, ok)
	assertVec(t, Vector3{0, 0, 4}, entry)
	assertVec(t, Vector3{0, 0, 6}, exit)

	d, ok = BoundingSphereWithRayDistance(s, geom.Ray{Position: Vector3{0, 0, 5}, Direction: geom.Vector3UnitX})
	require.True(t, ok)
	assert.Equal(t, Real(0), d)

	assert.False(t, BoundingSphereWithRay(s, geom.Ray{Direction: geom.Vector3UnitZ.Neg()}))
	assert.False(t, BoundingSphereWithRay(s, geom.Ray{Position: Vector3{2, 0, 0}, Direction: geom.Vector3UnitZ}))
	assert.False(t, BoundingSphereWithRay(s, geom.Ray{Position: Vector3{0, 0, 5}}))

	line := geom.Line{Point1: Vector3{0, 0, 10}, Point2: Vector3{0, 0, 11}}
	assert.True(t, BoundingSphereWithLine(s, line))
	entry, exit, ok = BoundingSphereWithLinePoints(s, line)
	require.True(t, ok)
	assertVec(t, Vector3{0, 0, 4}, entry)
	assertVec(t, Vector3{0, 0, 6}, exit)

	assert.True(t, BoundingSphereWithLineSegment(s, geom.LineSegment{End1: Vector3{0, 0, 0}, End2: Vector3{0, 0, 4.5}}))
	assert.False(t, BoundingSphereWithLineSegment(s, geom.LineSegment{End1: Vector3{0, 0, 0}, End2: Vector3{0, 0, 3}}))
	assert.True(t, BoundingSphereWithPoint(s, Vector3{0, 1, 5}))
	assert.Equal(t, geom.Intersecting, BoundingSphereWithPlane(s, geom.NewPlane(geom.Vector3UnitZ, -5.5)))
	assert.Equal(t, geom.Front, BoundingSphereWithPlane(s, geom.NewPlane(geom.Vector3UnitZ, 0)))
}

func TestPlaneQueries(t *testing.T) {
	ground := geom.NewPlane(geom.Vector3UnitY, 0)
	assert.Equal(t, geom.Front, PlaneWithPoint(ground, Vector3{0, 1, 0}))
	assert.Equal(t, geom.Back, PlaneWithPoint(ground, Vector3{0, -1, 0}))
	assert.Equal(t, geom.Intersecting, PlaneWithPoint(ground, Vector3{4, 0, 4}))

	p, ok := PlaneWithLine(ground, geom.Line{Point1: Vector3{1, 2, 0}, Point2: Vector3{1, 3, 0}})
	require.True(t, ok)
	assert.Equal(t, Vector3{1, 0, 0}, p)
	_, ok = PlaneWithLine(ground, geom.Line{Point1: Vector3{1, 2, 0}, Point2: Vector3{2, 2, 0}})
	assert.False(t, ok)

	_, ok = PlaneWithLineSegment(ground, geom.LineSegment{End1: Vector3{0, 2, 0}, End2: Vector3{0, 1, 0}})
	assert.False(t, ok)
	p, ok = PlaneWithLineSegment(ground, geom.LineSegment{End1: Vector3{0, 2, 0}, End2: Vector3{0, -2, 0}})
	require.True(t, ok)
	assert.Equal(t, Vector3{}, p)

	down := geom.Ray{Position: Vector3{3, 4, 0}, Direction: geom.Vector3UnitY.Neg()}
	d, ok := PlaneWithRayDistance(ground, down)
	require.True(t, ok)
	assert.Equal(t, Real(4), d)
	p, ok = PlaneWithRayPoint(ground, down)
	require.True(t, ok)
	assert.Equal(t, Vector3{3, 0, 0}, p)
	assert.False(t, PlaneWithRay(ground, geom.Ray{Position: Vector3{3, 4, 0}, Direction: geom.Vector3UnitY}))
	d, ok = PlaneWithRayDistance(ground, geom.Ray{Position: Vector3{3, 4, 0}, Direction: geom.Vector3UnitY})
	assert.False(t, ok)
	assert.Equal(t, Real(0), d)
}

func TestPlaneWithPlane(t *testing.T) {
	a := geom.NewPlane(geom.Vector3UnitX, -1) // x = 1
	b := geom.NewPlane(geom.Vector3UnitY, -2) // y = 2
	l, ok := PlaneWithPlane(a, b)
	require.True(t, ok)
	assertVec(t, Vector3{1, 2, 0}, l.Point1)
	assertVec(t, geom.Vector3UnitZ, l.Direction())

	_, ok = PlaneWithPlane(a, geom.NewPlane(geom.Vector3UnitX, 5))
	assert.False(t, ok)
}

func TestPlaneWithPlaneWithPlane(t *testing.T) {
	x := geom.NewPlane(geom.Vector3UnitX, -1)
	y := geom.NewPlane(geom.Vector3UnitY, -2)
	z := geom.NewPlane(geom.Vector3UnitZ, -3)
	p, ok := PlaneWithPlaneWithPlane(x, y, z)
	require.True(t, ok)
	assert.Equal(t, Vector3{1, 2, 3}, p)

	tilted := geom.PlaneFromPoints(Vector3{1, 0, 0}, Vector3{0, 1, 0}, Vector3{0, 0, 1})
	p, ok = PlaneWithPlaneWithPlane(tilted, geom.NewPlane(geom.Vector3UnitX, 0), geom.NewPlane(geom.Vector3UnitY, 0))
	require.True(t, ok)
	assertVec(t, Vector3{0, 0, 1}, p)

	p, ok = PlaneWithPlaneWithPlane(x, geom.NewPlane(geom.Vector3UnitX, 4), z)
	assert.False(t, ok)
	assert.Equal(t, Vector3{}, p)
}

func TestLinesCrossing(t *testing.T) {
	a := geom.Line{Point1: Vector3{-1, 0, 0}, Point2: Vector3{1, 0, 0}}
	b := geom.Line{Point1: Vector3{2, -1, 0}, Point2: Vector3{2, 1, 0}}
	p, ok := LineWithLine(a, b)
	require.True(t, ok)
	assertVec(t, Vector3{2, 0, 0}, p)

	_, ok = LineWithLine(a, geom.Line{Point1: Vector3{2, -1, 1}, Point2: Vector3{2, 1, 1}})
	assert.False(t, ok)

	_, ok = LineSegmentWithLineSegment(geom.LineSegment{End1: a.Point1, End2: a.Point2}, geom.LineSegment{End1: b.Point1, End2: b.Point2})
	assert.False(t, ok)
	p, ok = LineSegmentWithLineSegment(geom.LineSegment{End1: a.Point1, End2: a.Point2}, geom.LineSegment{End1: Vector3{0, -1, 0}, End2: Vector3{0, 1, 0}})
	require.True(t, ok)
	assertVec(t, Vector3{}, p)

	r1 := geom.Ray{Position: Vector3{-1, 0, 0}, Direction: geom.Vector3UnitX}
	r2 := geom.Ray{Position: Vector3{2, -1, 0}, Direction: geom.Vector3UnitY}
	p, ok = RayWithRay(r1, r2)
	require.True(t, ok)
	assertVec(t, Vector3{2, 0, 0}, p)
	_, ok = RayWithRay(r1, geom.Ray{Position: Vector3{2, 1, 0}, Direction: geom.Vector3UnitY})
	assert.False(t, ok)

	assert.True(t, RayWithPoint(r1, Vector3{5, 0, 0}))
	assert.False(t, RayWithPoint(r1, Vector3{-5, 0, 0}))
	assert.False(t, RayWithPoint(geom.Ray{}, Vector3{}))
}

func TestContainment(t *testing.T) {
	big := geom.BoundingBox{Minimum: Vector3{-5, -5, -5}, Maximum: Vector3{5, 5, 5}}
	assert.Equal(t, geom.Contains, BoundingBoxContainsBoundingBox(big, unitBox))
	assert.Equal(t, geom.Intersects, BoundingBoxContainsBoundingBox(unitBox, big))
	assert.Equal(t, geom.Disjoint, BoundingBoxContainsBoundingBox(unitBox, unitBox.Translate(Vector3{3, 0, 0})))
	assert.Equal(t, geom.Contains, BoundingBoxContainsPoint(unitBox, Vector3{0.5, 0.5, 0.5}))
	assert.Equal(t, geom.Disjoint, BoundingBoxContainsPoint(unitBox, Vector3{2, 0.5, 0.5}))

	s := geom.BoundingSphere{Center: Vector3{}, Radius: 2}
	assert.Equal(t, geom.Contains, BoundingBoxContainsBoundingSphere(big, s))
	assert.Equal(t, geom.Intersects, BoundingBoxContainsBoundingSphere(unitBox, s))
	assert.Equal(t, geom.Disjoint, BoundingBoxContainsBoundingSphere(unitBox.Translate(Vector3{4, 4, 4}), s))

	assert.Equal(t, geom.Contains, BoundingSphereContainsBoundingBox(s, unitBox))
	assert.Equal(t, geom.Intersects, BoundingSphereContainsBoundingBox(s, big))
	assert.Equal(t, geom.Disjoint, BoundingSphereContainsBoundingBox(s, unitBox.Translate(Vector3{4, 4, 4})))
	assert.Equal(t, geom.Contains, BoundingSphereContainsPoint(s, Vector3{0, 2, 0}))
	assert.Equal(t, geom.Disjoint, BoundingSphereContainsPoint(s, Vector3{0, 2.1, 0}))

	assert.Equal(t, geom.Contains, BoundingSphereContainsBoundingSphere(s, geom.BoundingSphere{Center: Vector3{1, 0, 0}, Radius: 1}))
	assert.Equal(t, geom.Intersects, BoundingSphereContainsBoundingSphere(s, geom.BoundingSphere{Center: Vector3{2, 0, 0}, Radius: 1}))
	assert.Equal(t, geom.Disjoint, BoundingSphereContainsBoundingSphere(s, geom.BoundingSphere{Center: Vector3{4, 0, 0}, Radius: 1}))
}
