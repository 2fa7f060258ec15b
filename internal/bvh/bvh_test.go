package bvh

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lukaszgryglicki/kernel3d/internal/geom"
	"github.com/lukaszgryglicki/kernel3d/internal/intersect"
	"github.com/lukaszgryglicki/kernel3d/internal/scalar"
)

func box(x0, y0, z0, x1, y1, z1 Real) geom.BoundingBox {
	return geom.BoundingBox{Minimum: geom.Vector3{X: x0, Y: y0, Z: z0}, Maximum: geom.Vector3{X: x1, Y: y1, Z: z1}}
}

// row lays n unit boxes along +X with a gap of 2 between them.
func row(n int) []Item {
	items := make([]Item, n)
	for i := range items {
		x := Real(1 + 3*i)
		items[i] = Item{Bounds: box(x, 0, 0, x+1, 1, 1), ID: i}
	}
	return items
}

var alongX = geom.Ray{Position: geom.Vector3{X: 0, Y: 0.5, Z: 0.5}, Direction: geom.Vector3UnitX}

func TestBuildLeafAndInternalNodes(t *testing.T) {
	leaf := Build(row(MaxLeafSize))
	require.NotNil(t, leaf.root)
	assert.Len(t, leaf.root.items, MaxLeafSize)
	assert.Equal(t, 1, leaf.Depth())

	tree := Build(row(MaxLeafSize + 1))
	require.NotNil(t, tree.root)
	assert.Nil(t, tree.root.items)
	assert.NotNil(t, tree.root.left)
	assert.NotNil(t, tree.root.right)
	assert.Equal(t, MaxLeafSize+1, tree.Len())
}

func TestBounds(t *testing.T) {
	tree := Build(row(5))
	assert.Equal(t, box(1, 0, 0, 14, 1, 1), tree.Bounds())
	assert.Equal(t, 3, tree.Depth())
}

func TestBuildCopiesItems(t *testing.T) {
	items := row(4)
	items[0], items[3] = items[3], items[0]
	Build(items)
	assert.Equal(t, 3, items[0].ID)
}

func TestEmptyTree(t *testing.T) {
	tree := Build(nil)
	assert.Equal(t, 0, tree.Len())
	assert.Equal(t, 0, tree.Depth())
	assert.Equal(t, geom.BoundingBox{}, tree.Bounds())
	_, ok := tree.Raycast(alongX, scalar.Inf(1))
	assert.False(t, ok)
	assert.Empty(t, tree.Overlapping(box(-100, -100, -100, 100, 100, 100)))
}

func TestRaycastChoosesClosest(t *testing.T) {
	items := row(7)
	// reversed input must not change the answer
	for i, j := 0, len(items)-1; i < j; i, j = i+1, j-1 {
		items[i], items[j] = items[j], items[i]
	}
	tree := Build(items)
	h, ok := tree.Raycast(alongX, scalar.Inf(1))
	require.True(t, ok)
	assert.Equal(t, 0, h.ID)
	assert.Equal(t, Real(1), h.T)
	assert.Equal(t, geom.Vector3{X: 1, Y: 0.5, Z: 0.5}, h.Point)

	back := geom.Ray{Position: geom.Vector3{X: 30, Y: 0.5, Z: 0.5}, Direction: geom.Vector3UnitX.Neg()}
	h, ok = tree.Raycast(back, scalar.Inf(1))
	require.True(t, ok)
	assert.Equal(t, 6, h.ID)
	assert.Equal(t, Real(10), h.T)
}

func TestRaycastRespectsMaxT(t *testing.T) {
	tree := Build([]Item{{Bounds: box(5, 0, 0, 6, 1, 1), ID: 9}})
	_, ok := tree.Raycast(alongX, 2)
	assert.False(t, ok)
	h, ok := tree.Raycast(alongX, 5)
	require.True(t, ok)
	assert.Equal(t, 9, h.ID)
}

func TestRaycastInsideOrigin(t *testing.T) {
	tree := Build(append(row(4), Item{Bounds: box(-1, -1, -1, 1, 1, 1), ID: 42}))
	h, ok := tree.Raycast(geom.Ray{Direction: geom.Vector3UnitX}, scalar.Inf(1))
	require.True(t, ok)
	assert.Equal(t, 42, h.ID)
	assert.Equal(t, Real(0), h.T)
}

func TestRaycastMiss(t *testing.T) {
	tree := Build(row(6))
	_, ok := tree.Raycast(geom.Ray{Position: geom.Vector3{Y: 5}, Direction: geom.Vector3UnitX}, scalar.Inf(1))
	assert.False(t, ok)
}

func TestRaycastMatchesBruteForce(t *testing.T) {
	var items []Item
	id := 0
	for x := 0; x < 4; x++ {
		for y := 0; y < 4; y++ {
			for z := 0; z < 4; z++ {
				fx, fy, fz := Real(x)*2.5, Real(y)*2.5, Real(z)*2.5
				items = append(items, Item{Bounds: box(fx, fy, fz, fx+1, fy+1, fz+1), ID: id})
				id++
			}
		}
	}
	tree := Build(items)
	rays := []geom.Ray{
		geom.NewRay(geom.Vector3{X: -3, Y: -2, Z: -1}, geom.Vector3{X: 5, Y: 5, Z: 5}),
		geom.NewRay(geom.Vector3{X: 20, Y: 0.5, Z: 0.5}, geom.Vector3{X: 0, Y: 0.5, Z: 0.5}),
		geom.NewRay(geom.Vector3{X: 3, Y: 3, Z: 20}, geom.Vector3{X: 3.2, Y: 3.1, Z: 0}),
	}
	for _, r := range rays {
		want, wantOK := bruteForce(items, r)
		got, ok := tree.Raycast(r, scalar.Inf(1))
		require.Equal(t, wantOK, ok)
		if ok {
			assert.Equal(t, want, got.ID)
		}
	}
}

func bruteForce(items []Item, r geom.Ray) (int, bool) {
	best, bestT, found := 0, scalar.Inf(1), false
	for _, it := range items {
		if tt, ok := intersect.BoundingBoxWithRayDistance(it.Bounds, r); ok && tt < bestT {
			best, bestT, found = it.ID, tt, true
		}
	}
	return best, found
}

func TestOverlapping(t *testing.T) {
	tree := Build(row(6))
	assert.ElementsMatch(t, []int{1, 2}, tree.Overlapping(box(4.5, 0, 0, 7.5, 1, 1)))
	assert.ElementsMatch(t, []int{0}, tree.Overlapping(box(2, 0.5, 0.5, 3, 0.6, 0.6)))
	assert.Empty(t, tree.Overlapping(box(2.1, 0, 0, 3.9, 1, 1)))
	assert.Len(t, tree.Overlapping(tree.Bounds()), 6)
}
