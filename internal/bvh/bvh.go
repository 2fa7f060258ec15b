// Package bvh builds a median-split bounding volume hierarchy over boxes.
package bvh

import (
	"sort"

	"github.com/lukaszgryglicki/kernel3d/internal/geom"
	"github.com/lukaszgryglicki/kernel3d/internal/intersect"
	"github.com/lukaszgryglicki/kernel3d/internal/scalar"
)

type Real = scalar.Real

// MaxLeafSize is the largest number of items kept in one leaf.
const MaxLeafSize = 2

// Item is a box tagged with a caller-chosen id.
type Item struct {
	Bounds geom.BoundingBox
	ID     int
}

// Hit is the nearest item a ray enters.
type Hit struct {
	ID    int
	T     Real
	Point geom.Vector3
}

type node struct {
	bounds      geom.BoundingBox
	left, right *node
	items       []Item // non-nil => leaf
}

// Tree is immutable once built and safe for concurrent readers.
type Tree struct {
	root *node
	n    int
}

// Build copies items and splits them recursively at the centroid median of
// the axis with the widest centroid spread.
func Build(items []Item) *Tree {
	t := &Tree{n: len(items)}
	if len(items) == 0 {
		return t
	}
	own := make([]Item, len(items))
	copy(own, items)
	t.root = build(own)
	return t
}

func build(items []Item) *node {
	n := len(items)
	bounds := items[0].Bounds
	for i := 1; i < n; i++ {
		bounds = bounds.Merge(items[i].Bounds)
	}
	if n <= MaxLeafSize {
		return &node{bounds: bounds, items: items}
	}

	cb := geom.BoundingBoxEmpty
	for i := range items {
		cb = cb.MergePoint(items[i].Bounds.Center())
	}
	axis := widest(cb.Size())
	// All centroids coincide: fall back to the longest extent.
	if cb.Size().Component(axis) <= 0 {
		axis = widest(bounds.Size())
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Bounds.Center().Component(axis) < items[j].Bounds.Center().Component(axis)
	})
	mid := n / 2
	return &node{bounds: bounds, left: build(items[:mid]), right: build(items[mid:])}
}

func widest(v geom.Vector3) int {
	axis := 0
	if v.Y > v.X {
		axis = 1
	}
	if v.Z > v.Component(axis) {
		axis = 2
	}
	return axis
}

// Len returns the number of items.
func (t *Tree) Len() int { return t.n }

// Bounds returns the box around every item, the zero box for an empty tree.
func (t *Tree) Bounds() geom.BoundingBox {
	if t.root == nil {
		return geom.BoundingBox{}
	}
	return t.root.bounds
}

// Depth returns the number of levels, 0 for an empty tree.
func (t *Tree) Depth() int { return depth(t.root) }

func depth(n *node) int {
	if n == nil {
		return 0
	}
	return 1 + max(depth(n.left), depth(n.right))
}

// Raycast returns the item whose box the ray enters first, considering
// entries at parameters up to maxT. A ray starting inside a box hits it at 0.
func (t *Tree) Raycast(r geom.Ray, maxT Real) (Hit, bool) {
	if t.root == nil {
		return Hit{}, false
	}
	slab := intersect.NewRaySlab(r.Position, r.Direction)
	enter := func(b geom.BoundingBox) (Real, bool) {
		near, _, ok := slab.Interval(b, 0, maxT)
		return near, ok
	}

	best := Hit{T: maxT}
	found := false
	type entry struct {
		n    *node
		tmin Real
	}
	t0, ok := enter(t.root.bounds)
	if !ok {
		return Hit{}, false
	}
	stack := []entry{{t.root, t0}}
	for len(stack) > 0 {
		e := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if found && e.tmin > best.T {
			continue
		}

		if e.n.items != nil {
			for _, it := range e.n.items {
				if tt, ok := enter(it.Bounds); ok && (!found || tt < best.T || (tt == best.T && it.ID < best.ID)) {
					best = Hit{ID: it.ID, T: tt}
					found = true
				}
			}
			continue
		}

		// push far first so near is processed next
		lT, lOK := enter(e.n.left.bounds)
		rT, rOK := enter(e.n.right.bounds)
		switch {
		case lOK && rOK:
			if lT < rT {
				stack = append(stack, entry{e.n.right, rT}, entry{e.n.left, lT})
			} else {
				stack = append(stack, entry{e.n.left, lT}, entry{e.n.right, rT})
			}
		case lOK:
			stack = append(stack, entry{e.n.left, lT})
		case rOK:
			stack = append(stack, entry{e.n.right, rT})
		}
	}
	if !found {
		return Hit{}, false
	}
	best.Point = r.PointAt(best.T)
	return best, true
}

// Overlapping returns the ids of items whose boxes overlap or touch box, in
// tree order.
func (t *Tree) Overlapping(box geom.BoundingBox) []int {
	var out []int
	if t.root == nil {
		return out
	}
	stack := []*node{t.root}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !intersect.BoundingBoxWithBoundingBox(n.bounds, box) {
			continue
		}
		if n.items != nil {
			for _, it := range n.items {
				if intersect.BoundingBoxWithBoundingBox(it.Bounds, box) {
					out = append(out, it.ID)
				}
			}
			continue
		}
		stack = append(stack, n.right, n.left)
	}
	return out
}
