// Package intersect answers whether shapes meet and, where it makes sense,
// where. Functions never fail loudly: a miss or a degenerate input (zero
// direction, parallel planes, coincident points) returns false together
// with zero values for every other result.
//
// Planes are expected to be normalized. Boxes are expected to satisfy
// Minimum <= Maximum.
package intersect

import (
	"github.com/lukaszgryglicki/kernel3d/internal/geom"
	"github.com/lukaszgryglicki/kernel3d/internal/scalar"
)

type (
	Real    = scalar.Real
	Vector3 = geom.Vector3
)

// pointTolerance is the absolute distance under which two computed points
// count as the same point.
const pointTolerance = scalar.Epsilon
