// Package geom holds the kernel's value types: angles, vectors, the 4x4
// matrix, quaternions and the geometric primitives (plane, line, segment,
// ray, bounding box, bounding sphere).
//
// Every type is a plain value: copy it, compare it, never share it.
// Matrices are row-major and act on column vectors (M * v); rotations
// are right-handed. Operations that would divide by a near-zero length
// return a zero value instead of NaN.
//
// Every type reads and writes a whitespace separated list of scalars as
// its text form (String, Parse*, MarshalText/UnmarshalText) and uses the
// same list as XML element content (MarshalXML/UnmarshalXML).
package geom

import "github.com/lukaszgryglicki/kernel3d/internal/scalar"

// Real is the kernel scalar; see scalar.Real for the precision switch.
type Real = scalar.Real
