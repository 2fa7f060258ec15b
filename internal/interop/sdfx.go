// Package interop converts kernel values to and from github.com/deadsy/sdfx.
package interop

import (
	"github.com/deadsy/sdfx/sdf"
	v2 "github.com/deadsy/sdfx/vec/v2"
	v3 "github.com/deadsy/sdfx/vec/v3"

	"github.com/lukaszgryglicki/kernel3d/internal/geom"
	"github.com/lukaszgryglicki/kernel3d/internal/scalar"
)

type Real = scalar.Real

func ToSdfxV3(v geom.Vector3) v3.Vec {
	return v3.Vec{X: float64(v.X), Y: float64(v.Y), Z: float64(v.Z)}
}

func FromSdfxV3(v v3.Vec) geom.Vector3 {
	return geom.Vector3{X: Real(v.X), Y: Real(v.Y), Z: Real(v.Z)}
}

func ToSdfxV2(v geom.Vector2) v2.Vec { return v2.Vec{X: float64(v.X), Y: float64(v.Y)} }

func FromSdfxV2(v v2.Vec) geom.Vector2 { return geom.Vector2{X: Real(v.X), Y: Real(v.Y)} }

func ToSdfxBox3(b geom.BoundingBox) sdf.Box3 {
	return sdf.Box3{Min: ToSdfxV3(b.Minimum), Max: ToSdfxV3(b.Maximum)}
}

func FromSdfxBox3(b sdf.Box3) geom.BoundingBox {
	return geom.BoundingBox{Minimum: FromSdfxV3(b.Min), Maximum: FromSdfxV3(b.Max)}
}

// FromSdfxM44 reads the affine part of m by pushing the origin and the unit
// axes through it. The bottom row of the result is always (0, 0, 0, 1).
func FromSdfxM44(m sdf.M44) geom.Matrix4 {
	t := FromSdfxV3(m.MulPosition(v3.Vec{}))
	col := func(axis v3.Vec) geom.Vector4 {
		return FromSdfxV3(m.MulPosition(axis)).Sub(t).Vector4(0)
	}
	return geom.Matrix4FromColumns(
		col(v3.Vec{X: 1}),
		col(v3.Vec{Y: 1}),
		col(v3.Vec{Z: 1}),
		t.Vector4(1),
	)
}

// ToSdfxM44 rebuilds an affine scale/rotate/translate matrix from sdfx's
// own constructors as T * Rz * Ry * Rx * S. It fails for projective
// matrices and for matrices with a zero axis scale. Mirrored matrices come
// back unmirrored.
func ToSdfxM44(m geom.Matrix4) (sdf.M44, bool) {
	if m.Row(3) != geom.Vector4UnitW {
		return sdf.Identity3d(), false
	}
	scale, rot, translation, ok := m.Decompose()
	if !ok {
		return sdf.Identity3d(), false
	}
	x, y, z := eulerZYX(geom.Matrix4FromQuaternion(rot))
	r := sdf.RotateZ(z).Mul(sdf.RotateY(y)).Mul(sdf.RotateX(x))
	return sdf.Translate3d(ToSdfxV3(translation)).Mul(r).Mul(sdf.Scale3d(ToSdfxV3(scale))), true
}

// eulerZYX returns the angles of R = Rz(z) * Ry(y) * Rx(x). Near
// y = ±90° only x + z is defined and z is taken as 0.
func eulerZYX(R geom.Matrix4) (x, y, z float64) {
	cy := float64(scalar.Hypot(R.M[0][0], R.M[1][0]))
	if cy < float64(scalar.Epsilon) {
		if R.M[2][0] < 0 {
			return float64(scalar.Atan2(R.M[0][1], R.M[1][1])), float64(scalar.HalfPi), 0
		}
		return float64(scalar.Atan2(-R.M[0][1], R.M[1][1])), -float64(scalar.HalfPi), 0
	}
	x = float64(scalar.Atan2(R.M[2][1], R.M[2][2]))
	y = float64(scalar.Atan2(-R.M[2][0], Real(cy)))
	z = float64(scalar.Atan2(R.M[1][0], R.M[0][0]))
	return x, y, z
}

// TransformWithSdfx maps point through m using sdfx's M44 arithmetic.
func TransformWithSdfx(m geom.Matrix4, point geom.Vector3) (geom.Vector3, bool) {
	sm, ok := ToSdfxM44(m)
	if !ok {
		return geom.Vector3{}, false
	}
	return FromSdfxV3(sm.MulPosition(ToSdfxV3(point))), true
}
