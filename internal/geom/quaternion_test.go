package geom

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lukaszgryglicki/kernel3d/internal/scalar"
)

func TestQuaternionHamilton(t *testing.T) {
	i := Quaternion{1, 0, 0, 0}
	j := Quaternion{0, 1, 0, 0}
	k := Quaternion{0, 0, 1, 0}
	assert.Equal(t, k, i.Mul(j))
	assert.Equal(t, i, j.Mul(k))
	assert.Equal(t, j, k.Mul(i))
	assert.Equal(t, k.Neg(), j.Mul(i))
	assert.Equal(t, QuaternionIdentity.Neg(), i.Mul(i))
}

func TestQuaternionComposition(t *testing.T) {
	a := QuaternionFromAxisAngle(Degrees(90), Vector3UnitZ)
	b := QuaternionFromAxisAngle(Degrees(90), Vector3UnitX)
	// a*b applies b first.
	v := Vector3UnitY.Rotate(a.Mul(b))
	assertVec3(t, Vector3UnitY.Rotate(b).Rotate(a), v)
	assertMat(t, Matrix4FromQuaternion(a).Mul(Matrix4FromQuaternion(b)), Matrix4FromQuaternion(a.Mul(b)))
}

func TestQuaternionInverse(t *testing.T) {
	q := QuaternionFromAxisAngle(Degrees(72), Vector3{1, -2, 0.5})
	assertVec4(t, QuaternionIdentity.Vector4(), q.Mul(q.Inverse()).Vector4())
	assertVec4(t, q.Conjugate().Vector4(), q.Inverse().Vector4())
	assertVec4(t, QuaternionIdentity.Vector4(), q.Div(q).Vector4())
	assert.Equal(t, QuaternionZero, QuaternionZero.Inverse())
}

func TestQuaternionNormalize(t *testing.T) {
	assert.Equal(t, QuaternionZero, QuaternionZero.Normalize())
	q := Quaternion{1, 2, 3, 4}.Normalize()
	assert.InDelta(t, 1, q.Magnitude(), tol)
	assert.True(t, q.IsNormalized())
	assertVec4(t, q.Vector4(), q.Normalize().Vector4())
}

func TestQuaternionAxisAngle(t *testing.T) {
	q := QuaternionFromAxisAngle(Degrees(120), Vector3{0, 3, 0})
	assertVec3(t, Vector3UnitY, q.Axis())
	assert.InDelta(t, 120, q.Angle().Degrees(), tol)
	assert.Equal(t, Vector3UnitX, QuaternionIdentity.Axis())
	assert.Equal(t, QuaternionIdentity, QuaternionFromAxisAngle(Degrees(30), Vector3Zero))
}

func TestQuaternionFromAngularVelocity(t *testing.T) {
	assert.Equal(t, QuaternionIdentity, QuaternionFromAngularVelocity(Vector3Zero))
	q := QuaternionFromAngularVelocity(Vector3{0, 0, scalar.HalfPi})
	assertSameRotation(t, QuaternionFromAxisAngle(Degrees(90), Vector3UnitZ), q)
}

func TestQuaternionFromEuler(t *testing.T) {
	yaw, pitch, roll := Degrees(30), Degrees(-20), Degrees(75)
	q := QuaternionFromEuler(yaw, pitch, roll)
	want := Matrix4RotateY(yaw).Mul(Matrix4RotateX(pitch)).Mul(Matrix4RotateZ(roll))
	assertMat(t, want, Matrix4FromQuaternion(q))
	assertMat(t, want, Matrix4FromEuler(yaw, pitch, roll))
}

func TestQuaternionBetween(t *testing.T) {
	cases := [][2]Vector3{
		{Vector3UnitX, Vector3UnitY},
		{{1, 2, 3}, {-3, 0, 1}},
		{Vector3UnitZ, Vector3UnitZ.Scale(4)},
		{Vector3UnitX, Vector3UnitX.Neg()},
		{Vector3UnitY, Vector3UnitY.Neg()},
	}
	for _, c := range cases {
		q := QuaternionBetween(c[0], c[1])
		assert.InDelta(t, 1, q.Magnitude(), tol)
		assertVec3(t, c[1].Normalize(), c[0].Normalize().Rotate(q))
	}
	assert.Equal(t, QuaternionIdentity, QuaternionBetween(Vector3Zero, Vector3UnitX))
}

func TestQuaternionSlerp(t *testing.T) {
	a := QuaternionIdentity
	b := QuaternionFromAxisAngle(Degrees(90), Vector3UnitZ)
	assertSameRotation(t, a, a.Slerp(b, 0))
	assertSameRotation(t, b, a.Slerp(b, 1))
	assertSameRotation(t, QuaternionFromAxisAngle(Degrees(45), Vector3UnitZ), a.Slerp(b, 0.5))
	// The shorter arc is taken even when b is given with the opposite sign.
	assertSameRotation(t, QuaternionFromAxisAngle(Degrees(45), Vector3UnitZ), a.Slerp(b.Neg(), 0.5))
	assertSameRotation(t, b, b.Slerp(b, 0.3))
	assertSameRotation(t, QuaternionFromAxisAngle(Degrees(45), Vector3UnitZ), a.Lerp(b, 0.5))
	assertSameRotation(t, b, QuaternionBarycentric(a, b, b, 1, 0))
}

func TestQuaternionComponents(t *testing.T) {
	q := Quaternion{1, 2, 3, 4}
	assert.Equal(t, Real(4), q.Component(3))
	assert.Equal(t, Quaternion{1, 2, 9, 4}, q.WithComponent(2, 9))
	assert.Panics(t, func() { q.Component(4) })
	assert.True(t, QuaternionNaN.IsNaN())
	assert.True(t, QuaternionPositiveInfinity.IsPositiveInfinity())
	assert.True(t, QuaternionIdentity.IsIdentity())
}
