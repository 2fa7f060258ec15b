package geom

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// tol covers both precisions; float32 builds lose about seven digits.
const tol = 1e-5

func assertVec3(t *testing.T, want, got Vector3) {
	t.Helper()
	assert.InDelta(t, want.X, got.X, tol, "X of %v", got)
	assert.InDelta(t, want.Y, got.Y, tol, "Y of %v", got)
	assert.InDelta(t, want.Z, got.Z, tol, "Z of %v", got)
}

func assertVec4(t *testing.T, want, got Vector4) {
	t.Helper()
	w, g := want.Components(), got.Components()
	assert.InDeltaSlice(t, w[:], g[:], tol, "got %v", got)
}

func assertMat(t *testing.T, want, got Matrix4) {
	t.Helper()
	w, g := want.Components(), got.Components()
	assert.InDeltaSlice(t, w[:], g[:], tol, "got %v", got)
}

// assertSameRotation accepts q or -q.
func assertSameRotation(t *testing.T, want, got Quaternion) {
	t.Helper()
	if want.Dot(got) < 0 {
		got = got.Neg()
	}
	assertVec4(t, want.Vector4(), got.Vector4())
}
