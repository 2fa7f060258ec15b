package geom

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lukaszgryglicki/kernel3d/internal/scalar"
)

func TestAngleUnits(t *testing.T) {
	a := Degrees(180)
	assert.InDelta(t, scalar.Pi, a.Radians, tol)
	assert.InDelta(t, 180, a.Degrees(), tol)
	assert.InDelta(t, 0.5, a.Revolutions(), tol)
	assert.Equal(t, AngleFull, Revolutions(1))
	assert.Equal(t, AngleStraight, Radians(scalar.Pi))
}

func TestAngleArithmetic(t *testing.T) {
	a, b := Degrees(30), Degrees(60)
	assert.InDelta(t, 90, a.Add(b).Degrees(), tol)
	assert.InDelta(t, -30, a.Sub(b).Degrees(), tol)
	assert.InDelta(t, 0.5, a.Ratio(b), tol)
	assert.True(t, a.Less(b))
	assert.Equal(t, a, a.Min(b))
	assert.Equal(t, b, a.Max(b))
	assert.Equal(t, b, Degrees(90).Clamp(a, b))
	assert.InDelta(t, 45, a.Lerp(b, 0.5).Degrees(), tol)
	assert.InDelta(t, 30, Degrees(-30).Abs().Degrees(), tol)
}

func TestAngleWrap(t *testing.T) {
	cases := []struct{ in, want Real }{
		{0, 0},
		{190, -170},
		{-170, -170},
		{720, 0},
		{-450, -90},
	}
	// Wrapping goes through radians, so single precision drifts by a few
	// ulps of the input in degrees.
	delta := tol
	if scalar.BitSize == 32 {
		delta = 1e-3
	}
	for _, c := range cases {
		assert.InDelta(t, c.want, Degrees(c.in).Wrap().Degrees(), delta, "wrap %v", c.in)
	}
	assert.Equal(t, AngleStraight, AngleStraight.Wrap())
	assert.Equal(t, AngleStraight, AngleStraight.Neg().Wrap())
}

func TestAngleTrig(t *testing.T) {
	s, c := Degrees(30).SinCos()
	assert.InDelta(t, 0.5, s, tol)
	assert.InDelta(t, scalar.Sqrt(3)/2, c, tol)
	assert.InDelta(t, 1, Degrees(45).Tan(), tol)
	assert.InDelta(t, 90, Asin(1).Degrees(), tol)
	assert.InDelta(t, 180, Acos(-1).Degrees(), tol)
	assert.InDelta(t, 45, Atan(1).Degrees(), tol)
	assert.InDelta(t, -135, Atan2(-1, -1).Degrees(), tol)
}
