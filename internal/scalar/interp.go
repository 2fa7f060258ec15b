package scalar

import "golang.org/x/exp/constraints"

// Pi and friends, typed as Real so they work in both precisions.
const (
	Pi      Real = 3.14159265358979323846264338327950288419716939937510582097494459
	TwoPi   Real = 2 * Pi
	HalfPi  Real = Pi / 2
	DegRad  Real = Pi / 180
	RadDeg  Real = 180 / Pi
	Epsilon Real = 1e-6
)

// Clamp limits v to [lo, hi].
func Clamp[T constraints.Ordered](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Saturate clamps v to [0, 1].
func Saturate(v Real) Real { return Clamp(v, 0, 1) }

// Sign returns -1, 0 or 1. NaN maps to 0.
func Sign(v Real) Real {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}

// Fraction returns the part of v above its floor, in [0, 1).
func Fraction(v Real) Real { return v - Floor(v) }

// Lerp blends a toward b by amount; amount is not clamped.
func Lerp(a, b, amount Real) Real { return a + (b-a)*amount }

// SmoothStep blends with a cubic ease; amount is clamped to [0, 1].
func SmoothStep(a, b, amount Real) Real {
	t := Saturate(amount)
	t = t * t * (3 - 2*t)
	return Lerp(a, b, t)
}

// Barycentric returns v1 + w2*(v2-v1) + w3*(v3-v1).
func Barycentric(v1, v2, v3, w2, w3 Real) Real {
	return v1 + w2*(v2-v1) + w3*(v3-v1)
}

// HermiteWeights returns the four cubic Hermite basis values at amount:
// start value, end value, start tangent, end tangent.
func HermiteWeights(amount Real) (h1, h2, h3, h4 Real) {
	s := amount
	s2 := s * s
	s3 := s2 * s
	h1 = 2*s3 - 3*s2 + 1
	h2 = -2*s3 + 3*s2
	h3 = s3 - 2*s2 + s
	h4 = s3 - s2
	return
}

// Hermite interpolates between v1 and v2 with tangents t1 and t2.
func Hermite(v1, t1, v2, t2, amount Real) Real {
	h1, h2, h3, h4 := HermiteWeights(amount)
	return v1*h1 + v2*h2 + t1*h3 + t2*h4
}

// CatmullRom interpolates between v2 and v3 using v1 and v4 as neighbours.
func CatmullRom(v1, v2, v3, v4, amount Real) Real {
	s := amount
	s2 := s * s
	s3 := s2 * s
	return 0.5 * (2*v2 +
		(v3-v1)*s +
		(2*v1-5*v2+4*v3-v4)*s2 +
		(3*v2-v1-3*v3+v4)*s3)
}

// IsFinite reports whether v is neither NaN nor infinite.
func IsFinite(v Real) bool { return !IsInf(v, 0) && !IsNaN(v) }

// Norm returns the Euclidean length of values, scaled by the largest
// component first so large finite inputs do not overflow.
func Norm(values ...Real) Real {
	var m Real
	for _, v := range values {
		if IsNaN(v) {
			return v
		}
		m = max(m, Abs(v))
	}
	if m == 0 || IsInf(m, 1) {
		return m
	}
	var sum Real
	for _, v := range values {
		s := v / m
		sum += s * s
	}
	return m * Sqrt(sum)
}
