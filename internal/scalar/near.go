package scalar

// MaxULPs is the distance, in units in the last place, below which two
// values compare as near. Branch decisions across the kernel depend on it,
// so it is fixed rather than configurable.
const MaxULPs = 10

// Near reports whether a and b are equal or nearly equal: their bit
// patterns, read as sign-magnitude integers remapped to a monotonic line,
// are fewer than MaxULPs apart. This is not a relative-epsilon test, so
// values close to zero are only near zero itself and the denormals next to it.
// NaN is near nothing.
func Near(a, b Real) bool {
	if a == b {
		return true
	}
	if IsNaN(a) || IsNaN(b) {
		return false
	}
	return ULPs(a, b) < MaxULPs
}

// NearZero reports whether a is near 0.
func NearZero(a Real) bool { return Near(a, 0) }

// ULPs returns the number of representable values between a and b.
// The result is meaningless for NaN inputs.
func ULPs(a, b Real) uint64 {
	ia, ib := ordered(a), ordered(b)
	if ia >= ib {
		return uint64(ia) - uint64(ib)
	}
	return uint64(ib) - uint64(ia)
}
