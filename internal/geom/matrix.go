package geom

import (
	"encoding/xml"

	"github.com/lukaszgryglicki/kernel3d/internal/scalar"
)

// Matrix4 is a 4x4 matrix stored row-major. Vectors are columns (M * v),
// so the translation lives in column 3.
type Matrix4 struct {
	M [4][4]Real
}

var (
	Matrix4Zero     = Matrix4{}
	Matrix4Identity = Matrix4{M: [4][4]Real{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}}
	Matrix4NaN              = Matrix4Splat(scalar.NaN())
	Matrix4PositiveInfinity = Matrix4Splat(scalar.Inf(1))
	Matrix4NegativeInfinity = Matrix4Splat(scalar.Inf(-1))
)

// Matrix4Splat returns a matrix with all sixteen elements set to s.
func Matrix4Splat(s Real) Matrix4 {
	var R Matrix4
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			R.M[r][c] = s
		}
	}
	return R
}

// Matrix4FromRows builds a matrix from four row vectors.
func Matrix4FromRows(r0, r1, r2, r3 Vector4) Matrix4 {
	return Matrix4{M: [4][4]Real{r0.Components(), r1.Components(), r2.Components(), r3.Components()}}
}

// Matrix4FromColumns builds a matrix from four column vectors.
func Matrix4FromColumns(c0, c1, c2, c3 Vector4) Matrix4 {
	return Matrix4FromRows(c0, c1, c2, c3).Transpose()
}

func (A Matrix4) apply(f func(Real) Real) Matrix4 {
	var R Matrix4
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			R.M[r][c] = f(A.M[r][c])
		}
	}
	return R
}

func (A Matrix4) zip(B Matrix4, f func(a, b Real) Real) Matrix4 {
	var R Matrix4
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			R.M[r][c] = f(A.M[r][c], B.M[r][c])
		}
	}
	return R
}

func (A Matrix4) Add(B Matrix4) Matrix4 { return A.zip(B, func(a, b Real) Real { return a + b }) }
func (A Matrix4) Sub(B Matrix4) Matrix4 { return A.zip(B, func(a, b Real) Real { return a - b }) }

// MulElem multiplies elementwise.
func (A Matrix4) MulElem(B Matrix4) Matrix4 { return A.zip(B, func(a, b Real) Real { return a * b }) }

// DivElem divides elementwise.
func (A Matrix4) DivElem(B Matrix4) Matrix4 { return A.zip(B, func(a, b Real) Real { return a / b }) }

func (A Matrix4) Scale(s Real) Matrix4     { return A.apply(func(a Real) Real { return a * s }) }
func (A Matrix4) DivScalar(s Real) Matrix4 { return A.apply(func(a Real) Real { return a / s }) }

// RDiv divides s by every element.
func (A Matrix4) RDiv(s Real) Matrix4 { return A.apply(func(a Real) Real { return s / a }) }

func (A Matrix4) Neg() Matrix4 { return A.apply(func(a Real) Real { return -a }) }

// Mul returns the matrix product A * B; applied to a vector, B acts first.
func (A Matrix4) Mul(B Matrix4) Matrix4 {
	var R Matrix4
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			var sum Real
			for k := 0; k < 4; k++ {
				sum += A.M[r][k] * B.M[k][c]
			}
			R.M[r][c] = sum
		}
	}
	return R
}

// MulVector4 returns A * v.
func (A Matrix4) MulVector4(v Vector4) Vector4 {
	var out [4]Real
	in := v.Components()
	for r := 0; r < 4; r++ {
		out[r] = A.M[r][0]*in[0] + A.M[r][1]*in[1] + A.M[r][2]*in[2] + A.M[r][3]*in[3]
	}
	return Vector4{out[0], out[1], out[2], out[3]}
}

func (A Matrix4) Transpose() Matrix4 {
	var R Matrix4
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			R.M[r][c] = A.M[c][r]
		}
	}
	return R
}

func (A Matrix4) Trace() Real { return A.M[0][0] + A.M[1][1] + A.M[2][2] + A.M[3][3] }

// minors holds the 2x2 minors of the top two rows (b00..b05) and the
// bottom two rows (b06..b11).
type minors [12]Real

func (A Matrix4) minors() minors {
	a := &A.M
	return minors{
		a[0][0]*a[1][1] - a[0][1]*a[1][0],
		a[0][0]*a[1][2] - a[0][2]*a[1][0],
		a[0][0]*a[1][3] - a[0][3]*a[1][0],
		a[0][1]*a[1][2] - a[0][2]*a[1][1],
		a[0][1]*a[1][3] - a[0][3]*a[1][1],
		a[0][2]*a[1][3] - a[0][3]*a[1][2],
		a[2][0]*a[3][1] - a[2][1]*a[3][0],
		a[2][0]*a[3][2] - a[2][2]*a[3][0],
		a[2][0]*a[3][3] - a[2][3]*a[3][0],
		a[2][1]*a[3][2] - a[2][2]*a[3][1],
		a[2][1]*a[3][3] - a[2][3]*a[3][1],
		a[2][2]*a[3][3] - a[2][3]*a[3][2],
	}
}

func (b *minors) determinant() Real {
	return b[0]*b[11] - b[1]*b[10] + b[2]*b[9] + b[3]*b[8] - b[4]*b[7] + b[5]*b[6]
}

func (A Matrix4) Determinant() Real {
	b := A.minors()
	return b.determinant()
}

// IsInvertible reports whether the determinant is not near zero.
func (A Matrix4) IsInvertible() bool { return !scalar.NearZero(A.Determinant()) }

// Invert returns the inverse by cofactor expansion over 2x2 minors. A
// singular matrix yields NaN or infinite elements; check IsInvertible first
// when that matters.
func (A Matrix4) Invert() Matrix4 {
	a := &A.M
	b := A.minors()
	inv := 1 / b.determinant()
	var R Matrix4
	R.M[0][0] = (a[1][1]*b[11] - a[1][2]*b[10] + a[1][3]*b[9]) * inv
	R.M[0][1] = (a[0][2]*b[10] - a[0][1]*b[11] - a[0][3]*b[9]) * inv
	R.M[0][2] = (a[3][1]*b[5] - a[3][2]*b[4] + a[3][3]*b[3]) * inv
	R.M[0][3] = (a[2][2]*b[4] - a[2][1]*b[5] - a[2][3]*b[3]) * inv
	R.M[1][0] = (a[1][2]*b[8] - a[1][0]*b[11] - a[1][3]*b[7]) * inv
	R.M[1][1] = (a[0][0]*b[11] - a[0][2]*b[8] + a[0][3]*b[7]) * inv
	R.M[1][2] = (a[3][2]*b[2] - a[3][0]*b[5] - a[3][3]*b[1]) * inv
	R.M[1][3] = (a[2][0]*b[5] - a[2][2]*b[2] + a[2][3]*b[1]) * inv
	R.M[2][0] = (a[1][0]*b[10] - a[1][1]*b[8] + a[1][3]*b[6]) * inv
	R.M[2][1] = (a[0][1]*b[8] - a[0][0]*b[10] - a[0][3]*b[6]) * inv
	R.M[2][2] = (a[3][0]*b[4] - a[3][1]*b[2] + a[3][3]*b[0]) * inv
	R.M[2][3] = (a[2][1]*b[2] - a[2][0]*b[4] - a[2][3]*b[0]) * inv
	R.M[3][0] = (a[1][1]*b[7] - a[1][0]*b[9] - a[1][2]*b[6]) * inv
	R.M[3][1] = (a[0][0]*b[9] - a[0][1]*b[7] + a[0][2]*b[6]) * inv
	R.M[3][2] = (a[3][1]*b[1] - a[3][0]*b[3] - a[3][2]*b[0]) * inv
	R.M[3][3] = (a[2][0]*b[3] - a[2][1]*b[1] + a[2][2]*b[0]) * inv
	return R
}

// InvertRigid inverts a rotation+translation transform by transposing the
// rotation block and rotating the negated translation back.
func (A Matrix4) InvertRigid() Matrix4 {
	R := Matrix4Identity
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			R.M[r][c] = A.M[c][r]
		}
	}
	t := A.Translation()
	for r := 0; r < 3; r++ {
		R.M[r][3] = -(R.M[r][0]*t.X + R.M[r][1]*t.Y + R.M[r][2]*t.Z)
	}
	return R
}

// Decompose splits an affine transform into scale, rotation and
// translation. ok is false, with an identity rotation, when any axis scale
// is near zero. Mirrored (negative) scale is not detected.
func (A Matrix4) Decompose() (scale Vector3, rotation Quaternion, translation Vector3, ok bool) {
	translation = A.Translation()
	c0, c1, c2 := A.Column(0).Vector3(), A.Column(1).Vector3(), A.Column(2).Vector3()
	scale = Vector3{c0.Magnitude(), c1.Magnitude(), c2.Magnitude()}
	if scalar.NearZero(scale.X) || scalar.NearZero(scale.Y) || scalar.NearZero(scale.Z) {
		return scale, QuaternionIdentity, translation, false
	}
	R := Matrix4FromColumns(
		c0.DivScalar(scale.X).Vector4(0),
		c1.DivScalar(scale.Y).Vector4(0),
		c2.DivScalar(scale.Z).Vector4(0),
		Vector4UnitW,
	)
	return scale, QuaternionFromMatrix(R), translation, true
}

// Translation returns column 3 as a vector.
func (A Matrix4) Translation() Vector3 { return Vector3{A.M[0][3], A.M[1][3], A.M[2][3]} }

// Row returns row i; it panics unless 0 <= i < 4.
func (A Matrix4) Row(i int) Vector4 {
	if i < 0 || i > 3 {
		panic(indexPanic("Matrix4 row", i, 4))
	}
	r := A.M[i]
	return Vector4{r[0], r[1], r[2], r[3]}
}

// Column returns column i; it panics unless 0 <= i < 4.
func (A Matrix4) Column(i int) Vector4 {
	if i < 0 || i > 3 {
		panic(indexPanic("Matrix4 column", i, 4))
	}
	return Vector4{A.M[0][i], A.M[1][i], A.M[2][i], A.M[3][i]}
}

// At returns the element at row r, column c; it panics on a bad index.
func (A Matrix4) At(r, c int) Real {
	if r < 0 || r > 3 {
		panic(indexPanic("Matrix4 row", r, 4))
	}
	if c < 0 || c > 3 {
		panic(indexPanic("Matrix4 column", c, 4))
	}
	return A.M[r][c]
}

// WithRow returns a copy with row i replaced.
func (A Matrix4) WithRow(i int, v Vector4) Matrix4 {
	if i < 0 || i > 3 {
		panic(indexPanic("Matrix4 row", i, 4))
	}
	A.M[i] = v.Components()
	return A
}

// WithColumn returns a copy with column i replaced.
func (A Matrix4) WithColumn(i int, v Vector4) Matrix4 {
	if i < 0 || i > 3 {
		panic(indexPanic("Matrix4 column", i, 4))
	}
	A.M[0][i], A.M[1][i], A.M[2][i], A.M[3][i] = v.X, v.Y, v.Z, v.W
	return A
}

// Components returns the sixteen elements row by row.
func (A Matrix4) Components() [16]Real {
	var out [16]Real
	for r := 0; r < 4; r++ {
		copy(out[r*4:], A.M[r][:])
	}
	return out
}

func (A Matrix4) Abs() Matrix4      { return A.apply(scalar.Abs) }
func (A Matrix4) Floor() Matrix4    { return A.apply(scalar.Floor) }
func (A Matrix4) Ceiling() Matrix4  { return A.apply(scalar.Ceil) }
func (A Matrix4) Round() Matrix4    { return A.apply(scalar.Round) }
func (A Matrix4) Fraction() Matrix4 { return A.apply(scalar.Fraction) }
func (A Matrix4) Sign() Matrix4     { return A.apply(scalar.Sign) }

func (A Matrix4) Min(B Matrix4) Matrix4 { return A.zip(B, func(a, b Real) Real { return min(a, b) }) }
func (A Matrix4) Max(B Matrix4) Matrix4 { return A.zip(B, func(a, b Real) Real { return max(a, b) }) }

func (A Matrix4) Clamp(lo, hi Matrix4) Matrix4 { return A.Max(lo).Min(hi) }

func (A Matrix4) Lerp(B Matrix4, amount Real) Matrix4 {
	return A.zip(B, func(a, b Real) Real { return scalar.Lerp(a, b, amount) })
}

func (A Matrix4) SmoothStep(B Matrix4, amount Real) Matrix4 {
	return A.zip(B, func(a, b Real) Real { return scalar.SmoothStep(a, b, amount) })
}

func Matrix4Barycentric(m1, m2, m3 Matrix4, w2, w3 Real) Matrix4 {
	return m1.Add(m2.Sub(m1).Scale(w2)).Add(m3.Sub(m1).Scale(w3))
}

func Matrix4Hermite(m1, t1, m2, t2 Matrix4, amount Real) Matrix4 {
	h1, h2, h3, h4 := scalar.HermiteWeights(amount)
	return m1.Scale(h1).Add(m2.Scale(h2)).Add(t1.Scale(h3)).Add(t2.Scale(h4))
}

func Matrix4CatmullRom(m1, m2, m3, m4 Matrix4, amount Real) Matrix4 {
	var R Matrix4
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			R.M[r][c] = scalar.CatmullRom(m1.M[r][c], m2.M[r][c], m3.M[r][c], m4.M[r][c], amount)
		}
	}
	return R
}

func (A Matrix4) anyElem(f func(Real) bool) bool {
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			if f(A.M[r][c]) {
				return true
			}
		}
	}
	return false
}

func (A Matrix4) IsNaN() bool      { return A.anyElem(scalar.IsNaN) }
func (A Matrix4) IsInfinity() bool { return A.anyElem(func(v Real) bool { return scalar.IsInf(v, 0) }) }
func (A Matrix4) IsPositiveInfinity() bool {
	return A.anyElem(func(v Real) bool { return scalar.IsInf(v, 1) })
}
func (A Matrix4) IsNegativeInfinity() bool {
	return A.anyElem(func(v Real) bool { return scalar.IsInf(v, -1) })
}

// IsIdentity reports whether A is near the identity matrix.
func (A Matrix4) IsIdentity() bool { return A.Near(Matrix4Identity) }

// Near reports whether every element is near its counterpart.
func (A Matrix4) Near(B Matrix4) bool {
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			if !scalar.Near(A.M[r][c], B.M[r][c]) {
				return false
			}
		}
	}
	return true
}

func (A Matrix4) Hash() uint64 {
	c := A.Components()
	return scalar.Hash(c[:]...)
}

// String writes the sixteen elements row by row.
func (A Matrix4) String() string {
	c := A.Components()
	return scalar.FormatList(c[:]...)
}

func buildMatrix4(c []Real) Matrix4 {
	var R Matrix4
	for r := 0; r < 4; r++ {
		copy(R.M[r][:], c[r*4:r*4+4])
	}
	return R
}

// ParseMatrix4 parses sixteen elements row by row.
func ParseMatrix4(s string) (Matrix4, error) { return parseValues(s, 16, "matrix4", buildMatrix4) }

func TryParseMatrix4(s string) (Matrix4, bool) {
	m, err := ParseMatrix4(s)
	return m, err == nil
}

func (A Matrix4) MarshalText() ([]byte, error) { return []byte(A.String()), nil }

func (A *Matrix4) UnmarshalText(text []byte) error {
	r, err := unmarshalValues(text, 16, "matrix4", buildMatrix4)
	if err != nil {
		return err
	}
	*A = r
	return nil
}

func (A Matrix4) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	c := A.Components()
	return marshalXMLValues(e, start, c[:]...)
}

func (A *Matrix4) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	r, err := unmarshalXMLValues(d, start, 16, "matrix4", buildMatrix4)
	if err == nil {
		*A = r
	}
	return err
}
