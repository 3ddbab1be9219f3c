package sbmath

import "strings"

// Mat4 is a 4x4 matrix stored as four rows. It multiplies column vectors:
// for a transform the upper 3x3 holds the basis in its columns and the
// fourth column holds the translation.
//
// | Xx Yx Zx Tx |
// | Xy Yy Zy Ty |
// | Xz Yz Zz Tz |
// | 0  0  0  1  |
type Mat4 [4]Vec4

var (
	Mat4Zero     = Mat4{}
	Mat4Identity = Mat4{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}
)

// NewMat4FromRotation builds a transform from a Mat3 rotation, as used by
// Mat3.MulVec, and a translation.
func NewMat4FromRotation(rotation Mat3, translation Vec3) Mat4 {
	return Mat4{
		{rotation[0].X, rotation[1].X, rotation[2].X, translation.X},
		{rotation[0].Y, rotation[1].Y, rotation[2].Y, translation.Y},
		{rotation[0].Z, rotation[1].Z, rotation[2].Z, translation.Z},
		{0, 0, 0, 1},
	}
}

// NewMat4Translation creates a translation matrix.
func NewMat4Translation(v Vec3) Mat4 {
	m := Mat4Identity
	m.SetTranslation(v)
	return m
}

// NewMat4Scale creates a scaling matrix.
func NewMat4Scale(v Vec3) Mat4 {
	return Mat4{
		{v.X, 0, 0, 0},
		{0, v.Y, 0, 0},
		{0, 0, v.Z, 0},
		{0, 0, 0, 1},
	}
}

// At returns the element at (row, col).
func (m Mat4) At(row, col int) float32 {
	return m[row].At(col)
}

// Translation extracts the translation component.
func (m Mat4) Translation() Vec3 {
	return Vec3{m[0].W, m[1].W, m[2].W}
}

// SetTranslation sets the translation component.
func (m *Mat4) SetTranslation(v Vec3) {
	m[0].W = v.X
	m[1].W = v.Y
	m[2].W = v.Z
}

// ToMat3 returns the rotation part in the Mat3 layout. It is the inverse of
// Mat3.ToMat4.
func (m Mat4) ToMat3() Mat3 {
	return Mat3{
		{m[0].X, m[1].X, m[2].X},
		{m[0].Y, m[1].Y, m[2].Y},
		{m[0].Z, m[1].Z, m[2].Z},
	}
}

func (m Mat4) Add(b Mat4) Mat4 {
	return Mat4{m[0].Add(b[0]), m[1].Add(b[1]), m[2].Add(b[2]), m[3].Add(b[3])}
}

func (m Mat4) Sub(b Mat4) Mat4 {
	return Mat4{m[0].Sub(b[0]), m[1].Sub(b[1]), m[2].Sub(b[2]), m[3].Sub(b[3])}
}

func (m Mat4) Neg() Mat4 {
	return Mat4{m[0].Neg(), m[1].Neg(), m[2].Neg(), m[3].Neg()}
}

func (m Mat4) Scale(s float32) Mat4 {
	return Mat4{m[0].Scale(s), m[1].Scale(s), m[2].Scale(s), m[3].Scale(s)}
}

// Mul multiplies two matrices: m * b. The result applies b first.
//
//nolint:st1016 // m*b naming convention is clearer for matrix multiplication
func (m Mat4) Mul(b Mat4) Mat4 {
	var dst Mat4
	for i := range 4 {
		for j := range 4 {
			var sum float32
			for k := range 4 {
				sum += m[i].At(k) * b[k].At(j)
			}
			dst[i].Set(j, sum)
		}
	}
	return dst
}

// TransposeMultiply returns transpose(m) * b.
func (m Mat4) TransposeMultiply(b Mat4) Mat4 {
	return m.Transpose().Mul(b)
}

// MulVec transforms a Vec4.
func (m Mat4) MulVec(v Vec4) Vec4 {
	return Vec4{m[0].Dot(v), m[1].Dot(v), m[2].Dot(v), m[3].Dot(v)}
}

// Vec4MulMat4 returns v * m, which equals m.MulVec(v).
func Vec4MulMat4(v Vec4, m Mat4) Vec4 {
	return m.MulVec(v)
}

// MulVec3 transforms a point (w=1) and divides by the resulting w. A
// resulting w of zero yields the origin.
func (m Mat4) MulVec3(v Vec3) Vec3 {
	p := V4FromV3(v, 1)
	s := m[3].Dot(p)
	if s == 0 {
		return Vec3{}
	}
	out := Vec3{m[0].Dot(p), m[1].Dot(p), m[2].Dot(p)}
	if s == 1 {
		return out
	}
	return out.Scale(1 / s)
}

// MulVec3Dir transforms a direction (w=0, no translation).
func (m Mat4) MulVec3Dir(v Vec3) Vec3 {
	d := V4FromV3(v, 0)
	return Vec3{m[0].Dot(d), m[1].Dot(d), m[2].Dot(d)}
}

// Compare reports whether m and b are exactly equal.
func (m Mat4) Compare(b Mat4) bool {
	return m == b
}

// CompareEpsilon reports whether every element is within epsilon.
func (m Mat4) CompareEpsilon(b Mat4, epsilon float32) bool {
	for i := range 4 {
		if !m[i].CompareEpsilon(b[i], epsilon) {
			return false
		}
	}
	return true
}

// IsIdentity reports whether m is within epsilon of the identity.
func (m Mat4) IsIdentity(epsilon float32) bool {
	return m.CompareEpsilon(Mat4Identity, epsilon)
}

// IsSymmetric reports whether m equals its transpose within epsilon.
func (m Mat4) IsSymmetric(epsilon float32) bool {
	for i := 1; i < 4; i++ {
		for j := range i {
			if Fabs(m.At(i, j)-m.At(j, i)) > epsilon {
				return false
			}
		}
	}
	return true
}

// IsDiagonal reports whether every off-diagonal element is within epsilon
// of zero.
func (m Mat4) IsDiagonal(epsilon float32) bool {
	for i := range 4 {
		for j := range 4 {
			if i != j && Fabs(m.At(i, j)) > epsilon {
				return false
			}
		}
	}
	return true
}

// IsRotated reports whether the upper 3x3 has any off-diagonal element.
func (m Mat4) IsRotated() bool {
	return m[0].Y != 0 || m[0].Z != 0 ||
		m[1].X != 0 || m[1].Z != 0 ||
		m[2].X != 0 || m[2].Y != 0
}

// ProjectVector returns the components of src along each row.
func (m Mat4) ProjectVector(src Vec4) Vec4 {
	return m.MulVec(src)
}

// UnprojectVector returns the sum of the rows weighted by src.
func (m Mat4) UnprojectVector(src Vec4) Vec4 {
	return m[0].Scale(src.X).
		Add(m[1].Scale(src.Y)).
		Add(m[2].Scale(src.Z)).
		Add(m[3].Scale(src.W))
}

// Trace returns the sum of the diagonal.
func (m Mat4) Trace() float32 {
	return m[0].X + m[1].Y + m[2].Z + m[3].W
}

// Transpose returns the transposed matrix.
func (m Mat4) Transpose() Mat4 {
	var t Mat4
	for i := range 4 {
		for j := range 4 {
			t[i].Set(j, m.At(j, i))
		}
	}
	return t
}

// TransposeSelf transposes m in place.
func (m *Mat4) TransposeSelf() {
	*m = m.Transpose()
}

// minors holds the 2x2 minors of the top two rows (s) and the bottom two
// rows (c) used by Laplace expansion.
type minors struct {
	s [6]float32
	c [6]float32
}

func (m *Mat4) minors() minors {
	var r minors
	r.s[0] = m[0].X*m[1].Y - m[1].X*m[0].Y
	r.s[1] = m[0].X*m[1].Z - m[1].X*m[0].Z
	r.s[2] = m[0].X*m[1].W - m[1].X*m[0].W
	r.s[3] = m[0].Y*m[1].Z - m[1].Y*m[0].Z
	r.s[4] = m[0].Y*m[1].W - m[1].Y*m[0].W
	r.s[5] = m[0].Z*m[1].W - m[1].Z*m[0].W

	r.c[0] = m[2].X*m[3].Y - m[3].X*m[2].Y
	r.c[1] = m[2].X*m[3].Z - m[3].X*m[2].Z
	r.c[2] = m[2].X*m[3].W - m[3].X*m[2].W
	r.c[3] = m[2].Y*m[3].Z - m[3].Y*m[2].Z
	r.c[4] = m[2].Y*m[3].W - m[3].Y*m[2].W
	r.c[5] = m[2].Z*m[3].W - m[3].Z*m[2].W
	return r
}

func (r minors) det() float64 {
	s, c := r.s, r.c
	return float64(s[0])*float64(c[5]) - float64(s[1])*float64(c[4]) +
		float64(s[2])*float64(c[3]) + float64(s[3])*float64(c[2]) -
		float64(s[4])*float64(c[1]) + float64(s[5])*float64(c[0])
}

// Determinant returns the determinant of m.
func (m Mat4) Determinant() float32 {
	return float32(m.minors().det())
}

// Inverse returns the inverse of m, or Mat4Zero and false when m is
// singular.
func (m Mat4) Inverse() (Mat4, bool) {
	inv := m
	if !inv.InverseSelf() {
		return Mat4Zero, false
	}
	return inv, true
}

// InverseSelf inverts m in place by cofactor expansion with a double
// precision determinant. When the determinant magnitude is below
// MatrixInverseEpsilon m is left untouched and false is returned.
func (m *Mat4) InverseSelf() bool {
	r := m.minors()
	det := r.det()
	if math64Abs(det) < MatrixInverseEpsilon {
		return false
	}
	inv := float32(1 / det)
	s, c := r.s, r.c
	a := *m

	*m = Mat4{
		{
			(a[1].Y*c[5] - a[1].Z*c[4] + a[1].W*c[3]) * inv,
			(-a[0].Y*c[5] + a[0].Z*c[4] - a[0].W*c[3]) * inv,
			(a[3].Y*s[5] - a[3].Z*s[4] + a[3].W*s[3]) * inv,
			(-a[2].Y*s[5] + a[2].Z*s[4] - a[2].W*s[3]) * inv,
		},
		{
			(-a[1].X*c[5] + a[1].Z*c[2] - a[1].W*c[1]) * inv,
			(a[0].X*c[5] - a[0].Z*c[2] + a[0].W*c[1]) * inv,
			(-a[3].X*s[5] + a[3].Z*s[2] - a[3].W*s[1]) * inv,
			(a[2].X*s[5] - a[2].Z*s[2] + a[2].W*s[1]) * inv,
		},
		{
			(a[1].X*c[4] - a[1].Y*c[2] + a[1].W*c[0]) * inv,
			(-a[0].X*c[4] + a[0].Y*c[2] - a[0].W*c[0]) * inv,
			(a[3].X*s[4] - a[3].Y*s[2] + a[3].W*s[0]) * inv,
			(-a[2].X*s[4] + a[2].Y*s[2] - a[2].W*s[0]) * inv,
		},
		{
			(-a[1].X*c[3] + a[1].Y*c[1] - a[1].Z*c[0]) * inv,
			(a[0].X*c[3] - a[0].Y*c[1] + a[0].Z*c[0]) * inv,
			(-a[3].X*s[3] + a[3].Y*s[1] - a[3].Z*s[0]) * inv,
			(a[2].X*s[3] - a[2].Y*s[1] + a[2].Z*s[0]) * inv,
		},
	}
	return true
}

// InverseFast returns the inverse computed with 2x2 block elimination, or
// Mat4Zero and false when a pivot block is singular.
func (m Mat4) InverseFast() (Mat4, bool) {
	inv := m
	if !inv.InverseFastSelf() {
		return Mat4Zero, false
	}
	return inv, true
}

// InverseFastSelf inverts m in place by partitioning it into 2x2 blocks
// and inverting the top-left block and its Schur complement. It fails, and
// leaves m untouched, when either of those is singular even if m is not.
func (m *Mat4) InverseFastSelf() bool {
	a := mat2{{m[0].X, m[0].Y}, {m[1].X, m[1].Y}}
	b := mat2{{m[0].Z, m[0].W}, {m[1].Z, m[1].W}}
	c := mat2{{m[2].X, m[2].Y}, {m[3].X, m[3].Y}}
	d := mat2{{m[2].Z, m[2].W}, {m[3].Z, m[3].W}}

	r0, ok := a.inverse()
	if !ok {
		return false
	}
	r1 := r0.mul(b)
	r3, ok := c.mul(r1).sub(d).inverse()
	if !ok {
		return false
	}
	r2 := c.mul(r0)

	m2 := r3.mul(r2)
	m0 := r0.sub(r1.mul(m2))
	m1 := r1.mul(r3)
	m3 := r3.neg()

	*m = Mat4{
		{m0[0][0], m0[0][1], m1[0][0], m1[0][1]},
		{m0[1][0], m0[1][1], m1[1][0], m1[1][1]},
		{m2[0][0], m2[0][1], m3[0][0], m3[0][1]},
		{m2[1][0], m2[1][1], m3[1][0], m3[1][1]},
	}
	return true
}

// ToString formats the sixteen elements row by row.
func (m Mat4) ToString(precision int) string {
	rows := make([]string, 4)
	for i := range m {
		rows[i] = m[i].ToString(precision)
	}
	return strings.Join(rows, " ")
}

type mat2 [2][2]float32

func (a mat2) mul(b mat2) mat2 {
	return mat2{
		{a[0][0]*b[0][0] + a[0][1]*b[1][0], a[0][0]*b[0][1] + a[0][1]*b[1][1]},
		{a[1][0]*b[0][0] + a[1][1]*b[1][0], a[1][0]*b[0][1] + a[1][1]*b[1][1]},
	}
}

func (a mat2) sub(b mat2) mat2 {
	return mat2{
		{a[0][0] - b[0][0], a[0][1] - b[0][1]},
		{a[1][0] - b[1][0], a[1][1] - b[1][1]},
	}
}

func (a mat2) neg() mat2 {
	return mat2{{-a[0][0], -a[0][1]}, {-a[1][0], -a[1][1]}}
}

func (a mat2) inverse() (mat2, bool) {
	det := a[0][0]*a[1][1] - a[0][1]*a[1][0]
	if Fabs(det) < MatrixInverseEpsilon {
		return mat2{}, false
	}
	inv := 1 / det
	return mat2{
		{a[1][1] * inv, -a[0][1] * inv},
		{-a[1][0] * inv, a[0][0] * inv},
	}, true
}
