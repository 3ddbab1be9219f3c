package sbmath

import "strings"

// Mat3 is a 3x3 matrix stored as three rows. For rotations the rows are the
// rotated forward, left and up axes, so MulVec maps the local X axis onto
// row 0.
type Mat3 [3]Vec3

var (
	Mat3Zero     = Mat3{}
	Mat3Identity = Mat3{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}
)

// NewMat3 creates a matrix from three rows.
func NewMat3(x, y, z Vec3) Mat3 {
	return Mat3{x, y, z}
}

// SkewSymmetric returns the cross product matrix of v. MulVec applies the
// transpose, so SkewSymmetric(v).MulVec(u) is u × v.
func SkewSymmetric(v Vec3) Mat3 {
	return Mat3{
		{0, -v.Z, v.Y},
		{v.Z, 0, -v.X},
		{-v.Y, v.X, 0},
	}
}

// At returns the element at (row, col).
func (m Mat3) At(row, col int) float32 {
	return m[row].At(col)
}

func (m Mat3) Add(b Mat3) Mat3 {
	return Mat3{m[0].Add(b[0]), m[1].Add(b[1]), m[2].Add(b[2])}
}

func (m Mat3) Sub(b Mat3) Mat3 {
	return Mat3{m[0].Sub(b[0]), m[1].Sub(b[1]), m[2].Sub(b[2])}
}

func (m Mat3) Neg() Mat3 {
	return Mat3{m[0].Neg(), m[1].Neg(), m[2].Neg()}
}

func (m Mat3) Scale(s float32) Mat3 {
	return Mat3{m[0].Scale(s), m[1].Scale(s), m[2].Scale(s)}
}

// Mul returns the matrix product m * b.
//
//nolint:st1016 // m*b naming convention is clearer for matrix multiplication
func (m Mat3) Mul(b Mat3) Mat3 {
	var dst Mat3
	for i := range 3 {
		for j := range 3 {
			dst[i].Set(j, m[i].X*b[0].At(j)+m[i].Y*b[1].At(j)+m[i].Z*b[2].At(j))
		}
	}
	return dst
}

// MulVec returns the sum of the rows weighted by the components of v, that
// is the transpose of m applied to v.
func (m Mat3) MulVec(v Vec3) Vec3 {
	return Vec3{
		m[0].X*v.X + m[1].X*v.Y + m[2].X*v.Z,
		m[0].Y*v.X + m[1].Y*v.Y + m[2].Y*v.Z,
		m[0].Z*v.X + m[1].Z*v.Y + m[2].Z*v.Z,
	}
}

// Vec3MulMat3 returns v * m, which equals m.MulVec(v).
func Vec3MulMat3(v Vec3, m Mat3) Vec3 {
	return m.MulVec(v)
}

// TransposeMultiply returns transpose(m) * b.
func (m Mat3) TransposeMultiply(b Mat3) Mat3 {
	var dst Mat3
	for i := range 3 {
		for j := range 3 {
			dst[i].Set(j, m[0].At(i)*b[0].At(j)+m[1].At(i)*b[1].At(j)+m[2].At(i)*b[2].At(j))
		}
	}
	return dst
}

// Compare reports whether m and b are exactly equal.
func (m Mat3) Compare(b Mat3) bool {
	return m == b
}

// CompareEpsilon reports whether every element is within epsilon.
func (m Mat3) CompareEpsilon(b Mat3, epsilon float32) bool {
	for i := range 3 {
		if !m[i].CompareEpsilon(b[i], epsilon) {
			return false
		}
	}
	return true
}

// IsIdentity reports whether m is within epsilon of the identity.
func (m Mat3) IsIdentity(epsilon float32) bool {
	return m.CompareEpsilon(Mat3Identity, epsilon)
}

// IsSymmetric reports whether m equals its transpose within epsilon.
func (m Mat3) IsSymmetric(epsilon float32) bool {
	return Fabs(m[0].Y-m[1].X) <= epsilon &&
		Fabs(m[0].Z-m[2].X) <= epsilon &&
		Fabs(m[1].Z-m[2].Y) <= epsilon
}

// IsDiagonal reports whether every off-diagonal element is within epsilon
// of zero.
func (m Mat3) IsDiagonal(epsilon float32) bool {
	return Fabs(m[0].Y) <= epsilon && Fabs(m[0].Z) <= epsilon &&
		Fabs(m[1].X) <= epsilon && Fabs(m[1].Z) <= epsilon &&
		Fabs(m[2].X) <= epsilon && Fabs(m[2].Y) <= epsilon
}

// IsRotated reports whether m differs from the identity at all.
func (m Mat3) IsRotated() bool {
	return !m.Compare(Mat3Identity)
}

// ProjectVector returns the components of src along each row.
func (m Mat3) ProjectVector(src Vec3) Vec3 {
	return Vec3{src.Dot(m[0]), src.Dot(m[1]), src.Dot(m[2])}
}

// UnprojectVector is the inverse of ProjectVector for orthonormal m.
func (m Mat3) UnprojectVector(src Vec3) Vec3 {
	return m[0].Scale(src.X).Add(m[1].Scale(src.Y)).Add(m[2].Scale(src.Z))
}

// Trace returns the sum of the diagonal.
func (m Mat3) Trace() float32 {
	return m[0].X + m[1].Y + m[2].Z
}

// Determinant returns the determinant of m.
func (m Mat3) Determinant() float32 {
	det2_12_01 := m[1].X*m[2].Y - m[1].Y*m[2].X
	det2_12_02 := m[1].X*m[2].Z - m[1].Z*m[2].X
	det2_12_12 := m[1].Y*m[2].Z - m[1].Z*m[2].Y

	return m[0].X*det2_12_12 - m[0].Y*det2_12_02 + m[0].Z*det2_12_01
}

// Transpose returns the transposed matrix.
func (m Mat3) Transpose() Mat3 {
	return Mat3{
		{m[0].X, m[1].X, m[2].X},
		{m[0].Y, m[1].Y, m[2].Y},
		{m[0].Z, m[1].Z, m[2].Z},
	}
}

// TransposeSelf transposes m in place.
func (m *Mat3) TransposeSelf() {
	*m = m.Transpose()
}

// cofactors returns the transposed cofactor matrix of m.
func (m Mat3) cofactors() Mat3 {
	return Mat3{
		{
			m[1].Y*m[2].Z - m[1].Z*m[2].Y,
			m[0].Z*m[2].Y - m[0].Y*m[2].Z,
			m[0].Y*m[1].Z - m[0].Z*m[1].Y,
		},
		{
			m[1].Z*m[2].X - m[1].X*m[2].Z,
			m[0].X*m[2].Z - m[0].Z*m[2].X,
			m[0].Z*m[1].X - m[0].X*m[1].Z,
		},
		{
			m[1].X*m[2].Y - m[1].Y*m[2].X,
			m[0].Y*m[2].X - m[0].X*m[2].Y,
			m[0].X*m[1].Y - m[0].Y*m[1].X,
		},
	}
}

// Inverse returns the inverse of m, or Mat3Zero and false when m is
// singular.
func (m Mat3) Inverse() (Mat3, bool) {
	inv := m
	if !inv.InverseSelf() {
		return Mat3Zero, false
	}
	return inv, true
}

// InverseSelf inverts m in place. The determinant is accumulated in double
// precision; when its magnitude is below MatrixInverseEpsilon m is left
// untouched and false is returned.
func (m *Mat3) InverseSelf() bool {
	inv := m.cofactors()
	det := float64(m[0].X)*float64(inv[0].X) +
		float64(m[0].Y)*float64(inv[1].X) +
		float64(m[0].Z)*float64(inv[2].X)
	if math64Abs(det) < MatrixInverseEpsilon {
		return false
	}
	*m = inv.Scale(float32(1 / det))
	return true
}

// InverseFast is Inverse computed entirely in single precision.
func (m Mat3) InverseFast() (Mat3, bool) {
	inv := m
	if !inv.InverseFastSelf() {
		return Mat3Zero, false
	}
	return inv, true
}

// InverseFastSelf is InverseSelf computed entirely in single precision.
func (m *Mat3) InverseFastSelf() bool {
	inv := m.cofactors()
	det := m[0].X*inv[0].X + m[0].Y*inv[1].X + m[0].Z*inv[2].X
	if Fabs(det) < MatrixInverseEpsilon {
		return false
	}
	*m = inv.Scale(1 / det)
	return true
}

// OrthoNormalize returns m with orthogonal unit rows, keeping the direction
// of row 0 and the plane of rows 0 and 1.
func (m Mat3) OrthoNormalize() Mat3 {
	var axis Mat3
	axis[0] = m[0].Normalize()
	axis[2] = m[0].Cross(m[1]).Normalize()
	axis[1] = axis[2].Cross(axis[0]).Normalize()
	return axis
}

// OrthoNormalizeSelf orthonormalizes m in place.
func (m *Mat3) OrthoNormalizeSelf() {
	*m = m.OrthoNormalize()
}

// FixDegeneracies snaps rows that lie almost on an axis onto it and reports
// whether anything changed.
func (m *Mat3) FixDegeneracies() bool {
	r := m[0].FixDegenerateNormal()
	r = m[1].FixDegenerateNormal() || r
	r = m[2].FixDegenerateNormal() || r
	return r
}

// FixDenormals flushes tiny elements to zero and reports whether any were
// flushed.
func (m *Mat3) FixDenormals() bool {
	r := m[0].FixDenormals()
	r = m[1].FixDenormals() || r
	r = m[2].FixDenormals() || r
	return r
}

// InertiaTranslate moves the inertia tensor m, taken about the origin, of a
// body with the given mass and center of mass by translation.
func (m Mat3) InertiaTranslate(mass float32, centerOfMass, translation Vec3) Mat3 {
	c := centerOfMass
	n := centerOfMass.Add(translation)
	d := mass * (n.LengthSqr() - c.LengthSqr())

	var delta Mat3
	for i := range 3 {
		for j := range 3 {
			v := -mass * (n.At(i)*n.At(j) - c.At(i)*c.At(j))
			if i == j {
				v += d
			}
			delta[i].Set(j, v)
		}
	}
	return m.Add(delta)
}

// InertiaTranslateSelf applies InertiaTranslate in place.
func (m *Mat3) InertiaTranslateSelf(mass float32, centerOfMass, translation Vec3) {
	*m = m.InertiaTranslate(mass, centerOfMass, translation)
}

// InertiaRotate returns the inertia tensor expressed in the rotated frame,
// transpose(rotation) * m * rotation.
func (m Mat3) InertiaRotate(rotation Mat3) Mat3 {
	return rotation.Transpose().Mul(m).Mul(rotation)
}

// InertiaRotateSelf applies InertiaRotate in place.
func (m *Mat3) InertiaRotateSelf(rotation Mat3) {
	*m = m.InertiaRotate(rotation)
}

// ToAngles returns the Euler angles of the rotation matrix m. Near the
// poles roll is folded into yaw and reported as zero.
func (m Mat3) ToAngles() Angles {
	sp := ClampFloat(-1, 1, m[0].Z)
	theta := -ASin(sp)
	cp := Cos(theta)

	if cp > 8192*FltEpsilon {
		return Angles{
			Pitch: Rad2Deg(theta),
			Yaw:   Rad2Deg(ATan2(m[0].Y, m[0].X)),
			Roll:  Rad2Deg(ATan2(m[1].Z, m[2].Z)),
		}
	}
	return Angles{
		Pitch: Rad2Deg(theta),
		Yaw:   -Rad2Deg(ATan2(m[1].X, m[1].Y)),
	}
}

var quatNext = [3]int{1, 2, 0}

// ToQuat returns the quaternion of the rotation matrix m.
func (m Mat3) ToQuat() Quat {
	var q [4]float32

	trace := m.Trace()
	if trace > 0 {
		t := trace + 1
		s := InvSqrt(t) * 0.5

		q[3] = s * t
		q[0] = (m[2].Y - m[1].Z) * s
		q[1] = (m[0].Z - m[2].X) * s
		q[2] = (m[1].X - m[0].Y) * s
	} else {
		i := 0
		if m[1].Y > m[0].X {
			i = 1
		}
		if m[2].Z > m.At(i, i) {
			i = 2
		}
		j := quatNext[i]
		k := quatNext[j]

		t := (m.At(i, i) - (m.At(j, j) + m.At(k, k))) + 1
		s := InvSqrt(t) * 0.5

		q[i] = s * t
		q[3] = (m.At(k, j) - m.At(j, k)) * s
		q[j] = (m.At(j, i) + m.At(i, j)) * s
		q[k] = (m.At(k, i) + m.At(i, k)) * s
	}
	return Quat{q[0], q[1], q[2], q[3]}
}

// ToCQuat returns the compressed quaternion of m.
func (m Mat3) ToCQuat() CQuat {
	return m.ToQuat().ToCQuat()
}

// ToRotation returns m in axis-angle form with the matrix cached.
func (m Mat3) ToRotation() Rotation {
	q := m.ToQuat()
	r := Rotation{
		Vec:       Vec3{q.X, q.Y, q.Z},
		Angle:     ACos(q.W),
		axis:      m,
		axisValid: true,
	}
	if Fabs(r.Angle) < 1e-10 {
		r.Vec = Vec3{0, 0, 1}
		r.Angle = 0
	} else {
		r.Vec = r.Vec.Normalize()
		r.Vec.FixDegenerateNormal()
		r.Angle *= 2 * Rad2DegScale
	}
	return r
}

// ToAngularVelocity returns the rotation vector of m in radians.
func (m Mat3) ToAngularVelocity() Vec3 {
	r := m.ToRotation()
	return r.Vec.Scale(Deg2Rad(r.Angle))
}

// ToMat4 returns m as the rotation part of a 4x4 transform. Mat4 multiplies
// column vectors, so the rows of m become its columns.
func (m Mat3) ToMat4() Mat4 {
	return NewMat4FromRotation(m, Vec3Origin)
}

// ToString formats the nine elements row by row.
func (m Mat3) ToString(precision int) string {
	rows := make([]string, 3)
	for i := range m {
		rows[i] = m[i].ToString(precision)
	}
	return strings.Join(rows, " ")
}

func math64Abs(f float64) float64 {
	if f < 0 {
		return -f
	}
	return f
}
