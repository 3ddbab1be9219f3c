package sbmath

// Quat is a rotation quaternion. W is the scalar part.
type Quat struct {
	X, Y, Z, W float32
}

// QuatIdentity is the quaternion of no rotation.
var QuatIdentity = Quat{0, 0, 0, 1}

func (q Quat) Add(b Quat) Quat {
	return Quat{q.X + b.X, q.Y + b.Y, q.Z + b.Z, q.W + b.W}
}

func (q Quat) Sub(b Quat) Quat {
	return Quat{q.X - b.X, q.Y - b.Y, q.Z - b.Z, q.W - b.W}
}

func (q Quat) Neg() Quat {
	return Quat{-q.X, -q.Y, -q.Z, -q.W}
}

func (q Quat) Scale(s float32) Quat {
	return Quat{q.X * s, q.Y * s, q.Z * s, q.W * s}
}

// Mul returns the Hamilton product q * b.
func (q Quat) Mul(b Quat) Quat {
	return Quat{
		q.W*b.X + q.X*b.W + q.Y*b.Z - q.Z*b.Y,
		q.W*b.Y + q.Y*b.W + q.Z*b.X - q.X*b.Z,
		q.W*b.Z + q.Z*b.W + q.X*b.Y - q.Y*b.X,
		q.W*b.W - q.X*b.X - q.Y*b.Y - q.Z*b.Z,
	}
}

// RotateVec rotates v by q, the same as q.ToMat3().MulVec(v).
func (q Quat) RotateVec(v Vec3) Vec3 {
	return q.ToMat3().MulVec(v)
}

// Dot returns the four dimensional dot product.
func (q Quat) Dot(b Quat) float32 {
	return q.X*b.X + q.Y*b.Y + q.Z*b.Z + q.W*b.W
}

// Inverse returns the conjugate, which inverts a unit quaternion.
func (q Quat) Inverse() Quat {
	return Quat{-q.X, -q.Y, -q.Z, q.W}
}

func (q Quat) Compare(b Quat) bool {
	return q == b
}

// CompareEpsilon reports whether every component is within epsilon.
func (q Quat) CompareEpsilon(b Quat, epsilon float32) bool {
	return Fabs(q.X-b.X) <= epsilon &&
		Fabs(q.Y-b.Y) <= epsilon &&
		Fabs(q.Z-b.Z) <= epsilon &&
		Fabs(q.W-b.W) <= epsilon
}

func (q Quat) Length() float32 {
	return Sqrt(q.Dot(q))
}

// Normalize returns q scaled to unit length. A zero quaternion is returned
// unchanged.
func (q Quat) Normalize() Quat {
	l := q.Length()
	if l == 0 {
		return q
	}
	return q.Scale(1 / l)
}

// CalcW returns the W that makes the vector part a unit quaternion. Near a
// 180 degree rotation W is close to zero and 1-|v|² cancels, so the result
// keeps only about half the float32 mantissa.
func (q Quat) CalcW() float32 {
	return Sqrt(Fabs(1 - (q.X*q.X + q.Y*q.Y + q.Z*q.Z)))
}

// ToCQuat compresses q, negating it first when needed so W is recoverable
// as a non-negative value.
func (q Quat) ToCQuat() CQuat {
	if q.W < 0 {
		return CQuat{-q.X, -q.Y, -q.Z}
	}
	return CQuat{q.X, q.Y, q.Z}
}

// ToMat3 returns the rotation matrix of the unit quaternion q.
func (q Quat) ToMat3() Mat3 {
	x2 := q.X + q.X
	y2 := q.Y + q.Y
	z2 := q.Z + q.Z

	xx := q.X * x2
	xy := q.X * y2
	xz := q.X * z2

	yy := q.Y * y2
	yz := q.Y * z2
	zz := q.Z * z2

	wx := q.W * x2
	wy := q.W * y2
	wz := q.W * z2

	return Mat3{
		{1 - (yy + zz), xy - wz, xz + wy},
		{xy + wz, 1 - (xx + zz), yz - wx},
		{xz - wy, yz + wx, 1 - (xx + yy)},
	}
}

func (q Quat) ToMat4() Mat4 {
	return q.ToMat3().ToMat4()
}

func (q Quat) ToAngles() Angles {
	return q.ToMat3().ToAngles()
}

// ToRotation returns q in axis-angle form. The identity maps to a zero
// angle around +Z.
func (q Quat) ToRotation() Rotation {
	vec := Vec3{q.X, q.Y, q.Z}
	angle := ACos(q.W)
	if angle == 0 {
		vec = Vec3{0, 0, 1}
	} else {
		vec = vec.Scale(1 / Sin(angle)).Normalize()
		vec.FixDegenerateNormal()
		angle *= 2 * Rad2DegScale
	}
	return NewRotation(Vec3Origin, vec, angle)
}

// ToAngularVelocity returns the rotation vector of q in radians.
func (q Quat) ToAngularVelocity() Vec3 {
	r := q.ToRotation()
	return r.Vec.Scale(Deg2Rad(r.Angle))
}

// Slerp spherically interpolates between the unit quaternions from and to
// along the shorter arc. It uses the 16-bit trigonometry.
func (q Quat) Slerp(to Quat, t float32) Quat {
	if t <= 0 {
		return q
	}
	if t >= 1 || q == to {
		return to
	}

	cosom := q.Dot(to)
	if cosom < 0 {
		to = to.Neg()
		cosom = -cosom
	}

	var scale0, scale1 float32
	if 1-cosom > slerpDelta {
		scale0 = 1 - cosom*cosom
		sinom := InvSqrt(scale0)
		omega := ATan216(scale0*sinom, cosom)
		scale0 = Sin16((1-t)*omega) * sinom
		scale1 = Sin16(t*omega) * sinom
	} else {
		scale0 = 1 - t
		scale1 = t
	}
	return q.Scale(scale0).Add(to.Scale(scale1))
}

// ToString formats the components with precision decimals.
func (q Quat) ToString(precision int) string {
	return formatFloats(precision, q.X, q.Y, q.Z, q.W)
}

// CQuat is a unit quaternion stored without W. Restoring W goes through
// CalcW and is least precise for rotations near 180 degrees.
type CQuat struct {
	X, Y, Z float32
}

// ToQuat restores the non-negative W.
func (c CQuat) ToQuat() Quat {
	q := Quat{c.X, c.Y, c.Z, 0}
	q.W = q.CalcW()
	return q
}

func (c CQuat) ToMat3() Mat3 {
	return c.ToQuat().ToMat3()
}

func (c CQuat) ToAngles() Angles {
	return c.ToQuat().ToAngles()
}

// ToString formats the components with precision decimals.
func (c CQuat) ToString(precision int) string {
	return formatFloats(precision, c.X, c.Y, c.Z)
}
