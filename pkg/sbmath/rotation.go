package sbmath

// Rotation is a rotation of Angle degrees around the axis Vec passing
// through Origin. The matrix form is cached by ReCalculateMatrix.
type Rotation struct {
	Origin Vec3
	Vec    Vec3
	Angle  float32

	axis      Mat3
	axisValid bool
}

// NewRotation returns a rotation of angle degrees around vec through
// origin. vec must be a unit vector.
func NewRotation(origin, vec Vec3, angle float32) Rotation {
	return Rotation{Origin: origin, Vec: vec, Angle: angle}
}

// Set replaces the whole rotation and drops the cached matrix.
func (r *Rotation) Set(origin, vec Vec3, angle float32) {
	*r = NewRotation(origin, vec, angle)
}

func (r *Rotation) SetVec(vec Vec3) {
	r.Vec = vec
	r.axisValid = false
}

func (r *Rotation) SetAngle(angle float32) {
	r.Angle = angle
	r.axisValid = false
}

// Scale multiplies the angle by s.
func (r *Rotation) Scale(s float32) {
	r.Angle *= s
	r.axisValid = false
}

// Neg returns the inverse rotation.
func (r Rotation) Neg() Rotation {
	return NewRotation(r.Origin, r.Vec, -r.Angle)
}

// Normalize180 reduces the angle to (-180, 180].
func (r *Rotation) Normalize180() {
	r.Angle = AngleNormalize180(r.Angle)
}

// Normalize360 reduces the angle to [0, 360).
func (r *Rotation) Normalize360() {
	r.Angle = AngleNormalize360(r.Angle)
}

// ReCalculateMatrix refreshes the cached matrix from Vec and Angle.
func (r *Rotation) ReCalculateMatrix() {
	r.axisValid = false
	r.axis = r.ToMat3()
	r.axisValid = true
}

func (r Rotation) ToQuat() Quat {
	s, c := SinCos(Deg2Rad(r.Angle) * 0.5)
	return Quat{r.Vec.X * s, r.Vec.Y * s, r.Vec.Z * s, c}
}

// ToMat3 returns the rotation matrix, from the cache when it is valid.
func (r Rotation) ToMat3() Mat3 {
	if r.axisValid {
		return r.axis
	}
	return r.ToQuat().ToMat3()
}

// ToMat4 returns the rotation matrix without the origin offset.
func (r Rotation) ToMat4() Mat4 {
	return r.ToMat3().ToMat4()
}

func (r Rotation) ToAngles() Angles {
	return r.ToMat3().ToAngles()
}

// ToAngularVelocity returns the rotation vector in radians.
func (r Rotation) ToAngularVelocity() Vec3 {
	return r.Vec.Scale(Deg2Rad(r.Angle))
}

// RotatePoint rotates p around the axis through Origin.
func (r Rotation) RotatePoint(p Vec3) Vec3 {
	return r.ToMat3().MulVec(p.Sub(r.Origin)).Add(r.Origin)
}

// ToString formats origin, axis and angle with precision decimals.
func (r Rotation) ToString(precision int) string {
	return formatFloats(precision,
		r.Origin.X, r.Origin.Y, r.Origin.Z,
		r.Vec.X, r.Vec.Y, r.Vec.Z,
		r.Angle)
}
