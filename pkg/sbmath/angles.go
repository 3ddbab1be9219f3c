package sbmath

// Angles holds Euler angles in degrees. Positive pitch looks down, positive
// yaw turns left around +Z and positive roll tilts right around +X.
type Angles struct {
	Pitch, Yaw, Roll float32
}

// AngZero is the zero rotation.
var AngZero = Angles{}

// Ang creates new Angles.
func Ang(pitch, yaw, roll float32) Angles {
	return Angles{pitch, yaw, roll}
}

// At returns component i in pitch, yaw, roll order. It panics if i is
// outside [0, 2].
func (a Angles) At(i int) float32 {
	switch i {
	case 0:
		return a.Pitch
	case 1:
		return a.Yaw
	case 2:
		return a.Roll
	}
	panic("sbmath: Angles index out of range")
}

// Set assigns component i in pitch, yaw, roll order.
func (a *Angles) Set(i int, v float32) {
	switch i {
	case 0:
		a.Pitch = v
	case 1:
		a.Yaw = v
	case 2:
		a.Roll = v
	default:
		panic("sbmath: Angles index out of range")
	}
}

func (a Angles) Add(b Angles) Angles {
	return Angles{a.Pitch + b.Pitch, a.Yaw + b.Yaw, a.Roll + b.Roll}
}

func (a Angles) Sub(b Angles) Angles {
	return Angles{a.Pitch - b.Pitch, a.Yaw - b.Yaw, a.Roll - b.Roll}
}

func (a Angles) Scale(s float32) Angles {
	return Angles{a.Pitch * s, a.Yaw * s, a.Roll * s}
}

func (a Angles) Div(s float32) Angles {
	inv := 1 / s
	return a.Scale(inv)
}

func (a Angles) Neg() Angles {
	return Angles{-a.Pitch, -a.Yaw, -a.Roll}
}

// Compare reports whether a and b are exactly equal.
func (a Angles) Compare(b Angles) bool {
	return a == b
}

// CompareEpsilon reports whether every component is within epsilon. Angles
// are compared as stored; 0 and 360 are not considered equal.
func (a Angles) CompareEpsilon(b Angles, epsilon float32) bool {
	return Fabs(a.Pitch-b.Pitch) <= epsilon &&
		Fabs(a.Yaw-b.Yaw) <= epsilon &&
		Fabs(a.Roll-b.Roll) <= epsilon
}

// Normalize360 reduces every component to [0, 360).
func (a Angles) Normalize360() Angles {
	return Angles{
		AngleNormalize360(a.Pitch),
		AngleNormalize360(a.Yaw),
		AngleNormalize360(a.Roll),
	}
}

// Normalize180 reduces every component to (-180, 180].
func (a Angles) Normalize180() Angles {
	return Angles{
		AngleNormalize180(a.Pitch),
		AngleNormalize180(a.Yaw),
		AngleNormalize180(a.Roll),
	}
}

// Clamp limits every component to the matching component range of lo and
// hi.
func (a Angles) Clamp(lo, hi Angles) Angles {
	return Angles{
		ClampFloat(lo.Pitch, hi.Pitch, a.Pitch),
		ClampFloat(lo.Yaw, hi.Yaw, a.Yaw),
		ClampFloat(lo.Roll, hi.Roll, a.Roll),
	}
}

func (a Angles) sinCos() (sp, cp, sy, cy, sr, cr float32) {
	sp, cp = SinCos(Deg2Rad(a.Pitch))
	sy, cy = SinCos(Deg2Rad(a.Yaw))
	sr, cr = SinCos(Deg2Rad(a.Roll))
	return
}

// ToVectors returns the forward, right and up directions of the rotation.
func (a Angles) ToVectors() (forward, right, up Vec3) {
	sp, cp, sy, cy, sr, cr := a.sinCos()

	forward = Vec3{cp * cy, cp * sy, -sp}
	right = Vec3{-sr*sp*cy + cr*sy, -sr*sp*sy - cr*cy, -sr * cp}
	up = Vec3{cr*sp*cy + sr*sy, cr*sp*sy - sr*cy, cr * cp}
	return forward, right, up
}

// ToForward returns the unit direction the angles look along.
func (a Angles) ToForward() Vec3 {
	sp, cp := SinCos(Deg2Rad(a.Pitch))
	sy, cy := SinCos(Deg2Rad(a.Yaw))
	return Vec3{cp * cy, cp * sy, -sp}
}

// ToQuat returns the rotation as a quaternion.
func (a Angles) ToQuat() Quat {
	sz, cz := SinCos(Deg2Rad(a.Yaw) * 0.5)
	sy, cy := SinCos(Deg2Rad(a.Pitch) * 0.5)
	sx, cx := SinCos(Deg2Rad(a.Roll) * 0.5)

	sxcy := sx * cy
	cxcy := cx * cy
	sxsy := sx * sy
	cxsy := cx * sy

	return Quat{
		X: cxsy*sz - sxcy*cz,
		Y: -cxsy*cz - sxcy*sz,
		Z: sxsy*cz - cxcy*sz,
		W: cxcy*cz + sxsy*sz,
	}
}

// ToRotation returns the rotation in axis-angle form. Single-axis angles
// map directly onto the matching axis.
func (a Angles) ToRotation() Rotation {
	switch {
	case a.Pitch == 0 && a.Yaw == 0:
		return NewRotation(Vec3Origin, Vec3{-1, 0, 0}, a.Roll)
	case a.Pitch == 0 && a.Roll == 0:
		return NewRotation(Vec3Origin, Vec3{0, 0, -1}, a.Yaw)
	case a.Yaw == 0 && a.Roll == 0:
		return NewRotation(Vec3Origin, Vec3{0, -1, 0}, a.Pitch)
	}

	q := a.ToQuat()
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

// ToMat3 returns the rotation matrix whose rows are the forward, left and
// up directions.
func (a Angles) ToMat3() Mat3 {
	sp, cp, sy, cy, sr, cr := a.sinCos()

	return Mat3{
		{cp * cy, cp * sy, -sp},
		{sr*sp*cy - cr*sy, sr*sp*sy + cr*cy, sr * cp},
		{cr*sp*cy + sr*sy, cr*sp*sy - sr*cy, cr * cp},
	}
}

// ToMat4 returns the rotation as a 4x4 transform without translation.
func (a Angles) ToMat4() Mat4 {
	return a.ToMat3().ToMat4()
}

// ToAngularVelocity returns the rotation vector in radians.
func (a Angles) ToAngularVelocity() Vec3 {
	r := a.ToRotation()
	return r.Vec.Scale(Deg2Rad(r.Angle))
}

// ToString formats pitch, yaw and roll with precision decimals.
func (a Angles) ToString(precision int) string {
	return formatFloats(precision, a.Pitch, a.Yaw, a.Roll)
}
