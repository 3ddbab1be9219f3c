package sbmath

// Vec3 represents a 3D vector.
type Vec3 struct {
	X, Y, Z float32
}

// Vec3Origin is the zero vector.
var Vec3Origin = Vec3{}

// V3 creates a new Vec3.
func V3(x, y, z float32) Vec3 {
	return Vec3{x, y, z}
}

// Up returns the engine up vector (0, 0, 1).
func Up() Vec3 {
	return Vec3{0, 0, 1}
}

// Forward returns the engine forward vector (1, 0, 0).
func Forward() Vec3 {
	return Vec3{1, 0, 0}
}

// Left returns the engine left vector (0, 1, 0).
func Left() Vec3 {
	return Vec3{0, 1, 0}
}

// At returns component i. It panics if i is not 0, 1 or 2.
func (a Vec3) At(i int) float32 {
	switch i {
	case 0:
		return a.X
	case 1:
		return a.Y
	case 2:
		return a.Z
	}
	panic("sbmath: Vec3 index out of range")
}

// Set assigns component i. It panics if i is not 0, 1 or 2.
func (a *Vec3) Set(i int, v float32) {
	switch i {
	case 0:
		a.X = v
	case 1:
		a.Y = v
	case 2:
		a.Z = v
	default:
		panic("sbmath: Vec3 index out of range")
	}
}

// Add returns the vector sum a + b.
func (a Vec3) Add(b Vec3) Vec3 {
	return Vec3{a.X + b.X, a.Y + b.Y, a.Z + b.Z}
}

// Sub returns the vector difference a - b.
func (a Vec3) Sub(b Vec3) Vec3 {
	return Vec3{a.X - b.X, a.Y - b.Y, a.Z - b.Z}
}

// Mul returns the component-wise product a * b.
func (a Vec3) Mul(b Vec3) Vec3 {
	return Vec3{a.X * b.X, a.Y * b.Y, a.Z * b.Z}
}

// Scale returns the scalar product a * s.
func (a Vec3) Scale(s float32) Vec3 {
	return Vec3{a.X * s, a.Y * s, a.Z * s}
}

// Div returns the scalar division a / s.
func (a Vec3) Div(s float32) Vec3 {
	inv := 1 / s
	return Vec3{a.X * inv, a.Y * inv, a.Z * inv}
}

// Neg returns the negated vector.
func (a Vec3) Neg() Vec3 {
	return Vec3{-a.X, -a.Y, -a.Z}
}

// Dot returns the dot product a · b.
func (a Vec3) Dot(b Vec3) float32 {
	return a.X*b.X + a.Y*b.Y + a.Z*b.Z
}

// Cross returns the cross product a × b.
func (a Vec3) Cross(b Vec3) Vec3 {
	return Vec3{
		a.Y*b.Z - a.Z*b.Y,
		a.Z*b.X - a.X*b.Z,
		a.X*b.Y - a.Y*b.X,
	}
}

// Compare reports whether a and b are exactly equal.
func (a Vec3) Compare(b Vec3) bool {
	return a == b
}

// CompareEpsilon reports whether every component of a is within epsilon of b.
func (a Vec3) CompareEpsilon(b Vec3, epsilon float32) bool {
	return Fabs(a.X-b.X) <= epsilon &&
		Fabs(a.Y-b.Y) <= epsilon &&
		Fabs(a.Z-b.Z) <= epsilon
}

// Length returns the length (magnitude) of the vector.
func (a Vec3) Length() float32 {
	return Sqrt(a.X*a.X + a.Y*a.Y + a.Z*a.Z)
}

// LengthSqr returns the squared length (faster, no sqrt).
func (a Vec3) LengthSqr() float32 {
	return a.X*a.X + a.Y*a.Y + a.Z*a.Z
}

// LengthFast returns the length using the 16-bit square root.
func (a Vec3) LengthFast() float32 {
	sqr := a.LengthSqr()
	return sqr * InvSqrt16(sqr)
}

// Normalize returns the unit vector in the same direction.
func (a Vec3) Normalize() Vec3 {
	sqr := a.LengthSqr()
	if sqr == 0 {
		return Vec3{}
	}
	return a.Scale(InvSqrt(sqr))
}

// NormalizeFast normalizes using the 16-bit inverse square root.
func (a Vec3) NormalizeFast() Vec3 {
	sqr := a.LengthSqr()
	if sqr == 0 {
		return Vec3{}
	}
	return a.Scale(InvSqrt16(sqr))
}

// Truncate caps the length of the vector at length.
func (a Vec3) Truncate(length float32) Vec3 {
	if length < FltSmallestNonDenormal {
		return Vec3{}
	}
	sqr := a.LengthSqr()
	if sqr > length*length {
		return a.Scale(length * InvSqrt(sqr))
	}
	return a
}

// Clamp returns a with every component limited to [lo, hi].
func (a Vec3) Clamp(lo, hi Vec3) Vec3 {
	return Vec3{
		ClampFloat(lo.X, hi.X, a.X),
		ClampFloat(lo.Y, hi.Y, a.Y),
		ClampFloat(lo.Z, hi.Z, a.Z),
	}
}

// Snap rounds every component to the nearest integer.
func (a Vec3) Snap() Vec3 {
	return Vec3{Rint(a.X), Rint(a.Y), Rint(a.Z)}
}

// Distance returns the distance between two points.
func (a Vec3) Distance(b Vec3) float32 {
	return a.Sub(b).Length()
}

// Reflect returns the reflection of a around normal n.
func (a Vec3) Reflect(n Vec3) Vec3 {
	return a.Sub(n.Scale(2 * a.Dot(n)))
}

// Min returns the component-wise minimum.
func (a Vec3) Min(b Vec3) Vec3 {
	return Vec3{Min(a.X, b.X), Min(a.Y, b.Y), Min(a.Z, b.Z)}
}

// Max returns the component-wise maximum.
func (a Vec3) Max(b Vec3) Vec3 {
	return Vec3{Max(a.X, b.X), Max(a.Y, b.Y), Max(a.Z, b.Z)}
}

// Abs returns the component-wise absolute value.
func (a Vec3) Abs() Vec3 {
	return Vec3{Fabs(a.X), Fabs(a.Y), Fabs(a.Z)}
}

// Dimension returns the number of components.
func (a Vec3) Dimension() int {
	return 3
}

// ToVec2 returns the X and Y components.
func (a Vec3) ToVec2() Vec2 {
	return Vec2{a.X, a.Y}
}

// ToString formats the components with precision decimals.
func (a Vec3) ToString(precision int) string {
	return formatFloats(precision, a.X, a.Y, a.Z)
}

// FixDegenerateNormal snaps a unit normal that lies almost on an axis
// exactly onto it. It reports whether the vector changed.
func (a *Vec3) FixDegenerateNormal() bool {
	if a.X == 0 {
		if a.Y == 0 {
			return snapUnit(&a.Z)
		}
		if a.Z == 0 {
			return snapUnit(&a.Y)
		}
	} else if a.Y == 0 && a.Z == 0 {
		return snapUnit(&a.X)
	}

	switch {
	case Fabs(a.X) == 1:
		if a.Y != 0 || a.Z != 0 {
			a.Y, a.Z = 0, 0
			return true
		}
	case Fabs(a.Y) == 1:
		if a.X != 0 || a.Z != 0 {
			a.X, a.Z = 0, 0
			return true
		}
	case Fabs(a.Z) == 1:
		if a.X != 0 || a.Y != 0 {
			a.X, a.Y = 0, 0
			return true
		}
	}
	return false
}

func snapUnit(c *float32) bool {
	want := float32(-1)
	if *c > 0 {
		want = 1
	}
	if *c == want {
		return false
	}
	*c = want
	return true
}

// FixDenormals flushes components smaller than 1e-30 in magnitude to zero
// and reports whether any were flushed.
func (a *Vec3) FixDenormals() bool {
	denormal := false
	for _, c := range []*float32{&a.X, &a.Y, &a.Z} {
		if *c != 0 && Fabs(*c) < 1e-30 {
			*c = 0
			denormal = true
		}
	}
	return denormal
}

// Lerp returns the linear interpolation between a and b by l. Values of l
// outside (0, 1) return the nearest endpoint exactly.
func (a Vec3) Lerp(b Vec3, l float32) Vec3 {
	if l <= 0 {
		return a
	}
	if l >= 1 {
		return b
	}
	return a.Add(b.Sub(a).Scale(l))
}

// slerpDelta is the 1 - cos(omega) threshold under which SLerp falls back
// to linear weights.
const slerpDelta = 1e-6

// SLerp spherically interpolates from unit vector a to unit vector b.
func (a Vec3) SLerp(b Vec3, t float32) Vec3 {
	if t <= 0 {
		return a
	}
	if t >= 1 {
		return b
	}

	var scale0, scale1 float32
	cosom := a.Dot(b)
	if 1-cosom > slerpDelta {
		omega := ACos(cosom)
		sinom := Sin(omega)
		scale0 = Sin((1-t)*omega) / sinom
		scale1 = Sin(t*omega) / sinom
	} else {
		scale0 = 1 - t
		scale1 = t
	}
	return a.Scale(scale0).Add(b.Scale(scale1))
}

// yawPitch returns the yaw and pitch of a in degrees, both in [0, 360).
func (a Vec3) yawPitch() (yaw, pitch float32) {
	if a.X == 0 && a.Y == 0 {
		if a.Z > 0 {
			return 0, 90
		}
		return 0, 270
	}
	yaw = Rad2Deg(ATan2(a.Y, a.X))
	if yaw < 0 {
		yaw += 360
	}
	forward := Sqrt(a.X*a.X + a.Y*a.Y)
	pitch = Rad2Deg(ATan2(a.Z, forward))
	if pitch < 0 {
		pitch += 360
	}
	return yaw, pitch
}

// ToYaw returns the heading of a in degrees, in [0, 360).
func (a Vec3) ToYaw() float32 {
	yaw, _ := a.yawPitch()
	return yaw
}

// ToPitch returns the elevation of a in degrees, in [0, 360). A vector on
// the Z axis yields 90 when pointing up and 270 otherwise.
func (a Vec3) ToPitch() float32 {
	_, pitch := a.yawPitch()
	return pitch
}

// ToAngles returns the Euler angles that look along a. Pitch is negated
// since positive pitch looks down.
func (a Vec3) ToAngles() Angles {
	yaw, pitch := a.yawPitch()
	return Angles{Pitch: -pitch, Yaw: yaw}
}

// ToPolar returns a in spherical coordinates.
func (a Vec3) ToPolar() Polar3 {
	yaw, pitch := a.yawPitch()
	return Polar3{Radius: a.Length(), Theta: yaw, Phi: -pitch}
}

// ToMat3 returns an orthogonal basis whose first row is a.
func (a Vec3) ToMat3() Mat3 {
	var m Mat3
	m[0] = a
	d := a.X*a.X + a.Y*a.Y
	if d == 0 {
		m[1] = Vec3{1, 0, 0}
	} else {
		d = InvSqrt(d)
		m[1] = Vec3{-a.Y * d, a.X * d, 0}
	}
	m[2] = a.Cross(m[1])
	return m
}

// NormalVectors returns two vectors perpendicular to the unit vector a.
func (a Vec3) NormalVectors() (left, down Vec3) {
	d := a.X*a.X + a.Y*a.Y
	if d == 0 {
		left = Vec3{1, 0, 0}
	} else {
		d = InvSqrt(d)
		left = Vec3{-a.Y * d, a.X * d, 0}
	}
	return left, left.Cross(a)
}

// OrthogonalBasis returns two vectors that complete the unit vector a to an
// orthonormal basis.
func (a Vec3) OrthogonalBasis() (left, up Vec3) {
	if Fabs(a.Z) > 0.7 {
		d := InvSqrt(a.Y*a.Y + a.Z*a.Z)
		left = Vec3{0, a.Z * d, -a.Y * d}
	} else {
		d := InvSqrt(a.X*a.X + a.Y*a.Y)
		left = Vec3{-a.Y * d, a.X * d, 0}
	}
	return left, a.Cross(left)
}

// ProjectOntoPlane removes the component of a along normal. An overBounce
// other than 1 pushes the result further away from the plane.
func (a Vec3) ProjectOntoPlane(normal Vec3, overBounce float32) Vec3 {
	backoff := a.Dot(normal)
	if overBounce != 1 {
		if backoff < 0 {
			backoff *= overBounce
		} else {
			backoff /= overBounce
		}
	}
	return a.Sub(normal.Scale(backoff))
}

// ProjectSelfOntoSphere recomputes Z so the point lies on a trackball
// sphere of the given radius, switching to a hyperbolic sheet past half the
// squared radius to stay numerically stable near the rim.
func (a *Vec3) ProjectSelfOntoSphere(radius float32) {
	rsqr := radius * radius
	l := a.X*a.X + a.Y*a.Y
	if l < rsqr*0.5 {
		a.Z = Sqrt(rsqr - l)
	} else {
		a.Z = rsqr / (2 * Sqrt(l))
	}
}

// LerpVec3 interpolates linearly from v1 to v2.
func LerpVec3(v1, v2 Vec3, l float32) Vec3 {
	return v1.Lerp(v2, l)
}
