package sbmath

// Vec4 represents a 4D vector (or homogeneous 3D point).
type Vec4 struct {
	X, Y, Z, W float32
}

// Vec4Origin is the zero vector.
var Vec4Origin = Vec4{}

// V4 creates a new Vec4.
func V4(x, y, z, w float32) Vec4 {
	return Vec4{x, y, z, w}
}

// V4FromV3 creates a Vec4 from a Vec3 with the given W.
func V4FromV3(v Vec3, w float32) Vec4 {
	return Vec4{v.X, v.Y, v.Z, w}
}

// ToVec3 returns the X, Y and Z components.
func (a Vec4) ToVec3() Vec3 {
	return Vec3{a.X, a.Y, a.Z}
}

// PerspectiveDivide returns the Vec3 after dividing by W. A zero W leaves
// the components untouched.
func (a Vec4) PerspectiveDivide() Vec3 {
	if a.W == 0 {
		return a.ToVec3()
	}
	inv := 1 / a.W
	return Vec3{a.X * inv, a.Y * inv, a.Z * inv}
}

// At returns component i. It panics if i is outside [0, 3].
func (a Vec4) At(i int) float32 {
	switch i {
	case 0:
		return a.X
	case 1:
		return a.Y
	case 2:
		return a.Z
	case 3:
		return a.W
	}
	panic("sbmath: Vec4 index out of range")
}

// Set assigns component i. It panics if i is outside [0, 3].
func (a *Vec4) Set(i int, v float32) {
	switch i {
	case 0:
		a.X = v
	case 1:
		a.Y = v
	case 2:
		a.Z = v
	case 3:
		a.W = v
	default:
		panic("sbmath: Vec4 index out of range")
	}
}

// Add returns the vector sum.
//
//nolint:st1016 // a+b naming convention is clearer for vector operations
func (a Vec4) Add(b Vec4) Vec4 {
	return Vec4{a.X + b.X, a.Y + b.Y, a.Z + b.Z, a.W + b.W}
}

// Sub returns the vector difference.
//
//nolint:st1016 // a-b naming convention is clearer for vector operations
func (a Vec4) Sub(b Vec4) Vec4 {
	return Vec4{a.X - b.X, a.Y - b.Y, a.Z - b.Z, a.W - b.W}
}

// Mul returns the component-wise product.
func (a Vec4) Mul(b Vec4) Vec4 {
	return Vec4{a.X * b.X, a.Y * b.Y, a.Z * b.Z, a.W * b.W}
}

// Scale returns the scalar product.
func (a Vec4) Scale(s float32) Vec4 {
	return Vec4{a.X * s, a.Y * s, a.Z * s, a.W * s}
}

func (a Vec4) Div(s float32) Vec4 {
	inv := 1 / s
	return a.Scale(inv)
}

func (a Vec4) Neg() Vec4 {
	return Vec4{-a.X, -a.Y, -a.Z, -a.W}
}

// Dot returns the dot product.
//
//nolint:st1016 // a·b naming convention is clearer for vector operations
func (a Vec4) Dot(b Vec4) float32 {
	return a.X*b.X + a.Y*b.Y + a.Z*b.Z + a.W*b.W
}

func (a Vec4) Compare(b Vec4) bool {
	return a == b
}

// CompareEpsilon reports whether every component is within epsilon.
func (a Vec4) CompareEpsilon(b Vec4, epsilon float32) bool {
	return Fabs(a.X-b.X) <= epsilon &&
		Fabs(a.Y-b.Y) <= epsilon &&
		Fabs(a.Z-b.Z) <= epsilon &&
		Fabs(a.W-b.W) <= epsilon
}

// Length returns the length.
func (a Vec4) Length() float32 {
	return Sqrt(a.LengthSqr())
}

func (a Vec4) LengthSqr() float32 {
	return a.X*a.X + a.Y*a.Y + a.Z*a.Z + a.W*a.W
}

// LengthFast returns the length using the 16-bit square root.
func (a Vec4) LengthFast() float32 {
	sqr := a.LengthSqr()
	return sqr * InvSqrt16(sqr)
}

// Normalize returns the unit vector.
func (a Vec4) Normalize() Vec4 {
	sqr := a.LengthSqr()
	if sqr == 0 {
		return Vec4{}
	}
	return a.Scale(InvSqrt(sqr))
}

func (a Vec4) NormalizeFast() Vec4 {
	sqr := a.LengthSqr()
	if sqr == 0 {
		return Vec4{}
	}
	return a.Scale(InvSqrt16(sqr))
}

// Truncate caps the length of the vector at length.
func (a Vec4) Truncate(length float32) Vec4 {
	if length < FltSmallestNonDenormal {
		return Vec4{}
	}
	sqr := a.LengthSqr()
	if sqr > length*length {
		return a.Scale(length * InvSqrt(sqr))
	}
	return a
}

// Clamp limits every component to [lo, hi].
func (a Vec4) Clamp(lo, hi Vec4) Vec4 {
	return Vec4{
		ClampFloat(lo.X, hi.X, a.X),
		ClampFloat(lo.Y, hi.Y, a.Y),
		ClampFloat(lo.Z, hi.Z, a.Z),
		ClampFloat(lo.W, hi.W, a.W),
	}
}

func (a Vec4) Snap() Vec4 {
	return Vec4{Rint(a.X), Rint(a.Y), Rint(a.Z), Rint(a.W)}
}

func (a Vec4) Dimension() int {
	return 4
}

// ToString formats the components with precision decimals.
func (a Vec4) ToString(precision int) string {
	return formatFloats(precision, a.X, a.Y, a.Z, a.W)
}

// LerpVec4 interpolates linearly from v1 to v2, returning the endpoints
// exactly outside (0, 1).
func LerpVec4(v1, v2 Vec4, l float32) Vec4 {
	if l <= 0 {
		return v1
	}
	if l >= 1 {
		return v2
	}
	return v1.Add(v2.Sub(v1).Scale(l))
}
