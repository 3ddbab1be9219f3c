package sbmath

// Vec2 represents a 2D vector.
type Vec2 struct {
	X, Y float32
}

// Vec2Origin is the zero vector.
var Vec2Origin = Vec2{}

// V2 creates a new Vec2.
func V2(x, y float32) Vec2 {
	return Vec2{x, y}
}

// At returns component i. It panics if i is not 0 or 1.
func (a Vec2) At(i int) float32 {
	switch i {
	case 0:
		return a.X
	case 1:
		return a.Y
	}
	panic("sbmath: Vec2 index out of range")
}

// Set assigns component i. It panics if i is not 0 or 1.
func (a *Vec2) Set(i int, v float32) {
	switch i {
	case 0:
		a.X = v
	case 1:
		a.Y = v
	default:
		panic("sbmath: Vec2 index out of range")
	}
}

// Add returns the vector sum a + b.
func (a Vec2) Add(b Vec2) Vec2 {
	return Vec2{a.X + b.X, a.Y + b.Y}
}

// Sub returns the vector difference a - b.
func (a Vec2) Sub(b Vec2) Vec2 {
	return Vec2{a.X - b.X, a.Y - b.Y}
}

// Mul returns the component-wise product.
func (a Vec2) Mul(b Vec2) Vec2 {
	return Vec2{a.X * b.X, a.Y * b.Y}
}

// Scale returns the scalar product.
func (a Vec2) Scale(s float32) Vec2 {
	return Vec2{a.X * s, a.Y * s}
}

// Div returns the scalar division a / s.
func (a Vec2) Div(s float32) Vec2 {
	inv := 1 / s
	return Vec2{a.X * inv, a.Y * inv}
}

// Neg returns the negated vector.
func (a Vec2) Neg() Vec2 {
	return Vec2{-a.X, -a.Y}
}

// Dot returns the dot product.
func (a Vec2) Dot(b Vec2) float32 {
	return a.X*b.X + a.Y*b.Y
}

func (a Vec2) Compare(b Vec2) bool {
	return a == b
}

// CompareEpsilon reports whether both components are within epsilon.
func (a Vec2) CompareEpsilon(b Vec2, epsilon float32) bool {
	return Fabs(a.X-b.X) <= epsilon && Fabs(a.Y-b.Y) <= epsilon
}

// Length returns the length of the vector.
func (a Vec2) Length() float32 {
	return Sqrt(a.X*a.X + a.Y*a.Y)
}

func (a Vec2) LengthSqr() float32 {
	return a.X*a.X + a.Y*a.Y
}

// LengthFast returns the length using the 16-bit square root.
func (a Vec2) LengthFast() float32 {
	sqr := a.LengthSqr()
	return sqr * InvSqrt16(sqr)
}

// Normalize returns the unit vector in the same direction.
func (a Vec2) Normalize() Vec2 {
	sqr := a.LengthSqr()
	if sqr == 0 {
		return Vec2{}
	}
	return a.Scale(InvSqrt(sqr))
}

// NormalizeFast normalizes using the 16-bit inverse square root.
func (a Vec2) NormalizeFast() Vec2 {
	sqr := a.LengthSqr()
	if sqr == 0 {
		return Vec2{}
	}
	return a.Scale(InvSqrt16(sqr))
}

// Truncate caps the length of the vector at length.
func (a Vec2) Truncate(length float32) Vec2 {
	if length < FltSmallestNonDenormal {
		return Vec2{}
	}
	sqr := a.LengthSqr()
	if sqr > length*length {
		return a.Scale(length * InvSqrt(sqr))
	}
	return a
}

// Clamp limits every component to [lo, hi].
func (a Vec2) Clamp(lo, hi Vec2) Vec2 {
	return Vec2{ClampFloat(lo.X, hi.X, a.X), ClampFloat(lo.Y, hi.Y, a.Y)}
}

// Snap rounds both components to the nearest integer.
func (a Vec2) Snap() Vec2 {
	return Vec2{Rint(a.X), Rint(a.Y)}
}

func (a Vec2) Dimension() int {
	return 2
}

// ToString formats the components with precision decimals.
func (a Vec2) ToString(precision int) string {
	return formatFloats(precision, a.X, a.Y)
}

// LerpVec2 interpolates linearly from v1 to v2. l <= 0 yields v1 and
// l >= 1 yields v2 exactly.
func LerpVec2(v1, v2 Vec2, l float32) Vec2 {
	if l <= 0 {
		return v1
	}
	if l >= 1 {
		return v2
	}
	return v1.Add(v2.Sub(v1).Scale(l))
}
