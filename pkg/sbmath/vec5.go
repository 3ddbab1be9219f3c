package sbmath

// Vec5 is a position with texture coordinates S and T.
type Vec5 struct {
	X, Y, Z, S, T float32
}

// Vec5Origin is the zero vector.
var Vec5Origin = Vec5{}

// V5 creates a Vec5 from a position and a texture coordinate.
func V5(xyz Vec3, st Vec2) Vec5 {
	return Vec5{xyz.X, xyz.Y, xyz.Z, st.X, st.Y}
}

// At returns component i. It panics if i is outside [0, 4].
func (a Vec5) At(i int) float32 {
	switch i {
	case 0:
		return a.X
	case 1:
		return a.Y
	case 2:
		return a.Z
	case 3:
		return a.S
	case 4:
		return a.T
	}
	panic("sbmath: Vec5 index out of range")
}

// Set assigns component i. It panics if i is outside [0, 4].
func (a *Vec5) Set(i int, v float32) {
	switch i {
	case 0:
		a.X = v
	case 1:
		a.Y = v
	case 2:
		a.Z = v
	case 3:
		a.S = v
	case 4:
		a.T = v
	default:
		panic("sbmath: Vec5 index out of range")
	}
}

func (a Vec5) ToVec3() Vec3 {
	return Vec3{a.X, a.Y, a.Z}
}

func (a Vec5) ST() Vec2 {
	return Vec2{a.S, a.T}
}

func (a Vec5) Add(b Vec5) Vec5 {
	return Vec5{a.X + b.X, a.Y + b.Y, a.Z + b.Z, a.S + b.S, a.T + b.T}
}

func (a Vec5) Sub(b Vec5) Vec5 {
	return Vec5{a.X - b.X, a.Y - b.Y, a.Z - b.Z, a.S - b.S, a.T - b.T}
}

func (a Vec5) Scale(s float32) Vec5 {
	return Vec5{a.X * s, a.Y * s, a.Z * s, a.S * s, a.T * s}
}

func (a Vec5) Dimension() int {
	return 5
}

// ToString formats the components with precision decimals.
func (a Vec5) ToString(precision int) string {
	return formatFloats(precision, a.X, a.Y, a.Z, a.S, a.T)
}

// LerpVec5 interpolates every component linearly from v1 to v2, returning
// the endpoints exactly outside (0, 1).
func LerpVec5(v1, v2 Vec5, l float32) Vec5 {
	if l <= 0 {
		return v1
	}
	if l >= 1 {
		return v2
	}
	return v1.Add(v2.Sub(v1).Scale(l))
}
