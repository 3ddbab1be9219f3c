package sbmath

// Polar3 is a point in spherical coordinates. Theta is the yaw and Phi the
// negated pitch, both in degrees, matching Vec3.ToPolar.
type Polar3 struct {
	Radius, Theta, Phi float32
}

// ToVec3 converts p back to Cartesian coordinates.
func (p Polar3) ToVec3() Vec3 {
	sp, cp := SinCos(Deg2Rad(p.Phi))
	st, ct := SinCos(Deg2Rad(p.Theta))
	return Vec3{cp * p.Radius * ct, cp * p.Radius * st, -p.Radius * sp}
}

func (p Polar3) Neg() Polar3 {
	return Polar3{-p.Radius, p.Theta, p.Phi}
}

// ToString formats radius, theta and phi with precision decimals.
func (p Polar3) ToString(precision int) string {
	return formatFloats(precision, p.Radius, p.Theta, p.Phi)
}
