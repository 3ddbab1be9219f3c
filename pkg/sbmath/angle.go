package sbmath

import "math"

// AngleNormalize360 reduces angle, in degrees, to [0, 360).
func AngleNormalize360(angle float32) float32 {
	// Drops the sign of -0.
	if angle == 0 {
		return 0
	}
	if angle >= 360 || angle < 0 {
		a := math.Mod(float64(angle), 360)
		if a < 0 {
			a += 360
		}
		angle = float32(a)
		// Tiny negative inputs round up to exactly 360 in float32.
		if angle >= 360 {
			angle = 0
		}
	}
	return angle
}

// AngleNormalize180 reduces angle, in degrees, to (-180, 180].
func AngleNormalize180(angle float32) float32 {
	angle = AngleNormalize360(angle)
	if angle > 180 {
		angle -= 360
	}
	return angle
}

// AngleDelta returns the shortest signed rotation, in degrees, that takes
// angle2 to angle1.
func AngleDelta(angle1, angle2 float32) float32 {
	return AngleNormalize180(angle1 - angle2)
}
