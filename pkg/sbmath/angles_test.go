package sbmath

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requireMat3Near(t *testing.T, want, got Mat3, epsilon float32) {
	t.Helper()
	require.Truef(t, want.CompareEpsilon(got, epsilon), "want %v, got %v", want, got)
}

var testAngles = []Angles{
	{30, 45, 60},
	{-20, 170, 10},
	{10, -100, -75},
	{0, 90, 0},
	{45, 0, 0},
	{0, 0, 30},
	{80, 200, -150},
}

func TestAnglesArithmetic(t *testing.T) {
	a := Ang(10, 20, 30)
	b := Ang(1, 2, 3)

	assert.Equal(t, Ang(11, 22, 33), a.Add(b))
	assert.Equal(t, Ang(9, 18, 27), a.Sub(b))
	assert.Equal(t, Ang(20, 40, 60), a.Scale(2))
	assert.Equal(t, Ang(5, 10, 15), a.Div(2))
	assert.Equal(t, Ang(-10, -20, -30), a.Neg())
	assert.Equal(t, float32(20), a.At(1))
	assert.Panics(t, func() { a.At(3) })

	a.Set(2, 5)
	assert.Equal(t, float32(5), a.Roll)
}

func TestAnglesCompare(t *testing.T) {
	a := Ang(0, 360, 0)
	require.False(t, a.Compare(AngZero))
	require.False(t, a.CompareEpsilon(AngZero, 0.1))
	require.True(t, a.Normalize360().Compare(AngZero))
	require.True(t, Ang(1, 2, 3).CompareEpsilon(Ang(1.05, 2, 3), 0.1))
}

func TestAnglesNormalize(t *testing.T) {
	a := Ang(-90, 540, 190)
	assert.Equal(t, Ang(270, 180, 190), a.Normalize360())
	assert.Equal(t, Ang(-90, 180, -170), a.Normalize180())
}

func TestAnglesClamp(t *testing.T) {
	a := Ang(100, -50, 10)
	got := a.Clamp(Ang(-89, -30, -180), Ang(89, 30, 180))
	assert.Equal(t, Ang(89, -30, 10), got)
}

func TestAnglesToVectors(t *testing.T) {
	for _, a := range testAngles {
		fwd, right, up := a.ToVectors()
		m := a.ToMat3()

		requireVec3Near(t, m[0], fwd, 1e-6)
		requireVec3Near(t, m[1], right.Neg(), 1e-6)
		requireVec3Near(t, m[2], up, 1e-6)
		requireVec3Near(t, fwd, a.ToForward(), 1e-6)

		require.InDelta(t, 0, fwd.Dot(right), 1e-6)
		require.InDelta(t, 0, fwd.Dot(up), 1e-6)
		requireVec3Near(t, up, right.Cross(fwd), 1e-5)
	}
}

func TestAnglesKnownDirections(t *testing.T) {
	requireVec3Near(t, V3(0, 1, 0), Ang(0, 90, 0).ToForward(), 1e-6)
	requireVec3Near(t, V3(0, 0, -1), Ang(90, 0, 0).ToForward(), 1e-6)

	_, right, up := Ang(0, 0, 90).ToVectors()
	requireVec3Near(t, V3(0, 0, -1), right, 1e-6)
	requireVec3Near(t, V3(0, -1, 0), up, 1e-6)
}

func TestAnglesRepresentationsAgree(t *testing.T) {
	for _, a := range testAngles {
		m := a.ToMat3()

		requireMat3Near(t, m, a.ToQuat().ToMat3(), 1e-5)
		requireMat3Near(t, m, a.ToRotation().ToMat3(), 1e-5)
		requireMat3Near(t, m, a.ToMat4().ToMat3(), 0)
		require.InDelta(t, 1, a.ToQuat().Length(), 1e-6)
	}
}

func TestAnglesMatrixRoundTrip(t *testing.T) {
	for _, a := range testAngles {
		back := a.ToMat3().ToAngles()
		requireMat3Near(t, a.ToMat3(), back.ToMat3(), 1e-5)
		if a.Pitch > -90 && a.Pitch < 90 {
			require.True(t, a.Normalize180().CompareEpsilon(back.Normalize180(), 1e-3),
				"want %v, got %v", a, back)
		}
	}
}

func TestAnglesToRotationSingleAxis(t *testing.T) {
	tests := []struct {
		name  string
		a     Angles
		axis  Vec3
		angle float32
	}{
		{"yaw", Ang(0, 90, 0), V3(0, 0, -1), 90},
		{"pitch", Ang(30, 0, 0), V3(0, -1, 0), 30},
		{"roll", Ang(0, 0, 45), V3(-1, 0, 0), 45},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := tt.a.ToRotation()
			require.Equal(t, tt.axis, r.Vec)
			require.Equal(t, tt.angle, r.Angle)
		})
	}

	requireVec3Near(t, V3(0, 1, 0), Ang(0, 90, 0).ToRotation().RotatePoint(V3(1, 0, 0)), 1e-6)
}

func TestAnglesToAngularVelocity(t *testing.T) {
	w := Ang(0, 90, 0).ToAngularVelocity()
	requireVec3Near(t, V3(0, 0, -HalfPi), w, 1e-6)

	a := Ang(30, 45, 60)
	requireVec3Near(t, a.ToMat3().ToAngularVelocity(), a.ToAngularVelocity(), 1e-4)
}

func TestAnglesToString(t *testing.T) {
	assert.Equal(t, "1.5 -2.0 90.0", Ang(1.5, -2, 90).ToString(1))
}

func TestPolar3(t *testing.T) {
	p := Polar3{Radius: 2, Theta: 90, Phi: 0}
	requireVec3Near(t, V3(0, 2, 0), p.ToVec3(), 1e-6)

	up := Polar3{Radius: 1, Phi: -90}
	requireVec3Near(t, V3(0, 0, 1), up.ToVec3(), 1e-6)

	assert.Equal(t, "2.00 90.00 0.00", p.ToString(2))
}
