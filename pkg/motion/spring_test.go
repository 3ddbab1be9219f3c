package motion

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/taigrr/sugarbomb/pkg/sbmath"
)

func newTestSpring() *AngleSpring {
	return NewAngleSpring(60, DefaultFrequency, DefaultDamping)
}

func TestAngleSpringStartsAtRest(t *testing.T) {
	s := newTestSpring()
	assert.Equal(t, sbmath.AngZero, s.Angles())
	assert.True(t, s.Settled(0))

	for range 10 {
		s.Update()
	}
	assert.Equal(t, sbmath.AngZero, s.Angles())
}

func TestAngleSpringReachesTarget(t *testing.T) {
	s := newTestSpring()
	s.SetTarget(sbmath.Ang(30, 90, -45))

	for range 300 {
		s.Update()
	}

	got := s.Angles()
	require.InDelta(t, 30, got.Pitch, 1e-3)
	require.InDelta(t, 90, got.Yaw, 1e-3)
	require.InDelta(t, 315, got.Roll, 1e-3)
	assert.True(t, s.Settled(1e-3))
}

func TestAngleSpringShortestPath(t *testing.T) {
	s := newTestSpring()
	s.SetTarget(sbmath.Ang(0, 350, 0))

	for range 300 {
		yaw := s.Update().Yaw
		require.GreaterOrEqual(t, yaw, float32(0))
		require.Less(t, yaw, float32(360))
		// Critically damped from rest: moves monotonically through 0 to 350.
		signed := sbmath.AngleNormalize180(yaw)
		require.LessOrEqual(t, signed, float32(1e-3))
		require.GreaterOrEqual(t, signed, float32(-10-1e-3))
	}
	require.InDelta(t, 350, s.Angles().Yaw, 1e-3)
}

func TestAngleSpringSetTargetNormalizes(t *testing.T) {
	s := newTestSpring()
	s.SetTarget(sbmath.Ang(-90, 450, 0))
	assert.Equal(t, sbmath.Ang(270, 90, 0), s.Target())
	assert.False(t, s.Settled(1e-3))
}

func TestAngleSpringImpulse(t *testing.T) {
	s := newTestSpring()
	s.Impulse(sbmath.Ang(0, 100, 0))
	assert.Equal(t, float32(100), s.Velocity().Yaw)

	yaw := s.Update().Yaw
	assert.Greater(t, yaw, float32(0))
	assert.Less(t, yaw, float32(180))

	// The target is still zero, so the spring pulls the yaw back.
	for range 600 {
		s.Update()
	}
	assert.True(t, s.Settled(1e-3))
	assert.InDelta(t, 0, sbmath.AngleNormalize180(s.Angles().Yaw), 1e-3)
}

func TestAngleSpringReset(t *testing.T) {
	s := newTestSpring()
	s.SetTarget(sbmath.Ang(10, 20, 30))
	s.Impulse(sbmath.Ang(5, 5, 5))
	for range 5 {
		s.Update()
	}
	require.False(t, s.Settled(1e-3))

	s.Reset()
	assert.Equal(t, sbmath.AngZero, s.Angles())
	assert.Equal(t, sbmath.AngZero, s.Target())
	assert.Equal(t, sbmath.AngZero, s.Velocity())
	assert.True(t, s.Settled(0))
}

func BenchmarkAngleSpringUpdate(b *testing.B) {
	s := newTestSpring()
	s.SetTarget(sbmath.Ang(30, 90, 180))

	for b.Loop() {
		s.Update()
	}
}
