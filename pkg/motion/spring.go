// Package motion animates Euler angles with damped springs.
package motion

import (
	"math"

	"github.com/charmbracelet/harmonica"
	"github.com/taigrr/sugarbomb/pkg/sbmath"
)

// Default spring parameters. A damping ratio of 1 is critically damped and
// never overshoots the target.
const (
	DefaultFrequency = 4.0
	DefaultDamping   = 1.0
)

// axis tracks one Euler component. Position is kept unwrapped so the spring
// sees a continuous signal; callers only observe the normalized value.
type axis struct {
	position float64
	velocity float64
	target   float64
	spring   harmonica.Spring
}

func newAxis(fps int, frequency, damping float64) axis {
	return axis{spring: harmonica.NewSpring(harmonica.FPS(fps), frequency, damping)}
}

func (a *axis) update() {
	// Steer toward the nearest equivalent of the target.
	delta := sbmath.AngleDelta(float32(a.target), float32(a.position))
	goal := a.position + float64(delta)
	a.position, a.velocity = a.spring.Update(a.position, a.velocity, goal)
}

func (a *axis) settled(epsilon float64) bool {
	delta := sbmath.AngleDelta(float32(a.target), float32(a.position))
	return math.Abs(float64(delta)) <= epsilon && math.Abs(a.velocity) <= epsilon
}

// AngleSpring smoothly moves a set of Angles toward a target orientation,
// one frame per Update. All values are in degrees.
type AngleSpring struct {
	pitch, yaw, roll axis
	fps              int
	frequency        float64
	damping          float64
}

// NewAngleSpring creates a spring stepping at fps frames per second with
// the given angular frequency and damping ratio.
func NewAngleSpring(fps int, frequency, damping float64) *AngleSpring {
	s := &AngleSpring{fps: fps, frequency: frequency, damping: damping}
	s.Reset()
	return s
}

// Update advances the spring by one frame and returns the new angles.
func (s *AngleSpring) Update() sbmath.Angles {
	s.pitch.update()
	s.yaw.update()
	s.roll.update()
	return s.Angles()
}

// Angles returns the current orientation, each component in [0, 360).
func (s *AngleSpring) Angles() sbmath.Angles {
	return sbmath.Ang(float32(s.pitch.position), float32(s.yaw.position), float32(s.roll.position)).Normalize360()
}

// Velocity returns the current angular velocity in degrees per second.
func (s *AngleSpring) Velocity() sbmath.Angles {
	return sbmath.Ang(float32(s.pitch.velocity), float32(s.yaw.velocity), float32(s.roll.velocity))
}

// Target returns the orientation the spring is moving toward.
func (s *AngleSpring) Target() sbmath.Angles {
	return sbmath.Ang(float32(s.pitch.target), float32(s.yaw.target), float32(s.roll.target))
}

// SetTarget changes the goal orientation. The spring takes the shortest
// path on each axis, so a target of 350 from 10 moves through 0.
func (s *AngleSpring) SetTarget(target sbmath.Angles) {
	target = target.Normalize360()
	s.pitch.target = float64(target.Pitch)
	s.yaw.target = float64(target.Yaw)
	s.roll.target = float64(target.Roll)
}

// Impulse adds to the angular velocity of each axis, in degrees per second.
func (s *AngleSpring) Impulse(delta sbmath.Angles) {
	s.pitch.velocity += float64(delta.Pitch)
	s.yaw.velocity += float64(delta.Yaw)
	s.roll.velocity += float64(delta.Roll)
}

// Reset puts the spring at rest at the zero orientation with a zero target.
func (s *AngleSpring) Reset() {
	s.pitch = newAxis(s.fps, s.frequency, s.damping)
	s.yaw = newAxis(s.fps, s.frequency, s.damping)
	s.roll = newAxis(s.fps, s.frequency, s.damping)
}

// Settled reports whether every axis is within epsilon degrees of its
// target and moving slower than epsilon.
func (s *AngleSpring) Settled(epsilon float64) bool {
	return s.pitch.settled(epsilon) && s.yaw.settled(epsilon) && s.roll.settled(epsilon)
}
