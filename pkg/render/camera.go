package render

import (
	"github.com/taigrr/sugarbomb/pkg/sbmath"
)

// Camera is an orthographic view looking at the origin. Its orientation
// uses engine Euler angles in degrees, so positive pitch looks down.
type Camera struct {
	// Angles is the view orientation. Change it with SetAngles so the
	// cached basis follows.
	Angles sbmath.Angles

	// Zoom scales world units to half the shorter framebuffer side.
	Zoom float32

	// Cached basis (computed on demand)
	forward, right, up sbmath.Vec3
	viewValid          bool
}

// NewCamera creates a camera looking down at the origin from the front
// right, so all three axes are visible.
func NewCamera() *Camera {
	return &Camera{
		Angles: sbmath.Ang(25, 215, 0),
		Zoom:   1,
	}
}

// SetAngles sets the view orientation.
func (c *Camera) SetAngles(a sbmath.Angles) {
	c.Angles = a
	c.viewValid = false
}

// SetZoom sets the zoom factor.
func (c *Camera) SetZoom(zoom float32) {
	c.Zoom = zoom
}

func (c *Camera) updateView() {
	if c.viewValid {
		return
	}
	c.forward, c.right, c.up = c.Angles.ToVectors()
	c.viewValid = true
}

// ViewMatrix returns the rotation taking world vectors into camera space,
// with rows right, up, forward.
func (c *Camera) ViewMatrix() sbmath.Mat3 {
	c.updateView()
	// MulVec applies the transpose, so the basis goes in the columns.
	return sbmath.Mat3{c.right, c.up, c.forward}.Transpose()
}

// WorldToScreen projects p onto a width x height framebuffer. Depth grows
// away from the viewer.
func (c *Camera) WorldToScreen(p sbmath.Vec3, width, height int) (x, y, depth float32) {
	c.updateView()
	scale := c.Zoom * float32(min(width, height)) / 2
	x = float32(width)/2 + p.Dot(c.right)*scale
	y = float32(height)/2 - p.Dot(c.up)*scale
	return x, y, p.Dot(c.forward)
}
