package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/taigrr/sugarbomb/pkg/sbmath"
)

// newTestWireframe looks down +X into a 21x21 framebuffer, so world units
// are 10.5 pixels and the origin lands on pixel (11, 11).
func newTestWireframe() (*Wireframe, *Framebuffer) {
	fb := NewFramebuffer(21, 21)
	return NewWireframe(&Camera{Zoom: 1}, fb), fb
}

func TestWireframeProject(t *testing.T) {
	w, _ := newTestWireframe()
	p := w.Project(sbmath.V3(5, -1, 0.5))
	assert.InDelta(t, 21, p.X, 1e-5)
	assert.InDelta(t, 5.25, p.Y, 1e-5)
}

func TestWireframeDrawAxesDepthOrder(t *testing.T) {
	w, fb := newTestWireframe()
	w.DrawAxes(sbmath.Mat3Identity, 0.5)

	// Forward points away from the viewer and is hidden behind the others.
	assert.Equal(t, 0, countPixels(fb, ColorRed))
	assert.Equal(t, ColorBlue, fb.GetPixel(11, 11))
	assert.Equal(t, ColorGreen, fb.GetPixel(5, 11))
	assert.Equal(t, ColorGreen, fb.GetPixel(8, 11))
	assert.Equal(t, ColorBlue, fb.GetPixel(11, 5))
}

func TestWireframeDrawAxesForwardOnTop(t *testing.T) {
	w, fb := newTestWireframe()
	// Yaw 180 turns forward toward the viewer.
	w.DrawAxes(sbmath.Ang(0, 180, 0).ToMat3(), 0.5)
	assert.Equal(t, ColorRed, fb.GetPixel(11, 11))
}

func TestWireframeDrawTransformedCube(t *testing.T) {
	w, fb := newTestWireframe()
	w.DrawTransformedCube(sbmath.Mat4Identity, 1, ColorGray)

	for _, p := range [][2]int{{5, 5}, {16, 16}, {5, 16}, {16, 5}, {10, 5}, {5, 10}} {
		assert.Equal(t, ColorGray, fb.GetPixel(p[0], p[1]), "pixel %v", p)
	}
	assert.NotEqual(t, ColorGray, fb.GetPixel(11, 11))

	fb.Clear(ColorBlack)
	w.DrawTransformedCube(sbmath.NewMat4Translation(sbmath.V3(0, 0, 100)), 1, ColorGray)
	assert.Equal(t, 0, countPixels(fb, ColorGray))
}

func TestWireframeDrawOrientation(t *testing.T) {
	w, fb := newTestWireframe()
	w.DrawOrientation(sbmath.AngZero, 1)

	assert.Equal(t, ColorGreen, fb.GetPixel(0, 11))
	assert.Equal(t, ColorBlue, fb.GetPixel(11, 0))
	assert.Equal(t, ColorGray, fb.GetPixel(5, 5))
	assert.Equal(t, ColorGray, fb.GetPixel(16, 16))
}

func BenchmarkDrawOrientation(b *testing.B) {
	fb := NewFramebuffer(160, 96)
	w := NewWireframe(NewCamera(), fb)
	a := sbmath.Ang(20, 40, 10)

	for b.Loop() {
		w.DrawOrientation(a, 0.8)
	}
}
