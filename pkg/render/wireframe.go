package render

import (
	"cmp"
	"slices"

	"github.com/taigrr/sugarbomb/pkg/sbmath"
)

// Wireframe draws 3D line geometry through a camera into a framebuffer.
type Wireframe struct {
	camera *Camera
	fb     *Framebuffer
}

// NewWireframe creates a new wireframe renderer.
func NewWireframe(camera *Camera, fb *Framebuffer) *Wireframe {
	return &Wireframe{
		camera: camera,
		fb:     fb,
	}
}

// Project returns the pixel position of a world point.
func (w *Wireframe) Project(p sbmath.Vec3) sbmath.Vec2 {
	x, y, _ := w.camera.WorldToScreen(p, w.fb.Width, w.fb.Height)
	return sbmath.V2(x, y)
}

// DrawLine3D draws a line in 3D space.
func (w *Wireframe) DrawLine3D(p1, p2 sbmath.Vec3, color Color) {
	w.fb.DrawLineVec(w.Project(p1), w.Project(p2), color)
}

var cubeEdges = [12][2]int{
	{0, 1}, {1, 3}, {3, 2}, {2, 0}, // bottom
	{4, 5}, {5, 7}, {7, 6}, {6, 4}, // top
	{0, 4}, {1, 5}, {2, 6}, {3, 7},
}

// DrawTransformedCube draws a wireframe cube of the given edge length,
// centered on the origin and moved by transform.
func (w *Wireframe) DrawTransformedCube(transform sbmath.Mat4, size float32, color Color) {
	half := size / 2
	var verts [8]sbmath.Vec3
	for i := range verts {
		v := sbmath.V3(-half, -half, -half)
		if i&1 != 0 {
			v.X = half
		}
		if i&2 != 0 {
			v.Y = half
		}
		if i&4 != 0 {
			v.Z = half
		}
		verts[i] = transform.MulVec3(v)
	}

	for _, edge := range cubeEdges {
		w.DrawLine3D(verts[edge[0]], verts[edge[1]], color)
	}
}

// axisColors indexes the rows of a Mat3 basis: forward, left, up.
var axisColors = [3]Color{ColorRed, ColorGreen, ColorBlue}

// DrawAxes draws the rows of an orientation basis from the origin. Axes
// farther from the viewer are drawn first so nearer ones stay on top.
func (w *Wireframe) DrawAxes(basis sbmath.Mat3, length float32) {
	order := []int{0, 1, 2}
	depth := func(i int) float32 {
		_, _, d := w.camera.WorldToScreen(basis[i], w.fb.Width, w.fb.Height)
		return d
	}
	slices.SortStableFunc(order, func(a, b int) int {
		return cmp.Compare(depth(b), depth(a))
	})

	for _, i := range order {
		w.DrawLine3D(sbmath.Vec3Origin, basis[i].Scale(length), axisColors[i])
	}
}

// DrawOrientation draws the orientation gizmo for a: a cube rotated by a
// with its basis axes on top.
func (w *Wireframe) DrawOrientation(a sbmath.Angles, length float32) {
	w.DrawTransformedCube(a.ToMat4(), length, ColorGray)
	w.DrawAxes(a.ToMat3(), length)
}
