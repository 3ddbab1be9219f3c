// Package render draws sbmath geometry into a half-block terminal
// framebuffer.
package render

import (
	"image"
	"image/color"
	"image/png"
	"os"

	"github.com/taigrr/sugarbomb/pkg/sbmath"
)

// Framebuffer is a grid of pixels shown two per terminal cell using the
// upper half block, so Height is twice the number of terminal rows.
type Framebuffer struct {
	Width  int
	Height int
	Pixels []color.RGBA // row-major
}

// NewFramebuffer creates a framebuffer of width x height pixels.
func NewFramebuffer(width, height int) *Framebuffer {
	return &Framebuffer{
		Width:  width,
		Height: height,
		Pixels: make([]color.RGBA, width*height),
	}
}

// FramebufferSize returns the pixel size that fills a terminal area of
// cols x rows cells.
func FramebufferSize(cols, rows int) (width, height int) {
	return cols, rows * 2
}

// Resize changes the dimensions, reusing the pixel slice when it is large
// enough. The contents are undefined afterwards.
func (fb *Framebuffer) Resize(width, height int) {
	fb.Width, fb.Height = width, height
	if n := width * height; n <= cap(fb.Pixels) {
		fb.Pixels = fb.Pixels[:n]
	} else {
		fb.Pixels = make([]color.RGBA, n)
	}
}

// Clear fills the framebuffer with a solid color.
func (fb *Framebuffer) Clear(c color.RGBA) {
	for i := range fb.Pixels {
		fb.Pixels[i] = c
	}
}

// SetPixel sets the pixel at (x, y). Out of range coordinates are ignored.
func (fb *Framebuffer) SetPixel(x, y int, c color.RGBA) {
	if x < 0 || x >= fb.Width || y < 0 || y >= fb.Height {
		return
	}
	fb.Pixels[y*fb.Width+x] = c
}

// GetPixel returns the color at (x, y), or transparent black when out of
// range.
func (fb *Framebuffer) GetPixel(x, y int) color.RGBA {
	if x < 0 || x >= fb.Width || y < 0 || y >= fb.Height {
		return color.RGBA{}
	}
	return fb.Pixels[y*fb.Width+x]
}

// DrawLine draws a line from (x0, y0) to (x1, y1) using Bresenham's
// algorithm.
func (fb *Framebuffer) DrawLine(x0, y0, x1, y1 int, c color.RGBA) {
	dx := absInt(x1 - x0)
	dy := -absInt(y1 - y0)
	sx := 1
	if x0 > x1 {
		sx = -1
	}
	sy := 1
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy

	for {
		fb.SetPixel(x0, y0, c)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// DrawLineVec draws a line between two points in pixel space, rounding to
// the nearest pixel centers. The segment is clipped to the framebuffer
// first, so far away endpoints cost nothing.
func (fb *Framebuffer) DrawLineVec(a, b sbmath.Vec2, c color.RGBA) {
	maxX, maxY := float32(fb.Width-1), float32(fb.Height-1)
	a, b, ok := clipSegment(a, b, sbmath.V2(0, 0), sbmath.V2(maxX, maxY))
	if !ok {
		return
	}
	fb.DrawLine(pixel(a.X), pixel(a.Y), pixel(b.X), pixel(b.Y), c)
}

// clipSegment clips a-b to the box lo-hi with the Liang-Barsky algorithm.
func clipSegment(a, b, lo, hi sbmath.Vec2) (sbmath.Vec2, sbmath.Vec2, bool) {
	if lo.X > hi.X || lo.Y > hi.Y {
		return a, b, false
	}
	d := b.Sub(a)
	t0, t1 := float32(0), float32(1)
	edges := [4][2]float32{
		{-d.X, a.X - lo.X},
		{d.X, hi.X - a.X},
		{-d.Y, a.Y - lo.Y},
		{d.Y, hi.Y - a.Y},
	}
	for _, e := range edges {
		p, q := e[0], e[1]
		if p == 0 {
			if q < 0 {
				return a, b, false
			}
			continue
		}
		r := q / p
		if p < 0 {
			t0 = sbmath.Max(t0, r)
		} else {
			t1 = sbmath.Min(t1, r)
		}
		if t0 > t1 {
			return a, b, false
		}
	}
	return a.Add(d.Scale(t0)), a.Add(d.Scale(t1)), true
}

// DrawRectOutline draws a rectangle outline.
func (fb *Framebuffer) DrawRectOutline(x, y, w, h int, c color.RGBA) {
	if w <= 0 || h <= 0 {
		return
	}
	fb.DrawLine(x, y, x+w-1, y, c)
	fb.DrawLine(x, y+h-1, x+w-1, y+h-1, c)
	fb.DrawLine(x, y, x, y+h-1, c)
	fb.DrawLine(x+w-1, y, x+w-1, y+h-1, c)
}

// ToImage converts the framebuffer to an image.RGBA.
func (fb *Framebuffer) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, fb.Width, fb.Height))
	for y := range fb.Height {
		for x := range fb.Width {
			img.SetRGBA(x, y, fb.Pixels[y*fb.Width+x])
		}
	}
	return img
}

// SavePNG writes the framebuffer to path as a PNG file.
func (fb *Framebuffer) SavePNG(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return png.Encode(f, fb.ToImage())
}

// pixel rounds a coordinate to the nearest pixel, saturating far outside
// the int32 range.
func pixel(v float32) int {
	return int(sbmath.Ftoi(sbmath.Rint(v)))
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
