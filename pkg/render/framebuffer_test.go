package render

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	uv "github.com/charmbracelet/ultraviolet"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/taigrr/sugarbomb/pkg/sbmath"
)

func countPixels(fb *Framebuffer, c color.RGBA) int {
	n := 0
	for _, p := range fb.Pixels {
		if p == c {
			n++
		}
	}
	return n
}

func TestFramebufferPixels(t *testing.T) {
	fb := NewFramebuffer(4, 3)
	require.Len(t, fb.Pixels, 12)

	fb.SetPixel(1, 2, ColorRed)
	assert.Equal(t, ColorRed, fb.GetPixel(1, 2))
	assert.Equal(t, ColorRed, fb.Pixels[2*4+1])

	// Out of range writes are dropped and reads are transparent.
	fb.SetPixel(-1, 0, ColorRed)
	fb.SetPixel(4, 0, ColorRed)
	fb.SetPixel(0, 3, ColorRed)
	assert.Equal(t, 1, countPixels(fb, ColorRed))
	assert.Equal(t, color.RGBA{}, fb.GetPixel(10, 10))

	fb.Clear(ColorWhite)
	assert.Equal(t, 12, countPixels(fb, ColorWhite))
}

func TestFramebufferSize(t *testing.T) {
	w, h := FramebufferSize(80, 24)
	assert.Equal(t, 80, w)
	assert.Equal(t, 48, h)
}

func TestFramebufferResize(t *testing.T) {
	fb := NewFramebuffer(8, 8)
	fb.Resize(4, 2)
	assert.Equal(t, 4, fb.Width)
	assert.Equal(t, 2, fb.Height)
	assert.Len(t, fb.Pixels, 8)
	assert.Equal(t, 64, cap(fb.Pixels))

	fb.Resize(10, 10)
	assert.Len(t, fb.Pixels, 100)
}

func TestDrawLine(t *testing.T) {
	tests := []struct {
		name           string
		x0, y0, x1, y1 int
		want           [][2]int
	}{
		{"horizontal", 0, 1, 3, 1, [][2]int{{0, 1}, {1, 1}, {2, 1}, {3, 1}}},
		{"vertical reversed", 2, 3, 2, 0, [][2]int{{2, 0}, {2, 1}, {2, 2}, {2, 3}}},
		{"diagonal", 0, 0, 3, 3, [][2]int{{0, 0}, {1, 1}, {2, 2}, {3, 3}}},
		{"point", 2, 2, 2, 2, [][2]int{{2, 2}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fb := NewFramebuffer(5, 5)
			fb.DrawLine(tt.x0, tt.y0, tt.x1, tt.y1, ColorGreen)
			assert.Equal(t, len(tt.want), countPixels(fb, ColorGreen))
			for _, p := range tt.want {
				assert.Equal(t, ColorGreen, fb.GetPixel(p[0], p[1]), "pixel %v", p)
			}
		})
	}
}

func TestDrawLineVecClips(t *testing.T) {
	fb := NewFramebuffer(10, 10)
	fb.DrawLineVec(sbmath.V2(-100, 5), sbmath.V2(200, 5), ColorBlue)
	assert.Equal(t, 10, countPixels(fb, ColorBlue))
	for x := range 10 {
		assert.Equal(t, ColorBlue, fb.GetPixel(x, 5))
	}

	fb.Clear(color.RGBA{})
	fb.DrawLineVec(sbmath.V2(3, -50), sbmath.V2(3, 50), ColorBlue)
	assert.Equal(t, 10, countPixels(fb, ColorBlue))

	fb.Clear(color.RGBA{})
	fb.DrawLineVec(sbmath.V2(-5, -5), sbmath.V2(-1, -1), ColorBlue)
	fb.DrawLineVec(sbmath.V2(20, 0), sbmath.V2(20, 9), ColorBlue)
	assert.Equal(t, 0, countPixels(fb, ColorBlue))

	// Endpoints round to the nearest pixel.
	fb.DrawLineVec(sbmath.V2(1.4, 2.6), sbmath.V2(1.4, 2.6), ColorRed)
	assert.Equal(t, ColorRed, fb.GetPixel(1, 3))

	// An empty framebuffer draws nothing and does not panic.
	empty := NewFramebuffer(0, 0)
	empty.DrawLineVec(sbmath.V2(0, 0), sbmath.V2(5, 5), ColorRed)
}

func TestClipSegment(t *testing.T) {
	lo, hi := sbmath.V2(0, 0), sbmath.V2(10, 10)

	a, b, ok := clipSegment(sbmath.V2(1, 2), sbmath.V2(3, 4), lo, hi)
	require.True(t, ok)
	assert.Equal(t, sbmath.V2(1, 2), a)
	assert.Equal(t, sbmath.V2(3, 4), b)

	a, b, ok = clipSegment(sbmath.V2(-10, 0), sbmath.V2(10, 20), lo, hi)
	require.True(t, ok)
	assert.InDelta(t, 0, a.X, 1e-5)
	assert.InDelta(t, 10, a.Y, 1e-5)
	assert.InDelta(t, 0, b.X, 1e-5)
	assert.InDelta(t, 10, b.Y, 1e-5)

	_, _, ok = clipSegment(sbmath.V2(-1, 0), sbmath.V2(-1, 10), lo, hi)
	assert.False(t, ok)
	_, _, ok = clipSegment(sbmath.V2(0, 0), sbmath.V2(1, 1), hi, lo)
	assert.False(t, ok)
}

func TestDrawRectOutline(t *testing.T) {
	fb := NewFramebuffer(6, 5)
	fb.DrawRectOutline(1, 1, 4, 3, ColorYellow)
	for _, p := range [][2]int{{1, 1}, {4, 1}, {1, 3}, {4, 3}, {2, 1}, {1, 2}} {
		assert.Equal(t, ColorYellow, fb.GetPixel(p[0], p[1]), "pixel %v", p)
	}
	assert.Equal(t, color.RGBA{}, fb.GetPixel(2, 2))
	assert.Equal(t, 10, countPixels(fb, ColorYellow))

	fb.Clear(color.RGBA{})
	fb.DrawRectOutline(0, 0, 0, 3, ColorYellow)
	assert.Equal(t, 0, countPixels(fb, ColorYellow))
}

func TestSavePNG(t *testing.T) {
	fb := NewFramebuffer(3, 2)
	fb.Clear(ColorBlack)
	fb.SetPixel(2, 1, ColorRed)

	path := filepath.Join(t.TempDir(), "frame.png")
	require.NoError(t, fb.SavePNG(path))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	img, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 3, 2), img.Bounds())
	assert.Equal(t, color.NRGBAModel.Convert(ColorRed), color.NRGBAModel.Convert(img.At(2, 1)))
	assert.Equal(t, color.NRGBAModel.Convert(ColorBlack), color.NRGBAModel.Convert(img.At(0, 0)))
}

type fakeScreen struct {
	cells map[image.Point]*uv.Cell
}

func (s *fakeScreen) SetCell(x, y int, c *uv.Cell) {
	s.cells[image.Pt(x, y)] = c
}

func TestFramebufferDraw(t *testing.T) {
	fb := NewFramebuffer(2, 4)
	fb.SetPixel(0, 0, ColorRed)
	fb.SetPixel(0, 1, ColorBlue)
	fb.SetPixel(1, 2, ColorGreen)

	scr := &fakeScreen{cells: make(map[image.Point]*uv.Cell)}
	fb.Draw(scr, uv.Rectangle{Min: image.Pt(3, 1), Max: image.Pt(10, 10)})

	// Only the cells the framebuffer covers are written.
	require.Len(t, scr.cells, 4)

	top := scr.cells[image.Pt(3, 1)]
	require.NotNil(t, top)
	assert.Equal(t, "▀", top.Content)
	assert.Equal(t, 1, top.Width)
	assert.Equal(t, color.Color(ColorRed), top.Style.Fg)
	assert.Equal(t, color.Color(ColorBlue), top.Style.Bg)

	bottom := scr.cells[image.Pt(4, 2)]
	require.NotNil(t, bottom)
	assert.Equal(t, color.Color(ColorGreen), bottom.Style.Fg)
	assert.Nil(t, bottom.Style.Bg)

	empty := scr.cells[image.Pt(4, 1)]
	require.NotNil(t, empty)
	assert.Nil(t, empty.Style.Fg)
	assert.Nil(t, empty.Style.Bg)
}
