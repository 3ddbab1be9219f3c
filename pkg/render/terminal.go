package render

import (
	"image/color"

	uv "github.com/charmbracelet/ultraviolet"
)

const halfBlock = "▀"

// CellSetter is the part of uv.Screen the framebuffer draws through.
type CellSetter interface {
	SetCell(x, y int, c *uv.Cell)
}

// Draw writes the framebuffer onto scr inside area. Each cell shows two
// pixels: the foreground colors the top one and the background the bottom.
// Pixel rows are relative to the top of area.
func (fb *Framebuffer) Draw(scr CellSetter, area uv.Rectangle) {
	for row := area.Min.Y; row < area.Max.Y; row++ {
		topY := (row - area.Min.Y) * 2
		if topY >= fb.Height {
			break
		}

		for col := area.Min.X; col < area.Max.X; col++ {
			x := col - area.Min.X
			if x >= fb.Width {
				break
			}
			scr.SetCell(col, row, &uv.Cell{
				Content: halfBlock,
				Width:   1,
				Style: uv.Style{
					Fg: rgbaToColor(fb.GetPixel(x, topY)),
					Bg: rgbaToColor(fb.GetPixel(x, topY+1)),
				},
			})
		}
	}
}

// rgbaToColor maps fully transparent pixels to the terminal default color.
func rgbaToColor(c color.RGBA) color.Color {
	if c.A == 0 {
		return nil
	}
	return c
}

// Color is an alias for color.RGBA for convenience.
type Color = color.RGBA

// Axis colors follow the usual red, green, blue for forward, left, up.
var (
	ColorBlack  = color.RGBA{0, 0, 0, 255}
	ColorWhite  = color.RGBA{255, 255, 255, 255}
	ColorGray   = color.RGBA{128, 128, 128, 255}
	ColorRed    = color.RGBA{230, 60, 60, 255}
	ColorGreen  = color.RGBA{80, 200, 90, 255}
	ColorBlue   = color.RGBA{70, 120, 240, 255}
	ColorYellow = color.RGBA{240, 210, 60, 255}
)

// RGB creates an opaque color.
func RGB(r, g, b uint8) color.RGBA {
	return color.RGBA{r, g, b, 255}
}
