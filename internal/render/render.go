// Package render rasterizes the tide model onto the 128x32 monochrome
// backbuffer: waveform graph with the erase-of-past effect, extreme labels,
// the water-mark gauge, and bitmap text. Everything here is a pure function
// of its inputs for one frame; no painter holds state across frames.
package render

import (
	"image"
	"image/color"
	"time"
)

// Logical canvas dimensions. The renderer never writes outside these bounds.
const (
	ScreenWidth  = 128
	ScreenHeight = 32
)

var (
	// White is the foreground (lit pixel) intent.
	White = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	// Black is the background intent.
	Black = color.RGBA{R: 0, G: 0, B: 0, A: 255}
)

// Position is a pixel coordinate on the canvas.
type Position struct {
	X int
	Y int
}

// Bounds is a pixel extent.
type Bounds struct {
	W int
	H int
}

// Painter draws one element of a frame onto the backbuffer.
type Painter interface {
	Paint(buf *image.RGBA, now time.Time)
}

// NewFrame allocates a cleared 128x32 backbuffer.
func NewFrame() *image.RGBA {
	buf := image.NewRGBA(image.Rect(0, 0, ScreenWidth, ScreenHeight))
	for i := 0; i < len(buf.Pix); i += 4 {
		buf.Pix[i+3] = 0xFF
	}
	return buf
}

// setPixel writes c at (x,y), silently dropping out-of-bounds coordinates.
// Partial overflow at the canvas edge is expected (labels, descenders) and
// is never an error.
func setPixel(buf *image.RGBA, x, y int, c color.RGBA) {
	if x < 0 || x >= ScreenWidth || y < 0 || y >= ScreenHeight {
		return
	}
	buf.SetRGBA(x, y, c)
}

// lit reports whether the pixel at (x,y) is foreground. Out-of-bounds
// coordinates read as background.
func lit(buf *image.RGBA, x, y int) bool {
	if x < 0 || x >= ScreenWidth || y < 0 || y >= ScreenHeight {
		return false
	}
	return buf.RGBAAt(x, y).R != 0
}
