package render

import (
	"image"
	"time"

	"github.com/tideclock/tideclock/internal/tide"
	"github.com/tideclock/tideclock/pkg/interp"
)

// erosionMask is the fixed 3x3 structuring pattern for the erase-of-past
// pass, row-major:
//
//	0 1 0
//	1 1 1
//	1 1 1
var erosionMask = [9]uint8{0, 1, 0, 1, 1, 1, 1, 1, 1}

// GraphCanvas rasterizes one tide window into a rectangular region of the
// backbuffer: the waveform silhouette, the extreme labels, the dashed "now"
// play head, and the erase-of-past erosion pass, in that order. Labels read
// pixels the waveform pass wrote, so the ordering is load-bearing.
type GraphCanvas struct {
	pos    Position
	bounds Bounds
	window tide.Window
	font   *Font
}

// NewGraphCanvas creates a canvas for one frame's window at the given region.
func NewGraphCanvas(x, y, w, h int, window tide.Window, font *Font) *GraphCanvas {
	return &GraphCanvas{
		pos:    Position{X: x, Y: y},
		bounds: Bounds{W: w, H: h},
		window: window,
		font:   font,
	}
}

// Paint draws the full graph region for this frame.
func (g *GraphCanvas) Paint(buf *image.RGBA, now time.Time) {
	// Waveform silhouette: solid below the curve.
	for col := 0; col < g.bounds.W; col++ {
		for row := 0; row < g.bounds.H; row++ {
			c := Black
			if filledPixel(g.window.Normalized, g.bounds, col, row) == 1 {
				c = White
			}
			setPixel(buf, g.pos.X+col, g.pos.Y+row, c)
		}
	}

	// Labels next: their descenders scan for the waveform pixels above.
	for _, extreme := range g.window.Extremes() {
		col := g.window.IndexInWindow(extreme.SeriesIndex)
		label := NewExtremeLabel(g.font, extreme.Time, col, g.pos)
		label.Paint(buf, now)
	}

	// Play head: dashed vertical at the column nearest to now.
	playhead := 0
	if idx, ok := tide.NearestIndex(g.window.Times, now.UTC()); ok {
		playhead = idx
		if g.pos.X+idx < ScreenWidth {
			for y := 0; y < ScreenHeight; y++ {
				c := Black
				if y%2 == 0 {
					c = White
				}
				setPixel(buf, g.pos.X+idx, y, c)
			}
		}
	}

	// Erase the past: every column strictly left of the play head is run
	// through the 3x3 erosion test against the mask. A pixel survives only
	// when its neighborhood covers every required-filled mask position.
	for col := 0; col < playhead; col++ {
		for row := 0; row < g.bounds.H; row++ {
			kernel := [9]uint8{
				filledPixel(g.window.Normalized, g.bounds, col-1, row-1),
				filledPixel(g.window.Normalized, g.bounds, col, row-1),
				filledPixel(g.window.Normalized, g.bounds, col+1, row-1),
				filledPixel(g.window.Normalized, g.bounds, col-1, row),
				filledPixel(g.window.Normalized, g.bounds, col, row),
				filledPixel(g.window.Normalized, g.bounds, col+1, row),
				filledPixel(g.window.Normalized, g.bounds, col-1, row+1),
				filledPixel(g.window.Normalized, g.bounds, col, row+1),
				filledPixel(g.window.Normalized, g.bounds, col+1, row+1),
			}

			if shouldErase(kernel, erosionMask) {
				setPixel(buf, g.pos.X+col, g.pos.Y+row, Black)
			}
		}
	}
}

// filledPixel is the waveform fill predicate for column x, row y of the
// graph region. Columns outside the series count as filled, so the series
// edges never erode falsely. Returns 1 for foreground, 0 for background.
func filledPixel(normalized []float64, bounds Bounds, x, y int) uint8 {
	if x < 0 || x >= len(normalized) {
		return 1
	}

	waveRow := bounds.H - interp.Lerp(normalized[x], 0, bounds.H)
	if y >= waveRow {
		return 1
	}
	return 0
}

// shouldErase applies the erosion test: the pixel is erased unless, at every
// mask position that requires a filled neighbor, the kernel is filled too.
func shouldErase(kernel, mask [9]uint8) bool {
	for i := 0; i < 9; i++ {
		if mask[i] == 1 && kernel[i] == 0 {
			return true
		}
	}
	return false
}
