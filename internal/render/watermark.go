package render

import (
	"image"
	"time"

	"github.com/tideclock/tideclock/internal/tide"
	"github.com/tideclock/tideclock/pkg/interp"
)

// WaterMark draws the vertical gauge: a 2px bar with end-cap notches and a
// marker pixel at the current normalized tide height. Height increases
// upward, so the marker interpolates from the bar's bottom row to its top.
type WaterMark struct {
	pos    Position
	bounds Bounds
	model  *tide.Model
}

// NewWaterMark creates the gauge at the given region, reading the current
// height from the model.
func NewWaterMark(x, y, w, h int, model *tide.Model) *WaterMark {
	return &WaterMark{
		pos:    Position{X: x, Y: y},
		bounds: Bounds{W: w, H: h},
		model:  model,
	}
}

// Paint draws the notches, the bar, and the current-height marker.
func (wm *WaterMark) Paint(buf *image.RGBA, now time.Time) {
	topNotch := wm.pos.Y
	bottomNotch := wm.pos.Y + wm.bounds.H - 1

	setPixel(buf, wm.pos.X, topNotch, White)
	setPixel(buf, wm.pos.X, bottomNotch, White)

	for row := 0; row < wm.bounds.H; row++ {
		setPixel(buf, wm.pos.X+1, wm.pos.Y+row, White)
	}

	t := wm.model.CurrentNormHeight(now)
	markY := interp.Lerp(t, bottomNotch, topNotch)

	// Keep the marker distinguishable from the end caps.
	markX := wm.pos.X
	if markY == topNotch || markY == bottomNotch {
		markX = wm.pos.X - 1
	}

	setPixel(buf, markX, markY, White)
}
