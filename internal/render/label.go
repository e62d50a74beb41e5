package render

import (
	"image"
	"time"
)

// ExtremeLabel is a HH:MM timestamp drawn at a high/low tide column, with an
// underline and a descender line reaching down to just above the waveform.
type ExtremeLabel struct {
	text *TextField
}

// NewExtremeLabel positions a label with its left edge at the extreme's
// window column. The timestamp is formatted in the local time zone.
func NewExtremeLabel(font *Font, at time.Time, windowCol int, canvasPos Position) *ExtremeLabel {
	return &ExtremeLabel{
		text: NewTextField(at.Local().Format("15:04"), font, canvasPos.X+windowCol, 0),
	}
}

// Paint draws the label text, its underline, and the descender. The waveform
// must already be on the buffer: the descender scans it to find where to
// stop.
func (l *ExtremeLabel) Paint(buf *image.RGBA, now time.Time) {
	l.text.Paint(buf, now)

	underline := l.text.Pos.Y + l.text.Bounds.H + 2

	for i := 0; i < l.text.Bounds.W-1; i++ {
		setPixel(buf, l.text.Pos.X+i, underline, White)
	}

	// Descender: find the topmost lit pixel in the label's column, then draw
	// down from the underline to one row short of it. When the waveform sits
	// at or above the underline the range is empty and nothing is drawn.
	x := l.text.Pos.X
	if x >= ScreenWidth {
		return
	}

	// The silhouette is anchored to the bottom row, so walk up until the run
	// of lit pixels ends; the row below that break is the waveform's top.
	firstUnlit := ScreenHeight - 1
	for y := ScreenHeight - 1; y >= 0; y-- {
		if !lit(buf, x, y) {
			firstUnlit = y
			break
		}
		if y == 0 {
			// Column fully lit; nothing to draw above it.
			return
		}
	}
	top := firstUnlit + 1

	for y := underline; y < top; y++ {
		setPixel(buf, x, y, White)
	}
}
