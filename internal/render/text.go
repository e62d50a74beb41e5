package render

import (
	"image"
	"time"
)

// TextField draws a run of font glyphs at a fixed position. Glyphs advance
// by their width plus one column of spacing; characters without a glyph are
// skipped and contribute no width.
type TextField struct {
	Text   string
	Pos    Position
	Bounds Bounds

	font *Font
}

// NewTextField creates a text field and measures its bounds.
func NewTextField(text string, font *Font, x, y int) *TextField {
	tf := &TextField{
		font: font,
		Pos:  Position{X: x, Y: y},
	}
	tf.SetText(text)
	return tf
}

// SetText replaces the field's text and recomputes its pixel bounds.
func (tf *TextField) SetText(text string) {
	tf.Text = text

	width, height := 0, 0
	for _, c := range text {
		if g, ok := tf.font.Glyph(c); ok {
			width += g.Width + 1
			if GlyphHeight > height {
				height = GlyphHeight
			}
		}
	}

	tf.Bounds = Bounds{W: width, H: height}
}

// Paint draws the text onto the backbuffer.
func (tf *TextField) Paint(buf *image.RGBA, _ time.Time) {
	caret := 0
	for _, c := range tf.Text {
		g, ok := tf.font.Glyph(c)
		if !ok {
			continue
		}
		for y := 0; y < GlyphHeight; y++ {
			for x := 0; x < g.Width; x++ {
				if g.Bit(x, y) {
					setPixel(buf, tf.Pos.X+caret+x, tf.Pos.Y+y, White)
				}
			}
		}
		caret += g.Width + 1
	}
}
