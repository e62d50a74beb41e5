package render

import (
	"fmt"
	"image"
	"time"

	"github.com/tideclock/tideclock/internal/tide"
)

// Clock face geometry. The graph and gauge share the lower band; the clock
// and the session water-mark texts stack on the left edge.
const (
	graphX, graphY, graphW, graphH = 21, 10, 107, 22
	gaugeX, gaugeY, gaugeW, gaugeH = 17, 10, 2, 22
)

// ComposeFrame renders one complete clock face: clock text with a blinking
// colon, session high/low water texts, the water-mark gauge, and the tide
// graph for the given window.
func ComposeFrame(model *tide.Model, window tide.Window, font *Font, now time.Time) *image.RGBA {
	buf := NewFrame()

	// Blink the colon by swapping it for a narrow space on odd seconds.
	format := "15:04"
	if now.Unix()%2 == 1 {
		format = "15_04"
	}
	timeText := NewTextField(now.Local().Format(format), font, 0, 0)

	marks := window.WaterMarks()
	highText := NewTextField(fmt.Sprintf("%.1fm", marks.HighWater), font, 0, 8)
	lowText := NewTextField(fmt.Sprintf("%.1fm", marks.LowWater), font, 0, 27)

	gauge := NewWaterMark(gaugeX, gaugeY, gaugeW, gaugeH, model)
	graph := NewGraphCanvas(graphX, graphY, graphW, graphH, window, font)

	utc := now.UTC()
	timeText.Paint(buf, utc)
	highText.Paint(buf, utc)
	lowText.Paint(buf, utc)
	gauge.Paint(buf, utc)
	graph.Paint(buf, utc)

	return buf
}

// SplashFrame renders a single centered line of text, used at startup before
// the first tide frame is ready.
func SplashFrame(text string, font *Font) *image.RGBA {
	buf := NewFrame()

	width := 0
	for _, c := range text {
		if g, ok := font.Glyph(c); ok {
			width += g.Width + 1
		}
	}

	tf := NewTextField(text, font, ScreenWidth/2-width/2, 13)
	tf.Paint(buf, time.Time{})

	return buf
}
