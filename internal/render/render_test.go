package render

import (
	"testing"
	"time"

	"github.com/tideclock/tideclock/internal/tide"
)

func TestDefaultFontGlyphs(t *testing.T) {
	font := DefaultFont()

	for _, c := range "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ:.!?mft _" {
		g, ok := font.Glyph(c)
		if !ok {
			t.Errorf("font is missing glyph %q", c)
			continue
		}
		if g.Width <= 0 || g.Width > 8 {
			t.Errorf("glyph %q has width %d", c, g.Width)
		}
	}

	if _, ok := font.Glyph('~'); ok {
		t.Error("font should not carry a glyph for '~'")
	}
}

func TestTextFieldBounds(t *testing.T) {
	font := DefaultFont()

	tests := []struct {
		name      string
		text      string
		wantWidth int
	}{
		{"digits", "10", 2 + 4}, // '1' is 1 wide, '0' is 3 wide, +1 spacing each
		{"clock", "12:34", 2 + 4 + 2 + 4 + 4},
		{"unknown chars skipped", "1~1", 4},
		{"empty", "", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tf := NewTextField(tt.text, font, 0, 0)
			if tf.Bounds.W != tt.wantWidth {
				t.Errorf("width = %d, want %d", tf.Bounds.W, tt.wantWidth)
			}
			if tt.text != "" && tf.Bounds.H != GlyphHeight {
				t.Errorf("height = %d, want %d", tf.Bounds.H, GlyphHeight)
			}
		})
	}
}

func TestTextFieldPaint(t *testing.T) {
	buf := NewFrame()
	tf := NewTextField("1", DefaultFont(), 3, 7)
	tf.Paint(buf, time.Time{})

	for y := 0; y < GlyphHeight; y++ {
		if !lit(buf, 3, 7+y) {
			t.Errorf("glyph '1' column not lit at row %d", 7+y)
		}
	}
	if lit(buf, 4, 7) {
		t.Error("pixel right of glyph '1' should stay dark")
	}
}

func TestWaterMarkGauge(t *testing.T) {
	start := time.Date(2020, 9, 8, 10, 0, 0, 0, time.UTC)
	samples := []tide.Sample{
		{Time: start, Height: 0},
		{Time: start.Add(time.Hour), Height: 2},
		{Time: start.Add(2 * time.Hour), Height: 1},
	}
	m := tide.NewModel(samples, nil)

	buf := NewFrame()
	// 22-row bar at (17,10), matching the clock face geometry.
	NewWaterMark(17, 10, 2, 22, m).Paint(buf, start.Add(2*time.Hour))

	// End caps and bar.
	if !lit(buf, 17, 10) || !lit(buf, 17, 31) {
		t.Error("gauge end caps missing")
	}
	for y := 10; y <= 31; y++ {
		if !lit(buf, 18, y) {
			t.Errorf("gauge bar missing at row %d", y)
		}
	}

	// Current height 1 normalizes to 0.5: marker halfway up the bar, on the
	// notch column since it does not collide with a cap.
	if !lit(buf, 17, 21) {
		t.Error("marker missing at mid-bar")
	}
}

func TestWaterMarkMarkerOffsetAtCaps(t *testing.T) {
	start := time.Date(2020, 9, 8, 10, 0, 0, 0, time.UTC)
	samples := []tide.Sample{
		{Time: start, Height: 0},
		{Time: start.Add(time.Hour), Height: 2},
	}
	m := tide.NewModel(samples, nil)

	buf := NewFrame()
	// Now is nearest the maximum sample: marker lands on the top cap row and
	// must shift one pixel left.
	NewWaterMark(17, 10, 2, 22, m).Paint(buf, start.Add(time.Hour))

	if !lit(buf, 16, 10) {
		t.Error("marker should be offset left of the top cap")
	}
}

func TestExtremeLabelUnderlineAndDescender(t *testing.T) {
	buf := NewFrame()

	// Fake waveform: solid fill from row 24 down in the label's column.
	for y := 24; y < ScreenHeight; y++ {
		setPixel(buf, 40, y, White)
	}

	at := time.Date(2020, 9, 8, 12, 30, 0, 0, time.UTC)
	label := NewExtremeLabel(DefaultFont(), at, 40, Position{X: 0, Y: 0})
	label.Paint(buf, at)

	underline := GlyphHeight + 2
	tf := NewTextField(at.Local().Format("15:04"), DefaultFont(), 40, 0)
	for i := 0; i < tf.Bounds.W-1; i++ {
		if !lit(buf, 40+i, underline) {
			t.Errorf("underline missing at column %d", 40+i)
		}
	}

	// Descender runs from the underline down to one row short of the fill
	// top at row 24, i.e. its last drawn row is 23.
	for y := underline; y <= 23; y++ {
		if !lit(buf, 40, y) {
			t.Errorf("descender missing at row %d", y)
		}
	}
}

func TestExtremeLabelDegenerateDescender(t *testing.T) {
	buf := NewFrame()

	// Waveform already at the top of the column: the descender range is
	// empty and must draw nothing (and not panic).
	for y := 2; y < ScreenHeight; y++ {
		setPixel(buf, 60, y, White)
	}

	at := time.Date(2020, 9, 8, 6, 5, 0, 0, time.UTC)
	label := NewExtremeLabel(DefaultFont(), at, 60, Position{X: 0, Y: 0})
	label.Paint(buf, at)
}

func TestComposeFrameEmptyModel(t *testing.T) {
	m := tide.NewModel(nil, nil)
	w, _ := m.Window(time.Now())

	// Must produce a complete, in-bounds frame even with no data.
	buf := ComposeFrame(m, w, DefaultFont(), time.Now())
	if got := buf.Bounds(); got.Dx() != ScreenWidth || got.Dy() != ScreenHeight {
		t.Errorf("frame bounds = %v, want %dx%d", got, ScreenWidth, ScreenHeight)
	}
}

func TestSplashFrameCentered(t *testing.T) {
	buf := SplashFrame("HI!", DefaultFont())

	found := false
	for x := 0; x < ScreenWidth && !found; x++ {
		for y := 13; y < 13+GlyphHeight; y++ {
			if lit(buf, x, y) {
				found = true
				break
			}
		}
	}
	if !found {
		t.Error("splash frame drew no pixels")
	}
}
