package render

// GlyphHeight is the fixed height of every glyph in the display font.
const GlyphHeight = 5

// Glyph is a fixed-height bitmap character. Each row is a bitmask with the
// leftmost column in the most significant of the Width low bits.
type Glyph struct {
	Width int
	Rows  [GlyphHeight]uint8
}

// Bit reports whether the glyph pixel at column x, row y is set.
func (g Glyph) Bit(x, y int) bool {
	if x < 0 || x >= g.Width || y < 0 || y >= GlyphHeight {
		return false
	}
	return g.Rows[y]&(1<<uint(g.Width-1-x)) != 0
}

// Font maps characters to 5px glyph bitmaps. Unknown characters have no
// glyph and contribute nothing when drawn.
type Font struct {
	glyphs map[rune]Glyph
}

// Glyph returns the bitmap for c. ok is false for characters the font does
// not carry; callers skip those silently.
func (f *Font) Glyph(c rune) (Glyph, bool) {
	g, ok := f.glyphs[c]
	return g, ok
}

// DefaultFont returns the built-in 5px font: digits, uppercase letters and
// the handful of punctuation the clock face uses. '_' is a 1px-wide space
// used for the narrow colon substitution in the blinking clock.
func DefaultFont() *Font {
	return &Font{glyphs: map[rune]Glyph{
		' ': {Width: 2, Rows: [5]uint8{0b00, 0b00, 0b00, 0b00, 0b00}},
		'_': {Width: 1, Rows: [5]uint8{0b0, 0b0, 0b0, 0b0, 0b0}},
		'0': {Width: 3, Rows: [5]uint8{0b111, 0b101, 0b101, 0b101, 0b111}},
		'1': {Width: 1, Rows: [5]uint8{0b1, 0b1, 0b1, 0b1, 0b1}},
		'2': {Width: 3, Rows: [5]uint8{0b111, 0b001, 0b111, 0b100, 0b111}},
		'3': {Width: 3, Rows: [5]uint8{0b111, 0b001, 0b111, 0b001, 0b111}},
		'4': {Width: 3, Rows: [5]uint8{0b101, 0b101, 0b111, 0b001, 0b001}},
		'5': {Width: 3, Rows: [5]uint8{0b111, 0b100, 0b111, 0b001, 0b111}},
		'6': {Width: 3, Rows: [5]uint8{0b111, 0b100, 0b111, 0b101, 0b111}},
		'7': {Width: 3, Rows: [5]uint8{0b111, 0b001, 0b001, 0b001, 0b001}},
		'8': {Width: 3, Rows: [5]uint8{0b111, 0b101, 0b111, 0b101, 0b111}},
		'9': {Width: 3, Rows: [5]uint8{0b111, 0b101, 0b111, 0b001, 0b111}},
		':': {Width: 1, Rows: [5]uint8{0b0, 0b1, 0b0, 0b1, 0b0}},
		'.': {Width: 1, Rows: [5]uint8{0b0, 0b0, 0b0, 0b0, 0b1}},
		'!': {Width: 1, Rows: [5]uint8{0b1, 0b1, 0b1, 0b0, 0b1}},
		'?': {Width: 3, Rows: [5]uint8{0b111, 0b001, 0b011, 0b000, 0b010}},
		'm': {Width: 5, Rows: [5]uint8{0b00000, 0b11010, 0b10101, 0b10101, 0b10101}},
		'f': {Width: 2, Rows: [5]uint8{0b01, 0b10, 0b11, 0b10, 0b10}},
		't': {Width: 2, Rows: [5]uint8{0b10, 0b11, 0b10, 0b10, 0b01}},
		'A': {Width: 3, Rows: [5]uint8{0b111, 0b101, 0b111, 0b101, 0b101}},
		'B': {Width: 3, Rows: [5]uint8{0b110, 0b101, 0b110, 0b101, 0b110}},
		'C': {Width: 3, Rows: [5]uint8{0b111, 0b100, 0b100, 0b100, 0b111}},
		'D': {Width: 3, Rows: [5]uint8{0b110, 0b101, 0b101, 0b101, 0b110}},
		'E': {Width: 3, Rows: [5]uint8{0b111, 0b100, 0b111, 0b100, 0b111}},
		'F': {Width: 3, Rows: [5]uint8{0b111, 0b100, 0b111, 0b100, 0b100}},
		'G': {Width: 3, Rows: [5]uint8{0b111, 0b100, 0b101, 0b101, 0b111}},
		'H': {Width: 3, Rows: [5]uint8{0b101, 0b101, 0b111, 0b101, 0b101}},
		'I': {Width: 1, Rows: [5]uint8{0b1, 0b1, 0b1, 0b1, 0b1}},
		'J': {Width: 3, Rows: [5]uint8{0b001, 0b001, 0b001, 0b101, 0b111}},
		'K': {Width: 3, Rows: [5]uint8{0b101, 0b101, 0b110, 0b101, 0b101}},
		'L': {Width: 3, Rows: [5]uint8{0b100, 0b100, 0b100, 0b100, 0b111}},
		'M': {Width: 5, Rows: [5]uint8{0b10001, 0b11011, 0b10101, 0b10001, 0b10001}},
		'N': {Width: 3, Rows: [5]uint8{0b111, 0b101, 0b101, 0b101, 0b101}},
		'O': {Width: 3, Rows: [5]uint8{0b111, 0b101, 0b101, 0b101, 0b111}},
		'P': {Width: 3, Rows: [5]uint8{0b111, 0b101, 0b111, 0b100, 0b100}},
		'Q': {Width: 4, Rows: [5]uint8{0b0110, 0b1001, 0b1001, 0b1010, 0b0101}},
		'R': {Width: 3, Rows: [5]uint8{0b111, 0b101, 0b110, 0b101, 0b101}},
		'S': {Width: 3, Rows: [5]uint8{0b111, 0b100, 0b111, 0b001, 0b111}},
		'T': {Width: 3, Rows: [5]uint8{0b111, 0b010, 0b010, 0b010, 0b010}},
		'U': {Width: 3, Rows: [5]uint8{0b101, 0b101, 0b101, 0b101, 0b111}},
		'V': {Width: 3, Rows: [5]uint8{0b101, 0b101, 0b101, 0b101, 0b010}},
		'W': {Width: 5, Rows: [5]uint8{0b10001, 0b10001, 0b10101, 0b10101, 0b01010}},
		'X': {Width: 3, Rows: [5]uint8{0b101, 0b101, 0b010, 0b101, 0b101}},
		'Y': {Width: 3, Rows: [5]uint8{0b101, 0b101, 0b010, 0b010, 0b010}},
		'Z': {Width: 3, Rows: [5]uint8{0b111, 0b001, 0b010, 0b100, 0b111}},
	}}
}
