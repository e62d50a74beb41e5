package ssd1305

import "testing"

func TestSetPixelPacking(t *testing.T) {
	tests := []struct {
		name     string
		x, y     int
		wantIdx  int
		wantBit  uint
	}{
		{"origin", 0, 0, 0, 0},
		{"top right", 127, 0, 127, 0},
		{"last row of first page", 5, 7, 5, 7},
		{"first row of second page", 5, 8, 128 + 5, 0},
		{"bottom left", 0, 31, 3 * 128, 7},
		{"bottom right", 127, 31, 3*128 + 127, 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Dev
			d.SetPixel(tt.x, tt.y, true)

			if d.buffer[tt.wantIdx] != 1<<tt.wantBit {
				t.Errorf("buffer[%d] = %#x, want bit %d set", tt.wantIdx, d.buffer[tt.wantIdx], tt.wantBit)
			}

			d.SetPixel(tt.x, tt.y, false)
			if d.buffer[tt.wantIdx] != 0 {
				t.Errorf("buffer[%d] = %#x after clear, want 0", tt.wantIdx, d.buffer[tt.wantIdx])
			}
		})
	}
}

func TestSetPixelOutOfBoundsDropped(t *testing.T) {
	var d Dev

	d.SetPixel(-1, 0, true)
	d.SetPixel(0, -1, true)
	d.SetPixel(Width, 0, true)
	d.SetPixel(0, Height, true)

	for i, b := range d.buffer {
		if b != 0 {
			t.Fatalf("buffer[%d] = %#x, out-of-bounds write leaked", i, b)
		}
	}
}

func TestClear(t *testing.T) {
	var d Dev
	d.SetPixel(3, 3, true)
	d.SetPixel(100, 30, true)

	d.Clear()

	for i, b := range d.buffer {
		if b != 0 {
			t.Fatalf("buffer[%d] = %#x after Clear", i, b)
		}
	}
}
