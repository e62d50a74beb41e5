// Package display defines the render sink: anything that can accept a
// finished frame. Concrete devices live here (file writer) and in the
// ssd1305 subpackage (SPI OLED).
package display

import "image"

// RenderDevice accepts a completed 128x32 frame. It is the last step of
// every frame; implementations own their failure handling beyond returning
// an error.
type RenderDevice interface {
	Render(buf *image.RGBA) error
}
