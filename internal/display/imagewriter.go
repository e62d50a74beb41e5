package display

import (
	"fmt"
	"image"
	"os"

	"golang.org/x/image/bmp"
)

// ImageWriter renders frames to a BMP file, for development hosts without a
// display attached.
type ImageWriter struct {
	Path string
}

// NewImageWriter creates a writer that saves each frame to path.
func NewImageWriter(path string) *ImageWriter {
	return &ImageWriter{Path: path}
}

// Render writes the frame to the configured file, replacing any previous one.
func (w *ImageWriter) Render(buf *image.RGBA) error {
	f, err := os.Create(w.Path)
	if err != nil {
		return fmt.Errorf("could not create frame file %s: %w", w.Path, err)
	}
	defer f.Close()

	if err := bmp.Encode(f, buf); err != nil {
		return fmt.Errorf("could not encode frame to %s: %w", w.Path, err)
	}

	return nil
}
