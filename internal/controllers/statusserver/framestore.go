package statusserver

import (
	"image"
	"sync"
)

// FrameStore keeps the most recently rendered frame so the /frame.png
// endpoint can serve it. It implements display.RenderDevice and is
// registered with the display manager like any other sink.
type FrameStore struct {
	mu    sync.RWMutex
	frame *image.RGBA
}

// NewFrameStore returns an empty frame store.
func NewFrameStore() *FrameStore {
	return &FrameStore{}
}

// Render stores the frame as the current one.
func (s *FrameStore) Render(buf *image.RGBA) error {
	s.mu.Lock()
	s.frame = buf
	s.mu.Unlock()
	return nil
}

// Snapshot returns the most recent frame, or nil if nothing has been
// rendered yet.
func (s *FrameStore) Snapshot() *image.RGBA {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.frame
}
