package tide

import "time"

// Window is an ephemeral view over a contiguous tail of a Model's series,
// constructed once per render frame and discarded after. It borrows the
// model's slices and must not outlive a model swap mid-frame; the render
// loop guarantees that by holding one model pointer per frame.
type Window struct {
	Normalized []float64
	Times      []time.Time

	waterMarks WaterMarks
	extremes   []Extreme
	startIndex int
}

// WaterMarks returns the session-wide marks copied from the owning model.
// Labels use these, not a windowed recomputation.
func (w Window) WaterMarks() WaterMarks {
	return w.waterMarks
}

// StartIndex returns the offset of this window into the owning model.
func (w Window) StartIndex() int {
	return w.startIndex
}

// Extremes returns the model extremes that fall inside the window, i.e.
// those whose series index is at or past the window start. Indexes remain
// absolute; use IndexInWindow to re-express them.
func (w Window) Extremes() []Extreme {
	for i, e := range w.extremes {
		if e.SeriesIndex >= w.startIndex {
			return w.extremes[i:]
		}
	}
	return nil
}

// IndexInWindow converts an absolute series index to a window-relative one.
func (w Window) IndexInWindow(seriesIndex int) int {
	return seriesIndex - w.startIndex
}
