// Package tide holds the tide data model: normalized height series,
// timestamps, extreme-event markers, and the windowed view the renderer
// consumes each frame. A Model is immutable after construction and is
// replaced wholesale on every data refresh, so readers never need locking.
package tide

import (
	"time"

	"github.com/tideclock/tideclock/pkg/interp"
	"gonum.org/v1/gonum/floats"
)

const (
	// windowLookback anchors each render window this far behind "now".
	windowLookback = 8 * time.Hour

	// minWindowSamples is the minimum number of samples required from the
	// window anchor to the end of the series: 107 display columns plus a
	// 5-frame lookahead margin.
	minWindowSamples = 112

	// emptyHeightSentinel is returned when no sample exists; it sits below
	// the valid [0,1] range so the water mark renders off-screen.
	emptyHeightSentinel = -10.0
)

// ExtremeKind distinguishes high and low tide events.
type ExtremeKind string

const (
	ExtremeHigh ExtremeKind = "High"
	ExtremeLow  ExtremeKind = "Low"
)

// Sample is one raw tide measurement. Immutable once ingested.
type Sample struct {
	Time   time.Time
	Height float64
}

// ExtremeEvent is a raw high/low marker from the data source. Kind and
// Height are accepted from the source but unused downstream.
type ExtremeEvent struct {
	Time   time.Time
	Kind   ExtremeKind
	Height float64
}

// WaterMarks are the session-wide minimum and maximum recorded heights.
type WaterMarks struct {
	HighWater float64
	LowWater  float64
}

// Extreme is an extreme event mapped onto the height series: the index of
// the sample closest in time to the raw event.
type Extreme struct {
	SeriesIndex int
	Time        time.Time
}

// Freshness reports whether a window has enough forward samples to render a
// complete frame.
type Freshness int

const (
	Fresh Freshness = iota
	NeedsUpdate
)

func (f Freshness) String() string {
	if f == NeedsUpdate {
		return "needs-update"
	}
	return "fresh"
}

// Model owns the full normalized series for one data refresh.
type Model struct {
	waterMarks WaterMarks
	normalized []float64
	times      []time.Time
	extremes   []Extreme
}

// NewModel builds a Model from raw samples and extreme events. Water marks
// are the min/max over all sample heights, (0,0) when the series is empty.
// Each extreme event maps to the earliest sample index with minimal absolute
// time difference.
func NewModel(samples []Sample, events []ExtremeEvent) *Model {
	marks := waterMarks(samples)

	normalized := make([]float64, len(samples))
	times := make([]time.Time, len(samples))
	for i, s := range samples {
		normalized[i] = interp.InverseLerp(s.Height, marks.LowWater, marks.HighWater)
		times[i] = s.Time
	}

	var extremes []Extreme
	for _, ev := range events {
		if idx, ok := NearestIndex(times, ev.Time); ok {
			extremes = append(extremes, Extreme{SeriesIndex: idx, Time: ev.Time})
		}
	}

	return &Model{
		waterMarks: marks,
		normalized: normalized,
		times:      times,
		extremes:   extremes,
	}
}

func waterMarks(samples []Sample) WaterMarks {
	if len(samples) == 0 {
		return WaterMarks{}
	}

	heights := make([]float64, len(samples))
	for i, s := range samples {
		heights[i] = s.Height
	}

	return WaterMarks{
		HighWater: floats.Max(heights),
		LowWater:  floats.Min(heights),
	}
}

// NearestIndex returns the index whose timestamp has the minimal absolute
// difference to target. Exact ties resolve to the earliest index. ok is
// false only when times is empty.
func NearestIndex(times []time.Time, target time.Time) (int, bool) {
	if len(times) == 0 {
		return 0, false
	}

	best := 0
	bestDelta := absDuration(target.Sub(times[0]))
	for i := 1; i < len(times); i++ {
		delta := absDuration(target.Sub(times[i]))
		if delta < bestDelta {
			best = i
			bestDelta = delta
		}
	}

	return best, true
}

func absDuration(d time.Duration) time.Duration {
	if d < 0 {
		return -d
	}
	return d
}

// WaterMarks returns the session-wide high/low water heights.
func (m *Model) WaterMarks() WaterMarks {
	return m.waterMarks
}

// Len returns the number of samples in the series.
func (m *Model) Len() int {
	return len(m.normalized)
}

// DateRange returns the first and last sample timestamps. ok is false when
// the series is empty.
func (m *Model) DateRange() (first, last time.Time, ok bool) {
	if len(m.times) == 0 {
		return time.Time{}, time.Time{}, false
	}
	return m.times[0], m.times[len(m.times)-1], true
}

// CurrentNormHeight returns the normalized height of the sample nearest to
// now, or a sentinel below the valid [0,1] range when the series is empty.
func (m *Model) CurrentNormHeight(now time.Time) float64 {
	if idx, ok := NearestIndex(m.times, now.UTC()); ok {
		return m.normalized[idx]
	}
	return emptyHeightSentinel
}

// Window returns a read-only view over the series anchored at now minus the
// lookback, along with a freshness signal. The window is NeedsUpdate when no
// sample exists near the anchor or when fewer than minWindowSamples remain
// from the anchor to the end of the series; callers must refresh the source
// rather than render a short window as if it were complete.
func (m *Model) Window(now time.Time) (Window, Freshness) {
	anchor := now.UTC().Add(-windowLookback)

	freshness := Fresh
	start := 0
	if idx, ok := NearestIndex(m.times, anchor); ok {
		start = idx
		if len(m.normalized)-start < minWindowSamples {
			freshness = NeedsUpdate
		}
	} else {
		freshness = NeedsUpdate
	}

	return Window{
		waterMarks: m.waterMarks,
		Normalized: m.normalized[start:],
		Times:      m.times[start:],
		extremes:   m.extremes,
		startIndex: start,
	}, freshness
}
