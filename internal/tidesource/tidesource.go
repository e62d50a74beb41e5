// Package tidesource fetches tide predictions from the WorldTides API and
// keeps a raw JSON artifact on disk so the clock can start from cached data
// and parsing problems can be diagnosed offline.
package tidesource

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/tideclock/tideclock/internal/tide"
)

// apiTimeFormat is the WorldTides date layout, e.g. "2020-09-08T10:00+0000".
const apiTimeFormat = "2006-01-02T15:04-0700"

// APITime wraps time.Time with the WorldTides JSON encoding.
type APITime struct {
	time.Time
}

// UnmarshalJSON parses the WorldTides date format.
func (t *APITime) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	parsed, err := time.Parse(apiTimeFormat, s)
	if err != nil {
		return fmt.Errorf("could not parse tide date %q: %w", s, err)
	}
	t.Time = parsed.UTC()
	return nil
}

// MarshalJSON writes the WorldTides date format.
func (t APITime) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.Format(apiTimeFormat))
}

// HeightRecord is one raw height sample from the API.
type HeightRecord struct {
	DT     int64   `json:"dt"`
	Date   APITime `json:"date"`
	Height float64 `json:"height"`
}

// ExtremeRecord is one raw high/low event from the API. Type is accepted but
// unused downstream of model construction.
type ExtremeRecord struct {
	DT     int64   `json:"dt"`
	Date   APITime `json:"date"`
	Height float64 `json:"height"`
	Type   string  `json:"type"`
}

// TideData is the typed WorldTides response the model builds from.
type TideData struct {
	Station  string          `json:"station"`
	Heights  []HeightRecord  `json:"heights"`
	Extremes []ExtremeRecord `json:"extremes"`
}

// Samples converts the height records into model samples.
func (d *TideData) Samples() []tide.Sample {
	samples := make([]tide.Sample, len(d.Heights))
	for i, h := range d.Heights {
		samples[i] = tide.Sample{Time: h.Date.Time, Height: h.Height}
	}
	return samples
}

// ExtremeEvents converts the extreme records into model events.
func (d *TideData) ExtremeEvents() []tide.ExtremeEvent {
	events := make([]tide.ExtremeEvent, len(d.Extremes))
	for i, e := range d.Extremes {
		events[i] = tide.ExtremeEvent{
			Time:   e.Date.Time,
			Kind:   tide.ExtremeKind(e.Type),
			Height: e.Height,
		}
	}
	return events
}

// Provider yields typed tide data; the HTTP client and the disk cache both
// satisfy it.
type Provider interface {
	Fetch(ctx context.Context) (*TideData, error)
}
