package statusserver

import (
	"encoding/json"
	"image/png"
	"net/http"
	"time"

	"github.com/tideclock/tideclock/internal/log"
	"github.com/tideclock/tideclock/pkg/lunar"
)

// StatusResponse is the JSON body served by /status
type StatusResponse struct {
	Station          string    `json:"station"`
	Time             time.Time `json:"time"`
	DataStart        time.Time `json:"data_start,omitempty"`
	DataEnd          time.Time `json:"data_end,omitempty"`
	Samples          int       `json:"samples"`
	Freshness        string    `json:"freshness"`
	HighWater        float64   `json:"high_water"`
	LowWater         float64   `json:"low_water"`
	CurrentHeight    float64   `json:"current_height_normalized"`
	MoonPhase        string    `json:"moon_phase"`
	MoonIllumination float64   `json:"moon_illumination"`
}

// GetStatus reports the clock's current data state
func (c *Controller) GetStatus(w http.ResponseWriter, req *http.Request) {
	model := c.models.CurrentModel()
	if model == nil {
		http.Error(w, "no tide data loaded", http.StatusServiceUnavailable)
		return
	}

	now := time.Now()
	_, freshness := model.Window(now)
	marks := model.WaterMarks()
	moon := lunar.Calculate(now.UTC())

	resp := StatusResponse{
		Station:          c.station.Name,
		Time:             now,
		Samples:          model.Len(),
		Freshness:        freshness.String(),
		HighWater:        marks.HighWater,
		LowWater:         marks.LowWater,
		CurrentHeight:    model.CurrentNormHeight(now),
		MoonPhase:        moon.PhaseName,
		MoonIllumination: moon.Illumination,
	}
	if first, last, ok := model.DateRange(); ok {
		resp.DataStart = first
		resp.DataEnd = last
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		log.Errorf("error encoding status response: %v", err)
	}
}

// GetFrame serves the most recently rendered frame as a PNG
func (c *Controller) GetFrame(w http.ResponseWriter, req *http.Request) {
	frame := c.frames.Snapshot()
	if frame == nil {
		http.Error(w, "no frame rendered yet", http.StatusServiceUnavailable)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	if err := png.Encode(w, frame); err != nil {
		log.Errorf("error encoding frame: %v", err)
	}
}
