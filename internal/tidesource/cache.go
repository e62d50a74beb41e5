package tidesource

import (
	"encoding/json"
	"os"

	"github.com/tideclock/tideclock/internal/log"
)

// LoadCache reads the tide cache artifact from disk. A missing or malformed
// file degrades to an empty TideData, never an error: the renderer can
// always produce a blank-but-valid frame, and the render loop will notice
// the empty model is stale and trigger a real fetch.
func LoadCache(path string) *TideData {
	raw, err := os.ReadFile(path)
	if err != nil {
		log.Warnf("could not load tide cache from %s, starting empty: %v", path, err)
		return &TideData{}
	}

	var data TideData
	if err := json.Unmarshal(raw, &data); err != nil {
		log.Warnf("tide cache %s failed to parse, starting empty: %v", path, err)
		return &TideData{}
	}

	return &data
}
