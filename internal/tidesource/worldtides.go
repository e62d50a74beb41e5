package tidesource

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"time"

	"github.com/tideclock/tideclock/internal/log"
	"github.com/tideclock/tideclock/pkg/config"
)

const defaultBaseURL = "https://www.worldtides.info/api/v2"

// WorldTides fetches heights and extremes from the WorldTides v2 API.
type WorldTides struct {
	station config.StationData
	source  config.SourceData
	client  *http.Client
}

// NewWorldTides creates a client for the configured station.
func NewWorldTides(station config.StationData, source config.SourceData) *WorldTides {
	return &WorldTides{
		station: station,
		source:  source,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

// Fetch requests heights and extremes for the station. The raw response body
// is written to the cache file before the typed parse: a failed write is
// logged but never fails the fetch, while the artifact makes auth or schema
// problems diagnosable after the fact.
func (w *WorldTides) Fetch(ctx context.Context) (*TideData, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, w.requestURL(), nil)
	if err != nil {
		return nil, fmt.Errorf("could not build tide request: %w", err)
	}

	resp, err := w.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("could not fetch tide data (check network connection): %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("tide API returned status %s", resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("could not read tide response: %w", err)
	}

	if w.source.CacheFile != "" {
		if err := os.WriteFile(w.source.CacheFile, body, 0o644); err != nil {
			log.Warnf("could not write tide cache artifact to %s: %v", w.source.CacheFile, err)
		}
	}

	var data TideData
	if err := json.Unmarshal(body, &data); err != nil {
		return nil, fmt.Errorf("could not parse tide response: %w", err)
	}

	log.Infof("fetched %d heights and %d extremes for station %q",
		len(data.Heights), len(data.Extremes), data.Station)

	return &data, nil
}

func (w *WorldTides) requestURL() string {
	base := w.source.BaseURL
	if base == "" {
		base = defaultBaseURL
	}

	q := url.Values{}
	q.Set("datum", w.station.Datum)
	q.Set("days", "3")
	q.Set("lat", w.station.Lat)
	q.Set("lon", w.station.Lon)
	q.Set("step", w.station.Step)
	q.Set("key", w.source.APIKey)

	// heights and extremes are bare flags in the WorldTides query scheme.
	return base + "?heights&extremes&" + q.Encode()
}
