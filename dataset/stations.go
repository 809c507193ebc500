package dataset

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
)

// The station document follows the GBFS-style envelope used by the
// Bluebikes export: {"data":{"stations":[...]}}. Field values are not
// reliably typed across publishers (ids arrive as numbers, coordinates as
// strings), so records are decoded loosely and coerced.
type stationDocument struct {
	Data struct {
		Stations []map[string]any `json:"stations"`
	} `json:"data"`
}

// ParseStations decodes a station document. Records without a usable id or
// coordinate pair are rejected; the derived counters start at zero.
func ParseStations(r io.Reader) ([]*Station, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()
	var doc stationDocument
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode station document: %w", err)
	}
	if len(doc.Data.Stations) == 0 {
		return nil, errors.New("station document contains no stations")
	}
	stations := make([]*Station, 0, len(doc.Data.Stations))
	for i, rec := range doc.Data.Stations {
		id := toStringFallback(rec["short_name"], "")
		if id == "" {
			id = toStringFallback(rec["station_id"], "")
		}
		if id == "" {
			return nil, fmt.Errorf("station record %d: missing short_name", i)
		}
		lon, err := toFloat(rec["lon"])
		if err != nil {
			return nil, fmt.Errorf("station %s: bad lon: %w", id, err)
		}
		lat, err := toFloat(rec["lat"])
		if err != nil {
			return nil, fmt.Errorf("station %s: bad lat: %w", id, err)
		}
		stations = append(stations, &Station{ID: id, Lon: lon, Lat: lat})
	}
	return stations, nil
}

// Utility converters for flexible JSON values
func toStringFallback(v any, fallback string) string {
	switch t := v.(type) {
	case string:
		if t != "" {
			return t
		}
	case float64:
		return strconv.Itoa(int(t))
	case json.Number:
		return t.String()
	}
	return fallback
}

func toFloat(v any) (float64, error) {
	switch t := v.(type) {
	case float64:
		return t, nil
	case string:
		return strconv.ParseFloat(t, 64)
	case json.Number:
		return t.Float64()
	default:
		return 0, errors.New("not a float")
	}
}
