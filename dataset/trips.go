package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"time"
)

// Timestamp layouts seen in published trip logs, tried in order.
var tripTimeLayouts = []string{
	"2006-01-02 15:04:05",
	time.RFC3339,
	"2006-01-02T15:04:05",
}

// ParseTrips decodes a trip log CSV. Columns are located by header name so
// extra columns (ride id, bike type, member flags) pass through unharmed.
func ParseTrips(r io.Reader) ([]Trip, error) {
	cr := csv.NewReader(r)
	cr.ReuseRecord = true
	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("read trip header: %w", err)
	}
	col := map[string]int{}
	for i, name := range header {
		col[name] = i
	}
	for _, required := range []string{"start_station_id", "end_station_id", "started_at", "ended_at"} {
		if _, ok := col[required]; !ok {
			return nil, fmt.Errorf("trip log missing column %q", required)
		}
	}
	var trips []Trip
	for line := 2; ; line++ {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("trip log line %d: %w", line, err)
		}
		startedAt, err := parseTripTime(rec[col["started_at"]])
		if err != nil {
			return nil, fmt.Errorf("trip log line %d: started_at: %w", line, err)
		}
		endedAt, err := parseTripTime(rec[col["ended_at"]])
		if err != nil {
			return nil, fmt.Errorf("trip log line %d: ended_at: %w", line, err)
		}
		trips = append(trips, Trip{
			StartStationID: rec[col["start_station_id"]],
			EndStationID:   rec[col["end_station_id"]],
			StartedAt:      startedAt,
			EndedAt:        endedAt,
		})
	}
	return trips, nil
}

func parseTripTime(s string) (time.Time, error) {
	var firstErr error
	for _, layout := range tripTimeLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			return t, nil
		}
		if firstErr == nil {
			firstErr = err
		}
	}
	return time.Time{}, firstErr
}
