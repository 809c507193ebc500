package traffic

import (
	"testing"
	"time"

	"github.com/urban-viz/bikeflow/dataset"
)

func tripAt(start, end string, startHH, startMM, endHH, endMM int) dataset.Trip {
	day := time.Date(2024, 3, 12, 0, 0, 0, 0, time.UTC)
	return dataset.Trip{
		StartStationID: start,
		EndStationID:   end,
		StartedAt:      day.Add(time.Duration(startHH)*time.Hour + time.Duration(startMM)*time.Minute),
		EndedAt:        day.Add(time.Duration(endHH)*time.Hour + time.Duration(endMM)*time.Minute),
	}
}

func TestAggregate_SelfLoopCountsBothWays(t *testing.T) {
	stations := []*dataset.Station{{ID: "A"}}
	trips := []dataset.Trip{tripAt("A", "A", 8, 5, 8, 20)}

	Aggregate(stations, trips)

	got := stations[0]
	if got.Arrivals != 1 || got.Departures != 1 || got.TotalTraffic != 2 {
		t.Errorf("got arrivals=%d departures=%d total=%d, want 1/1/2",
			got.Arrivals, got.Departures, got.TotalTraffic)
	}
}

func TestAggregate_TotalInvariant(t *testing.T) {
	stations := []*dataset.Station{{ID: "A"}, {ID: "B"}, {ID: "C"}}
	trips := []dataset.Trip{
		tripAt("A", "B", 7, 0, 7, 15),
		tripAt("B", "A", 8, 0, 8, 30),
		tripAt("A", "C", 9, 0, 9, 10),
		tripAt("C", "C", 10, 0, 10, 5),
		tripAt("B", "C", 11, 0, 11, 45),
	}

	Aggregate(stations, trips)

	for _, s := range stations {
		if s.TotalTraffic != s.Arrivals+s.Departures {
			t.Errorf("station %s: total=%d, arrivals+departures=%d",
				s.ID, s.TotalTraffic, s.Arrivals+s.Departures)
		}
	}
}

func TestAggregate_UnknownStationIDsDropped(t *testing.T) {
	stations := []*dataset.Station{{ID: "A"}, {ID: "B"}}
	trips := []dataset.Trip{
		tripAt("A", "B", 7, 0, 7, 15),
		tripAt("GHOST", "B", 8, 0, 8, 15),
		tripAt("A", "GHOST", 9, 0, 9, 15),
		tripAt("GHOST", "GHOST", 10, 0, 10, 15),
	}

	Aggregate(stations, trips)

	sumDepartures := 0
	matchedStarts := 0
	known := map[string]bool{"A": true, "B": true}
	for _, s := range stations {
		sumDepartures += s.Departures
	}
	for _, tr := range trips {
		if known[tr.StartStationID] {
			matchedStarts++
		}
	}
	if sumDepartures != matchedStarts {
		t.Errorf("sum of departures = %d, want %d (matched trip starts)", sumDepartures, matchedStarts)
	}
}

func TestAggregate_OverwritesNotAccumulates(t *testing.T) {
	stations := []*dataset.Station{{ID: "A"}, {ID: "B"}}
	full := []dataset.Trip{
		tripAt("A", "B", 7, 0, 7, 15),
		tripAt("A", "B", 8, 0, 8, 15),
		tripAt("B", "A", 9, 0, 9, 15),
	}

	Aggregate(stations, full)
	Aggregate(stations, full[:1])

	if stations[0].Departures != 1 || stations[0].Arrivals != 0 {
		t.Errorf("station A after re-aggregation: departures=%d arrivals=%d, want 1/0",
			stations[0].Departures, stations[0].Arrivals)
	}

	// An empty subset must zero everything.
	Aggregate(stations, nil)
	for _, s := range stations {
		if s.TotalTraffic != 0 {
			t.Errorf("station %s: total=%d after empty aggregation, want 0", s.ID, s.TotalTraffic)
		}
	}
}

func TestMaxTotalTraffic(t *testing.T) {
	stations := []*dataset.Station{
		{ID: "A", TotalTraffic: 3},
		{ID: "B", TotalTraffic: 17},
		{ID: "C", TotalTraffic: 5},
	}
	if got := MaxTotalTraffic(stations); got != 17 {
		t.Errorf("MaxTotalTraffic = %d, want 17", got)
	}
	if got := MaxTotalTraffic(nil); got != 0 {
		t.Errorf("MaxTotalTraffic(nil) = %d, want 0", got)
	}
}
