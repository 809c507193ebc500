package dataset

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/urban-viz/bikeflow/config"
)

func TestParseTrips_HeaderDriven(t *testing.T) {
	// Column order differs from the usual export; extra columns present.
	csv := strings.Join([]string{
		"ended_at,start_station_id,ride_id,end_station_id,started_at",
		"2024-03-12 08:20:00,A32000,r1,B32006,2024-03-12 08:05:00",
	}, "\n")
	trips, err := ParseTrips(strings.NewReader(csv))
	if err != nil {
		t.Fatalf("ParseTrips: %v", err)
	}
	if len(trips) != 1 {
		t.Fatalf("got %d trips, want 1", len(trips))
	}
	tr := trips[0]
	if tr.StartStationID != "A32000" || tr.EndStationID != "B32006" {
		t.Errorf("trip = %+v", tr)
	}
	want := time.Date(2024, 3, 12, 8, 5, 0, 0, time.UTC)
	if !tr.StartedAt.Equal(want) {
		t.Errorf("StartedAt = %v, want %v", tr.StartedAt, want)
	}
}

func TestParseTrips_MissingColumn(t *testing.T) {
	csv := "start_station_id,started_at,ended_at\nA,2024-03-12 08:00:00,2024-03-12 08:10:00"
	if _, err := ParseTrips(strings.NewReader(csv)); err == nil {
		t.Error("expected error for missing end_station_id column")
	}
}

func TestParseTrips_BadTimestamp(t *testing.T) {
	csv := strings.Join([]string{
		"start_station_id,end_station_id,started_at,ended_at",
		"A,B,yesterday,2024-03-12 08:10:00",
	}, "\n")
	if _, err := ParseTrips(strings.NewReader(csv)); err == nil {
		t.Error("expected error for unparsable timestamp")
	}
}

func TestLoadAll_LocalFixtures(t *testing.T) {
	stations, trips, err := LoadAll(config.DataConfig{
		StationsSource: filepath.Join("testdata", "stations.json"),
		TripsSource:    filepath.Join("testdata", "trips.csv"),
	})
	if err != nil {
		t.Fatalf("LoadAll: %v", err)
	}
	if len(stations) != 3 {
		t.Errorf("got %d stations, want 3", len(stations))
	}
	if len(trips) != 4 {
		t.Errorf("got %d trips, want 4", len(trips))
	}
}

func TestLoadAll_MissingTrips(t *testing.T) {
	_, _, err := LoadAll(config.DataConfig{
		StationsSource: filepath.Join("testdata", "stations.json"),
		TripsSource:    filepath.Join("testdata", "nope.csv"),
	})
	if err == nil {
		t.Fatal("expected error for missing trip log")
	}
}

func TestTripCache_Roundtrip(t *testing.T) {
	trips := []Trip{
		{
			StartStationID: "A32000",
			EndStationID:   "B32006",
			StartedAt:      time.Date(2024, 3, 12, 8, 5, 0, 0, time.UTC),
			EndedAt:        time.Date(2024, 3, 12, 8, 20, 0, 0, time.UTC),
		},
	}
	path := filepath.Join(t.TempDir(), "trips.gob")
	if err := WriteTripCacheFile(path, trips); err != nil {
		t.Fatalf("WriteTripCacheFile: %v", err)
	}
	got, err := ReadTripCacheFile(path)
	if err != nil {
		t.Fatalf("ReadTripCacheFile: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("roundtrip returned %d trips, want 1", len(got))
	}
	if got[0].StartStationID != trips[0].StartStationID ||
		got[0].EndStationID != trips[0].EndStationID ||
		!got[0].StartedAt.Equal(trips[0].StartedAt) ||
		!got[0].EndedAt.Equal(trips[0].EndedAt) {
		t.Errorf("roundtrip = %+v, want %+v", got[0], trips[0])
	}
}

func TestLoadTrips_UsesCache(t *testing.T) {
	cachePath := filepath.Join(t.TempDir(), "trips.gob")
	source := filepath.Join("testdata", "trips.csv")

	first, err := LoadTrips(source, cachePath)
	if err != nil {
		t.Fatalf("LoadTrips (cold): %v", err)
	}
	// Second load must be served from the cache even if the CSV vanished.
	second, err := LoadTrips(filepath.Join("testdata", "gone.csv"), cachePath)
	if err != nil {
		t.Fatalf("LoadTrips (cached): %v", err)
	}
	if len(first) != len(second) {
		t.Errorf("cache returned %d trips, want %d", len(second), len(first))
	}
}
