package dataset

import "time"

// Station is one bike-share dock. The identity fields are loaded once at
// startup and never change; the three counters are derived and overwritten
// in place on every aggregation pass.
type Station struct {
	ID  string  `json:"id"`
	Lon float64 `json:"lon"`
	Lat float64 `json:"lat"`

	Arrivals     int `json:"arrivals"`
	Departures   int `json:"departures"`
	TotalTraffic int `json:"totalTraffic"`
}

// Trip is one ride from the raw trip log. The station references are by id
// and may point at stations absent from the loaded station set; such trips
// contribute to no station's counters. Only the time-of-day component of
// the timestamps matters downstream.
type Trip struct {
	StartStationID string
	EndStationID   string
	StartedAt      time.Time
	EndedAt        time.Time
}
