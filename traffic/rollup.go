package traffic

import "github.com/urban-viz/bikeflow/dataset"

// Aggregate overwrites each station's Arrivals, Departures and
// TotalTraffic from the given trip log and returns the same station
// slice. Trips referencing station ids absent from the station set
// contribute to no counter; stations with no matching trips get zeros.
// No accumulation happens across calls.
func Aggregate(stations []*dataset.Station, trips []dataset.Trip) []*dataset.Station {
	departures := make(map[string]int, len(stations))
	arrivals := make(map[string]int, len(stations))
	for _, t := range trips {
		departures[t.StartStationID]++
		arrivals[t.EndStationID]++
	}
	for _, s := range stations {
		s.Departures = departures[s.ID]
		s.Arrivals = arrivals[s.ID]
		s.TotalTraffic = s.Departures + s.Arrivals
	}
	return stations
}

// MaxTotalTraffic returns the largest TotalTraffic among stations, zero
// for an empty set.
func MaxTotalTraffic(stations []*dataset.Station) int {
	max := 0
	for _, s := range stations {
		if s.TotalTraffic > max {
			max = s.TotalTraffic
		}
	}
	return max
}
