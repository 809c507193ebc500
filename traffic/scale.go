package traffic

import "math"

// Range is a radius output range in display units.
type Range struct {
	Min float64
	Max float64
}

// RadiusScale maps a traffic count to a circle radius with a square-root
// scale, so circle area (not radius) tracks the count. The domain ceiling
// is fixed from the unfiltered full-day aggregation at construction and
// never recomputed: filtered subsets are plotted against full-day maxima.
// The output range switches between two presets depending on whether a
// time filter is active; the wider filtered range keeps low-count
// stations visible in a two-hour window.
type RadiusScale struct {
	maxTraffic float64
	base       Range
	filtered   Range
}

// NewRadiusScale builds a scale over [0, maxObservedTraffic].
func NewRadiusScale(maxObservedTraffic int, base, filtered Range) *RadiusScale {
	return &RadiusScale{
		maxTraffic: float64(maxObservedTraffic),
		base:       base,
		filtered:   filtered,
	}
}

// Radius maps totalTraffic to a radius in the preset selected by
// filterActive. A zero or negative count always maps to the range floor.
func (s *RadiusScale) Radius(totalTraffic int, filterActive bool) float64 {
	r := s.base
	if filterActive {
		r = s.filtered
	}
	if totalTraffic <= 0 || s.maxTraffic <= 0 {
		return r.Min
	}
	return r.Min + (r.Max-r.Min)*math.Sqrt(float64(totalTraffic)/s.maxTraffic)
}

// MaxTraffic reports the fixed domain ceiling.
func (s *RadiusScale) MaxTraffic() int {
	return int(s.maxTraffic)
}
