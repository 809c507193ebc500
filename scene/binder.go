package scene

import (
	"fmt"

	"github.com/urban-viz/bikeflow/dataset"
	"github.com/urban-viz/bikeflow/traffic"
)

// Mark is the engine-side record of one rendered circle. Position and
// radius are derived, never authoritative: both are recomputable from the
// station's current counters and the current viewport transform.
type Mark struct {
	StationID string
	CX, CY    float64
	Radius    float64
	Tooltip   string
}

// Binder maintains the keyed join between stations and marks.
type Binder struct {
	surface   Surface
	projector Projector
	style     MarkStyle
	marks     map[string]*Mark
	stations  map[string]*dataset.Station
}

// NewBinder creates a binder that renders to surface and positions marks
// through projector.
func NewBinder(surface Surface, projector Projector) *Binder {
	return &Binder{
		surface:   surface,
		projector: projector,
		style:     DefaultMarkStyle,
		marks:     map[string]*Mark{},
		stations:  map[string]*dataset.Station{},
	}
}

// TooltipText renders the hover text for a station's counters.
func TooltipText(s *dataset.Station) string {
	return fmt.Sprintf("%d trips (%d departures, %d arrivals)",
		s.TotalTraffic, s.Departures, s.Arrivals)
}

// BindInitial creates one mark per station with static style, an initial
// radius from the unfiltered scale preset, and the tooltip text. Stations
// already bound keep their existing mark, so re-running the initial bind
// never destroys identity.
func (b *Binder) BindInitial(stations []*dataset.Station, scale *traffic.RadiusScale) {
	for _, s := range stations {
		if _, ok := b.marks[s.ID]; !ok {
			b.createMark(s, scale, false)
		}
		b.stations[s.ID] = s
	}
}

// RebindRadius re-keys the mark set against stations and updates only the
// radius attribute of each surviving mark. Marks whose key disappeared
// are removed; keys not previously seen are created. In steady state the
// key set is stable, since time filtering narrows trips, never stations.
func (b *Binder) RebindRadius(stations []*dataset.Station, scale *traffic.RadiusScale, filterActive bool) {
	seen := make(map[string]struct{}, len(stations))
	for _, s := range stations {
		seen[s.ID] = struct{}{}
		m, ok := b.marks[s.ID]
		if !ok {
			m = b.createMark(s, scale, filterActive)
			x, y := b.projector.Project(s.Lon, s.Lat)
			m.CX, m.CY = x, y
			b.surface.SetPosition(s.ID, x, y)
		}
		b.stations[s.ID] = s
		m.Radius = scale.Radius(s.TotalTraffic, filterActive)
		b.surface.SetRadius(s.ID, m.Radius)
	}
	for id := range b.marks {
		if _, ok := seen[id]; !ok {
			delete(b.marks, id)
			delete(b.stations, id)
			b.surface.RemoveMark(id)
		}
	}
}

// Reposition projects every bound station through the current viewport
// transform and writes the screen position to its mark. Radii are not
// touched; filter changes and viewport changes are independent triggers.
func (b *Binder) Reposition() {
	for id, m := range b.marks {
		s := b.stations[id]
		x, y := b.projector.Project(s.Lon, s.Lat)
		m.CX, m.CY = x, y
		b.surface.SetPosition(id, x, y)
	}
}

func (b *Binder) createMark(s *dataset.Station, scale *traffic.RadiusScale, filterActive bool) *Mark {
	m := &Mark{
		StationID: s.ID,
		Radius:    scale.Radius(s.TotalTraffic, filterActive),
		Tooltip:   TooltipText(s),
	}
	b.marks[s.ID] = m
	b.surface.CreateMark(s.ID, b.style)
	b.surface.SetRadius(s.ID, m.Radius)
	b.surface.SetTooltip(s.ID, m.Tooltip)
	return m
}

// Mark returns the mark bound to id, or nil when none exists.
func (b *Binder) Mark(id string) *Mark {
	return b.marks[id]
}

// Len reports how many marks are bound.
func (b *Binder) Len() int {
	return len(b.marks)
}
