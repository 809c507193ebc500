package controller

import (
	"time"

	"github.com/urban-viz/bikeflow/dataset"
	"github.com/urban-viz/bikeflow/metrics"
	"github.com/urban-viz/bikeflow/scene"
	"github.com/urban-viz/bikeflow/traffic"
)

// UnsetLabel is shown when no time filter is active.
const UnsetLabel = "(any time)"

// LabelSink receives the formatted time-of-day label text. The slider's
// text element implements this on the client; tests use a recording fake.
type LabelSink interface {
	SetTimeLabel(text string)
}

// Options tunes a Controller. Zero values select the reference defaults.
type Options struct {
	WindowMinutes int
	BaseRange     traffic.Range
	FilteredRange traffic.Range
	Label         LabelSink
}

// Controller drives the recomputation pipeline from user input and
// viewport notifications.
type Controller struct {
	stations []*dataset.Station
	trips    []dataset.Trip
	scale    *traffic.RadiusScale
	binder   *scene.Binder
	label    LabelSink

	windowMinutes int
	filter        int
}

// New aggregates the full day once, fixes the scale domain from that
// unfiltered pass, performs the initial bind, and positions every mark.
// The station list it is handed becomes the persistent base list whose
// counters every later recomputation overwrites.
func New(stations []*dataset.Station, trips []dataset.Trip, binder *scene.Binder, opts Options) *Controller {
	if opts.WindowMinutes == 0 {
		opts.WindowMinutes = 60
	}
	if opts.BaseRange == (traffic.Range{}) {
		opts.BaseRange = traffic.Range{Min: 0, Max: 25}
	}
	if opts.FilteredRange == (traffic.Range{}) {
		opts.FilteredRange = traffic.Range{Min: 3, Max: 50}
	}

	traffic.Aggregate(stations, trips)
	scale := traffic.NewRadiusScale(traffic.MaxTotalTraffic(stations), opts.BaseRange, opts.FilteredRange)

	c := &Controller{
		stations:      stations,
		trips:         trips,
		scale:         scale,
		binder:        binder,
		label:         opts.Label,
		windowMinutes: opts.WindowMinutes,
		filter:        traffic.UnsetFilter,
	}
	binder.BindInitial(stations, scale)
	binder.Reposition()
	c.setLabel()
	return c
}

// OnSliderInput handles a new raw slider value. Values outside
// [0, MinutesPerDay) are the sentinel meaning "no filter". The label is
// updated first, then the full radius half of the pipeline runs.
func (c *Controller) OnSliderInput(raw int) {
	if raw < 0 || raw >= traffic.MinutesPerDay {
		raw = traffic.UnsetFilter
	}
	c.filter = raw
	c.setLabel()
	c.recompute()
}

// OnViewportChange handles a pan, zoom, resize or move-end notification.
// Only positions are recomputed.
func (c *Controller) OnViewportChange() {
	c.binder.Reposition()
	metrics.ObserveReposition()
}

func (c *Controller) recompute() {
	start := time.Now()
	subset := traffic.FilterByTime(c.trips, c.filter, c.windowMinutes)
	traffic.Aggregate(c.stations, subset)
	c.binder.RebindRadius(c.stations, c.scale, c.FilterActive())
	metrics.ObserveRecompute(time.Since(start))
}

func (c *Controller) setLabel() {
	if c.label == nil {
		return
	}
	if c.filter == traffic.UnsetFilter {
		c.label.SetTimeLabel(UnsetLabel)
		return
	}
	c.label.SetTimeLabel(FormatMinute(c.filter))
}

// FormatMinute renders a minute-of-day as a 12-hour clock reading.
func FormatMinute(minute int) string {
	t := time.Date(0, time.January, 1, minute/60, minute%60, 0, 0, time.UTC)
	return t.Format("3:04 PM")
}

// TimeFilter reports the current filter value, traffic.UnsetFilter when
// none is active.
func (c *Controller) TimeFilter() int {
	return c.filter
}

// FilterActive reports whether a time filter is currently applied.
func (c *Controller) FilterActive() bool {
	return c.filter != traffic.UnsetFilter
}

// Stations exposes the base station list with its current counters.
func (c *Controller) Stations() []*dataset.Station {
	return c.stations
}

// Scale exposes the radius scale fixed at construction.
func (c *Controller) Scale() *traffic.RadiusScale {
	return c.scale
}
