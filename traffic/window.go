package traffic

import (
	"time"

	"github.com/urban-viz/bikeflow/dataset"
)

// UnsetFilter is the sentinel meaning no time filter is active.
const UnsetFilter = -1

// MinutesPerDay bounds valid filter values: [0, MinutesPerDay).
const MinutesPerDay = 24 * 60

// MinuteOfDay returns t's time-of-day in minutes, discarding the date.
func MinuteOfDay(t time.Time) int {
	return t.Hour()*60 + t.Minute()
}

// FilterByTime returns the trips whose start or end time-of-day falls
// within windowMinutes of reference, bounds inclusive. When reference is
// UnsetFilter the input slice is returned unchanged. There is no
// wraparound across midnight: a trip at 23:50 is 1430 minutes from a
// reference of 00:10.
func FilterByTime(trips []dataset.Trip, reference, windowMinutes int) []dataset.Trip {
	if reference == UnsetFilter {
		return trips
	}
	kept := make([]dataset.Trip, 0, len(trips))
	for _, t := range trips {
		started := MinuteOfDay(t.StartedAt)
		ended := MinuteOfDay(t.EndedAt)
		if absInt(started-reference) <= windowMinutes || absInt(ended-reference) <= windowMinutes {
			kept = append(kept, t)
		}
	}
	return kept
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
