package traffic

import "testing"

var (
	testBase     = Range{Min: 0, Max: 25}
	testFiltered = Range{Min: 3, Max: 50}
)

func TestRadiusScale_ZeroMapsToRangeFloor(t *testing.T) {
	s := NewRadiusScale(100, testBase, testFiltered)
	if got := s.Radius(0, false); got != testBase.Min {
		t.Errorf("Radius(0, unfiltered) = %v, want %v", got, testBase.Min)
	}
	if got := s.Radius(0, true); got != testFiltered.Min {
		t.Errorf("Radius(0, filtered) = %v, want %v", got, testFiltered.Min)
	}
}

func TestRadiusScale_Monotonic(t *testing.T) {
	s := NewRadiusScale(200, testBase, testFiltered)
	for _, filtered := range []bool{false, true} {
		prev := -1.0
		for count := 0; count <= 200; count += 7 {
			r := s.Radius(count, filtered)
			if r < prev {
				t.Fatalf("Radius(%d, filtered=%v) = %v < previous %v", count, filtered, r, prev)
			}
			prev = r
		}
	}
}

func TestRadiusScale_DomainCeilingMapsToRangeMax(t *testing.T) {
	s := NewRadiusScale(128, testBase, testFiltered)
	if got := s.Radius(128, false); got != testBase.Max {
		t.Errorf("Radius(max, unfiltered) = %v, want %v", got, testBase.Max)
	}
	if got := s.Radius(128, true); got != testFiltered.Max {
		t.Errorf("Radius(max, filtered) = %v, want %v", got, testFiltered.Max)
	}
}

func TestRadiusScale_SqrtNotLinear(t *testing.T) {
	s := NewRadiusScale(100, testBase, testFiltered)
	// A quarter of the max should map to half the range, not a quarter.
	if got := s.Radius(25, false); got != 12.5 {
		t.Errorf("Radius(25 of 100) = %v, want 12.5", got)
	}
}

func TestRadiusScale_DomainFixedAcrossFilterChanges(t *testing.T) {
	s := NewRadiusScale(300, testBase, testFiltered)
	before := s.MaxTraffic()
	// Whatever subset gets plotted later, the ceiling never moves.
	_ = s.Radius(12, true)
	_ = s.Radius(300, false)
	if s.MaxTraffic() != before {
		t.Errorf("domain ceiling changed: %d -> %d", before, s.MaxTraffic())
	}
}

func TestRadiusScale_EmptyDayDegradesToFloor(t *testing.T) {
	s := NewRadiusScale(0, testBase, testFiltered)
	if got := s.Radius(5, false); got != testBase.Min {
		t.Errorf("Radius with zero-traffic domain = %v, want floor %v", got, testBase.Min)
	}
}
