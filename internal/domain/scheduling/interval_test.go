package scheduling

import (
	"testing"
	"time"
)

func at(h, m int) time.Time {
	return time.Date(2024, 9, 3, h, m, 0, 0, time.UTC)
}

func TestIntervalOverlaps(t *testing.T) {
	base := Interval{Start: at(10, 0), End: at(11, 0)}
	cases := []struct {
		name  string
		other Interval
		want  bool
	}{
		{"identical", Interval{at(10, 0), at(11, 0)}, true},
		{"contained", Interval{at(10, 15), at(10, 45)}, true},
		{"overlap left", Interval{at(9, 30), at(10, 30)}, true},
		{"overlap right", Interval{at(10, 30), at(11, 30)}, true},
		{"touching before", Interval{at(9, 0), at(10, 0)}, false},
		{"touching after", Interval{at(11, 0), at(12, 0)}, false},
		{"disjoint", Interval{at(12, 0), at(13, 0)}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := base.Overlaps(tc.other); got != tc.want {
				t.Errorf("Overlaps = %v, want %v", got, tc.want)
			}
			// Overlap is symmetric.
			if got := tc.other.Overlaps(base); got != tc.want {
				t.Errorf("reverse Overlaps = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestIntervalContains(t *testing.T) {
	iv := Interval{Start: at(10, 0), End: at(11, 0)}
	if !iv.Contains(at(10, 0)) {
		t.Errorf("start must be inside")
	}
	if iv.Contains(at(11, 0)) {
		t.Errorf("end must be outside")
	}
	if !iv.Contains(at(10, 30)) {
		t.Errorf("midpoint must be inside")
	}
}
