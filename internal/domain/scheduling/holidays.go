package scheduling

import "time"

// easterSunday returns Easter Sunday for the given year using the
// Meeus/Jones/Butcher Gregorian algorithm.
func easterSunday(year int) time.Time {
	a := year % 19
	b := year / 100
	c := year % 100
	d := b / 4
	e := b % 4
	f := (b + 8) / 25
	g := (b - f + 1) / 3
	h := (19*a + b - d - g + 15) % 30
	i := c / 4
	k := c % 4
	l := (32 + 2*e + 2*i - h - k) % 7
	m := (a + 11*h + 22*l) / 451
	month := (h + l - 7*m + 114) / 31
	day := (h+l-7*m+114)%31 + 1
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
}

// knabenschiessenMonday returns the second Monday of September, the closing
// day of Zurich's Knabenschiessen. The fair itself runs from the Saturday
// before; the Sunday and Monday are the days the city's salons close.
func knabenschiessenMonday(year int) time.Time {
	d := time.Date(year, time.September, 1, 0, 0, 0, 0, time.UTC)
	offset := (int(time.Monday) - int(d.Weekday()) + 7) % 7
	return d.AddDate(0, 0, offset+7)
}

func isoDate(t time.Time) string {
	return t.Format("2006-01-02")
}

// HolidaysForCanton returns the set of closed dates, as "YYYY-MM-DD" strings,
// for the given canton across the given years. Nationwide dates are always
// included; canton "ZH" adds the Knabenschiessen Sunday and Monday.
func HolidaysForCanton(canton string, years []int) map[string]struct{} {
	out := make(map[string]struct{})
	for _, year := range years {
		easter := easterSunday(year)
		fixed := []time.Time{
			time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC),
			time.Date(year, time.January, 2, 0, 0, 0, 0, time.UTC),
			easter.AddDate(0, 0, -2), // Good Friday
			easter.AddDate(0, 0, 1),  // Easter Monday
			time.Date(year, time.May, 1, 0, 0, 0, 0, time.UTC),
			easter.AddDate(0, 0, 39), // Ascension
			easter.AddDate(0, 0, 50), // Whit Monday
			time.Date(year, time.August, 1, 0, 0, 0, 0, time.UTC),
			time.Date(year, time.December, 25, 0, 0, 0, 0, time.UTC),
			time.Date(year, time.December, 26, 0, 0, 0, 0, time.UTC),
		}
		for _, d := range fixed {
			out[isoDate(d)] = struct{}{}
		}
		if canton == "ZH" {
			monday := knabenschiessenMonday(year)
			out[isoDate(monday)] = struct{}{}
			out[isoDate(monday.AddDate(0, 0, -1))] = struct{}{}
		}
	}
	return out
}

// yearsSpanning lists the calendar years covered by [from, to], padded by one
// year on each side so holidays near year boundaries are never missed.
func yearsSpanning(from, to time.Time) []int {
	first := from.Year() - 1
	last := to.Year() + 1
	if last < first {
		first, last = last, first
	}
	years := make([]int, 0, last-first+1)
	for y := first; y <= last; y++ {
		years = append(years, y)
	}
	return years
}
