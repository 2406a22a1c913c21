package interval

import "time"

// Overlaps reports whether the half-open intervals [aStart, aEnd) and
// [bStart, bEnd) share any instant. Intervals that only touch at a
// boundary do not overlap.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && bStart.Before(aEnd)
}

// DurationHours returns the length of [start, end) in fractional hours,
// or 0 when either bound is zero or end is not after start.
func DurationHours(start, end time.Time) float64 {
	if start.IsZero() || end.IsZero() || !end.After(start) {
		return 0
	}
	return end.Sub(start).Hours()
}
