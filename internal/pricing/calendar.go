package pricing

import (
	"math"
	"time"
)

// Nights returns the whole-day length of a stay, rounding partial days
// up. A non-positive range is rejected.
func Nights(checkIn, checkOut time.Time) (int, error) {
	d := checkOut.Sub(checkIn)
	if d <= 0 {
		return 0, ErrInvalidRange
	}
	return int(math.Ceil(d.Hours() / 24)), nil
}

// HasWeekendNight reports whether any night in [checkIn, checkOut) falls
// on a Friday or Saturday. The weekend rate, when triggered, applies to
// the whole stay rather than per night; see the quote docs.
func HasWeekendNight(checkIn, checkOut time.Time) bool {
	for d := checkIn; d.Before(checkOut); d = d.AddDate(0, 0, 1) {
		if wd := d.Weekday(); wd == time.Friday || wd == time.Saturday {
			return true
		}
	}
	return false
}
