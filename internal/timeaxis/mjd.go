package timeaxis

import (
	"math"
	"time"
)

const secondsPerDay = 86400

// mjdEpoch is MJD 0.
var mjdEpoch = time.Date(1858, time.November, 17, 0, 0, 0, 0, time.UTC)

// MJDToTime converts a Modified Julian Date to a UTC timestamp rounded to the
// microsecond. Leap seconds are not modelled. NaN and infinities map to the
// zero time, which renderers treat as a missing point.
func MJDToTime(mjd float64) time.Time {
	if math.IsNaN(mjd) || math.IsInf(mjd, 0) {
		return time.Time{}
	}
	days := math.Floor(mjd)
	micros := math.Round((mjd - days) * secondsPerDay * 1e6)
	return mjdEpoch.
		AddDate(0, 0, int(days)).
		Add(time.Duration(micros) * time.Microsecond)
}
