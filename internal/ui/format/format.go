// Package format provides axis label formatting for the preview.
package format

import (
	"math"
	"strconv"
	"time"
)

// Number formats an axis value compactly: integers without decimals, other
// values with up to four significant digits, very large or small values in
// exponent form.
func Number(v float64) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "+Inf"
	case math.IsInf(v, -1):
		return "-Inf"
	case v == math.Trunc(v) && math.Abs(v) < 1e7:
		return strconv.FormatFloat(v, 'f', 0, 64)
	default:
		return strconv.FormatFloat(v, 'g', 4, 64)
	}
}

// TimeLayout picks a label layout that keeps labels short for the given span.
func TimeLayout(span time.Duration) string {
	switch {
	case span <= 2*24*time.Hour:
		return "01-02 15:04"
	case span <= 2*365*24*time.Hour:
		return "2006-01-02"
	default:
		return "2006-01"
	}
}

// UnixLabel formats fractional Unix seconds as a UTC time label.
func UnixLabel(sec float64, layout string) string {
	if math.IsNaN(sec) || math.IsInf(sec, 0) {
		return ""
	}
	whole := math.Floor(sec)
	t := time.Unix(int64(whole), int64((sec-whole)*1e9)).UTC()
	return t.Format(layout)
}
