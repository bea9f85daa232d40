package timeaxis

import (
	"errors"
	"fmt"
	"time"
)

// ErrLimitArity is returned when axis limits are not a (low, high) pair.
var ErrLimitArity = errors.New("timeaxis: axis limits need exactly two values")

// Bounds are explicit axis limits. For time bounds MinTime and MaxTime are
// set and Min and Max hold their Unix seconds.
type Bounds struct {
	Min, Max         float64
	MinTime, MaxTime time.Time
}

// IsTime reports whether the bounds are timestamps.
func (b Bounds) IsTime() bool {
	return !b.MinTime.IsZero() || !b.MaxTime.IsZero()
}

// ResolveLimits turns user supplied x-axis limits into renderer bounds. A nil
// slice means no limits and yields nil. Under ModifiedJulianDate both values
// are converted the same way Resolve converts x values; other modes pass the
// numbers through. Use Raw for y-axis limits.
func ResolveLimits(raw []float64, mode Mode) (*Bounds, error) {
	if raw == nil {
		return nil, nil
	}
	if len(raw) != 2 {
		return nil, fmt.Errorf("%w: got %d", ErrLimitArity, len(raw))
	}

	if mode != ModifiedJulianDate {
		return &Bounds{Min: raw[0], Max: raw[1]}, nil
	}

	lo, hi := MJDToTime(raw[0]), MJDToTime(raw[1])
	return &Bounds{
		Min:     UnixSeconds(lo),
		Max:     UnixSeconds(hi),
		MinTime: lo,
		MaxTime: hi,
	}, nil
}
