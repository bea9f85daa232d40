// Package mathutil provides common mathematical utility functions.
package mathutil

import (
	"cmp"
	"math"
)

// Clamp restricts a value to be within a specified range.
// Returns low if val < low, high if val > high, otherwise returns val.
func Clamp[T cmp.Ordered](val, low, high T) T {
	if val < low {
		return low
	}
	if val > high {
		return high
	}
	return val
}

// Finite reports whether v is neither NaN nor an infinity.
func Finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// Widen returns a non-degenerate range around [low, high]. Equal bounds are
// pushed apart by half a unit of their magnitude (or 0.5 around zero).
func Widen(low, high float64) (float64, float64) {
	if high > low {
		return low, high
	}
	pad := math.Abs(low) * 0.5
	if pad == 0 {
		pad = 0.5
	}
	return low - pad, high + pad
}
