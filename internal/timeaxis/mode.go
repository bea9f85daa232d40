// Package timeaxis turns raw numeric columns into plottable x/y series,
// interpreting the x axis as calendar time when a time mode is selected.
package timeaxis

import (
	"errors"
	"fmt"
	"strings"
)

// Mode selects how the x axis of a matrix is interpreted.
type Mode int

const (
	// Raw plots the x column as plain numbers.
	Raw Mode = iota
	// ModifiedJulianDate interprets the x column as MJD values.
	ModifiedJulianDate
	// YearMonthDayHour reads columns 1-4 as year, month, day and hour.
	// It is selected by the -ymdhm flag even though no minute column is read.
	YearMonthDayHour
	// YearDayOfYear reads columns 1-2 as year and day of year.
	YearDayOfYear
)

// ErrConflictingModes is returned when more than one time mode is requested.
var ErrConflictingModes = errors.New("timeaxis: conflicting time modes")

// String returns the flag-style name of the mode.
func (m Mode) String() string {
	switch m {
	case Raw:
		return "raw"
	case ModifiedJulianDate:
		return "mjd"
	case YearMonthDayHour:
		return "ymdhm"
	case YearDayOfYear:
		return "ydoy"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// IsTime reports whether the mode produces calendar timestamps on the x axis.
func (m Mode) IsTime() bool {
	return m != Raw
}

// RequiredColumns returns the number of leading columns the mode consumes
// regardless of the selected x column.
func (m Mode) RequiredColumns() int {
	switch m {
	case YearMonthDayHour:
		return 4
	case YearDayOfYear:
		return 2
	default:
		return 0
	}
}

// Enabled reports whether a legacy switch value turns a flag on.
// Only "T" and "True" count; anything else, including "", is off.
func Enabled(value string) bool {
	return value == "T" || value == "True"
}

// ModeFromFlags builds the mode from the three time switches. Selecting more
// than one of them is rejected rather than resolved by precedence.
func ModeFromFlags(mjd, ymdhm, ydoy bool) (Mode, error) {
	var selected []string
	mode := Raw
	if mjd {
		selected = append(selected, "mjd")
		mode = ModifiedJulianDate
	}
	if ymdhm {
		selected = append(selected, "ymdhm")
		mode = YearMonthDayHour
	}
	if ydoy {
		selected = append(selected, "ydoy")
		mode = YearDayOfYear
	}
	if len(selected) > 1 {
		return Raw, fmt.Errorf("%w: %s", ErrConflictingModes, strings.Join(selected, ", "))
	}
	return mode, nil
}
