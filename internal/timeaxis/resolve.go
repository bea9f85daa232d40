package timeaxis

import (
	"errors"
	"fmt"
	"math"
	"time"
)

var (
	// ErrEmptyMatrix is returned when asked to resolve a matrix without rows.
	ErrEmptyMatrix = errors.New("timeaxis: empty matrix")

	// ErrColumnOutOfRange is matched by *ColumnError.
	ErrColumnOutOfRange = errors.New("timeaxis: column out of range")

	// ErrInvalidDate is returned when calendar columns hold an impossible date.
	ErrInvalidDate = errors.New("timeaxis: invalid date")
)

// ColumnError reports a column that the matrix does not have. Columns are
// reported one-based, the way users name them on the command line.
type ColumnError struct {
	Role   string // "x", "y" or the mode that needs leading columns
	Column int    // one-based
	Width  int
}

func (e *ColumnError) Error() string {
	return fmt.Sprintf("timeaxis: %s column %d requested but rows have %d columns", e.Role, e.Column, e.Width)
}

func (e *ColumnError) Is(target error) bool {
	return target == ErrColumnOutOfRange
}

// Table is the read-only view of a numeric matrix the resolver needs.
type Table interface {
	Rows() int
	Cols() int
	At(i, j int) float64
}

// Series is a normalized x/y pair. Times is set only for time modes, in which
// case X is nil.
type Series struct {
	Mode  Mode
	X     []float64
	Times []time.Time
	Y     []float64
}

// Len returns the number of points.
func (s Series) Len() int {
	return len(s.Y)
}

// IsTime reports whether the x values are timestamps.
func (s Series) IsTime() bool {
	return s.Times != nil
}

// XValues returns the x axis as numbers: X for raw series, Unix seconds for
// time series. Zero timestamps become NaN.
func (s Series) XValues() []float64 {
	if !s.IsTime() {
		return s.X
	}
	out := make([]float64, len(s.Times))
	for i, t := range s.Times {
		out[i] = UnixSeconds(t)
	}
	return out
}

// UnixSeconds converts t to fractional Unix seconds, or NaN for the zero time.
func UnixSeconds(t time.Time) float64 {
	if t.IsZero() {
		return math.NaN()
	}
	return float64(t.Unix()) + float64(t.Nanosecond())/1e9
}

// Resolve extracts the x and y columns of m and converts x according to mode.
// xcol and ycol are zero-based. Rows keep their order.
func Resolve(m Table, xcol, ycol int, mode Mode) (Series, error) {
	if m.Rows() == 0 {
		return Series{}, ErrEmptyMatrix
	}
	if err := checkColumns(m.Cols(), xcol, ycol, mode); err != nil {
		return Series{}, err
	}

	n := m.Rows()
	s := Series{Mode: mode, Y: make([]float64, n)}
	for i := range n {
		s.Y[i] = m.At(i, ycol)
	}

	if mode == Raw {
		s.X = make([]float64, n)
		for i := range n {
			s.X[i] = m.At(i, xcol)
		}
		return s, nil
	}

	s.Times = make([]time.Time, n)
	for i := range n {
		t, err := rowTime(m, i, xcol, mode)
		if err != nil {
			return Series{}, fmt.Errorf("row %d: %w", i+1, err)
		}
		s.Times[i] = t
	}
	return s, nil
}

func checkColumns(width, xcol, ycol int, mode Mode) error {
	if need := mode.RequiredColumns(); need > width {
		return &ColumnError{Role: mode.String(), Column: need, Width: width}
	}
	// In calendar modes the x column is ignored.
	if mode == Raw || mode == ModifiedJulianDate {
		if xcol < 0 || xcol >= width {
			return &ColumnError{Role: "x", Column: xcol + 1, Width: width}
		}
	}
	if ycol < 0 || ycol >= width {
		return &ColumnError{Role: "y", Column: ycol + 1, Width: width}
	}
	return nil
}

func rowTime(m Table, i, xcol int, mode Mode) (time.Time, error) {
	switch mode {
	case ModifiedJulianDate:
		return MJDToTime(m.At(i, xcol)), nil
	case YearMonthDayHour:
		return FromYearMonthDayHour(m.At(i, 0), m.At(i, 1), m.At(i, 2), m.At(i, 3))
	case YearDayOfYear:
		return FromYearDayOfYear(m.At(i, 0), m.At(i, 1))
	default:
		return time.Time{}, fmt.Errorf("timeaxis: unsupported mode %v", mode)
	}
}

// FromYearMonthDayHour builds a UTC timestamp from calendar fields. Fractional
// parts are truncated. Out-of-range fields are rejected instead of normalized.
func FromYearMonthDayHour(year, month, day, hour float64) (time.Time, error) {
	if !finite(year, month, day, hour) {
		return time.Time{}, fmt.Errorf("%w: %v-%v-%v %vh", ErrInvalidDate, year, month, day, hour)
	}
	y, mo, d, h := int(year), int(month), int(day), int(hour)
	if mo < 1 || mo > 12 || d < 1 || h < 0 || h > 23 {
		return time.Time{}, fmt.Errorf("%w: %v-%v-%v %vh", ErrInvalidDate, year, month, day, hour)
	}
	t := time.Date(y, time.Month(mo), d, h, 0, 0, 0, time.UTC)
	if t.Day() != d {
		return time.Time{}, fmt.Errorf("%w: %04d-%02d-%02d", ErrInvalidDate, y, mo, d)
	}
	return t, nil
}

// FromYearDayOfYear returns January 1st of year plus doy-1 days. A fractional
// doy adds the fraction of a day, rounded to the microsecond.
func FromYearDayOfYear(year, doy float64) (time.Time, error) {
	if !finite(year, doy) {
		return time.Time{}, fmt.Errorf("%w: year %v doy %v", ErrInvalidDate, year, doy)
	}
	whole := math.Floor(doy)
	micros := math.Round((doy - whole) * secondsPerDay * 1e6)
	return time.Date(int(year), time.January, 1, 0, 0, 0, 0, time.UTC).
		AddDate(0, 0, int(whole)-1).
		Add(time.Duration(micros) * time.Microsecond), nil
}

func finite(values ...float64) bool {
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
