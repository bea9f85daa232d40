// Package matrix loads whitespace-delimited numeric text files into dense
// row-major matrices.
package matrix

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"
)

var (
	// ErrRagged is returned when rows of a file have different column counts.
	ErrRagged = errors.New("matrix: inconsistent number of columns")

	// ErrOutOfRange is returned by accessors when a column does not exist.
	ErrOutOfRange = errors.New("matrix: column out of range")
)

// ParseError reports a token that is not a floating point number.
type ParseError struct {
	Line  int
	Token string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("matrix: line %d: cannot parse %q as a number", e.Line, e.Token)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Matrix is an immutable table of float64 values. A Matrix with no rows is
// valid and reports Empty.
type Matrix struct {
	dense *mat.Dense
	rows  int
	cols  int
}

// New builds a matrix from rows. All rows must have the same length.
func New(rows [][]float64) (*Matrix, error) {
	if len(rows) == 0 {
		return &Matrix{}, nil
	}
	cols := len(rows[0])
	data := make([]float64, 0, len(rows)*cols)
	for i, row := range rows {
		if len(row) != cols {
			return nil, fmt.Errorf("%w: row %d has %d columns, want %d", ErrRagged, i+1, len(row), cols)
		}
		data = append(data, row...)
	}
	if cols == 0 {
		return &Matrix{}, nil
	}
	return fromFlat(len(rows), cols, data), nil
}

func fromFlat(rows, cols int, data []float64) *Matrix {
	return &Matrix{
		dense: mat.NewDense(rows, cols, data),
		rows:  rows,
		cols:  cols,
	}
}

// Rows returns the number of rows.
func (m *Matrix) Rows() int {
	return m.rows
}

// Cols returns the number of columns, or 0 for an empty matrix.
func (m *Matrix) Cols() int {
	return m.cols
}

// Empty reports whether the matrix has no rows.
func (m *Matrix) Empty() bool {
	return m.rows == 0
}

// At returns the value at row i, column j. It panics when either index is
// outside the matrix, like slice indexing.
func (m *Matrix) At(i, j int) float64 {
	if m.dense == nil {
		panic(fmt.Sprintf("matrix: At(%d, %d) on empty matrix", i, j))
	}
	return m.dense.At(i, j)
}

// Col returns a copy of column j.
func (m *Matrix) Col(j int) ([]float64, error) {
	if j < 0 || j >= m.cols {
		return nil, fmt.Errorf("%w: column %d of %d", ErrOutOfRange, j+1, m.cols)
	}
	return mat.Col(nil, j, m.dense), nil
}

