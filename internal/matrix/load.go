package matrix

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Options controls text parsing.
type Options struct {
	Comment string // Text from this marker to end of line is ignored (default: "%")
}

// DefaultOptions returns the options used by Load and Parse.
func DefaultOptions() Options {
	return Options{Comment: "%"}
}

// Load reads a matrix from a whitespace-delimited text file.
func Load(filename string) (*Matrix, error) {
	return LoadWith(filename, DefaultOptions())
}

// LoadWith reads a matrix from a file using custom options.
func LoadWith(filename string, opts Options) (*Matrix, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	m, err := ParseWith(file, opts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return m, nil
}

// Parse reads a matrix from r using the default options.
func Parse(r io.Reader) (*Matrix, error) {
	return ParseWith(r, DefaultOptions())
}

// ParseWith reads a matrix from r. Blank and comment-only lines are skipped;
// a reader without data lines yields an empty matrix and no error.
func ParseWith(r io.Reader, opts Options) (*Matrix, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	var (
		data   []float64
		rows   int
		cols   = -1
		lineNo int
	)
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if opts.Comment != "" {
			if idx := strings.Index(line, opts.Comment); idx >= 0 {
				line = line[:idx]
			}
		}

		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		if cols == -1 {
			cols = len(fields)
		} else if len(fields) != cols {
			return nil, fmt.Errorf("%w: line %d has %d columns, want %d", ErrRagged, lineNo, len(fields), cols)
		}

		for _, field := range fields {
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, &ParseError{Line: lineNo, Token: field, Err: err}
			}
			data = append(data, v)
		}
		rows++
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	if rows == 0 {
		return &Matrix{}, nil
	}
	return fromFlat(rows, cols, data), nil
}
