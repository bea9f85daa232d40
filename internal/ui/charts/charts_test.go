package charts

import (
	"math"
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
)

func TestRange(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		values [][]float64
		lo, hi float64
		ok     bool
	}{
		"empty":        {values: nil, ok: false},
		"only nan":     {values: [][]float64{{math.NaN(), math.Inf(1)}}, ok: false},
		"single":       {values: [][]float64{{3}}, lo: 3, hi: 3, ok: true},
		"skips nan":    {values: [][]float64{{math.NaN(), 2, -1}}, lo: -1, hi: 2, ok: true},
		"across input": {values: [][]float64{{1, 2}, {-5}, {10}}, lo: -5, hi: 10, ok: true},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			lo, hi, ok := Range(tc.values...)
			if ok != tc.ok {
				t.Fatalf("Range() ok = %v, want %v", ok, tc.ok)
			}
			if ok && (lo != tc.lo || hi != tc.hi) {
				t.Fatalf("Range() = (%v, %v), want (%v, %v)", lo, hi, tc.lo, tc.hi)
			}
		})
	}
}

func TestRenderCentered(t *testing.T) {
	t.Parallel()

	out := RenderCentered(11, 3, "empty")
	lines := strings.Split(out, "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(lines))
	}
	if got := lines[1]; got != "   empty" {
		t.Fatalf("middle line = %q, want %q", got, "   empty")
	}
	for i, line := range lines {
		if w := ansi.StringWidth(line); w > 11 {
			t.Fatalf("line %d: width %d exceeds 11", i, w)
		}
	}

	if got := RenderCentered(10, 0, "x"); got != "" {
		t.Fatalf("zero height = %q, want empty", got)
	}
}
