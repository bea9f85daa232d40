// Package charts provides data helpers shared by the preview chart components.
package charts

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/kpumuk/quickplt/internal/mathutil"
)

// Range returns the smallest and largest finite value across all slices.
// ok is false when no finite value exists.
func Range(values ...[]float64) (lo, hi float64, ok bool) {
	for _, vs := range values {
		for _, v := range vs {
			if !mathutil.Finite(v) {
				continue
			}
			if !ok {
				lo, hi, ok = v, v, true
				continue
			}
			lo = min(lo, v)
			hi = max(hi, v)
		}
	}
	return lo, hi, ok
}

// RenderCentered centers content within a given width and height.
// Handles multi-line content by centering vertically and horizontally.
func RenderCentered(width, height int, value string) string {
	if height < 1 {
		return ""
	}
	lines := make([]string, height)
	for i := range lines {
		lines[i] = strings.Repeat(" ", width)
	}
	if width <= 0 {
		return strings.Join(lines, "\n")
	}

	contentLines := strings.Split(value, "\n")
	startLine := max((height-len(contentLines))/2, 0)

	maxWidthStyle := lipgloss.NewStyle()
	for i, contentLine := range contentLines {
		lineIdx := startLine + i
		if lineIdx >= height {
			break
		}
		trimmed := maxWidthStyle.MaxWidth(width).Render(contentLine)
		pad := max((width-lipgloss.Width(trimmed))/2, 0)
		lines[lineIdx] = strings.Repeat(" ", pad) + trimmed
	}

	return strings.Join(lines, "\n")
}
