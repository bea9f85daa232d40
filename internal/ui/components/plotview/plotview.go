// Package plotview provides a terminal scatter chart of one or more x/y series.
package plotview

import (
	"time"

	"charm.land/lipgloss/v2"
	"github.com/NimbleMarkets/ntcharts/v2/canvas"
	"github.com/NimbleMarkets/ntcharts/v2/linechart"

	"github.com/kpumuk/quickplt/internal/mathutil"
	"github.com/kpumuk/quickplt/internal/ui/charts"
	"github.com/kpumuk/quickplt/internal/ui/format"
)

const defaultRune = '•'

// Styles holds the visual styles for the chart.
type Styles struct {
	Axis  lipgloss.Style // Style for chart axes
	Label lipgloss.Style // Style for axis labels
}

// DefaultStyles returns sensible default styles.
func DefaultStyles() Styles {
	return Styles{
		Axis:  lipgloss.NewStyle(),
		Label: lipgloss.NewStyle(),
	}
}

// Series is one set of points. For time axes X holds Unix seconds.
type Series struct {
	Name  string
	X     []float64
	Y     []float64
	Style lipgloss.Style
	Rune  rune // Point marker, defaults to a bullet
}

type bounds struct {
	lo, hi float64
}

// Model holds the chart state.
type Model struct {
	styles       Styles
	width        int
	height       int
	series       []Series
	timeAxis     bool
	invertX      bool
	invertY      bool
	xSteps       int
	ySteps       int
	xRange       *bounds
	yRange       *bounds
	emptyMessage string
}

// Option is a functional option for configuring the chart.
type Option func(*Model)

// New creates a new chart model with functional options.
func New(opts ...Option) Model {
	m := Model{
		styles: DefaultStyles(),
		xSteps: 4,
		ySteps: 2,
	}
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

// WithStyles sets custom styles for the chart.
func WithStyles(s Styles) Option {
	return func(m *Model) { m.styles = s }
}

// WithSize sets the dimensions of the chart.
func WithSize(w, h int) Option {
	return func(m *Model) { m.width, m.height = w, h }
}

// WithSeries sets the data series to display.
func WithSeries(series ...Series) Option {
	return func(m *Model) { m.series = series }
}

// WithTimeAxis labels the x axis as UTC dates.
func WithTimeAxis(enabled bool) Option {
	return func(m *Model) { m.timeAxis = enabled }
}

// WithInvertedX draws larger x values further left on the chart.
func WithInvertedX(enabled bool) Option {
	return func(m *Model) { m.invertX = enabled }
}

// WithInvertedY draws larger y values lower on the chart.
func WithInvertedY(enabled bool) Option {
	return func(m *Model) { m.invertY = enabled }
}

// WithXRange sets an explicit x range (overrides auto-detection).
func WithXRange(lo, hi float64) Option {
	return func(m *Model) { m.xRange = &bounds{lo: lo, hi: hi} }
}

// WithYRange sets an explicit y range (overrides auto-detection).
func WithYRange(lo, hi float64) Option {
	return func(m *Model) { m.yRange = &bounds{lo: lo, hi: hi} }
}

// WithEmptyMessage sets the message to display when there's no data.
func WithEmptyMessage(msg string) Option {
	return func(m *Model) { m.emptyMessage = msg }
}

// SetSize updates the chart dimensions.
func (m *Model) SetSize(w, h int) {
	m.width = w
	m.height = h
}

// View renders the chart to a string.
func (m Model) View() string {
	if m.width < 2 || m.height < 2 {
		return ""
	}

	minX, maxX, minY, maxY, ok := m.ranges()
	if !ok {
		return charts.RenderCentered(m.width, m.height, m.emptyMessage)
	}

	lc := linechart.New(
		m.width, m.height,
		minX, maxX,
		minY, maxY,
		// Keep date labels from running into each other on narrow terminals.
		linechart.WithXYSteps(mathutil.Clamp(m.xSteps, 1, max(m.width/12, 1)), m.ySteps),
		linechart.WithStyles(m.styles.Axis, m.styles.Label, lipgloss.NewStyle()),
		linechart.WithXLabelFormatter(m.xFormatter(minX, maxX)),
		linechart.WithYLabelFormatter(func(_ int, v float64) string {
			return format.Number(m.flipY(v, minY, maxY))
		}),
	)
	lc.DrawXYAxisAndLabel()

	for _, series := range m.series {
		r := series.Rune
		if r == 0 {
			r = defaultRune
		}
		count := min(len(series.X), len(series.Y))
		for i := range count {
			x, y := series.X[i], series.Y[i]
			if !mathutil.Finite(x) || !mathutil.Finite(y) {
				continue
			}
			if x < minX || x > maxX || y < minY || y > maxY {
				continue
			}
			point := canvas.Float64Point{X: m.flipX(x, minX, maxX), Y: m.flipY(y, minY, maxY)}
			lc.DrawRuneWithStyle(point, r, series.Style)
		}
	}

	return lc.View()
}

// ranges resolves the plotted window from explicit ranges or the data.
func (m Model) ranges() (minX, maxX, minY, maxY float64, ok bool) {
	xs := make([][]float64, 0, len(m.series))
	ys := make([][]float64, 0, len(m.series))
	for _, series := range m.series {
		xs = append(xs, series.X)
		ys = append(ys, series.Y)
	}

	minX, maxX, okX := charts.Range(xs...)
	minY, maxY, okY := charts.Range(ys...)
	if !okX || !okY {
		return 0, 0, 0, 0, false
	}
	if m.xRange != nil {
		minX, maxX = min(m.xRange.lo, m.xRange.hi), max(m.xRange.lo, m.xRange.hi)
	}
	if m.yRange != nil {
		minY, maxY = min(m.yRange.lo, m.yRange.hi), max(m.yRange.lo, m.yRange.hi)
	}

	minX, maxX = mathutil.Widen(minX, maxX)
	minY, maxY = mathutil.Widen(minY, maxY)
	return minX, maxX, minY, maxY, true
}

// flipY mirrors v inside [lo, hi] when the y axis is inverted. It is its own
// inverse, so it serves both for placing points and for labelling rows.
func (m Model) flipY(v, lo, hi float64) float64 {
	if !m.invertY {
		return v
	}
	return lo + hi - v
}

// flipX is the x counterpart of flipY.
func (m Model) flipX(v, lo, hi float64) float64 {
	if !m.invertX {
		return v
	}
	return lo + hi - v
}

func (m Model) xFormatter(lo, hi float64) linechart.LabelFormatter {
	if !m.timeAxis {
		return func(_ int, v float64) string { return format.Number(m.flipX(v, lo, hi)) }
	}
	layout := format.TimeLayout(time.Duration((hi - lo) * float64(time.Second)))
	return func(_ int, v float64) string { return format.UnixLabel(m.flipX(v, lo, hi), layout) }
}
