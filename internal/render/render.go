// Package render draws resolved series into PNG images with gonum/plot.
package render

import (
	"fmt"
	"math"
	"time"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg/draw"

	"github.com/kpumuk/quickplt/internal/timeaxis"
)

// Options holds the decorations applied to a plot.
type Options struct {
	Title   string
	XLabel  string
	YLabel  string
	Reverse bool             // invert the y axis
	XLimits *timeaxis.Bounds // nil keeps auto-scaling
	YLimits *timeaxis.Bounds
}

// Layer is one series drawn with one format.
type Layer struct {
	Series timeaxis.Series
	Format Format
}

// Plot builds a plot of the given layers. The first layer decides whether the
// x axis is labelled as time.
func Plot(opts Options, layers ...Layer) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = opts.Title
	p.X.Label.Text = opts.XLabel
	p.Y.Label.Text = opts.YLabel
	p.Add(plotter.NewGrid())

	for i, layer := range layers {
		points := finitePoints(layer.Series)
		if len(points) == 0 {
			continue
		}
		if err := addLayer(p, points, layer.Format); err != nil {
			return nil, fmt.Errorf("add series %d: %w", i+1, err)
		}
	}

	if len(layers) > 0 && layers[0].Series.IsTime() {
		formatTimeAxis(p, layers[0].Series)
	}

	if b := opts.XLimits; b != nil && applyLimits(&p.X, b) {
		p.X.Scale = plot.InvertedScale{Normalizer: p.X.Scale}
	}
	inverted := opts.Reverse
	if b := opts.YLimits; b != nil && applyLimits(&p.Y, b) {
		inverted = true
	}
	if inverted {
		p.Y.Scale = plot.InvertedScale{Normalizer: p.Y.Scale}
	}

	return p, nil
}

// applyLimits sets the axis range and reports whether the limits were given
// high to low, which inverts the axis.
func applyLimits(axis *plot.Axis, b *timeaxis.Bounds) bool {
	lo, hi := b.Min, b.Max
	descending := lo > hi
	if descending {
		lo, hi = hi, lo
	}
	axis.Min, axis.Max = lo, hi
	return descending
}

func addLayer(p *plot.Plot, points plotter.XYs, f Format) error {
	if f.Line != "" {
		line, err := plotter.NewLine(points)
		if err != nil {
			return err
		}
		line.LineStyle = f.lineStyle()
		p.Add(line)
	}
	if f.Marker != 0 {
		scatter, err := plotter.NewScatter(points)
		if err != nil {
			return err
		}
		scatter.GlyphStyle = f.glyphStyle()
		p.Add(scatter)
	}
	return nil
}

// finitePoints drops points gonum cannot draw. The series itself is untouched.
func finitePoints(s timeaxis.Series) plotter.XYs {
	xs := s.XValues()
	points := make(plotter.XYs, 0, len(xs))
	for i, x := range xs {
		y := s.Y[i]
		if math.IsNaN(x) || math.IsInf(x, 0) || math.IsNaN(y) || math.IsInf(y, 0) {
			continue
		}
		points = append(points, plotter.XY{X: x, Y: y})
	}
	return points
}

// formatTimeAxis labels x ticks as UTC dates and slants them, like
// matplotlib's autofmt_xdate.
func formatTimeAxis(p *plot.Plot, s timeaxis.Series) {
	p.X.Tick.Marker = plot.TimeTicks{
		Format: timeLayout(s.Times),
		Time:   plot.UnixTimeIn(time.UTC),
	}
	p.X.Tick.Label.Rotation = math.Pi / 6
	p.X.Tick.Label.XAlign = draw.XRight
	p.X.Tick.Label.YAlign = draw.YCenter
}

func timeLayout(times []time.Time) string {
	var lo, hi time.Time
	for _, t := range times {
		if t.IsZero() {
			continue
		}
		if lo.IsZero() || t.Before(lo) {
			lo = t
		}
		if hi.IsZero() || t.After(hi) {
			hi = t
		}
	}
	switch span := hi.Sub(lo); {
	case span <= 2*24*time.Hour:
		return "Jan 02 15:04"
	case span <= 120*24*time.Hour:
		return "2006-01-02"
	default:
		return "2006-01"
	}
}
