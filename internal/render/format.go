package render

import (
	"errors"
	"fmt"
	"image/color"

	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// ErrFormat is returned for format strings the renderer does not understand.
var ErrFormat = errors.New("render: invalid format string")

// Default formats for the primary and secondary series.
const (
	PrimaryFormat   = "b."
	SecondaryFormat = "r."
)

const lineWidth = 1.5 // points

var colors = map[byte]color.Color{
	'b': color.RGBA{B: 255, A: 255},
	'g': color.RGBA{G: 128, A: 255},
	'r': color.RGBA{R: 255, A: 255},
	'c': color.RGBA{G: 191, B: 191, A: 255},
	'm': color.RGBA{R: 191, B: 191, A: 255},
	'y': color.RGBA{R: 191, G: 191, A: 255},
	'k': color.Black,
	'w': color.White,
}

type marker struct {
	shape  draw.GlyphDrawer
	radius vg.Length
}

var markers = map[byte]marker{
	'.': {shape: draw.CircleGlyph{}, radius: vg.Points(1.5)},
	',': {shape: draw.CircleGlyph{}, radius: vg.Points(0.5)},
	'o': {shape: draw.CircleGlyph{}, radius: vg.Points(3)},
	'^': {shape: draw.TriangleGlyph{}, radius: vg.Points(3)},
	'v': {shape: draw.TriangleGlyph{}, radius: vg.Points(3)},
	'<': {shape: draw.TriangleGlyph{}, radius: vg.Points(3)},
	'>': {shape: draw.TriangleGlyph{}, radius: vg.Points(3)},
	's': {shape: draw.BoxGlyph{}, radius: vg.Points(3)},
	'D': {shape: draw.SquareGlyph{}, radius: vg.Points(3)},
	'd': {shape: draw.SquareGlyph{}, radius: vg.Points(2)},
	'+': {shape: draw.PlusGlyph{}, radius: vg.Points(3)},
	'x': {shape: draw.CrossGlyph{}, radius: vg.Points(3)},
	'*': {shape: starGlyph{}, radius: vg.Points(3.5)},
}

// line styles in matplotlib's dash pattern units (multiples of line width)
var dashes = map[string][]float64{
	"-":  nil,
	"--": {3.7, 1.6},
	":":  {1, 1.65},
	"-.": {6.4, 1.6, 1, 1.6},
}

// Format is a parsed matplotlib-style format string such as "b.", "ro" or "k--".
type Format struct {
	Color  color.Color
	Marker byte   // 0 when no marker is drawn
	Line   string // "" when no line is drawn
}

// ParseFormat parses a format string made of an optional color letter, an
// optional marker and an optional line style, in any order. A format with
// neither marker nor line style draws a solid line; a missing color is blue.
func ParseFormat(s string) (Format, error) {
	f := Format{Color: colors['b']}
	var seenColor bool

	for i := 0; i < len(s); {
		if i+1 < len(s) {
			if two := s[i : i+2]; two == "--" || two == "-." {
				if f.Line != "" {
					return Format{}, fmt.Errorf("%w %q: two line styles", ErrFormat, s)
				}
				f.Line = two
				i += 2
				continue
			}
		}

		ch := s[i]
		switch {
		case ch == '-' || ch == ':':
			if f.Line != "" {
				return Format{}, fmt.Errorf("%w %q: two line styles", ErrFormat, s)
			}
			f.Line = string(ch)
		case colors[ch] != nil:
			if seenColor {
				return Format{}, fmt.Errorf("%w %q: two colors", ErrFormat, s)
			}
			f.Color = colors[ch]
			seenColor = true
		case markers[ch].shape != nil:
			if f.Marker != 0 {
				return Format{}, fmt.Errorf("%w %q: two markers", ErrFormat, s)
			}
			f.Marker = ch
		default:
			return Format{}, fmt.Errorf("%w %q: unrecognized character %q", ErrFormat, s, ch)
		}
		i++
	}

	if f.Marker == 0 && f.Line == "" {
		f.Line = "-"
	}
	return f, nil
}

// MustParseFormat is like ParseFormat but panics on error. It is meant for
// constant format strings.
func MustParseFormat(s string) Format {
	f, err := ParseFormat(s)
	if err != nil {
		panic(err)
	}
	return f
}

func (f Format) glyphStyle() draw.GlyphStyle {
	m := markers[f.Marker]
	return draw.GlyphStyle{
		Color:  f.Color,
		Radius: m.radius,
		Shape:  m.shape,
	}
}

func (f Format) lineStyle() draw.LineStyle {
	style := draw.LineStyle{
		Color: f.Color,
		Width: vg.Points(lineWidth),
	}
	for _, d := range dashes[f.Line] {
		style.Dashes = append(style.Dashes, vg.Points(d*lineWidth))
	}
	return style
}

// starGlyph draws a plus and a cross on top of each other.
type starGlyph struct{}

func (starGlyph) DrawGlyph(c *draw.Canvas, sty draw.GlyphStyle, pt vg.Point) {
	draw.PlusGlyph{}.DrawGlyph(c, sty, pt)
	draw.CrossGlyph{}.DrawGlyph(c, sty, pt)
}
