// Package ui renders the interactive terminal preview of a plot.
package ui

import (
	"context"
	"fmt"
	"strings"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/kpumuk/quickplt/internal/timeaxis"
	"github.com/kpumuk/quickplt/internal/ui/components/frame"
	"github.com/kpumuk/quickplt/internal/ui/components/plotview"
	"github.com/kpumuk/quickplt/internal/ui/theme"
)

// Layer is one series shown in the preview.
type Layer struct {
	Name      string
	Series    timeaxis.Series
	Secondary bool
}

// Config describes what the preview shows.
type Config struct {
	Title   string
	XLabel  string
	YLabel  string
	Layers  []Layer
	XLimits *timeaxis.Bounds
	YLimits *timeaxis.Bounds
	Reverse bool
}

// App is the preview application model.
type App struct {
	keys   KeyMap
	cfg    Config
	width  int
	height int
	ready  bool
	frame  frame.Model
	chart  plotview.Model
	styles theme.Styles
}

// New creates a new App instance.
func New(cfg Config) App {
	styles := theme.NewStyles()

	a := App{
		keys:   DefaultKeyMap(),
		cfg:    cfg,
		styles: styles,
		frame: frame.New(
			frame.WithStyles(frame.Styles{
				Title:  styles.Title,
				Meta:   styles.Meta,
				Border: styles.Border,
			}),
			frame.WithTitle(cfg.Title),
			frame.WithMeta(modeLabel(cfg.Layers)),
		),
	}
	a.chart = a.newChart()
	return a
}

// Run shows the preview until the user quits or ctx is cancelled.
func Run(ctx context.Context, cfg Config) error {
	p := tea.NewProgram(New(cfg), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run preview: %w", err)
	}
	return nil
}

func (a App) newChart() plotview.Model {
	series := make([]plotview.Series, 0, len(a.cfg.Layers))
	timeAxis := false
	for i, layer := range a.cfg.Layers {
		if i == 0 {
			timeAxis = layer.Series.IsTime()
		}
		style := a.styles.Primary
		if layer.Secondary {
			style = a.styles.Secondary
		}
		series = append(series, plotview.Series{
			Name:  layer.Name,
			X:     layer.Series.XValues(),
			Y:     layer.Series.Y,
			Style: style,
		})
	}

	invert := a.cfg.Reverse
	opts := []plotview.Option{
		plotview.WithStyles(plotview.Styles{
			Axis:  a.styles.Axis,
			Label: a.styles.AxisLabel,
		}),
		plotview.WithSeries(series...),
		plotview.WithTimeAxis(timeAxis),
		plotview.WithEmptyMessage("No points to plot"),
	}
	if b := a.cfg.XLimits; b != nil {
		opts = append(opts, plotview.WithInvertedX(b.Min > b.Max))
		if b.IsTime() {
			opts = append(opts, plotview.WithXRange(timeaxis.UnixSeconds(b.MinTime), timeaxis.UnixSeconds(b.MaxTime)))
		} else {
			opts = append(opts, plotview.WithXRange(b.Min, b.Max))
		}
	}
	if b := a.cfg.YLimits; b != nil {
		if b.Min > b.Max {
			invert = true
		}
		opts = append(opts, plotview.WithYRange(b.Min, b.Max))
	}
	opts = append(opts, plotview.WithInvertedY(invert))

	return plotview.New(opts...)
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, a.keys.Quit) {
			return a, tea.Quit
		}

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.ready = true

		// Frame takes everything but the footer line.
		a.frame.SetSize(a.width, max(a.height-1, 0))
		innerWidth, innerHeight := a.frame.InnerSize()
		// One line inside the frame goes to the axis labels.
		a.chart.SetSize(innerWidth, max(innerHeight-1, 0))
	}

	return a, nil
}

// View implements tea.Model.
func (a App) View() tea.View {
	var v tea.View
	v.AltScreen = true

	if !a.ready {
		v.SetContent("Initializing...")
		return v
	}

	v.SetContent(a.render())
	return v
}

func (a App) render() string {
	box := a.frame
	box.SetContent(lipgloss.JoinVertical(lipgloss.Left, a.chart.View(), a.axisLine()))

	return lipgloss.JoinVertical(lipgloss.Left, box.View(), a.footer())
}

func (a App) axisLine() string {
	return a.styles.Muted.Render(fmt.Sprintf("x: %s  y: %s", a.cfg.XLabel, a.cfg.YLabel))
}

func (a App) footer() string {
	var b strings.Builder
	help := a.keys.Quit.Help()
	b.WriteString(a.styles.HelpKey.Render(help.Key))
	b.WriteString(" ")
	b.WriteString(a.styles.Muted.Render(help.Desc))
	for _, layer := range a.cfg.Layers {
		style := a.styles.Primary
		if layer.Secondary {
			style = a.styles.Secondary
		}
		b.WriteString("  ")
		b.WriteString(style.Render("•"))
		b.WriteString(" ")
		b.WriteString(a.styles.Text.Render(layer.Name))
	}
	return lipgloss.NewStyle().MaxWidth(a.width).Render(b.String())
}

func modeLabel(layers []Layer) string {
	if len(layers) == 0 {
		return ""
	}
	return layers[0].Series.Mode.String()
}
