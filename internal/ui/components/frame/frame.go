// Package frame renders a titled bordered box with optional meta content.
package frame

import (
	"strings"

	"charm.land/lipgloss/v2"
)

// Styles holds the styles for a frame.
type Styles struct {
	Title  lipgloss.Style
	Meta   lipgloss.Style
	Border lipgloss.Style
}

// DefaultStyles returns default styles for a frame.
func DefaultStyles() Styles {
	return Styles{
		Title:  lipgloss.NewStyle().Bold(true),
		Meta:   lipgloss.NewStyle(),
		Border: lipgloss.NewStyle(),
	}
}

// Model defines state for the frame component.
type Model struct {
	styles  Styles
	title   string
	meta    string
	content string
	width   int
	height  int
	border  lipgloss.Border
}

// Option is used to set options in New.
type Option func(*Model)

// New creates a new frame model.
func New(opts ...Option) Model {
	m := Model{
		styles: DefaultStyles(),
		border: lipgloss.RoundedBorder(),
	}

	for _, opt := range opts {
		opt(&m)
	}

	return m
}

// WithStyles sets the styles.
func WithStyles(s Styles) Option {
	return func(m *Model) {
		m.styles = s
	}
}

// WithTitle sets the title shown in the top-left of the border.
func WithTitle(title string) Option {
	return func(m *Model) {
		m.title = title
	}
}

// WithMeta sets text shown in the top-right of the border.
func WithMeta(meta string) Option {
	return func(m *Model) {
		m.meta = meta
	}
}

// WithContent sets the content.
func WithContent(content string) Option {
	return func(m *Model) {
		m.content = content
	}
}

// WithSize sets width and height, borders included.
func WithSize(width, height int) Option {
	return func(m *Model) {
		m.width = width
		m.height = height
	}
}

// SetContent sets the content.
func (m *Model) SetContent(content string) {
	m.content = content
}

// SetSize sets the width and height.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// InnerSize returns the space available to content.
func (m Model) InnerSize() (int, int) {
	return max(m.width-2, 0), max(m.height-2, 0)
}

// View renders the frame with the current content.
func (m Model) View() string {
	if m.width <= 0 || m.height < 2 {
		return ""
	}

	innerWidth, contentHeight := m.InnerSize()
	top := m.renderTopBorder(innerWidth)
	bottom := m.renderBottomBorder(innerWidth)
	if contentHeight == 0 {
		return top + "\n" + bottom
	}

	return top + "\n" + strings.Join(m.renderBody(innerWidth, contentHeight), "\n") + "\n" + bottom
}

func (m Model) renderTopBorder(innerWidth int) string {
	hBar := m.styles.Border.Render(m.border.Top)
	available := max(innerWidth-2, 0)

	title := padLabel(m.title)
	meta := padLabel(m.meta)
	titleWidth := lipgloss.Width(title)
	metaWidth := lipgloss.Width(meta)

	// Meta goes first, then the title is truncated.
	if titleWidth+metaWidth > available {
		meta, metaWidth = "", 0
	}
	if titleWidth > available {
		title = lipgloss.NewStyle().MaxWidth(available).Render(title)
		titleWidth = lipgloss.Width(title)
	}

	remaining := max(available-titleWidth-metaWidth, 0)

	return m.styles.Border.Render(m.border.TopLeft) +
		hBar +
		m.styles.Title.Render(title) +
		strings.Repeat(hBar, remaining) +
		m.styles.Meta.Render(meta) +
		hBar +
		m.styles.Border.Render(m.border.TopRight)
}

func (m Model) renderBottomBorder(innerWidth int) string {
	return m.styles.Border.Render(m.border.BottomLeft) +
		strings.Repeat(m.styles.Border.Render(m.border.Bottom), innerWidth) +
		m.styles.Border.Render(m.border.BottomRight)
}

func (m Model) renderBody(innerWidth, contentHeight int) []string {
	lines := strings.Split(m.content, "\n")
	body := make([]string, 0, contentHeight)

	vBar := m.styles.Border.Render(m.border.Left)
	vBarRight := m.styles.Border.Render(m.border.Right)

	for i := range contentHeight {
		var line string
		if i < len(lines) {
			line = lines[i]
		}
		body = append(body, vBar+padLine(line, innerWidth)+vBarRight)
	}

	return body
}

func padLine(line string, width int) string {
	if lineWidth := lipgloss.Width(line); lineWidth < width {
		line += strings.Repeat(" ", width-lineWidth)
	}
	return line
}

func padLabel(label string) string {
	if label == "" {
		return ""
	}
	return " " + label + " "
}
