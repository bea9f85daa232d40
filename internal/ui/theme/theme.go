package theme

import (
	"charm.land/lipgloss/v2"
	"charm.land/lipgloss/v2/compat"
)

// Theme defines all colors used by the preview.
type Theme struct {
	// Base colors
	Primary compat.CompleteAdaptiveColor

	// Text colors
	Text      compat.CompleteAdaptiveColor
	TextMuted compat.CompleteAdaptiveColor

	// Border colors
	Border compat.AdaptiveColor

	// Series colors, matching the "b." and "r." markers of the image
	SeriesPrimary   compat.AdaptiveColor
	SeriesSecondary compat.AdaptiveColor
}

// DefaultTheme is the adaptive color scheme used by default.
// Use Open Color palette when possible to define colors: https://yeun.github.io/open-color/
var DefaultTheme = Theme{
	Primary: compat.CompleteAdaptiveColor{
		Light: compat.CompleteColor{TrueColor: lipgloss.Color("#1864AB"), ANSI256: lipgloss.Color("25"), ANSI: lipgloss.Color("4")},
		Dark:  compat.CompleteColor{TrueColor: lipgloss.Color("#74C0FC"), ANSI256: lipgloss.Color("117"), ANSI: lipgloss.Color("12")},
	},

	// Text
	Text: compat.CompleteAdaptiveColor{
		Light: compat.CompleteColor{TrueColor: lipgloss.Color("#111827"), ANSI256: lipgloss.Color("0"), ANSI: lipgloss.Color("0")},
		Dark:  compat.CompleteColor{TrueColor: lipgloss.Color("#F9FAFB"), ANSI256: lipgloss.Color("15"), ANSI: lipgloss.Color("15")},
	},
	TextMuted: compat.CompleteAdaptiveColor{
		Light: compat.CompleteColor{TrueColor: lipgloss.Color("#6B7280"), ANSI256: lipgloss.Color("240"), ANSI: lipgloss.Color("8")},
		Dark:  compat.CompleteColor{TrueColor: lipgloss.Color("#9CA3AF"), ANSI256: lipgloss.Color("250"), ANSI: lipgloss.Color("7")},
	},

	// Borders
	Border: compat.AdaptiveColor{
		Light: lipgloss.Color("#D1D5DB"), // Gray-300
		Dark:  lipgloss.Color("#374151"), // Gray-700
	},

	// Series
	SeriesPrimary: compat.AdaptiveColor{
		Light: lipgloss.Color("#1C7ED6"), // Blue-7
		Dark:  lipgloss.Color("#4DABF7"), // Blue-4
	},
	SeriesSecondary: compat.AdaptiveColor{
		Light: lipgloss.Color("#E03131"), // Red-8
		Dark:  lipgloss.Color("#FF6B6B"), // Red-5
	},
}

// Styles holds all lipgloss styles derived from a theme
type Styles struct {
	// Frame
	Title  lipgloss.Style
	Meta   lipgloss.Style
	Border lipgloss.Style

	// Chart
	Axis      lipgloss.Style
	AxisLabel lipgloss.Style
	Primary   lipgloss.Style
	Secondary lipgloss.Style

	// Footer
	Text    lipgloss.Style
	Muted   lipgloss.Style
	HelpKey lipgloss.Style
}

// NewStyles creates a Styles instance from the default adaptive theme.
func NewStyles() Styles {
	t := DefaultTheme
	return Styles{
		Title: lipgloss.NewStyle().
			Foreground(t.Primary).
			Bold(true),

		Meta: lipgloss.NewStyle().
			Foreground(t.TextMuted),

		Border: lipgloss.NewStyle().
			Foreground(t.Border),

		Axis: lipgloss.NewStyle().
			Foreground(t.Border),

		AxisLabel: lipgloss.NewStyle().
			Foreground(t.TextMuted),

		Primary: lipgloss.NewStyle().
			Foreground(t.SeriesPrimary),

		Secondary: lipgloss.NewStyle().
			Foreground(t.SeriesSecondary),

		Text: lipgloss.NewStyle().
			Foreground(t.Text),

		Muted: lipgloss.NewStyle().
			Foreground(t.TextMuted),

		HelpKey: lipgloss.NewStyle().
			Foreground(t.Text).
			Background(t.Border).
			Padding(0, 1),
	}
}
