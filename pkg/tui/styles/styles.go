// Package styles holds the lipgloss style table derived from the active
// palette. Styles are package-level variables rebuilt by Apply whenever a
// theme commit lands, so views always render with the committed palette.
package styles

import (
	"charm.land/lipgloss/v2"

	"segue/pkg/theme"
)

var current *theme.Palette

// Derived styles, rebuilt from the current palette.
var (
	Text        lipgloss.Style
	Heading     lipgloss.Style
	Subtle      lipgloss.Style
	Muted       lipgloss.Style
	Link        lipgloss.Style
	LinkFocused lipgloss.Style
	Footer      lipgloss.Style
	ErrorText   lipgloss.Style
	Separator   lipgloss.Style
)

func init() {
	Apply(theme.LoadPalette(theme.EffectiveLight))
}

// Apply installs the palette and rebuilds every derived style.
func Apply(p *theme.Palette) {
	if p == nil {
		return
	}
	current = p
	rebuild()
}

// Current returns the active palette.
func Current() *theme.Palette {
	return current
}

// Background returns the active background color as hex.
func Background() string {
	return current.Colors.Background
}

func rebuild() {
	c := current.Colors

	Text = lipgloss.NewStyle().
		Foreground(lipgloss.Color(c.TextPrimary))

	Heading = lipgloss.NewStyle().
		Foreground(lipgloss.Color(c.Accent)).
		Bold(true)

	Subtle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(c.TextSecondary))

	Muted = lipgloss.NewStyle().
		Foreground(lipgloss.Color(c.TextMuted))

	Link = lipgloss.NewStyle().
		Foreground(lipgloss.Color(c.Link)).
		Underline(true)

	LinkFocused = lipgloss.NewStyle().
		Foreground(lipgloss.Color(c.Background)).
		Background(lipgloss.Color(c.Link)).
		Bold(true)

	Footer = lipgloss.NewStyle().
		Foreground(lipgloss.Color(c.TextMuted)).
		BorderStyle(lipgloss.NormalBorder()).
		BorderTop(true).
		BorderForeground(lipgloss.Color(c.Border))

	ErrorText = lipgloss.NewStyle().
		Foreground(lipgloss.Color(c.Error))

	Separator = lipgloss.NewStyle().
		Foreground(lipgloss.Color(c.Border))
}
